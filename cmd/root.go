package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/app"
	"github.com/abhisek/mathdrill/internal/logger"
	"github.com/abhisek/mathdrill/internal/problemgen"
)

const (
	envLogLevel = "MATHDRILL_LOG_LEVEL"
	envSeed     = "MATHDRILL_SEED"
)

// logCloser releases the log file opened for the interactive program.
var logCloser io.Closer

var rootCmd = &cobra.Command{
	Use:           "mathdrill",
	Short:         "Math practice in the terminal",
	Long:          "mathdrill generates math exercises (derivatives, equations, probability, counting, sequences) and checks your answers.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		return app.Run(app.Options{Sampler: samplerFor(seed)})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides "+envLogLevel+")")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed for reproducible exercises, 0 for random (overrides "+envSeed+")")

	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)

	cobra.OnFinalize(func() {
		if logCloser != nil {
			_ = logCloser.Close()
			logCloser = nil
		}
	})
}

// setupLogging configures logrus for the command being run. The
// interactive program owns the terminal, so its logs go to a file.
func setupLogging(cmd *cobra.Command) error {
	cfg := logger.DefaultConfig()
	cfg.Level = resolveLogLevel(cmd)
	cfg.Output = cmd.ErrOrStderr()

	if logsToFile(cmd) {
		path, err := logger.DefaultLogFile()
		if err != nil {
			return fmt.Errorf("resolve log file: %w", err)
		}
		cfg.File = path
	}

	closer, err := logger.Init(cfg)
	if err != nil {
		return err
	}
	logCloser = closer
	return nil
}

// logsToFile reports whether cmd runs the full-screen program. Only the
// top-level command does; subcommands write plain text to the terminal.
func logsToFile(cmd *cobra.Command) bool {
	return !cmd.HasParent()
}

// resolveLogLevel returns the log level using --log-level (highest
// priority), then MATHDRILL_LOG_LEVEL, then warn.
func resolveLogLevel(cmd *cobra.Command) string {
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		return l
	}
	if l := os.Getenv(envLogLevel); l != "" {
		return l
	}
	return logger.LogLevelWarn
}

// resolveSeed returns the seed using --seed (highest priority), then
// MATHDRILL_SEED. Zero means unseeded.
func resolveSeed(cmd *cobra.Command) (uint64, error) {
	if cmd.Flags().Changed("seed") {
		return cmd.Flags().GetUint64("seed")
	}
	if s := os.Getenv(envSeed); s != "" {
		seed, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid %s %q: %w", envSeed, s, err)
		}
		return seed, nil
	}
	return 0, nil
}

// samplerFor returns a seeded sampler, or nil to draw from the
// process-wide source.
func samplerFor(seed uint64) *problemgen.Sampler {
	if seed == 0 {
		return nil
	}
	logrus.WithField("seed", seed).Debug("using seeded sampler")
	return problemgen.NewSampler(seed)
}
