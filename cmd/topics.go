package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/topic"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List topics and difficulty tiers",
	Run: func(cmd *cobra.Command, args []string) {
		printTopics(cmd.OutOrStdout())
	},
}

func printTopics(w io.Writer) {
	fmt.Fprintln(w, "Topics:")
	for i, t := range topic.All() {
		fmt.Fprintf(w, "  %d. %-28s (%s)\n", i+1, topic.DisplayName(t), t)
	}
	fmt.Fprintln(w, "\nDifficulty:")
	for _, d := range topic.Difficulties() {
		fmt.Fprintf(w, "  %d. %s\n", int(d), d.Label())
	}
}
