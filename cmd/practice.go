package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/abhisek/mathdrill/internal/exercise"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/session"
	"github.com/abhisek/mathdrill/internal/topic"
)

// errQuit ends the practice loop at the learner's request or on EOF.
var errQuit = errors.New("quit")

var practiceCmd = &cobra.Command{
	Use:   "practice",
	Short: "Practice in a plain line-by-line console session",
	Long: "Practice without the full-screen interface. Without --topic a menu " +
		"is shown before every exercise; without --difficulty you are asked each time.",
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var p practice
		if t, _ := cmd.Flags().GetString("topic"); t != "" {
			parsed, err := topic.ParseTopic(t)
			if err != nil {
				return err
			}
			p.topic = parsed
		}
		if d, _ := cmd.Flags().GetString("difficulty"); d != "" {
			parsed, err := topic.ParseDifficulty(d)
			if err != nil {
				return err
			}
			p.difficulty = parsed
		}
		seed, err := resolveSeed(cmd)
		if err != nil {
			return err
		}
		p.sampler = samplerFor(seed)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return p.run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	practiceCmd.Flags().StringP("topic", "t", "", "Topic ID or menu number; skips the topic menu")
	practiceCmd.Flags().StringP("difficulty", "d", "", "Difficulty 1-3; skips the difficulty prompt")
}

// practice is a console session. Zero topic or difficulty means the
// learner is asked for it.
type practice struct {
	topic      topic.Topic
	difficulty topic.Difficulty
	sampler    *problemgen.Sampler

	state *session.SessionState
	lines <-chan string
	out   io.Writer
}

func (p *practice) run(ctx context.Context, in io.Reader, out io.Writer) error {
	p.out = out
	p.state = session.NewSessionState(uuid.New().String())
	p.lines = readLines(ctx, in)

	fmt.Fprintln(out, "Welcome to mathdrill!")
	for {
		err := p.round(ctx)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			return err
		}
	}

	printSummary(out, session.BuildSummary(p.state))
	fmt.Fprintln(out, "See you next time!")
	return nil
}

// round serves one exercise with up to session.MaxAttempts answers.
func (p *practice) round(ctx context.Context) error {
	t := p.topic
	if t == "" {
		var err error
		if t, err = p.chooseTopic(ctx); err != nil {
			return err
		}
	}
	d := p.difficulty
	if d == 0 {
		var err error
		if d, err = p.chooseDifficulty(ctx); err != nil {
			return err
		}
	}

	ex, err := exercise.New(t, d, exercise.WithSampler(p.sampler))
	if err != nil {
		return fmt.Errorf("generate %s exercise: %w", t, err)
	}
	p.state.Serve(ex)

	fmt.Fprintf(p.out, "\n--- EXERCISE ---\n%s\n%s\n", ex.Prompt(), strings.Repeat("-", 16))

	for {
		n := p.state.Current.Tries() + 1
		answer, err := p.ask(ctx, fmt.Sprintf("Your answer (attempt %d of %d): ", n, session.MaxAttempts))
		if err != nil {
			return err
		}
		out, err := session.HandleAnswer(p.state, answer)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.out, out.Message)
		if out.Final {
			break
		}
		fmt.Fprintf(p.out, "\nYou have %d more attempt.\n", p.state.Current.Remaining())
		session.Retry(p.state)
	}

	_, err = p.ask(ctx, "\nPress Enter to continue (q to quit)...")
	return err
}

func (p *practice) chooseTopic(ctx context.Context) (topic.Topic, error) {
	for {
		fmt.Fprintf(p.out, "\n%s\nChoose a topic:\n", strings.Repeat("=", 30))
		for i, t := range topic.All() {
			fmt.Fprintf(p.out, "  %d. %s\n", i+1, topic.DisplayName(t))
		}
		choice, err := p.ask(ctx, "Enter a topic number (or 'q' to quit): ")
		if err != nil {
			return "", err
		}
		t, err := topic.ParseTopic(choice)
		if err == nil {
			return t, nil
		}
		fmt.Fprintln(p.out, "Invalid topic number. Try again.")
	}
}

func (p *practice) chooseDifficulty(ctx context.Context) (topic.Difficulty, error) {
	for {
		choice, err := p.ask(ctx, "Choose a difficulty (1-3): ")
		if err != nil {
			return 0, err
		}
		d, err := topic.ParseDifficulty(choice)
		if err == nil {
			return d, nil
		}
		fmt.Fprintln(p.out, "Please enter a number from 1 to 3.")
	}
}

// ask prints prompt and waits for a line. "q" and end of input both quit.
func (p *practice) ask(ctx context.Context, prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		logrus.WithError(ctx.Err()).Debug("practice interrupted")
		return "", errQuit
	case line, ok := <-p.lines:
		if !ok {
			fmt.Fprintln(p.out)
			return "", errQuit
		}
		if strings.EqualFold(strings.TrimSpace(line), "q") {
			return "", errQuit
		}
		return line, nil
	}
}

// readLines streams lines from r until EOF or ctx is done.
func readLines(ctx context.Context, r io.Reader) <-chan string {
	ch := make(chan string)
	go func() {
		defer close(ch)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case ch <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			logrus.WithError(err).Warn("reading input failed")
		}
	}()
	return ch
}

func printSummary(w io.Writer, sum *session.SessionSummary) {
	fmt.Fprintf(w, "\n%s\nSession summary\n", strings.Repeat("=", 30))
	if sum.TotalServed == 0 {
		fmt.Fprintln(w, "No exercises attempted.")
		return
	}
	fmt.Fprintf(w, "Exercises: %d  Solved: %d  First try: %d  Missed: %d  Accuracy: %.0f%%\n",
		sum.TotalServed, sum.TotalSolved, sum.SolvedFirstTry, sum.TotalFailed, sum.Accuracy*100)
	for _, tr := range sum.TopicResults {
		fmt.Fprintf(w, "  %-28s %d/%d solved\n", topic.DisplayName(tr.Topic), tr.Solved, tr.Served)
	}
}
