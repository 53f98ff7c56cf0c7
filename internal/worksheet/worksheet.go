// Package worksheet renders batches of exercises, with their answer key,
// as printable text, JSON, YAML or an Excel workbook.
package worksheet

import (
	"fmt"
	"strings"

	"github.com/abhisek/mathdrill/internal/exercise"
	"github.com/abhisek/mathdrill/internal/topic"
)

// Item is one exercise on a worksheet.
type Item struct {
	Number      int         `json:"number" yaml:"number"`
	ID          string      `json:"id" yaml:"id"`
	Topic       topic.Topic `json:"topic" yaml:"topic"`
	Difficulty  int         `json:"difficulty" yaml:"difficulty"`
	Prompt      string      `json:"prompt" yaml:"prompt"`
	Solution    string      `json:"solution" yaml:"solution"`
	Hint        string      `json:"hint" yaml:"hint"`
	Explanation string      `json:"explanation" yaml:"explanation"`
}

// Worksheet is an ordered set of exercises.
type Worksheet struct {
	Title string `json:"title" yaml:"title"`
	// Seed reproduces the worksheet when non-zero.
	Seed  uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`
	Items []Item `json:"items" yaml:"items"`
}

// Build assembles a worksheet from exercises in order.
func Build(exercises []*exercise.Exercise, seed uint64) *Worksheet {
	ws := &Worksheet{
		Title: title(exercises),
		Seed:  seed,
		Items: make([]Item, 0, len(exercises)),
	}
	for i, ex := range exercises {
		ws.Items = append(ws.Items, Item{
			Number:      i + 1,
			ID:          ex.ID(),
			Topic:       ex.Topic(),
			Difficulty:  int(ex.Difficulty()),
			Prompt:      ex.Prompt(),
			Solution:    ex.Solution(),
			Hint:        ex.Hint(),
			Explanation: ex.Explanation(),
		})
	}
	return ws
}

// title names the worksheet after its topic and tier when all exercises
// share them.
func title(exercises []*exercise.Exercise) string {
	if len(exercises) == 0 {
		return "Practice worksheet"
	}
	t, d := exercises[0].Topic(), exercises[0].Difficulty()
	for _, ex := range exercises[1:] {
		if ex.Topic() != t {
			return "Mixed practice"
		}
		if ex.Difficulty() != d {
			return topic.DisplayName(t)
		}
	}
	return fmt.Sprintf("%s (%s)", topic.DisplayName(t), d.Label())
}

func (ws *Worksheet) text() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n", ws.Title, strings.Repeat("=", len(ws.Title)))
	if ws.Seed != 0 {
		fmt.Fprintf(&b, "seed: %d\n", ws.Seed)
	}
	b.WriteString("\n")

	for _, it := range ws.Items {
		fmt.Fprintf(&b, "%d. %s\n\n", it.Number, indent(it.Prompt))
	}

	b.WriteString("Answer key\n----------\n")
	for _, it := range ws.Items {
		fmt.Fprintf(&b, "%d. %s\n", it.Number, it.Solution)
		if it.Explanation != "" {
			fmt.Fprintf(&b, "   %s\n", indent(it.Explanation))
		}
	}
	return b.String()
}

// indent aligns continuation lines under the item number.
func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n   ")
}
