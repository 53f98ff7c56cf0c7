package worksheet

import (
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/abhisek/mathdrill/internal/topic"
)

const (
	sheetExercises = "Exercises"
	sheetAnswers   = "Answers"
)

var (
	exerciseHeader = []any{"#", "Topic", "Difficulty", "Exercise"}
	answerHeader   = []any{"#", "Answer", "Explanation"}
)

// writeXLSX renders ws as a workbook with the exercises on the first sheet
// and the answer key on a second one.
func writeXLSX(w io.Writer, ws *Worksheet) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetExercises); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(sheetAnswers); err != nil {
		return fmt.Errorf("add answers sheet: %w", err)
	}

	if err := f.SetSheetRow(sheetExercises, "A1", &exerciseHeader); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheetAnswers, "A1", &answerHeader); err != nil {
		return err
	}

	for i, it := range ws.Items {
		row := strconv.Itoa(i + 2)
		q := []any{it.Number, string(it.Topic), it.Difficulty, it.Prompt}
		if err := f.SetSheetRow(sheetExercises, "A"+row, &q); err != nil {
			return fmt.Errorf("write exercise %d: %w", it.Number, err)
		}
		a := []any{it.Number, it.Solution, it.Explanation}
		if err := f.SetSheetRow(sheetAnswers, "A"+row, &a); err != nil {
			return fmt.Errorf("write answer %d: %w", it.Number, err)
		}
	}

	if err := f.SetColWidth(sheetExercises, "D", "D", 80); err != nil {
		return err
	}
	if err := f.SetColWidth(sheetAnswers, "C", "C", 80); err != nil {
		return err
	}
	if err := f.SetDocProps(&excelize.DocProperties{Title: ws.Title, Creator: "mathdrill"}); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// readXLSX reads the exercise and answer sheets written by writeXLSX.
// IDs and hints are not stored in workbooks.
func readXLSX(r io.Reader) (*Worksheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	props, err := f.GetDocProps()
	if err != nil {
		return nil, fmt.Errorf("read workbook properties: %w", err)
	}
	questions, err := f.GetRows(sheetExercises)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheetExercises, err)
	}
	answers, err := f.GetRows(sheetAnswers)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", sheetAnswers, err)
	}
	if len(questions) != len(answers) {
		return nil, fmt.Errorf("workbook has %d exercises but %d answers", len(questions)-1, len(answers)-1)
	}

	ws := &Worksheet{Title: props.Title}
	for i := 1; i < len(questions); i++ {
		q, a := pad(questions[i], 4), pad(answers[i], 3)
		num, err := strconv.Atoi(q[0])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad number %q", i+1, q[0])
		}
		diff, err := strconv.Atoi(q[2])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad difficulty %q", i+1, q[2])
		}
		ws.Items = append(ws.Items, Item{
			Number:      num,
			Topic:       topic.Topic(q[1]),
			Difficulty:  diff,
			Prompt:      q[3],
			Solution:    a[1],
			Explanation: a[2],
		})
	}
	return ws, nil
}

// pad extends a row that lost trailing empty cells.
func pad(row []string, n int) []string {
	for len(row) < n {
		row = append(row, "")
	}
	return row
}
