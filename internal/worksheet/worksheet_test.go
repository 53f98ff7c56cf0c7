package worksheet

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathdrill/internal/exercise"
	"github.com/abhisek/mathdrill/internal/problemgen"
	"github.com/abhisek/mathdrill/internal/topic"
)

func exercises(t *testing.T, tp topic.Topic, d topic.Difficulty, n int) []*exercise.Exercise {
	t.Helper()
	sampler := problemgen.NewSampler(17)
	var out []*exercise.Exercise
	for i := 0; i < n; i++ {
		ex, err := exercise.New(tp, d, exercise.WithSampler(sampler))
		require.NoError(t, err)
		out = append(out, ex)
	}
	return out
}

func TestBuild(t *testing.T) {
	exs := exercises(t, topic.Sequence, topic.Medium, 3)
	ws := Build(exs, 17)

	assert.Equal(t, "Number Sequences (medium)", ws.Title)
	assert.Equal(t, uint64(17), ws.Seed)
	require.Len(t, ws.Items, 3)
	for i, it := range ws.Items {
		assert.Equal(t, i+1, it.Number)
		assert.Equal(t, exs[i].ID(), it.ID)
		assert.Equal(t, exs[i].Solution(), it.Solution)
		assert.Equal(t, 2, it.Difficulty)
	}
}

func TestBuild_MixedTitle(t *testing.T) {
	exs := append(exercises(t, topic.Sequence, topic.Easy, 1), exercises(t, topic.Probability, topic.Easy, 1)...)
	assert.Equal(t, "Mixed practice", Build(exs, 0).Title)

	exs = append(exercises(t, topic.Sequence, topic.Easy, 1), exercises(t, topic.Sequence, topic.Hard, 1)...)
	assert.Equal(t, topic.DisplayName(topic.Sequence), Build(exs, 0).Title)

	assert.Equal(t, "Practice worksheet", Build(nil, 0).Title)
}

func TestEncode_Text(t *testing.T) {
	ws := Build(exercises(t, topic.Combinatorics, topic.Hard, 2), 0)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ws, FormatText))
	out := buf.String()

	assert.Contains(t, out, "1. "+strings.SplitN(ws.Items[0].Prompt, "\n", 2)[0])
	assert.Contains(t, out, "Answer key")
	assert.Contains(t, out, "2. "+ws.Items[1].Solution)
	assert.NotContains(t, out, "seed:")
}

func TestEncode_JSONRoundTrip(t *testing.T) {
	ws := Build(exercises(t, topic.LinearSystem, topic.Medium, 4), 99)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ws, FormatJSON))
	require.NoError(t, Validate(buf.Bytes()))

	got, err := Decode(&buf, FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, ws, got)
}

func TestEncode_YAMLRoundTrip(t *testing.T) {
	ws := Build(exercises(t, topic.Derivative, topic.Hard, 2), 5)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ws, FormatYAML))
	assert.Contains(t, buf.String(), "title: ")
	assert.Contains(t, buf.String(), "topic: derivative")

	got, err := Decode(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, ws, got)
}

func TestEncode_XLSXRoundTrip(t *testing.T) {
	ws := Build(exercises(t, topic.Probability, topic.Hard, 3), 12)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, ws, FormatXLSX))
	require.NotZero(t, buf.Len())

	got, err := Decode(&buf, FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, ws.Title, got.Title)
	require.Len(t, got.Items, 3)
	for i, it := range got.Items {
		want := ws.Items[i]
		assert.Equal(t, want.Number, it.Number)
		assert.Equal(t, want.Topic, it.Topic)
		assert.Equal(t, want.Difficulty, it.Difficulty)
		assert.Equal(t, want.Prompt, it.Prompt)
		assert.Equal(t, want.Solution, it.Solution)
		assert.Equal(t, want.Explanation, it.Explanation)
	}
}

func TestDecode_XLSXGarbage(t *testing.T) {
	_, err := Decode(strings.NewReader("not a zip"), FormatXLSX)
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"title":`},
		{"missing items", `{"title":"x"}`},
		{"unknown topic", `{"title":"x","items":[{"number":1,"id":"a","topic":"geometry","difficulty":1,"prompt":"p","solution":"s","hint":"","explanation":""}]}`},
		{"difficulty out of range", `{"title":"x","items":[{"number":1,"id":"a","topic":"sequence","difficulty":4,"prompt":"p","solution":"s","hint":"","explanation":""}]}`},
		{"extra field", `{"title":"x","items":[],"answers":[]}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate([]byte(tc.raw))
			var iwe *InvalidWorksheetError
			require.True(t, errors.As(err, &iwe), "got %v", err)
			assert.Equal(t, tc.raw, string(iwe.Content))
		})
	}
}

func TestDecode_InvalidJSON(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"title":""}`), FormatJSON)
	var iwe *InvalidWorksheetError
	assert.True(t, errors.As(err, &iwe))

	_, err = Decode(strings.NewReader("x"), FormatText)
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatText, "TEXT": FormatText, "json": FormatJSON, "yml": FormatYAML, " yaml ": FormatYAML, "XLSX": FormatXLSX} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("xml")
	assert.Error(t, err)
}
