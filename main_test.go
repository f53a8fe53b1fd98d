package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/progress"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var small = []string{"cat", "cad", "car", "fox"}

func newSmallSolver(t *testing.T) *solver.Solver {
	t.Helper()
	s, err := solver.New(small, nil)
	require.NoError(t, err)
	return s
}

func TestRunSolve(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "solved",
			input: "p\nggb\nggb\nggg\n",
			want:  []string{"Guess 1: CAT", "4 left: cat cad car fox", "Guess 2: CAD", "Guess 3: CAR", "Solved in 3."},
		},
		{
			name:  "color names",
			input: "green green gray\ngreen green gray\ngreen green green\n",
			want:  []string{"Solved in 3."},
		},
		{
			name:  "different word played",
			input: "fox bbb\np\n",
			want:  []string{"FOX  bbb", "3 left: cat cad car"},
		},
		{
			name:  "impossible reply",
			input: "aab byb\n",
			want:  []string{"Reply byb is impossible for AAB.", "contradict each other"},
		},
		{
			name:  "nothing fits",
			input: "bgb\n",
			want:  []string{"No answer in the word list fits"},
		},
		{
			name:  "bad reply is reported",
			input: "zzz\nq\n",
			want:  []string{"invalid reply"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := runSolve(t.Context(), newSmallSolver(t), strings.NewReader(tt.input), &out)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out.String(), w)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	guess, resp, err := parseLine("gyb", 3, "cat")
	require.NoError(t, err)
	assert.Equal(t, "cat", guess)
	assert.Equal(t, "gyb", resp.String())

	guess, resp, err = parseLine("FOX green gray gray", 3, "cat")
	require.NoError(t, err)
	assert.Equal(t, "fox", guess)
	assert.Equal(t, "gbb", resp.String())

	_, _, err = parseLine("fo gyb", 3, "cat")
	require.Error(t, err)
}

func TestSelfPlayWinsEveryAnswer(t *testing.T) {
	for _, answer := range small {
		g, err := game.New(answer, 0, nil)
		require.NoError(t, err)
		var rows int
		res, err := selfPlay(t.Context(), newSmallSolver(t), g, func(string, game.Response) { rows++ })
		require.NoError(t, err)
		assert.True(t, res.Won, answer)
		assert.Equal(t, answer, res.Guesses[len(res.Guesses)-1])
		assert.Equal(t, len(res.Guesses), rows)
	}
}

func TestRunBench(t *testing.T) {
	cache := store.NewMemoryStore()
	newSolver := func() (*solver.Solver, error) {
		return solver.New(small, nil, solver.WithCache(cache), solver.WithWorkers(2))
	}

	report, err := runBench(t.Context(), small, newSolver, 0, nil, progress.Nop{})
	require.NoError(t, err)
	assert.Equal(t, 4, report.Games)
	assert.Equal(t, 4, report.Won)
	assert.Empty(t, report.Failed)
	assert.Equal(t, map[int]int{1: 1, 2: 2, 3: 1}, report.Distribution)
	assert.InDelta(t, 2.0, report.MeanGuesses, 1e-9)
	assert.Equal(t, 3, report.MaxGuesses)

	_, hits, _ := cache.Stats()
	assert.Positive(t, hits)

	report, err = runBench(t.Context(), small, newSolver, 2, nil, progress.Nop{})
	require.NoError(t, err)
	assert.Equal(t, 3, report.Won)
	assert.Equal(t, []string{"car"}, report.Failed)
}

func TestWriteReport(t *testing.T) {
	r := benchReport{Games: 4, Won: 3, Failed: []string{"car"}, MeanGuesses: 1.5, MaxGuesses: 2,
		Distribution: map[int]int{1: 1, 2: 2}, Elapsed: "1ms"}

	var buf bytes.Buffer
	require.NoError(t, writeReport(&buf, r, "json"))
	var fromJSON benchReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &fromJSON))
	assert.Equal(t, r, fromJSON)

	buf.Reset()
	require.NoError(t, writeReport(&buf, r, "yaml"))
	assert.Contains(t, buf.String(), "mean_guesses: 1.5")
	var fromYAML benchReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &fromYAML))
	assert.Equal(t, r, fromYAML)

	buf.Reset()
	require.NoError(t, writeReport(&buf, r, "text"))
	assert.Contains(t, buf.String(), "games: 4  won: 3")
	assert.Contains(t, buf.String(), "failed: car")
}

func TestChooseAnswer(t *testing.T) {
	dict, err := words.New(small, nil)
	require.NoError(t, err)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	got, err := chooseAnswer(dict, " CAR ", false, "", now)
	require.NoError(t, err)
	assert.Equal(t, "car", got)

	_, err = chooseAnswer(dict, "dog", false, "", now)
	require.Error(t, err)

	got, err = chooseAnswer(dict, "", true, "salt", now)
	require.NoError(t, err)
	assert.Equal(t, small[daily.WordIndex(now, "salt", len(small))], got)

	got, err = chooseAnswer(dict, "", false, "", now)
	require.NoError(t, err)
	assert.Contains(t, small, got)
}

func TestReporterModes(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		mode string
		want any
	}{
		{"off", progress.Nop{}},
		{"bar", &progress.Bar{}},
		{"log", &progress.Log{}},
		{"auto", &progress.Log{}},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			r, err := reporter(tt.mode, &buf)
			require.NoError(t, err)
			assert.IsType(t, tt.want, r)
		})
	}
	_, err := reporter("loud", &buf)
	require.Error(t, err)
}

func TestRenderRowPlain(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, "CRANE  bygbb", renderRow(&buf, "crane", game.Response{
		game.MarkMiss, game.MarkPresent, game.MarkHit, game.MarkMiss, game.MarkMiss,
	}))
}

func TestUniqueWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, uniqueWords([]string{"a", "b", "a"}))
}
