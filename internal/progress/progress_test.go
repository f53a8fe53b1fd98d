package progress

import (
	"bytes"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
)

var (
	_ solver.Reporter = Nop{}
	_ solver.Reporter = (*Bar)(nil)
	_ solver.Reporter = (*Log)(nil)
)

func advanceConcurrently(r solver.Reporter, workers, each int) {
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < each; i++ {
				r.Advance(1)
			}
		}()
	}
	wg.Wait()
}

func TestLogEmitsEveryN(t *testing.T) {
	var buf bytes.Buffer
	l := NewLog(zerolog.New(&buf).Level(zerolog.DebugLevel), 10)

	l.Start(100)
	advanceConcurrently(l, 4, 25)
	l.Done()
	assert.Equal(t, 100, l.Processed())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 11)

	var last map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &last))
	assert.Equal(t, "scoring finished", last["message"])
	assert.EqualValues(t, 100, last["done"])
}

func TestLogRestartsCount(t *testing.T) {
	l := NewLog(zerolog.Nop(), 0)
	l.Start(5)
	l.Advance(5)
	l.Start(3)
	assert.Equal(t, 0, l.Processed())
}

func TestBarWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	b := NewBar(&buf, "scoring")
	b.Advance(1) // before Start: ignored

	b.Start(50)
	advanceConcurrently(b, 5, 10)
	b.Done()
	b.Done()

	assert.Contains(t, buf.String(), "scoring")
}

func TestSolverDrivesReporter(t *testing.T) {
	l := NewLog(zerolog.Nop(), 1)
	s, err := solver.New([]string{"cat", "cad", "car", "fox"}, nil, solver.WithReporter(l), solver.WithWorkers(3))
	require.NoError(t, err)

	_, err = s.NextGuess(t.Context())
	require.NoError(t, err)
	assert.Equal(t, 4, l.Processed())
}
