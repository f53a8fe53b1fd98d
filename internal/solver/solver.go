// apps/go-solver/internal/solver/solver.go
//
// Minimax Wordle solver.
// Responsibilities:
//   - Validate and de-duplicate the answer and guess dictionaries.
//   - Hold the current constraint set and the shrinking answer candidate set.
//   - Pick the guess whose worst-case remaining candidate count is smallest (search.go).
//   - Apply real feedback to narrow the state.
//
// Notes:
//   - The guess vocabulary lists answer words first, then guess-only words, so
//     ties favour guesses that could themselves be the answer.
//   - Candidates are tracked as a bitset over the de-duplicated answer list.

package solver

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/bits-and-blooms/bitset"

	"github.com/robalobadob/wordle/apps/go-solver/internal/constraints"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

var (
	// ErrInvalidDictionary reports an empty, ragged or non-alphabetic dictionary.
	ErrInvalidDictionary = errors.New("invalid dictionary")
	// ErrIncompleteSearch is returned when a search is cancelled before any guess was scored.
	ErrIncompleteSearch = errors.New("search cancelled before any guess was scored")
)

// Reporter receives progress while NextGuess scores the vocabulary.
// Advance may be called from several goroutines at once.
type Reporter interface {
	Start(total int)
	Advance(n int)
	Done()
}

type nopReporter struct{}

func (nopReporter) Start(int)   {}
func (nopReporter) Advance(int) {}
func (nopReporter) Done()       {}

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets how many goroutines score guesses; n <= 0 uses GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}
		s.workers = n
	}
}

// WithReporter registers a progress sink.
func WithReporter(r Reporter) Option {
	return func(s *Solver) {
		if r != nil {
			s.reporter = r
		}
	}
}

// WithCache lets NextGuess reuse picks for states it has already searched.
func WithCache(c store.Store) Option {
	return func(s *Solver) {
		s.cache = c
	}
}

// Solver narrows an answer dictionary with minimax guesses.
// It is not safe for concurrent use; NextGuess parallelises internally.
type Solver struct {
	length      int
	constraints *constraints.Set
	answers     []string       // de-duplicated answer dictionary
	remaining   *bitset.BitSet // indexes into answers
	vocabulary  []string       // answers first, then guess-only words
	vocabDigest []byte

	workers  int
	reporter Reporter
	cache    store.Store
}

// New validates the dictionaries and returns a solver in its initial state.
// answers must be non-empty; guesses may be empty. All words must be
// lowercase a–z and of one length.
func New(answers, guesses []string, opts ...Option) (*Solver, error) {
	if len(answers) == 0 {
		return nil, fmt.Errorf("answer list is empty: %w", ErrInvalidDictionary)
	}
	length := len(answers[0])
	if length == 0 {
		return nil, fmt.Errorf("empty word: %w", ErrInvalidDictionary)
	}
	for _, list := range [][]string{answers, guesses} {
		for _, w := range list {
			if len(w) != length {
				return nil, fmt.Errorf("word %q has %d letters, want %d: %w", w, len(w), length, ErrInvalidDictionary)
			}
			if !game.ValidWord(w) {
				return nil, fmt.Errorf("word %q is not lowercase a-z: %w", w, ErrInvalidDictionary)
			}
		}
	}

	seen := make(map[string]struct{}, len(answers)+len(guesses))
	uniqAnswers := dedup(answers, seen)
	extra := dedup(guesses, seen)

	vocab := make([]string, 0, len(uniqAnswers)+len(extra))
	vocab = append(vocab, uniqAnswers...)
	vocab = append(vocab, extra...)

	s := &Solver{
		length:      length,
		constraints: constraints.Fresh(length),
		answers:     uniqAnswers,
		remaining:   bitset.New(uint(len(uniqAnswers))).Complement(),
		vocabulary:  vocab,
		vocabDigest: digestWords(nil, vocab),
		workers:     1,
		reporter:    nopReporter{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// dedup keeps the first occurrence of each word not already in seen.
func dedup(words []string, seen map[string]struct{}) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Length is the word length of this solver.
func (s *Solver) Length() int { return s.length }

// Vocabulary returns the guess vocabulary in tie-break order.
func (s *Solver) Vocabulary() []string {
	return append([]string(nil), s.vocabulary...)
}

// Remaining returns the answer candidates still consistent with all feedback,
// in dictionary order.
func (s *Solver) Remaining() []string {
	out := make([]string, 0, s.remaining.Count())
	for i, ok := s.remaining.NextSet(0); ok; i, ok = s.remaining.NextSet(i + 1) {
		out = append(out, s.answers[i])
	}
	return out
}

// RemainingCount is len(Remaining()) without the allocation.
func (s *Solver) RemainingCount() int { return int(s.remaining.Count()) }

// Satisfiable is false once an infeasible response has been applied.
func (s *Solver) Satisfiable() bool { return s.constraints.Satisfiable() }

// Constraints exposes the current (immutable) constraint set.
func (s *Solver) Constraints() *constraints.Set { return s.constraints }

// Fits reports whether word is consistent with all feedback so far.
func (s *Solver) Fits(word string) (bool, error) {
	return s.constraints.Fits(word)
}

// Update applies real feedback for guess.
//
// Malformed input is rejected without changing state. An infeasible response
// moves the solver into a permanently unsatisfiable state and returns
// constraints.ErrInfeasible so the caller can report it; afterwards no word
// fits and NextGuess finds nothing.
func (s *Solver) Update(guess string, resp game.Response) error {
	next, err := s.constraints.Derive(guess, resp)
	switch {
	case errors.Is(err, constraints.ErrInfeasible):
		s.constraints = constraints.Unsatisfiable(s.length)
		s.remaining.ClearAll()
		return fmt.Errorf("guess %q response %s: %w", guess, resp, err)
	case err != nil:
		return err
	}
	s.constraints = next
	for i, ok := s.remaining.NextSet(0); ok; i, ok = s.remaining.NextSet(i + 1) {
		if !next.Match(s.answers[i]) {
			s.remaining.Clear(i)
		}
	}
	return nil
}
