// apps/go-solver/internal/game/types.go
//
// Core type definitions shared by the oracle, the constraint set and the solver.
// Defines:
//   - Mark: per-letter result of a guess (miss/present/hit).
//   - Response: one Mark per position of a guess.
//   - Game: state for a single self-play session.

package game

import (
	"errors"
	"strconv"
	"strings"
)

var (
	// ErrLengthMismatch reports a word or response whose length differs from the expected one.
	ErrLengthMismatch = errors.New("length mismatch")
	// ErrInvalidInput reports malformed guesses, answers or responses.
	ErrInvalidInput = errors.New("invalid input")
)

// Mark represents the evaluation result for a single letter in a guess.
// The ordinal order is fixed: it is the digit value used when enumerating
// responses, and Marks index arrays directly.
//   - MarkMiss:    letter does not occur (beyond what other tiles already claimed).
//   - MarkPresent: letter occurs elsewhere in the answer.
//   - MarkHit:     letter is correct and in the correct position.
type Mark uint8

const (
	MarkMiss Mark = iota
	MarkPresent
	MarkHit

	// NumMarks is the number of distinct marks (the enumeration base).
	NumMarks = 3
)

var markNames = [NumMarks]string{"miss", "present", "hit"}

// Valid reports whether m is one of the three defined marks.
func (m Mark) Valid() bool { return m < NumMarks }

func (m Mark) String() string {
	if !m.Valid() {
		return "invalid"
	}
	return markNames[m]
}

// Code is the single-letter form used in logs and reports (b/y/g).
func (m Mark) Code() byte {
	switch m {
	case MarkHit:
		return 'g'
	case MarkPresent:
		return 'y'
	default:
		return 'b'
	}
}

// Response is the per-position feedback for one guess.
type Response []Mark

// Solved reports whether every tile is a hit.
func (r Response) Solved() bool {
	for _, m := range r {
		if m != MarkHit {
			return false
		}
	}
	return len(r) > 0
}

// Validate checks every mark is defined.
func (r Response) Validate() error {
	for i, m := range r {
		if !m.Valid() {
			return &PositionError{Pos: i, Err: ErrInvalidInput}
		}
	}
	return nil
}

func (r Response) String() string {
	var b strings.Builder
	b.Grow(len(r))
	for _, m := range r {
		b.WriteByte(m.Code())
	}
	return b.String()
}

// Equal reports whether two responses carry the same marks.
func (r Response) Equal(o Response) bool {
	if len(r) != len(o) {
		return false
	}
	for i := range r {
		if r[i] != o[i] {
			return false
		}
	}
	return true
}

// PositionError locates a validation failure.
type PositionError struct {
	Pos int
	Err error
}

func (e *PositionError) Error() string {
	return "position " + strconv.Itoa(e.Pos) + ": " + e.Err.Error()
}

func (e *PositionError) Unwrap() error { return e.Err }

// Game holds the state of a single self-play session.
type Game struct {
	ID        string     // Unique game identifier (random hex string).
	Answer    string     // The solution word (always lowercase).
	Rows      int        // Maximum number of guesses allowed; 0 means unlimited.
	Cols      int        // Number of letters per word.
	Guesses   []string   // List of guesses made so far (lowercased).
	Responses []Response // Feedback for each guess, aligned with Guesses.
	Finished  bool       // True once the game is over (won or lost).
	Won       bool       // True if the game was finished with a win.

	allowed func(string) bool
}
