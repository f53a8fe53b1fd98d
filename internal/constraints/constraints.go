// apps/go-solver/internal/constraints/constraints.go
//
// Accumulated knowledge about the hidden word.
//
// A Set holds, for a fixed word length:
//   - per position, a 26-bit mask of letters still allowed there;
//   - per letter, the minimum and maximum number of occurrences.
//
// Sets are immutable. Derive returns a new Set and leaves the receiver
// untouched, so speculative derivations during search never need undoing.
// Across derivations masks only shrink, minimums only grow and maximums
// only fall.

package constraints

import (
	"errors"
	"fmt"
	"math"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

// ErrInfeasible reports a (guess, response) pair no correct oracle can produce.
var ErrInfeasible = errors.New("infeasible response")

const (
	allLetters = 1<<26 - 1
	unbounded  = math.MaxInt
)

// Set is an immutable constraint set.
type Set struct {
	length  int
	unsat   bool
	min     [26]int
	max     [26]int
	allowed []uint32
}

// Fresh returns the constraint set that every word of the given length fits.
func Fresh(length int) *Set {
	s := &Set{length: length, allowed: make([]uint32, length)}
	for p := range s.allowed {
		s.allowed[p] = allLetters
	}
	for c := range s.max {
		s.max[c] = unbounded
	}
	return s
}

// Unsatisfiable returns a set that no word fits. It is where a solver ends up
// after accepting an infeasible response.
func Unsatisfiable(length int) *Set {
	s := Fresh(length)
	s.unsat = true
	return s
}

// Length is the word length the set was created for.
func (s *Set) Length() int { return s.length }

// Satisfiable is false only for sets built by Unsatisfiable (or derived from one).
// A satisfiable set may still admit no word from a given dictionary.
func (s *Set) Satisfiable() bool { return !s.unsat }

func (s *Set) clone() *Set {
	n := &Set{
		length:  s.length,
		unsat:   s.unsat,
		min:     s.min,
		max:     s.max,
		allowed: make([]uint32, len(s.allowed)),
	}
	copy(n.allowed, s.allowed)
	return n
}

// Derive returns the set that also accounts for resp having been received
// for guess. The receiver is not modified.
//
// Errors:
//   - game.ErrLengthMismatch if guess or resp differ from the set's length;
//   - game.ErrInvalidInput for non a–z letters or undefined marks;
//   - ErrInfeasible if a letter is reported missing at one position and
//     present-elsewhere at a later position.
func (s *Set) Derive(guess string, resp game.Response) (*Set, error) {
	if len(guess) != s.length || len(resp) != s.length {
		return nil, fmt.Errorf("guess %q with %d marks, want %d: %w", guess, len(resp), s.length, game.ErrLengthMismatch)
	}
	if !game.ValidWord(guess) {
		return nil, fmt.Errorf("guess %q: %w", guess, game.ErrInvalidInput)
	}
	if err := resp.Validate(); err != nil {
		return nil, err
	}
	if !Consistent(guess, resp) {
		return nil, ErrInfeasible
	}
	if s.unsat {
		return s, nil
	}

	n := s.clone()
	var inWord, notInWord [26]int
	for p := 0; p < s.length; p++ {
		c := guess[p] - 'a'
		bit := uint32(1) << c
		switch resp[p] {
		case game.MarkHit:
			n.allowed[p] &= bit
			n.min[c] = max(n.min[c], 1)
			inWord[c]++
		case game.MarkPresent:
			n.allowed[p] &^= bit
			n.min[c] = max(n.min[c], 1)
			inWord[c]++
		case game.MarkMiss:
			n.allowed[p] &^= bit
			notInWord[c]++
		}
	}

	for c := 0; c < 26; c++ {
		switch {
		case inWord[c] == 0 && notInWord[c] > 0:
			mask := ^(uint32(1) << c)
			for p := range n.allowed {
				n.allowed[p] &= mask
			}
		case inWord[c] > 0 && notInWord[c] == 0:
			n.min[c] = max(n.min[c], inWord[c])
		case inWord[c] > 0 && notInWord[c] > 0:
			n.min[c] = max(n.min[c], inWord[c])
			n.max[c] = min(n.max[c], inWord[c])
		}
	}
	return n, nil
}

// Consistent reports whether resp could have come from a correct oracle as
// far as duplicate letters are concerned: a miss for a letter may never be
// followed by a present for the same letter further right.
func Consistent(guess string, resp game.Response) bool {
	var missed uint32
	for p := 0; p < len(guess) && p < len(resp); p++ {
		bit := uint32(1) << (guess[p] - 'a')
		switch resp[p] {
		case game.MarkMiss:
			missed |= bit
		case game.MarkPresent:
			if missed&bit != 0 {
				return false
			}
		}
	}
	return true
}

// Fits reports whether word is still possible under the set.
func (s *Set) Fits(word string) (bool, error) {
	if len(word) != s.length {
		return false, fmt.Errorf("word %q, want %d letters: %w", word, s.length, game.ErrLengthMismatch)
	}
	if !game.ValidWord(word) {
		return false, fmt.Errorf("word %q: %w", word, game.ErrInvalidInput)
	}
	return s.fits(word), nil
}

// Match is Fits for words already known to be well formed; it is the hot
// path of the solver.
func (s *Set) Match(word string) bool {
	if len(word) != s.length {
		return false
	}
	return s.fits(word)
}

func (s *Set) fits(word string) bool {
	if s.unsat {
		return false
	}
	var counts [26]int
	for p := 0; p < len(word); p++ {
		c := word[p] - 'a'
		if s.allowed[p]&(1<<c) == 0 {
			return false
		}
		counts[c]++
	}
	for c := range counts {
		if counts[c] < s.min[c] || counts[c] > s.max[c] {
			return false
		}
	}
	return true
}

// Allowed returns the letters still allowed at position p, in order.
func (s *Set) Allowed(p int) []byte {
	if p < 0 || p >= s.length || s.unsat {
		return nil
	}
	var out []byte
	for c := 0; c < 26; c++ {
		if s.allowed[p]&(1<<c) != 0 {
			out = append(out, byte('a'+c))
		}
	}
	return out
}

// Bounds returns the occurrence bounds for letter; max is -1 when unbounded.
func (s *Set) Bounds(letter byte) (lo, hi int) {
	if letter < 'a' || letter > 'z' {
		return 0, -1
	}
	c := letter - 'a'
	lo, hi = s.min[c], s.max[c]
	if hi == unbounded {
		hi = -1
	}
	return lo, hi
}
