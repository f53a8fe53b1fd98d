// apps/go-solver/internal/game/engine.go
//
// Feedback oracle and self-play game engine.
// Responsibilities:
//   - Score guesses against a known answer with the two-pass Wordle algorithm.
//   - Create self-play games and apply guesses (length, alphabetic, allowed list).
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Duplicate letters: wrong-position credit is handed out left to right
//     until the letter's budget in the answer is spent.
//   - randomID() is a compact hex identifier for correlating log lines.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

const (
	// DefaultRows is the classic number of guesses per game.
	DefaultRows = 6
)

var (
	ErrGameFinished = errors.New("game finished")
	ErrNotAllowed   = errors.New("not in word list")
)

// New constructs a new game instance for answer.
// rows <= 0 means unlimited guesses. allowed may be nil to accept any
// well-formed word of the right length.
func New(answer string, rows int, allowed func(string) bool) (*Game, error) {
	answer = strings.ToLower(strings.TrimSpace(answer))
	if answer == "" || !ValidWord(answer) {
		return nil, fmt.Errorf("answer %q: %w", answer, ErrInvalidInput)
	}
	if rows < 0 {
		rows = 0
	}
	return &Game{
		ID:      randomID(),
		Answer:  answer,
		Rows:    rows,
		Cols:    len(answer),
		Guesses: []string{},
		allowed: allowed,
	}, nil
}

// ApplyGuess validates and scores a guess, mutating the game state.
// Returns: the response, the new state string ("playing"/"won"/"lost"), or an error.
//
// State transitions:
//   - If all tiles are hits → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (Response, string, error) {
	if g.Finished {
		return nil, g.State(), ErrGameFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if len(guess) != g.Cols {
		return nil, g.State(), fmt.Errorf("guess %q: %w", guess, ErrLengthMismatch)
	}
	if !ValidWord(guess) {
		return nil, g.State(), fmt.Errorf("guess %q: %w", guess, ErrInvalidInput)
	}
	if g.allowed != nil && !g.allowed(guess) {
		return nil, g.State(), fmt.Errorf("guess %q: %w", guess, ErrNotAllowed)
	}

	resp, err := Score(g.Answer, guess)
	if err != nil {
		return nil, g.State(), err
	}
	g.Guesses = append(g.Guesses, guess)
	g.Responses = append(g.Responses, resp)

	if resp.Solved() {
		g.Finished, g.Won = true, true
	} else if g.Rows > 0 && len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return resp, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score computes the feedback for guess against answer.
//
// Pass 1:
//   - Mark exact matches as hits and count, per letter, the occurrences they consume.
//
// Pass 2 (left to right over the remaining positions):
//   - If the letter's total count in the answer exceeds what has been consumed,
//     mark present and consume one more; otherwise mark miss.
func Score(answer, guess string) (Response, error) {
	n := len(answer)
	if len(guess) != n {
		return nil, fmt.Errorf("answer %d letters, guess %d: %w", n, len(guess), ErrLengthMismatch)
	}
	if !ValidWord(answer) || !ValidWord(guess) {
		return nil, ErrInvalidInput
	}
	res := make(Response, n)

	var total, used [26]int
	for i := 0; i < n; i++ {
		total[answer[i]-'a']++
		if guess[i] == answer[i] {
			res[i] = MarkHit
			used[guess[i]-'a']++
		}
	}

	for i := 0; i < n; i++ {
		if res[i] == MarkHit {
			continue
		}
		c := guess[i] - 'a'
		if total[c] > used[c] {
			res[i] = MarkPresent
			used[c]++
		} else {
			res[i] = MarkMiss
		}
	}
	return res, nil
}

// ValidWord checks that a string consists only of lowercase a–z.
func ValidWord(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// randomID returns a compact 16‑hex‑char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
