// Package reply parses the feedback a player types after a guess.
//
// Accepted forms, for a word of length L:
//   - one token of L tile codes, e.g. "bygbb";
//   - L tokens, each a tile code or a color name, e.g. "gray yellow green gray gray".
//
// Tile codes: b x . - _ 0 for a miss, y 1 for present, g 2 for a hit.
// Color names: gray, grey, black (miss), yellow (present), green (hit).
package reply

import (
	"errors"
	"fmt"
	"strings"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

var ErrInvalidReply = errors.New("invalid reply")

var codes = map[byte]game.Mark{
	'b': game.MarkMiss, 'x': game.MarkMiss, '.': game.MarkMiss,
	'-': game.MarkMiss, '_': game.MarkMiss, '0': game.MarkMiss,
	'y': game.MarkPresent, '1': game.MarkPresent,
	'g': game.MarkHit, '2': game.MarkHit,
}

var names = map[string]game.Mark{
	"gray":   game.MarkMiss,
	"grey":   game.MarkMiss,
	"black":  game.MarkMiss,
	"yellow": game.MarkPresent,
	"green":  game.MarkHit,
}

// Parse turns line into a response of the given length.
func Parse(line string, length int) (game.Response, error) {
	tokens := strings.Fields(strings.ToLower(line))
	switch {
	case length > 0 && len(tokens) == length:
		resp := make(game.Response, length)
		for i, tok := range tokens {
			m, ok := token(tok)
			if !ok {
				return nil, fmt.Errorf("tile %d %q: %w", i+1, tok, ErrInvalidReply)
			}
			resp[i] = m
		}
		return resp, nil

	case len(tokens) == 1 && len(tokens[0]) == length:
		resp := make(game.Response, length)
		for i := 0; i < length; i++ {
			m, ok := codes[tokens[0][i]]
			if !ok {
				return nil, fmt.Errorf("tile %d %q: %w", i+1, tokens[0][i:i+1], ErrInvalidReply)
			}
			resp[i] = m
		}
		return resp, nil
	}
	return nil, fmt.Errorf("%q: want %d tiles: %w", line, length, ErrInvalidReply)
}

func token(tok string) (game.Mark, bool) {
	if m, ok := names[tok]; ok {
		return m, true
	}
	if len(tok) == 1 {
		m, ok := codes[tok[0]]
		return m, ok
	}
	return 0, false
}
