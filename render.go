package main

import (
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
)

var tileColors = [game.NumMarks]string{
	game.MarkMiss:    "#3a3a3c",
	game.MarkPresent: "#b59f3b",
	game.MarkHit:     "#538d4e",
}

// renderRow draws guess as colored tiles. Without color support it falls
// back to the word followed by its reply codes.
func renderRow(w io.Writer, guess string, resp game.Response) string {
	out := termenv.NewOutput(w)
	p := out.ColorProfile()
	if p == termenv.Ascii {
		return strings.ToUpper(guess) + "  " + resp.String()
	}

	var b strings.Builder
	for i := 0; i < len(guess) && i < len(resp); i++ {
		tile := p.String(" " + strings.ToUpper(guess[i:i+1]) + " ").
			Foreground(p.Color("#ffffff")).
			Background(p.Color(tileColors[resp[i]])).
			Bold()
		b.WriteString(tile.String())
	}
	return b.String()
}
