package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/constraints"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/reply"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

func newSolveCmd(load func() config) *cobra.Command {
	return &cobra.Command{
		Use:   "solve",
		Short: "Suggest guesses for a game played elsewhere",
		Long: `solve suggests a guess, then reads the reply you got for it.

Replies are tile codes (b/y/g, or 0/1/2) such as "bygbb", or color names
such as "gray yellow green gray gray". If you played a different word,
type it before the reply: "crane bygbb". Type "p" to list the remaining
answers and "q" to quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := load()
			dict, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			rep, err := reporter(cfg.Progress, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s, err := solverFactory(cfg, dict, rep, store.NewMemoryStore())()
			if err != nil {
				return err
			}
			return runSolve(cmd.Context(), s, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runSolve drives one interactive game until it is solved, the replies rule
// out every answer, or input ends.
func runSolve(ctx context.Context, s *solver.Solver, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for turn := 1; ; turn++ {
		pick, err := s.NextGuess(ctx)
		if err != nil {
			return err
		}
		if !pick.Found() {
			if !s.Satisfiable() {
				fmt.Fprintln(out, "The replies so far contradict each other; no answer is possible.")
			} else {
				fmt.Fprintln(out, "No answer in the word list fits the replies so far.")
			}
			return nil
		}
		fmt.Fprintf(out, "Guess %d: %s  (at most %d of %d answers left afterwards)\n",
			turn, strings.ToUpper(pick.Word), pick.WorstCase, s.RemainingCount())

		guess, resp, ok, err := readReply(sc, out, s, pick.Word)
		if err != nil || !ok {
			return err
		}
		fmt.Fprintln(out, renderRow(out, guess, resp))

		if err := s.Update(guess, resp); err != nil {
			if !errors.Is(err, constraints.ErrInfeasible) {
				return err
			}
			fmt.Fprintf(out, "Reply %s is impossible for %s.\n", resp, strings.ToUpper(guess))
			continue
		}
		if resp.Solved() {
			fmt.Fprintf(out, "Solved in %d.\n", turn)
			return nil
		}
	}
}

// readReply prompts until it gets a usable reply line. ok is false when the
// player quits or input ends.
func readReply(sc *bufio.Scanner, out io.Writer, s *solver.Solver, suggested string) (guess string, resp game.Response, ok bool, err error) {
	for {
		fmt.Fprint(out, "reply> ")
		if !sc.Scan() {
			return "", nil, false, sc.Err()
		}
		line := strings.TrimSpace(sc.Text())
		switch strings.ToLower(line) {
		case "":
			continue
		case "q", "quit":
			return "", nil, false, nil
		case "p":
			remaining := s.Remaining()
			fmt.Fprintf(out, "%d left: %s\n", len(remaining), strings.Join(remaining, " "))
			continue
		}

		g, r, perr := parseLine(line, s.Length(), suggested)
		if perr != nil {
			fmt.Fprintln(out, perr)
			continue
		}
		return g, r, true, nil
	}
}

// parseLine reads either a bare reply for suggested or "<word> <reply>".
func parseLine(line string, length int, suggested string) (string, game.Response, error) {
	resp, err := reply.Parse(line, length)
	if err == nil {
		return suggested, resp, nil
	}
	word, rest, found := strings.Cut(line, " ")
	word = strings.ToLower(word)
	if !found || len(word) != length || !game.ValidWord(word) {
		return "", nil, err
	}
	resp, err = reply.Parse(rest, length)
	if err != nil {
		return "", nil, err
	}
	return word, resp, nil
}
