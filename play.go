package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/go-solver/internal/daily"
	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

var errNoGuess = errors.New("solver has no guess left")

type playResult struct {
	Answer  string   `json:"answer" yaml:"answer"`
	Guesses []string `json:"guesses" yaml:"guesses"`
	Won     bool     `json:"won" yaml:"won"`
}

func newPlayCmd(load func() config) *cobra.Command {
	var answer string
	var useDaily bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Watch the solver play one game",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := load()
			dict, err := loadDictionary(cfg)
			if err != nil {
				return err
			}
			target, err := chooseAnswer(dict, answer, useDaily, cfg.DailySalt, time.Now())
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
			g, err := game.New(target, cfg.Rows, dict.IsAllowed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			res, err := selfPlay(cmd.Context(), s, g, func(guess string, resp game.Response) {
				fmt.Fprintln(out, renderRow(out, guess, resp))
			})
			if err != nil {
				return err
			}
			if res.Won {
				fmt.Fprintf(out, "Solved %s in %d.\n", strings.ToUpper(res.Answer), len(res.Guesses))
			} else {
				fmt.Fprintf(out, "Out of guesses; the answer was %s.\n", strings.ToUpper(res.Answer))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&answer, "answer", "", "answer to play against (must be in the answer list)")
	cmd.Flags().BoolVar(&useDaily, "daily", false, "play today's answer")
	cmd.MarkFlagsMutuallyExclusive("answer", "daily")
	return cmd
}

// chooseAnswer picks the hidden word: explicit, daily, or random.
func chooseAnswer(dict *words.Dictionary, answer string, useDaily bool, salt string, now time.Time) (string, error) {
	switch {
	case answer != "":
		answer = strings.ToLower(strings.TrimSpace(answer))
		if !dict.IsAnswer(answer) {
			return "", fmt.Errorf("%q is not in the answer list", answer)
		}
		return answer, nil
	case useDaily:
		return dict.Answers[daily.WordIndex(now, salt, len(dict.Answers))], nil
	}
	return dict.RandomAnswer(), nil
}

// selfPlay lets s play g to the end. onRow, if set, sees every scored guess.
func selfPlay(ctx context.Context, s *solver.Solver, g *game.Game, onRow func(string, game.Response)) (playResult, error) {
	logger := zerolog.Ctx(ctx).With().Str("game", g.ID).Logger()
	res := playResult{Answer: g.Answer}
	for !g.Finished {
		pick, err := s.NextGuess(ctx)
		if err != nil {
			return res, err
		}
		if !pick.Found() {
			return res, fmt.Errorf("answer %q: %w", g.Answer, errNoGuess)
		}
		resp, state, err := g.ApplyGuess(pick.Word)
		if err != nil {
			return res, err
		}
		logger.Debug().Str("guess", pick.Word).Stringer("reply", resp).Str("state", state).Msg("turn")
		res.Guesses = append(res.Guesses, pick.Word)
		if onRow != nil {
			onRow(pick.Word, resp)
		}
		if err := s.Update(pick.Word, resp); err != nil {
			return res, err
		}
	}
	res.Won = g.Won
	return res, nil
}
