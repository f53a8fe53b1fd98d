package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/progress"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

type benchReport struct {
	Games        int         `json:"games" yaml:"games"`
	Won          int         `json:"won" yaml:"won"`
	Failed       []string    `json:"failed,omitempty" yaml:"failed,omitempty"`
	MeanGuesses  float64     `json:"meanGuesses" yaml:"mean_guesses"`
	MaxGuesses   int         `json:"maxGuesses" yaml:"max_guesses"`
	Distribution map[int]int `json:"distribution" yaml:"distribution"`
	Elapsed      string      `json:"elapsed" yaml:"elapsed"`
}

func newBenchCmd(load func() config) *cobra.Command {
	var limit int
	var format string

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Play every answer and report how many guesses it took",
		RunE: func(cmd *cobra.Command, _ []string) error {
			switch format {
			case "text", "json", "yaml":
			default:
				return fmt.Errorf("unknown format %q", format)
			}
			cfg := load()
			dict, err := loadDictionary(cfg)
			if err != nil {
				return err
			}

			// Progress counts games here, not scored guesses.
			var games solver.Reporter = progress.Nop{}
			if cfg.Progress != "off" && cfg.Progress != "none" {
				if r, err := reporter(cfg.Progress, cmd.ErrOrStderr()); err == nil {
					games = r
				}
			}

			answers := uniqueWords(dict.Answers)
			if limit > 0 && limit < len(answers) {
				answers = answers[:limit]
			}
			cache := store.NewMemoryStore()
			report, err := runBench(cmd.Context(), answers, solverFactory(cfg, dict, progress.Nop{}, cache), cfg.Rows, dict.IsAllowed, games)
			if err != nil {
				return err
			}
			entries, hits, misses := cache.Stats()
			zerolog.Ctx(cmd.Context()).Debug().
				Int("entries", entries).Int("hits", hits).Int("misses", misses).
				Msg("guess cache")
			return writeReport(cmd.OutOrStdout(), report, format)
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "only play the first N answers")
	cmd.Flags().StringVar(&format, "format", "text", "report format: text, json or yaml")
	return cmd
}

// runBench self-plays every answer with a fresh solver from newSolver.
func runBench(ctx context.Context, answers []string, newSolver func() (*solver.Solver, error), rows int, allowed func(string) bool, rep solver.Reporter) (benchReport, error) {
	start := time.Now()
	report := benchReport{Distribution: map[int]int{}}
	total := 0

	rep.Start(len(answers))
	defer rep.Done()
	for _, answer := range answers {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		s, err := newSolver()
		if err != nil {
			return report, err
		}
		g, err := game.New(answer, rows, allowed)
		if err != nil {
			return report, err
		}
		res, err := selfPlay(ctx, s, g, nil)
		if err != nil {
			return report, err
		}

		report.Games++
		rep.Advance(1)
		if !res.Won {
			report.Failed = append(report.Failed, answer)
			continue
		}
		n := len(res.Guesses)
		report.Won++
		report.Distribution[n]++
		report.MaxGuesses = max(report.MaxGuesses, n)
		total += n
	}
	if report.Won > 0 {
		report.MeanGuesses = float64(total) / float64(report.Won)
	}
	report.Elapsed = time.Since(start).Round(time.Millisecond).String()
	return report, nil
}

func writeReport(w io.Writer, r benchReport, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(r)
	}

	fmt.Fprintf(w, "games: %d  won: %d  mean: %.3f  max: %d  elapsed: %s\n",
		r.Games, r.Won, r.MeanGuesses, r.MaxGuesses, r.Elapsed)
	keys := make([]int, 0, len(r.Distribution))
	for k := range r.Distribution {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		fmt.Fprintf(w, "%3d  %5d  %s\n", k, r.Distribution[k], strings.Repeat("#", barWidth(r.Distribution[k], r.Won)))
	}
	if len(r.Failed) > 0 {
		fmt.Fprintf(w, "failed: %s\n", strings.Join(r.Failed, " "))
	}
	return nil
}

func barWidth(n, total int) int {
	if total == 0 {
		return 0
	}
	return (n*40 + total - 1) / total
}

func uniqueWords(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, w := range list {
		if _, ok := seen[w]; !ok {
			seen[w] = struct{}{}
			out = append(out, w)
		}
	}
	return out
}
