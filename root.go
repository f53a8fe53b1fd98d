// apps/go-solver/root.go
//
// Root command, configuration and shared construction helpers.
//
// Settings resolve flag > environment > default through viper:
//   WORDS_ANSWERS_FILE  --answers   answer list (one word per line)
//   WORDS_ALLOWED_FILE  --allowed   extra guesses
//   LOG_LEVEL           --log-level zerolog level
//   SOLVER_WORKERS      --workers   scoring goroutines (0 = GOMAXPROCS)
//   SOLVER_PROGRESS     --progress  auto|bar|log|off
//   GAME_ROWS           --rows      guesses per self-play game (0 = unlimited)
//   DAILY_SALT                      secret mixed into the daily pick

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/progress"
	"github.com/robalobadob/wordle/apps/go-solver/internal/solver"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
	"github.com/robalobadob/wordle/apps/go-solver/internal/words"
)

type config struct {
	AnswersFile string
	AllowedFile string
	LogLevel    string
	Workers     int
	Progress    string
	Rows        int
	DailySalt   string
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("log_level", "info")
	v.SetDefault("solver_workers", 0)
	v.SetDefault("solver_progress", "auto")
	v.SetDefault("game_rows", game.DefaultRows)
	v.SetDefault("daily_salt", "dev-salt")

	root := &cobra.Command{
		Use:           "wordle-solver",
		Short:         "Minimax Wordle solver",
		Long:          `wordle-solver picks the guess that leaves the fewest candidate answers in the worst case.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := setupLogging(v.GetString("log_level"), cmd.ErrOrStderr())
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	pf := root.PersistentFlags()
	pf.String("answers", "", "answer list file (env WORDS_ANSWERS_FILE)")
	pf.String("allowed", "", "extra guesses file (env WORDS_ALLOWED_FILE)")
	pf.String("log-level", "info", "log level (env LOG_LEVEL)")
	pf.Int("workers", 0, "scoring goroutines, 0 for GOMAXPROCS (env SOLVER_WORKERS)")
	pf.String("progress", "auto", "progress output: auto, bar, log or off (env SOLVER_PROGRESS)")
	pf.Int("rows", game.DefaultRows, "guesses per self-play game, 0 for unlimited (env GAME_ROWS)")
	for key, flag := range map[string]string{
		"words_answers_file": "answers",
		"words_allowed_file": "allowed",
		"log_level":          "log-level",
		"solver_workers":     "workers",
		"solver_progress":    "progress",
		"game_rows":          "rows",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	load := func() config {
		return config{
			AnswersFile: v.GetString("words_answers_file"),
			AllowedFile: v.GetString("words_allowed_file"),
			LogLevel:    v.GetString("log_level"),
			Workers:     v.GetInt("solver_workers"),
			Progress:    strings.ToLower(v.GetString("solver_progress")),
			Rows:        v.GetInt("game_rows"),
			DailySalt:   v.GetString("daily_salt"),
		}
	}

	root.AddCommand(newSolveCmd(load), newPlayCmd(load), newBenchCmd(load))
	return root
}

// setupLogging installs the global logger: console output on a terminal,
// JSON lines otherwise.
func setupLogging(level string, w io.Writer) zerolog.Logger {
	if lvl, err := zerolog.ParseLevel(level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if isTerminal(w) {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()
	return log.Logger
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// reporter maps the progress setting to a solver.Reporter.
func reporter(mode string, w io.Writer) (solver.Reporter, error) {
	switch mode {
	case "", "auto":
		if isTerminal(w) {
			return progress.NewBar(w, "scoring"), nil
		}
		return progress.NewLog(log.Logger, 1000), nil
	case "bar":
		return progress.NewBar(w, "scoring"), nil
	case "log":
		return progress.NewLog(log.Logger, 1000), nil
	case "off", "none":
		return progress.Nop{}, nil
	}
	return nil, fmt.Errorf("unknown progress mode %q", mode)
}

// loadDictionary loads the configured word lists and logs their sizes.
func loadDictionary(cfg config) (*words.Dictionary, error) {
	dict, err := words.Load(cfg.AnswersFile, cfg.AllowedFile)
	if err != nil {
		return nil, fmt.Errorf("load word lists: %w", err)
	}
	a, g := dict.Stats()
	log.Debug().Int("answers", a).Int("allowed", g).Msg("word lists loaded")
	return dict, nil
}

// solverFactory returns a constructor for fresh solvers over dict that share
// one guess cache.
func solverFactory(cfg config, dict *words.Dictionary, rep solver.Reporter, cache store.Store) func() (*solver.Solver, error) {
	return func() (*solver.Solver, error) {
		return solver.New(dict.Answers, dict.Guesses,
			solver.WithWorkers(cfg.Workers),
			solver.WithReporter(rep),
			solver.WithCache(cache),
		)
	}
}
