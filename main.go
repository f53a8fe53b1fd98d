// apps/go-solver/main.go
//
// Entry point for the Wordle minimax solver CLI.
// Loads .env (development convenience) and hands over to cobra.

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.Error().Err(err).Msg("wordle-solver")
		stop()
		os.Exit(1)
	}
}
