package solver

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/sync/errgroup"

	"github.com/robalobadob/wordle/apps/go-solver/internal/game"
	"github.com/robalobadob/wordle/apps/go-solver/internal/store"
)

// Pick is the result of NextGuess. The zero Pick means no guess is available:
// either no candidate answer is left or the accumulated feedback contradicts
// itself.
type Pick struct {
	Word string
	// WorstCase is the largest number of candidates that can remain after
	// playing Word.
	WorstCase int
	// Partial is set when the search was cancelled and Word is only the best
	// among the guesses scored so far.
	Partial bool
}

// Found reports whether the pick carries a guess.
func (p Pick) Found() bool { return p.Word != "" }

type scored struct {
	index int
	worst int
}

var unscored = scored{index: -1, worst: math.MaxInt}

// better orders by worst case, then vocabulary position.
func (a scored) better(b scored) bool {
	if a.index < 0 {
		return false
	}
	if b.index < 0 {
		return true
	}
	return a.worst < b.worst || (a.worst == b.worst && a.index < b.index)
}

// NextGuess returns the vocabulary word with the smallest non-zero worst case
// over all responses, ties going to the word listed first.
//
// With a single candidate left it is returned without searching. Cancelling
// ctx stops the search early: the best guess so far comes back with Partial
// set, or ErrIncompleteSearch if nothing was scored yet.
func (s *Solver) NextGuess(ctx context.Context) (Pick, error) {
	logger := zerolog.Ctx(ctx)
	remaining := s.Remaining()
	switch len(remaining) {
	case 0:
		return Pick{}, nil
	case 1:
		return Pick{Word: remaining[0], WorstCase: 1}, nil
	}

	var key string
	if s.cache != nil {
		key = s.fingerprint(remaining)
		e, err := s.cache.Get(ctx, key)
		switch {
		case err == nil:
			logger.Debug().Str("guess", e.Word).Int("worst", e.WorstCase).Msg("guess cache hit")
			return Pick{Word: e.Word, WorstCase: e.WorstCase}, nil
		case !errors.Is(err, store.ErrNotFound):
			logger.Warn().Err(err).Msg("guess cache lookup")
		}
	}

	logger.Debug().
		Int("vocabulary", len(s.vocabulary)).
		Int("candidates", len(remaining)).
		Int("workers", s.workers).
		Msg("searching")
	start := time.Now()

	best, complete := s.search(ctx, remaining)
	if best.index < 0 {
		if !complete {
			return Pick{}, fmt.Errorf("%w: %w", ErrIncompleteSearch, ctx.Err())
		}
		logger.Debug().Msg("no consistent guess")
		return Pick{}, nil
	}

	pick := Pick{Word: s.vocabulary[best.index], WorstCase: best.worst, Partial: !complete}
	if pick.Partial {
		logger.Warn().Str("guess", pick.Word).Int("worst", pick.WorstCase).Msg("search cancelled; returning best so far")
		return pick, nil
	}
	if s.cache != nil {
		if err := s.cache.Save(ctx, key, store.Entry{Word: pick.Word, WorstCase: pick.WorstCase}); err != nil {
			logger.Warn().Err(err).Msg("guess cache save")
		}
	}
	logger.Debug().
		Str("guess", pick.Word).
		Int("worst", pick.WorstCase).
		Dur("elapsed", time.Since(start)).
		Msg("search done")
	return pick, nil
}

// search scores the vocabulary across s.workers goroutines. Worker w takes
// guesses w, w+workers, ... in increasing order and keeps its own best; the
// per-worker bests are merged with the same ordering, so the result does not
// depend on the number of workers.
func (s *Solver) search(ctx context.Context, remaining []string) (scored, bool) {
	n := len(s.vocabulary)
	workers := min(max(s.workers, 1), n)

	var bound atomic.Int64
	bound.Store(math.MaxInt64)
	var evaluated atomic.Int64

	s.reporter.Start(n)
	defer s.reporter.Done()

	results := make([]scored, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			best := unscored
			for i := w; i < n; i += workers {
				if ctx.Err() != nil {
					break
				}
				worst, pruned := s.worstCase(s.vocabulary[i], remaining, best.worst, &bound)
				evaluated.Add(1)
				s.reporter.Advance(1)
				if pruned || worst == 0 {
					continue
				}
				if worst < best.worst {
					best = scored{index: i, worst: worst}
					lowerBound(&bound, worst)
				}
			}
			results[w] = best
			return nil
		})
	}
	_ = g.Wait()

	best := unscored
	for _, r := range results {
		if r.better(best) {
			best = r
		}
	}
	return best, evaluated.Load() == int64(n)
}

// worstCase returns the largest number of remaining candidates consistent
// with any feasible response to guess.
//
// It gives up (pruned) as soon as the running maximum reaches localBest,
// which belongs to an earlier guess of the same worker, or exceeds the shared
// bound, which some other guess already achieves. A pruned guess can never be
// the final pick.
func (s *Solver) worstCase(guess string, remaining []string, localBest int, bound *atomic.Int64) (worst int, pruned bool) {
	for resp := range game.Responses(s.length) {
		next, err := s.constraints.Derive(guess, resp)
		if err != nil {
			continue
		}
		count := 0
		for _, w := range remaining {
			if next.Match(w) {
				count++
			}
		}
		if count > worst {
			worst = count
			if worst >= localBest || int64(worst) > bound.Load() {
				return worst, true
			}
		}
	}
	return worst, false
}

func lowerBound(bound *atomic.Int64, v int) {
	for {
		cur := bound.Load()
		if int64(v) >= cur || bound.CompareAndSwap(cur, int64(v)) {
			return
		}
	}
}

// fingerprint identifies the search state: the pick depends only on the
// vocabulary and the remaining candidates.
func (s *Solver) fingerprint(remaining []string) string {
	return hex.EncodeToString(digestWords(s.vocabDigest, remaining))
}

func digestWords(prefix []byte, words []string) []byte {
	h, _ := blake2b.New256(nil)
	h.Write(prefix)
	for _, w := range words {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return h.Sum(nil)
}
