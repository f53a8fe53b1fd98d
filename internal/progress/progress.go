// Package progress provides solver.Reporter implementations.
//
// All reporters accept Advance from several goroutines at once.
package progress

import (
	"io"
	"os"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
)

// Nop discards progress.
type Nop struct{}

func (Nop) Start(int)   {}
func (Nop) Advance(int) {}
func (Nop) Done()       {}

// Bar draws a terminal progress bar, one per search.
type Bar struct {
	w           io.Writer
	description string
	bar         *progressbar.ProgressBar
}

// NewBar returns a Bar writing to w; nil means stderr.
func NewBar(w io.Writer, description string) *Bar {
	if w == nil {
		w = os.Stderr
	}
	return &Bar{w: w, description: description}
}

func (b *Bar) Start(total int) {
	b.bar = progressbar.NewOptions64(int64(total),
		progressbar.OptionSetWriter(b.w),
		progressbar.OptionSetDescription(b.description),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}

func (b *Bar) Advance(n int) {
	if b.bar != nil {
		_ = b.bar.Add(n)
	}
}

func (b *Bar) Done() {
	if b.bar != nil {
		_ = b.bar.Finish()
		b.bar = nil
	}
}

// Log writes a debug line with the estimated time left every Every guesses.
type Log struct {
	logger zerolog.Logger
	every  int64

	total atomic.Int64
	done  atomic.Int64
	start atomic.Int64 // unix nanos
}

// NewLog returns a Log reporter; every <= 0 defaults to 1000.
func NewLog(logger zerolog.Logger, every int) *Log {
	if every <= 0 {
		every = 1000
	}
	return &Log{logger: logger, every: int64(every)}
}

func (l *Log) Start(total int) {
	l.total.Store(int64(total))
	l.done.Store(0)
	l.start.Store(time.Now().UnixNano())
}

func (l *Log) Advance(n int) {
	done := l.done.Add(int64(n))
	if done/l.every == (done-int64(n))/l.every {
		return
	}
	total := l.total.Load()
	elapsed := time.Since(time.Unix(0, l.start.Load()))
	var eta time.Duration
	if done > 0 && total > done {
		eta = time.Duration(float64(elapsed) / float64(done) * float64(total-done))
	}
	l.logger.Debug().
		Int64("done", done).
		Int64("total", total).
		Dur("elapsed", elapsed).
		Dur("eta", eta.Round(time.Millisecond)).
		Msg("scoring guesses")
}

func (l *Log) Done() {
	l.logger.Debug().
		Int64("done", l.done.Load()).
		Dur("elapsed", time.Since(time.Unix(0, l.start.Load()))).
		Msg("scoring finished")
}

// Processed reports how many guesses have been scored since Start.
func (l *Log) Processed() int { return int(l.done.Load()) }
