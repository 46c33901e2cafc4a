package showdown

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/quartz"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/lox/handrank/internal/runid"
	"github.com/lox/handrank/poker"
)

// Runner evaluates showdown files.
type Runner struct {
	logger   zerolog.Logger
	clock    quartz.Clock
	ids      *runid.Generator
	workers  int
	failFast bool
}

// Option configures a Runner.
type Option func(*Runner)

// WithClock sets the clock used to stamp reports.
func WithClock(clock quartz.Clock) Option {
	return func(r *Runner) { r.clock = clock }
}

// WithWorkers bounds the goroutines used per showdown. Zero means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithFailFast aborts the run on the first malformed showdown.
func WithFailFast(failFast bool) Option {
	return func(r *Runner) { r.failFast = failFast }
}

// WithRunIDs sets the run ID generator.
func WithRunIDs(g *runid.Generator) Option {
	return func(r *Runner) { r.ids = g }
}

// NewRunner creates a runner logging to logger.
func NewRunner(logger zerolog.Logger, opts ...Option) *Runner {
	r := &Runner{
		logger: logger.With().Str("component", "showdown").Logger(),
		clock:  quartz.NewReal(),
		ids:    runid.NewGenerator(nil),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every showdown in file in order. A malformed hand fails only
// its own showdown unless the runner is fail-fast.
func (r *Runner) Run(ctx context.Context, file *File) (*Report, error) {
	id, err := r.ids.Generate()
	if err != nil {
		return nil, err
	}

	start := r.clock.Now()
	rep := &Report{
		RunID:       id,
		EvaluatedAt: start.UTC(),
		Results:     make([]Result, 0, len(file.Showdowns)),
	}
	logger := r.logger.With().Str("run_id", id).Logger()

	for _, sd := range file.Showdowns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err := r.evaluate(ctx, sd)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil, err
			}
			if r.failFast {
				return nil, fmt.Errorf("showdown %q: %w", sd.Name, err)
			}
			logger.Warn().Err(err).Str("showdown", sd.Name).Msg("Showdown failed")
			res = Result{Name: sd.Name, Error: err.Error()}
		} else {
			logger.Debug().
				Str("showdown", sd.Name).
				Int("hands", len(sd.Hands)).
				Int("winners", len(res.Winners)).
				Msg("Showdown evaluated")
		}
		rep.Results = append(rep.Results, res)
	}

	logger.Info().
		Int("showdowns", len(rep.Results)).
		Int("failed", rep.Failed()).
		Dur("elapsed", r.clock.Since(start)).
		Msg("Run complete")
	return rep, nil
}

func (r *Runner) evaluate(ctx context.Context, sd Showdown) (Result, error) {
	scores, err := poker.EvaluateParallel(ctx, sd.Hands, r.workers)
	if err != nil {
		return Result{}, err
	}

	hands := lo.Map(scores, func(score poker.Score, i int) HandResult {
		return HandResult{
			Text:     sd.Hands[i],
			Category: score.Category.String(),
			Key:      lo.Map(score.Key[:], func(v uint16, _ int) int { return int(v) }),
		}
	})
	winners := lo.Map(poker.BestIndices(scores), func(i int, _ int) string {
		return sd.Hands[i]
	})

	return Result{Name: sd.Name, Hands: hands, Winners: winners}, nil
}
