package batch

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"quotepilot/core/engine"
)

// Entry is the outcome of one batch line
type Entry struct {
	Line          Line
	Result        engine.Result
	ExtendedPrice decimal.Decimal
}

// Report is the outcome of a batch run, in input order
type Report struct {
	Entries   []Entry
	Succeeded int
	Failed    int

	// Totals holds the sum of extended prices per currency
	Totals   map[string]decimal.Decimal
	Duration time.Duration
}

// Currencies returns the currencies in Totals, sorted
func (r *Report) Currencies() []string {
	codes := make([]string, 0, len(r.Totals))
	for code := range r.Totals {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Runner quotes batch lines concurrently
type Runner struct {
	engine  *engine.Engine
	workers int
	logger  *zap.Logger
}

// NewRunner creates a runner with at most workers concurrent quotes
func NewRunner(e *engine.Engine, workers int, logger *zap.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{
		engine:  e,
		workers: workers,
		logger:  logger,
	}
}

// Run quotes every line. Quote failures are recorded in the report; only
// context cancellation returns an error, together with the partial report.
func (r *Runner) Run(ctx context.Context, lines []Line) (*Report, error) {
	start := time.Now()
	entries := make([]Entry, len(lines))
	done := make([]bool, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, line := range lines {
		if gctx.Err() != nil {
			break
		}
		i, line := i, line
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			entries[i] = r.quote(line)
			done[i] = true
			return nil
		})
	}
	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}

	report := &Report{
		Entries:  make([]Entry, 0, len(lines)),
		Totals:   make(map[string]decimal.Decimal),
		Duration: time.Since(start),
	}
	for i := range entries {
		if !done[i] {
			continue
		}
		entry := entries[i]
		report.Entries = append(report.Entries, entry)
		if entry.Result.OK() {
			report.Succeeded++
			cur := entry.Result.Quote.Currency
			report.Totals[cur] = report.Totals[cur].Add(entry.ExtendedPrice)
		} else {
			report.Failed++
		}
	}

	r.logger.Info("batch complete",
		zap.Int("lines", len(lines)),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
		zap.Duration("duration", report.Duration),
	)
	return report, err
}

func (r *Runner) quote(line Line) Entry {
	var result engine.Result
	if line.Model == "" {
		result = r.engine.QuotePartNumber(line.PartNumber)
	} else {
		result = r.engine.Quote(line.Model, line.PartNumber)
	}

	entry := Entry{Line: line, Result: result}
	if result.OK() {
		entry.ExtendedPrice = result.Quote.TotalPrice.Mul(decimal.NewFromInt(line.Quantity))
	} else {
		r.logger.Debug("batch line failed",
			zap.String("label", line.Label),
			zap.String("error", result.Failure.Message),
		)
	}
	return entry
}
