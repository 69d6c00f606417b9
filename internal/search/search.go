// Package search finds the set of four digits whose arithmetic expressions
// cover the longest run of consecutive targets 1..n.
package search

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"sync"
	"time"
)

// Options configures Search.
type Options struct {
	// Workers is the number of goroutines enumerating digit sets.
	// Values below 1 mean runtime.NumCPU().
	Workers int
	// Pool overrides the digits that sets are drawn from. Nil means Pool.
	Pool   []int
	Logger *slog.Logger
}

// Result is the outcome of a full search.
type Result struct {
	Digits      Digits
	N           int
	Expressions []string
	// Outcomes holds every enumerated set in combination order.
	Outcomes []*Outcome
}

// Best returns the outcome for the winning digit set.
func (r *Result) Best() *Outcome {
	for _, o := range r.Outcomes {
		if o.Digits == r.Digits {
			return o
		}
	}
	return nil
}

// Leaders returns up to k outcomes ordered by run length, longest first.
// Equal run lengths keep combination order.
func (r *Result) Leaders(k int) []*Outcome {
	ranked := append([]*Outcome(nil), r.Outcomes...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].RunLength() > ranked[j].RunLength()
	})
	if k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// Search enumerates every digit set from the pool and keeps the one with the
// longest run. Sets are enumerated concurrently but compared in combination
// order, so the first set wins a tie whatever the worker count.
func Search(ctx context.Context, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}
	pool := opts.Pool
	if pool == nil {
		pool = Pool
	}

	combos := Combinations(pool)
	logger.Debug("search started", "combinations", len(combos), "workers", workers)
	start := time.Now()

	type job struct {
		idx    int
		digits Digits
	}
	type result struct {
		idx     int
		outcome *Outcome
	}

	jobCh := make(chan job)
	resCh := make(chan result, len(combos))
	var wg sync.WaitGroup

	worker := func() {
		defer wg.Done()
		for j := range jobCh {
			o := Enumerate(j.digits)
			logger.Debug("digit set enumerated", "digits", j.digits.Key(), "n", o.RunLength(), "targets", o.Distinct())
			resCh <- result{idx: j.idx, outcome: o}
		}
	}
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go worker()
	}

	go func() {
		defer close(jobCh)
		for i, d := range combos {
			select {
			case jobCh <- job{idx: i, digits: d}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(resCh)
	}()

	outcomes := make([]*Outcome, len(combos))
	for res := range resCh {
		outcomes[res.idx] = res.outcome
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r := fold(outcomes)
	logger.Info("search finished",
		"digits", r.Digits.Key(),
		"n", r.N,
		"combinations", len(outcomes),
		"elapsed", time.Since(start))
	return r, nil
}

// fold picks the outcome with the strictly longest run, first one on ties.
func fold(outcomes []*Outcome) *Result {
	r := &Result{Outcomes: outcomes}
	best := 0
	for _, o := range outcomes {
		n := o.RunLength()
		if n > best {
			best = n
			r.Digits = o.Digits
			r.N = n
			r.Expressions = o.Chain()
		}
	}
	return r
}
