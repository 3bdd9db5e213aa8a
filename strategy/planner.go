package strategy

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/pbnjay/memory"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/domino14/upperhold/dice"
	"github.com/domino14/upperhold/equity"
	"github.com/domino14/upperhold/sequence"
)

// ErrTooLarge is returned when a hand would need more roll sequences than
// the planner's budget allows. Enumeration is exhaustive and exponential in
// the number of dice, so only small hands are in range.
var ErrTooLarge = errors.New("hand too large to enumerate")

const (
	// FallbackMaxOutcomes is used when system memory cannot be determined.
	FallbackMaxOutcomes = 1 << 22
	// A rough per-sequence cost: a slice header plus its backing array.
	bytesPerSequenceOverhead = 32
	// Fraction of system memory a single enumeration may use.
	memoryFraction = 0.25
)

// DefaultMaxOutcomes sizes the roll budget from system memory for hands of
// the given number of dice.
func DefaultMaxOutcomes(numDice int) int {
	totalMem := memory.TotalMemory()
	if totalMem == 0 {
		return FallbackMaxOutcomes
	}
	per := float64(bytesPerSequenceOverhead + max(numDice, 1))
	n := int(memoryFraction * float64(totalMem) / per)
	log.Debug().Uint64("total-system-memory-bytes", totalMem).
		Int("max-outcomes", n).Msg("outcome-budget")
	return max(n, 1)
}

// Planner evaluates every hold of a hand, optionally on several threads.
// The answer never depends on the thread count: each hold's equity goes in
// its own slot and the slots are reduced in canonical order.
type Planner struct {
	calculator  equity.Calculator
	threads     int
	maxOutcomes int
}

// NewPlanner returns a planner using exhaustive enumeration, one thread per
// CPU and a memory-derived outcome budget.
func NewPlanner() *Planner {
	return &Planner{
		calculator: equity.Exhaustive{},
		threads:    max(1, runtime.NumCPU()),
	}
}

func (p *Planner) SetThreads(threads int) {
	p.threads = max(1, threads)
}

func (p *Planner) Threads() int {
	return p.threads
}

// SetMaxOutcomes caps the number of roll sequences a single hold may
// enumerate. Zero or less means derive it from system memory.
func (p *Planner) SetMaxOutcomes(n int) {
	p.maxOutcomes = n
}

func (p *Planner) SetCalculator(c equity.Calculator) {
	p.calculator = c
}

// Plan returns the best hold for hand. See Strategy for the search rule.
func (p *Planner) Plan(ctx context.Context, hand dice.Hand, sides int) (Result, error) {
	evals, err := p.evaluate(ctx, hand, sides)
	if err != nil {
		return Result{}, err
	}
	res := best(hand, sides, evals)
	log.Debug().Str("hand", hand.String()).Str("hold", res.Hold.String()).
		Float64("ev", res.ExpectedValue).Msg("best-hold")
	return res, nil
}

// Rank is Plan, but also returns every hold with its equity in Ranked,
// highest equity first. Equal equities keep canonical order.
func (p *Planner) Rank(ctx context.Context, hand dice.Hand, sides int) (Result, error) {
	evals, err := p.evaluate(ctx, hand, sides)
	if err != nil {
		return Result{}, err
	}
	res := best(hand, sides, evals)
	ranked := slices.Clone(evals)
	slices.SortStableFunc(ranked, func(a, b HoldEquity) int {
		switch {
		case a.Equity > b.Equity:
			return -1
		case a.Equity < b.Equity:
			return 1
		}
		return 0
	})
	res.Ranked = ranked
	return res, nil
}

func (p *Planner) checkBudget(hand dice.Hand, sides int) error {
	limit := p.maxOutcomes
	if limit <= 0 {
		limit = DefaultMaxOutcomes(len(hand))
	}
	// The empty hold re-rolls every die and is the largest enumeration.
	n, err := sequence.Count(sides, len(hand))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTooLarge, err)
	}
	if n > limit {
		return fmt.Errorf("%w: %d dice with %d sides is %d sequences, limit %d",
			ErrTooLarge, len(hand), sides, n, limit)
	}
	return nil
}

func (p *Planner) evaluate(ctx context.Context, hand dice.Hand, sides int) ([]HoldEquity, error) {
	if err := hand.Validate(sides); err != nil {
		return nil, err
	}
	if err := p.checkBudget(hand, sides); err != nil {
		return nil, err
	}
	evals := candidates(hand)
	logger := zerolog.Ctx(ctx)
	tstart := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	jobChan := make(chan int, p.threads)

	for t := 0; t < p.threads; t++ {
		g.Go(func() error {
			for i := range jobChan {
				if err := gctx.Err(); err != nil {
					return err
				}
				h := evals[i].Hold
				ev, err := p.calculator.Equity(h, sides, len(hand)-len(h))
				if err != nil {
					return fmt.Errorf("hold %v: %w", h, err)
				}
				evals[i].Equity = ev
			}
			return nil
		})
	}

	g.Go(func() error {
		defer close(jobChan)
		for i := range evals {
			select {
			case jobChan <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Debug().Int("holds", len(evals)).Int("threads", p.threads).
		Dur("elapsed", time.Since(tstart)).Msg("evaluated-holds")
	return evals, nil
}
