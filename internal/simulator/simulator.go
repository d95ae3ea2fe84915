// Package simulator estimates the house edge of a blackjack rule set by
// playing out independent hands across parallel lanes and reducing the
// per-lane outcomes into a single empirical return.
package simulator

import (
	"context"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/hankhsu1996/blackjack-basic-strategy/internal/config"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/randutil"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/shoe"
	"github.com/hankhsu1996/blackjack-basic-strategy/internal/strategy"
)

// unitStdDev is the empirical standard deviation of a single blackjack
// hand's outcome in bet units. It varies a little with the rule set but is
// stable enough to treat as a constant for confidence intervals at the
// sample sizes this simulator targets.
const unitStdDev = 1.14

// Config holds configuration for a simulation run.
type Config struct {
	Rules  config.Rules
	Tables *strategy.Tables

	// Hands is the target hand count. Each of Blocks*LanesPerBlock lanes
	// plays floor(Hands/lanes) hands; the division remainder is dropped.
	Hands         int64
	Blocks        int
	LanesPerBlock int

	Seed   int64
	Logger *log.Logger
	Clock  quartz.Clock
}

// Result holds the aggregate outcome of a run.
type Result struct {
	Hands       int64
	TotalReturn float64
	Elapsed     time.Duration
}

// HouseEdge returns the house's expected profit per unit wagered, as a
// percentage. Positive favors the house.
func (r *Result) HouseEdge() float64 {
	if r.Hands == 0 {
		return 0
	}
	return -r.TotalReturn / float64(r.Hands) * 100
}

// ConfidenceHalfWidth returns the half-width of the 95% confidence interval
// around the house edge, in percentage points.
func (r *Result) ConfidenceHalfWidth() float64 {
	if r.Hands == 0 {
		return 0
	}
	return 1.96 * unitStdDev / math.Sqrt(float64(r.Hands)) * 100
}

// Simulator runs blackjack hand simulations.
type Simulator struct {
	config Config
}

// New creates a simulator with the given configuration.
func New(cfg Config) *Simulator {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Simulator{config: cfg}
}

// Run executes the simulation across all lanes and reduces the results.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config
	if cfg.Tables == nil {
		return nil, fmt.Errorf("simulator: no strategy tables")
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("simulator: %w", err)
	}
	lanes := cfg.Blocks * cfg.LanesPerBlock
	if lanes < 1 {
		return nil, fmt.Errorf("simulator: invalid lane topology %dx%d", cfg.Blocks, cfg.LanesPerBlock)
	}
	quota := cfg.Hands / int64(lanes)
	if quota < 1 {
		return nil, fmt.Errorf("simulator: %d hands across %d lanes leaves empty lanes", cfg.Hands, lanes)
	}

	cfg.Logger.Debug("starting simulation",
		"rules", cfg.Rules.String(),
		"lanes", lanes,
		"hands_per_lane", quota,
		"seed", cfg.Seed)

	start := cfg.Clock.Now()

	totals := make([]float64, lanes)
	counts := make([]int64, lanes)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < lanes; i++ {
		g.Go(func() error {
			rng := randutil.Lane(cfg.Seed, i)
			l := newLane(cfg.Rules, cfg.Tables, shoe.New(cfg.Rules.DeckCount, cfg.Rules.Penetration, rng))
			sum := 0.0
			for n := int64(0); n < quota; n++ {
				if n&0xffff == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				sum += l.playRound()
			}
			// Each slot is written by exactly one lane.
			totals[i] = sum
			counts[i] = quota
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	totalReturn, totalHands := Reduce(totals, counts)
	elapsed := cfg.Clock.Since(start)

	cfg.Logger.Debug("simulation complete",
		"hands", totalHands,
		"return", totalReturn,
		"elapsed", elapsed)

	return &Result{
		Hands:       totalHands,
		TotalReturn: totalReturn,
		Elapsed:     elapsed,
	}, nil
}

// Reduce combines per-lane totals into global sums. Addition is associative
// and commutative here: permuting the lane order can only perturb the
// least-significant floating-point bits, never the statistical estimate.
func Reduce(laneTotals []float64, laneCounts []int64) (totalReturn float64, totalHands int64) {
	for _, t := range laneTotals {
		totalReturn += t
	}
	for _, c := range laneCounts {
		totalHands += c
	}
	return totalReturn, totalHands
}
