package campaign

import (
	"context"
	"fmt"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/VJota108/janus/pkg/plan"
	"github.com/VJota108/janus/pkg/pool"
	"golang.org/x/sync/errgroup"
)

// SweepResult is the outcome of applying one subplan to a simulated fabric
type SweepResult struct {
	SubplanID int
	Plan      string
	Score     float64
	Switches  int
	// WorstBlock is the largest fraction of any block that was down while
	// the subplan was applied
	WorstBlock float64
	Blocks     string
}

// Sweep applies every subplan to a fabric borrowed from fabrics, one
// subplan at a time per fabric, and records how much of each block it
// took down. Every worker drives its own iterator. Fabrics are returned
// to the pool undrained.
func Sweep(ctx context.Context, planner plan.Planner, fabrics *pool.Pool[*fabric.Jupiter], workers int) ([]SweepResult, error) {
	if workers <= 0 {
		workers = 1
	}

	total := planner.Iterator().SubplanCount()
	results := make([]SweepResult, total)

	ids := make(chan int)
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(ids)
		for id := 0; id < total; id++ {
			select {
			case ids <- id:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < workers; w++ {
		g.Go(func() error {
			it := planner.Iterator()
			for id := range ids {
				res, err := sweepOne(ctx, it, fabrics, id)
				if err != nil {
					return err
				}
				results[id] = res
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger := log.WithComponent("sweep")
	logger.Info().Int("subplans", total).Int("workers", workers).Msg("Sweep complete")
	return results, nil
}

func sweepOne(ctx context.Context, it plan.Iterator, fabrics *pool.Pool[*fabric.Jupiter], id int) (SweepResult, error) {
	if err := ctx.Err(); err != nil {
		return SweepResult{}, err
	}

	timer := metrics.NewTimer()
	net, err := fabrics.Get(ctx)
	if err != nil {
		return SweepResult{}, fmt.Errorf("failed to borrow fabric: %w", err)
	}
	timer.ObserveDuration(metrics.PoolWaitDuration)
	defer func() { _ = fabrics.Put(net) }()

	op := it.Materialize(id)
	defer op.Release()

	if err := op.Pre(net); err != nil {
		return SweepResult{}, fmt.Errorf("subplan %d: %w", id, err)
	}

	worst := 0.0
	for _, b := range net.Observe() {
		worst = max(worst, b.DownFraction())
	}
	res := SweepResult{
		SubplanID:  id,
		Plan:       it.Explain(id),
		Score:      it.PrefScore(id),
		Switches:   op.Size(),
		WorstBlock: worst,
		Blocks:     op.Explain(net),
	}

	if err := op.Post(net); err != nil {
		return SweepResult{}, fmt.Errorf("subplan %d: %w", id, err)
	}
	if err := net.Reset(); err != nil {
		return SweepResult{}, fmt.Errorf("subplan %d: %w", id, err)
	}

	metrics.SubplansEvaluated.Inc()
	return res, nil
}

// NewFabricPool builds n fabrics of the given shape and pools them
func NewFabricPool(shape fabric.Shape, n int) (*pool.Pool[*fabric.Jupiter], error) {
	if n <= 0 {
		n = 1
	}
	fabrics := make([]*fabric.Jupiter, n)
	for i := range fabrics {
		net, err := fabric.NewJupiter(shape, nil)
		if err != nil {
			return nil, err
		}
		fabrics[i] = net
	}
	return pool.New(fabrics...), nil
}
