package plan

import (
	"fmt"
	"strings"

	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/VJota108/janus/pkg/partition"
	"github.com/VJota108/janus/pkg/types"
)

// defaultOperationCapacity is the initial capacity of a materialized
// operation's switch list
const defaultOperationCapacity = 10

// JupiterIterator enumerates the subplans of a JupiterPlanner. Its tuple
// has one count per group, in group order.
type JupiterIterator struct {
	planner *JupiterPlanner
	state   partition.Iterator
	tuple   []int
}

var _ Iterator = (*JupiterIterator)(nil)

func newJupiterIterator(p *JupiterPlanner) *JupiterIterator {
	logger := log.WithComponent("plan")

	parts := make([]partition.Iterator, len(p.groups))
	for i, g := range p.groups {
		logger.Debug().Int("group", i).Int("batch_size", g.batchSize).Msg("Creating group enumerator")
		parts[i] = partition.NewNPart(g.batchSize)
	}

	it := &JupiterIterator{
		planner: p,
		state:   partition.Compose(parts...),
	}
	it.tuple = make([]int, it.state.TupleSize())

	metrics.SubplansTotal.Set(float64(it.state.NumSubsets()))
	logger.Debug().Int("subplans", it.state.NumSubsets()).Msg("Composed plan iterator")

	return it
}

func (it *JupiterIterator) SubplanCount() int { return it.state.NumSubsets() }
func (it *JupiterIterator) Begin()            { it.state.Begin() }
func (it *JupiterIterator) Next()             { it.state.Next() }
func (it *JupiterIterator) End() bool         { return it.state.End() }
func (it *JupiterIterator) Current() int      { return it.state.Current() }

// decode fills the scratch tuple with the counts of id
func (it *JupiterIterator) decode(id int) []int {
	it.state.ToTuple(id, it.tuple)
	return it.tuple
}

// Plan returns a copy of the per-group counts of id
func (it *JupiterIterator) Plan(id int) []int {
	out := make([]int, len(it.tuple))
	copy(out, it.decode(id))
	return out
}

// PrefScore sums count/batchSize over all groups. It is 0 for the all-zero
// subplan and grows with every count.
func (it *JupiterIterator) PrefScore(id int) float64 {
	tuple := it.decode(id)
	score := 0.0
	for i, g := range it.planner.groups {
		score += portion(tuple[i], g.batchSize)
	}
	return score
}

func (it *JupiterIterator) Explain(id int) string {
	tuple := it.decode(id)
	parts := make([]string, len(it.planner.groups))
	for i, g := range it.planner.groups {
		parts[i] = fmt.Sprintf("%2d/%2d", tuple[i], g.batchSize)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Materialize selects, for every class, the first switches of the class
// in proportion to its group's count, rounded by the planner's policy and
// never more than the class holds.
func (it *JupiterIterator) Materialize(id int) Operation {
	timer := metrics.NewTimer()
	defer timer.ObserveDuration(metrics.MaterializeDuration)

	tuple := it.decode(id)
	op := &JupiterOperation{
		inventory: it.planner.switches,
		switches:  make([]int, 0, defaultOperationCapacity),
	}

	for i, g := range it.planner.groups {
		for _, c := range g.classes {
			n := take(it.planner.opts.Rounding, len(c.switches), tuple[i], g.batchSize)
			op.add(c.switches[:n])
		}
	}

	metrics.OperationsMaterialized.Inc()
	metrics.OperationSize.Observe(float64(op.Size()))

	logger := log.WithSubplan(id)
	logger.Debug().Ints("plan", tuple).Int("switches", op.Size()).Msg("Materialized subplan")

	return op
}

// matchBlock returns the observed block that accounts for class c
func matchBlock(observed []types.BlockStats, c *jupiterClass) (types.BlockStats, bool) {
	for _, b := range observed {
		switch {
		case b.ID.Type == types.BlockTypeCore && c.role == types.SwitchRoleCore:
			return b, true
		case b.ID.Type == types.BlockTypePodAggregation && c.role == types.SwitchRoleAggregation && b.ID.ID == c.pod:
			return b, true
		}
	}
	return types.BlockStats{}, false
}

// LeastDominativeSubplan computes, for each group, the largest fraction of
// any class that the observed blocks report as down, clamped to 1, and
// takes floor(fraction * batchSize) units of the group.
func (it *JupiterIterator) LeastDominativeSubplan(observed []types.BlockStats) int {
	opts := it.planner.opts
	counts := make([]int, len(it.planner.groups))

	for i, g := range it.planner.groups {
		// Largest down/size over the classes, kept as a fraction
		bestDown, bestSize := 0, 1

		for _, c := range g.classes {
			size := len(c.switches)
			block, ok := matchBlock(observed, c)
			if !ok {
				opts.warn(Warning{
					Kind:    WarningUnmatchedClass,
					Group:   i,
					Pod:     c.pod,
					Role:    c.role,
					Message: "no observed block matches class",
				})
				continue
			}

			down := max(block.DownSwitches, 0)
			if down > size {
				opts.warn(Warning{
					Kind:     WarningObservationSaturated,
					Group:    i,
					Pod:      c.pod,
					Role:     c.role,
					Observed: float64(down) / float64(size),
					Message:  "inaccurate estimation, more switches down than the class holds",
				})
				down = size
			}
			if down*bestSize > bestDown*size {
				bestDown, bestSize = down, size
			}
		}

		counts[i] = bestDown * g.batchSize / bestSize
	}

	id := it.state.FromTuple(counts)
	logger := log.WithSubplan(id)
	logger.Debug().Ints("plan", counts).Msg("Computed least dominative subplan")
	return id
}
