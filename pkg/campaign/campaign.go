package campaign

import (
	"fmt"
	"sort"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/VJota108/janus/pkg/plan"
	"github.com/VJota108/janus/pkg/storage"
	"github.com/VJota108/janus/pkg/types"
)

// Candidate is a ranked subplan
type Candidate struct {
	ID    int
	Plan  []int
	Score float64
	Text  string
}

// Rank returns every subplan of the iterator ordered by descending
// preference score, ties broken by ascending id
func Rank(it plan.Iterator) []Candidate {
	out := make([]Candidate, 0, it.SubplanCount())
	for it.Begin(); !it.End(); it.Next() {
		id := it.Current()
		out = append(out, Candidate{
			ID:    id,
			Plan:  it.Plan(id),
			Score: it.PrefScore(id),
			Text:  it.Explain(id),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].ID < out[j].ID
	})
	return out
}

// CheckID returns an error if id is not a subplan of the iterator
func CheckID(it plan.Iterator, id int) error {
	if id < 0 || id >= it.SubplanCount() {
		return fmt.Errorf("subplan %d out of range [0, %d)", id, it.SubplanCount())
	}
	return nil
}

// Runner applies subplans to a persisted fabric and journals every
// operation
type Runner struct {
	planner plan.Planner
	net     *fabric.Jupiter
	store   storage.Store
}

// NewRunner creates a runner
func NewRunner(planner plan.Planner, net *fabric.Jupiter, store storage.Store) *Runner {
	return &Runner{planner: planner, net: net, store: store}
}

// Drain materializes subplan id and drains its switches. The operation is
// journaled even when it fails partway; the error is then returned along
// with the record.
func (r *Runner) Drain(id int) (*types.OperationRecord, error) {
	return r.apply(id, types.OperationActionDrain)
}

// Undrain materializes subplan id and undrains its switches
func (r *Runner) Undrain(id int) (*types.OperationRecord, error) {
	return r.apply(id, types.OperationActionUndrain)
}

func (r *Runner) apply(id int, action types.OperationAction) (*types.OperationRecord, error) {
	it := r.planner.Iterator()
	if err := CheckID(it, id); err != nil {
		return nil, err
	}

	op := it.Materialize(id)
	defer op.Release()

	drain := action == types.OperationActionDrain

	timer := metrics.NewTimer()
	var err error
	if drain {
		err = op.Pre(r.net)
	} else {
		err = op.Post(r.net)
	}
	timer.ObserveDurationVec(metrics.OperationDuration, string(action))

	record := &types.OperationRecord{
		Action:    action,
		SubplanID: id,
		Subplan:   it.Explain(id),
		Blocks:    op.Explain(r.net),
	}
	for _, sw := range op.Switches() {
		// A failed operation only journals the switches it left in the
		// requested state
		if err == nil || r.net.IsDrained(sw.SID) == drain {
			record.Switches = append(record.Switches, sw.SID)
		}
	}
	if err != nil {
		record.Error = err.Error()
	}

	if jerr := r.store.CreateOperation(record); jerr != nil {
		if err != nil {
			return nil, fmt.Errorf("%w (failed to journal partial operation: %v)", err, jerr)
		}
		return nil, fmt.Errorf("failed to journal operation: %w", jerr)
	}

	logger := log.WithOperation(record.ID)
	if err != nil {
		logger.Error().Err(err).
			Str("action", string(action)).
			Int("subplan_id", id).
			Int("switches", len(record.Switches)).
			Msg("Operation partially applied")
		return record, err
	}

	logger.Info().
		Str("action", string(action)).
		Int("subplan_id", id).
		Int("switches", len(record.Switches)).
		Msg("Operation applied")

	return record, nil
}

// Status describes the observed state of the fabric
type Status struct {
	Blocks      []types.BlockStats
	Drained     []int
	SubplanID   int
	Plan        []int
	SubplanText string
}

// Status observes the fabric and infers the least dominative subplan
func (r *Runner) Status() Status {
	it := r.planner.Iterator()
	blocks := r.net.Observe()
	id := it.LeastDominativeSubplan(blocks)
	return Status{
		Blocks:      blocks,
		Drained:     r.net.Drained(),
		SubplanID:   id,
		Plan:        it.Plan(id),
		SubplanText: it.Explain(id),
	}
}
