package plan

import (
	"errors"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/types"
)

var (
	// ErrEmptyInventory is returned when a planner is built without switches
	ErrEmptyInventory = errors.New("creating a planner with no switches")
	// ErrNoGroups is returned when no degree of freedom is given
	ErrNoGroups = errors.New("creating a planner with no groups")
	// ErrInvalidDegree is returned for a negative degree of freedom
	ErrInvalidDegree = errors.New("degree of freedom must not be negative")
)

// Planner enumerates maintenance plans for one topology family
type Planner interface {
	// Iterator returns a new iterator over the planner's subplans. The
	// iterator must not outlive the planner.
	Iterator() Iterator
}

// Iterator walks the subplans of a planner. Ids are in
// [0, SubplanCount()); passing any other id panics.
//
// An Iterator reuses a scratch buffer across calls and is not safe for
// concurrent use. Use one iterator per goroutine.
type Iterator interface {
	SubplanCount() int

	Begin()
	Next()
	End() bool
	Current() int

	// Plan returns the per-group counts of a subplan
	Plan(id int) []int
	// PrefScore ranks subplans by how much progress they make
	PrefScore(id int) float64
	// Explain renders a subplan as "(count/batch, ...)"
	Explain(id int) string
	// Materialize turns a subplan into a concrete set of switches
	Materialize(id int) Operation
	// LeastDominativeSubplan returns the most conservative subplan already
	// implied by the observed per-block down-switch counts
	LeastDominativeSubplan(observed []types.BlockStats) int
}

// Operation is a concrete unit of maintenance work.
//
// Lifecycle: Created, then Pre (drain), then Post (undrain), then Release.
// Callers sequence Pre and Post; an operation does not track its state and
// does not reject out-of-order calls.
type Operation interface {
	Pre(net fabric.Network) error
	Post(net fabric.Network) error
	Size() int
	Switches() []types.LocatedSwitch
	BlockStats(net fabric.Network) []types.BlockStats
	Explain(net fabric.Network) string
	Release()
}
