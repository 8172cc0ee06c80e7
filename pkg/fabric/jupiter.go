package fabric

import (
	"fmt"
	"sort"
	"sync"

	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/VJota108/janus/pkg/types"
	"github.com/rs/zerolog"
)

// Shape describes a Jupiter fabric: Pods pods of AggPerPod aggregation
// switches each, plus Core core switches.
//
// Unless Switches lists the inventory explicitly, switches are generated
// and colored as follows: aggregation switch j of every pod gets color
// j % AggColors, core switch k gets color AggColors + k % CoreColors.
type Shape struct {
	Pods       int                   `yaml:"pods"`
	AggPerPod  int                   `yaml:"aggPerPod"`
	Core       int                   `yaml:"core"`
	AggColors  int                   `yaml:"aggColors"`
	CoreColors int                   `yaml:"coreColors"`
	Switches   []types.LocatedSwitch `yaml:"switches,omitempty"`
}

// WithDefaults returns a copy of the shape with zero color counts set to 1
func (s Shape) WithDefaults() Shape {
	if s.AggColors == 0 {
		s.AggColors = 1
	}
	if s.CoreColors == 0 {
		s.CoreColors = 1
	}
	return s
}

// Validate checks the shape and, if present, the explicit inventory. An
// explicit inventory must hold exactly AggPerPod aggregation switches in
// every pod and Core core switches, since block totals are taken from the
// shape.
func (s Shape) Validate() error {
	if s.Pods <= 0 {
		return fmt.Errorf("pods must be positive, got %d", s.Pods)
	}
	if s.AggPerPod <= 0 {
		return fmt.Errorf("aggPerPod must be positive, got %d", s.AggPerPod)
	}
	if s.Core < 0 {
		return fmt.Errorf("core must not be negative, got %d", s.Core)
	}
	if s.AggColors < 0 || s.CoreColors < 0 {
		return fmt.Errorf("color counts must not be negative")
	}

	if len(s.Switches) == 0 {
		return nil
	}

	seen := make(map[int]bool, len(s.Switches))
	perPod := make([]int, s.Pods)
	core := 0
	for _, sw := range s.Switches {
		if seen[sw.SID] {
			return fmt.Errorf("duplicate switch id %d", sw.SID)
		}
		seen[sw.SID] = true
		if !sw.Role.Valid() {
			return fmt.Errorf("switch %d: unknown role %q", sw.SID, sw.Role)
		}
		if sw.Color < 0 {
			return fmt.Errorf("switch %d: negative color %d", sw.SID, sw.Color)
		}
		if sw.Role == types.SwitchRoleAggregation && (sw.Pod < 0 || sw.Pod >= s.Pods) {
			return fmt.Errorf("switch %d: pod %d out of range [0, %d)", sw.SID, sw.Pod, s.Pods)
		}
		if sw.Role == types.SwitchRoleCore {
			core++
		} else {
			perPod[sw.Pod]++
		}
	}

	for p, n := range perPod {
		if n != s.AggPerPod {
			return fmt.Errorf("pod %d lists %d aggregation switches, aggPerPod is %d", p, n, s.AggPerPod)
		}
	}
	if core != s.Core {
		return fmt.Errorf("inventory lists %d core switches, core is %d", core, s.Core)
	}
	return nil
}

// Inventory returns the switch inventory of the shape
func (s Shape) Inventory() []types.LocatedSwitch {
	if len(s.Switches) > 0 {
		out := make([]types.LocatedSwitch, len(s.Switches))
		copy(out, s.Switches)
		return out
	}

	s = s.WithDefaults()
	out := make([]types.LocatedSwitch, 0, s.Pods*s.AggPerPod+s.Core)
	for p := 0; p < s.Pods; p++ {
		for j := 0; j < s.AggPerPod; j++ {
			out = append(out, types.LocatedSwitch{
				SID:   p*s.AggPerPod + j,
				Role:  types.SwitchRoleAggregation,
				Pod:   p,
				Color: j % s.AggColors,
			})
		}
	}
	for k := 0; k < s.Core; k++ {
		out = append(out, types.LocatedSwitch{
			SID:   s.Pods*s.AggPerPod + k,
			Role:  types.SwitchRoleCore,
			Color: s.AggColors + k%s.CoreColors,
		})
	}
	return out
}

// StateStore persists the set of drained switches
type StateStore interface {
	SetDrained(sid int, drained bool) error
	ListDrained() ([]int, error)
}

// Jupiter is a simulated Jupiter fabric. It keeps track of drained
// switches and optionally persists them through a StateStore. All methods
// are safe for concurrent use.
type Jupiter struct {
	mu       sync.RWMutex
	shape    Shape
	switches []types.LocatedSwitch
	bySID    map[int]int
	drained  map[int]bool
	store    StateStore
	logger   zerolog.Logger
}

// NewJupiter creates a fabric of the given shape. When store is not nil
// the drained set is loaded from it and every change is written back.
func NewJupiter(shape Shape, store StateStore) (*Jupiter, error) {
	shape = shape.WithDefaults()
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid fabric shape: %w", err)
	}

	j := &Jupiter{
		shape:    shape,
		switches: shape.Inventory(),
		drained:  make(map[int]bool),
		store:    store,
		logger:   log.WithComponent("fabric"),
	}
	j.bySID = make(map[int]int, len(j.switches))
	for i, sw := range j.switches {
		j.bySID[sw.SID] = i
	}

	if store != nil {
		sids, err := store.ListDrained()
		if err != nil {
			return nil, fmt.Errorf("failed to load drained switches: %w", err)
		}
		for _, sid := range sids {
			if _, ok := j.bySID[sid]; !ok {
				j.logger.Warn().Int("sid", sid).Msg("Ignoring persisted drain of unknown switch")
				continue
			}
			j.drained[sid] = true
		}
	}

	j.logger.Debug().
		Int("pods", shape.Pods).
		Int("agg_per_pod", shape.AggPerPod).
		Int("core", shape.Core).
		Int("switches", len(j.switches)).
		Int("drained", len(j.drained)).
		Msg("Built Jupiter fabric")

	return j, nil
}

func (j *Jupiter) Pods() int         { return j.shape.Pods }
func (j *Jupiter) AggPerPod() int    { return j.shape.AggPerPod }
func (j *Jupiter) CoreSwitches() int { return j.shape.Core }

// Switches returns a copy of the fabric's inventory
func (j *Jupiter) Switches() []types.LocatedSwitch {
	out := make([]types.LocatedSwitch, len(j.switches))
	copy(out, j.switches)
	return out
}

// DrainSwitch takes a switch out of service. Draining a drained switch is
// a no-op.
func (j *Jupiter) DrainSwitch(sid int) error {
	return j.setDrained(sid, true)
}

// UndrainSwitch returns a switch to service. Undraining a switch that is
// in service is a no-op.
func (j *Jupiter) UndrainSwitch(sid int) error {
	return j.setDrained(sid, false)
}

func (j *Jupiter) setDrained(sid int, drained bool) error {
	j.mu.Lock()
	defer j.mu.Unlock()

	if _, ok := j.bySID[sid]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownSwitch, sid)
	}

	action := string(types.OperationActionDrain)
	if !drained {
		action = string(types.OperationActionUndrain)
	}

	if j.drained[sid] == drained {
		j.logger.Debug().Int("sid", sid).Str("action", action).Msg("Switch already in requested state")
		return nil
	}

	if j.store != nil {
		if err := j.store.SetDrained(sid, drained); err != nil {
			return fmt.Errorf("failed to persist %s of switch %d: %w", action, sid, err)
		}
	}

	if drained {
		j.drained[sid] = true
	} else {
		delete(j.drained, sid)
	}

	metrics.SwitchActions.WithLabelValues(action).Inc()
	metrics.DrainedSwitches.Set(float64(len(j.drained)))
	return nil
}

// IsDrained reports whether the switch is drained
func (j *Jupiter) IsDrained(sid int) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return j.drained[sid]
}

// Drained returns the ids of all drained switches in ascending order
func (j *Jupiter) Drained() []int {
	j.mu.RLock()
	defer j.mu.RUnlock()

	out := make([]int, 0, len(j.drained))
	for sid := range j.drained {
		out = append(out, sid)
	}
	sort.Ints(out)
	return out
}

// Observe returns the current per-block down-switch counts
func (j *Jupiter) Observe() []types.BlockStats {
	j.mu.RLock()
	defer j.mu.RUnlock()

	blocks := Blocks(j)
	for sid := range j.drained {
		CountDown(blocks, j.switches[j.bySID[sid]])
	}
	return blocks
}

// Reset undrains every switch
func (j *Jupiter) Reset() error {
	for _, sid := range j.Drained() {
		if err := j.UndrainSwitch(sid); err != nil {
			return err
		}
	}
	return nil
}
