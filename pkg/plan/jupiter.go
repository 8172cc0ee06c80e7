package plan

import (
	"fmt"

	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/types"
)

// classKey identifies a class within a group
type classKey struct {
	pod  int
	role types.SwitchRole
}

// jupiterClass holds the switches of a group sharing pod and role, as
// indexes into the planner's inventory in inventory order
type jupiterClass struct {
	pod      int
	role     types.SwitchRole
	color    int
	switches []int
}

type jupiterGroup struct {
	classes   []*jupiterClass
	index     map[classKey]int
	requested int
	batchSize int
}

func (g *jupiterGroup) maxClassSize() int {
	ret := 0
	for _, c := range g.classes {
		ret = max(ret, len(c.switches))
	}
	return ret
}

// JupiterPlanner partitions a Jupiter switch inventory into redundancy
// groups and classes. It is immutable once built.
type JupiterPlanner struct {
	switches []types.LocatedSwitch
	groups   []*jupiterGroup
	opts     Options
}

var _ Planner = (*JupiterPlanner)(nil)

// NewJupiterPlanner builds a planner with one group per degree of freedom.
// A switch belongs to group color % len(degrees); within its group it
// joins the class of its (pod, role). Each group's batch size is the
// smaller of its degree of freedom and its largest class.
//
// The inventory is copied.
func NewJupiterPlanner(switches []types.LocatedSwitch, degrees []int, opts Options) (*JupiterPlanner, error) {
	if len(switches) == 0 {
		return nil, ErrEmptyInventory
	}
	if len(degrees) == 0 {
		return nil, ErrNoGroups
	}
	for i, d := range degrees {
		if d < 0 {
			return nil, fmt.Errorf("group %d: %w (got %d)", i, ErrInvalidDegree, d)
		}
	}

	p := &JupiterPlanner{
		switches: make([]types.LocatedSwitch, len(switches)),
		groups:   make([]*jupiterGroup, len(degrees)),
		opts:     opts.withDefaults(),
	}
	copy(p.switches, switches)

	for i, d := range degrees {
		p.groups[i] = &jupiterGroup{
			index:     make(map[classKey]int),
			requested: d,
		}
	}

	p.buildGroups()

	for i, g := range p.groups {
		largest := g.maxClassSize()
		g.batchSize = min(g.requested, largest)

		switch {
		case len(g.classes) == 0:
			p.opts.warn(Warning{
				Kind:      WarningEmptyGroup,
				Group:     i,
				Requested: g.requested,
				Message:   "no switch is colored into group",
			})
		case g.requested > largest:
			p.opts.warn(Warning{
				Kind:      WarningDegreeClamped,
				Group:     i,
				Requested: g.requested,
				Applied:   g.batchSize,
				Message:   "degree of freedom exceeds largest class",
			})
		}
	}

	logger := log.WithComponent("plan")
	logger.Debug().
		Int("switches", len(p.switches)).
		Int("groups", len(p.groups)).
		Msg("Built multigroup")

	return p, nil
}

func (p *JupiterPlanner) groupFor(sw types.LocatedSwitch) *jupiterGroup {
	n := len(p.groups)
	return p.groups[((sw.Color%n)+n)%n]
}

func (p *JupiterPlanner) buildGroups() {
	for i, sw := range p.switches {
		g := p.groupFor(sw)
		key := classKey{pod: sw.Pod, role: sw.Role}

		ci, ok := g.index[key]
		if !ok {
			ci = len(g.classes)
			g.index[key] = ci
			g.classes = append(g.classes, &jupiterClass{
				pod:   sw.Pod,
				role:  sw.Role,
				color: sw.Color,
			})
		}
		c := g.classes[ci]
		c.switches = append(c.switches, i)
	}
}

// NumSwitches returns the size of the planner's inventory
func (p *JupiterPlanner) NumSwitches() int {
	return len(p.switches)
}

// Switch returns the inventory entry at index i
func (p *JupiterPlanner) Switch(i int) types.LocatedSwitch {
	return p.switches[i]
}

// ClassInfo describes a class of a group
type ClassInfo struct {
	Pod      int
	Role     types.SwitchRole
	Color    int
	Switches []int // switch ids in selection order
}

// GroupInfo describes a redundancy group
type GroupInfo struct {
	Index     int
	Requested int
	BatchSize int
	Classes   []ClassInfo
}

// Groups returns a snapshot of the planner's groups in group order
func (p *JupiterPlanner) Groups() []GroupInfo {
	out := make([]GroupInfo, len(p.groups))
	for i, g := range p.groups {
		info := GroupInfo{
			Index:     i,
			Requested: g.requested,
			BatchSize: g.batchSize,
			Classes:   make([]ClassInfo, len(g.classes)),
		}
		for j, c := range g.classes {
			sids := make([]int, len(c.switches))
			for k, idx := range c.switches {
				sids[k] = p.switches[idx].SID
			}
			info.Classes[j] = ClassInfo{Pod: c.pod, Role: c.role, Color: c.color, Switches: sids}
		}
		out[i] = info
	}
	return out
}

// Iterator returns a new iterator over the planner's subplans
func (p *JupiterPlanner) Iterator() Iterator {
	return newJupiterIterator(p)
}
