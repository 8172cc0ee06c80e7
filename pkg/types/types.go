package types

import (
	"fmt"
	"time"
)

// SwitchRole defines the role of a switch in a Jupiter fabric
type SwitchRole string

const (
	SwitchRoleCore        SwitchRole = "core"
	SwitchRoleAggregation SwitchRole = "aggregation"
)

// Valid reports whether the role is one of the known roles
func (r SwitchRole) Valid() bool {
	return r == SwitchRoleCore || r == SwitchRoleAggregation
}

// LocatedSwitch is a switch together with its place in the fabric.
// Pod is meaningless for core switches. Color only selects the
// redundancy group the switch is planned in.
type LocatedSwitch struct {
	SID   int        `json:"sid" yaml:"sid"`
	Role  SwitchRole `json:"role" yaml:"role"`
	Pod   int        `json:"pod" yaml:"pod"`
	Color int        `json:"color" yaml:"color"`
}

// String renders the switch as C<sid> or A<sid> [<pod>]
func (s LocatedSwitch) String() string {
	if s.Role == SwitchRoleCore {
		return fmt.Sprintf("C%d", s.SID)
	}
	return fmt.Sprintf("A%d [%d]", s.SID, s.Pod)
}

// BlockType identifies the kind of observable accounting unit
type BlockType string

const (
	BlockTypePodAggregation BlockType = "pod-aggregation"
	BlockTypeCore           BlockType = "core"
)

// BlockID locates a block. For pod blocks ID is the pod index, for the
// core block it is the number of pods.
type BlockID struct {
	Type BlockType `json:"type" yaml:"type"`
	ID   int       `json:"id" yaml:"id"`
}

// BlockStats tracks how many switches of a block are down
type BlockStats struct {
	ID           BlockID `json:"id" yaml:"id"`
	AllSwitches  int     `json:"allSwitches" yaml:"allSwitches"`
	DownSwitches int     `json:"downSwitches" yaml:"downSwitches"`
}

// DownFraction returns DownSwitches/AllSwitches, 0 for an empty block
func (b BlockStats) DownFraction() float64 {
	if b.AllSwitches == 0 {
		return 0
	}
	return float64(b.DownSwitches) / float64(b.AllSwitches)
}

// OperationAction is the lifecycle step recorded for an operation
type OperationAction string

const (
	OperationActionDrain   OperationAction = "drain"
	OperationActionUndrain OperationAction = "undrain"
)

// OperationRecord is a journal entry for a maintenance operation that was
// applied to a fabric
type OperationRecord struct {
	ID        string          `json:"id"`
	Action    OperationAction `json:"action"`
	SubplanID int             `json:"subplanId"`
	Subplan   string          `json:"subplan"`
	Switches  []int           `json:"switches"`
	Blocks    string          `json:"blocks"`
	// Error is set when the operation failed partway; Switches then lists
	// the switches left in the requested state
	Error     string          `json:"error,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
