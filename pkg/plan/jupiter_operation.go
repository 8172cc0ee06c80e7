package plan

import (
	"fmt"
	"strings"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/types"
)

// JupiterOperation is a set of switches of a Jupiter fabric to drain and
// undrain together. Switches are held as indexes into the inventory the
// operation was built from; an operation materialized by an iterator
// shares its planner's inventory.
type JupiterOperation struct {
	inventory []types.LocatedSwitch
	switches  []int
}

var _ Operation = (*JupiterOperation)(nil)

// NewJupiterOperation builds an operation directly from a list of
// switches, for callers that already know which switches to touch. The
// list is copied.
func NewJupiterOperation(switches []types.LocatedSwitch) *JupiterOperation {
	op := &JupiterOperation{
		inventory: make([]types.LocatedSwitch, len(switches)),
		switches:  make([]int, len(switches)),
	}
	copy(op.inventory, switches)
	for i := range op.switches {
		op.switches[i] = i
	}
	return op
}

// add appends inventory indexes, growing the list to twice its capacity
// plus the number of new entries when it is full
func (op *JupiterOperation) add(idx []int) {
	if len(op.switches)+len(idx) >= cap(op.switches) {
		grown := make([]int, len(op.switches), cap(op.switches)*2+len(idx))
		copy(grown, op.switches)
		op.switches = grown
	}
	op.switches = append(op.switches, idx...)
}

// Pre drains every switch of the operation. It stops at the first error.
func (op *JupiterOperation) Pre(net fabric.Network) error {
	for _, i := range op.switches {
		sw := op.inventory[i]
		if err := net.DrainSwitch(sw.SID); err != nil {
			return fmt.Errorf("failed to drain switch %d: %w", sw.SID, err)
		}
	}

	logger := log.WithComponent("plan")
	logger.Debug().Int("switches", len(op.switches)).Msg("Drained switches")
	return nil
}

// Post undrains every switch of the operation. It stops at the first error.
func (op *JupiterOperation) Post(net fabric.Network) error {
	for _, i := range op.switches {
		sw := op.inventory[i]
		if err := net.UndrainSwitch(sw.SID); err != nil {
			return fmt.Errorf("failed to undrain switch %d: %w", sw.SID, err)
		}
	}

	logger := log.WithComponent("plan")
	logger.Debug().Int("switches", len(op.switches)).Msg("Undrained switches")
	return nil
}

func (op *JupiterOperation) Size() int {
	return len(op.switches)
}

// Switches returns the operation's switches in selection order
func (op *JupiterOperation) Switches() []types.LocatedSwitch {
	out := make([]types.LocatedSwitch, len(op.switches))
	for k, i := range op.switches {
		out[k] = op.inventory[i]
	}
	return out
}

// BlockStats counts the operation's switches per block: one block per pod
// of the network followed by the core block.
func (op *JupiterOperation) BlockStats(net fabric.Network) []types.BlockStats {
	blocks := fabric.Blocks(net)
	for _, i := range op.switches {
		sw := op.inventory[i]
		if !fabric.CountDown(blocks, sw) {
			logger := log.WithSwitch(sw.SID)
			logger.Warn().Int("pod", sw.Pod).Msg("Switch pod is outside the network")
		}
	}
	return blocks
}

// Explain renders the block stats as "[P 0:   n], ..., [C:   n]"
func (op *JupiterOperation) Explain(net fabric.Network) string {
	blocks := op.BlockStats(net)
	core := len(blocks) - 1

	var b strings.Builder
	for i := 0; i < core; i++ {
		fmt.Fprintf(&b, "[P%2d: %3d], ", i, blocks[i].DownSwitches)
	}
	fmt.Fprintf(&b, "[C: %3d]", blocks[core].DownSwitches)
	return b.String()
}

// Release drops the operation's switch list. The operation is empty
// afterwards.
func (op *JupiterOperation) Release() {
	op.inventory = nil
	op.switches = nil
}
