package fabric

import (
	"errors"

	"github.com/VJota108/janus/pkg/types"
)

// ErrUnknownSwitch is returned when a drain or undrain names a switch that
// is not part of the fabric
var ErrUnknownSwitch = errors.New("unknown switch")

// Network is the capability a maintenance operation is executed against:
// drain and undrain individual switches, plus the topology counters needed
// to account for down switches per block.
type Network interface {
	DrainSwitch(sid int) error
	UndrainSwitch(sid int) error

	// Pods returns the number of pods (aggregation blocks)
	Pods() int
	// AggPerPod returns the number of aggregation switches in every pod
	AggPerPod() int
	// CoreSwitches returns the number of core switches
	CoreSwitches() int
}

// Blocks returns one block per pod followed by the core block, with total
// switch counts taken from the network's topology counters and no down
// switches. The core block's ID is the number of pods.
func Blocks(n Network) []types.BlockStats {
	pods := n.Pods()
	blocks := make([]types.BlockStats, pods+1)
	for i := 0; i < pods; i++ {
		blocks[i] = types.BlockStats{
			ID:          types.BlockID{Type: types.BlockTypePodAggregation, ID: i},
			AllSwitches: n.AggPerPod(),
		}
	}
	blocks[pods] = types.BlockStats{
		ID:          types.BlockID{Type: types.BlockTypeCore, ID: pods},
		AllSwitches: n.CoreSwitches(),
	}
	return blocks
}

// CountDown adds sw to the down count of its block in blocks as built by
// Blocks. Aggregation switches with a pod outside the fabric are ignored.
func CountDown(blocks []types.BlockStats, sw types.LocatedSwitch) bool {
	core := len(blocks) - 1
	if sw.Role == types.SwitchRoleCore {
		blocks[core].DownSwitches++
		return true
	}
	if sw.Pod < 0 || sw.Pod >= core {
		return false
	}
	blocks[sw.Pod].DownSwitches++
	return true
}
