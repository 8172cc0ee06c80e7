package plan

import (
	"testing"

	"github.com/VJota108/janus/pkg/fabric"
	"github.com/VJota108/janus/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJupiterOperation(t *testing.T) {
	net, err := fabric.NewJupiter(fabric.Shape{Pods: 2, AggPerPod: 2, Core: 2}, nil)
	require.NoError(t, err)

	all := net.Switches()
	picked := []types.LocatedSwitch{all[0], all[3], all[4]}

	op := NewJupiterOperation(picked)
	picked[0].SID = 99

	require.Equal(t, 3, op.Size())
	assert.Equal(t, all[0], op.Switches()[0], "input must be copied")
	assert.Equal(t, "[P 0:   1], [P 1:   1], [C:   1]", op.Explain(net))

	require.NoError(t, op.Pre(net))
	assert.Equal(t, []int{all[0].SID, all[3].SID, all[4].SID}, net.Drained())

	require.NoError(t, op.Post(net))
	assert.Empty(t, net.Drained())
}

func TestOperationUnknownSwitch(t *testing.T) {
	net, err := fabric.NewJupiter(fabric.Shape{Pods: 1, AggPerPod: 2, Core: 1}, nil)
	require.NoError(t, err)

	op := NewJupiterOperation([]types.LocatedSwitch{
		{SID: 0, Role: types.SwitchRoleAggregation},
		{SID: 42, Role: types.SwitchRoleCore},
	})

	err = op.Pre(net)
	require.Error(t, err)
	assert.ErrorIs(t, err, fabric.ErrUnknownSwitch)
	assert.Contains(t, err.Error(), "failed to drain switch 42")
	assert.True(t, net.IsDrained(0), "switches before the failure stay drained")

	err = op.Post(net)
	require.Error(t, err)
	assert.ErrorIs(t, err, fabric.ErrUnknownSwitch)
	assert.False(t, net.IsDrained(0))
}

func TestOperationGrowth(t *testing.T) {
	tests := []struct {
		name    string
		batches [][]int
		wantCap int
	}{
		{"fits", [][]int{{0, 1, 2}}, defaultOperationCapacity},
		{"grows on overflow", [][]int{make([]int, 12)}, defaultOperationCapacity*2 + 12},
		{"grows when full", [][]int{make([]int, 4), make([]int, 6)}, defaultOperationCapacity*2 + 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := &JupiterOperation{switches: make([]int, 0, defaultOperationCapacity)}
			total := 0
			for _, b := range tt.batches {
				op.add(b)
				total += len(b)
			}
			assert.Equal(t, total, op.Size())
			assert.Equal(t, tt.wantCap, cap(op.switches))
		})
	}
}

func TestOperationRelease(t *testing.T) {
	p, _ := newScenario(t, []int{2, 2}, Options{})
	it := p.Iterator()

	op := it.Materialize(it.SubplanCount() - 1)
	require.Equal(t, 16, op.Size())

	op.Release()
	assert.Equal(t, 0, op.Size())
	assert.Empty(t, op.Switches())
	assert.Equal(t, 16, p.NumSwitches(), "releasing an operation leaves the planner intact")
}
