package storage

import (
	"testing"
	"time"

	"github.com/VJota108/janus/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BoltStore {
	t.Helper()
	store, err := NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestDrainedSwitches(t *testing.T) {
	store := newTestStore(t)

	sids, err := store.ListDrained()
	require.NoError(t, err)
	assert.Empty(t, sids)

	require.NoError(t, store.SetDrained(12, true))
	require.NoError(t, store.SetDrained(3, true))
	require.NoError(t, store.SetDrained(7, true))
	require.NoError(t, store.SetDrained(7, false))
	require.NoError(t, store.SetDrained(99, false))

	sids, err = store.ListDrained()
	require.NoError(t, err)
	assert.Equal(t, []int{3, 12}, sids)
}

func TestDrainedSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewBoltStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.SetDrained(5, true))
	require.NoError(t, store.Close())

	store, err = NewBoltStore(dir)
	require.NoError(t, err)
	defer store.Close()

	sids, err := store.ListDrained()
	require.NoError(t, err)
	assert.Equal(t, []int{5}, sids)
}

func TestOperationJournal(t *testing.T) {
	store := newTestStore(t)

	first := &types.OperationRecord{
		Action:    types.OperationActionDrain,
		SubplanID: 4,
		Subplan:   "( 1/ 2,  1/ 2)",
		Switches:  []int{0, 1, 4, 5},
	}
	require.NoError(t, store.CreateOperation(first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	time.Sleep(2 * time.Millisecond)
	second := &types.OperationRecord{Action: types.OperationActionUndrain, SubplanID: 4}
	require.NoError(t, store.CreateOperation(second))

	got, err := store.GetOperation(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first.Switches, got.Switches)
	assert.Equal(t, first.Subplan, got.Subplan)
	assert.Equal(t, types.OperationActionDrain, got.Action)

	records, err := store.ListOperations()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
}

func TestGetOperationNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.GetOperation("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
