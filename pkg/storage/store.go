package storage

import (
	"github.com/VJota108/janus/pkg/types"
)

// Store defines the interface for persisted fabric state and the
// operation journal
type Store interface {
	// Fabric state
	SetDrained(sid int, drained bool) error
	ListDrained() ([]int, error)

	// Operation journal
	CreateOperation(record *types.OperationRecord) error
	GetOperation(id string) (*types.OperationRecord, error)
	ListOperations() ([]*types.OperationRecord, error)

	// Utility
	Close() error
}
