package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/VJota108/janus/pkg/types"
	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

var (
	// Bucket names
	bucketDrained    = []byte("drained")
	bucketOperations = []byte("operations")
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// BoltStore implements Store interface using BoltDB
type BoltStore struct {
	db *bolt.DB
}

var _ Store = (*BoltStore)(nil)

// NewBoltStore creates a new BoltDB-backed store in dataDir
func NewBoltStore(dataDir string) (*BoltStore, error) {
	dbPath := filepath.Join(dataDir, "janus.db")

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketDrained, bucketOperations} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})

	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

// Fabric state operations

func (s *BoltStore) SetDrained(sid int, drained bool) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDrained)
		key := []byte(strconv.Itoa(sid))
		if !drained {
			return b.Delete(key)
		}
		return b.Put(key, []byte(time.Now().UTC().Format(time.RFC3339)))
	})
}

func (s *BoltStore) ListDrained() ([]int, error) {
	var sids []int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketDrained)
		return b.ForEach(func(k, v []byte) error {
			sid, err := strconv.Atoi(string(k))
			if err != nil {
				return fmt.Errorf("corrupt drained switch key %q: %w", k, err)
			}
			sids = append(sids, sid)
			return nil
		})
	})
	sort.Ints(sids)
	return sids, err
}

// Operation journal

// CreateOperation stores a journal record. Records without an ID get a
// time-ordered one, so ListOperations returns them in creation order.
func (s *BoltStore) CreateOperation(record *types.OperationRecord) error {
	if record.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate operation id: %w", err)
		}
		record.ID = id.String()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now()
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOperations)
		data, err := json.Marshal(record)
		if err != nil {
			return err
		}
		return b.Put([]byte(record.ID), data)
	})
}

func (s *BoltStore) GetOperation(id string) (*types.OperationRecord, error) {
	var record types.OperationRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOperations)
		data := b.Get([]byte(id))
		if data == nil {
			return fmt.Errorf("operation %s: %w", id, ErrNotFound)
		}
		return json.Unmarshal(data, &record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (s *BoltStore) ListOperations() ([]*types.OperationRecord, error) {
	var records []*types.OperationRecord
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketOperations)
		return b.ForEach(func(k, v []byte) error {
			var record types.OperationRecord
			if err := json.Unmarshal(v, &record); err != nil {
				return err
			}
			records = append(records, &record)
			return nil
		})
	})
	return records, err
}
