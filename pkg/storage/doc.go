/*
Package storage persists simulated fabric state and the operation journal in
BoltDB.

Two buckets live in <data-dir>/janus.db:

	drained     sid -> drain timestamp (RFC 3339)
	operations  uuid v7 -> JSON types.OperationRecord

The drained bucket backs fabric.Jupiter through the fabric.StateStore
interface, so `janus drain` and `janus status` run as separate processes see
the same fabric. Journal ids are UUIDv7, which sort by creation time, so a
bucket scan lists operations chronologically.

	store, err := storage.NewBoltStore(dataDir)
	if err != nil {
		return err
	}
	defer store.Close()

	net, err := fabric.NewJupiter(shape, store)

BoltDB allows one writer process at a time; NewBoltStore waits up to one
second for the file lock before failing.
*/
package storage
