/*
Package types defines the data model shared by the Janus planning packages.

The model is intentionally small:

  - LocatedSwitch: a switch identity with its role (core or aggregation),
    pod index and color. Colors map switches to redundancy groups.
  - BlockID and BlockStats: observable accounting units. A Jupiter fabric has
    one aggregation block per pod plus a single core block; each block reports
    its total switch count and how many of those switches are down.
  - OperationRecord: journal entry written when a maintenance operation is
    drained or undrained against a persisted fabric.

All types are plain values and safe to copy. They carry JSON and YAML tags so
they can be loaded from configuration files and stored in the journal.
*/
package types
