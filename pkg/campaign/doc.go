/*
Package campaign drives plans against a fabric.

It is the thin layer between the planner and the CLI:

  - Rank orders every subplan by preference score.
  - Runner drains or undrains a subplan on a persisted fabric, journals the
    operation, and reports the fabric's status together with the least
    dominative subplan implied by the drained switches.
  - Sweep applies every subplan to simulated fabrics borrowed from a pool,
    with one plan iterator per worker goroutine, and records the worst block
    degradation each subplan causes.
*/
package campaign
