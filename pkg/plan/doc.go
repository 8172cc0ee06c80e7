/*
Package plan enumerates staged maintenance plans over a Clos-style fabric and
turns a chosen plan into a concrete maintenance operation.

# Model

A planner partitions a switch inventory along two axes:

  - Group: one independent redundancy dimension. A switch belongs to group
    color % number-of-groups. Each group has a batch size, the maximum
    number of units that may be in flight at once. The batch size is the
    requested degree of freedom clamped to the group's largest class.
  - Class: the switches of a group that share pod and role. Classes are
    discovered while scanning the inventory, in inventory order.

A subplan assigns every group a count in [0, batch size]: "drain this many
units of the group". Subplans are numbered by the bijective encoding of
package partition, so there are (K1+1)*(K2+1)*... of them.

# Operations

	p, err := plan.NewJupiterPlanner(switches, []int{2, 2}, plan.Options{})
	if err != nil {
		return err
	}
	it := p.Iterator()

	best := 0
	for it.Begin(); !it.End(); it.Next() {
		if it.PrefScore(it.Current()) > it.PrefScore(best) {
			best = it.Current()
		}
	}

	op := it.Materialize(best)
	if err := op.Pre(net); err != nil { // drain
		return err
	}
	// ... upgrade the drained switches ...
	if err := op.Post(net); err != nil { // undrain
		return err
	}

PrefScore sums count/batch size over groups. Materialize takes, from every
class, the first ceil(size * count / batch size) switches (see
RoundingPolicy). LeastDominativeSubplan goes the other way: given observed
down-switch counts per block it returns the largest subplan that the
observation already implies, so an interrupted rollout can be resumed.

# Warnings

Conditions the planner absorbs by clamping are reported through
Options.Warn (LogWarning by default) and counted in
janus_plan_warnings_total:

  - degree-clamped: a degree of freedom exceeded the largest class
  - empty-group: no switch was colored into a group
  - observation-saturated: a block reported more down switches than a class
    holds; the fraction is taken as 1
  - unmatched-class: no observed block matched a class; the class
    contributes 0

# Concurrency

Planners are immutable and may be shared. Iterators decode into a scratch
buffer and must be used by one goroutine at a time. Pre and Post mutate the
network; ordering concurrent operations against one network is up to the
caller.
*/
package plan
