/*
Package fabric models the network a maintenance operation is executed
against.

Network is the boundary the planner depends on: drain and undrain a switch
by id, and report the topology counters (pods, aggregation switches per pod,
core switches) used to build per-block statistics. Blocks and CountDown turn
those counters into the standard block layout: one aggregation block per pod
followed by a single core block whose id equals the number of pods.

Jupiter is an in-memory simulation of a Jupiter fabric. It generates a
colored inventory from a Shape, tracks drained switches behind a mutex and,
when given a StateStore, loads and persists the drained set so that separate
CLI invocations observe the same fabric state.

	j, err := fabric.NewJupiter(fabric.Shape{Pods: 3, AggPerPod: 4, Core: 4, CoreColors: 1}, nil)
	if err != nil {
		return err
	}
	_ = j.DrainSwitch(0)
	blocks := j.Observe() // [P0: 1 down of 4] [P1] [P2] [C]
*/
package fabric
