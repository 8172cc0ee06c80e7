/*
Package metrics provides Prometheus metrics and health reporting for Janus.

All metrics are registered with the default Prometheus registry at init and
exposed by Handler. When the CLI runs with --metrics-addr, NewServeMux serves
/metrics and /health on that address, which is mostly useful for long sweeps.

# Metrics Catalog

Planning:

janus_subplans_total:
  - Type: Gauge
  - Description: Number of candidate subplans of the last iterator built

janus_plan_warnings_total{kind}:
  - Type: Counter
  - Description: Clamping conditions absorbed by the planner
  - Labels: kind (degree-clamped, empty-group, observation-saturated, unmatched-class)

janus_operations_materialized_total:
  - Type: Counter
  - Description: Maintenance operations materialized from subplans

janus_operation_switches:
  - Type: Histogram
  - Description: Switches selected per materialized operation

janus_materialize_duration_seconds:
  - Type: Histogram
  - Description: Time taken to materialize a subplan

Fabric:

janus_switch_actions_total{action}:
  - Type: Counter
  - Description: Drain and undrain actions applied to the simulated fabric
  - Labels: action (drain, undrain)

janus_operation_duration_seconds{action}:
  - Type: Histogram
  - Description: Time taken to drain or undrain the switches of a journaled operation
  - Labels: action (drain, undrain)

janus_drained_switches:
  - Type: Gauge
  - Description: Switches currently drained in the last fabric that changed

Sweeps:

janus_pool_wait_seconds:
  - Type: Histogram
  - Description: Time workers wait to borrow a simulated fabric

janus_subplans_evaluated_total:
  - Type: Counter
  - Description: Subplans applied to a simulated fabric

# Timer Helper

	timer := metrics.NewTimer()
	op := it.Materialize(id)
	timer.ObserveDuration(metrics.MaterializeDuration)

# Health

Components report their state with UpdateComponent; /health answers 200
while every component is healthy and 503 otherwise:

	metrics.UpdateComponent("storage", true, "")
*/
package metrics
