package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Planning metrics
	SubplansTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "janus_subplans_total",
			Help: "Number of candidate subplans of the most recently built plan iterator",
		},
	)

	PlanWarnings = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_plan_warnings_total",
			Help: "Total number of planner warnings by kind",
		},
		[]string{"kind"},
	)

	OperationsMaterialized = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "janus_operations_materialized_total",
			Help: "Total number of maintenance operations materialized from subplans",
		},
	)

	OperationSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "janus_operation_switches",
			Help:    "Number of switches selected per materialized operation",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		},
	)

	MaterializeDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "janus_materialize_duration_seconds",
			Help:    "Time taken to materialize a subplan in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Fabric metrics
	SwitchActions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janus_switch_actions_total",
			Help: "Total number of switch drain and undrain actions",
		},
		[]string{"action"},
	)

	OperationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "janus_operation_duration_seconds",
			Help:    "Time taken to drain or undrain the switches of an operation",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"action"},
	)

	DrainedSwitches = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "janus_drained_switches",
			Help: "Number of switches currently drained in the simulated fabric",
		},
	)

	// Sweep metrics
	PoolWaitDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "janus_pool_wait_seconds",
			Help:    "Time spent waiting to borrow a fabric from the pool",
			Buckets: prometheus.DefBuckets,
		},
	)

	SubplansEvaluated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "janus_subplans_evaluated_total",
			Help: "Total number of subplans applied to a simulated fabric during sweeps",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(SubplansTotal)
	prometheus.MustRegister(PlanWarnings)
	prometheus.MustRegister(OperationsMaterialized)
	prometheus.MustRegister(OperationSize)
	prometheus.MustRegister(MaterializeDuration)
	prometheus.MustRegister(SwitchActions)
	prometheus.MustRegister(OperationDuration)
	prometheus.MustRegister(DrainedSwitches)
	prometheus.MustRegister(PoolWaitDuration)
	prometheus.MustRegister(SubplansEvaluated)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
