package plan

import (
	"fmt"

	"github.com/VJota108/janus/pkg/log"
	"github.com/VJota108/janus/pkg/metrics"
	"github.com/VJota108/janus/pkg/types"
)

// WarningKind classifies a planner warning
type WarningKind string

const (
	// WarningDegreeClamped: a group's degree of freedom exceeded its
	// largest class and was reduced to the class size
	WarningDegreeClamped WarningKind = "degree-clamped"
	// WarningEmptyGroup: no switch was colored into a group
	WarningEmptyGroup WarningKind = "empty-group"
	// WarningObservationSaturated: an observed block reported more down
	// switches than the class has; the fraction was clamped to 1
	WarningObservationSaturated WarningKind = "observation-saturated"
	// WarningUnmatchedClass: no observed block matched a class; its
	// contribution was taken as 0
	WarningUnmatchedClass WarningKind = "unmatched-class"
)

// Warning reports a condition the planner absorbed by clamping
type Warning struct {
	Kind  WarningKind
	Group int

	// Class fields, set for class-level warnings
	Pod  int
	Role types.SwitchRole

	Requested int
	Applied   int
	Observed  float64

	Message string
}

// WarnFunc receives planner warnings
type WarnFunc func(Warning)

// LogWarning is the default WarnFunc. It logs the warning on the plan
// component logger.
func LogWarning(w Warning) {
	logger := log.WithComponent("plan")
	event := logger.Warn().
		Str("kind", string(w.Kind)).
		Int("group", w.Group)

	switch w.Kind {
	case WarningDegreeClamped:
		event = event.Int("requested", w.Requested).Int("applied", w.Applied)
	case WarningObservationSaturated:
		event = event.Int("pod", w.Pod).Str("role", string(w.Role)).Float64("observed", w.Observed)
	case WarningUnmatchedClass:
		event = event.Int("pod", w.Pod).Str("role", string(w.Role))
	}
	event.Msg(w.Message)
}

// RoundingPolicy decides how many switches of a class of classSize
// switches to take for count units out of a group's batchSize. The result
// is capped to [0, classSize] by the caller.
type RoundingPolicy func(classSize, count, batchSize int) int

// RoundUp takes ceil(classSize * count / batchSize). It never selects fewer
// switches than the proportional share and is the default.
func RoundUp(classSize, count, batchSize int) int {
	if batchSize == 0 {
		return 0
	}
	return (classSize*count + batchSize - 1) / batchSize
}

// RoundDown takes floor(classSize * count / batchSize)
func RoundDown(classSize, count, batchSize int) int {
	if batchSize == 0 {
		return 0
	}
	return classSize * count / batchSize
}

// ParseRounding returns the policy named "ceil" or "floor". The empty
// name selects ceil.
func ParseRounding(name string) (RoundingPolicy, error) {
	switch name {
	case "", "ceil":
		return RoundUp, nil
	case "floor":
		return RoundDown, nil
	default:
		return nil, fmt.Errorf("unknown rounding policy %q", name)
	}
}

// Options tunes a planner
type Options struct {
	// Warn receives clamping warnings. Defaults to LogWarning.
	Warn WarnFunc
	// Rounding selects switches per class. Defaults to RoundUp.
	Rounding RoundingPolicy
}

func (o Options) withDefaults() Options {
	if o.Warn == nil {
		o.Warn = LogWarning
	}
	if o.Rounding == nil {
		o.Rounding = RoundUp
	}
	return o
}

func (o Options) warn(w Warning) {
	metrics.PlanWarnings.WithLabelValues(string(w.Kind)).Inc()
	o.Warn(w)
}

// portion returns count/batchSize, 0 for a degenerate group
func portion(count, batchSize int) float64 {
	if batchSize == 0 {
		return 0
	}
	return float64(count) / float64(batchSize)
}

// take applies the rounding policy and caps the result to the class
func take(policy RoundingPolicy, classSize, count, batchSize int) int {
	return max(0, min(policy(classSize, count, batchSize), classSize))
}
