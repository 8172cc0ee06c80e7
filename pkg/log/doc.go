/*
Package log provides structured logging for Janus using zerolog.

The log package wraps the zerolog library with a process-wide logger,
component-specific child loggers and helpers for the identifiers that show up
in planning: subplan ids, switch ids and journaled operation ids.

# Configuration

	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stderr,
	})

Until Init is called the global Logger discards everything, which keeps the
planning packages silent when they are embedded in another program.

Levels:
  - Debug: group construction, iterator composition, per-switch drains
  - Info: operation lifecycle (drained, undrained, journaled)
  - Warn: feasibility clamping and observation noise reported by the planner
  - Error: failed drains and storage errors

# Component Loggers

	planLog := log.WithComponent("plan")
	planLog.Debug().Int("groups", 2).Msg("Built multigroup")

	opLog := log.WithOperation(record.ID)
	opLog.Info().Int("switches", 8).Msg("Operation drained")

# Output

JSON:

	{"level":"warn","component":"plan","kind":"degree-clamped","group":1,"requested":6,"applied":4,"time":"2026-10-16T10:30:00Z","message":"degree of freedom exceeds largest class"}

Console:

	10:30:00 WRN degree of freedom exceeds largest class component=plan group=1 kind=degree-clamped
*/
package log
