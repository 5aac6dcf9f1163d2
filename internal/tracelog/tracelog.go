// Package tracelog formats interpreter step events as structured log
// lines. The engine only calls a sink function; this package decides
// what the lines look like.
package tracelog

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pietvm/internal/piet"
)

// Sink returns a trace function that logs every step through the given
// logger at the given level.
func Sink(logger *log.Logger, level log.Level) piet.TraceFunc {
	return func(ev piet.StepEvent) {
		fields := []any{
			"step", ev.Step,
			"from", ev.From.String(),
			"to", ev.To.String(),
			"ptr", ev.Pointer.String(),
			"colors", ev.FromColor.String() + "->" + ev.ToColor.String(),
			"op", ev.Op.String(),
			"stack", ev.Stack,
		}
		if ev.Op != piet.OpNone && !ev.Applied {
			fields = append(fields, "noop", true)
		}
		if ev.Slid {
			fields = append(fields, "slid", true)
		}
		if ev.Attempts > 0 {
			fields = append(fields, "blocked_attempts", ev.Attempts)
		}
		logger.Log(level, "step", fields...)
	}
}
