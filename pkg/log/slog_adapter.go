package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes trace events to an slog.Logger at debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("direction", event.Direction.String()),
		slog.String("category", event.Category.String()),
	}
	if event.MappingID != "" {
		attrs = append(attrs, slog.String("mapping_id", event.MappingID))
	}

	switch {
	case event.Input != nil:
		attrs = append(attrs,
			slog.String("source", event.Input.Source),
			slog.String("value", event.Input.Value.String()),
		)
	case event.Output != nil:
		attrs = append(attrs,
			slog.String("target", event.Output.Target),
			slog.String("mode", event.Output.Mode),
			slog.String("value", event.Output.Value.String()),
		)
	case event.Feedback != nil:
		attrs = append(attrs,
			slog.String("target", event.Feedback.Target),
			slog.Float64("target_value", event.Feedback.TargetValue),
			slog.Float64("source_value", event.Feedback.SourceValue),
		)
	case event.Suppressed != nil:
		attrs = append(attrs,
			slog.String("reason", event.Suppressed.Reason.String()),
			slog.String("value", event.Suppressed.Value.String()),
		)
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("stage", event.Error.Stage.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Context != "" {
			attrs = append(attrs, slog.String("error_context", event.Error.Context))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "control", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
