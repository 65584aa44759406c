package log

import (
	"context"
	"encoding/hex"
	"log/slog"
)

// SlogAdapter writes capture events to an slog.Logger at Debug level.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter returns an adapter writing to logger, or to slog.Default
// when logger is nil.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

// Log writes the event as one structured record.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session", event.SessionID),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}
	if event.Direction != DirectionNone {
		attrs = append(attrs, slog.String("direction", event.Direction.String()))
	}
	if event.Worker != "" {
		attrs = append(attrs, slog.String("worker", event.Worker))
	}
	if event.Operation != "" {
		attrs = append(attrs, slog.String("op", event.Operation))
	}
	if event.Feature != nil {
		attrs = append(attrs, slog.Int("feature", int(*event.Feature)))
	}

	switch {
	case event.Frame != nil:
		attrs = append(attrs,
			slog.Int("frame_size", event.Frame.Size),
			slog.String("frame", hex.EncodeToString(event.Frame.Data)),
		)
		if event.Frame.Truncated {
			attrs = append(attrs, slog.Bool("truncated", true))
		}
	case event.Status != nil:
		attrs = append(attrs,
			slog.Int("attempt", event.Status.Attempt),
			slog.Int("code", event.Status.Code),
			slog.String("status", event.Status.Name),
		)
		if event.Status.Diagnostic != "" {
			attrs = append(attrs, slog.String("diag", event.Status.Diagnostic))
		}
	case event.Retry != nil:
		attrs = append(attrs,
			slog.Int("code", event.Retry.Code),
			slog.String("status", event.Retry.Name),
			slog.Int("tries", event.Retry.Tries),
		)
		if event.Retry.Summary != "" {
			attrs = append(attrs, slog.String("summary", event.Retry.Summary))
		}
	case event.Sleep != nil:
		attrs = append(attrs,
			slog.Float64("adjustment", event.Sleep.Adjustment),
			slog.Float64("multiplier", event.Sleep.Multiplier),
		)
		if event.Sleep.Event != "" {
			attrs = append(attrs, slog.String("sleep_event", event.Sleep.Event))
		}
		if event.Sleep.Duration > 0 {
			attrs = append(attrs, slog.Duration("sleep", event.Sleep.Duration))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "ddc", attrs...)
}

var _ Logger = (*SlogAdapter)(nil)
