package ddc

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ddcci-protocol/ddcci-go/pkg/errinfo"
	"github.com/ddcci-protocol/ddcci-go/pkg/log"
	"github.com/ddcci-protocol/ddcci-go/pkg/packet"
	"github.com/ddcci-protocol/ddcci-go/pkg/sleep"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// Exchanger runs DDC/CI exchanges for one display. Like the sleep Stats
// it drives, an Exchanger belongs to a single worker and must not be
// used from several goroutines at once.
type Exchanger struct {
	transport Transport
	config    Config
	sessionID string

	registry  *status.Registry
	stats     *sleep.Stats
	counts    *status.Counts
	sleepFunc SleepFunc

	logger         *slog.Logger
	protocolLogger log.Logger

	writeOnlyTries *TryStats
	writeReadTries *TryStats
	multiPartTries *TryStats
}

// New returns an Exchanger over t.
func New(t Transport, cfg Config) (*Exchanger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	registry := cfg.Status
	if registry == nil {
		registry = status.Default()
	}
	reg := cfg.Sleep
	if reg == nil {
		reg = sleep.NewRegistry(sleep.Config{Enabled: true, Status: registry})
	}
	counts := cfg.Counts
	if counts == nil {
		counts = status.NewCounts(registry)
	}
	if cfg.Logger != nil {
		counts.SetLogger(cfg.Logger)
	}
	sleepFunc := cfg.SleepFunc
	if sleepFunc == nil {
		sleepFunc = sleep.Wait
	}

	return &Exchanger{
		transport:      t,
		config:         cfg,
		sessionID:      uuid.New().String(),
		registry:       registry,
		stats:          reg.ForWorker(cfg.Worker),
		counts:         counts,
		sleepFunc:      sleepFunc,
		logger:         cfg.Logger,
		protocolLogger: log.OrNoop(cfg.ProtocolLogger),
		writeOnlyTries: NewTryStats(TryWriteOnly, cfg.MaxWriteOnlyTries),
		writeReadTries: NewTryStats(TryWriteRead, cfg.MaxWriteReadTries),
		multiPartTries: NewTryStats(TryMultiPart, cfg.MaxMultiPartTries),
	}, nil
}

// SessionID returns the ID stamped on this exchanger's capture events.
func (x *Exchanger) SessionID() string {
	return x.sessionID
}

// SleepStats returns the worker's estimator.
func (x *Exchanger) SleepStats() *sleep.Stats {
	return x.stats
}

// Counts returns the status counters.
func (x *Exchanger) Counts() *status.Counts {
	return x.counts
}

// TryStats returns the histogram for one retry loop kind.
func (x *Exchanger) TryStats(kind TryKind) *TryStats {
	switch kind {
	case TryWriteOnly:
		return x.writeOnlyTries
	case TryWriteRead:
		return x.writeReadTries
	default:
		return x.multiPartTries
	}
}

func (x *Exchanger) debugLog(msg string, args ...any) {
	if x.logger != nil {
		x.logger.Debug(msg, args...)
	}
}

// exchange identifies the operation an attempt belongs to in capture
// events.
type exchange struct {
	op      string
	feature *uint8
}

func opFeature(op string, feature byte) exchange {
	return exchange{op: op, feature: &feature}
}

func (x *Exchanger) emit(ex exchange, ev log.Event) {
	ev.Timestamp = time.Now()
	ev.SessionID = x.sessionID
	ev.Worker = string(x.config.Worker)
	ev.Operation = ex.op
	ev.Feature = ex.feature
	x.protocolLogger.Log(ev)
}

func (x *Exchanger) emitFrame(ex exchange, dir log.Direction, b []byte) {
	// Both directions carry the length byte at index 1 and the opcode
	// after it.
	var typ uint8
	if len(b) > 2 && b[1]&0x7F > 0 {
		typ = b[2]
	}
	x.emit(ex, log.Event{
		Direction: dir,
		Layer:     log.LayerTransport,
		Category:  log.CategoryFrame,
		Frame:     log.NewFrameEvent(b, x.config.FrameLimit, typ),
	})
}

func (x *Exchanger) emitStatus(ex exchange, attempt int, code status.Code, diag packet.Diagnostic) {
	ev := log.StatusEvent{
		Attempt: attempt,
		Code:    int(code),
		Name:    x.registry.SafeName(code),
	}
	if diag != packet.DiagNone {
		ev.Diagnostic = diag.String()
	}
	x.emit(ex, log.Event{
		Layer:    log.LayerCodec,
		Category: log.CategoryStatus,
		Status:   &ev,
	})
}

func (x *Exchanger) emitRetry(ex exchange, ei *errinfo.ErrorInfo, tries int) {
	codes := ei.CauseCodes()
	causes := make([]int, len(codes))
	for i, c := range codes {
		causes[i] = int(c)
	}
	x.emit(ex, log.Event{
		Layer:    log.LayerExchange,
		Category: log.CategoryRetry,
		Retry: &log.RetryEvent{
			Code:    int(ei.Code),
			Name:    x.registry.SafeName(ei.Code),
			Tries:   tries,
			Causes:  causes,
			Summary: ei.CausesStringWith(x.registry),
		},
	})
}

// pause sleeps for the tuned duration of e. A change of the adjustment
// factor is captured.
func (x *Exchanger) pause(ctx context.Context, ex exchange, e sleep.Event) error {
	before := x.stats.AdjustmentFactor
	adj := x.stats.Adjustment()
	d := sleep.Tuned(e, x.stats.Multiplier, adj)
	if adj != before {
		x.debugLog("ddc: sleep adjustment changed", "worker", x.config.Worker, "from", before, "to", adj)
		x.emit(ex, log.Event{
			Layer:    log.LayerExchange,
			Category: log.CategorySleep,
			Sleep: &log.SleepEvent{
				Event:      e.String(),
				Duration:   d,
				Adjustment: adj,
				Multiplier: x.stats.Multiplier,
			},
		})
	}
	return x.sleepFunc(ctx, d)
}

// asErrorInfo returns err as an ErrorInfo, wrapping other errors in a
// node carrying their status code.
func (x *Exchanger) asErrorInfo(err error, fn string) *errinfo.ErrorInfo {
	var ei *errinfo.ErrorInfo
	if errors.As(err, &ei) {
		return ei
	}
	return errinfo.New(x.registry.FromError(err), fn)
}

// record feeds one attempt's terminal status to the estimator and the
// counters.
func (x *Exchanger) record(code status.Code, caller string) {
	x.stats.Record(code)
	x.counts.Record(code, caller)
}
