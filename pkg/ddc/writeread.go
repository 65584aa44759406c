package ddc

import (
	"context"
	"syscall"

	"github.com/ddcci-protocol/ddcci-go/pkg/errinfo"
	"github.com/ddcci-protocol/ddcci-go/pkg/log"
	"github.com/ddcci-protocol/ddcci-go/pkg/packet"
	"github.com/ddcci-protocol/ddcci-go/pkg/sleep"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// Read sizes for the supported replies: address, length, data, checksum.
const (
	featureReadSize   = packet.FeatureReplySize + 3
	multiPartReadSize = 6 + packet.MaxFragmentSize + 1
)

// attempt is the outcome of one write-read.
type attempt struct {
	packet *packet.Packet
	code   status.Code
	diag   packet.Diagnostic
}

func (x *Exchanger) writeRead(ctx context.Context, ex exchange, req *packet.Packet, maxRead int, expected packet.Type, subtype byte, try int) attempt {
	out := req.Wire()
	x.emitFrame(ex, log.DirectionOut, out)
	if err := x.transport.Write(ctx, out); err != nil {
		return x.finishAttempt(ex, try, attempt{code: x.registry.FromError(err)})
	}
	if err := x.pause(ctx, ex, sleep.EventWriteToRead); err != nil {
		return x.finishAttempt(ex, try, attempt{code: x.registry.FromError(err)})
	}
	raw, err := x.transport.Read(ctx, maxRead)
	if err != nil {
		return x.finishAttempt(ex, try, attempt{code: x.registry.FromError(err)})
	}
	x.emitFrame(ex, log.DirectionIn, raw)

	r := packet.ParseRead(raw, expected, subtype, req.Tag)
	if !r.Ok() {
		return x.finishAttempt(ex, try, attempt{code: r.Code(), diag: r.Diagnostic()})
	}
	return x.finishAttempt(ex, try, attempt{packet: r.Packet()})
}

func (x *Exchanger) finishAttempt(ex exchange, try int, a attempt) attempt {
	x.record(a.code, ex.op)
	x.emitStatus(ex, try, a.code, a.diag)
	if a.code != status.OK {
		x.debugLog("ddc: attempt failed", "op", ex.op, "try", try, "status", x.registry.SafeName(a.code), "diag", a.diag)
	}
	return a
}

// WriteRead makes one attempt to write req and read a reply of type
// expected. subtype is the feature code for Get VCP replies. On failure
// the error is a *status.Error; a reply type the codec cannot interpret
// is DDCRC_ARG and nothing is sent.
func (x *Exchanger) WriteRead(ctx context.Context, req *packet.Packet, maxRead int, expected packet.Type, subtype byte) (*packet.Packet, error) {
	if !packet.Interpretable(expected) {
		return nil, x.fail(status.DDCArg, "write_read")
	}
	a := x.writeRead(ctx, exchange{op: "write_read"}, req, maxRead, expected, subtype, 1)
	if a.code != status.OK {
		return nil, &status.Error{Code: a.code, Op: "write_read"}
	}
	return a.packet, nil
}

// WriteReadWithRetry repeats WriteRead up to MaxWriteReadTries times.
// A reply type the codec cannot interpret fails with DDCRC_ARG before
// anything is sent.
// A null response or a cancelled context stops the loop early and is
// returned as is. When every try fails the error is an
// *errinfo.ErrorInfo coded DDCRC_RETRIES, or DDCRC_ALL_TRIES_ZERO if
// every read was all zero, with one cause per try.
func (x *Exchanger) WriteReadWithRetry(ctx context.Context, req *packet.Packet, maxRead int, expected packet.Type, subtype byte) (*packet.Packet, error) {
	if !packet.Interpretable(expected) {
		return nil, x.fail(status.DDCArg, "write_read_with_retry")
	}
	return x.writeReadWithRetry(ctx, exchange{op: "write_read"}, req, maxRead, expected, subtype)
}

func (x *Exchanger) writeReadWithRetry(ctx context.Context, ex exchange, req *packet.Packet, maxRead int, expected packet.Type, subtype byte) (*packet.Packet, error) {
	const fn = "write_read_with_retry"
	maxTries := x.config.MaxWriteReadTries
	hist := errinfo.NewRetryHistory()

	for try := 1; try <= maxTries; try++ {
		a := x.writeRead(ctx, ex, req, maxRead, expected, subtype, try)
		if a.code == status.OK {
			x.writeReadTries.Record(status.OK, try)
			return a.packet, nil
		}
		hist.Add(a.code)
		if !writeReadRetryable(ctx, a.code) {
			x.writeReadTries.Record(a.code, try)
			ei := errinfo.NewWithCalleeCodes(a.code, hist.Codes(), "write_read", fn)
			x.emitRetry(ex, ei, try)
			return nil, ei
		}
	}

	ei := hist.ToErrorInfo("write_read", fn)
	if hist.All(status.DDCReadAllZero) {
		ei.SetCode(status.DDCAllTriesZero)
	}
	x.counts.Record(ei.Code, fn)
	x.writeReadTries.Record(ei.Code, maxTries)
	x.emitRetry(ex, ei, maxTries)
	x.debugLog("ddc: retries exhausted", "op", ex.op, "causes", ei.CausesStringWith(x.registry))
	return nil, ei
}

// writeReadRetryable reports whether another write-read try may help.
// A null response is the display's answer, not a transmission error.
func writeReadRetryable(ctx context.Context, code status.Code) bool {
	if ctx.Err() != nil {
		return false
	}
	return code != status.DDCNullResponse
}

// WriteOnly makes one attempt to write req, followed by the post-write
// pause.
func (x *Exchanger) WriteOnly(ctx context.Context, req *packet.Packet) error {
	if code := x.writeOnly(ctx, exchange{op: "write_only"}, req, 1); code != status.OK {
		return &status.Error{Code: code, Op: "write_only"}
	}
	return nil
}

func (x *Exchanger) writeOnly(ctx context.Context, ex exchange, req *packet.Packet, try int) status.Code {
	out := req.Wire()
	x.emitFrame(ex, log.DirectionOut, out)
	code := x.registry.FromError(x.transport.Write(ctx, out))
	if code == status.OK {
		code = x.registry.FromError(x.pause(ctx, ex, sleep.EventPostWrite))
	}
	x.finishAttempt(ex, try, attempt{code: code})
	return code
}

// WriteOnlyWithRetry repeats WriteOnly up to MaxWriteOnlyTries times.
// Only I/O errors are retried; any other failure is returned at once.
func (x *Exchanger) WriteOnlyWithRetry(ctx context.Context, req *packet.Packet) error {
	return x.writeOnlyWithRetry(ctx, exchange{op: "write_only"}, req)
}

func (x *Exchanger) writeOnlyWithRetry(ctx context.Context, ex exchange, req *packet.Packet) error {
	const fn = "write_only_with_retry"
	maxTries := x.config.MaxWriteOnlyTries
	hist := errinfo.NewRetryHistory()

	for try := 1; try <= maxTries; try++ {
		code := x.writeOnly(ctx, ex, req, try)
		if code == status.OK {
			x.writeOnlyTries.Record(status.OK, try)
			return nil
		}
		hist.Add(code)
		if ctx.Err() != nil || code != x.registry.Errno(syscall.EIO) {
			x.writeOnlyTries.Record(code, try)
			ei := errinfo.NewWithCalleeCodes(code, hist.Codes(), "write_only", fn)
			x.emitRetry(ex, ei, try)
			return ei
		}
	}

	ei := hist.ToErrorInfo("write_only", fn)
	x.counts.Record(ei.Code, fn)
	x.writeOnlyTries.Record(ei.Code, maxTries)
	x.emitRetry(ex, ei, maxTries)
	return ei
}
