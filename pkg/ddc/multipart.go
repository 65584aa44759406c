package ddc

import (
	"bytes"
	"context"

	"github.com/ddcci-protocol/ddcci-go/pkg/errinfo"
	"github.com/ddcci-protocol/ddcci-go/pkg/packet"
	"github.com/ddcci-protocol/ddcci-go/pkg/sleep"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// maxTableWriteFragment is the data carried by one Table Write request:
// the request limit less opcode, feature and offset.
const maxTableWriteFragment = packet.MaxRequestData - 4

// MultiPartRead assembles a Capabilities or Table Read reply. Each
// fragment is read with write-read retries; the whole read is retried up
// to MaxMultiPartTries times. A fragment at an unexpected offset fails the
// try with DDCRC_DDC_DATA. Null responses and all-zero reads stop the
// retries.
func (x *Exchanger) MultiPartRead(ctx context.Context, t packet.Type, subtype byte) ([]byte, error) {
	const fn = "multi_part_read"
	if !t.IsMultiPart() {
		return nil, &status.Error{Code: status.DDCArg, Op: fn}
	}
	ex := exchange{op: fn}
	if t == packet.TypeTableReadRequest {
		ex = opFeature(fn, subtype)
	}

	maxTries := x.config.MaxMultiPartTries
	causes := make([]*errinfo.ErrorInfo, 0, maxTries)
	for try := 1; try <= maxTries; try++ {
		buf, ei := x.tryMultiPartRead(ctx, ex, t, subtype)
		if ei == nil {
			x.multiPartTries.Record(status.OK, try)
			return buf, nil
		}
		causes = append(causes, ei)
		if !multiPartRetryable(ctx, ei.Code) {
			x.multiPartTries.Record(ei.Code, try)
			stop := errinfo.NewWithCauses(ei.Code, causes, fn)
			x.emitRetry(ex, stop, try)
			return nil, stop
		}
	}

	ei := errinfo.NewWithCauses(status.DDCRetries, causes, fn)
	x.counts.Record(ei.Code, fn)
	x.multiPartTries.Record(ei.Code, maxTries)
	x.emitRetry(ex, ei, maxTries)
	return nil, ei
}

func multiPartRetryable(ctx context.Context, code status.Code) bool {
	if ctx.Err() != nil {
		return false
	}
	switch code {
	case status.DDCNullResponse, status.DDCReadAllZero, status.DDCAllTriesZero:
		return false
	}
	return true
}

func (x *Exchanger) tryMultiPartRead(ctx context.Context, ex exchange, t packet.Type, subtype byte) ([]byte, *errinfo.ErrorInfo) {
	const fn = "try_multi_part_read"
	req, err := packet.NewMultiPartReadRequest(t, subtype, 0, ex.op)
	if err != nil {
		return nil, errinfo.New(status.DDCArg, fn)
	}
	expected := t.ReplyType()

	var acc []byte
	offset := 0
	for {
		if err := req.SetOffset(offset); err != nil {
			return nil, errinfo.New(x.counts.Record(status.DDCData, fn), fn)
		}
		p, err := x.writeReadWithRetry(ctx, ex, req, multiPartReadSize, expected, subtype)
		if err != nil {
			return nil, errinfo.NewChained(x.asErrorInfo(err, fn), fn)
		}

		frag := p.Fragment()
		if frag.Offset != offset {
			x.debugLog("ddc: fragment offset mismatch", "op", ex.op, "want", offset, "got", frag.Offset)
			return nil, errinfo.New(x.counts.Record(status.DDCData, fn), fn)
		}
		if len(frag.Data) == 0 {
			return acc, nil
		}
		acc = append(acc, frag.Data...)
		offset += len(frag.Data)

		if err := x.pause(ctx, ex, sleep.EventMultiPartPostSegment); err != nil {
			return nil, errinfo.New(x.registry.FromError(err), fn)
		}
	}
}

// Capabilities reads the display's capabilities string.
func (x *Exchanger) Capabilities(ctx context.Context) (string, error) {
	b, err := x.MultiPartRead(ctx, packet.TypeCapabilitiesRequest, 0)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(b, "\x00")), nil
}

// TableRead reads the value of a table feature.
func (x *Exchanger) TableRead(ctx context.Context, feature byte) ([]byte, error) {
	return x.MultiPartRead(ctx, packet.TypeTableReadRequest, feature)
}

// TableWrite writes the value of a table feature as a sequence of
// fragments ending with an empty one. The whole write is retried up to
// MaxMultiPartTries times.
func (x *Exchanger) TableWrite(ctx context.Context, feature byte, value []byte) error {
	const fn = "table_write"
	if len(value) > 0xFFFF {
		return &status.Error{Code: status.DDCArg, Op: fn}
	}
	ex := opFeature(fn, feature)

	maxTries := x.config.MaxMultiPartTries
	causes := make([]*errinfo.ErrorInfo, 0, maxTries)
	for try := 1; try <= maxTries; try++ {
		err := x.tryTableWrite(ctx, ex, feature, value)
		if err == nil {
			x.multiPartTries.Record(status.OK, try)
			return nil
		}
		ei := x.asErrorInfo(err, fn)
		causes = append(causes, ei)
		if ctx.Err() != nil || ei.Code == status.DDCArg {
			x.multiPartTries.Record(ei.Code, try)
			stop := errinfo.NewWithCauses(ei.Code, causes, fn)
			x.emitRetry(ex, stop, try)
			return stop
		}
	}

	ei := errinfo.NewWithCauses(status.DDCRetries, causes, fn)
	x.counts.Record(ei.Code, fn)
	x.multiPartTries.Record(ei.Code, maxTries)
	x.emitRetry(ex, ei, maxTries)
	return ei
}

func (x *Exchanger) tryTableWrite(ctx context.Context, ex exchange, feature byte, value []byte) error {
	offset := 0
	for {
		n := min(len(value)-offset, maxTableWriteFragment)
		req, err := packet.NewTableWriteRequest(feature, offset, value[offset:offset+n], ex.op)
		if err != nil {
			x.debugLog("ddc: table write fragment", "offset", offset, "error", err)
			return errinfo.New(status.DDCArg, "try_table_write")
		}
		if err := x.writeOnlyWithRetry(ctx, ex, req); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		offset += n
	}
}
