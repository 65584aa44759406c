package ddc

import (
	"context"
	"fmt"

	"github.com/ddcci-protocol/ddcci-go/pkg/errinfo"
	"github.com/ddcci-protocol/ddcci-go/pkg/packet"
	"github.com/ddcci-protocol/ddcci-go/pkg/sleep"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
	"github.com/ddcci-protocol/ddcci-go/pkg/version"
)

// FeatureVCPVersion is the VCP feature reporting the MCCS version the
// display implements.
const FeatureVCPVersion byte = 0xDF

// GetVCP reads a non-table feature. A display that reports the feature
// unsupported yields a *status.Error coded DDCRC_REPORTED_UNSUPPORTED.
func (x *Exchanger) GetVCP(ctx context.Context, feature byte) (*packet.FeatureReply, error) {
	const fn = "get_vcp"
	ex := opFeature(fn, feature)
	req := packet.NewGetVCPRequest(feature, fn)

	p, err := x.writeReadWithRetry(ctx, ex, req, featureReadSize, packet.TypeQueryVCPResponse, feature)
	if err != nil {
		return nil, errinfo.NewChained(x.asErrorInfo(err, fn), fn)
	}

	f := p.Feature()
	switch {
	case !f.Supported():
		return nil, x.fail(status.DDCReportedUnsupported, fn)
	case x.config.ZeroValueUnsupported && f.MH == 0 && f.ML == 0 && f.SH == 0 && f.SL == 0:
		return nil, x.fail(status.DDCDeterminedUnsupported, fn)
	}
	x.debugLog("ddc: get_vcp", "feature", fmt.Sprintf("0x%02x", feature), "cur", f.CurValue(), "max", f.MaxValue())
	return f, nil
}

// SetVCP writes a non-table feature. With Config.Verify set the value is
// read back and a mismatch fails with DDCRC_VERIFY.
func (x *Exchanger) SetVCP(ctx context.Context, feature byte, value uint16) error {
	const fn = "set_vcp"
	req := packet.NewSetVCPRequest(feature, value, fn)
	if err := x.writeOnlyWithRetry(ctx, opFeature(fn, feature), req); err != nil {
		return errinfo.NewChained(x.asErrorInfo(err, fn), fn)
	}
	if !x.config.Verify {
		return nil
	}

	f, err := x.GetVCP(ctx, feature)
	if err != nil {
		return errinfo.NewWithCause(status.DDCVerify, x.asErrorInfo(err, fn), fn)
	}
	if f.SL != byte(value) {
		x.debugLog("ddc: set_vcp verification failed", "feature", fmt.Sprintf("0x%02x", feature), "want", value, "got", f.CurValue())
		return x.fail(status.DDCVerify, fn)
	}
	return nil
}

// SaveSettings asks the display to persist its current settings.
func (x *Exchanger) SaveSettings(ctx context.Context) error {
	const fn = "save_settings"
	ex := exchange{op: fn}
	if err := x.writeOnlyWithRetry(ctx, ex, packet.NewSaveSettingsRequest(fn)); err != nil {
		return errinfo.NewChained(x.asErrorInfo(err, fn), fn)
	}
	if err := x.pause(ctx, ex, sleep.EventPostSaveSettings); err != nil {
		return &status.Error{Code: x.counts.Record(x.registry.FromError(err), fn), Op: fn}
	}
	return nil
}

// VCPVersion reads the MCCS version the display reports.
func (x *Exchanger) VCPVersion(ctx context.Context) (version.MCCS, error) {
	f, err := x.GetVCP(ctx, FeatureVCPVersion)
	if err != nil {
		return version.MCCS{}, err
	}
	return version.FromFeature(f.SH, f.SL), nil
}

// fail counts code and returns it as a *status.Error.
func (x *Exchanger) fail(code status.Code, op string) *status.Error {
	return &status.Error{Code: x.counts.Record(code, op), Op: op}
}
