package packet

import (
	"fmt"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// Diagnostic names the check a reply failed. Several diagnostics share
// one status code.
type Diagnostic uint8

const (
	DiagNone Diagnostic = iota
	DiagEmpty
	DiagBadSource
	DiagPacketSize
	DiagDoubleByte
	DiagTruncated
	DiagChecksum
	DiagNullResponse
	DiagResponseType
	DiagDataLength
	DiagResultCode
	DiagFeatureMismatch
	DiagAllZero
	DiagReplyType
)

// String returns a short description.
func (d Diagnostic) String() string {
	switch d {
	case DiagNone:
		return "none"
	case DiagEmpty:
		return "empty reply"
	case DiagBadSource:
		return "unexpected source address"
	case DiagPacketSize:
		return "data length exceeds maximum"
	case DiagDoubleByte:
		return "duplicated byte in reply"
	case DiagTruncated:
		return "reply shorter than its length byte"
	case DiagChecksum:
		return "checksum mismatch"
	case DiagNullResponse:
		return "null message"
	case DiagResponseType:
		return "unexpected reply type"
	case DiagDataLength:
		return "wrong data length for reply type"
	case DiagResultCode:
		return "unexpected result code"
	case DiagFeatureMismatch:
		return "reply for a different feature"
	case DiagAllZero:
		return "reply entirely 0x00"
	case DiagReplyType:
		return "reply type cannot be interpreted"
	default:
		return fmt.Sprintf("Diagnostic(%d)", d)
	}
}

// Result is the outcome of parsing a reply: a packet, or a nonzero
// status code with the diagnostic that produced it.
type Result struct {
	packet *Packet
	code   status.Code
	diag   Diagnostic
}

func success(p *Packet) Result {
	return Result{packet: p}
}

func failure(code status.Code, diag Diagnostic) Result {
	if code == status.OK {
		panic("packet: failure with OK status")
	}
	return Result{code: code, diag: diag}
}

// Ok reports whether parsing succeeded.
func (r Result) Ok() bool {
	return r.packet != nil
}

// Packet returns the parsed packet, or nil on failure.
func (r Result) Packet() *Packet {
	return r.packet
}

// Code returns status.OK on success, otherwise the failure code.
func (r Result) Code() status.Code {
	return r.code
}

// Diagnostic returns the failed check, or DiagNone.
func (r Result) Diagnostic() Diagnostic {
	return r.diag
}

// Err returns nil on success, otherwise a *status.Error naming the
// diagnostic.
func (r Result) Err() error {
	if r.Ok() {
		return nil
	}
	return &status.Error{Code: r.code, Op: "parse reply (" + r.diag.String() + ")"}
}

// FeatureReply is an interpreted Get VCP Feature reply.
type FeatureReply struct {
	ResultCode byte
	Feature    byte
	TypeCode   byte
	MH, ML     byte
	SH, SL     byte
}

// Supported reports whether the display recognized the feature.
func (f *FeatureReply) Supported() bool {
	return f.ResultCode == 0
}

// MaxValue returns the maximum value.
func (f *FeatureReply) MaxValue() uint16 {
	return uint16(f.MH)<<8 | uint16(f.ML)
}

// CurValue returns the current value.
func (f *FeatureReply) CurValue() uint16 {
	return uint16(f.SH)<<8 | uint16(f.SL)
}

// Momentary reports whether the feature is a momentary control rather
// than a set parameter.
func (f *FeatureReply) Momentary() bool {
	return f.TypeCode == 0x01
}

// MultiPartFragment is one fragment of a Capabilities or Table Read reply.
type MultiPartFragment struct {
	Type   Type
	Offset int
	Data   []byte
}

// ParseBase validates the envelope of a reply read from the bus: source
// address, length, and checksum.
func ParseBase(raw []byte, tag string) Result {
	if len(raw) == 0 {
		return failure(status.DDCData, DiagEmpty)
	}
	if raw[0] != DestAddr {
		return failure(status.DDCData, DiagBadSource)
	}
	if len(raw) < 2 {
		return failure(status.DDCData, DiagTruncated)
	}
	n := int(raw[1] & lenMask)
	if n > MaxDataSize {
		if raw[1] == raw[0] {
			return failure(status.DDCData, DiagDoubleByte)
		}
		return failure(status.DDCData, DiagPacketSize)
	}
	if len(raw) < n+3 {
		return failure(status.DDCData, DiagTruncated)
	}

	norm := make([]byte, 0, n+4)
	norm = append(norm, ReplyDestAddr)
	norm = append(norm, raw[:n+3]...)
	if Checksum(norm[:n+3], true) != norm[n+3] {
		return failure(status.DDCData, DiagChecksum)
	}

	p := &Packet{raw: norm, Tag: tag}
	if n > 0 {
		p.Type = Type(norm[3])
	}
	return success(p)
}

// ParseResponse validates the envelope and checks the reply type. A
// zero-length reply is the null message and yields DDCNullResponse.
func ParseResponse(raw []byte, expected Type, tag string) Result {
	r := ParseBase(raw, tag)
	if !r.Ok() {
		return r
	}
	if r.packet.IsNull() {
		return failure(status.DDCNullResponse, DiagNullResponse)
	}
	if r.packet.Type != expected {
		return failure(status.DDCData, DiagResponseType)
	}
	return r
}

// Interpretable reports whether ParseTyped accepts replies of type t.
func Interpretable(t Type) bool {
	switch t {
	case TypeQueryVCPResponse, TypeCapabilitiesReply, TypeTableReadResponse, TypeIDResponse:
		return true
	}
	return false
}

// ParseTyped parses a reply and interprets its data. For Get VCP replies
// subtype is the requested feature code. Identification replies are
// returned after the envelope checks with no typed payload. Any other
// type that is not Interpretable fails with DDCArg.
func ParseTyped(raw []byte, expected Type, subtype byte, tag string) Result {
	if !Interpretable(expected) {
		return failure(status.DDCArg, DiagReplyType)
	}

	r := ParseResponse(raw, expected, tag)
	if !r.Ok() || expected == TypeIDResponse {
		return r
	}
	p := r.packet
	data := p.Data()

	if expected == TypeQueryVCPResponse {
		if len(data) != FeatureReplySize {
			return failure(status.DDCData, DiagDataLength)
		}
		f := &FeatureReply{
			ResultCode: data[1],
			Feature:    data[2],
			TypeCode:   data[3],
			MH:         data[4],
			ML:         data[5],
			SH:         data[6],
			SL:         data[7],
		}
		switch {
		case f.ResultCode == 0x01:
			// Valid reply: the display does not support the feature.
		case f.ResultCode != 0x00:
			return failure(status.DDCData, DiagResultCode)
		case f.Feature != subtype:
			return failure(status.DDCData, DiagFeatureMismatch)
		}
		p.feature = f
		return success(p)
	}

	if len(data) < MinFragmentReplySize || len(data) > MaxDataSize {
		return failure(status.DDCData, DiagDataLength)
	}
	p.fragment = &MultiPartFragment{
		Type:   expected,
		Offset: int(data[1])<<8 | int(data[2]),
		Data:   append([]byte(nil), data[3:]...),
	}
	return success(p)
}

// ParseRead is ParseTyped preceded by the all-zero check transports apply
// to freshly read buffers.
func ParseRead(raw []byte, expected Type, subtype byte, tag string) Result {
	if IsAllZero(raw) {
		return failure(status.DDCReadAllZero, DiagAllZero)
	}
	return ParseTyped(raw, expected, subtype, tag)
}
