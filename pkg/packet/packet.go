package packet

import (
	"encoding/hex"
	"errors"
	"fmt"
)

// Request construction errors.
var (
	ErrRequestTooLarge = errors.New("request data exceeds 32 bytes")
	ErrNotMultiPart    = errors.New("not a multi-part read request")
	ErrInvalidOffset   = errors.New("offset out of range")
)

// Packet is a validated DDC/CI frame. Requests hold the frame as sent;
// replies hold the normalized frame starting with ReplyDestAddr.
type Packet struct {
	raw  []byte
	Type Type
	Tag  string

	fragment *MultiPartFragment
	feature  *FeatureReply
}

// Bytes returns a copy of the full frame.
func (p *Packet) Bytes() []byte {
	return append([]byte(nil), p.raw...)
}

// Wire returns the bytes exchanged with the bus: the frame without its
// first address byte, which the bus supplies.
func (p *Packet) Wire() []byte {
	return append([]byte(nil), p.raw[1:]...)
}

// Data returns the data field, from the opcode up to but excluding the
// checksum. The slice aliases the packet.
func (p *Packet) Data() []byte {
	return p.raw[3 : len(p.raw)-1]
}

// DataLen returns the length of the data field.
func (p *Packet) DataLen() int {
	return int(p.raw[2] & lenMask)
}

// IsNull reports whether p is the DDC null message.
func (p *Packet) IsNull() bool {
	return p.DataLen() == 0
}

// Fragment returns the interpreted multi-part fragment, or nil.
func (p *Packet) Fragment() *MultiPartFragment {
	return p.fragment
}

// Feature returns the interpreted Get VCP reply, or nil.
func (p *Packet) Feature() *FeatureReply {
	return p.feature
}

// String returns the tag, type and hex bytes.
func (p *Packet) String() string {
	return fmt.Sprintf("%s[%s %s]", p.Tag, p.Type, hex.EncodeToString(p.raw))
}

// NewRequest builds a request frame around data, whose first byte is the
// command opcode.
func NewRequest(data []byte, tag string) (*Packet, error) {
	if len(data) > MaxRequestData {
		return nil, fmt.Errorf("%w: %d", ErrRequestTooLarge, len(data))
	}
	raw := make([]byte, 0, len(data)+4)
	raw = append(raw, DestAddr, SrcAddr, byte(len(data))|lenFlag)
	raw = append(raw, data...)
	raw = append(raw, Checksum(raw, false))

	p := &Packet{raw: raw, Tag: tag}
	if len(data) > 0 {
		p.Type = Type(data[0])
	}
	return p, nil
}

func mustRequest(data []byte, tag string) *Packet {
	p, err := NewRequest(data, tag)
	if err != nil {
		panic(err)
	}
	return p
}

// NewGetVCPRequest builds a Get VCP Feature request.
func NewGetVCPRequest(feature byte, tag string) *Packet {
	return mustRequest([]byte{byte(TypeQueryVCPRequest), feature}, tag)
}

// NewSetVCPRequest builds a Set VCP Feature request.
func NewSetVCPRequest(feature byte, value uint16, tag string) *Packet {
	return mustRequest([]byte{byte(TypeSetVCPRequest), feature, byte(value >> 8), byte(value)}, tag)
}

// NewSaveSettingsRequest builds a Save Current Settings request.
func NewSaveSettingsRequest(tag string) *Packet {
	return mustRequest([]byte{byte(TypeSaveSettings)}, tag)
}

// NewIDRequest builds an Identification request.
func NewIDRequest(tag string) *Packet {
	return mustRequest([]byte{byte(TypeIDRequest)}, tag)
}

// NewCapabilitiesRequest builds a Capabilities request for the fragment at
// offset.
func NewCapabilitiesRequest(offset int, tag string) (*Packet, error) {
	return NewMultiPartReadRequest(TypeCapabilitiesRequest, 0, offset, tag)
}

// NewTableReadRequest builds a Table Read request for feature at offset.
func NewTableReadRequest(feature byte, offset int, tag string) (*Packet, error) {
	return NewMultiPartReadRequest(TypeTableReadRequest, feature, offset, tag)
}

// NewMultiPartReadRequest builds a Capabilities or Table Read request.
// subtype is the VCP feature code for table reads and ignored otherwise.
func NewMultiPartReadRequest(t Type, subtype byte, offset int, tag string) (*Packet, error) {
	if offset < 0 || offset > 0xFFFF {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	hi, lo := byte(offset>>8), byte(offset)
	switch t {
	case TypeCapabilitiesRequest:
		return NewRequest([]byte{byte(t), hi, lo}, tag)
	case TypeTableReadRequest:
		return NewRequest([]byte{byte(t), subtype, hi, lo}, tag)
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotMultiPart, t)
	}
}

// NewTableWriteRequest builds a Table Write request carrying data at
// offset.
func NewTableWriteRequest(feature byte, offset int, data []byte, tag string) (*Packet, error) {
	if offset < 0 || offset > 0xFFFF {
		return nil, fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	b := make([]byte, 0, 4+len(data))
	b = append(b, byte(TypeTableWriteRequest), feature, byte(offset>>8), byte(offset))
	b = append(b, data...)
	return NewRequest(b, tag)
}

func (p *Packet) offsetIndex() (int, error) {
	switch p.Type {
	case TypeCapabilitiesRequest:
		return 4, nil
	case TypeTableReadRequest:
		return 5, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrNotMultiPart, p.Type)
	}
}

// Offset returns the fragment offset of a multi-part read request.
func (p *Packet) Offset() (int, error) {
	i, err := p.offsetIndex()
	if err != nil {
		return 0, err
	}
	return int(p.raw[i])<<8 | int(p.raw[i+1]), nil
}

// SetOffset rewrites the fragment offset of a multi-part read request in
// place and recomputes the checksum.
func (p *Packet) SetOffset(offset int) error {
	if offset < 0 || offset > 0xFFFF {
		return fmt.Errorf("%w: %d", ErrInvalidOffset, offset)
	}
	i, err := p.offsetIndex()
	if err != nil {
		return err
	}
	p.raw[i] = byte(offset >> 8)
	p.raw[i+1] = byte(offset)
	last := len(p.raw) - 1
	p.raw[last] = Checksum(p.raw[:last], false)
	return nil
}
