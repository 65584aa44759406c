package packet

import "fmt"

// Frame addresses and limits.
const (
	DestAddr        byte = 0x6E // display, as addressed by the host
	SrcAddr         byte = 0x51 // host
	ReplyDestAddr   byte = 0x6F // host, as addressed by the display
	AltChecksumSeed byte = 0x50 // replaces ReplyDestAddr when checksumming replies

	lenFlag byte = 0x80
	lenMask byte = 0x7F

	// MaxRequestData is the largest data field a request may carry.
	MaxRequestData = 32

	// MaxDataSize is the largest data field accepted in a reply.
	MaxDataSize = 35

	// MaxFragmentSize is the largest data block in a multi-part fragment.
	MaxFragmentSize = 32

	// FeatureReplySize is the data length of a Get VCP reply.
	FeatureReplySize = 8

	// MinFragmentReplySize is type plus two offset bytes.
	MinFragmentReplySize = 3
)

// Type is the command or reply opcode carried in the first data byte.
type Type byte

const (
	TypeNone                Type = 0x00
	TypeQueryVCPRequest     Type = 0x01
	TypeQueryVCPResponse    Type = 0x02
	TypeSetVCPRequest       Type = 0x03
	TypeSaveSettings        Type = 0x0C
	TypeIDResponse          Type = 0xE1
	TypeTableReadRequest    Type = 0xE2
	TypeCapabilitiesReply   Type = 0xE3
	TypeTableReadResponse   Type = 0xE4
	TypeTableWriteRequest   Type = 0xE7
	TypeIDRequest           Type = 0xF1
	TypeCapabilitiesRequest Type = 0xF3
)

// String returns the opcode name.
func (t Type) String() string {
	switch t {
	case TypeNone:
		return "NONE"
	case TypeQueryVCPRequest:
		return "QUERY_VCP_REQUEST"
	case TypeQueryVCPResponse:
		return "QUERY_VCP_RESPONSE"
	case TypeSetVCPRequest:
		return "SET_VCP_REQUEST"
	case TypeSaveSettings:
		return "SAVE_SETTINGS"
	case TypeIDResponse:
		return "ID_RESPONSE"
	case TypeTableReadRequest:
		return "TABLE_READ_REQUEST"
	case TypeCapabilitiesReply:
		return "CAPABILITIES_RESPONSE"
	case TypeTableReadResponse:
		return "TABLE_READ_RESPONSE"
	case TypeTableWriteRequest:
		return "TABLE_WRITE_REQUEST"
	case TypeIDRequest:
		return "ID_REQUEST"
	case TypeCapabilitiesRequest:
		return "CAPABILITIES_REQUEST"
	default:
		return fmt.Sprintf("TYPE_0x%02X", byte(t))
	}
}

// ReplyType returns the reply opcode expected for a multi-part request
// type, or TypeNone.
func (t Type) ReplyType() Type {
	switch t {
	case TypeCapabilitiesRequest:
		return TypeCapabilitiesReply
	case TypeTableReadRequest:
		return TypeTableReadResponse
	case TypeQueryVCPRequest:
		return TypeQueryVCPResponse
	case TypeIDRequest:
		return TypeIDResponse
	default:
		return TypeNone
	}
}

// IsMultiPart reports whether t is a fragmented read request.
func (t Type) IsMultiPart() bool {
	return t == TypeCapabilitiesRequest || t == TypeTableReadRequest
}
