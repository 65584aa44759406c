package log

import (
	"time"
)

// Event is one protocol capture record.
// CBOR encoding uses integer keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID identifies the exchanger that produced the event (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Worker is the sleep-estimator key of the bus the exchange ran on.
	Worker string `cbor:"3,keyasint,omitempty"`

	// Direction of the frame, or DirectionNone for non-frame events.
	Direction Direction `cbor:"4,keyasint"`

	// Layer where the event was captured.
	Layer Layer `cbor:"5,keyasint"`

	// Category classifies the payload.
	Category Category `cbor:"6,keyasint"`

	// Operation is the exchange being performed, e.g. "get_vcp".
	Operation string `cbor:"7,keyasint,omitempty"`

	// Feature is the VCP feature code, when the operation has one.
	Feature *uint8 `cbor:"8,keyasint,omitempty"`

	// Type-specific payload (one of these will be set).
	Frame  *FrameEvent  `cbor:"10,keyasint,omitempty"`
	Status *StatusEvent `cbor:"11,keyasint,omitempty"`
	Retry  *RetryEvent  `cbor:"12,keyasint,omitempty"`
	Sleep  *SleepEvent  `cbor:"13,keyasint,omitempty"`
}

// Code returns the status code carried by a Status or Retry event.
func (e Event) Code() (int, bool) {
	switch {
	case e.Status != nil:
		return e.Status.Code, true
	case e.Retry != nil:
		return e.Retry.Code, true
	default:
		return 0, false
	}
}

// Direction indicates the direction of a frame on the bus.
type Direction uint8

const (
	// DirectionNone marks events that are not frames.
	DirectionNone Direction = 0
	// DirectionIn indicates bytes read from the display.
	DirectionIn Direction = 1
	// DirectionOut indicates bytes written to the display.
	DirectionOut Direction = 2
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirectionNone:
		return "-"
	case DirectionIn:
		return "IN"
	case DirectionOut:
		return "OUT"
	default:
		return "UNKNOWN"
	}
}

// Layer indicates which part of the stack captured the event.
type Layer uint8

const (
	// LayerTransport is the raw byte layer.
	LayerTransport Layer = 0
	// LayerCodec is the packet parser.
	LayerCodec Layer = 1
	// LayerExchange is the retrying exchange engine.
	LayerExchange Layer = 2
)

// String returns the layer name.
func (l Layer) String() string {
	switch l {
	case LayerTransport:
		return "TRANSPORT"
	case LayerCodec:
		return "CODEC"
	case LayerExchange:
		return "EXCHANGE"
	default:
		return "UNKNOWN"
	}
}

// Category classifies the event payload.
type Category uint8

const (
	// CategoryFrame indicates raw frame bytes.
	CategoryFrame Category = 0
	// CategoryStatus indicates the outcome of one attempt.
	CategoryStatus Category = 1
	// CategoryRetry indicates an exhausted or aborted retry loop.
	CategoryRetry Category = 2
	// CategorySleep indicates a change of the sleep adjustment.
	CategorySleep Category = 3
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case CategoryFrame:
		return "FRAME"
	case CategoryStatus:
		return "STATUS"
	case CategoryRetry:
		return "RETRY"
	case CategorySleep:
		return "SLEEP"
	default:
		return "UNKNOWN"
	}
}

// FrameEvent captures raw bytes at the transport layer.
type FrameEvent struct {
	// Size is the frame size in bytes.
	Size int `cbor:"1,keyasint"`

	// Data is the raw frame bytes (may be truncated).
	Data []byte `cbor:"2,keyasint,omitempty"`

	// Truncated indicates if Data was truncated.
	Truncated bool `cbor:"3,keyasint,omitempty"`

	// Type is the packet type byte, when known.
	Type uint8 `cbor:"4,keyasint,omitempty"`
}

// NewFrameEvent copies at most limit bytes of data into a FrameEvent.
// A limit of zero or less captures the whole frame.
func NewFrameEvent(data []byte, limit int, typ uint8) *FrameEvent {
	fe := &FrameEvent{Size: len(data), Type: typ}
	n := len(data)
	if limit > 0 && n > limit {
		n = limit
		fe.Truncated = true
	}
	fe.Data = append([]byte(nil), data[:n]...)
	return fe
}

// StatusEvent captures the outcome of one attempt.
type StatusEvent struct {
	// Attempt is the 1-based try number within the retry loop.
	Attempt int `cbor:"1,keyasint"`

	// Code is the shared-space status code; 0 on success.
	Code int `cbor:"2,keyasint"`

	// Name is the symbolic name of Code.
	Name string `cbor:"3,keyasint"`

	// Diagnostic is the parser's reason for a DDC data failure.
	Diagnostic string `cbor:"4,keyasint,omitempty"`
}

// RetryEvent captures the end of a retry loop that did not succeed.
type RetryEvent struct {
	// Code is the final status code reported to the caller.
	Code int `cbor:"1,keyasint"`

	// Name is the symbolic name of Code.
	Name string `cbor:"2,keyasint"`

	// Tries is the number of attempts made.
	Tries int `cbor:"3,keyasint"`

	// Causes are the per-attempt codes in order.
	Causes []int `cbor:"4,keyasint,omitempty"`

	// Summary is the collapsed one-line form of the error chain.
	Summary string `cbor:"5,keyasint,omitempty"`
}

// SleepEvent captures a change of the adaptive sleep adjustment.
type SleepEvent struct {
	// Event names the protocol point the sleep belongs to.
	Event string `cbor:"1,keyasint,omitempty"`

	// Duration is the tuned sleep in nanoseconds.
	Duration time.Duration `cbor:"2,keyasint,omitempty"`

	// Adjustment is the estimator's adjustment factor after the change.
	Adjustment float64 `cbor:"3,keyasint"`

	// Multiplier is the configured multiplier.
	Multiplier float64 `cbor:"4,keyasint"`
}
