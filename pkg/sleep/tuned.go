package sleep

import (
	"context"
	"fmt"
	"time"
)

// Event is a point in an exchange that needs a pause.
type Event uint8

const (
	// EventWriteToRead is between writing a request and reading its reply.
	EventWriteToRead Event = iota
	// EventPostWrite follows a write-only request such as Set VCP.
	EventPostWrite
	// EventPostRead follows a read.
	EventPostRead
	// EventPostSaveSettings follows a Save Current Settings request.
	EventPostSaveSettings
	// EventDDCNull follows a null response before retrying.
	EventDDCNull
	// EventMultiPartPostSegment follows each fragment of a multi-part read.
	EventMultiPartPostSegment
)

var baseDurations = [...]time.Duration{
	EventWriteToRead:          50 * time.Millisecond,
	EventPostWrite:            50 * time.Millisecond,
	EventPostRead:             0,
	EventPostSaveSettings:     200 * time.Millisecond,
	EventDDCNull:              100 * time.Millisecond,
	EventMultiPartPostSegment: 50 * time.Millisecond,
}

// String returns the event name.
func (e Event) String() string {
	switch e {
	case EventWriteToRead:
		return "write-to-read"
	case EventPostWrite:
		return "post-write"
	case EventPostRead:
		return "post-read"
	case EventPostSaveSettings:
		return "post-save-settings"
	case EventDDCNull:
		return "ddc-null"
	case EventMultiPartPostSegment:
		return "multi-part-post-segment"
	default:
		return fmt.Sprintf("Event(%d)", e)
	}
}

// Base returns the unscaled pause for e.
func (e Event) Base() time.Duration {
	if int(e) >= len(baseDurations) {
		return 0
	}
	return baseDurations[e]
}

// Tuned returns the pause for e scaled by multiplier and adjustment.
func Tuned(e Event, multiplier, adjustment float64) time.Duration {
	return time.Duration(float64(e.Base()) * multiplier * adjustment)
}

// Wait sleeps for d or until ctx is done, returning ctx.Err() in the
// latter case.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
