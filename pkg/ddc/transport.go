package ddc

import (
	"context"
	"time"

	"github.com/ddcci-protocol/ddcci-go/pkg/sleep"
)

// Transport moves raw bytes to and from a display. Write receives the
// frame without its destination address byte. Read returns exactly the
// bytes read, up to n. Errors should be syscall.Errno values where the
// platform provides them; anything else is classified by the
// FromError method of the exchanger's status registry.
type Transport interface {
	Write(ctx context.Context, b []byte) error
	Read(ctx context.Context, n int) ([]byte, error)
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

var _ SleepFunc = sleep.Wait
