package ddc

import (
	"fmt"
	"io"
	"sync"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// TryKind names a retry loop.
type TryKind uint8

const (
	TryWriteOnly TryKind = iota
	TryWriteRead
	TryMultiPart
)

// String returns the loop name.
func (k TryKind) String() string {
	switch k {
	case TryWriteOnly:
		return "write-only exchange"
	case TryWriteRead:
		return "write-read exchange"
	case TryMultiPart:
		return "multi-part exchange"
	default:
		return fmt.Sprintf("TryKind(%d)", k)
	}
}

// TryStats is a histogram of how many tries each exchange of one kind
// needed. It is safe for concurrent use.
type TryStats struct {
	mu        sync.Mutex
	kind      TryKind
	maxTries  int
	succeeded []int // index is tries-1
	exhausted int
	fatal     int
}

// NewTryStats returns empty statistics for loops of at most maxTries.
func NewTryStats(kind TryKind, maxTries int) *TryStats {
	return &TryStats{
		kind:      kind,
		maxTries:  maxTries,
		succeeded: make([]int, maxTries),
	}
}

// Record counts one finished loop. code is its final status.
func (t *TryStats) Record(code status.Code, tries int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	switch {
	case code == status.OK:
		if tries >= 1 && tries <= len(t.succeeded) {
			t.succeeded[tries-1]++
		}
	case code == status.DDCRetries || code == status.DDCAllTriesZero:
		t.exhausted++
	default:
		t.fatal++
	}
}

// Succeeded returns the number of loops that succeeded on try n.
func (t *TryStats) Succeeded(n int) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	if n < 1 || n > len(t.succeeded) {
		return 0
	}
	return t.succeeded[n-1]
}

// Exhausted returns the number of loops that ran out of tries.
func (t *TryStats) Exhausted() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.exhausted
}

// Fatal returns the number of loops stopped by a non-retryable status.
func (t *TryStats) Fatal() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.fatal
}

// Total returns the number of recorded loops.
func (t *TryStats) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	n := t.exhausted + t.fatal
	for _, c := range t.succeeded {
		n += c
	}
	return n
}

// Reset clears all counters.
func (t *TryStats) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.succeeded)
	t.exhausted = 0
	t.fatal = 0
}

// Report writes the histogram in a human readable form.
func (t *TryStats) Report(w io.Writer) {
	total := t.Total()

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(w, "Retry statistics for %s\n", t.kind)
	if total == 0 {
		fmt.Fprintln(w, "   No tries attempted")
		return
	}
	fmt.Fprintf(w, "   Max tries allowed: %d\n", t.maxTries)
	fmt.Fprintln(w, "   Successful attempts by number of tries required:")
	ok := 0
	for i, c := range t.succeeded {
		ok += c
		fmt.Fprintf(w, "     %2d:  %3d\n", i+1, c)
	}
	fmt.Fprintf(w, "   Total successful attempts:        %3d\n", ok)
	fmt.Fprintf(w, "   Failed due to max tries exceeded: %3d\n", t.exhausted)
	fmt.Fprintf(w, "   Failed due to fatal error:        %3d\n", t.fatal)
	fmt.Fprintf(w, "   Total attempts:                   %3d\n", total)
}
