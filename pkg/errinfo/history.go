package errinfo

import (
	"fmt"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// RetryHistory is the ordered list of per-attempt status codes of one
// retried exchange.
type RetryHistory struct {
	codes []status.Code
}

// NewRetryHistory returns an empty history.
func NewRetryHistory() *RetryHistory {
	return &RetryHistory{codes: make([]status.Code, 0, MaxMaxTries)}
}

// Clear empties the history.
func (h *RetryHistory) Clear() {
	h.codes = h.codes[:0]
}

// Add appends one attempt's code. Adding more than MaxMaxTries codes panics.
func (h *RetryHistory) Add(code status.Code) {
	if len(h.codes) >= MaxMaxTries {
		panic(fmt.Sprintf("errinfo: retry history full (%d entries)", MaxMaxTries))
	}
	h.codes = append(h.codes, code)
}

// Len returns the number of recorded attempts.
func (h *RetryHistory) Len() int {
	return len(h.codes)
}

// Codes returns a copy of the recorded codes.
func (h *RetryHistory) Codes() []status.Code {
	out := make([]status.Code, len(h.codes))
	copy(out, h.codes)
	return out
}

// All reports whether every recorded attempt ended with code. An empty
// history reports false.
func (h *RetryHistory) All(code status.Code) bool {
	if len(h.codes) == 0 {
		return false
	}
	for _, c := range h.codes {
		if c != code {
			return false
		}
	}
	return true
}

// String returns the codes with runs collapsed, as CausesString does.
func (h *RetryHistory) String() string {
	return collapse(status.Default(), h.codes)
}

// ToErrorInfo builds the equivalent retries-exhausted node.
func (h *RetryHistory) ToErrorInfo(calleeFn, fn string) *ErrorInfo {
	return NewRetries(h.codes, calleeFn, fn)
}
