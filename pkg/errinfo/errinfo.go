package errinfo

import (
	"fmt"
	"io"
	"strings"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// MaxMaxTries is the largest retry count any exchange may be configured
// with. A retries-exhausted node never has more causes than this.
const MaxMaxTries = 15

// ErrorInfo is one node of an error tree.
type ErrorInfo struct {
	Code   status.Code
	Func   string
	Causes []*ErrorInfo
}

// New creates a leaf node.
func New(code status.Code, fn string) *ErrorInfo {
	return &ErrorInfo{Code: code, Func: fn}
}

// NewWithCause creates a node with a single cause. A nil cause is ignored.
func NewWithCause(code status.Code, cause *ErrorInfo, fn string) *ErrorInfo {
	e := New(code, fn)
	e.AddCause(cause)
	return e
}

// NewChained creates a node that reports the same code as cause, recording
// that the failure passed through fn.
func NewChained(cause *ErrorInfo, fn string) *ErrorInfo {
	return NewWithCause(cause.Code, cause, fn)
}

// NewWithCauses creates a node whose causes are the given nodes, in order.
func NewWithCauses(code status.Code, causes []*ErrorInfo, fn string) *ErrorInfo {
	e := New(code, fn)
	for _, c := range causes {
		e.AddCause(c)
	}
	return e
}

// NewWithCalleeCodes creates a node with one leaf cause per code, each
// attributed to calleeFn.
func NewWithCalleeCodes(code status.Code, codes []status.Code, calleeFn, fn string) *ErrorInfo {
	e := New(code, fn)
	e.Causes = make([]*ErrorInfo, 0, len(codes))
	for _, c := range codes {
		e.Causes = append(e.Causes, New(c, calleeFn))
	}
	return e
}

// NewRetries creates a DDCRC_RETRIES node with one leaf cause per attempt
// code, in attempt order. Panics if more than MaxMaxTries codes are given.
func NewRetries(codes []status.Code, calleeFn, fn string) *ErrorInfo {
	if len(codes) > MaxMaxTries {
		panic(fmt.Sprintf("errinfo: %d retry codes exceeds maximum %d", len(codes), MaxMaxTries))
	}
	return NewWithCalleeCodes(status.DDCRetries, codes, calleeFn, fn)
}

// AddCause appends child to the cause list. The list grows as needed.
func (e *ErrorInfo) AddCause(child *ErrorInfo) {
	if child == nil {
		return
	}
	e.Causes = append(e.Causes, child)
}

// SetCode replaces the node's status code, e.g. when a caller reclassifies
// exhausted retries as DDCRC_ALL_TRIES_ZERO.
func (e *ErrorInfo) SetCode(code status.Code) {
	e.Code = code
}

// CauseCodes returns the status code of each direct cause, in order.
func (e *ErrorInfo) CauseCodes() []status.Code {
	if e == nil {
		return nil
	}
	codes := make([]status.Code, len(e.Causes))
	for i, c := range e.Causes {
		codes[i] = c.Code
	}
	return codes
}

// CausesString returns the names of the direct causes, comma separated,
// with runs of the same code collapsed as NAME(xN).
func (e *ErrorInfo) CausesString() string {
	return e.CausesStringWith(status.Default())
}

// CausesStringWith is CausesString with names taken from r.
func (e *ErrorInfo) CausesStringWith(r *status.Registry) string {
	return collapse(r, e.CauseCodes())
}

// Summary returns a one-line description of the node and its causes.
func (e *ErrorInfo) Summary() string {
	return e.SummaryWith(status.Default())
}

// SummaryWith is Summary with descriptions taken from r. Codes outside
// every domain of r are printed numerically.
func (e *ErrorInfo) SummaryWith(r *status.Registry) string {
	if e == nil {
		return "NULL"
	}
	desc := r.SafeDesc(e.Code)
	if len(e.Causes) == 0 {
		return fmt.Sprintf("ErrorInfo[%s in %s]", desc, e.Func)
	}
	return fmt.Sprintf("ErrorInfo[%s in %s, causes: %s]", desc, e.Func, e.CausesStringWith(r))
}

// Report writes the full tree, indenting each level of causes.
func (e *ErrorInfo) Report(w io.Writer, depth int) {
	e.ReportWith(w, depth, status.Default())
}

// ReportWith is Report with descriptions taken from r.
func (e *ErrorInfo) ReportWith(w io.Writer, depth int, r *status.Registry) {
	if e == nil {
		return
	}
	indent := strings.Repeat("   ", depth)
	fn := e.Func
	if fn == "" {
		fn = "not set"
	}
	fmt.Fprintf(w, "%sException in function %s: status=%s\n", indent, fn, r.SafeDesc(e.Code))
	if len(e.Causes) > 0 {
		fmt.Fprintf(w, "%sCaused by:\n", indent)
		for _, c := range e.Causes {
			c.ReportWith(w, depth+1, r)
		}
	}
}

// Free releases the cause tree. It is safe to call on a nil or already
// freed node.
func (e *ErrorInfo) Free() {
	if e == nil {
		return
	}
	for _, c := range e.Causes {
		c.Free()
	}
	e.Causes = nil
}

// Error implements error.
func (e *ErrorInfo) Error() string {
	return e.Summary()
}

// StatusCode implements status.Coder.
func (e *ErrorInfo) StatusCode() status.Code {
	return e.Code
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *ErrorInfo) Unwrap() []error {
	if len(e.Causes) == 0 {
		return nil
	}
	errs := make([]error, len(e.Causes))
	for i, c := range e.Causes {
		errs[i] = c
	}
	return errs
}

// Is matches a *status.Error or *ErrorInfo carrying the same code.
func (e *ErrorInfo) Is(target error) bool {
	switch t := target.(type) {
	case *status.Error:
		return t.Code == e.Code
	case *ErrorInfo:
		return t.Code == e.Code
	}
	return false
}

func collapse(r *status.Registry, codes []status.Code) string {
	var b strings.Builder
	for i := 0; i < len(codes); {
		n := 1
		for i+n < len(codes) && codes[i+n] == codes[i] {
			n++
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(r.SafeName(codes[i]))
		if n > 1 {
			fmt.Fprintf(&b, "(x%d)", n)
		}
		i += n
	}
	return b.String()
}
