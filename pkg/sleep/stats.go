package sleep

import (
	"fmt"
	"io"
	"math"
	"syscall"

	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// Estimator defaults.
const (
	DefaultMultiplier    = 1.0
	DefaultCheckInterval = 2

	// MinSampleSize is the number of ok and error codes that must be
	// seen before the error rate is evaluated.
	MinSampleSize = 3

	// MinCeiling is the lowest the adjustment factor ceiling can be.
	MinCeiling = 3.0
)

// Class is the estimator's view of a status code.
type Class uint8

const (
	ClassOK Class = iota
	ClassError
	ClassOther
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassOK:
		return "ok"
	case ClassError:
		return "error"
	case ClassOther:
		return "other"
	default:
		return fmt.Sprintf("Class(%d)", c)
	}
}

// Classify sorts a terminal status code into ok, error or other, with
// errno codes placed by the default registry.
func Classify(code status.Code) Class {
	return ClassifyWith(status.Default(), code)
}

// ClassifyWith is Classify with errno codes placed by r. Only codes that
// indicate a struggling link count as errors; EIO and ENXIO may also be
// genuine answers but are counted pessimistically.
func ClassifyWith(r *status.Registry, code status.Code) Class {
	switch code {
	case status.OK:
		return ClassOK
	case status.DDCData, status.DDCReadAllZero, status.DDCNullResponse:
		return ClassError
	}
	if r.Has(status.DomainErrno) && (code == r.Errno(syscall.ENXIO) || code == r.Errno(syscall.EIO)) {
		return ClassError
	}
	return ClassOther
}

// ErrorThreshold returns the error rate above which the factor is raised
// for a sample of total codes. Smaller samples need a higher rate.
func ErrorThreshold(total int) float64 {
	switch {
	case total <= 4:
		return 0.5
	case total <= 10:
		return 0.3
	default:
		return 0.1
	}
}

// Stats is one worker's rolling success and failure counts and its current
// sleep adjustment factor.
type Stats struct {
	Enabled bool

	// Counts since the factor was last raised.
	OKCount    int
	ErrorCount int

	// Lifetime counts.
	TotalOK    int
	TotalError int
	OtherCount int

	CallsSinceCheck int
	CheckInterval   int
	TotalChecks     int

	AdjustmentFactor float64
	Multiplier       float64
	Increment        float64
	AdjustmentCount  int
	CeilingHits      int

	registry *status.Registry
}

// NewStats returns Stats with factor 1.0. A multiplier <= 0 uses
// DefaultMultiplier.
func NewStats(multiplier float64, enabled bool) *Stats {
	if multiplier <= 0 {
		multiplier = DefaultMultiplier
	}
	s := &Stats{Enabled: enabled, Multiplier: multiplier}
	s.Reset()
	return s
}

// Reset returns the factor to 1.0 and clears all counts. The check
// interval is kept.
func (s *Stats) Reset() {
	interval := s.CheckInterval
	if interval <= 0 {
		interval = DefaultCheckInterval
	}
	*s = Stats{
		Enabled:          s.Enabled,
		Multiplier:       s.Multiplier,
		Increment:        s.Multiplier,
		CheckInterval:    interval,
		AdjustmentFactor: 1.0,
		registry:         s.registry,
	}
}

// Record counts one exchange's terminal status code.
func (s *Stats) Record(code status.Code) Class {
	r := s.registry
	if r == nil {
		r = status.Default()
	}
	class := ClassifyWith(r, code)
	switch class {
	case ClassOK:
		s.OKCount++
		s.TotalOK++
	case ClassError:
		s.ErrorCount++
		s.TotalError++
	default:
		s.OtherCount++
	}
	return class
}

// Ceiling returns the largest factor Adjustment will reach.
func (s *Stats) Ceiling() float64 {
	return math.Max(MinCeiling, 2*s.Multiplier)
}

// ErrorRateHigh reports whether the current sample is large enough and
// its error rate exceeds ErrorThreshold.
func (s *Stats) ErrorRateHigh() bool {
	total := s.OKCount + s.ErrorCount
	if total <= MinSampleSize {
		return false
	}
	rate := float64(s.ErrorCount) / float64(total)
	return rate > ErrorThreshold(total)
}

// Adjustment returns the factor to scale the next sleep by. Every
// CheckInterval+1 calls the error rate is checked; if it is high the
// factor is raised by Increment, up to Ceiling, and the sample restarts.
// The factor never decreases on its own. When disabled, Adjustment returns
// 1.0 and changes nothing.
func (s *Stats) Adjustment() float64 {
	if !s.Enabled {
		return 1.0
	}

	s.CallsSinceCheck++
	if s.CallsSinceCheck > s.CheckInterval {
		s.CallsSinceCheck = 0
		s.TotalChecks++
		if s.ErrorRateHigh() {
			next := s.AdjustmentFactor + s.Increment
			if next <= s.Ceiling() {
				s.AdjustmentFactor = next
				s.AdjustmentCount++
			} else {
				s.CeilingHits++
			}
			s.OKCount = 0
			s.ErrorCount = 0
		}
	}
	return s.AdjustmentFactor
}

// Report writes the counters in a human readable form.
func (s *Stats) Report(w io.Writer) {
	fmt.Fprintf(w, "Dynamic sleep enabled:     %t\n", s.Enabled)
	fmt.Fprintf(w, "Sleep multiplier:          %.2f\n", s.Multiplier)
	fmt.Fprintf(w, "Adjustment factor:         %.2f (ceiling %.2f)\n", s.AdjustmentFactor, s.Ceiling())
	fmt.Fprintf(w, "Adjustments:               %d (ceiling reached %d)\n", s.AdjustmentCount, s.CeilingHits)
	fmt.Fprintf(w, "Checks:                    %d\n", s.TotalChecks)
	fmt.Fprintf(w, "Status codes ok/error/other: %d/%d/%d\n", s.TotalOK, s.TotalError, s.OtherCount)
}
