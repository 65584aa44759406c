package status

import (
	"errors"
	"fmt"
	"sync"
)

// LocalMax is the largest magnitude a domain-local (unmodulated) code may have.
const LocalMax = 999

// Domain range bases and limits.
const (
	RangeErrnoBase = 1000
	RangeErrnoMax  = 1999
	RangeADLBase   = 2000
	RangeADLMax    = 2999
	RangeDDCBase   = 3000
	RangeDDCMax    = 3999
)

// Registry validation errors.
var (
	// ErrInvalidRange indicates a domain whose range is empty or reaches into
	// the domain-local range.
	ErrInvalidRange = errors.New("invalid domain range")

	// ErrRangeOverlap indicates two domains whose ranges intersect.
	ErrRangeOverlap = errors.New("domain ranges overlap")

	// ErrDuplicateDomain indicates a domain ID registered twice.
	ErrDuplicateDomain = errors.New("duplicate domain")

	// ErrMissingFinder indicates a domain without a descriptor finder.
	ErrMissingFinder = errors.New("domain has no descriptor finder")
)

// DomainID identifies one status-code domain.
type DomainID uint8

const (
	// DomainErrno holds operating system error numbers.
	DomainErrno DomainID = iota + 1
	// DomainADL holds vendor display API status codes.
	DomainADL
	// DomainDDC holds DDC/CI protocol status codes.
	DomainDDC
)

// String returns the domain name.
func (d DomainID) String() string {
	switch d {
	case DomainErrno:
		return "ERRNO"
	case DomainADL:
		return "ADL"
	case DomainDDC:
		return "DDC"
	default:
		return "UNKNOWN"
	}
}

// Info describes a single status code.
type Info struct {
	Code        int
	Name        string
	Description string
}

// Finder returns the descriptor for a code. Whether the argument is the
// raw or the modulated form is set per domain by FinderArgModulated.
type Finder func(code int) (Info, bool)

// NameLookup maps a symbolic name to a code, in the same form a Finder
// for that domain accepts.
type NameLookup func(name string) (int, bool)

// Domain is one disjoint range of the shared status-code space.
type Domain struct {
	ID   DomainID
	Base int
	Max  int

	// Find returns the descriptor for a code in this domain.
	Find Finder

	// FinderArgModulated is true when Find and Lookup work on shared-space
	// codes, avoiding a demodulate/modulate round trip.
	FinderArgModulated bool

	// Lookup resolves a symbolic name. May be nil.
	Lookup NameLookup
}

func (d Domain) contains(abs int) bool {
	return abs >= d.Base && abs <= d.Max
}

// Registry maps shared-space codes to their domains and descriptors.
// A Registry is immutable once constructed.
type Registry struct {
	domains []Domain
}

// NewRegistry builds and validates a registry. Domains are searched in the
// order given.
func NewRegistry(domains ...Domain) (*Registry, error) {
	r := &Registry{domains: append([]Domain(nil), domains...)}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// Validate checks that every range is well formed, lies above the
// domain-local range, and is disjoint from every other range.
func (r *Registry) Validate() error {
	seen := make(map[DomainID]bool, len(r.domains))
	for i, d := range r.domains {
		if seen[d.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateDomain, d.ID)
		}
		seen[d.ID] = true
		if d.Base <= LocalMax || d.Max < d.Base {
			return fmt.Errorf("%w: %s [%d, %d]", ErrInvalidRange, d.ID, d.Base, d.Max)
		}
		if d.Find == nil {
			return fmt.Errorf("%w: %s", ErrMissingFinder, d.ID)
		}
		for _, other := range r.domains[:i] {
			if d.Base <= other.Max && other.Base <= d.Max {
				return fmt.Errorf("%w: %s [%d, %d] and %s [%d, %d]",
					ErrRangeOverlap, other.ID, other.Base, other.Max, d.ID, d.Base, d.Max)
			}
		}
	}
	return nil
}

// Domains returns the registered domain IDs in search order.
func (r *Registry) Domains() []DomainID {
	ids := make([]DomainID, len(r.domains))
	for i, d := range r.domains {
		ids[i] = d.ID
	}
	return ids
}

// Has reports whether domain id is registered.
func (r *Registry) Has(id DomainID) bool {
	for _, d := range r.domains {
		if d.ID == id {
			return true
		}
	}
	return false
}

func (r *Registry) domain(id DomainID) Domain {
	for _, d := range r.domains {
		if d.ID == id {
			return d
		}
	}
	panic(fmt.Sprintf("status: domain %s not registered", id))
}

// Modulate shifts a domain-local code into the shared space. The sign is
// preserved and zero maps to zero. Panics if raw is already outside the
// domain-local range or the domain is not registered.
func (r *Registry) Modulate(raw int, id DomainID) Code {
	if abs(raw) > LocalMax {
		panic(fmt.Sprintf("status: modulate %d: not a domain-local code", raw))
	}
	base := r.domain(id).Base
	switch {
	case raw < 0:
		return Code(raw - base)
	case raw > 0:
		return Code(raw + base)
	default:
		return OK
	}
}

// Demodulate is the inverse of Modulate. The caller must supply the domain
// the code was modulated into.
func (r *Registry) Demodulate(c Code, id DomainID) int {
	if c == OK {
		return 0
	}
	if abs(int(c)) <= LocalMax {
		panic(fmt.Sprintf("status: demodulate %d: not a shared-space code", c))
	}
	base := r.domain(id).Base
	if c < 0 {
		return int(c) + base
	}
	return int(c) - base
}

// Lookup returns the domain whose range contains |c|.
func (r *Registry) Lookup(c Code) (DomainID, bool) {
	a := abs(int(c))
	for _, d := range r.domains {
		if d.contains(a) {
			return d.ID, true
		}
	}
	return 0, false
}

// Classify returns the domain of a nonzero shared-space code. A code that
// falls in no registered range is a programming error and panics.
func (r *Registry) Classify(c Code) DomainID {
	id, ok := r.Lookup(c)
	if !ok {
		panic(fmt.Sprintf("status: code %d is in no registered domain", c))
	}
	return id
}

var okInfo = Info{Code: 0, Name: "OK", Description: "success"}

// Describe returns the descriptor for a shared-space code. Codes in a known
// domain that have no table entry get a synthesized descriptor.
func (r *Registry) Describe(c Code) Info {
	if c == OK {
		return okInfo
	}
	d := r.domain(r.Classify(c))
	arg := int(c)
	if !d.FinderArgModulated {
		arg = r.Demodulate(c, d.ID)
	}
	info, ok := d.Find(arg)
	if !ok {
		return Info{
			Code:        int(c),
			Name:        fmt.Sprintf("%s_%d", d.ID, arg),
			Description: fmt.Sprintf("unknown %s status code %d", d.ID, arg),
		}
	}
	info.Code = int(c)
	return info
}

// Known reports whether c is OK or lies in a registered domain.
func (r *Registry) Known(c Code) bool {
	if c == OK {
		return true
	}
	_, ok := r.Lookup(c)
	return ok
}

// SafeName is Name for codes that may lie outside every domain. Those are
// named Code(n).
func (r *Registry) SafeName(c Code) string {
	if !r.Known(c) {
		return fmt.Sprintf("Code(%d)", int(c))
	}
	return r.Name(c)
}

// SafeDesc is Desc for codes that may lie outside every domain.
func (r *Registry) SafeDesc(c Code) string {
	if !r.Known(c) {
		return fmt.Sprintf("status code %d", int(c))
	}
	return r.Desc(c)
}

// Name returns the symbolic name of a code.
func (r *Registry) Name(c Code) string {
	return r.Describe(c).Name
}

// Desc returns "NAME(code): description".
func (r *Registry) Desc(c Code) string {
	info := r.Describe(c)
	return fmt.Sprintf("%s(%d): %s", info.Name, c, info.Description)
}

// NameToCode resolves a symbolic name such as "DDCRC_RETRIES" or "ENXIO"
// to its shared-space code, trying each domain in registration order.
func (r *Registry) NameToCode(name string) (Code, bool) {
	if name == okInfo.Name {
		return OK, true
	}
	for _, d := range r.domains {
		if d.Lookup == nil {
			continue
		}
		v, ok := d.Lookup(name)
		if !ok {
			continue
		}
		if d.FinderArgModulated {
			return Code(v), true
		}
		return r.Modulate(v, d.ID), true
	}
	return OK, false
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry holding the errno, ADL and DDC
// domains. It panics if the built-in tables are inconsistent.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(ErrnoDomain(), ADLDomain(), DDCDomain())
		if err != nil {
			panic(fmt.Sprintf("status: built-in registry: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// TableFinder returns a Finder that linearly scans a static table.
func TableFinder(table []Info) Finder {
	return func(code int) (Info, bool) {
		for _, info := range table {
			if info.Code == code {
				return info, true
			}
		}
		return Info{}, false
	}
}

// TableLookup returns a NameLookup that linearly scans a static table.
func TableLookup(table []Info) NameLookup {
	return func(name string) (int, bool) {
		for _, info := range table {
			if info.Name == name {
				return info.Code, true
			}
		}
		return 0, false
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
