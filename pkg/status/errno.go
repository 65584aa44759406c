package status

import (
	"sync"
	"syscall"
)

// errnoTable holds errno descriptors keyed by negative raw errno. Entries
// start with names only; descriptions are filled from the platform on
// first use.
type errnoTable struct {
	mu      sync.Mutex
	entries []Info
}

// ErrnoDomain returns the operating-system errno domain. Each call returns
// a domain with its own memoization table.
func ErrnoDomain() Domain {
	t := &errnoTable{entries: append([]Info(nil), errnoNames...)}
	return Domain{
		ID:     DomainErrno,
		Base:   RangeErrnoBase,
		Max:    RangeErrnoMax,
		Find:   t.find,
		Lookup: t.lookup,
	}
}

func (t *errnoTable) find(raw int) (Info, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i := range t.entries {
		if t.entries[i].Code == raw {
			if t.entries[i].Description == "" {
				t.entries[i].Description = errnoText(raw)
			}
			return t.entries[i], true
		}
	}

	name := platformErrnoName(abs(raw))
	if name == "" {
		return Info{}, false
	}
	info := Info{Code: raw, Name: name, Description: errnoText(raw)}
	t.entries = append(t.entries, info)
	return info, true
}

func (t *errnoTable) lookup(name string) (int, bool) {
	t.mu.Lock()
	for _, e := range t.entries {
		if e.Name == name {
			t.mu.Unlock()
			return e.Code, true
		}
	}
	t.mu.Unlock()

	if n := platformErrnoValue(name); n > 0 && n <= LocalMax {
		return -n, true
	}
	return 0, false
}

func errnoText(raw int) string {
	return syscall.Errno(abs(raw)).Error()
}

// Errno returns the shared-space code for an operating-system error in the
// default registry.
func Errno(e syscall.Errno) Code {
	return Default().Errno(e)
}

// Errno returns the shared-space code for an operating-system error. The
// negative errno is modulated into the errno domain. Errno values too large
// to be domain-local, or a registry without an errno domain, give DDCOther.
func (r *Registry) Errno(e syscall.Errno) Code {
	n := int(e)
	if n == 0 {
		return OK
	}
	if n > LocalMax || !r.Has(DomainErrno) {
		return DDCOther
	}
	return r.Modulate(-n, DomainErrno)
}
