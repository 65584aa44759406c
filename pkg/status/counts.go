package status

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"text/tabwriter"
)

// Counts tallies status code occurrences. It is safe for concurrent use.
type Counts struct {
	registry *Registry
	logger   *slog.Logger

	mu     sync.Mutex
	counts map[Code]int
}

// NewCounts creates an empty tally. A nil registry uses Default.
func NewCounts(r *Registry) *Counts {
	if r == nil {
		r = Default()
	}
	return &Counts{registry: r, counts: make(map[Code]int)}
}

// SetLogger sets a logger that receives one debug record per occurrence.
func (c *Counts) SetLogger(logger *slog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// Record counts one occurrence of code and returns it unchanged, so calls
// can wrap a return value. OK is not counted.
func (c *Counts) Record(code Code, caller string) Code {
	if code == OK {
		return code
	}
	c.mu.Lock()
	c.counts[code]++
	logger := c.logger
	c.mu.Unlock()

	if logger != nil {
		logger.Debug("status code occurrence",
			"code", int(code),
			"name", c.registry.SafeName(code),
			"caller", caller)
	}
	return code
}

// Get returns the number of recorded occurrences of code.
func (c *Counts) Get(code Code) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.counts[code]
}

// Snapshot returns a copy of the current counts.
func (c *Counts) Snapshot() map[Code]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[Code]int, len(c.counts))
	for k, v := range c.counts {
		out[k] = v
	}
	return out
}

// Reset discards all counts.
func (c *Counts) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.counts = make(map[Code]int)
}

// Report writes a table of nonzero counts, most frequent first.
func (c *Counts) Report(w io.Writer) error {
	snap := c.Snapshot()
	if len(snap) == 0 {
		_, err := fmt.Fprintln(w, "No status codes recorded")
		return err
	}

	codes := make([]Code, 0, len(snap))
	for code := range snap {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if snap[codes[i]] != snap[codes[j]] {
			return snap[codes[i]] > snap[codes[j]]
		}
		return codes[i] > codes[j]
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "COUNT\tCODE\tNAME\tDESCRIPTION")
	for _, code := range codes {
		info := Info{Name: c.registry.SafeName(code)}
		if c.registry.Known(code) {
			info = c.registry.Describe(code)
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", snap[code], int(code), info.Name, info.Description)
	}
	return tw.Flush()
}
