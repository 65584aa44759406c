package commands

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/ddcci-protocol/ddcci-go/pkg/log"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents       int
	EventsByLayer     map[log.Layer]int
	EventsByCategory  map[log.Category]int
	EventsByDirection map[log.Direction]int
	Sessions          map[string]*SessionStats
	Statuses          map[string]int
	RetryFailures     map[string]int
	TimeRange         struct {
		Start time.Time
		End   time.Time
	}
}

// SessionStats holds statistics for a single exchanger session.
type SessionStats struct {
	FirstSeen     time.Time
	LastSeen      time.Time
	Events        int
	Worker        string
	Attempts      int
	Failed        int
	MaxAdjustment float64
}

// Collect reads every event from reader into a Stats.
func Collect(reader *log.Reader) (*Stats, error) {
	stats := &Stats{
		EventsByLayer:     make(map[log.Layer]int),
		EventsByCategory:  make(map[log.Category]int),
		EventsByDirection: make(map[log.Direction]int),
		Sessions:          make(map[string]*SessionStats),
		Statuses:          make(map[string]int),
		RetryFailures:     make(map[string]int),
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}
		stats.add(event)
	}
	return stats, nil
}

func (s *Stats) add(event log.Event) {
	s.TotalEvents++
	s.EventsByLayer[event.Layer]++
	s.EventsByCategory[event.Category]++
	if event.Direction != log.DirectionNone {
		s.EventsByDirection[event.Direction]++
	}

	if s.TimeRange.Start.IsZero() || event.Timestamp.Before(s.TimeRange.Start) {
		s.TimeRange.Start = event.Timestamp
	}
	if event.Timestamp.After(s.TimeRange.End) {
		s.TimeRange.End = event.Timestamp
	}

	sess, ok := s.Sessions[event.SessionID]
	if !ok {
		sess = &SessionStats{
			FirstSeen:     event.Timestamp,
			LastSeen:      event.Timestamp,
			MaxAdjustment: 1.0,
		}
		s.Sessions[event.SessionID] = sess
	}
	sess.Events++
	if event.Timestamp.After(sess.LastSeen) {
		sess.LastSeen = event.Timestamp
	}
	if event.Worker != "" && sess.Worker == "" {
		sess.Worker = event.Worker
	}

	switch {
	case event.Status != nil:
		sess.Attempts++
		if event.Status.Code != 0 {
			sess.Failed++
		}
		s.Statuses[statusName(event.Status.Code, event.Status.Name)]++
	case event.Retry != nil:
		s.RetryFailures[statusName(event.Retry.Code, event.Retry.Name)]++
	case event.Sleep != nil:
		if event.Sleep.Adjustment > sess.MaxAdjustment {
			sess.MaxAdjustment = event.Sleep.Adjustment
		}
	}
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats, err := Collect(reader)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== DDC/CI Capture Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Millisecond))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Layer:")
	for _, layer := range []log.Layer{log.LayerTransport, log.LayerCodec, log.LayerExchange} {
		if count := stats.EventsByLayer[layer]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", layer.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Events by Category:")
	for _, cat := range []log.Category{log.CategoryFrame, log.CategoryStatus, log.CategoryRetry, log.CategorySleep} {
		if count := stats.EventsByCategory[cat]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", cat.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Frames by Direction:")
	for _, dir := range []log.Direction{log.DirectionIn, log.DirectionOut} {
		if count := stats.EventsByDirection[dir]; count > 0 {
			fmt.Fprintf(w, "  %-12s %d\n", dir.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	printCounts(w, "Attempt Statuses:", stats.Statuses)
	printCounts(w, "Retry Failures:", stats.RetryFailures)

	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) == 0 {
		return
	}

	type sessionInfo struct {
		id    string
		stats *SessionStats
	}
	sessions := make([]sessionInfo, 0, len(stats.Sessions))
	for id, ss := range stats.Sessions {
		sessions = append(sessions, sessionInfo{id, ss})
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
	})

	fmt.Fprintln(w)
	for _, s := range sessions {
		duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
		fmt.Fprintf(w, "  [%s] %d events, duration %s\n", shortenID(s.id), s.stats.Events, duration)
		if s.stats.Worker != "" {
			fmt.Fprintf(w, "           Worker: %s\n", s.stats.Worker)
		}
		if s.stats.Attempts > 0 {
			fmt.Fprintf(w, "           Attempts: %d (%d failed)\n", s.stats.Attempts, s.stats.Failed)
		}
		if s.stats.MaxAdjustment > 1.0 {
			fmt.Fprintf(w, "           Max sleep adjustment: %.2f\n", s.stats.MaxAdjustment)
		}
	}
}

// printCounts writes a name/count table sorted by descending count.
func printCounts(w io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if counts[names[i]] != counts[names[j]] {
			return counts[names[i]] > counts[names[j]]
		}
		return names[i] < names[j]
	})

	fmt.Fprintln(w, title)
	for _, name := range names {
		fmt.Fprintf(w, "  %-36s %d\n", name, counts[name])
	}
	fmt.Fprintln(w)
}
