// Package commands implements the ddc-log CLI commands.
package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ddcci-protocol/ddcci-go/pkg/log"
	"github.com/ddcci-protocol/ddcci-go/pkg/packet"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Layer     *log.Layer
	Direction *log.Direction
	Category  *log.Category
	Worker    string
	Operation string
}

func (f ViewFilter) matches(e log.Event) bool {
	switch {
	case f.Layer != nil && e.Layer != *f.Layer:
		return false
	case f.Direction != nil && e.Direction != *f.Direction:
		return false
	case f.Category != nil && e.Category != *f.Category:
		return false
	case f.Worker != "" && e.Worker != f.Worker:
		return false
	case f.Operation != "" && e.Operation != f.Operation:
		return false
	}
	return true
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [session:id] DIRECTION LAYER Label
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	session := shortenID(event.SessionID)

	var label string
	switch {
	case event.Frame != nil:
		label = "Frame"
		if event.Frame.Type != 0 {
			label = packet.Type(event.Frame.Type).String()
		}
	case event.Status != nil:
		label = "Status"
	case event.Retry != nil:
		label = "Retry"
	case event.Sleep != nil:
		label = "Sleep"
	default:
		label = "Unknown"
	}

	fmt.Fprintf(w, "%s [session:%s] %-3s %s %s\n", ts, session, event.Direction, event.Layer, label)
	formatContext(w, event)

	switch {
	case event.Frame != nil:
		formatFrameDetails(w, event.Frame)
	case event.Status != nil:
		formatStatusDetails(w, event.Status)
	case event.Retry != nil:
		formatRetryDetails(w, event.Retry)
	case event.Sleep != nil:
		formatSleepDetails(w, event.Sleep)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of a session ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatContext(w io.Writer, e log.Event) {
	var parts []string
	if e.Worker != "" {
		parts = append(parts, "worker="+e.Worker)
	}
	if e.Operation != "" {
		parts = append(parts, "op="+e.Operation)
	}
	if e.Feature != nil {
		parts = append(parts, fmt.Sprintf("feature=0x%02x", *e.Feature))
	}
	if len(parts) > 0 {
		fmt.Fprintf(w, "  %s\n", strings.Join(parts, " "))
	}
}

func formatFrameDetails(w io.Writer, frame *log.FrameEvent) {
	fmt.Fprintf(w, "  Size: %d bytes\n", frame.Size)
	if len(frame.Data) > 0 {
		fmt.Fprintf(w, "  Data: %s", hex.EncodeToString(frame.Data))
		if frame.Truncated {
			fmt.Fprintf(w, " (truncated)")
		}
		fmt.Fprintln(w)
	}
}

func formatStatusDetails(w io.Writer, s *log.StatusEvent) {
	fmt.Fprintf(w, "  Attempt: %d\n", s.Attempt)
	fmt.Fprintf(w, "  Status: %s (%d)\n", statusName(s.Code, s.Name), s.Code)
	if s.Diagnostic != "" {
		fmt.Fprintf(w, "  Diagnostic: %s\n", s.Diagnostic)
	}
}

func formatRetryDetails(w io.Writer, r *log.RetryEvent) {
	fmt.Fprintf(w, "  Status: %s (%d) after %d tries\n", statusName(r.Code, r.Name), r.Code, r.Tries)
	if r.Summary != "" {
		fmt.Fprintf(w, "  Causes: %s\n", r.Summary)
	}
}

func formatSleepDetails(w io.Writer, s *log.SleepEvent) {
	fmt.Fprintf(w, "  Event: %s\n", s.Event)
	fmt.Fprintf(w, "  Adjustment: %.2f (multiplier %.2f)\n", s.Adjustment, s.Multiplier)
	fmt.Fprintf(w, "  Duration: %s\n", formatDuration(s.Duration))
}

// statusName prefers the recorded name and falls back to the registry
// for captures written without one.
func statusName(code int, name string) string {
	if name != "" {
		return name
	}
	c := status.Code(code)
	if _, ok := status.Default().Lookup(c); !ok && c != status.OK {
		return fmt.Sprintf("Code(%d)", code)
	}
	return status.Default().Name(c)
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer string from command-line flag (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	return parseLayer(s)
}

func parseLayer(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "codec":
		return log.LayerCodec, nil
	case "exchange":
		return log.LayerExchange, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport, codec, or exchange)", s)
	}
}

// ParseDirectionFlag parses a direction string from command-line flag (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	return parseDirection(s)
}

func parseDirection(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category string from command-line flag (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	return parseCategory(s)
}

func parseCategory(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "frame":
		return log.CategoryFrame, nil
	case "status":
		return log.CategoryStatus, nil
	case "retry":
		return log.CategoryRetry, nil
	case "sleep":
		return log.CategorySleep, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be frame, status, retry, or sleep)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if !filter.matches(event) {
			continue
		}
		formatEvent(output, event)
	}

	return nil
}
