package commands

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ddcci-protocol/ddcci-go/pkg/log"
)

// RunExport exports the log file to the specified format.
func RunExport(path, format, output string) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case "jsonl":
		return exportJSONL(reader, w)
	case "csv":
		return exportCSV(reader, w)
	default:
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
	return nil
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"timestamp", "session_id", "worker", "direction", "layer", "category", "operation", "feature", "code", "detail"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		feature := ""
		if event.Feature != nil {
			feature = fmt.Sprintf("0x%02x", *event.Feature)
		}
		code := ""
		if c, ok := event.Code(); ok {
			code = strconv.Itoa(c)
		}

		row := []string{
			event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
			event.SessionID,
			event.Worker,
			event.Direction.String(),
			event.Layer.String(),
			event.Category.String(),
			event.Operation,
			feature,
			code,
			eventDetail(event),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	return nil
}

// eventDetail returns the single most useful field of an event for
// tabular output.
func eventDetail(e log.Event) string {
	switch {
	case e.Frame != nil:
		return hex.EncodeToString(e.Frame.Data)
	case e.Status != nil:
		return e.Status.Diagnostic
	case e.Retry != nil:
		return e.Retry.Summary
	case e.Sleep != nil:
		return strconv.FormatFloat(e.Sleep.Adjustment, 'f', 2, 64)
	}
	return ""
}
