package commands

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExportToJSONL(t *testing.T) {
	path := createTestLogFile(t, exchangeEvents())
	out := filepath.Join(t.TempDir(), "out.jsonl")

	if err := RunExport(path, "jsonl", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d", len(lines))
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if first["SessionID"] != testSession {
		t.Errorf("SessionID = %v, want %s", first["SessionID"], testSession)
	}
	if first["Operation"] != "get_vcp" {
		t.Errorf("Operation = %v, want get_vcp", first["Operation"])
	}
}

func TestExportToCSV(t *testing.T) {
	path := createTestLogFile(t, exchangeEvents())
	out := filepath.Join(t.TempDir(), "out.csv")

	if err := RunExport(path, "csv", out); err != nil {
		t.Fatalf("RunExport failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("failed to open output: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("invalid CSV: %v", err)
	}
	if len(records) != 7 {
		t.Fatalf("expected header plus 6 rows, got %d", len(records))
	}
	if records[0][0] != "timestamp" || records[0][8] != "code" {
		t.Errorf("unexpected header: %v", records[0])
	}

	frame := records[1]
	if frame[3] != "OUT" || frame[7] != "0x10" || frame[9] != "51820110ac" {
		t.Errorf("unexpected frame row: %v", frame)
	}
	failed := records[3]
	if failed[8] != "-3031" || failed[9] != "checksum mismatch" {
		t.Errorf("unexpected status row: %v", failed)
	}
	retry := records[6]
	if retry[5] != "RETRY" || retry[9] != "DDCRC_DDC_DATA(x3)" {
		t.Errorf("unexpected retry row: %v", retry)
	}
}

func TestExportUnknownFormat(t *testing.T) {
	path := createTestLogFile(t, exchangeEvents())
	if err := RunExport(path, "xml", filepath.Join(t.TempDir(), "out")); err == nil {
		t.Error("expected error for unknown format")
	}
}
