package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ddcci-protocol/ddcci-go/pkg/log"
)

func TestCollect(t *testing.T) {
	path := createTestLogFile(t, exchangeEvents())
	r, err := log.NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer r.Close()

	stats, err := Collect(r)
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if stats.TotalEvents != 6 {
		t.Errorf("TotalEvents = %d, want 6", stats.TotalEvents)
	}
	if stats.EventsByLayer[log.LayerTransport] != 2 {
		t.Errorf("transport events = %d, want 2", stats.EventsByLayer[log.LayerTransport])
	}
	if stats.EventsByDirection[log.DirectionNone] != 0 {
		t.Error("non-frame events must not be counted by direction")
	}
	if stats.Statuses["DDCRC_DDC_DATA"] != 1 || stats.Statuses["OK"] != 1 {
		t.Errorf("Statuses = %v", stats.Statuses)
	}
	if stats.RetryFailures["DDCRC_RETRIES"] != 1 {
		t.Errorf("RetryFailures = %v", stats.RetryFailures)
	}

	sess := stats.Sessions[testSession]
	if sess == nil {
		t.Fatal("missing session")
	}
	if sess.Attempts != 2 || sess.Failed != 1 {
		t.Errorf("attempts = %d/%d failed, want 2/1", sess.Attempts, sess.Failed)
	}
	if sess.MaxAdjustment != 2 {
		t.Errorf("MaxAdjustment = %v, want 2", sess.MaxAdjustment)
	}
	if sess.Worker != "i2c-7" {
		t.Errorf("Worker = %q, want i2c-7", sess.Worker)
	}
}

func TestRunStatsOutput(t *testing.T) {
	path := createTestLogFile(t, exchangeEvents())

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 6",
		"TRANSPORT:",
		"EXCHANGE:",
		"RETRY:",
		"Retry Failures:",
		"DDCRC_RETRIES",
		"Sessions: 1",
		"[abc12345] 6 events, duration 300ms",
		"Worker: i2c-7",
		"Attempts: 2 (1 failed)",
		"Max sleep adjustment: 2.00",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestRunStatsEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("expected zero events, got:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Error("empty capture must not print a time range")
	}
}
