package log

import (
	"bytes"
	"io"
	"path/filepath"
	"testing"
	"time"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create test log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func readFiltered(t *testing.T, path string, f Filter) []Event {
	t.Helper()
	reader, err := NewFilteredReader(path, f)
	if err != nil {
		t.Fatalf("NewFilteredReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return events
}

func sampleEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, SessionID: "s1", Worker: "i2c-3", Direction: DirectionOut, Layer: LayerTransport, Category: CategoryFrame, Operation: "get_vcp", Frame: &FrameEvent{Size: 5}},
		{Timestamp: base.Add(time.Second), SessionID: "s1", Worker: "i2c-3", Direction: DirectionIn, Layer: LayerTransport, Category: CategoryFrame, Operation: "get_vcp", Frame: &FrameEvent{Size: 11}},
		{Timestamp: base.Add(2 * time.Second), SessionID: "s1", Worker: "i2c-3", Layer: LayerCodec, Category: CategoryStatus, Operation: "get_vcp", Status: &StatusEvent{Attempt: 1, Code: -3031}},
		{Timestamp: base.Add(3 * time.Second), SessionID: "s2", Worker: "i2c-4", Layer: LayerCodec, Category: CategoryStatus, Operation: "capabilities", Status: &StatusEvent{Attempt: 1, Code: -3006}},
		{Timestamp: base.Add(4 * time.Second), SessionID: "s2", Worker: "i2c-4", Layer: LayerExchange, Category: CategoryRetry, Operation: "capabilities", Retry: &RetryEvent{Code: -3031, Tries: 4}},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	path := createTestLogFile(t, sampleEvents(time.Now()))

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	var read []Event
	for {
		event, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}
		read = append(read, event)
	}

	if len(read) != 5 {
		t.Fatalf("got %d events, want 5", len(read))
	}
	if read[0].Direction != DirectionOut || read[4].Category != CategoryRetry {
		t.Errorf("order not preserved: first=%v last=%v", read[0].Direction, read[4].Category)
	}
}

func TestReaderHandlesEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	event, err := reader.Next()
	if err != io.EOF {
		t.Errorf("expected io.EOF, got err=%v, event=%+v", err, event)
	}
}

func TestReaderHandlesCutOffStream(t *testing.T) {
	data, err := EncodeEvent(Event{Timestamp: time.Now(), SessionID: "cut", Category: CategoryFrame})
	if err != nil {
		t.Fatalf("EncodeEvent failed: %v", err)
	}

	reader := NewStreamReader(bytes.NewReader(data[:len(data)-3]), Filter{})
	if _, err := reader.Next(); err == nil || err == io.EOF {
		t.Errorf("expected a decode error for a cut-off event, got %v", err)
	}
}

func TestReaderFilters(t *testing.T) {
	base := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, sampleEvents(base))

	dirIn := DirectionIn
	codec := LayerCodec
	retry := CategoryRetry
	nullCode := -3006
	dataCode := -3031
	start := base.Add(time.Second)
	end := base.Add(3 * time.Second)

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"none", Filter{}, 5},
		{"session", Filter{SessionID: "s2"}, 2},
		{"worker", Filter{Worker: "i2c-3"}, 3},
		{"operation", Filter{Operation: "capabilities"}, 2},
		{"direction", Filter{Direction: &dirIn}, 1},
		{"layer", Filter{Layer: &codec}, 2},
		{"category", Filter{Category: &retry}, 1},
		{"status code", Filter{Code: &nullCode}, 1},
		{"code spans status and retry", Filter{Code: &dataCode}, 2},
		{"time range", Filter{TimeStart: &start, TimeEnd: &end}, 2},
		{"combined", Filter{SessionID: "s1", Layer: &codec, Code: &dataCode}, 1},
		{"no match", Filter{SessionID: "s3"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := readFiltered(t, path, tt.filter)
			if len(got) != tt.want {
				t.Errorf("got %d events, want %d", len(got), tt.want)
			}
			for _, e := range got {
				if !tt.filter.Matches(e) {
					t.Errorf("event %+v does not match filter", e)
				}
			}
		})
	}
}

func TestReaderCloseOnStream(t *testing.T) {
	reader := NewStreamReader(bytes.NewReader(nil), Filter{})
	if err := reader.Close(); err != nil {
		t.Errorf("Close on a non-closer should succeed, got %v", err)
	}
}
