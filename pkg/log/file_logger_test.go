package log

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

func TestFileLoggerCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestFileLoggerWritesCBOR(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	event := Event{
		Timestamp: time.Now(),
		SessionID: "sess-123",
		Direction: DirectionOut,
		Layer:     LayerTransport,
		Category:  CategoryFrame,
		Frame:     &FrameEvent{Size: 5, Data: []byte{0x51, 0x82, 0x01, 0x10, 0xAC}},
	}
	logger.Log(event)
	logger.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("log file is empty")
	}

	decoded, err := DecodeEvent(data)
	if err != nil {
		t.Fatalf("failed to decode event: %v", err)
	}
	if decoded.SessionID != event.SessionID {
		t.Errorf("SessionID: got %q, want %q", decoded.SessionID, event.SessionID)
	}
	if decoded.Frame == nil || decoded.Frame.Size != 5 {
		t.Errorf("Frame: got %+v", decoded.Frame)
	}
}

func TestFileLoggerAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dlog")

	for _, id := range []string{"first", "second"} {
		logger, err := NewFileLogger(path)
		if err != nil {
			t.Fatalf("NewFileLogger failed: %v", err)
		}
		logger.Log(Event{Timestamp: time.Now(), SessionID: id})
		logger.Close()
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].SessionID != "first" || events[1].SessionID != "second" {
		t.Errorf("order: got %q, %q", events[0].SessionID, events[1].SessionID)
	}
}

func TestFileLoggerThreadSafe(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}

	const goroutines = 8
	const perGoroutine = 50
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				logger.Log(Event{
					Timestamp: time.Now(),
					SessionID: "sess",
					Category:  CategoryStatus,
					Status:    &StatusEvent{Attempt: i + 1, Code: -3031},
				})
			}
		}(g)
	}
	wg.Wait()

	written, failed := logger.Stats()
	logger.Close()

	if written != goroutines*perGoroutine || failed != 0 {
		t.Errorf("Stats = %d/%d, want %d/0", written, failed, goroutines*perGoroutine)
	}

	reader, err := NewReader(path)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()
	events, err := reader.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != goroutines*perGoroutine {
		t.Errorf("got %d events, want %d", len(events), goroutines*perGoroutine)
	}
}

func TestFileLoggerClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := NewFileLogger(path)
	if err != nil {
		t.Fatalf("NewFileLogger failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("first Close failed: %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close should be a no-op, got %v", err)
	}

	logger.Log(Event{SessionID: "after-close"})
	if written, _ := logger.Stats(); written != 0 {
		t.Errorf("written after close = %d, want 0", written)
	}
}

type nopWriteCloser struct {
	io.Writer
	closed bool
}

func (w *nopWriteCloser) Close() error {
	w.closed = true
	return nil
}

func TestStreamLogger(t *testing.T) {
	var buf bytes.Buffer
	w := &nopWriteCloser{Writer: &buf}

	logger := NewStreamLogger(w)
	logger.Log(Event{SessionID: "stream", Category: CategorySleep, Sleep: &SleepEvent{Adjustment: 2}})
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !w.closed {
		t.Error("Close should close the underlying writer")
	}

	events, err := NewStreamReader(&buf, Filter{}).ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(events) != 1 || events[0].Sleep == nil || events[0].Sleep.Adjustment != 2 {
		t.Errorf("got %+v", events)
	}
}
