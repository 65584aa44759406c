package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ddcci-protocol/ddcci-go/pkg/log"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

func createTestLogFile(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.dlog")

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

const testSession = "abc12345-6789-0123-4567-890abcdef012"

// exchangeEvents returns the capture of one Get VCP that failed once with
// a checksum error and then succeeded.
func exchangeEvents() []log.Event {
	ts := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	feature := uint8(0x10)
	base := log.Event{SessionID: testSession, Worker: "i2c-7", Operation: "get_vcp", Feature: &feature}

	at := func(ms int, e log.Event) log.Event {
		e.Timestamp = ts.Add(time.Duration(ms) * time.Millisecond)
		e.SessionID, e.Worker, e.Operation, e.Feature = base.SessionID, base.Worker, base.Operation, base.Feature
		return e
	}

	return []log.Event{
		at(0, log.Event{Direction: log.DirectionOut, Layer: log.LayerTransport, Category: log.CategoryFrame,
			Frame: &log.FrameEvent{Size: 5, Data: []byte{0x51, 0x82, 0x01, 0x10, 0xac}, Type: 0x01}}),
		at(50, log.Event{Direction: log.DirectionIn, Layer: log.LayerTransport, Category: log.CategoryFrame,
			Frame: &log.FrameEvent{Size: 11, Data: []byte{0x6e, 0x88, 0x02, 0x00}, Truncated: true, Type: 0x02}}),
		at(51, log.Event{Layer: log.LayerCodec, Category: log.CategoryStatus,
			Status: &log.StatusEvent{Attempt: 1, Code: int(status.DDCData), Name: "DDCRC_DDC_DATA", Diagnostic: "checksum mismatch"}}),
		at(60, log.Event{Layer: log.LayerExchange, Category: log.CategorySleep,
			Sleep: &log.SleepEvent{Event: "write-to-read", Duration: 100 * time.Millisecond, Adjustment: 2, Multiplier: 1}}),
		at(160, log.Event{Layer: log.LayerCodec, Category: log.CategoryStatus,
			Status: &log.StatusEvent{Attempt: 2, Code: 0, Name: "OK"}}),
		at(300, log.Event{Layer: log.LayerExchange, Category: log.CategoryRetry,
			Retry: &log.RetryEvent{Code: int(status.DDCRetries), Name: "DDCRC_RETRIES", Tries: 3,
				Causes: []int{int(status.DDCData)}, Summary: "DDCRC_DDC_DATA(x3)"}}),
	}
}
