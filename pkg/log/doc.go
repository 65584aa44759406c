// Package log provides structured protocol capture for DDC/CI exchanges.
//
// This package defines the Logger interface and Event types for recording
// what happened on the bus: the raw frames written and read, the status of
// each attempt, retry exhaustion, and changes to the adaptive sleep
// adjustment. It is separate from operational logging (slog). Protocol
// capture provides a complete machine-readable trace for offline analysis
// of flaky monitors.
//
// # Basic Usage
//
// An exchanger is configured by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.ProtocolLogger = log.NewSlogAdapter(slog.Default())
//
//	// For field reports: write to binary file
//	cfg.ProtocolLogger, _ = log.NewFileLogger("/tmp/ddc.dlog")
//
//	// Both: use MultiLogger
//	cfg.ProtocolLogger = log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Types
//
// Events are captured at three layers:
//   - Transport: raw frame bytes (FrameEvent)
//   - Codec: the status of one parsed reply (StatusEvent)
//   - Exchange: retry exhaustion (RetryEvent) and sleep adjustment (SleepEvent)
//
// # File Format
//
// Log files are a stream of CBOR-encoded events using integer map keys,
// conventionally with a .dlog extension. The ddc-log tool provides
// viewing, filtering, and statistics.
package log
