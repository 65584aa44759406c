package ddc

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/ddcci-protocol/ddcci-go/pkg/config"
	"github.com/ddcci-protocol/ddcci-go/pkg/errinfo"
	"github.com/ddcci-protocol/ddcci-go/pkg/log"
	"github.com/ddcci-protocol/ddcci-go/pkg/sleep"
	"github.com/ddcci-protocol/ddcci-go/pkg/status"
)

// Default try limits.
const (
	DefaultMaxWriteOnlyTries = 4
	DefaultMaxWriteReadTries = 10
	DefaultMaxMultiPartTries = 8
)

// ErrInvalidConfig is wrapped by Config.Validate failures.
var ErrInvalidConfig = errors.New("invalid exchanger config")

// Config configures an Exchanger. Zero values select the defaults.
type Config struct {
	// Worker keys the sleep estimator, typically the bus path.
	Worker sleep.WorkerID

	MaxWriteOnlyTries int
	MaxWriteReadTries int
	MaxMultiPartTries int

	// Status names codes and maps transport errors to them. Nil uses
	// status.Default().
	Status *status.Registry

	// Sleep supplies the worker's estimator. Nil creates a private
	// registry with dynamic adjustment enabled.
	Sleep *sleep.Registry

	// Counts accumulates status occurrences. Nil creates a private one.
	Counts *status.Counts

	// SleepFunc performs the tuned pauses. Nil uses sleep.Wait.
	SleepFunc SleepFunc

	// Verify reads a feature back after Set VCP and fails with
	// DDCRC_VERIFY if the display did not take the value.
	Verify bool

	// ZeroValueUnsupported treats a Get VCP reply whose value bytes are
	// all zero as DDCRC_DETERMINED_UNSUPPORTED. Some displays answer that
	// way instead of setting the unsupported result code.
	ZeroValueUnsupported bool

	// FrameLimit caps the bytes recorded per frame in protocol capture.
	FrameLimit int

	// Logger is used for debug logging. If nil, logging is disabled.
	Logger *slog.Logger

	// ProtocolLogger receives capture events. If nil, capture is disabled.
	ProtocolLogger log.Logger
}

// FromConfig maps loaded settings onto an exchanger Config for worker.
// The sleep registry is created from c and may be shared by passing the
// result to several exchangers.
func FromConfig(c *config.Config, worker sleep.WorkerID) Config {
	return Config{
		Worker:            worker,
		MaxWriteOnlyTries: c.Retries.WriteOnly,
		MaxWriteReadTries: c.Retries.WriteRead,
		MaxMultiPartTries: c.Retries.MultiPart,
		Sleep: sleep.NewRegistry(sleep.Config{
			Enabled:       c.Sleep.Dynamic,
			Multiplier:    c.Sleep.Multiplier,
			CheckInterval: c.Sleep.CheckInterval,
		}),
		FrameLimit: c.Capture.FrameLimit,
	}
}

// FromConfigWithCapture is FromConfig with the file named by
// capture.path opened as the protocol logger. closeCapture closes the
// file and is a no-op when no path is set.
func FromConfigWithCapture(c *config.Config, worker sleep.WorkerID) (cfg Config, closeCapture func() error, err error) {
	cfg = FromConfig(c, worker)
	if c.Capture.Path == "" {
		return cfg, func() error { return nil }, nil
	}
	fl, err := log.NewFileLogger(c.Capture.Path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("opening capture file: %w", err)
	}
	cfg.ProtocolLogger = fl
	return cfg, fl.Close, nil
}

func (c *Config) applyDefaults() {
	if c.MaxWriteOnlyTries == 0 {
		c.MaxWriteOnlyTries = DefaultMaxWriteOnlyTries
	}
	if c.MaxWriteReadTries == 0 {
		c.MaxWriteReadTries = DefaultMaxWriteReadTries
	}
	if c.MaxMultiPartTries == 0 {
		c.MaxMultiPartTries = DefaultMaxMultiPartTries
	}
}

// Validate checks the try limits. Zero limits are valid and select the
// defaults.
func (c Config) Validate() error {
	limits := []struct {
		name string
		v    int
	}{
		{"MaxWriteOnlyTries", c.MaxWriteOnlyTries},
		{"MaxWriteReadTries", c.MaxWriteReadTries},
		{"MaxMultiPartTries", c.MaxMultiPartTries},
	}
	for _, l := range limits {
		if l.v < 0 || l.v > errinfo.MaxMaxTries {
			return fmt.Errorf("%w: %s = %d, must be in [0, %d]", ErrInvalidConfig, l.name, l.v, errinfo.MaxMaxTries)
		}
	}
	if c.FrameLimit < 0 {
		return fmt.Errorf("%w: FrameLimit = %d", ErrInvalidConfig, c.FrameLimit)
	}
	return nil
}
