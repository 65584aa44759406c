package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Equal(t, 4, c.Retries.WriteOnly)
	assert.Equal(t, 10, c.Retries.WriteRead)
	assert.Equal(t, 8, c.Retries.MultiPart)
	assert.True(t, c.Sleep.Dynamic)
	assert.Equal(t, 1.0, c.Sleep.Multiplier)
	assert.Equal(t, 2, c.Sleep.CheckInterval)
	assert.Empty(t, c.Capture.Path)
	assert.Equal(t, 64, c.Capture.FrameLimit)
	assert.NoError(t, c.Validate())
}

func TestDefaultReturnsFreshCopy(t *testing.T) {
	a := Default()
	a.Retries.WriteRead = 1
	assert.Equal(t, 10, Default().Retries.WriteRead)
}

func TestParseOverlaysDefaults(t *testing.T) {
	c, err := Parse([]byte(`
retries:
  writeRead: 6
sleep:
  multiplier: 2.5
capture:
  path: /tmp/ddc.dlog
`))
	require.NoError(t, err)

	assert.Equal(t, 6, c.Retries.WriteRead)
	assert.Equal(t, 4, c.Retries.WriteOnly, "unset field keeps default")
	assert.Equal(t, 2.5, c.Sleep.Multiplier)
	assert.True(t, c.Sleep.Dynamic)
	assert.Equal(t, "/tmp/ddc.dlog", c.Capture.Path)
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero tries", "retries: {writeOnly: 0}"},
		{"too many tries", "retries: {multiPart: 16}"},
		{"negative multiplier", "sleep: {multiplier: -1}"},
		{"zero multiplier", "sleep: {multiplier: 0}"},
		{"zero check interval", "sleep: {checkInterval: 0}"},
		{"negative frame limit", "capture: {frameLimit: -5}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid), "got %v", err)
		})
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("retries: [unclosed"))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ddc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sleep:\n  dynamic: false\n"), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.False(t, c.Sleep.Dynamic)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadReportsPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("retries: {writeRead: 99}"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
	assert.ErrorIs(t, err, ErrInvalid)
}
