package ddc_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ddcci-protocol/ddcci-go/pkg/ddc"
	"github.com/ddcci-protocol/ddcci-go/pkg/ddc/mocks"
	"github.com/ddcci-protocol/ddcci-go/pkg/log"
	"github.com/ddcci-protocol/ddcci-go/pkg/packet"
)

// reply builds a frame as read from the bus: source address, length,
// data and the reply checksum.
func reply(data ...byte) []byte {
	b := []byte{packet.DestAddr, byte(len(data)) | 0x80}
	b = append(b, data...)
	chk := packet.AltChecksumSeed
	for _, v := range b {
		chk ^= v
	}
	return append(b, chk)
}

func featureReply(feature, mh, ml, sh, sl byte) []byte {
	return reply(byte(packet.TypeQueryVCPResponse), 0x00, feature, 0x00, mh, ml, sh, sl)
}

func unsupportedReply(feature byte) []byte {
	return reply(byte(packet.TypeQueryVCPResponse), 0x01, feature, 0x00, 0, 0, 0, 0)
}

func fragment(t packet.Type, offset int, data string) []byte {
	return reply(append([]byte{byte(t), byte(offset >> 8), byte(offset)}, data...)...)
}

func corrupt(b []byte) []byte {
	c := append([]byte(nil), b...)
	c[len(c)-1] ^= 0xFF
	return c
}

func nullReply() []byte {
	return reply()
}

// sleeper records the pauses an exchanger asks for without sleeping.
type sleeper struct {
	mu     sync.Mutex
	sleeps []time.Duration
}

func (s *sleeper) sleep(ctx context.Context, d time.Duration) error {
	s.mu.Lock()
	s.sleeps = append(s.sleeps, d)
	s.mu.Unlock()
	return ctx.Err()
}

func (s *sleeper) durations() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.sleeps...)
}

// recorder is a protocol logger that keeps every event.
type recorder struct {
	mu     sync.Mutex
	events []log.Event
}

func (r *recorder) Log(e log.Event) {
	r.mu.Lock()
	r.events = append(r.events, e)
	r.mu.Unlock()
}

func (r *recorder) byCategory(c log.Category) []log.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []log.Event
	for _, e := range r.events {
		if e.Category == c {
			out = append(out, e)
		}
	}
	return out
}

type fixture struct {
	tr  *mocks.MockTransport
	x   *ddc.Exchanger
	sl  *sleeper
	rec *recorder
}

func newFixture(t *testing.T, cfg ddc.Config) *fixture {
	t.Helper()
	f := &fixture{
		tr:  mocks.NewMockTransport(t),
		sl:  &sleeper{},
		rec: &recorder{},
	}
	cfg.SleepFunc = f.sl.sleep
	cfg.ProtocolLogger = f.rec
	if cfg.Worker == "" {
		cfg.Worker = "i2c-test"
	}
	x, err := ddc.New(f.tr, cfg)
	require.NoError(t, err)
	f.x = x
	return f
}
