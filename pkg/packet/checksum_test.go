package packet

import (
	"math/rand"
	"testing"
)

func TestChecksumVectors(t *testing.T) {
	tests := []struct {
		bytes []byte
		alt   bool
		want  byte
	}{
		{[]byte{0x6e, 0x51, 0x82, 0xf5, 0x01}, false, 0x49},
		{[]byte{0x6e, 0x51, 0x81, 0xb1}, false, 0x0f},
		{[]byte{0x6f, 0x6e, 0x82, 0xa1, 0x00}, true, 0x1d},
		{[]byte{0x6f, 0x6e, 0x80}, true, 0xbe},
		{[]byte{0xf0, 0xf1, 0x81, 0xb1}, false, 0x31},
		{[]byte{0x6e, 0xf1, 0x81, 0xb1}, false, 0xaf},
		{[]byte{0xf1, 0xf0, 0x82, 0xa1, 0x00}, true, 0x83},
		{[]byte{0x6f, 0xf0, 0x82, 0xa1, 0x00}, true, 0x83},
	}
	for _, tt := range tests {
		if got := Checksum(tt.bytes, tt.alt); got != tt.want {
			t.Errorf("Checksum(% x, %v) = 0x%02x, want 0x%02x", tt.bytes, tt.alt, got, tt.want)
		}
	}
}

func TestRequestChecksumRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= MaxRequestData; n++ {
		for i := 0; i < 20; i++ {
			data := make([]byte, n)
			rng.Read(data)

			p, err := NewRequest(data, "rt")
			if err != nil {
				t.Fatalf("NewRequest(%d bytes) error = %v", n, err)
			}
			raw := p.Bytes()
			want := XOR(raw[:len(raw)-1])
			if raw[len(raw)-1] != want {
				t.Fatalf("embedded checksum 0x%02x, recomputed 0x%02x for % x", raw[len(raw)-1], want, raw)
			}
			if !ValidChecksum(raw) {
				t.Fatalf("ValidChecksum(% x) = false", raw)
			}
		}
	}
}

func TestValidChecksumRejectsCorruption(t *testing.T) {
	p := NewGetVCPRequest(0x10, "x")
	raw := p.Bytes()
	raw[4] ^= 0x01
	if ValidChecksum(raw) {
		t.Error("ValidChecksum accepted a corrupted frame")
	}
	if ValidChecksum(raw[:3]) {
		t.Error("ValidChecksum accepted a short frame")
	}
}

func TestIsAllZero(t *testing.T) {
	if IsAllZero(nil) {
		t.Error("IsAllZero(nil) = true")
	}
	if !IsAllZero(make([]byte, 11)) {
		t.Error("IsAllZero(zeros) = false")
	}
	if IsAllZero([]byte{0, 0, 1}) {
		t.Error("IsAllZero(0 0 1) = true")
	}
}
