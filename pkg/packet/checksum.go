package packet

// XOR folds b with exclusive or, starting from zero.
func XOR(b []byte) byte {
	var x byte
	for _, v := range b {
		x ^= v
	}
	return x
}

// Checksum returns the DDC/CI checksum of b. With alt set, the first byte
// is replaced by AltChecksumSeed, as for normalized replies.
func Checksum(b []byte, alt bool) byte {
	if len(b) == 0 {
		return 0
	}
	if !alt {
		return XOR(b)
	}
	return AltChecksumSeed ^ XOR(b[1:])
}

// ValidChecksum reports whether a request frame or normalized reply frame
// ends with the correct checksum. Replies are recognized by their
// ReplyDestAddr first byte.
func ValidChecksum(frame []byte) bool {
	if len(frame) < 4 {
		return false
	}
	n := int(frame[2] & lenMask)
	if len(frame) < n+4 {
		return false
	}
	alt := frame[0] == ReplyDestAddr
	return Checksum(frame[:3+n], alt) == frame[3+n]
}

// IsAllZero reports whether every byte of b is zero. An empty slice is
// not all zero.
func IsAllZero(b []byte) bool {
	if len(b) == 0 {
		return false
	}
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
