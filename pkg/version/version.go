// Package version parses and compares MCCS versions, the revision of the
// VESA command set a display implements.
package version

import (
	"fmt"
	"strconv"
	"strings"
)

// MCCS is a parsed "major.minor" MCCS version.
type MCCS struct {
	Major uint8
	Minor uint8
}

// Versions a display may report. V22 is the most common; V30 is rare and
// partly incompatible with 2.x.
var (
	V20 = MCCS{2, 0}
	V21 = MCCS{2, 1}
	V22 = MCCS{2, 2}
	V30 = MCCS{3, 0}
)

// Parse parses a "major.minor" version string.
func Parse(s string) (MCCS, error) {
	parts := strings.Split(s, ".")
	if len(parts) != 2 {
		return MCCS{}, fmt.Errorf("invalid MCCS version %q: expected major.minor", s)
	}

	major, err := strconv.ParseUint(parts[0], 10, 8)
	if err != nil || parts[0] == "" {
		return MCCS{}, fmt.Errorf("invalid MCCS version %q: bad major component", s)
	}

	minor, err := strconv.ParseUint(parts[1], 10, 8)
	if err != nil || parts[1] == "" {
		return MCCS{}, fmt.Errorf("invalid MCCS version %q: bad minor component", s)
	}

	return MCCS{Major: uint8(major), Minor: uint8(minor)}, nil
}

// FromFeature decodes the value of VCP feature 0xDF, whose SH and SL
// bytes hold the major and minor version.
func FromFeature(sh, sl byte) MCCS {
	return MCCS{Major: sh, Minor: sl}
}

// String returns the version as "major.minor".
func (v MCCS) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// IsZero reports whether v is unset. Some displays answer 0xDF with all
// zero bytes.
func (v MCCS) IsZero() bool {
	return v == MCCS{}
}

// Compare returns -1, 0 or 1 as v is older than, equal to or newer than
// other.
func (v MCCS) Compare(other MCCS) int {
	switch {
	case v.Major != other.Major:
		if v.Major < other.Major {
			return -1
		}
		return 1
	case v.Minor < other.Minor:
		return -1
	case v.Minor > other.Minor:
		return 1
	default:
		return 0
	}
}

// AtLeast reports whether v is other or newer.
func (v MCCS) AtLeast(other MCCS) bool {
	return v.Compare(other) >= 0
}

// Known reports whether v is one of the published MCCS versions.
func (v MCCS) Known() bool {
	switch v {
	case V20, V21, V22, V30:
		return true
	}
	return false
}
