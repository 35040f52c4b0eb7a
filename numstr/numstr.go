// Package numstr recognizes canonical decimal renderings of Unix
// timestamp counts. A canonical string is the unique base-10 form of a
// non-negative integer: ASCII digits only, no sign, no whitespace, no
// separators, and no leading zeros except for the literal "0".
//
// The matchers answer only yes or no; converting a recognized string
// to its numeric value is the caller's business.
package numstr

import "math"

// Decimal renderings of the four variant maxima. Comparing a candidate
// against these lexicographically avoids any overflow-prone parsing.
const (
	maxInt32Str  = "2147483647"
	maxUint32Str = "4294967295"
	maxInt64Str  = "9223372036854775807"
	maxUint64Str = "18446744073709551615"
)

// Canonical reports whether s is the canonical decimal form of some
// non-negative integer, of any magnitude.
func Canonical(s string) bool {
	if len(s) == 0 {
		return false
	}
	if s[0] == '0' && len(s) > 1 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// leCanonical compares two canonical decimal strings numerically.
// Precondition: both are canonical, so length ordering is magnitude
// ordering and equal lengths compare lexicographically.
func leCanonical(s, max string) bool {
	if len(s) != len(max) {
		return len(s) < len(max)
	}
	return s <= max
}

// InRange reports whether s is canonical and its numeric value does
// not exceed max.
func InRange(s string, max uint64) bool {
	if !Canonical(s) {
		return false
	}
	switch max {
	case math.MaxInt32:
		return leCanonical(s, maxInt32Str)
	case math.MaxUint32:
		return leCanonical(s, maxUint32Str)
	case math.MaxInt64:
		return leCanonical(s, maxInt64Str)
	case math.MaxUint64:
		return leCanonical(s, maxUint64Str)
	}
	// Arbitrary bound: accumulate with explicit overflow checks.
	var v uint64
	for i := 0; i < len(s); i++ {
		d := uint64(s[i] - '0')
		if v > (math.MaxUint64-d)/10 {
			return false
		}
		v = v*10 + d
	}
	return v <= max
}

// Int32String reports whether s decimal-encodes a value representable
// by a signed 32-bit timestamp.
func Int32String(s string) bool { return InRange(s, math.MaxInt32) }

// Uint32String reports whether s decimal-encodes a value representable
// by an unsigned 32-bit timestamp.
func Uint32String(s string) bool { return InRange(s, math.MaxUint32) }

// Int64String reports whether s decimal-encodes a value representable
// by a signed 64-bit timestamp.
func Int64String(s string) bool { return InRange(s, math.MaxInt64) }

// Uint64String reports whether s decimal-encodes a value representable
// by an unsigned 64-bit timestamp.
func Uint64String(s string) bool { return InRange(s, math.MaxUint64) }
