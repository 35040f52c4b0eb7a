// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strconv"
	"time"
)

// S32 is a Unix timestamp stored as a signed 32-bit seconds count.
// Valid values span 1970-01-01T00:00:00Z through 2038-01-19T03:14:07Z.
// The zero value is the epoch itself.
type S32 int32

// Max32 is the largest seconds count an S32 holds.
const Max32 = S32(math.MaxInt32)

var _ Value = S32(0)

// New32 validates n as a signed 32-bit seconds count. Negative n or n
// beyond Max32 fails with a *RangeError.
func New32(n int64) (S32, error) { return From[S32](n) }

// Parse32 converts the canonical decimal form of a signed 32-bit
// seconds count. Anything else, a leading zero or sign or whitespace
// or an out-of-range magnitude included, fails with a *FormatError.
func Parse32(s string) (S32, error) {
	u, err := parse(s, math.MaxInt32)
	if err != nil {
		return 0, err
	}
	return S32(u), nil
}

// TryParse32 is the non-raising form of Parse32: blank input and
// malformed input report failure rather than an error.
func TryParse32(s string) (S32, bool) {
	u, ok := tryParse(s, math.MaxInt32)
	return S32(u), ok
}

// String returns the canonical decimal form: the 32-bit pattern read
// as an unsigned count, no sign, no leading zeros.
func (t S32) String() string { return strconv.FormatUint(uint64(uint32(t)), 10) }

// SignAbs returns the seconds count as magnitude and sign.
func (t S32) SignAbs() (uint64, bool) {
	r := intReal(int64(t))
	return r.abs, r.neg
}

// Unix returns the raw signed seconds count.
func (t S32) Unix() int64 { return int64(t) }

// Float returns the seconds count as a float64.
func (t S32) Float() float64 { return float64(t) }

// Time returns the timestamp as a UTC calendar time.
func (t S32) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

// Local returns the timestamp as a calendar time in the process's
// local zone. The instant is the same as Time's.
func (t S32) Local() time.Time { return time.Unix(int64(t), 0) }

// IsZero reports whether t is the epoch.
func (t S32) IsZero() bool { return t == 0 }

// The conversion grid. Widening conversions are exact for valid
// values; same-width conversions reinterpret the bit pattern.
func (t S32) To32() S32  { return t }
func (t S32) ToU32() U32 { return U32(t) }
func (t S32) To64() S64  { return S64(t) }
func (t S32) ToU64() U64 { return U64(t) }

// AddSeconds returns the timestamp n seconds later, wrapping at 32
// bits. Negative n moves earlier.
func (t S32) AddSeconds(n int64) S32 { return addUnits(t, n, 1) }

// AddMinutes returns the timestamp n minutes (exactly 60n seconds)
// later, wrapping at 32 bits.
func (t S32) AddMinutes(n int64) S32 { return addUnits(t, n, secsPerMinute) }

// AddHours returns the timestamp n hours (exactly 3600n seconds)
// later, wrapping at 32 bits.
func (t S32) AddHours(n int64) S32 { return addUnits(t, n, secsPerHour) }

// AddDays returns the timestamp n days (exactly 86400n seconds) later,
// wrapping at 32 bits.
func (t S32) AddDays(n int64) S32 { return addUnits(t, n, secsPerDay) }

// AddMonths applies calendar month arithmetic to the UTC image of t,
// honoring month length and leap years, unlike the fixed-length
// operations above.
func (t S32) AddMonths(n int) S32 { return addCalendar(t, 0, n) }

// AddYears applies calendar year arithmetic to the UTC image of t.
func (t S32) AddYears(n int) S32 { return addCalendar(t, n, 0) }

// Hash returns a 32-bit mix of the seconds count; equal instants hash
// equal across variants.
func (t S32) Hash() uint32 { return hashBits(bitsOf(t)) }

// Format implements fmt.Formatter: %v, %s and %q use the canonical
// form, numeric verbs format the raw signed count.
func (t S32) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(st, t.String())
	case 'q':
		io.WriteString(st, strconv.Quote(t.String()))
	default:
		big.NewInt(int64(t)).Format(st, verb)
	}
}
