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

// S64 is a Unix timestamp stored as a signed 64-bit seconds count.
type S64 int64

// Max64 is the largest seconds count an S64 holds.
const Max64 = S64(math.MaxInt64)

var _ Value = S64(0)

// New64 validates n as a signed 64-bit seconds count; negative n fails
// with a *RangeError.
func New64(n int64) (S64, error) { return From[S64](n) }

// Parse64 converts the canonical decimal form of a signed 64-bit
// seconds count; *FormatError on any deviation.
func Parse64(s string) (S64, error) {
	u, err := parse(s, math.MaxInt64)
	if err != nil {
		return 0, err
	}
	return S64(u), nil
}

// TryParse64 is the non-raising form of Parse64.
func TryParse64(s string) (S64, bool) {
	u, ok := tryParse(s, math.MaxInt64)
	return S64(u), ok
}

// String returns the canonical decimal form: the 64-bit pattern read
// as an unsigned count.
func (t S64) String() string { return strconv.FormatUint(uint64(t), 10) }

func (t S64) SignAbs() (uint64, bool) {
	r := intReal(int64(t))
	return r.abs, r.neg
}

// Unix returns the raw signed seconds count.
func (t S64) Unix() int64 { return int64(t) }

func (t S64) Float() float64 { return float64(t) }

// Time returns the timestamp as a UTC calendar time.
func (t S64) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

// Local returns the same instant in the process's local zone.
func (t S64) Local() time.Time { return time.Unix(int64(t), 0) }

func (t S64) IsZero() bool { return t == 0 }

// The conversion grid; narrowing to 32 bits truncates high-order bits,
// it does not saturate.
func (t S64) To32() S32  { return S32(t) }
func (t S64) ToU32() U32 { return U32(t) }
func (t S64) To64() S64  { return t }
func (t S64) ToU64() U64 { return U64(t) }

func (t S64) AddSeconds(n int64) S64 { return addUnits(t, n, 1) }
func (t S64) AddMinutes(n int64) S64 { return addUnits(t, n, secsPerMinute) }
func (t S64) AddHours(n int64) S64   { return addUnits(t, n, secsPerHour) }
func (t S64) AddDays(n int64) S64    { return addUnits(t, n, secsPerDay) }

// AddMonths and AddYears are calendar-aware, unlike the fixed-length
// additions above.
func (t S64) AddMonths(n int) S64 { return addCalendar(t, 0, n) }
func (t S64) AddYears(n int) S64  { return addCalendar(t, n, 0) }

func (t S64) Hash() uint32 { return hashBits(uint64(t)) }

// Format implements fmt.Formatter; see S32.Format.
func (t S64) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(st, t.String())
	case 'q':
		io.WriteString(st, strconv.Quote(t.String()))
	default:
		big.NewInt(int64(t)).Format(st, verb)
	}
}
