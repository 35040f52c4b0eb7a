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

// U64 is a Unix timestamp stored as an unsigned 64-bit seconds count,
// the widest of the four encodings.
type U64 uint64

// MaxU64 is the largest seconds count a U64 holds.
const MaxU64 = U64(math.MaxUint64)

var _ Value = U64(0)

// NewU64 validates n as an unsigned 64-bit seconds count. Every uint64
// is representable, so the error is always nil; the signature matches
// the other three factories.
func NewU64(n uint64) (U64, error) { return From[U64](n) }

// ParseU64 converts the canonical decimal form of an unsigned 64-bit
// seconds count; *FormatError on any deviation.
func ParseU64(s string) (U64, error) {
	u, err := parse(s, math.MaxUint64)
	if err != nil {
		return 0, err
	}
	return U64(u), nil
}

// TryParseU64 is the non-raising form of ParseU64.
func TryParseU64(s string) (U64, bool) {
	u, ok := tryParse(s, math.MaxUint64)
	return U64(u), ok
}

// String returns the canonical decimal form of the seconds count.
func (t U64) String() string { return strconv.FormatUint(uint64(t), 10) }

func (t U64) SignAbs() (uint64, bool) { return uint64(t), false }

// Unix returns the seconds count reinterpreted as a signed 64-bit
// integer; counts past Max64 come out negative.
func (t U64) Unix() int64 { return int64(t) }

func (t U64) Float() float64 { return float64(t) }

// Time returns the timestamp as a UTC calendar time, through the
// signed reinterpretation that Unix returns.
func (t U64) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

// Local returns the same instant in the process's local zone.
func (t U64) Local() time.Time { return time.Unix(int64(t), 0) }

func (t U64) IsZero() bool { return t == 0 }

// The conversion grid; narrowing to 32 bits truncates high-order bits,
// so To32 of 1<<32 is the epoch again.
func (t U64) To32() S32  { return S32(t) }
func (t U64) ToU32() U32 { return U32(t) }
func (t U64) To64() S64  { return S64(t) }
func (t U64) ToU64() U64 { return t }

func (t U64) AddSeconds(n int64) U64 { return addUnits(t, n, 1) }
func (t U64) AddMinutes(n int64) U64 { return addUnits(t, n, secsPerMinute) }
func (t U64) AddHours(n int64) U64   { return addUnits(t, n, secsPerHour) }
func (t U64) AddDays(n int64) U64    { return addUnits(t, n, secsPerDay) }

// AddMonths and AddYears are calendar-aware, unlike the fixed-length
// additions above.
func (t U64) AddMonths(n int) U64 { return addCalendar(t, 0, n) }
func (t U64) AddYears(n int) U64  { return addCalendar(t, n, 0) }

func (t U64) Hash() uint32 { return hashBits(uint64(t)) }

// Format implements fmt.Formatter; see S32.Format.
func (t U64) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(st, t.String())
	case 'q':
		io.WriteString(st, strconv.Quote(t.String()))
	default:
		new(big.Int).SetUint64(uint64(t)).Format(st, verb)
	}
}
