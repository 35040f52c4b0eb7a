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

// U32 is a Unix timestamp stored as an unsigned 32-bit seconds count,
// spanning the epoch through 2106-02-07T06:28:15Z.
type U32 uint32

// MaxU32 is the largest seconds count a U32 holds.
const MaxU32 = U32(math.MaxUint32)

var _ Value = U32(0)

// NewU32 validates n as an unsigned 32-bit seconds count.
func NewU32(n uint64) (U32, error) { return From[U32](n) }

// ParseU32 converts the canonical decimal form of an unsigned 32-bit
// seconds count; *FormatError on any deviation.
func ParseU32(s string) (U32, error) {
	u, err := parse(s, math.MaxUint32)
	if err != nil {
		return 0, err
	}
	return U32(u), nil
}

// TryParseU32 is the non-raising form of ParseU32.
func TryParseU32(s string) (U32, bool) {
	u, ok := tryParse(s, math.MaxUint32)
	return U32(u), ok
}

// String returns the canonical decimal form of the seconds count.
func (t U32) String() string { return strconv.FormatUint(uint64(t), 10) }

func (t U32) SignAbs() (uint64, bool) { return uint64(t), false }

// Unix returns the seconds count as a signed 64-bit integer.
func (t U32) Unix() int64 { return int64(t) }

func (t U32) Float() float64 { return float64(t) }

// Time returns the timestamp as a UTC calendar time.
func (t U32) Time() time.Time { return time.Unix(int64(t), 0).UTC() }

// Local returns the same instant in the process's local zone.
func (t U32) Local() time.Time { return time.Unix(int64(t), 0) }

func (t U32) IsZero() bool { return t == 0 }

// The conversion grid; To32 reinterprets the bit pattern at the same
// width, so counts past Max32 come out negative there.
func (t U32) To32() S32  { return S32(t) }
func (t U32) ToU32() U32 { return t }
func (t U32) To64() S64  { return S64(t) }
func (t U32) ToU64() U64 { return U64(t) }

func (t U32) AddSeconds(n int64) U32 { return addUnits(t, n, 1) }
func (t U32) AddMinutes(n int64) U32 { return addUnits(t, n, secsPerMinute) }
func (t U32) AddHours(n int64) U32   { return addUnits(t, n, secsPerHour) }
func (t U32) AddDays(n int64) U32    { return addUnits(t, n, secsPerDay) }

// AddMonths and AddYears are calendar-aware, unlike the fixed-length
// additions above.
func (t U32) AddMonths(n int) U32 { return addCalendar(t, 0, n) }
func (t U32) AddYears(n int) U32  { return addCalendar(t, n, 0) }

func (t U32) Hash() uint32 { return hashBits(uint64(t)) }

// Format implements fmt.Formatter; see S32.Format.
func (t U32) Format(st fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(st, t.String())
	case 'q':
		io.WriteString(st, strconv.Quote(t.String()))
	default:
		big.NewInt(int64(t)).Format(st, verb)
	}
}
