// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"fmt"
	"math"
	"time"
)

// From constructs a variant timestamp from any integer or float
// seconds count, validating the range. Floats are truncated toward
// zero before the check, the same rule calendar construction uses.
func From[T Seconds, N Number](n N) (T, error) {
	r := toReal(n)
	if r.float {
		f := math.Trunc(r.f) // toward zero, so (-1, 0) lands on the epoch
		if math.IsNaN(f) || f < 0 || f >= limitOf[T]() {
			return 0, rangeError[T](n)
		}
		return ofBits[T](floatBits(f)), nil
	}
	if r.neg || r.abs > maxOf[T]() {
		return 0, rangeError[T](n)
	}
	return ofBits[T](r.abs), nil
}

// FromTime converts a calendar time to whole seconds since the Unix
// epoch, truncating toward zero, then range-checks. The calendar
// time's zone is irrelevant: the count is taken from the UTC instant.
func FromTime[T Seconds](t time.Time) (T, error) {
	secs := t.Unix()
	if secs < 0 && t.Nanosecond() > 0 {
		secs++ // Unix floors; this contract truncates toward zero
	}
	return From[T](secs)
}

// Trunc reinterprets any integer or float seconds count at the
// variant's width, truncating bits rather than saturating or erroring.
// It is the unchecked counterpart of From.
func Trunc[T Seconds, N Number](n N) T {
	return ofBits[T](toReal(n).truncBits())
}

// Store assigns the seconds count of v to the variable pointed to by
// ptr, which must be a pointer to a supported numeric, timestamp,
// calendar, or string type. Narrowing stores truncate bits, matching
// the conversion contract. An unsupported pointer type reports an
// error wrapping ErrUnsupported.
func Store(ptr any, v Value) error {
	abs, neg := v.SignAbs()
	bits := abs
	if neg {
		bits = -abs
	}
	switch p := ptr.(type) {
	case *S32:
		*p = S32(bits)
	case *U32:
		*p = U32(bits)
	case *S64:
		*p = S64(bits)
	case *U64:
		*p = U64(bits)
	case *int:
		*p = int(bits)
	case *int32:
		*p = int32(bits)
	case *int64:
		*p = int64(bits)
	case *uint:
		*p = uint(bits)
	case *uint32:
		*p = uint32(bits)
	case *uint64:
		*p = bits
	case *float64:
		*p = real{abs: abs, neg: neg}.float64()
	case *float32:
		*p = float32(real{abs: abs, neg: neg}.float64())
	case *time.Time:
		*p = time.Unix(int64(bits), 0).UTC()
	case *string:
		*p = v.String()
	default:
		return fmt.Errorf("unixtime: cannot store timestamp into %T: %w", ptr, ErrUnsupported)
	}
	return nil
}
