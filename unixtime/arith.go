// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"math"
	"time"
)

// Fixed second counts. Minutes, hours and days are exact multiples;
// there is no leap-second or DST adjustment on this path.
const (
	secsPerMinute = 60
	secsPerHour   = 3600
	secsPerDay    = 86400
)

// Add returns t advanced by n seconds. The operand may be any integer
// or float; floats are rounded half away from zero. The result wraps
// at the variant width, it never errors.
func Add[T Seconds, N Number](t T, n N) T {
	return ofBits[T](bitsOf(t) + toReal(n).bits())
}

// Sub returns t moved back by n seconds, wrapping at the variant
// width.
func Sub[T Seconds, N Number](t T, n N) T {
	return ofBits[T](bitsOf(t) - toReal(n).bits())
}

// addUnits advances t by n units of the given length in seconds. The
// intermediate product is taken modulo 2^64, then narrowed.
func addUnits[T Seconds](t T, n int64, unit uint64) T {
	return ofBits[T](bitsOf(t) + uint64(n)*unit)
}

// addCalendar applies calendar month/year arithmetic to the UTC image
// of t, honoring month length and leap years, then re-derives the
// seconds count at the variant width.
func addCalendar[T Seconds](t T, years, months int) T {
	tt := time.Unix(int64(bitsOf(t)), 0).UTC().AddDate(years, months, 0)
	return ofBits[T](uint64(tt.Unix()))
}

// Mul scales the seconds count by n. A fractional product is rounded
// half away from zero before narrowing; integer products wrap modulo
// the variant width.
func Mul[T Seconds, N Number](t T, n N) T {
	r := toReal(n)
	if r.float {
		return ofBits[T](floatBits(math.Round(floatOf(t) * r.f)))
	}
	return ofBits[T](bitsOf(t) * r.bits())
}

// Div divides the seconds count by n, rounding half away from zero:
// Div(S32(7), 2) is 4. Division by zero panics, like native integer
// division.
func Div[T Seconds, N Number](t T, n N) T {
	r := toReal(n)
	if r.float {
		if r.f == 0 {
			panic("unixtime: division by zero")
		}
		return ofBits[T](floatBits(math.Round(floatOf(t) / r.f)))
	}
	if r.abs == 0 {
		panic("unixtime: division by zero")
	}
	d := toReal(t)
	q := d.abs / r.abs
	if rem := d.abs % r.abs; rem >= r.abs-rem {
		q++ // round half away from zero, on magnitudes
	}
	if d.neg != r.neg {
		return ofBits[T](-q)
	}
	return ofBits[T](q)
}

// Mod returns the remainder of the seconds count by n, with the sign
// of the dividend. A float operand is rounded half away from zero
// first. Zero n panics.
func Mod[T Seconds, N Number](t T, n N) T {
	r := toReal(n).integral()
	if r.abs == 0 {
		panic("unixtime: division by zero")
	}
	d := toReal(t)
	rem := d.abs % r.abs
	if d.neg {
		return ofBits[T](-rem)
	}
	return ofBits[T](rem)
}

// Diff returns x minus y in seconds. The difference is exact whenever
// it fits a signed 64-bit count and wraps in two's complement
// otherwise; DiffFloat trades that exactness for range.
func Diff[X, Y Seconds](x X, y Y) int64 {
	return int64(bitsOf(x) - bitsOf(y))
}

// DiffFloat returns x minus y seconds as a float64, covering the full
// unsigned 64-bit range and fractional operands at float precision.
func DiffFloat[X Seconds](x X, y float64) float64 {
	return floatOf(x) - y
}
