// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"math"
	"math/big"
	"reflect"
)

// Value is the capability shared by the four timestamp widths: the
// canonical decimal rendering plus a sign-and-magnitude view of the
// seconds count. It is deliberately small; arithmetic and ordering are
// generic functions, not interface methods.
type Value interface {
	// String returns the canonical decimal form of the seconds count.
	String() string

	// SignAbs returns the seconds count as magnitude and sign. The
	// sign is set only when a signed variant holds a raw negative
	// count, which this package never constructs but which is
	// reachable through unchecked Go conversions.
	SignAbs() (abs uint64, neg bool)
}

// Seconds constrains a type parameter to the four timestamp variants.
type Seconds interface {
	S32 | U32 | S64 | U64
}

// Signed is any signed integer type.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Unsigned is any unsigned integer type.
type Unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integer is any fixed-width integer type, the four variants included.
type Integer interface {
	Signed | Unsigned
}

// Float is either floating-point type.
type Float interface {
	~float32 | ~float64
}

// Number is anything convertible to a 64-bit magnitude with a sign:
// the operand set every arithmetic and comparison function accepts.
type Number interface {
	Integer | Float
}

// Exact powers of two bracketing each variant's range. All four are
// exactly representable as float64, so they are safe comparison bounds
// where the variant maxima themselves are not.
const (
	two31 = float64(1 << 31)
	two32 = float64(1 << 32)
	two63 = float64(1 << 63)
	two64 = two63 * 2
)

var mask64 = new(big.Int).SetUint64(math.MaxUint64)

// real is the common operand form: either a sign-and-magnitude integer
// or a float64. Every mixed-type operation reduces both sides to it.
type real struct {
	abs   uint64
	neg   bool
	f     float64
	float bool
}

func intReal(i int64) real {
	if i < 0 {
		return real{abs: uint64(-(i + 1)) + 1, neg: true}
	}
	return real{abs: uint64(i)}
}

// toReal reduces any Number operand. The switch covers the primitive
// types and the four variants; other defined numeric types go through
// reflection.
func toReal[N Number](n N) real {
	switch v := any(n).(type) {
	case S32:
		return intReal(int64(v))
	case U32:
		return real{abs: uint64(v)}
	case S64:
		return intReal(int64(v))
	case U64:
		return real{abs: uint64(v)}
	case int:
		return intReal(int64(v))
	case int8:
		return intReal(int64(v))
	case int16:
		return intReal(int64(v))
	case int32:
		return intReal(int64(v))
	case int64:
		return intReal(v)
	case uint:
		return real{abs: uint64(v)}
	case uint8:
		return real{abs: uint64(v)}
	case uint16:
		return real{abs: uint64(v)}
	case uint32:
		return real{abs: uint64(v)}
	case uint64:
		return real{abs: v}
	case float32:
		return real{f: float64(v), float: true}
	case float64:
		return real{f: v, float: true}
	}
	return reflectReal(reflect.ValueOf(n))
}

func reflectReal(rv reflect.Value) real {
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return real{f: rv.Float(), float: true}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return intReal(rv.Int())
	default:
		return real{abs: rv.Uint()}
	}
}

// float64 returns the operand as a float, signed.
func (r real) float64() float64 {
	if r.float {
		return r.f
	}
	f := float64(r.abs)
	if r.neg {
		f = -f
	}
	return f
}

// rat returns the operand as an exact rational, or nil for a
// non-finite float.
func (r real) rat() *big.Rat {
	if r.float {
		return new(big.Rat).SetFloat64(r.f)
	}
	x := new(big.Rat).SetUint64(r.abs)
	if r.neg {
		x.Neg(x)
	}
	return x
}

// bits returns the operand's two's-complement image modulo 2^64.
// Floats are rounded half away from zero first.
func (r real) bits() uint64 {
	if r.float {
		return floatBits(math.Round(r.f))
	}
	if r.neg {
		return -r.abs
	}
	return r.abs
}

// truncBits is bits with float truncation toward zero instead of
// rounding: the narrowing-cast contract.
func (r real) truncBits() uint64 {
	if r.float {
		return floatBits(math.Trunc(r.f))
	}
	if r.neg {
		return -r.abs
	}
	return r.abs
}

// integral reduces a float operand to integer form, rounding half away
// from zero. Integer operands pass through unchanged. Magnitudes
// beyond 64 bits keep only their low 64 bits, the modular rule every
// operand follows.
func (r real) integral() real {
	if !r.float {
		return r
	}
	f := math.Round(r.f)
	if math.IsNaN(f) {
		return real{}
	}
	return real{abs: floatBits(math.Abs(f)), neg: math.Signbit(f) && f != 0}
}

// floatBits returns the two's-complement image modulo 2^64 of an
// integral float. NaN maps to zero.
func floatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return 0
	case -two63 <= f && f < two63:
		return uint64(int64(f))
	case 0 <= f && f < two64:
		return uint64(f)
	case math.IsInf(f, 0):
		return 0
	}
	bi, _ := big.NewFloat(f).Int(nil)
	lo := new(big.Int).And(new(big.Int).Abs(bi), mask64).Uint64()
	if bi.Sign() < 0 {
		lo = -lo
	}
	return lo
}

// bitsOf returns a variant's seconds count sign-extended to a
// two's-complement uint64.
func bitsOf[T Seconds](t T) uint64 {
	switch v := any(t).(type) {
	case S32:
		return uint64(int64(v))
	case U32:
		return uint64(v)
	case S64:
		return uint64(v)
	case U64:
		return uint64(v)
	}
	panic("unreachable")
}

// ofBits narrows a two's-complement seconds image to the variant
// width, truncating high bits.
func ofBits[T Seconds](bits uint64) T { return T(bits) }

// maxOf returns the variant's largest representable seconds count.
func maxOf[T Seconds]() uint64 {
	var t T
	switch any(t).(type) {
	case S32:
		return math.MaxInt32
	case U32:
		return math.MaxUint32
	case S64:
		return math.MaxInt64
	}
	return math.MaxUint64
}

// limitOf returns the smallest power of two exceeding the variant's
// maximum, exact as a float64.
func limitOf[T Seconds]() float64 {
	var t T
	switch any(t).(type) {
	case S32:
		return two31
	case U32:
		return two32
	case S64:
		return two63
	}
	return two64
}

// floatOf returns the variant's signed seconds count as a float64.
func floatOf[T Seconds](t T) float64 { return toReal(t).float64() }

func hashBits(u uint64) uint32 { return uint32(u) ^ uint32(u>>32) }
