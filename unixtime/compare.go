// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"math"
	"reflect"
)

// Compare orders any two seconds counts, timestamp or plain number, in
// a single total order by magnitude: -1 if x sorts before y, 0 if they
// denote the same instant, +1 if x sorts after y. Width and signedness
// of the operands play no part; a raw negative signed count orders
// before every unsigned value and equals none. Non-finite floats order
// as -Inf first, +Inf after all finite values, NaN after everything.
func Compare[X, Y Number](x X, y Y) int {
	return compareReal(toReal(x), toReal(y))
}

// Equal reports whether x and y denote the same instant.
func Equal[X, Y Number](x X, y Y) bool { return Compare(x, y) == 0 }

// Less reports whether x denotes an earlier instant than y.
func Less[X, Y Number](x X, y Y) bool { return Compare(x, y) < 0 }

func compareReal(a, b real) int {
	if !a.float && !b.float {
		switch {
		case a.neg != b.neg:
			if a.neg {
				return -1
			}
			return +1
		case a.abs == b.abs:
			return 0
		case (a.abs < b.abs) != a.neg:
			return -1
		}
		return +1
	}

	// NaN sorts after every other value.
	anan := a.float && math.IsNaN(a.f)
	bnan := b.float && math.IsNaN(b.f)
	switch {
	case anan && bnan:
		return 0
	case anan:
		return +1
	case bnan:
		return -1
	}

	ka, kb := infKey(a), infKey(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return +1
	}
	if ka != 0 { // same infinity
		return 0
	}
	return a.rat().Cmp(b.rat())
}

func infKey(r real) int {
	switch {
	case r.float && math.IsInf(r.f, -1):
		return -1
	case r.float && math.IsInf(r.f, +1):
		return +1
	}
	return 0
}

// CompareAny orders v against an operand of unknown dynamic type:
// -1, 0 or +1 as with Compare when the operand is a recognized numeric
// or timestamp type. An operand of any other type makes v sort after
// it, reported as +1 rather than an error; a nil operand sorts v
// first, reported as -1.
func CompareAny(v Value, y any) int {
	if y == nil {
		return -1
	}
	switch y.(type) {
	case S32, U32, S64, U64,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return compareReal(realOf(v), reflectReal(reflect.ValueOf(y)))
	}
	if w, ok := y.(Value); ok {
		return compareReal(realOf(v), realOf(w))
	}
	return +1
}

func realOf(v Value) real {
	abs, neg := v.SignAbs()
	return real{abs: abs, neg: neg}
}
