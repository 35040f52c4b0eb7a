// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromRangeChecks(t *testing.T) {
	// Valid boundaries.
	if v, err := From[S32](int64(math.MaxInt32)); err != nil || v != Max32 {
		t.Errorf("From[S32](MaxInt32) = (%v, %v), want (%v, nil)", v, err, Max32)
	}
	if v, err := From[U32](uint64(math.MaxUint32)); err != nil || v != MaxU32 {
		t.Errorf("From[U32](MaxUint32) = (%v, %v), want (%v, nil)", v, err, MaxU32)
	}
	if v, err := From[U64](uint64(math.MaxUint64)); err != nil || v != MaxU64 {
		t.Errorf("From[U64](MaxUint64) = (%v, %v), want (%v, nil)", v, err, MaxU64)
	}

	// One past each boundary, and below zero.
	var rerr *RangeError
	_, err := From[S32](int64(math.MaxInt32) + 1)
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, uint64(math.MaxInt32), rerr.Max)

	_, err = From[S32](int64(-1))
	require.ErrorAs(t, err, &rerr)

	_, err = From[U32](uint64(1) << 32)
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, uint64(math.MaxUint32), rerr.Max)

	_, err = From[S64](int64(-1))
	require.ErrorAs(t, err, &rerr)
	require.Equal(t, uint64(math.MaxInt64), rerr.Max)

	_, err = New32(-5)
	require.ErrorAs(t, err, &rerr)

	_, err = NewU32(uint64(math.MaxUint32) + 1)
	require.ErrorAs(t, err, &rerr)

	if _, err := NewU64(math.MaxUint64); err != nil {
		t.Errorf("NewU64(MaxUint64) unexpectedly failed: %v", err)
	}
}

func TestFromFloat(t *testing.T) {
	// Floats truncate toward zero before the range check.
	if v, err := From[S32](12.9); err != nil || v != S32(12) {
		t.Errorf("From[S32](12.9) = (%v, %v), want (12, nil)", v, err)
	}
	if v, err := From[S64](-0.5); err != nil || v != S64(0) {
		t.Errorf("From[S64](-0.5) = (%v, %v), want (0, nil)", v, err)
	}
	if v, err := From[U64](1e19); err != nil || v != U64(10000000000000000000) {
		t.Errorf("From[U64](1e19) = (%v, %v), want (10000000000000000000, nil)", v, err)
	}

	var rerr *RangeError
	for _, f := range []float64{-1, two31, two32 + 0.5, math.Inf(1), math.Inf(-1), math.NaN()} {
		_, err := From[S32](f)
		require.ErrorAsf(t, err, &rerr, "From[S32](%v)", f)
	}
	// 2^31 is in range for the wider variants.
	if v, err := From[U32](two31); err != nil || v != U32(1)<<31 {
		t.Errorf("From[U32](2^31) = (%v, %v), want (%v, nil)", v, err, U32(1)<<31)
	}
}

func TestFromTime(t *testing.T) {
	for _, test := range []struct {
		in   time.Time
		want S64
	}{
		{time.Date(1970, time.January, 1, 0, 0, 0, 0, time.UTC), 0},
		{time.Date(2023, time.November, 14, 12, 30, 45, 0, time.UTC), 1699965045},
		// Sub-second components truncate toward zero...
		{time.Date(2023, time.November, 14, 12, 30, 45, 999e6, time.UTC), 1699965045},
		// ...including just before the epoch, where flooring would
		// instead produce -1 and fail the range check.
		{time.Date(1969, time.December, 31, 23, 59, 59, 500e6, time.UTC), 0},
		// A zoned input denotes the same instant; the count is UTC.
		{time.Date(2023, time.November, 14, 12, 30, 45, 0, time.FixedZone("E3", 3*3600)), 1699965045 - 3*3600},
	} {
		got, err := FromTime[S64](test.in)
		if err != nil || got != test.want {
			t.Errorf("FromTime[S64](%v) = (%v, %v), want (%v, nil)", test.in, got, err, test.want)
		}
	}

	var rerr *RangeError
	_, err := FromTime[S32](time.Date(1969, time.December, 31, 12, 0, 0, 0, time.UTC))
	require.ErrorAs(t, err, &rerr)
	_, err = FromTime[S32](time.Date(2038, time.January, 19, 3, 14, 8, 0, time.UTC))
	require.ErrorAs(t, err, &rerr)
}

func TestEpochRoundTrip(t *testing.T) {
	for _, s := range []S64{0, 1, 86399, 86400, 1699965045, 4294967296} {
		got, err := FromTime[S64](S64(s).Time())
		if err != nil || got != s {
			t.Errorf("FromTime(S64(%d).Time()) = (%v, %v), want (%d, nil)", s, got, err, s)
		}
	}
}

func TestTruncNarrowing(t *testing.T) {
	if got := Trunc[U32](U64(1) << 32); got != 0 {
		t.Errorf("Trunc[U32](2^32) = %v, want 0", got)
	}
	if got := Trunc[U32](U64(1)<<32 + 7); got != 7 {
		t.Errorf("Trunc[U32](2^32+7) = %v, want 7", got)
	}
	if got := Trunc[S32](uint64(math.MaxUint32)); got != S32(-1) {
		t.Errorf("Trunc[S32](MaxUint32) = %d, want -1", got)
	}
	if got := Trunc[S32](12.9); got != 12 {
		t.Errorf("Trunc[S32](12.9) = %v, want 12", got)
	}
	if got := Trunc[S64](-1.9); got != -1 {
		t.Errorf("Trunc[S64](-1.9) = %v, want -1", got)
	}
	if got := Trunc[U64](Max64); got != U64(math.MaxInt64) {
		t.Errorf("Trunc[U64](Max64) = %v, want MaxInt64", got)
	}
}

func TestConversionGrid(t *testing.T) {
	// Widening is exact; narrowing truncates bits, never saturates.
	u := U64(4294967296) // 2^32
	if got := u.ToU32(); got != 0 {
		t.Errorf("U64(2^32).ToU32() = %v, want 0", got)
	}
	if got := u.To32(); got != 0 {
		t.Errorf("U64(2^32).To32() = %v, want 0", got)
	}
	if got := MaxU32.To32(); got != S32(-1) {
		t.Errorf("U32(max).To32() = %d, want -1", got)
	}
	if got := MaxU32.To64(); got != S64(math.MaxUint32) {
		t.Errorf("U32(max).To64() = %v, want %v", got, S64(math.MaxUint32))
	}
	if got := S32(100).ToU64(); got != U64(100) {
		t.Errorf("S32(100).ToU64() = %v, want 100", got)
	}
	if got := Max64.ToU32(); got != MaxU32 {
		t.Errorf("Max64.ToU32() = %v, want %v", got, MaxU32)
	}
}

func TestStore(t *testing.T) {
	v := U64(4294967296) // 2^32

	var i32 int32
	require.NoError(t, Store(&i32, v))
	require.Equal(t, int32(0), i32) // narrowing truncates

	var u64 uint64
	require.NoError(t, Store(&u64, v))
	require.Equal(t, uint64(4294967296), u64)

	var s S32
	require.NoError(t, Store(&s, U64(100)))
	require.Equal(t, S32(100), s)

	var f float64
	require.NoError(t, Store(&f, v))
	require.Equal(t, float64(4294967296), f)

	var str string
	require.NoError(t, Store(&str, v))
	require.Equal(t, "4294967296", str)

	var tt time.Time
	require.NoError(t, Store(&tt, S64(86400)))
	require.Equal(t, time.Date(1970, time.January, 2, 0, 0, 0, 0, time.UTC), tt)

	var b bool
	err := Store(&b, v)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrUnsupported))

	err = Store(nil, v)
	require.True(t, errors.Is(err, ErrUnsupported))
}
