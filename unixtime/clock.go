// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import "time"

// NowFunc is the function that generates the current time.
// Intentionally exported so that it can be overridden, for example by
// applications that require deterministic behavior under test.
var NowFunc = time.Now

// Now returns the current wall-clock time as whole seconds since the
// epoch, truncated. It fails with a *RangeError only when the clock
// falls outside the variant's range, e.g. Now[S32] past 2038.
func Now[T Seconds]() (T, error) {
	return FromTime[T](NowFunc())
}

// Today returns the current local midnight as a timestamp: the zone
// comes from NowFunc's result, and the midnight instant is normalized
// to UTC seconds since the epoch.
func Today[T Seconds]() (T, error) {
	now := NowFunc()
	y, m, d := now.Date()
	return FromTime[T](time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
}
