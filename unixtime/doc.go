// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package unixtime models "seconds since the Unix epoch" as four
// interchangeable fixed-width integer encodings: S32, U32, S64 and
// U64. Every value is an immutable seconds count; operations return
// new values and never mutate.
//
// The four variants share one arithmetic and ordering contract:
//
//   - Construction validates the range [0, variant max] and reports a
//     *RangeError on violation. Negative Unix time is not
//     constructible, even for the signed encodings.
//   - Arithmetic wraps at the variant width, like the native integer
//     it is stored in. Overflow is never an error.
//   - Comparison is a single total order over all variants and plain
//     Go numbers, by seconds magnitude alone, regardless of width or
//     signedness of either side.
//   - Narrowing conversions truncate bits; they do not saturate and do
//     not error. Checked construction is the place for validation.
//
// The canonical string form is the plain base-10 rendering of the
// count: no sign, no leading zeros, no separators. Parsing accepts
// exactly that form and nothing else.
//
// Calendar logic (month lengths, leap years, local zones) is delegated
// to the standard time package; this package only counts seconds.
package unixtime
