// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"errors"
	"fmt"
)

// RangeError reports a seconds magnitude outside a variant's
// representable range [0, Max].
type RangeError struct {
	Value string // decimal rendering of the offending value
	Max   uint64 // the variant's largest representable count
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("unixtime: value %s out of range [0, %d]", e.Value, e.Max)
}

// FormatError reports a string that is not the canonical in-range
// decimal form of a timestamp.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("unixtime: cannot parse %q: %s", e.Input, e.Reason)
}

// ErrUnsupported reports a conversion target this package defines no
// mapping for. It is always returned wrapped with the target's type.
var ErrUnsupported = errors.New("unsupported conversion")

func rangeError[T Seconds](v any) error {
	return &RangeError{Value: fmt.Sprint(v), Max: maxOf[T]()}
}
