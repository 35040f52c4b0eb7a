// Copyright 2023 The Unixtime Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unixtime

import (
	"fmt"
	"strconv"
	"strings"

	"go.unixtime.net/numstr"
)

// parse validates s against the canonical decimal form bounded by max
// and returns the numeric value. Any deviation from the canonical
// form, including a value beyond max, is a *FormatError.
func parse(s string, max uint64) (uint64, error) {
	switch {
	case len(s) == 0:
		return 0, &FormatError{Input: s, Reason: "empty string"}
	case !numstr.Canonical(s):
		reason := "not a canonical decimal"
		if len(s) > 1 && s[0] == '0' {
			reason = "leading zero"
		}
		return 0, &FormatError{Input: s, Reason: reason}
	case !numstr.InRange(s, max):
		return 0, &FormatError{Input: s, Reason: fmt.Sprintf("value exceeds %d", max)}
	}
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, &FormatError{Input: s, Reason: err.Error()}
	}
	return u, nil
}

// tryParse is the non-raising entry point: blank or absent input is
// reported as failure, never as an error.
func tryParse(s string, max uint64) (uint64, bool) {
	if strings.TrimSpace(s) == "" {
		return 0, false
	}
	u, err := parse(s, max)
	if err != nil {
		return 0, false
	}
	return u, true
}
