// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sdf

import (
	"math"
	"strconv"
	"strings"
)

// Float formats a number with the shortest representation that
// parses back to the same float64. Magnitudes in [1e-4, 1e21) use
// plain decimal notation (1, 0.5, 1234567); smaller and larger ones use
// exponent notation (1e-05, 1e+21).
func Float(v float64) string {
	a := math.Abs(v)
	if a == 0 || (a >= 1e-4 && a < 1e21) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Floats formats the given numbers separated by single spaces.
func Floats(vs ...float64) string {
	ss := make([]string, len(vs))
	for i, v := range vs {
		ss[i] = Float(v)
	}
	return strings.Join(ss, " ")
}
