// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a tag to be suggested.
const suggestThreshold = 0.5

// suggest returns the tag most similar to the given unknown tag,
// or "" if none is similar enough.
func suggest(tag string, tags []string) string {
	if tag == "" {
		return ""
	}
	lev := metrics.NewLevenshtein()
	lower := strings.ToLower(tag)
	best, bestSim := "", suggestThreshold
	for _, t := range tags {
		sim := strutil.Similarity(lower, t, lev)
		if sim > bestSim || (sim == bestSim && best == "") {
			best, bestSim = t, sim
		}
	}
	return best
}
