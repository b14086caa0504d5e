// Copyright (c) 2026 Tally Authors.
// MIT licensed; see LICENSE.

package game

// Resize returns vals truncated or padded with fill to length n, preserving
// existing entries. The input layer uses it when the round count changes
// under an already-entered multiplier list.
func Resize(vals []int, n int, fill int) []int {
	if n < 0 {
		n = 0
	}
	out := make([]int, n)
	copied := copy(out, vals)
	for i := copied; i < n; i++ {
		out[i] = fill
	}
	return out
}
