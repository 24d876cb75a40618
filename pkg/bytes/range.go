// Copyright 2019-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bytes contains helpers to describe and inspect regions of packed
// binary records.
package bytes

import (
	"fmt"
	"sort"
	"strings"
)

// Range is a region of a byte sequence.
type Range struct {
	Offset uint64
	Length uint64
}

func (r Range) String() string {
	return fmt.Sprintf(`{"Offset":"0x%x", "Length":"0x%x"}`, r.Offset, r.Length)
}

// End returns the offset of the first byte after the range.
func (r Range) End() uint64 {
	return r.Offset + r.Length
}

// Intersect returns True if ranges "r" and "cmp" has at least
// one byte with the same offset.
func (r Range) Intersect(cmp Range) bool {
	if r.Length == 0 || cmp.Length == 0 {
		return false
	}
	if r.End() <= cmp.Offset {
		return false
	}
	if r.Offset >= cmp.End() {
		return false
	}
	return true
}

// Slice returns the bytes of b covered by the range. It returns nil if the
// range is outside of b.
func (r Range) Slice(b []byte) []byte {
	if r.End() > uint64(len(b)) {
		return nil
	}
	return b[r.Offset:r.End()]
}

// Ranges is a helper to manipulate multiple `Range`-s at once
type Ranges []Range

func (s Ranges) String() string {
	r := make([]string, 0, len(s))
	for _, oneRange := range s {
		r = append(r, oneRange.String())
	}
	return `[` + strings.Join(r, `, `) + `]`
}

// Sort sorts the slice by field Offset
func (s Ranges) Sort() {
	sort.Slice(s, func(i, j int) bool {
		return s[i].Offset < s[j].Offset
	})
}

// TotalLength returns the sum of lengths of all the ranges.
func (s Ranges) TotalLength() uint64 {
	var total uint64
	for _, r := range s {
		total += r.Length
	}
	return total
}

// IsPacked returns true if the ranges (in the given order) follow each other
// without gaps and overlaps, starting at offset "start".
func (s Ranges) IsPacked(start uint64) bool {
	next := start
	for _, r := range s {
		if r.Offset != next {
			return false
		}
		next = r.End()
	}
	return true
}

// Overlapping returns the first pair of indexes of ranges which intersect.
// ok is false if no ranges intersect.
func (s Ranges) Overlapping() (i, j int, ok bool) {
	for i = range s {
		for j = i + 1; j < len(s); j++ {
			if s[i].Intersect(s[j]) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Compile returns the bytes from `b` which are referenced by `Range`-s `s`.
func (s Ranges) Compile(b []byte) []byte {
	var result []byte
	for _, r := range s {
		result = append(result, b[r.Offset:r.End()]...)
	}
	return result
}

// IsIn returns if the index is covered by this ranges
func (s Ranges) IsIn(index uint64) bool {
	for _, r := range s {
		// Offset is inclusive, End is exclusive, the same way as slice
		// indices work.
		if r.Offset <= index && index < r.End() {
			return true
		}
	}
	return false
}
