// Copyright 2019-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bytes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRangeIntersect(t *testing.T) {
	for _, tc := range []struct {
		name      string
		a, b      Range
		intersect bool
	}{
		{"adjacent", Range{Offset: 0, Length: 4}, Range{Offset: 4, Length: 1}, false},
		{"overlap", Range{Offset: 0, Length: 5}, Range{Offset: 4, Length: 1}, true},
		{"contained", Range{Offset: 2, Length: 8}, Range{Offset: 4, Length: 1}, true},
		{"empty", Range{Offset: 4, Length: 0}, Range{Offset: 0, Length: 8}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.intersect, tc.a.Intersect(tc.b))
			require.Equal(t, tc.intersect, tc.b.Intersect(tc.a))
		})
	}
}

func TestRangesIsPacked(t *testing.T) {
	packed := Ranges{{Offset: 4, Length: 1}, {Offset: 5, Length: 2}, {Offset: 7, Length: 8}}
	require.True(t, packed.IsPacked(4))
	require.False(t, packed.IsPacked(0))
	require.Equal(t, uint64(11), packed.TotalLength())

	withGap := Ranges{{Offset: 0, Length: 1}, {Offset: 2, Length: 2}}
	require.False(t, withGap.IsPacked(0))

	_, _, ok := packed.Overlapping()
	require.False(t, ok)

	i, j, ok := Ranges{{Offset: 0, Length: 2}, {Offset: 4, Length: 2}, {Offset: 1, Length: 1}}.Overlapping()
	require.True(t, ok)
	require.Equal(t, 0, i)
	require.Equal(t, 2, j)
}

func TestRangesSortAndCompile(t *testing.T) {
	b := []byte{0, 1, 2, 3, 4, 5, 6, 7}
	entries := Ranges{{Offset: 6, Length: 2}, {Offset: 0, Length: 1}}
	entries.Sort()
	require.Equal(t, Ranges{{Offset: 0, Length: 1}, {Offset: 6, Length: 2}}, entries)
	require.Equal(t, []byte{0, 6, 7}, entries.Compile(b))
	require.True(t, entries.IsIn(7))
	require.False(t, entries.IsIn(3))
	require.Equal(t, []byte{6, 7}, entries[1].Slice(b))
	require.Nil(t, Range{Offset: 7, Length: 2}.Slice(b))
}

func TestIsZeroFilled(t *testing.T) {
	require.True(t, IsZeroFilled(nil))
	require.True(t, IsZeroFilled(make([]byte, 13)))
	require.False(t, IsZeroFilled([]byte{0, 0, 1}))
}
