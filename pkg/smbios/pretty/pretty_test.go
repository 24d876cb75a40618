// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pretty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testEnum uint8

func (e testEnum) String() string { return "Unknown" }

func TestHeader(t *testing.T) {
	require.Equal(t, "----BIOS Information----\n", Header(0, "BIOS Information", nil))
	require.Equal(t, "  --Vendor--", Header(1, "Vendor", nil))
	require.Equal(t, "    Level:", Header(2, "Level", nil))
}

func TestSubValue(t *testing.T) {
	for _, tc := range []struct {
		name     string
		value    interface{}
		expected string
	}{
		{"small", uint8(3), "  --F-- 0x03"},
		{"decimal", uint16(0x101), "  --F-- 0x0101 (257)"},
		{"humanized", uint64(3 << 40), "  --F-- 0x0000030000000000 (3298534883328: 3.0 TiB)"},
		{"stringer", testEnum(2), "  --F-- 0x02 (Unknown)"},
		{"array", [2]byte{0xAB, 0xCD}, "  --F-- 0xABCD"},
		{"empty_slice", []byte{}, "  --F-- empty (len: 0)"},
		{"slice", []byte{1, 2}, "  --F-- 0x0102 (len: 2)"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, SubValue(1, "F", "", tc.value))
		})
	}
}

func TestStringRef(t *testing.T) {
	strs := []string{"System BIOS Vendor", "4.04"}
	require.Equal(t, "0x00 (no string)", StringRef(0, strs))
	require.Equal(t, `0x02 "4.04"`, StringRef(2, strs))
	require.Equal(t, "0x03 (invalid: only 2 strings)", StringRef(3, strs))
}
