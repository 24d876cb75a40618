// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"fmt"
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/linuxboot/smbios/pkg/smbios/internal/unittest"
	"github.com/stretchr/testify/require"
)

func TestStringTableIndexes(t *testing.T) {
	var table smbios.StringTable
	for k := 1; k <= 255; k++ {
		idx, err := table.Add(fmt.Sprintf("s%d", k))
		require.NoError(t, err)
		require.Equal(t, smbios.StringIndex(k), idx)
	}

	_, err := table.Add("one too many")
	require.ErrorAs(t, err, &smbios.ErrTooManyStrings{})
	require.Equal(t, 255, table.Len())

	s, ok := table.Get(255)
	require.True(t, ok)
	require.Equal(t, "s255", s)
	_, ok = table.Get(0)
	require.False(t, ok)
}

func TestStringTableRejectsNUL(t *testing.T) {
	var table smbios.StringTable
	_, err := table.Add("a\x00b")
	require.ErrorAs(t, err, &smbios.ErrStringContainsNUL{})
	require.Zero(t, table.Len())
}

func TestStringTableSerialize(t *testing.T) {
	for _, tc := range []struct {
		name     string
		strings  []string
		expected []byte
	}{
		{"empty", nil, []byte{0, 0}},
		{"one", []string{"a"}, []byte{'a', 0, 0}},
		{"two", []string{"4.04", "x"}, []byte{'4', '.', '0', '4', 0, 'x', 0, 0}},
		{"empty_string", []string{""}, []byte{0, 0}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var table smbios.StringTable
			for _, s := range tc.strings {
				_, err := table.Add(s)
				require.NoError(t, err)
			}
			var buf smbios.Buffer
			table.Serialize(&buf)
			require.Equal(t, tc.expected, buf.Bytes())
			require.Equal(t, unittest.Strings(tc.strings...), buf.Bytes())
		})
	}
}

func TestStringsReturnsCopy(t *testing.T) {
	var table smbios.StringTable
	_, err := table.Add("a")
	require.NoError(t, err)
	strs := table.Strings()
	strs[0] = "b"
	require.Equal(t, []string{"a"}, table.Strings())
}
