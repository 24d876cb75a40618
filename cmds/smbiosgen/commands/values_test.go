// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitizeString(t *testing.T) {
	for in, out := range map[string]string{
		"DIMM0":         "DIMM0",
		"a\x00b":        "ab",
		"tab\there\r\n": "tabhere",
		"ünïcödé":       "ünïcödé",
	} {
		result, err := SanitizeString(in)
		require.NoError(t, err)
		require.Equal(t, out, result)
	}
}

func TestParseSize(t *testing.T) {
	for in, out := range map[string]uint64{
		"0":       0,
		"512KiB":  512 << 10,
		"16 GiB":  16 << 30,
		" 3TiB ":  3 << 40,
		"4096":    4096,
		"1GB":     1000 * 1000 * 1000,
		"16.5MiB": 16896 << 10,
	} {
		size, err := ParseSize(in)
		require.NoError(t, err, in)
		require.Equal(t, out, size, in)
	}

	_, err := ParseSize("lots")
	require.ErrorAs(t, err, &ErrArgs{})
}
