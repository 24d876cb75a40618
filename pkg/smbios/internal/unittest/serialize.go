// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package unittest

import (
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/stretchr/testify/require"
)

// Structure is a structure which could be serialized and printed.
type Structure interface {
	smbios.Structure
	PrettyString(depth uint, withHeader bool) string
}

// Serialize checks that s serializes to expected, and that neither
// serialization nor pretty printing modify the structure.
func Serialize(t *testing.T, s Structure, expected []byte) {
	t.Helper()

	prettyString := s.PrettyString(0, true)

	out := smbios.Marshal(s)
	require.Equal(t, expected, out)

	newPrettyString := s.PrettyString(0, true)
	require.Equal(t, prettyString, newPrettyString, newPrettyString)
	require.Equal(t, out, smbios.Marshal(s), "the second serialization differs")
}

// Strings returns the bytes of a string table with the given strings.
func Strings(strs ...string) []byte {
	var result []byte
	for _, s := range strs {
		result = append(result, s...)
		result = append(result, 0)
	}
	result = append(result, 0)
	if len(strs) == 0 {
		result = append(result, 0)
	}
	return result
}

// Concat concatenates byte slices.
func Concat(parts ...[]byte) []byte {
	var result []byte
	for _, part := range parts {
		result = append(result, part...)
	}
	return result
}
