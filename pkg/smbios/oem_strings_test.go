// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/linuxboot/smbios/pkg/smbios/internal/unittest"
	"github.com/stretchr/testify/require"
)

func TestOEMStrings(t *testing.T) {
	s := smbios.NewOEMStrings(1)
	idx, err := s.AddString("My OEM string")
	require.NoError(t, err)
	require.Equal(t, smbios.StringIndex(1), idx)
	idx, err = s.AddString("foo")
	require.NoError(t, err)
	require.Equal(t, smbios.StringIndex(2), idx)

	require.Equal(t, uint8(2), s.Count())
	unittest.Serialize(t, s, unittest.Concat(
		[]byte{11, 5, 1, 0, 2},
		unittest.Strings("My OEM string", "foo"),
	))
}

func TestOEMStringsEmpty(t *testing.T) {
	unittest.Serialize(t, smbios.NewOEMStrings(7), []byte{11, 5, 7, 0, 0, 0})
}

func TestOEMStringsErrors(t *testing.T) {
	s := smbios.NewOEMStrings(1)
	_, err := s.AddString("a\x00b")
	require.ErrorAs(t, err, &smbios.ErrStringContainsNUL{})
	require.Zero(t, s.Count())

	for i := 0; i < 255; i++ {
		_, err := s.AddString("x")
		require.NoError(t, err)
	}
	_, err = s.AddString("x")
	require.ErrorAs(t, err, &smbios.ErrTooManyStrings{})
	require.Equal(t, uint8(255), s.Count())
	require.Equal(t, []byte{11, 5, 1, 0, 255}, smbios.Marshal(s)[:5])
}
