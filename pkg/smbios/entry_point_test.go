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

func sum8(b []byte) uint8 {
	var sum uint8
	for _, c := range b {
		sum += c
	}
	return sum
}

func TestEntryPoint(t *testing.T) {
	ep := smbios.NewEntryPoint(0x1234, 0x8000_0000)
	require.NoError(t, ep.Validate())
	unittest.Serialize(t, ep, []byte{
		'_', 'S', 'M', '3', '_',
		0x86,
		0x18,
		3, 7, 0,
		1,
		0,
		0x34, 0x12, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00,
	})
}

func TestEntryPointChecksum(t *testing.T) {
	for _, maxSize := range []uint32{0, 1, 0x7F, 0x1234, 0xFFFF_FFFF} {
		for _, addr := range []uint64{0, 0xFF, 0x8000_0000, 0xDEAD_BEEF_0000_1000, 0xFFFF_FFFF_FFFF_FFFF} {
			t.Run(fmt.Sprintf("%X_%X", maxSize, addr), func(t *testing.T) {
				out := smbios.Marshal(smbios.NewEntryPoint(maxSize, addr))
				require.Len(t, out, 24)
				require.Zero(t, sum8(out))
			})
		}
	}
}

func TestEntryPointModifiedWithoutRehash(t *testing.T) {
	ep := smbios.NewEntryPoint(0x100, 0x1000)
	ep.StructureTableAddr = 0x2000
	require.Error(t, ep.Validate())

	// Serialize still emits a consistent checksum and keeps ep intact.
	checksum := ep.Checksum
	out := smbios.Marshal(ep)
	require.Zero(t, sum8(out))
	require.Equal(t, checksum, ep.Checksum)

	ep.Rehash()
	require.NoError(t, ep.Validate())
	require.Equal(t, out, smbios.Marshal(ep))
}

func TestEntryPointValidate(t *testing.T) {
	ep := smbios.NewEntryPoint(0, 0)
	ep.Anchor[0] = '-'
	require.ErrorContains(t, ep.Validate(), "anchor")

	ep = smbios.NewEntryPoint(0, 0)
	ep.Revision = 2
	ep.Rehash()
	require.ErrorContains(t, ep.Validate(), "revision")
}

func TestChecksum8(t *testing.T) {
	require.Equal(t, uint8(0), smbios.Checksum8(nil))
	require.Equal(t, uint8(0xFF), smbios.Checksum8([]byte{1}))
	require.Equal(t, uint8(0x01), smbios.Checksum8([]byte{0x80, 0x7F}))
}
