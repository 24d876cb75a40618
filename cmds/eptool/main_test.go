// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/pkg/smbios"
)

func TestPatchImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firmware.fd")
	image := make([]byte, 0x100)
	for i := range image {
		image[i] = 0xFF
	}
	require.NoError(t, os.WriteFile(path, image, 0644))

	require.NoError(t, patchImage(path, config{
		Offset:       0x10,
		TableAddress: 0x8000_0000,
		TableSize:    0x1234,
	}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, b, 0x100)
	require.Equal(t, smbios.Marshal(smbios.NewEntryPoint(0x1234, 0x8000_0000)), b[0x10:0x28])
	require.Equal(t, image[:0x10], b[:0x10])
	require.Equal(t, image[0x28:], b[0x28:])
}

func TestPatchImageDryRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "firmware.fd")
	require.NoError(t, os.WriteFile(path, make([]byte, 0x20), 0644))
	require.NoError(t, patchImage(path, config{Offset: 0, TableSize: 16, DryRun: true}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, make([]byte, 0x20), b)
}

func TestWriteEntryPointOutOfImage(t *testing.T) {
	ep := smbios.NewEntryPoint(0, 0)
	require.Error(t, writeEntryPoint(make([]byte, 0x20), 0x10, ep))
	require.Error(t, writeEntryPoint(make([]byte, 0x20), 0x100, ep))
	require.NoError(t, writeEntryPoint(make([]byte, 0x20), 0x08, ep))
}

func TestPatchImageTooLargeTable(t *testing.T) {
	require.Error(t, patchImage("", config{TableSize: 1 << 32}))
}
