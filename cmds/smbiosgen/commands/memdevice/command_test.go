// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memdevice

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "type17.bin")
	cmd := &Command{
		Output:       commands.Output{Path: path},
		Handle:       0x11,
		ArrayHandle:  0x10,
		ErrorHandle:  0xFFFE,
		Size:         "64GiB",
		Type:         uint8(smbios.MemoryTypeDDR5),
		FormFactor:   uint8(smbios.FormFactorDIMM),
		Width:        64,
		Speed:        4800,
		Locator:      "DIMM0",
		Manufacturer: "Vendor",
	}
	require.NoError(t, cmd.Execute(nil))

	expected := smbios.NewMemoryDevice(0x11)
	expected.SetPhysicalMemoryArrayHandle(0x10)
	expected.SetMemoryErrorInformationHandle(smbios.HandleNotProvided)
	expected.SetMemoryType(smbios.MemoryTypeDDR5)
	expected.SetFormFactor(smbios.FormFactorDIMM)
	expected.SetTotalWidth(64)
	expected.SetDataWidth(64)
	expected.SetMemorySpeed(4800)
	require.NoError(t, expected.SetMemorySize(64<<30))
	require.NoError(t, expected.SetDeviceLocator("DIMM0"))
	require.NoError(t, expected.SetManufacturer("Vendor"))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, smbios.Marshal(expected), b)
}

func TestExecuteUnknownSize(t *testing.T) {
	path := filepath.Join(t.TempDir(), "type17.bin")
	cmd := &Command{Output: commands.Output{Path: path}, Size: "Unknown"}
	require.NoError(t, cmd.Execute(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF, 0xFF}, b[0x0C:0x0E])
}

func TestExecuteInvalidSize(t *testing.T) {
	cmd := &Command{Size: "8PiB"}
	require.ErrorAs(t, cmd.Execute(nil), &smbios.ErrValueOverflow{})

	cmd = &Command{Size: "big"}
	require.ErrorAs(t, cmd.Execute(nil), &commands.ErrArgs{})
}
