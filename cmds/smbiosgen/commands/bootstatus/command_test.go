// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstatus

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

func TestStatus(t *testing.T) {
	for _, tc := range []struct {
		code     uint8
		data     string
		expected smbios.BootStatus
	}{
		{0, "", smbios.BootStatusNoErrors},
		{8, "", smbios.BootStatusSystemWatchdogTimer},
		{7, "aabb", smbios.PreviouslyRequestedImage{0xAA, 0xBB}},
		{130, "01", smbios.VendorSpecific{StatusCode: 130, Payload: []byte{1}}},
		{200, "", smbios.ProductSpecific{StatusCode: 200}},
	} {
		status, err := (&Command{Code: tc.code, Data: tc.data}).Status()
		require.NoError(t, err)
		require.Equal(t, tc.expected, status)
	}

	_, err := (&Command{Code: 1, Data: "00"}).Status()
	require.ErrorAs(t, err, &commands.ErrArgs{})
	_, err = (&Command{Code: 7, Data: "zz"}).Status()
	require.ErrorAs(t, err, &commands.ErrArgs{})
}

func TestExecute(t *testing.T) {
	var out bytes.Buffer
	saved := commands.Stdout
	defer func() { commands.Stdout = saved }()
	commands.Stdout = &out

	require.NoError(t, (&Command{Handle: 0x20, Code: 7, Data: "aabb"}).Execute(nil))
	require.Contains(t, out.String(), "20 0d 20 00 00 00 00 00  00 00 07 aa bb 00 00")

	err := (&Command{Handle: 0x20, Code: 100}).Execute(nil)
	require.ErrorAs(t, err, &smbios.ErrInvalidBootStatus{})
}
