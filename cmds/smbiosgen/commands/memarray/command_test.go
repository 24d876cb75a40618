// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memarray

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
)

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "type16.bin")
	cmd := &Command{
		Output:      commands.Output{Path: path},
		Handle:      10,
		Capacity:    "3TiB",
		Devices:     16,
		Location:    3,
		Use:         3,
		ECC:         2,
		ErrorHandle: 0,
	}
	require.NoError(t, cmd.Execute(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte{
		16, 0x17, 10, 0,
		3, 3, 2,
		0, 0, 0, 0x80,
		0, 0,
		16, 0,
		0, 0, 0, 0, 0, 3, 0, 0,
		0, 0,
	}, b)
}
