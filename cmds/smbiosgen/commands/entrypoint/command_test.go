// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entrypoint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ep.bin")
	cmd := &Command{Output: commands.Output{Path: path}, MaxSize: "4KiB", Address: 0x7F00_0000}
	require.NoError(t, cmd.Execute(nil))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, smbios.Marshal(smbios.NewEntryPoint(4096, 0x7F00_0000)), b)

	cmd.MaxSize = "5GiB"
	require.ErrorAs(t, cmd.Execute(nil), &commands.ErrArgs{})
}
