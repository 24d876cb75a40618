// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oemstrings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
)

func TestExecute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "oem.bin")
	cmd := &Command{Output: commands.Output{Path: path}, Handle: 1}
	require.NoError(t, cmd.Execute([]string{"My OEM string", "f\x00oo"}))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, append([]byte{11, 5, 1, 0, 2}, "My OEM string\x00foo\x00\x00"...), b)
}
