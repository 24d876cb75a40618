// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
)

func TestLayout(t *testing.T) {
	var out bytes.Buffer
	saved := commands.Stdout
	defer func() { commands.Stdout = saved }()
	commands.Stdout = &out

	typ := uint8(16)
	require.NoError(t, (&Command{Type: &typ}).Execute(nil))
	require.Contains(t, out.String(), "Physical Memory Array")
	require.Contains(t, out.String(), "ExtendedMaximumCapacity")
	require.NotContains(t, out.String(), "Memory Device")

	typ = 11
	require.ErrorAs(t, (&Command{Type: &typ}).Execute(nil), &commands.ErrArgs{})
}
