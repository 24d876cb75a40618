// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package entrypoint

import (
	"fmt"
	"math"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.Output

	MaxSize string `long:"max-size" description:"maximal size of the structure table, like '4KiB'" required:"true"`
	Address uint64 `long:"address" description:"physical address of the structure table" base:"0" required:"true"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "encode the 64-bit entry point of a structure table"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "The checksum is calculated automatically."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	maxSize, err := commands.ParseSize(cmd.MaxSize)
	if err != nil {
		return err
	}
	if maxSize > math.MaxUint32 {
		return commands.ErrArgs{Err: fmt.Errorf("the maximal table size %d does not fit into 32 bits", maxSize)}
	}

	return cmd.Output.Write(smbios.NewEntryPoint(uint32(maxSize), cmd.Address))
}
