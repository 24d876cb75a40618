// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oemstrings

import (
	"fmt"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.Output

	Handle uint16 `long:"handle" description:"handle of the structure" base:"0" required:"true"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "encode an OEM Strings structure (type 11)"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Each argument is one OEM string."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the OEM strings.
func (cmd *Command) Execute(args []string) error {
	s := smbios.NewOEMStrings(smbios.Handle(cmd.Handle))
	for _, arg := range args {
		str, err := commands.SanitizeString(arg)
		if err != nil {
			return err
		}
		if _, err := s.AddString(str); err != nil {
			return commands.ErrArgs{Err: fmt.Errorf("unable to add string %q: %w", str, err)}
		}
	}
	return cmd.Output.Write(s)
}
