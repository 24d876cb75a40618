// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	Type *uint8 `long:"type" description:"print only the structure of this type"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "print the byte layout of the fixed-layout structures"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "The layout is calculated from the Go types of the structures."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	printed := 0
	for _, s := range smbios.Schemas() {
		hdr := s.(interface{ GetHeader() smbios.Header }).GetHeader()
		if cmd.Type != nil && smbios.Type(*cmd.Type) != hdr.Type {
			continue
		}

		layout, err := smbios.LayoutOf(s)
		if err != nil {
			return fmt.Errorf("unable to get the layout of %s: %w", hdr.Type, err)
		}

		t := table.NewWriter()
		t.SetOutputMirror(commands.Stdout)
		t.SetTitle("Type %d: %s (length 0x%02X)", uint8(hdr.Type), hdr.Type, hdr.Length)
		t.AppendHeader(table.Row{"Offset", "Length", "Field", "Go Type"})
		for _, field := range layout.Fields {
			t.AppendRow(table.Row{
				fmt.Sprintf("0x%02X", field.Range.Offset),
				field.Range.Length,
				field.Name,
				field.Type,
			})
		}
		t.AppendFooter(table.Row{"", layout.Size(), "", ""})
		t.Render()
		printed++
	}

	if printed == 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there is no fixed-layout structure of type %d", *cmd.Type)}
	}
	return nil
}
