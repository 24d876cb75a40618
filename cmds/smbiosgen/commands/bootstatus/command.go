// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bootstatus

import (
	"encoding/hex"
	"fmt"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.Output

	Handle uint16 `long:"handle" description:"handle of the structure" base:"0" required:"true"`
	Code   uint8  `long:"code" description:"boot status code: 0-8, 128-191 (vendor-specific) or 192-255 (product-specific)" base:"0"`
	Data   string `long:"data" description:"hex-encoded boot status data (codes 7 and 128-255 only)"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "encode a System Boot Information structure (type 32)"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return ""
}

// Status returns the boot status described by the options.
func (cmd *Command) Status() (smbios.BootStatus, error) {
	data, err := hex.DecodeString(cmd.Data)
	if err != nil {
		return nil, commands.ErrArgs{Err: fmt.Errorf("invalid data '%s': %w", cmd.Data, err)}
	}
	if len(data) == 0 {
		data = nil
	}

	switch {
	case cmd.Code == 7:
		return smbios.PreviouslyRequestedImage(data), nil
	case cmd.Code >= 192:
		return smbios.ProductSpecific{StatusCode: cmd.Code, Payload: data}, nil
	case cmd.Code >= 128:
		return smbios.VendorSpecific{StatusCode: cmd.Code, Payload: data}, nil
	}
	if len(data) != 0 {
		return nil, commands.ErrArgs{Err: fmt.Errorf("status code %d does not take data", cmd.Code)}
	}
	return smbios.BootStatusCode(cmd.Code), nil
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	status, err := cmd.Status()
	if err != nil {
		return err
	}
	s, err := smbios.NewSystemBootInformation(smbios.Handle(cmd.Handle), status)
	if err != nil {
		return commands.ErrArgs{Err: err}
	}
	return cmd.Output.Write(s)
}
