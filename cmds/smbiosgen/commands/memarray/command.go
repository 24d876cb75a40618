// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memarray

import (
	"fmt"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.Output

	Handle      uint16 `long:"handle" description:"handle of the structure" base:"0" required:"true"`
	Capacity    string `long:"capacity" description:"maximal memory capacity, like '3TiB'" required:"true"`
	Devices     uint16 `long:"devices" description:"number of memory slots or sockets" default:"1"`
	Location    uint8  `long:"location" description:"location of the array (3 is the system board)" base:"0" default:"3"`
	Use         uint8  `long:"use" description:"function of the array (3 is the system memory)" base:"0" default:"3"`
	ECC         uint8  `long:"ecc" description:"memory error correction (2 is unknown)" base:"0" default:"2"`
	ErrorHandle uint16 `long:"error-handle" description:"handle of the memory error information structure" base:"0" default:"0xFFFE"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "encode a Physical Memory Array structure (type 16)"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Capacities of 2TiB and above are stored in the extended field."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	capacity, err := commands.ParseSize(cmd.Capacity)
	if err != nil {
		return err
	}

	s := smbios.NewPhysicalMemoryArray(smbios.Handle(cmd.Handle))
	s.SetLocation(smbios.ArrayLocation(cmd.Location))
	s.SetUse(smbios.ArrayUse(cmd.Use))
	s.SetMemoryErrorCorrection(smbios.ErrorCorrectionType(cmd.ECC))
	s.SetMemoryErrorInformationHandle(smbios.Handle(cmd.ErrorHandle))
	s.SetNumberOfMemoryDevices(cmd.Devices)
	s.SetMemoryCapacity(capacity)
	return cmd.Output.Write(s)
}
