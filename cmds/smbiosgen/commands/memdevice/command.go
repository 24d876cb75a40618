// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memdevice

import (
	"fmt"
	"strings"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/pkg/smbios"
)

var _ commands.Command = (*Command)(nil)

type Command struct {
	commands.Output

	Handle       uint16 `long:"handle" description:"handle of the structure" base:"0" required:"true"`
	ArrayHandle  uint16 `long:"array-handle" description:"handle of the physical memory array" base:"0" required:"true"`
	ErrorHandle  uint16 `long:"error-handle" description:"handle of the memory error information structure" base:"0" default:"0xFFFE"`
	Size         string `long:"size" description:"size of the device, like '32GiB', '0' for an empty socket or 'unknown'" required:"true"`
	Type         uint8  `long:"type" description:"memory type (0x22 is DDR5)" base:"0" default:"2"`
	FormFactor   uint8  `long:"form-factor" description:"form factor (9 is DIMM)" base:"0" default:"2"`
	Width        uint16 `long:"width" description:"data width in bits"`
	Speed        uint32 `long:"speed" description:"maximal speed in MT/s"`
	Locator      string `long:"locator" description:"device locator, like 'DIMM0'"`
	Bank         string `long:"bank" description:"bank locator"`
	Manufacturer string `long:"manufacturer" description:"manufacturer of the device"`
	SerialNumber string `long:"serial-number" description:"serial number of the device"`
	PartNumber   string `long:"part-number" description:"part number of the device"`
}

// ShortDescription explains what this command does in one line
func (cmd *Command) ShortDescription() string {
	return "encode a Memory Device structure (type 17)"
}

// LongDescription explains what this verb does (without limitation in amount of lines)
func (cmd *Command) LongDescription() string {
	return "Sizes of 32GiB-1MiB and above are stored in the extended field."
}

// Execute is the main function here. It is responsible to
// start the execution of the command.
//
// `args` are the arguments left unused by verb itself and options.
func (cmd *Command) Execute(args []string) error {
	if len(args) != 0 {
		return commands.ErrArgs{Err: fmt.Errorf("there are extra arguments")}
	}

	s := smbios.NewMemoryDevice(smbios.Handle(cmd.Handle))
	s.SetPhysicalMemoryArrayHandle(smbios.Handle(cmd.ArrayHandle))
	s.SetMemoryErrorInformationHandle(smbios.Handle(cmd.ErrorHandle))
	s.SetMemoryType(smbios.MemoryType(cmd.Type))
	s.SetFormFactor(smbios.FormFactor(cmd.FormFactor))
	s.SetTotalWidth(cmd.Width)
	s.SetDataWidth(cmd.Width)
	s.SetMemorySpeed(cmd.Speed)

	if strings.EqualFold(strings.TrimSpace(cmd.Size), "unknown") {
		s.SetMemorySizeUnknown()
	} else {
		size, err := commands.ParseSize(cmd.Size)
		if err != nil {
			return err
		}
		if err := s.SetMemorySize(size); err != nil {
			return commands.ErrArgs{Err: err}
		}
	}

	for _, str := range []struct {
		value string
		set   func(string) error
	}{
		{cmd.Locator, s.SetDeviceLocator},
		{cmd.Bank, s.SetBankLocator},
		{cmd.Manufacturer, s.SetManufacturer},
		{cmd.SerialNumber, s.SetSerialNumber},
		{cmd.PartNumber, s.SetPartNumber},
	} {
		if str.value == "" {
			continue
		}
		value, err := commands.SanitizeString(str.value)
		if err != nil {
			return err
		}
		if err := str.set(value); err != nil {
			return err
		}
	}

	return cmd.Output.Write(s)
}
