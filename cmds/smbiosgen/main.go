// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// smbiosgen encodes single SMBIOS structures.
//
// Synopsis:
//     smbiosgen entrypoint --max-size SIZE --address ADDRESS [options]
//     smbiosgen oemstrings --handle HANDLE [options] STRING...
//     smbiosgen bootstatus --handle HANDLE --code CODE [--data HEX] [options]
//     smbiosgen memarray --handle HANDLE --capacity SIZE [options]
//     smbiosgen memdevice --handle HANDLE --array-handle HANDLE --size SIZE [options]
//     smbiosgen layout [--type TYPE]
//
// An example:
//     smbiosgen entrypoint --max-size 4KiB --address 0x7f000000 -o ep.bin
//     smbiosgen oemstrings --handle 0x0B "board rev 2" "sku 17"
//     smbiosgen memdevice --handle 0x11 --array-handle 0x10 --size 32GiB --locator DIMM0 --pretty
//
// Description:
//     entrypoint: Encode the 64-bit entry point of a structure table
//     oemstrings: Encode an OEM Strings structure (type 11)
//     bootstatus: Encode a System Boot Information structure (type 32)
//     memarray:   Encode a Physical Memory Array structure (type 16)
//     memdevice:  Encode a Memory Device structure (type 17)
//     layout:     Print the byte layout of the fixed-layout structures
//
// The encoding commands print a hex dump unless '--output' is given.
package main

import (
	"github.com/jessevdk/go-flags"

	"github.com/linuxboot/smbios/cmds/smbiosgen/commands"
	"github.com/linuxboot/smbios/cmds/smbiosgen/commands/bootstatus"
	"github.com/linuxboot/smbios/cmds/smbiosgen/commands/entrypoint"
	"github.com/linuxboot/smbios/cmds/smbiosgen/commands/layout"
	"github.com/linuxboot/smbios/cmds/smbiosgen/commands/memarray"
	"github.com/linuxboot/smbios/cmds/smbiosgen/commands/memdevice"
	"github.com/linuxboot/smbios/cmds/smbiosgen/commands/oemstrings"
	"github.com/linuxboot/smbios/pkg/log"
)

var (
	knownCommands = map[string]commands.Command{
		"entrypoint": &entrypoint.Command{},
		"oemstrings": &oemstrings.Command{},
		"bootstatus": &bootstatus.Command{},
		"memarray":   &memarray.Command{},
		"memdevice":  &memdevice.Command{},
		"layout":     &layout.Command{},
	}
)

func main() {
	flagsParser := flags.NewParser(nil, flags.Default)
	for commandName, command := range knownCommands {
		_, err := flagsParser.AddCommand(commandName, command.ShortDescription(), command.LongDescription(), command)
		if err != nil {
			panic(err)
		}
	}

	// parse arguments and execute the appropriate command
	if _, err := flagsParser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		log.Fatalf("%v", err)
	}
}
