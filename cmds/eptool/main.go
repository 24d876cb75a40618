// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// eptool writes an SMBIOS 3.0 (64-bit) entry point into a firmware image.
//
// Synopsis:
//     eptool -i IMAGE -o OFFSET -a TABLE_ADDRESS -s TABLE_SIZE [-n]
//
// An example:
//     eptool -i firmware.fd -o 0x1000 -a 0x7f000000 -s 4KiB
package main

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/dustin/go-humanize"
	flag "github.com/spf13/pflag"
	"github.com/xaionaro-go/bytesextra"

	"github.com/linuxboot/smbios/pkg/bytes"
	"github.com/linuxboot/smbios/pkg/log"
	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/linuxboot/smbios/pkg/smbios/consts"
)

var (
	flagImage        = flag.StringP("image", "i", "", "path to the firmware image")
	flagOffset       = flag.Uint64P("offset", "o", 0, "offset of the entry point within the image")
	flagTableAddress = flag.Uint64P("table-address", "a", 0, "physical address of the structure table")
	flagTableSize    = flag.StringP("table-size", "s", "", "maximal size of the structure table, like '4KiB'")
	flagDryRun       = flag.BoolP("dry-run", "n", false, "print the entry point, but do not modify the image")
)

type config struct {
	Offset       uint64
	TableAddress uint64
	TableSize    uint64
	DryRun       bool
}

func main() {
	flag.Parse()

	if *flagImage == "" || *flagTableSize == "" || flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	tableSize, err := humanize.ParseBytes(*flagTableSize)
	if err != nil {
		log.Fatalf("invalid table size '%s': %v", *flagTableSize, err)
	}

	err = patchImage(*flagImage, config{
		Offset:       *flagOffset,
		TableAddress: *flagTableAddress,
		TableSize:    tableSize,
		DryRun:       *flagDryRun,
	})
	if err != nil {
		log.Fatalf("%v", err)
	}
}

func patchImage(path string, cfg config) error {
	if cfg.TableSize > math.MaxUint32 {
		return fmt.Errorf("the table size %d does not fit into 32 bits", cfg.TableSize)
	}
	ep := smbios.NewEntryPoint(uint32(cfg.TableSize), cfg.TableAddress)
	if cfg.DryRun {
		fmt.Print(ep.PrettyString(0, true))
		return nil
	}

	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read the firmware image '%s': %w", path, err)
	}
	if err := writeEntryPoint(image, cfg.Offset, ep); err != nil {
		return err
	}
	if err := os.WriteFile(path, image, 0644); err != nil {
		return fmt.Errorf("unable to write the firmware image '%s': %w", path, err)
	}
	log.Infof("the entry point is written at offset 0x%X", cfg.Offset)
	return nil
}

// writeEntryPoint overwrites consts.EntryPointLength bytes of image at
// the offset.
func writeEntryPoint(image []byte, offset uint64, ep *smbios.EntryPoint) error {
	if offset > uint64(len(image)) || uint64(len(image))-offset < consts.EntryPointLength {
		return fmt.Errorf("offset 0x%X is out of the image (size: 0x%X)", offset, len(image))
	}
	old := image[offset : offset+consts.EntryPointLength]
	if !bytes.IsZeroFilled(old) && string(old[:len(consts.EntryPointAnchor)]) != string(consts.EntryPointAnchor[:]) {
		log.Warnf("overwriting non-empty data at offset 0x%X: 0x%X", offset, old)
	}

	rws := bytesextra.NewReadWriteSeeker(image)
	if _, err := rws.Seek(int64(offset), io.SeekStart); err != nil {
		return fmt.Errorf("unable to seek to 0x%X: %w", offset, err)
	}
	buf := smbios.Buffer(smbios.Marshal(ep))
	if _, err := buf.WriteTo(rws); err != nil {
		return fmt.Errorf("unable to write the entry point: %w", err)
	}
	return nil
}
