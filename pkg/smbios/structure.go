// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"

	"github.com/linuxboot/smbios/pkg/smbios/consts"
)

// Structure is an SMBIOS structure which could be serialized.
type Structure interface {
	// Serialize writes the binary representation of the structure into
	// sink. It does not modify the structure, so calling it again
	// produces the same bytes.
	Serialize(sink Sink)
}

// Marshal returns the binary representation of the structure.
func Marshal(s Structure) []byte {
	var buf Buffer
	s.Serialize(&buf)
	return buf
}

// Handle identifies a structure within a table. Other structures refer to
// a structure by its handle; resolving these references is up to whoever
// assembles the table.
type Handle uint16

const (
	// HandleNotProvided is used in handle fields when the referenced
	// information is not provided (for example the memory error
	// information handle).
	HandleNotProvided = Handle(0xFFFE)

	// HandleNone is used in handle fields which do not reference anything
	// (for example a processor without an L3 cache).
	HandleNone = Handle(0xFFFF)
)

func (h Handle) String() string {
	switch h {
	case HandleNotProvided:
		return "not provided"
	case HandleNone:
		return "none"
	}
	return fmt.Sprintf("%d", uint16(h))
}

// Type is the id of a structure type.
type Type uint8

var typeNames = map[Type]string{
	consts.TypeBIOSInformation:                "BIOS Information",
	consts.TypeSystemInformation:              "System Information",
	consts.TypeProcessorInformation:           "Processor Information",
	consts.TypeCacheInformation:               "Cache Information",
	consts.TypeSystemSlots:                    "System Slots",
	consts.TypeOEMStrings:                     "OEM Strings",
	consts.TypePhysicalMemoryArray:            "Physical Memory Array",
	consts.TypeMemoryDevice:                   "Memory Device",
	consts.TypeMemoryArrayMappedAddress:       "Memory Array Mapped Address",
	consts.TypeMemoryDeviceMappedAddress:      "Memory Device Mapped Address",
	consts.TypeSystemBootInformation:          "System Boot Information",
	consts.TypeTPMDevice:                      "TPM Device",
	consts.TypeProcessorAdditionalInformation: "Processor Additional Information",
	consts.TypeEndOfTable:                     "End-of-Table",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("type %d", uint8(t))
}

// Header starts every SMBIOS structure.
type Header struct {
	Type Type

	// Length is the length of the fixed part of the structure (including
	// the header), the string table is not counted.
	Length uint8

	Handle Handle
}

// GetHeader returns the header. It is a handy method if Header is included
// anonymously to another type.
func (hdr Header) GetHeader() Header {
	return hdr
}

// Serialize writes the header into sink.
func (hdr Header) Serialize(sink Sink) {
	sink.Byte(uint8(hdr.Type))
	sink.Byte(hdr.Length)
	sink.Word(uint16(hdr.Handle))
}

// StringIndex is a 1-based reference to a string of the string table of
// the structure. Zero means "no string".
type StringIndex uint8
