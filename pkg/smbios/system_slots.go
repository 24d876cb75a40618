// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// SystemSlots is the structure of type 9: a physical expansion slot.
// Peer groups are not supported, so PeerGroupingCount is expected to stay
// zero.
//
// PrettyString: System Slots
type SystemSlots struct {
	Header `type:"consts.TypeSystemSlots" length:"0x13"`

	SlotDesignation  StringIndex
	SlotType         SlotType     `default:"SlotTypeUnknown"`
	SlotDataBusWidth SlotWidth    `default:"SlotWidthUnknown"`
	CurrentUsage     CurrentUsage `default:"CurrentUsageUnknown"`
	SlotLength       SlotLength   `default:"SlotLengthUnknown"`

	// PrettyString: Slot ID
	SlotID uint16

	// PrettyString: Slot Characteristics 1
	SlotCharacteristics1 SlotCharacteristics1
	// PrettyString: Slot Characteristics 2
	SlotCharacteristics2 SlotCharacteristics2

	SegmentGroupNumber uint16
	BusNumber          uint8

	// DeviceFunctionNumber is the PCI device number in bits 7:3 and the
	// function number in bits 2:0.
	DeviceFunctionNumber uint8

	DataBusWidth      uint8
	PeerGroupingCount uint8

	strings StringTable
}
