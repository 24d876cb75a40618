// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

// SlotType is the physical type of a system slot.
type SlotType uint8

const (
	SlotTypeOther                 = SlotType(0x01)
	SlotTypeUnknown               = SlotType(0x02)
	SlotTypePCIExpressGen5SFF8639 = SlotType(0x25)
	SlotTypePCIExpressGen5        = SlotType(0xBF)
	SlotTypePCIExpressGen5x1      = SlotType(0xC0)
	SlotTypePCIExpressGen5x2      = SlotType(0xC1)
	SlotTypePCIExpressGen5x4      = SlotType(0xC2)
	SlotTypePCIExpressGen5x8      = SlotType(0xC3)
	SlotTypePCIExpressGen5x16     = SlotType(0xC4)
)

var slotTypeNames = map[SlotType]string{
	SlotTypeOther:                 "Other",
	SlotTypeUnknown:               "Unknown",
	SlotTypePCIExpressGen5SFF8639: "PCI Express Gen 5 SFF-8639 (U.2)",
	SlotTypePCIExpressGen5:        "PCI Express Gen 5",
	SlotTypePCIExpressGen5x1:      "PCI Express Gen 5 x1",
	SlotTypePCIExpressGen5x2:      "PCI Express Gen 5 x2",
	SlotTypePCIExpressGen5x4:      "PCI Express Gen 5 x4",
	SlotTypePCIExpressGen5x8:      "PCI Express Gen 5 x8",
	SlotTypePCIExpressGen5x16:     "PCI Express Gen 5 x16",
}

func (t SlotType) String() string {
	return enumString(t, slotTypeNames)
}

// SlotWidth is the data bus width of a system slot.
type SlotWidth uint8

const (
	SlotWidthOther   = SlotWidth(0x01)
	SlotWidthUnknown = SlotWidth(0x02)
	SlotWidth8Bit    = SlotWidth(0x03)
	SlotWidth16Bit   = SlotWidth(0x04)
	SlotWidth32Bit   = SlotWidth(0x05)
	SlotWidth64Bit   = SlotWidth(0x06)
	SlotWidth128Bit  = SlotWidth(0x07)
	SlotWidthX1      = SlotWidth(0x08)
	SlotWidthX2      = SlotWidth(0x09)
	SlotWidthX4      = SlotWidth(0x0A)
	SlotWidthX8      = SlotWidth(0x0B)
	SlotWidthX12     = SlotWidth(0x0C)
	SlotWidthX16     = SlotWidth(0x0D)
	SlotWidthX32     = SlotWidth(0x0E)
)

var slotWidthNames = map[SlotWidth]string{
	SlotWidthOther:   "Other",
	SlotWidthUnknown: "Unknown",
	SlotWidth8Bit:    "8 bit",
	SlotWidth16Bit:   "16 bit",
	SlotWidth32Bit:   "32 bit",
	SlotWidth64Bit:   "64 bit",
	SlotWidth128Bit:  "128 bit",
	SlotWidthX1:      "x1",
	SlotWidthX2:      "x2",
	SlotWidthX4:      "x4",
	SlotWidthX8:      "x8",
	SlotWidthX12:     "x12",
	SlotWidthX16:     "x16",
	SlotWidthX32:     "x32",
}

func (w SlotWidth) String() string {
	return enumString(w, slotWidthNames)
}

// CurrentUsage is the usage of a system slot.
type CurrentUsage uint8

const (
	CurrentUsageOther       = CurrentUsage(0x01)
	CurrentUsageUnknown     = CurrentUsage(0x02)
	CurrentUsageAvailable   = CurrentUsage(0x03)
	CurrentUsageInUse       = CurrentUsage(0x04)
	CurrentUsageUnavailable = CurrentUsage(0x05)
)

var currentUsageNames = map[CurrentUsage]string{
	CurrentUsageOther:       "Other",
	CurrentUsageUnknown:     "Unknown",
	CurrentUsageAvailable:   "Available",
	CurrentUsageInUse:       "In use",
	CurrentUsageUnavailable: "Unavailable",
}

func (u CurrentUsage) String() string {
	return enumString(u, currentUsageNames)
}

// SlotLength is the physical length of a system slot.
type SlotLength uint8

const (
	SlotLengthOther        = SlotLength(0x01)
	SlotLengthUnknown      = SlotLength(0x02)
	SlotLengthShort        = SlotLength(0x03)
	SlotLengthLong         = SlotLength(0x04)
	SlotLength2_5InchDrive = SlotLength(0x05)
	SlotLength3_5InchDrive = SlotLength(0x06)
)

var slotLengthNames = map[SlotLength]string{
	SlotLengthOther:        "Other",
	SlotLengthUnknown:      "Unknown",
	SlotLengthShort:        "Short Length",
	SlotLengthLong:         "Long Length",
	SlotLength2_5InchDrive: "2.5\" drive form factor",
	SlotLength3_5InchDrive: "3.5\" drive form factor",
}

func (l SlotLength) String() string {
	return enumString(l, slotLengthNames)
}

// SlotCharacteristics1 is the first byte of slot characteristics.
type SlotCharacteristics1 uint8

const (
	SlotCharacteristics1Unknown      = SlotCharacteristics1(1 << 0)
	SlotCharacteristics1Provides5V   = SlotCharacteristics1(1 << 1)
	SlotCharacteristics1Provides3_3V = SlotCharacteristics1(1 << 2)
)

var slotCharacteristics1Names = []flagName{
	{uint64(SlotCharacteristics1Unknown), "Unknown"},
	{uint64(SlotCharacteristics1Provides5V), "Provides 5.0 volts"},
	{uint64(SlotCharacteristics1Provides3_3V), "Provides 3.3 volts"},
}

func (c SlotCharacteristics1) String() string {
	return flagsString(uint64(c), slotCharacteristics1Names)
}

// SlotCharacteristics2 is the second byte of slot characteristics.
type SlotCharacteristics2 uint8

const (
	SlotCharacteristics2PMESupported             = SlotCharacteristics2(1 << 0)
	SlotCharacteristics2HotPlugSupported         = SlotCharacteristics2(1 << 1)
	SlotCharacteristics2SMBusSupported           = SlotCharacteristics2(1 << 2)
	SlotCharacteristics2BifurcationSupported     = SlotCharacteristics2(1 << 3)
	SlotCharacteristics2SurpriseRemovalSupported = SlotCharacteristics2(1 << 4)
	SlotCharacteristics2CXL1Supported            = SlotCharacteristics2(1 << 5)
	SlotCharacteristics2CXL2Supported            = SlotCharacteristics2(1 << 6)
	SlotCharacteristics2CXL3Supported            = SlotCharacteristics2(1 << 7)
)

var slotCharacteristics2Names = []flagName{
	{uint64(SlotCharacteristics2PMESupported), "PME"},
	{uint64(SlotCharacteristics2HotPlugSupported), "Hot-plug"},
	{uint64(SlotCharacteristics2SMBusSupported), "SMBus"},
	{uint64(SlotCharacteristics2BifurcationSupported), "Bifurcation"},
	{uint64(SlotCharacteristics2SurpriseRemovalSupported), "Surprise removal"},
	{uint64(SlotCharacteristics2CXL1Supported), "CXL 1.0"},
	{uint64(SlotCharacteristics2CXL2Supported), "CXL 2.0"},
	{uint64(SlotCharacteristics2CXL3Supported), "CXL 3.0"},
}

func (c SlotCharacteristics2) String() string {
	return flagsString(uint64(c), slotCharacteristics2Names)
}
