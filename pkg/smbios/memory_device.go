// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// MemoryDevice is the structure of type 17: a single memory device (for
// example a DIMM) of a Physical Memory Array.
//
// PrettyString: Memory Device
type MemoryDevice struct {
	Header `type:"consts.TypeMemoryDevice" length:"0x64"`

	PhysicalMemoryArrayHandle    Handle
	MemoryErrorInformationHandle Handle

	TotalWidth uint16
	DataWidth  uint16

	// Size is the size of the device, see SetMemorySize.
	Size       uint16
	FormFactor FormFactor `default:"FormFactorUnknown"`
	DeviceSet  uint8

	DeviceLocator StringIndex
	BankLocator   StringIndex

	MemoryType MemoryType `default:"MemoryTypeUnknown"`
	TypeDetail TypeDetail

	// Speed is the maximum capable speed in MT/s. 0xFFFF means the speed
	// is in ExtendedSpeed.
	Speed uint16

	Manufacturer StringIndex
	SerialNumber StringIndex
	AssetTag     StringIndex
	PartNumber   StringIndex

	// Attributes holds the rank in bits 3:0.
	Attributes uint8

	// ExtendedSize is the size in megabytes, used only if Size is 0x7FFF.
	ExtendedSize uint32

	ConfiguredMemorySpeed uint16

	// MinimumVoltage is in millivolts, as are the other voltages.
	MinimumVoltage    uint16
	MaximumVoltage    uint16
	ConfiguredVoltage uint16

	MemoryTechnology              MemoryTechnology `default:"MemoryTechnologyUnknown"`
	MemoryOperatingModeCapability OperatingMode

	FirmwareVersion StringIndex

	// PrettyString: Module Manufacturer ID
	ModuleManufacturerID uint16
	// PrettyString: Module Product ID
	ModuleProductID uint16
	// PrettyString: Memory Subsystem Controller Manufacturer ID
	MemorySubsystemControllerManufacturerID uint16
	// PrettyString: Memory Subsystem Controller Product ID
	MemorySubsystemControllerProductID uint16

	NonVolatileSize uint64
	VolatileSize    uint64
	CacheSize       uint64
	LogicalSize     uint64

	ExtendedSpeed                 uint32
	ExtendedConfiguredMemorySpeed uint32

	// PrettyString: PMIC0 Manufacturer ID
	PMIC0ManufacturerID uint16
	// PrettyString: PMIC0 Revision Number
	PMIC0RevisionNumber uint16
	// PrettyString: RCD Manufacturer ID
	RCDManufacturerID uint16
	// PrettyString: RCD Revision Number
	RCDRevisionNumber uint16

	strings StringTable
}
