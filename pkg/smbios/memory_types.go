// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"
)

// ArrayLocation is the physical location of a memory array.
type ArrayLocation uint8

const (
	ArrayLocationOther        = ArrayLocation(0x01)
	ArrayLocationUnknown      = ArrayLocation(0x02)
	ArrayLocationSystemBoard  = ArrayLocation(0x03)
	ArrayLocationCXLAddonCard = ArrayLocation(0xA4)
)

var arrayLocationNames = map[ArrayLocation]string{
	ArrayLocationOther:        "Other",
	ArrayLocationUnknown:      "Unknown",
	ArrayLocationSystemBoard:  "System board or motherboard",
	ArrayLocationCXLAddonCard: "CXL add-on card",
}

func (l ArrayLocation) String() string {
	return enumString(l, arrayLocationNames)
}

// ArrayUse is the function a memory array is used for.
type ArrayUse uint8

const (
	ArrayUseOther          = ArrayUse(0x01)
	ArrayUseUnknown        = ArrayUse(0x02)
	ArrayUseSystemMemory   = ArrayUse(0x03)
	ArrayUseVideoMemory    = ArrayUse(0x04)
	ArrayUseFlashMemory    = ArrayUse(0x05)
	ArrayUseNonVolatileRAM = ArrayUse(0x06)
	ArrayUseCacheMemory    = ArrayUse(0x07)
)

var arrayUseNames = map[ArrayUse]string{
	ArrayUseOther:          "Other",
	ArrayUseUnknown:        "Unknown",
	ArrayUseSystemMemory:   "System memory",
	ArrayUseVideoMemory:    "Video memory",
	ArrayUseFlashMemory:    "Flash memory",
	ArrayUseNonVolatileRAM: "Non-volatile RAM",
	ArrayUseCacheMemory:    "Cache memory",
}

func (u ArrayUse) String() string {
	return enumString(u, arrayUseNames)
}

// ErrorCorrectionType is the error correction scheme of a memory array.
type ErrorCorrectionType uint8

const (
	ErrorCorrectionTypeOther        = ErrorCorrectionType(0x01)
	ErrorCorrectionTypeUnknown      = ErrorCorrectionType(0x02)
	ErrorCorrectionTypeNone         = ErrorCorrectionType(0x03)
	ErrorCorrectionTypeParity       = ErrorCorrectionType(0x04)
	ErrorCorrectionTypeSingleBitECC = ErrorCorrectionType(0x05)
	ErrorCorrectionTypeMultiBitECC  = ErrorCorrectionType(0x06)
	ErrorCorrectionTypeCRC          = ErrorCorrectionType(0x07)
)

var errorCorrectionTypeNames = map[ErrorCorrectionType]string{
	ErrorCorrectionTypeOther:        "Other",
	ErrorCorrectionTypeUnknown:      "Unknown",
	ErrorCorrectionTypeNone:         "None",
	ErrorCorrectionTypeParity:       "Parity",
	ErrorCorrectionTypeSingleBitECC: "Single-bit ECC",
	ErrorCorrectionTypeMultiBitECC:  "Multi-bit ECC",
	ErrorCorrectionTypeCRC:          "CRC",
}

func (t ErrorCorrectionType) String() string {
	return enumString(t, errorCorrectionTypeNames)
}

// FormFactor is the implementation form factor of a memory device.
type FormFactor uint8

const (
	FormFactorOther       = FormFactor(0x01)
	FormFactorUnknown     = FormFactor(0x02)
	FormFactorSIMM        = FormFactor(0x03)
	FormFactorSIP         = FormFactor(0x04)
	FormFactorChip        = FormFactor(0x05)
	FormFactorDIP         = FormFactor(0x06)
	FormFactorZIP         = FormFactor(0x07)
	FormFactorProprietary = FormFactor(0x08)
	FormFactorDIMM        = FormFactor(0x09)
	FormFactorTSOP        = FormFactor(0x0A)
	FormFactorRowOfChips  = FormFactor(0x0B)
	FormFactorRIMM        = FormFactor(0x0C)
	FormFactorSODIMM      = FormFactor(0x0D)
	FormFactorSRIMM       = FormFactor(0x0E)
	FormFactorFBDIMM      = FormFactor(0x0F)
	FormFactorDie         = FormFactor(0x10)
)

var formFactorNames = map[FormFactor]string{
	FormFactorOther:       "Other",
	FormFactorUnknown:     "Unknown",
	FormFactorSIMM:        "SIMM",
	FormFactorSIP:         "SIP",
	FormFactorChip:        "Chip",
	FormFactorDIP:         "DIP",
	FormFactorZIP:         "ZIP",
	FormFactorProprietary: "Proprietary Card",
	FormFactorDIMM:        "DIMM",
	FormFactorTSOP:        "TSOP",
	FormFactorRowOfChips:  "Row of chips",
	FormFactorRIMM:        "RIMM",
	FormFactorSODIMM:      "SODIMM",
	FormFactorSRIMM:       "SRIMM",
	FormFactorFBDIMM:      "FB-DIMM",
	FormFactorDie:         "Die",
}

func (f FormFactor) String() string {
	return enumString(f, formFactorNames)
}

// MemoryType is the type of a memory device.
type MemoryType uint8

const (
	MemoryTypeOther              = MemoryType(0x01)
	MemoryTypeUnknown            = MemoryType(0x02)
	MemoryTypeDRAM               = MemoryType(0x03)
	MemoryTypeEDRAM              = MemoryType(0x04)
	MemoryTypeVRAM               = MemoryType(0x05)
	MemoryTypeSRAM               = MemoryType(0x06)
	MemoryTypeRAM                = MemoryType(0x07)
	MemoryTypeROM                = MemoryType(0x08)
	MemoryTypeFlash              = MemoryType(0x09)
	MemoryTypeEEPROM             = MemoryType(0x0A)
	MemoryTypeFEPROM             = MemoryType(0x0B)
	MemoryTypeEPROM              = MemoryType(0x0C)
	MemoryTypeCDRAM              = MemoryType(0x0D)
	MemoryType3DRAM              = MemoryType(0x0E)
	MemoryTypeSDRAM              = MemoryType(0x0F)
	MemoryTypeSGRAM              = MemoryType(0x10)
	MemoryTypeRDRAM              = MemoryType(0x11)
	MemoryTypeDDR                = MemoryType(0x12)
	MemoryTypeDDR2               = MemoryType(0x13)
	MemoryTypeDDR2FBDIMM         = MemoryType(0x14)
	MemoryTypeDDR3               = MemoryType(0x18)
	MemoryTypeFBD2               = MemoryType(0x19)
	MemoryTypeDDR4               = MemoryType(0x1A)
	MemoryTypeLPDDR              = MemoryType(0x1B)
	MemoryTypeLPDDR2             = MemoryType(0x1C)
	MemoryTypeLPDDR3             = MemoryType(0x1D)
	MemoryTypeLPDDR4             = MemoryType(0x1E)
	MemoryTypeLogicalNonVolatile = MemoryType(0x1F)
	MemoryTypeHBM                = MemoryType(0x20)
	MemoryTypeHBM2               = MemoryType(0x21)
	MemoryTypeDDR5               = MemoryType(0x22)
	MemoryTypeLPDDR5             = MemoryType(0x23)
	MemoryTypeHBM3               = MemoryType(0x24)
)

var memoryTypeNames = map[MemoryType]string{
	MemoryTypeOther:              "Other",
	MemoryTypeUnknown:            "Unknown",
	MemoryTypeDRAM:               "DRAM",
	MemoryTypeEDRAM:              "EDRAM",
	MemoryTypeVRAM:               "VRAM",
	MemoryTypeSRAM:               "SRAM",
	MemoryTypeRAM:                "RAM",
	MemoryTypeROM:                "ROM",
	MemoryTypeFlash:              "Flash",
	MemoryTypeEEPROM:             "EEPROM",
	MemoryTypeFEPROM:             "FEPROM",
	MemoryTypeEPROM:              "EPROM",
	MemoryTypeCDRAM:              "CDRAM",
	MemoryType3DRAM:              "3DRAM",
	MemoryTypeSDRAM:              "SDRAM",
	MemoryTypeSGRAM:              "SGRAM",
	MemoryTypeRDRAM:              "RDRAM",
	MemoryTypeDDR:                "DDR",
	MemoryTypeDDR2:               "DDR2",
	MemoryTypeDDR2FBDIMM:         "DDR2 FB-DIMM",
	MemoryTypeDDR3:               "DDR3",
	MemoryTypeFBD2:               "FBD2",
	MemoryTypeDDR4:               "DDR4",
	MemoryTypeLPDDR:              "LPDDR",
	MemoryTypeLPDDR2:             "LPDDR2",
	MemoryTypeLPDDR3:             "LPDDR3",
	MemoryTypeLPDDR4:             "LPDDR4",
	MemoryTypeLogicalNonVolatile: "Logical non-volatile device",
	MemoryTypeHBM:                "HBM",
	MemoryTypeHBM2:               "HBM2",
	MemoryTypeDDR5:               "DDR5",
	MemoryTypeLPDDR5:             "LPDDR5",
	MemoryTypeHBM3:               "HBM3",
}

func (t MemoryType) String() string {
	return enumString(t, memoryTypeNames)
}

// TypeDetail is a set of additional details of a memory device type.
type TypeDetail uint16

// Flags which can be applied to TypeDetail. Bit 0 is reserved.
const (
	TypeDetailOther        = TypeDetail(1 << 1)
	TypeDetailUnknown      = TypeDetail(1 << 2)
	TypeDetailFastPaged    = TypeDetail(1 << 3)
	TypeDetailStaticColumn = TypeDetail(1 << 4)
	TypeDetailPseudoStatic = TypeDetail(1 << 5)
	TypeDetailRAMBUS       = TypeDetail(1 << 6)
	TypeDetailSynchronous  = TypeDetail(1 << 7)
	TypeDetailCMOS         = TypeDetail(1 << 8)
	TypeDetailEDO          = TypeDetail(1 << 9)
	TypeDetailWindowDRAM   = TypeDetail(1 << 10)
	TypeDetailCacheDRAM    = TypeDetail(1 << 11)
	TypeDetailNonVolatile  = TypeDetail(1 << 12)
	TypeDetailRegistered   = TypeDetail(1 << 13)
	TypeDetailUnbuffered   = TypeDetail(1 << 14)
	TypeDetailLRDIMM       = TypeDetail(1 << 15)
)

var typeDetailNames = []flagName{
	{uint64(TypeDetailOther), "Other"},
	{uint64(TypeDetailUnknown), "Unknown"},
	{uint64(TypeDetailFastPaged), "Fast-paged"},
	{uint64(TypeDetailStaticColumn), "Static column"},
	{uint64(TypeDetailPseudoStatic), "Pseudo-static"},
	{uint64(TypeDetailRAMBUS), "RAMBUS"},
	{uint64(TypeDetailSynchronous), "Synchronous"},
	{uint64(TypeDetailCMOS), "CMOS"},
	{uint64(TypeDetailEDO), "EDO"},
	{uint64(TypeDetailWindowDRAM), "Window DRAM"},
	{uint64(TypeDetailCacheDRAM), "Cache DRAM"},
	{uint64(TypeDetailNonVolatile), "Non-volatile"},
	{uint64(TypeDetailRegistered), "Registered (Buffered)"},
	{uint64(TypeDetailUnbuffered), "Unbuffered (Unregistered)"},
	{uint64(TypeDetailLRDIMM), "LRDIMM"},
}

func (d TypeDetail) String() string {
	return flagsString(uint64(d), typeDetailNames)
}

// MemoryTechnology is the technology of a memory device.
type MemoryTechnology uint8

const (
	MemoryTechnologyOther       = MemoryTechnology(0x01)
	MemoryTechnologyUnknown     = MemoryTechnology(0x02)
	MemoryTechnologyDRAM        = MemoryTechnology(0x03)
	MemoryTechnologyNVDIMMN     = MemoryTechnology(0x04)
	MemoryTechnologyNVDIMMF     = MemoryTechnology(0x05)
	MemoryTechnologyNVDIMMP     = MemoryTechnology(0x06)
	MemoryTechnologyIntelOptane = MemoryTechnology(0x07)
)

var memoryTechnologyNames = map[MemoryTechnology]string{
	MemoryTechnologyOther:       "Other",
	MemoryTechnologyUnknown:     "Unknown",
	MemoryTechnologyDRAM:        "DRAM",
	MemoryTechnologyNVDIMMN:     "NVDIMM-N",
	MemoryTechnologyNVDIMMF:     "NVDIMM-F",
	MemoryTechnologyNVDIMMP:     "NVDIMM-P",
	MemoryTechnologyIntelOptane: "Intel Optane persistent memory",
}

func (t MemoryTechnology) String() string {
	return enumString(t, memoryTechnologyNames)
}

// OperatingMode is a set of operating modes supported by a memory device.
type OperatingMode uint16

// Flags which can be applied to OperatingMode. Bit 0 is reserved.
const (
	OperatingModeOther                     = OperatingMode(1 << 1)
	OperatingModeUnknown                   = OperatingMode(1 << 2)
	OperatingModeVolatile                  = OperatingMode(1 << 3)
	OperatingModeByteAccessiblePersistent  = OperatingMode(1 << 4)
	OperatingModeBlockAccessiblePersistent = OperatingMode(1 << 5)
)

var operatingModeNames = []flagName{
	{uint64(OperatingModeOther), "Other"},
	{uint64(OperatingModeUnknown), "Unknown"},
	{uint64(OperatingModeVolatile), "Volatile memory"},
	{uint64(OperatingModeByteAccessiblePersistent), "Byte-accessible persistent memory"},
	{uint64(OperatingModeBlockAccessiblePersistent), "Block-accessible persistent memory"},
}

func (m OperatingMode) String() string {
	return flagsString(uint64(m), operatingModeNames)
}

// PartitionRowPosition is the position of a memory device in a row of
// the partition. Values 1 through 254 are positions.
type PartitionRowPosition uint8

const (
	PartitionRowPositionReserved = PartitionRowPosition(0x00)
	PartitionRowPositionUnknown  = PartitionRowPosition(0xFF)
)

var partitionRowPositionNames = map[PartitionRowPosition]string{
	PartitionRowPositionReserved: "Reserved",
	PartitionRowPositionUnknown:  "Unknown",
}

func (p PartitionRowPosition) String() string {
	if name, ok := partitionRowPositionNames[p]; ok {
		return name
	}
	return fmt.Sprintf("%d", uint8(p))
}
