// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

// BIOSCharacteristics defines which functions the BIOS supports.
type BIOSCharacteristics uint64

// Flags which can be applied to BIOSCharacteristics.
const (
	BIOSCharacteristicsReserved                = BIOSCharacteristics(1 << 1)
	BIOSCharacteristicsUnknown                 = BIOSCharacteristics(1 << 2)
	BIOSCharacteristicsNotSupported            = BIOSCharacteristics(1 << 3)
	BIOSCharacteristicsISASupported            = BIOSCharacteristics(1 << 4)
	BIOSCharacteristicsMCASupported            = BIOSCharacteristics(1 << 5)
	BIOSCharacteristicsEISASupported           = BIOSCharacteristics(1 << 6)
	BIOSCharacteristicsPCISupported            = BIOSCharacteristics(1 << 7)
	BIOSCharacteristicsPCCardSupported         = BIOSCharacteristics(1 << 8)
	BIOSCharacteristicsPnPSupported            = BIOSCharacteristics(1 << 9)
	BIOSCharacteristicsAPMSupported            = BIOSCharacteristics(1 << 10)
	BIOSCharacteristicsUpgradeable             = BIOSCharacteristics(1 << 11)
	BIOSCharacteristicsShadowingAllowed        = BIOSCharacteristics(1 << 12)
	BIOSCharacteristicsVLVESASupported         = BIOSCharacteristics(1 << 13)
	BIOSCharacteristicsESCDAvailable           = BIOSCharacteristics(1 << 14)
	BIOSCharacteristicsBootFromCDSupported     = BIOSCharacteristics(1 << 15)
	BIOSCharacteristicsSelectableBootSupported = BIOSCharacteristics(1 << 16)
	BIOSCharacteristicsSocketedROM             = BIOSCharacteristics(1 << 17)
	BIOSCharacteristicsBootFromPCCardSupported = BIOSCharacteristics(1 << 18)
	BIOSCharacteristicsEDDSupported            = BIOSCharacteristics(1 << 19)
)

var biosCharacteristicsNames = []flagName{
	{uint64(BIOSCharacteristicsReserved), "Reserved"},
	{uint64(BIOSCharacteristicsUnknown), "Unknown"},
	{uint64(BIOSCharacteristicsNotSupported), "NotSupported"},
	{uint64(BIOSCharacteristicsISASupported), "ISA"},
	{uint64(BIOSCharacteristicsMCASupported), "MCA"},
	{uint64(BIOSCharacteristicsEISASupported), "EISA"},
	{uint64(BIOSCharacteristicsPCISupported), "PCI"},
	{uint64(BIOSCharacteristicsPCCardSupported), "PCCard"},
	{uint64(BIOSCharacteristicsPnPSupported), "PnP"},
	{uint64(BIOSCharacteristicsAPMSupported), "APM"},
	{uint64(BIOSCharacteristicsUpgradeable), "Upgradeable"},
	{uint64(BIOSCharacteristicsShadowingAllowed), "Shadowing"},
	{uint64(BIOSCharacteristicsVLVESASupported), "VLVESA"},
	{uint64(BIOSCharacteristicsESCDAvailable), "ESCD"},
	{uint64(BIOSCharacteristicsBootFromCDSupported), "BootFromCD"},
	{uint64(BIOSCharacteristicsSelectableBootSupported), "SelectableBoot"},
	{uint64(BIOSCharacteristicsSocketedROM), "SocketedROM"},
	{uint64(BIOSCharacteristicsBootFromPCCardSupported), "BootFromPCCard"},
	{uint64(BIOSCharacteristicsEDDSupported), "EDD"},
}

func (c BIOSCharacteristics) String() string {
	return flagsString(uint64(c), biosCharacteristicsNames)
}

// BIOSCharacteristicsExt1 is the first BIOS Characteristics Extension Byte.
type BIOSCharacteristicsExt1 uint8

// Flags which can be applied to BIOSCharacteristicsExt1.
const (
	BIOSCharacteristicsExt1ACPISupported         = BIOSCharacteristicsExt1(1 << 0)
	BIOSCharacteristicsExt1USBLegacySupported    = BIOSCharacteristicsExt1(1 << 1)
	BIOSCharacteristicsExt1AGPSupported          = BIOSCharacteristicsExt1(1 << 2)
	BIOSCharacteristicsExt1SmartBatterySupported = BIOSCharacteristicsExt1(1 << 7)
)

var biosCharacteristicsExt1Names = []flagName{
	{uint64(BIOSCharacteristicsExt1ACPISupported), "ACPI"},
	{uint64(BIOSCharacteristicsExt1USBLegacySupported), "USBLegacy"},
	{uint64(BIOSCharacteristicsExt1AGPSupported), "AGP"},
	{uint64(BIOSCharacteristicsExt1SmartBatterySupported), "SmartBattery"},
}

func (c BIOSCharacteristicsExt1) String() string {
	return flagsString(uint64(c), biosCharacteristicsExt1Names)
}

// BIOSCharacteristicsExt2 is the second BIOS Characteristics Extension Byte.
type BIOSCharacteristicsExt2 uint8

// Flags which can be applied to BIOSCharacteristicsExt2.
const (
	BIOSCharacteristicsExt2BIOSBootSpecSupported       = BIOSCharacteristicsExt2(1 << 0)
	BIOSCharacteristicsExt2FnKeyNetworkBootSupported   = BIOSCharacteristicsExt2(1 << 1)
	BIOSCharacteristicsExt2TargetedContentDistribution = BIOSCharacteristicsExt2(1 << 2)
	BIOSCharacteristicsExt2UEFISupported               = BIOSCharacteristicsExt2(1 << 3)
	BIOSCharacteristicsExt2VirtualMachine              = BIOSCharacteristicsExt2(1 << 4)
	BIOSCharacteristicsExt2ManufacturingModeSupported  = BIOSCharacteristicsExt2(1 << 5)
	BIOSCharacteristicsExt2ManufacturingModeEnabled    = BIOSCharacteristicsExt2(1 << 6)
)

var biosCharacteristicsExt2Names = []flagName{
	{uint64(BIOSCharacteristicsExt2BIOSBootSpecSupported), "BIOSBootSpec"},
	{uint64(BIOSCharacteristicsExt2FnKeyNetworkBootSupported), "FnKeyNetworkBoot"},
	{uint64(BIOSCharacteristicsExt2TargetedContentDistribution), "TargetedContentDistribution"},
	{uint64(BIOSCharacteristicsExt2UEFISupported), "UEFI"},
	{uint64(BIOSCharacteristicsExt2VirtualMachine), "VirtualMachine"},
	{uint64(BIOSCharacteristicsExt2ManufacturingModeSupported), "ManufacturingModeSupported"},
	{uint64(BIOSCharacteristicsExt2ManufacturingModeEnabled), "ManufacturingModeEnabled"},
}

func (c BIOSCharacteristicsExt2) String() string {
	return flagsString(uint64(c), biosCharacteristicsExt2Names)
}

// WakeupType identifies the event that caused the system to power up.
type WakeupType uint8

//noinspection GoSnakeCaseUsage
const (
	WakeupTypeReserved        = WakeupType(0x00)
	WakeupTypeOther           = WakeupType(0x01)
	WakeupTypeUnknown         = WakeupType(0x02)
	WakeupTypeAPMTimer        = WakeupType(0x03)
	WakeupTypeModemRing       = WakeupType(0x04)
	WakeupTypeLANRemote       = WakeupType(0x05)
	WakeupTypePowerSwitch     = WakeupType(0x06)
	WakeupTypePCIPME          = WakeupType(0x07)
	WakeupTypeACPowerRestored = WakeupType(0x08)
)

var wakeupTypeNames = map[WakeupType]string{
	WakeupTypeReserved:        "Reserved",
	WakeupTypeOther:           "Other",
	WakeupTypeUnknown:         "Unknown",
	WakeupTypeAPMTimer:        "APM Timer",
	WakeupTypeModemRing:       "Modem Ring",
	WakeupTypeLANRemote:       "LAN Remote",
	WakeupTypePowerSwitch:     "Power Switch",
	WakeupTypePCIPME:          "PCI PME#",
	WakeupTypeACPowerRestored: "AC Power Restored",
}

func (t WakeupType) String() string {
	return enumString(t, wakeupTypeNames)
}
