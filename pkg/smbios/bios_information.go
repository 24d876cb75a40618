// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// BIOSInformation is the structure of type 0. Exactly one should be
// present in a table.
//
// PrettyString: BIOS Information
type BIOSInformation struct {
	Header `type:"consts.TypeBIOSInformation" length:"0x14"`

	Vendor      StringIndex
	BIOSVersion StringIndex

	// BIOSStartingAddressSegment is the segment of the runtime BIOS image
	// in the legacy region. It is zero on UEFI systems.
	BIOSStartingAddressSegment uint16

	BIOSReleaseDate StringIndex

	// BIOSROMSize is the size of the physical device containing the BIOS:
	// (n+1)*64K. 0xFF means the size is in the extended field (which
	// this version of the structure does not have).
	//
	// PrettyString: BIOS ROM Size
	BIOSROMSize uint8

	BIOSCharacteristics     BIOSCharacteristics
	BIOSCharacteristicsExt1 BIOSCharacteristicsExt1
	BIOSCharacteristicsExt2 BIOSCharacteristicsExt2

	strings StringTable
}
