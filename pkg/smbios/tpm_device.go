// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// TPMDevice is the structure of type 43.
//
// PrettyString: TPM Device
type TPMDevice struct {
	Header `type:"consts.TypeTPMDevice" length:"0x1F"`

	// PrettyString: Vendor ID
	VendorID TPMVendorID

	MajorSpecVersion uint8
	MinorSpecVersion uint8

	// FirmwareVersion1 and FirmwareVersion2 are vendor-defined.
	//
	// PrettyString: Firmware Version 1
	FirmwareVersion1 uint32
	// PrettyString: Firmware Version 2
	FirmwareVersion2 uint32

	Description     StringIndex
	Characteristics TPMDeviceCharacteristics

	// PrettyString: OEM-defined
	OEMDefined uint32

	strings StringTable
}
