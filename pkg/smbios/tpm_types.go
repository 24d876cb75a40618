// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

// TPMDeviceCharacteristics is a set of TPM device characteristics.
type TPMDeviceCharacteristics uint64

// Flags which can be applied to TPMDeviceCharacteristics. Bits 0 and 1
// are reserved.
const (
	TPMDeviceCharacteristicsNotSupported                          = TPMDeviceCharacteristics(1 << 2)
	TPMDeviceCharacteristicsFamilyConfigurableViaFirmwareUpdate   = TPMDeviceCharacteristics(1 << 3)
	TPMDeviceCharacteristicsFamilyConfigurableViaPlatformSoftware = TPMDeviceCharacteristics(1 << 4)
	TPMDeviceCharacteristicsFamilyConfigurableViaOEMProprietary   = TPMDeviceCharacteristics(1 << 5)
)

var tpmDeviceCharacteristicsNames = []flagName{
	{uint64(TPMDeviceCharacteristicsNotSupported), "TPM Device Characteristics are not supported"},
	{uint64(TPMDeviceCharacteristicsFamilyConfigurableViaFirmwareUpdate), "Family configurable via firmware update"},
	{uint64(TPMDeviceCharacteristicsFamilyConfigurableViaPlatformSoftware), "Family configurable via platform software support"},
	{uint64(TPMDeviceCharacteristicsFamilyConfigurableViaOEMProprietary), "Family configurable via OEM proprietary mechanism"},
}

func (c TPMDeviceCharacteristics) String() string {
	return flagsString(uint64(c), tpmDeviceCharacteristicsNames)
}

// TPMVendorID is the 4-byte vendor ID of a TPM, as defined in the TCG
// Vendor ID Registry (for example "IFX\x00").
type TPMVendorID [4]byte

func (id TPMVendorID) String() string {
	end := len(id)
	for end > 0 && id[end-1] == 0 {
		end--
	}
	return string(id[:end])
}
