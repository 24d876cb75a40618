// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"encoding/binary"
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/linuxboot/smbios/pkg/smbios/check"
	"github.com/linuxboot/smbios/pkg/smbios/internal/unittest"
	"github.com/stretchr/testify/require"
)

func TestBIOSInformation(t *testing.T) {
	s := smbios.NewBIOSInformation(257)
	require.NoError(t, s.SetVendor("System BIOS Vendor"))
	require.NoError(t, s.SetBIOSVersion("4.04"))
	require.NoError(t, s.SetBIOSReleaseDate("00/00/0000"))
	require.NoError(t, s.Validate())

	unittest.Serialize(t, s, unittest.Concat(
		[]byte{
			0, 0x14, 0x01, 0x01,
			1, 2, 0, 0, 3, 0,
			0, 0, 0, 0, 0, 0, 0, 0,
			0, 0,
		},
		unittest.Strings("System BIOS Vendor", "4.04", "00/00/0000"),
	))
}

func TestSystemInformation(t *testing.T) {
	s := smbios.NewSystemInformation(255)
	require.NoError(t, s.SetManufacturer("OEM1"))
	require.NoError(t, s.SetProductName("Rivos system"))
	require.NoError(t, s.SetVersion("Gen0"))
	require.NoError(t, s.SetSerialNumber("012345"))
	require.NoError(t, s.SetSKUNumber("SKU1"))
	require.NoError(t, s.SetFamily("Family"))
	s.SetWakeupType(smbios.WakeupTypeACPowerRestored)

	unittest.Serialize(t, s, unittest.Concat(
		[]byte{
			1, 0x1B, 0xFF, 0x00,
			1, 2, 3, 4,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
			8, 5, 6,
		},
		unittest.Strings("OEM1", "Rivos system", "Gen0", "012345", "SKU1", "Family"),
	))
}

func TestSystemInformationUUID(t *testing.T) {
	s := smbios.NewSystemInformation(1)
	uuid, err := smbios.ParseUUID("00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)
	s.SetUUID(uuid)

	out := smbios.Marshal(s)
	require.Equal(t, []byte{
		0x33, 0x22, 0x11, 0x00, 0x55, 0x44, 0x77, 0x66,
		0x88, 0x99, 0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF,
	}, out[8:24])
	require.Equal(t, byte(smbios.WakeupTypeUnknown), out[24])
	require.Equal(t, []byte{0, 0}, out[smbios.SystemInformationLength:])
}

func TestProcessorInformation(t *testing.T) {
	s := smbios.NewProcessorInformation(5)
	require.NoError(t, s.SetSocketDesignation("Socket"))
	s.SetProcessorType(smbios.ProcessorTypeCentralProcessor)
	require.NoError(t, s.SetProcessorManufacturer("Manuf"))
	s.SetProcessorFamily(smbios.ProcessorFamilyObtainFromFamily2)
	s.SetProcessorID(0x1234_5678_90ab_cdef)
	require.NoError(t, s.SetProcessorVersion("Version"))
	s.SetExternalClock(1)
	s.SetProcessorFamily2(smbios.ProcessorFamily2RISCVRV64)

	unittest.Serialize(t, s, unittest.Concat(
		[]byte{
			4, 0x32, 5, 0,
			1, 3, 0xFE, 2,
			0xEF, 0xCD, 0xAB, 0x90, 0x78, 0x56, 0x34, 0x12,
			3, 0, 1, 0, 0, 0, 0, 0, 0, 2,
			0, 0, 0, 0, 0, 0,
			0, 0, 0,
			0, 0, 0,
			0, 0,
			1, 2,
			0, 0, 0, 0, 0, 0, 0, 0,
		},
		unittest.Strings("Socket", "Manuf", "Version"),
	))
}

func TestProcessorInformationDefaults(t *testing.T) {
	s := smbios.NewProcessorInformation(0)
	require.Equal(t, smbios.ProcessorTypeUnknown, s.ProcessorType)
	require.Equal(t, smbios.ProcessorFamilyUnknown, s.ProcessorFamily)
	require.Equal(t, smbios.ProcessorUpgradeUnknown, s.ProcessorUpgrade)
	require.Equal(t, smbios.ProcessorFamily2Reserved, s.ProcessorFamily2)
	require.Equal(t, smbios.Handle(0), s.L1CacheHandle)
}

func TestCacheInformation(t *testing.T) {
	s := smbios.NewCacheInformation(0x10)
	require.NoError(t, s.SetSocketDesignation("L2"))
	var cfg smbios.CacheConfiguration
	require.NoError(t, cfg.SetLevel(2))
	cfg.SetEnabled(true)
	require.NoError(t, cfg.SetOperationalMode(smbios.CacheOperationalModeWriteBack))
	s.SetCacheConfiguration(cfg)
	require.NoError(t, s.SetMaximumCacheSizeBytes(512<<10))
	require.NoError(t, s.SetInstalledSizeBytes(512<<10))
	s.SetSystemCacheType(smbios.SystemCacheTypeUnified)
	s.SetAssociativity(smbios.AssociativitySetAssociative8Way)

	unittest.Serialize(t, s, unittest.Concat(
		[]byte{
			7, 0x1B, 0x10, 0,
			1,
			0x81, 0x01,
			0x00, 0x02,
			0x00, 0x02,
			0x02, 0x00,
			0x02, 0x00,
			0,
			2, 5, 7,
			0x00, 0x02, 0x00, 0x00,
			0x00, 0x02, 0x00, 0x00,
		},
		unittest.Strings("L2"),
	))
}

func TestSystemSlotsDefaults(t *testing.T) {
	s := smbios.NewSystemSlots(3)
	unittest.Serialize(t, s, []byte{
		9, 0x13, 3, 0,
		0, 2, 2, 2, 2,
		0, 0,
		0, 0,
		0, 0,
		0, 0, 0, 0,
		0, 0,
	})
}

func TestSystemSlots(t *testing.T) {
	s := smbios.NewSystemSlots(3)
	require.NoError(t, s.SetSlotDesignation("PCIe0"))
	s.SetSlotType(smbios.SlotTypePCIExpressGen5x16)
	s.SetSlotDataBusWidth(smbios.SlotWidthX16)
	s.SetCurrentUsage(smbios.CurrentUsageInUse)
	s.SetSlotLength(smbios.SlotLengthLong)
	s.SetSlotID(0x0102)
	s.SetSlotCharacteristics1(smbios.SlotCharacteristics1Provides3_3V)
	s.SetSlotCharacteristics2(smbios.SlotCharacteristics2PMESupported | smbios.SlotCharacteristics2HotPlugSupported)
	s.SetSegmentGroupNumber(1)
	s.SetBusNumber(0x80)
	s.SetDeviceFunctionNumber(0x08)
	s.SetDataBusWidth(0x0D)

	unittest.Serialize(t, s, unittest.Concat(
		[]byte{
			9, 0x13, 3, 0,
			1, 0xC4, 0x0D, 4, 4,
			0x02, 0x01,
			0x04, 0x03,
			0x01, 0x00,
			0x80, 0x08, 0x0D, 0,
		},
		unittest.Strings("PCIe0"),
	))
}

func TestPhysicalMemoryArray(t *testing.T) {
	s := smbios.NewPhysicalMemoryArray(10)
	s.SetLocation(smbios.ArrayLocationSystemBoard)
	s.SetUse(smbios.ArrayUseSystemMemory)
	s.SetNumberOfMemoryDevices(16)
	s.SetMemoryCapacity(3 << 40)

	unittest.Serialize(t, s, []byte{
		16, 0x17, 10, 0,
		3, 3, 2,
		0, 0, 0, 0x80,
		0, 0,
		16, 0,
		0, 0, 0, 0, 0, 3, 0, 0,
		0, 0,
	})
}

func TestMemoryDevice(t *testing.T) {
	s := smbios.NewMemoryDevice(0x11)
	s.SetPhysicalMemoryArrayHandle(10)
	s.SetMemoryErrorInformationHandle(smbios.HandleNotProvided)
	s.SetFormFactor(smbios.FormFactorDIMM)
	s.SetMemoryType(smbios.MemoryTypeDDR5)
	require.NoError(t, s.SetMemorySize(64<<30))
	require.NoError(t, s.SetDeviceLocator("DIMM0"))
	require.NoError(t, s.SetManufacturer("Vendor"))

	out := smbios.Marshal(s)
	require.Len(t, out, smbios.MemoryDeviceLength+len(unittest.Strings("DIMM0", "Vendor")))
	require.Equal(t, []byte{17, 0x64, 0x11, 0}, out[:4])
	require.Equal(t, []byte{10, 0, 0xFE, 0xFF}, out[4:8])
	// Size
	require.Equal(t, []byte{0xFF, 0x7F}, out[0x0C:0x0E])
	require.Equal(t, byte(smbios.FormFactorDIMM), out[0x0E])
	// Device Locator and Bank Locator
	require.Equal(t, []byte{1, 0}, out[0x10:0x12])
	require.Equal(t, byte(smbios.MemoryTypeDDR5), out[0x12])
	// Manufacturer
	require.Equal(t, byte(2), out[0x17])
	// Extended Size: 64 GiB in megabytes
	require.Equal(t, []byte{0x00, 0x00, 0x01, 0x00}, out[0x1C:0x20])
	require.Equal(t, byte(smbios.MemoryTechnologyUnknown), out[0x28])
	require.Equal(t, unittest.Strings("DIMM0", "Vendor"), out[smbios.MemoryDeviceLength:])
}

func TestMemoryMappedAddresses(t *testing.T) {
	t.Run("array", func(t *testing.T) {
		s := smbios.NewMemoryArrayMappedAddress(0x13)
		s.SetMemoryArrayHandle(10)
		s.SetPartitionWidth(4)
		s.SetAddressRange(0x1_0000_0000, 0x2_FFFF_FFFF)

		unittest.Serialize(t, s, []byte{
			19, 0x1F, 0x13, 0,
			0xFF, 0xFF, 0xFF, 0xFF,
			0xFF, 0xFF, 0xFF, 0xFF,
			10, 0,
			4,
			0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00,
			0xFF, 0xFF, 0xFF, 0xFF, 0x02, 0x00, 0x00, 0x00,
			0, 0,
		})
	})

	t.Run("device", func(t *testing.T) {
		s := smbios.NewMemoryDeviceMappedAddress(0x14)
		s.SetMemoryDeviceHandle(0x11)
		s.SetMemoryArrayMappedAddressHandle(0x13)
		s.SetAddressRange(0, 0x3FFF_FFFF)

		unittest.Serialize(t, s, []byte{
			20, 0x23, 0x14, 0,
			0xFF, 0xFF, 0xFF, 0xFF,
			0xFF, 0xFF, 0xFF, 0xFF,
			0x11, 0,
			0x13, 0,
			0xFF, 0, 0,
			0, 0, 0, 0, 0, 0, 0, 0,
			0xFF, 0xFF, 0xFF, 0x3F, 0, 0, 0, 0,
			0, 0,
		})
	})
}

func TestTPMDevice(t *testing.T) {
	s := smbios.NewTPMDevice(0x2B)
	s.SetVendorID(smbios.TPMVendorID{'I', 'F', 'X', 0})
	s.SetMajorSpecVersion(2)
	s.SetMinorSpecVersion(0)
	s.SetFirmwareVersion1(0x00070055)
	require.NoError(t, s.SetDescription("TPM 2.0"))
	s.SetCharacteristics(smbios.TPMDeviceCharacteristicsFamilyConfigurableViaFirmwareUpdate)

	unittest.Serialize(t, s, unittest.Concat(
		[]byte{
			43, 0x1F, 0x2B, 0,
			'I', 'F', 'X', 0,
			2, 0,
			0x55, 0x00, 0x07, 0x00,
			0, 0, 0, 0,
			1,
			0x08, 0, 0, 0, 0, 0, 0, 0,
			0, 0, 0, 0,
		},
		unittest.Strings("TPM 2.0"),
	))
	require.Equal(t, "IFX", s.VendorID.String())
}

func TestProcessorAdditionalInformation(t *testing.T) {
	s := smbios.NewProcessorAdditionalInformation(0x2C)
	s.SetReferencedHandle(5)
	s.SetRevision(0x0100)
	s.SetHartID(smbios.NewUint128(3))
	s.SetBootHart(1)
	s.SetMachineVendorID(smbios.Uint128{Lo: 0x489, Hi: 1})

	out := smbios.Marshal(s)
	require.Len(t, out, 0x74+2)
	require.Equal(t, []byte{44, 0x74, 0x2C, 0, 5, 0, 0x00, 0x01, 0}, out[:9])
	require.Equal(t, uint128LE(3, 0), out[9:25])
	require.Equal(t, byte(1), out[25])
	require.Equal(t, uint128LE(0x489, 1), out[26:42])
	// XLEN, MXLEN, reserved, SXLEN, UXLEN
	require.Equal(t, []byte{2, 2, 0, 2, 2}, out[0x6F:0x74])
	require.Equal(t, []byte{0, 0}, out[0x74:])
}

func uint128LE(lo, hi uint64) []byte {
	b := binary.LittleEndian.AppendUint64(nil, lo)
	return binary.LittleEndian.AppendUint64(b, hi)
}

func TestEndOfTable(t *testing.T) {
	unittest.Serialize(t, smbios.NewEndOfTable(0xFFFF), []byte{127, 4, 0xFF, 0xFF, 0, 0})
}

func TestValidateStringIndexes(t *testing.T) {
	s := smbios.NewBIOSInformation(0)
	require.NoError(t, s.SetVendor("v"))
	s.BIOSVersion = 2
	s.BIOSReleaseDate = 3

	err := s.Validate()
	require.Error(t, err)
	var errIndex *check.ErrStringIndexOutOfRange
	require.ErrorAs(t, err, &errIndex)
	require.Equal(t, "BIOSVersion", errIndex.Field)
	require.ErrorContains(t, err, "BIOSReleaseDate")
}

func TestValidateHeader(t *testing.T) {
	s := smbios.NewCacheInformation(0)
	s.Header.Length = 0x12
	require.ErrorContains(t, s.Validate(), "invalid structure length")
}

func TestSetStringOverflow(t *testing.T) {
	s := smbios.NewSystemInformation(0)
	for i := 0; i < 255; i++ {
		require.NoError(t, s.SetFamily("f"))
	}
	require.Equal(t, smbios.StringIndex(255), s.Family)

	err := s.SetFamily("f")
	require.ErrorAs(t, err, &smbios.ErrTooManyStrings{})
	require.ErrorContains(t, err, "Family")
	require.Equal(t, smbios.StringIndex(255), s.Family)
}

func TestPrettyString(t *testing.T) {
	s := smbios.NewBIOSInformation(257)
	require.NoError(t, s.SetVendor("System BIOS Vendor"))

	out := s.PrettyString(0, true)
	require.Contains(t, out, "----BIOS Information----")
	require.Contains(t, out, `--Vendor-- 0x01 "System BIOS Vendor"`)
	require.Contains(t, out, "--BIOS Version-- 0x00 (no string)")
	require.Contains(t, out, "--BIOS ROM Size-- 0x00")
	require.Contains(t, out, "--Handle-- 0x0101 (257)")
}
