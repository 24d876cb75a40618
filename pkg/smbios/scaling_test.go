// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/stretchr/testify/require"
)

const (
	kiB = uint64(1) << 10
	miB = uint64(1) << 20
	giB = uint64(1) << 30
	tiB = uint64(1) << 40
)

func TestSetMemoryCapacity(t *testing.T) {
	for _, tc := range []struct {
		name     string
		capacity uint64
		max      uint32
		extended uint64
	}{
		{"zero", 0, 0, 0},
		{"16_GiB", 16 * giB, 16 << 20, 0},
		{"below_2_TiB", 2*tiB - kiB, 0x7FFF_FFFF, 0},
		{"2_TiB", 2 * tiB, 0x8000_0000, 2 * tiB},
		{"3_TiB", 3 * tiB, 0x8000_0000, 3 * tiB},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := smbios.NewPhysicalMemoryArray(0)
			s.SetMemoryCapacity(tc.capacity)
			require.Equal(t, tc.max, s.MaximumCapacity)
			require.Equal(t, tc.extended, s.ExtendedMaximumCapacity)
			require.Equal(t, tc.capacity, s.MemoryCapacity())
		})
	}

	t.Run("reset_extended", func(t *testing.T) {
		s := smbios.NewPhysicalMemoryArray(0)
		s.SetMemoryCapacity(4 * tiB)
		s.SetMemoryCapacity(giB)
		require.Zero(t, s.ExtendedMaximumCapacity)
	})
}

func TestSetMemorySize(t *testing.T) {
	for _, tc := range []struct {
		name     string
		size     uint64
		value    uint16
		extended uint32
	}{
		{"empty_socket", 0, 0, 0},
		{"16.5_MiB", 16*miB + 512*kiB, 0xC200, 0},
		{"32_MiB", 32 * miB, 32, 0},
		{"8_GiB", 8 * giB, 0x2000, 0},
		{"below_threshold", 32*giB - 2*miB, 0x7FFE, 0},
		{"threshold", 32*giB - miB, 0x7FFF, 0x7FFF},
		{"32_GiB", 32 * giB, 0x7FFF, 0x8000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := smbios.NewMemoryDevice(0)
			require.NoError(t, s.SetMemorySize(tc.size))
			require.Equal(t, tc.value, s.Size)
			require.Equal(t, tc.extended, s.ExtendedSize)

			size, ok := s.MemorySize()
			require.True(t, ok)
			require.Equal(t, tc.size, size)
		})
	}
}

func TestSetMemorySizeErrors(t *testing.T) {
	s := smbios.NewMemoryDevice(0)
	require.NoError(t, s.SetMemorySize(64*giB))

	err := s.SetMemorySize(1 << 51)
	require.ErrorAs(t, err, &smbios.ErrValueOverflow{})
	// Nothing is changed on failure.
	require.Equal(t, smbios.MemorySizeUseExtended, s.Size)
	require.Equal(t, uint32(64<<10), s.ExtendedSize)
}

func TestSetMemorySizeUnknown(t *testing.T) {
	s := smbios.NewMemoryDevice(0)
	s.SetMemorySizeUnknown()
	require.Equal(t, uint16(0xFFFF), s.Size)
	_, ok := s.MemorySize()
	require.False(t, ok)
}

func TestSetCacheSize(t *testing.T) {
	for _, tc := range []struct {
		name   string
		size   uint64
		value  uint16
		value2 uint32
	}{
		{"512_KiB", 512 * kiB, 0x0200, 0x0000_0200},
		{"32_MiB", 32 * miB, 0x8200, 0x8000_0200},
		{"64_MiB", 64 * miB, 0x8400, 0x8000_0400},
		{"4_GiB", 4 * giB, 0xFFFF, 0x8001_0000},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := smbios.NewCacheInformation(0)
			require.NoError(t, s.SetMaximumCacheSizeBytes(tc.size))
			require.NoError(t, s.SetInstalledSizeBytes(tc.size))
			require.Equal(t, tc.value, s.MaximumCacheSize)
			require.Equal(t, tc.value2, s.MaximumCacheSize2)
			require.Equal(t, tc.value, s.InstalledSize)
			require.Equal(t, tc.value2, s.InstalledCacheSize2)
		})
	}

	s := smbios.NewCacheInformation(0)
	require.ErrorAs(t, s.SetMaximumCacheSizeBytes(1<<47), &smbios.ErrValueOverflow{})
}

func TestSetAddressRange(t *testing.T) {
	array := smbios.NewMemoryArrayMappedAddress(0)
	array.SetAddressRange(0x1000, 0x1FFF)
	require.Equal(t, smbios.AddressUseExtended, array.StartingAddress)
	require.Equal(t, smbios.AddressUseExtended, array.EndingAddress)
	require.Equal(t, uint64(0x1000), array.ExtendedStartingAddress)
	require.Equal(t, uint64(0x1FFF), array.ExtendedEndingAddress)

	device := smbios.NewMemoryDeviceMappedAddress(0)
	device.SetAddressRange(0, 0xFFFF_FFFF_FFFF)
	require.Equal(t, smbios.AddressUseExtended, device.StartingAddress)
	require.Equal(t, uint64(0xFFFF_FFFF_FFFF), device.ExtendedEndingAddress)
}

func TestSetMemorySpeed(t *testing.T) {
	s := smbios.NewMemoryDevice(0)
	s.SetMemorySpeed(4800)
	s.SetConfiguredSpeed(4400)
	require.Equal(t, uint16(4800), s.Speed)
	require.Zero(t, s.ExtendedSpeed)
	require.Equal(t, uint16(4400), s.ConfiguredMemorySpeed)
	require.Zero(t, s.ExtendedConfiguredMemorySpeed)

	s.SetMemorySpeed(70000)
	s.SetConfiguredSpeed(0xFFFF)
	require.Equal(t, smbios.SpeedUseExtended, s.Speed)
	require.Equal(t, uint32(70000), s.ExtendedSpeed)
	require.Equal(t, smbios.SpeedUseExtended, s.ConfiguredMemorySpeed)
	require.Equal(t, uint32(0xFFFF), s.ExtendedConfiguredMemorySpeed)
}
