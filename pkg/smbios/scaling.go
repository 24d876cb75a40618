// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

const (
	kiB = uint64(1) << 10
	miB = uint64(1) << 20
	giB = uint64(1) << 30
	tiB = uint64(1) << 40
)

const (
	// MaximumCapacityUseExtended is the value of
	// PhysicalMemoryArray.MaximumCapacity which means the capacity is
	// in ExtendedMaximumCapacity.
	MaximumCapacityUseExtended = uint32(0x8000_0000)

	// MemorySizeUseExtended is the value of MemoryDevice.Size which
	// means the size is in ExtendedSize.
	MemorySizeUseExtended = uint16(0x7FFF)

	// MemorySizeUnknown is the value of MemoryDevice.Size which means
	// the size is unknown.
	MemorySizeUnknown = uint16(0xFFFF)

	// MemorySizeGranularityKiB is the bit of MemoryDevice.Size which
	// means the size is in kilobytes (instead of megabytes).
	MemorySizeGranularityKiB = uint16(0x8000)

	// AddressUseExtended is the value of the 32-bit address fields of
	// the mapped address structures which means the range is in the
	// 64-bit extended fields.
	AddressUseExtended = uint32(0xFFFF_FFFF)

	// SpeedUseExtended is the value of MemoryDevice.Speed and
	// MemoryDevice.ConfiguredMemorySpeed which means the speed is in the
	// corresponding extended field.
	SpeedUseExtended = uint16(0xFFFF)

	// CacheSizeUseExtended is the value of CacheInformation.MaximumCacheSize
	// and CacheInformation.InstalledSize which means the size is in the
	// "2" field.
	CacheSizeUseExtended = uint16(0xFFFF)

	maxExtendedMemorySizeMiB = uint64(0x7FFF_FFFF)
	maxExtendedCacheUnits    = uint64(0x7FFF_FFFF)
)

// SetMemoryCapacity sets the maximum memory capacity of the array.
// Capacities of 2 TiB and above do not fit into MaximumCapacity (which is
// in kilobytes), so they are stored in ExtendedMaximumCapacity.
func (s *PhysicalMemoryArray) SetMemoryCapacity(capacity uint64) {
	if capacity >= 2*tiB {
		s.MaximumCapacity = MaximumCapacityUseExtended
		s.ExtendedMaximumCapacity = capacity
		return
	}
	s.MaximumCapacity = uint32(capacity / kiB)
	s.ExtendedMaximumCapacity = 0
}

// MemoryCapacity returns the maximum memory capacity in bytes.
func (s *PhysicalMemoryArray) MemoryCapacity() uint64 {
	if s.MaximumCapacity == MaximumCapacityUseExtended {
		return s.ExtendedMaximumCapacity
	}
	return uint64(s.MaximumCapacity) * kiB
}

// SetMemorySize sets the size of the memory device:
// * sizes of 32 GiB - 1 MiB and above are stored in ExtendedSize (in
// megabytes) and Size is set to 0x7FFF;
// * sizes below 32 MiB which are not a multiple of 1 MiB are stored in
// kilobytes (bit 15 of Size is set);
// * other sizes are stored in megabytes.
//
// Zero means "no device installed in the socket".
func (s *MemoryDevice) SetMemorySize(size uint64) error {
	switch {
	case size >= 32*giB-miB:
		sizeMiB := size / miB
		if sizeMiB > maxExtendedMemorySizeMiB {
			return ErrValueOverflow{
				Field: "Extended Size",
				Value: size,
				Max:   maxExtendedMemorySizeMiB * miB,
			}
		}
		s.Size = MemorySizeUseExtended
		s.ExtendedSize = uint32(sizeMiB)
		return nil
	case size < 32*miB && size%miB != 0:
		s.Size = MemorySizeGranularityKiB | uint16(size/kiB)
	default:
		s.Size = uint16(size / miB)
	}
	s.ExtendedSize = 0
	return nil
}

// SetMemorySizeUnknown marks the size of the memory device as unknown.
func (s *MemoryDevice) SetMemorySizeUnknown() {
	s.Size = MemorySizeUnknown
}

// MemorySize returns the size of the memory device in bytes. ok is false
// if the size is unknown.
func (s *MemoryDevice) MemorySize() (size uint64, ok bool) {
	switch {
	case s.Size == MemorySizeUnknown:
		return 0, false
	case s.Size == MemorySizeUseExtended:
		return uint64(s.ExtendedSize&0x7FFF_FFFF) * miB, true
	case s.Size&MemorySizeGranularityKiB != 0:
		return uint64(s.Size&^MemorySizeGranularityKiB) * kiB, true
	}
	return uint64(s.Size) * miB, true
}

// SetMemorySpeed sets the maximal speed of the memory device in MT/s.
// Speeds of 65535 MT/s and above are stored only in ExtendedSpeed.
// Zero means the speed is unknown.
func (s *MemoryDevice) SetMemorySpeed(mts uint32) {
	s.Speed, s.ExtendedSpeed = encodeSpeed(mts)
}

// SetConfiguredSpeed sets the configured speed of the memory device in
// MT/s. It is encoded the same way as in SetMemorySpeed.
func (s *MemoryDevice) SetConfiguredSpeed(mts uint32) {
	s.ConfiguredMemorySpeed, s.ExtendedConfiguredMemorySpeed = encodeSpeed(mts)
}

func encodeSpeed(mts uint32) (uint16, uint32) {
	if mts >= uint32(SpeedUseExtended) {
		return SpeedUseExtended, mts
	}
	return uint16(mts), 0
}

// encodeCacheSize returns the values of a cache size field and its "2"
// counterpart. Bit 15 (bit 31 of the "2" field) selects 64K granularity
// instead of 1K granularity. Sizes of 2047 MiB and above are stored only
// in the "2" field.
func encodeCacheSize(field string, size uint64) (uint16, uint32, error) {
	kib := size / kiB
	if size < 2047*miB {
		var v uint16
		if kib <= 0x7FFF {
			v = uint16(kib)
		} else {
			v = 0x8000 | uint16(kib/64)
		}
		return v, uint32(v&0x7FFF) | uint32(v&0x8000)<<16, nil
	}

	units := kib / 64
	if units > maxExtendedCacheUnits {
		return 0, 0, ErrValueOverflow{
			Field: field,
			Value: size,
			Max:   maxExtendedCacheUnits * 64 * kiB,
		}
	}
	return CacheSizeUseExtended, 1<<31 | uint32(units), nil
}

// SetMaximumCacheSizeBytes sets MaximumCacheSize and MaximumCacheSize2.
func (s *CacheInformation) SetMaximumCacheSizeBytes(size uint64) error {
	v, v2, err := encodeCacheSize("Maximum Cache Size 2", size)
	if err != nil {
		return err
	}
	s.MaximumCacheSize, s.MaximumCacheSize2 = v, v2
	return nil
}

// SetInstalledSizeBytes sets InstalledSize and InstalledCacheSize2.
func (s *CacheInformation) SetInstalledSizeBytes(size uint64) error {
	v, v2, err := encodeCacheSize("Installed Cache Size 2", size)
	if err != nil {
		return err
	}
	s.InstalledSize, s.InstalledCacheSize2 = v, v2
	return nil
}

// SetAddressRange sets the physical address range (in bytes) the memory
// array is mapped to. Only the extended fields are used.
func (s *MemoryArrayMappedAddress) SetAddressRange(start, end uint64) {
	s.StartingAddress = AddressUseExtended
	s.EndingAddress = AddressUseExtended
	s.ExtendedStartingAddress = start
	s.ExtendedEndingAddress = end
}

// SetAddressRange sets the physical address range (in bytes) the memory
// device is mapped to. Only the extended fields are used.
func (s *MemoryDeviceMappedAddress) SetAddressRange(start, end uint64) {
	s.StartingAddress = AddressUseExtended
	s.EndingAddress = AddressUseExtended
	s.ExtendedStartingAddress = start
	s.ExtendedEndingAddress = end
}
