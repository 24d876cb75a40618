// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package consts

// Structure type ids.
const (
	TypeBIOSInformation                = 0
	TypeSystemInformation              = 1
	TypeProcessorInformation           = 4
	TypeCacheInformation               = 7
	TypeSystemSlots                    = 9
	TypeOEMStrings                     = 11
	TypePhysicalMemoryArray            = 16
	TypeMemoryDevice                   = 17
	TypeMemoryArrayMappedAddress       = 19
	TypeMemoryDeviceMappedAddress      = 20
	TypeSystemBootInformation          = 32
	TypeTPMDevice                      = 43
	TypeProcessorAdditionalInformation = 44
	TypeEndOfTable                     = 127
)

// OEMStringsLength is the length of the fixed part of the OEM Strings
// structure: the header and the count of strings.
const OEMStringsLength = HeaderLength + 1

// SystemBootReservedLength is the amount of reserved bytes between the
// header and the boot status of the System Boot Information structure.
const SystemBootReservedLength = 6
