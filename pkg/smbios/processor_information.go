// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// ProcessorInformation is the structure of type 4. One structure is
// present for each processor socket.
//
// PrettyString: Processor Information
type ProcessorInformation struct {
	Header `type:"consts.TypeProcessorInformation" length:"0x32"`

	SocketDesignation StringIndex
	ProcessorType     ProcessorType   `default:"ProcessorTypeUnknown"`
	ProcessorFamily   ProcessorFamily `default:"ProcessorFamilyUnknown"`

	ProcessorManufacturer StringIndex

	// ProcessorID is the raw processor identification data. On RISC-V
	// it is mvendorid.
	//
	// PrettyString: Processor ID
	ProcessorID uint64

	ProcessorVersion StringIndex
	Voltage          uint8

	// ExternalClock is the external clock frequency in MHz, zero if
	// unknown.
	ExternalClock uint16

	// MaxSpeed is the maximum processor speed (in MHz) supported by the
	// system for this socket.
	MaxSpeed     uint16
	CurrentSpeed uint16

	Status           ProcessorStatus
	ProcessorUpgrade ProcessorUpgrade `default:"ProcessorUpgradeUnknown"`

	// PrettyString: L1 Cache Handle
	L1CacheHandle Handle
	// PrettyString: L2 Cache Handle
	L2CacheHandle Handle
	// PrettyString: L3 Cache Handle
	L3CacheHandle Handle

	SerialNumber StringIndex
	AssetTag     StringIndex
	PartNumber   StringIndex

	// CoreCount is the number of cores per socket. Value 0xFF means the
	// count is in CoreCount2.
	CoreCount   uint8
	CoreEnabled uint8
	ThreadCount uint8

	ProcessorCharacteristics ProcessorCharacteristics
	ProcessorFamily2         ProcessorFamily2 `default:"ProcessorFamily2Reserved"`

	// PrettyString: Core Count 2
	CoreCount2 uint16
	// PrettyString: Core Enabled 2
	CoreEnabled2 uint16
	// PrettyString: Thread Count 2
	ThreadCount2  uint16
	ThreadEnabled uint16

	strings StringTable
}
