// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// MemoryArrayMappedAddress is the structure of type 19: the address
// range a Physical Memory Array is mapped to.
//
// PrettyString: Memory Array Mapped Address
type MemoryArrayMappedAddress struct {
	Header `type:"consts.TypeMemoryArrayMappedAddress" length:"0x1F"`

	// StartingAddress is in kilobytes. 0xFFFFFFFF means the range is in
	// the extended fields, see SetAddressRange.
	StartingAddress uint32
	EndingAddress   uint32

	MemoryArrayHandle Handle
	PartitionWidth    uint8

	ExtendedStartingAddress uint64
	ExtendedEndingAddress   uint64
}
