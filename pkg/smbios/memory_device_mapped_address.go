// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// MemoryDeviceMappedAddress is the structure of type 20: the address
// range a Memory Device is mapped to.
//
// PrettyString: Memory Device Mapped Address
type MemoryDeviceMappedAddress struct {
	Header `type:"consts.TypeMemoryDeviceMappedAddress" length:"0x23"`

	StartingAddress uint32
	EndingAddress   uint32

	MemoryDeviceHandle             Handle
	MemoryArrayMappedAddressHandle Handle

	PartitionRowPosition PartitionRowPosition `default:"PartitionRowPositionUnknown"`
	InterleavePosition   uint8
	InterleavedDataDepth uint8

	ExtendedStartingAddress uint64
	ExtendedEndingAddress   uint64
}
