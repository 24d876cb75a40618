// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// PhysicalMemoryArray is the structure of type 16: a collection of memory
// devices which operate together to form a memory address space.
//
// PrettyString: Physical Memory Array
type PhysicalMemoryArray struct {
	Header `type:"consts.TypePhysicalMemoryArray" length:"0x17"`

	Location              ArrayLocation       `default:"ArrayLocationUnknown"`
	Use                   ArrayUse            `default:"ArrayUseUnknown"`
	MemoryErrorCorrection ErrorCorrectionType `default:"ErrorCorrectionTypeUnknown"`

	// MaximumCapacity is in kilobytes. See SetMemoryCapacity.
	MaximumCapacity uint32

	MemoryErrorInformationHandle Handle
	NumberOfMemoryDevices        uint16

	// ExtendedMaximumCapacity is in bytes, and is used only if
	// MaximumCapacity is 0x80000000.
	ExtendedMaximumCapacity uint64
}
