// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// CacheInformation is the structure of type 7. Processor Information
// references it by handle.
//
// PrettyString: Cache Information
type CacheInformation struct {
	Header `type:"consts.TypeCacheInformation" length:"0x1B"`

	SocketDesignation  StringIndex
	CacheConfiguration CacheConfiguration

	// MaximumCacheSize is the maximum size that can be installed, see
	// SetMaximumCacheSizeBytes.
	MaximumCacheSize uint16
	InstalledSize    uint16

	// PrettyString: Supported SRAM Type
	SupportedSRAMType SRAMType `default:"SRAMTypeUnknown"`
	// PrettyString: Current SRAM Type
	CurrentSRAMType SRAMType `default:"SRAMTypeUnknown"`

	// CacheSpeed is the speed in nanoseconds, zero if unknown.
	CacheSpeed uint8

	ErrorCorrectionType ECCType         `default:"ECCTypeUnknown"`
	SystemCacheType     SystemCacheType `default:"SystemCacheTypeUnknown"`
	Associativity       Associativity   `default:"AssociativityUnknown"`

	// PrettyString: Maximum Cache Size 2
	MaximumCacheSize2 uint32
	// PrettyString: Installed Cache Size 2
	InstalledCacheSize2 uint32

	strings StringTable
}
