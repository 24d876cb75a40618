// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"
)

// CacheConfiguration is a bit-packed field of the Cache Information:
// * bits 9:8 -- CacheOperationalMode;
// * bit 7 -- enabled/disabled;
// * bits 6:5 -- CacheLocation;
// * bit 3 -- cache socketed;
// * bits 2:0 -- cache level minus one (L1 is 000b).
type CacheConfiguration uint16

// CacheOperationalMode is the write policy of a cache.
type CacheOperationalMode uint8

const (
	CacheOperationalModeWriteThrough  = CacheOperationalMode(0)
	CacheOperationalModeWriteBack     = CacheOperationalMode(1)
	CacheOperationalModeVariesWithMem = CacheOperationalMode(2)
	CacheOperationalModeUnknown       = CacheOperationalMode(3)
)

var cacheOperationalModeNames = map[CacheOperationalMode]string{
	CacheOperationalModeWriteThrough:  "Write Through",
	CacheOperationalModeWriteBack:     "Write Back",
	CacheOperationalModeVariesWithMem: "Varies with Memory Address",
	CacheOperationalModeUnknown:       "Unknown",
}

func (m CacheOperationalMode) String() string {
	return enumString(m, cacheOperationalModeNames)
}

// CacheLocation is the location of a cache relative to the CPU module.
type CacheLocation uint8

const (
	CacheLocationInternal = CacheLocation(0)
	CacheLocationExternal = CacheLocation(1)
	CacheLocationReserved = CacheLocation(2)
	CacheLocationUnknown  = CacheLocation(3)
)

var cacheLocationNames = map[CacheLocation]string{
	CacheLocationInternal: "Internal",
	CacheLocationExternal: "External",
	CacheLocationReserved: "Reserved",
	CacheLocationUnknown:  "Unknown",
}

func (l CacheLocation) String() string {
	return enumString(l, cacheLocationNames)
}

func (c CacheConfiguration) bits(shift, width uint) uint {
	return uint(c>>shift) & (1<<width - 1)
}

func (c *CacheConfiguration) setBits(field string, shift, width, value uint) error {
	if value >= 1<<width {
		return ErrBitFieldOverflow{Field: field, Value: value, Bits: width}
	}
	mask := CacheConfiguration((1<<width - 1) << shift)
	*c = *c&^mask | CacheConfiguration(value<<shift)
	return nil
}

// OperationalMode returns bits 9:8.
func (c CacheConfiguration) OperationalMode() CacheOperationalMode {
	return CacheOperationalMode(c.bits(8, 2))
}

// SetOperationalMode sets bits 9:8.
func (c *CacheConfiguration) SetOperationalMode(mode CacheOperationalMode) error {
	return c.setBits("Operational Mode", 8, 2, uint(mode))
}

// Enabled returns bit 7.
func (c CacheConfiguration) Enabled() bool {
	return c.bits(7, 1) != 0
}

// SetEnabled sets bit 7.
func (c *CacheConfiguration) SetEnabled(enabled bool) {
	_ = c.setBits("Enabled", 7, 1, boolToUint(enabled))
}

// Location returns bits 6:5.
func (c CacheConfiguration) Location() CacheLocation {
	return CacheLocation(c.bits(5, 2))
}

// SetLocation sets bits 6:5.
func (c *CacheConfiguration) SetLocation(location CacheLocation) error {
	return c.setBits("Location", 5, 2, uint(location))
}

// Socketed returns bit 3.
func (c CacheConfiguration) Socketed() bool {
	return c.bits(3, 1) != 0
}

// SetSocketed sets bit 3.
func (c *CacheConfiguration) SetSocketed(socketed bool) {
	_ = c.setBits("Socketed", 3, 1, boolToUint(socketed))
}

// Level returns the cache level: 1 for an L1 cache and so on.
func (c CacheConfiguration) Level() uint8 {
	return uint8(c.bits(0, 3)) + 1
}

// SetLevel sets the cache level (1 through 8).
func (c *CacheConfiguration) SetLevel(level uint8) error {
	if level == 0 {
		return ErrBitFieldOverflow{Field: "Level", Value: 0, Bits: 3}
	}
	return c.setBits("Level", 0, 3, uint(level-1))
}

func (c CacheConfiguration) String() string {
	return fmt.Sprintf("L%d, enabled: %v, socketed: %v, location: %s, mode: %s",
		c.Level(), c.Enabled(), c.Socketed(), c.Location(), c.OperationalMode())
}

func boolToUint(b bool) uint {
	if b {
		return 1
	}
	return 0
}

// SRAMType is a set of SRAM types a cache supports (or uses).
type SRAMType uint16

// Flags which can be applied to SRAMType.
const (
	SRAMTypeOther         = SRAMType(1 << 0)
	SRAMTypeUnknown       = SRAMType(1 << 1)
	SRAMTypeNonBurst      = SRAMType(1 << 2)
	SRAMTypeBurst         = SRAMType(1 << 3)
	SRAMTypePipelineBurst = SRAMType(1 << 4)
	SRAMTypeSynchronous   = SRAMType(1 << 5)
	SRAMTypeAsynchronous  = SRAMType(1 << 6)
)

var sramTypeNames = []flagName{
	{uint64(SRAMTypeOther), "Other"},
	{uint64(SRAMTypeUnknown), "Unknown"},
	{uint64(SRAMTypeNonBurst), "NonBurst"},
	{uint64(SRAMTypeBurst), "Burst"},
	{uint64(SRAMTypePipelineBurst), "PipelineBurst"},
	{uint64(SRAMTypeSynchronous), "Synchronous"},
	{uint64(SRAMTypeAsynchronous), "Asynchronous"},
}

func (t SRAMType) String() string {
	return flagsString(uint64(t), sramTypeNames)
}

// ECCType is the error-correction scheme supported by a cache.
type ECCType uint8

const (
	ECCTypeOther        = ECCType(0x01)
	ECCTypeUnknown      = ECCType(0x02)
	ECCTypeNone         = ECCType(0x03)
	ECCTypeParity       = ECCType(0x04)
	ECCTypeSingleBitECC = ECCType(0x05)
	ECCTypeMultiBitECC  = ECCType(0x06)
)

var eccTypeNames = map[ECCType]string{
	ECCTypeOther:        "Other",
	ECCTypeUnknown:      "Unknown",
	ECCTypeNone:         "None",
	ECCTypeParity:       "Parity",
	ECCTypeSingleBitECC: "Single-bit ECC",
	ECCTypeMultiBitECC:  "Multi-bit ECC",
}

func (t ECCType) String() string {
	return enumString(t, eccTypeNames)
}

// SystemCacheType is the logical type of a cache.
type SystemCacheType uint8

const (
	SystemCacheTypeOther       = SystemCacheType(0x01)
	SystemCacheTypeUnknown     = SystemCacheType(0x02)
	SystemCacheTypeInstruction = SystemCacheType(0x03)
	SystemCacheTypeData        = SystemCacheType(0x04)
	SystemCacheTypeUnified     = SystemCacheType(0x05)
)

var systemCacheTypeNames = map[SystemCacheType]string{
	SystemCacheTypeOther:       "Other",
	SystemCacheTypeUnknown:     "Unknown",
	SystemCacheTypeInstruction: "Instruction",
	SystemCacheTypeData:        "Data",
	SystemCacheTypeUnified:     "Unified",
}

func (t SystemCacheType) String() string {
	return enumString(t, systemCacheTypeNames)
}

// Associativity is the associativity of a cache.
type Associativity uint8

const (
	AssociativityOther               = Associativity(0x01)
	AssociativityUnknown             = Associativity(0x02)
	AssociativityDirectMapped        = Associativity(0x03)
	AssociativitySetAssociative2Way  = Associativity(0x04)
	AssociativitySetAssociative4Way  = Associativity(0x05)
	AssociativityFullyAssociative    = Associativity(0x06)
	AssociativitySetAssociative8Way  = Associativity(0x07)
	AssociativitySetAssociative16Way = Associativity(0x08)
	AssociativitySetAssociative12Way = Associativity(0x09)
	AssociativitySetAssociative24Way = Associativity(0x0A)
	AssociativitySetAssociative32Way = Associativity(0x0B)
	AssociativitySetAssociative48Way = Associativity(0x0C)
	AssociativitySetAssociative64Way = Associativity(0x0D)
	AssociativitySetAssociative20Way = Associativity(0x0E)
)

var associativityNames = map[Associativity]string{
	AssociativityOther:               "Other",
	AssociativityUnknown:             "Unknown",
	AssociativityDirectMapped:        "Direct Mapped",
	AssociativitySetAssociative2Way:  "2-way Set-Associative",
	AssociativitySetAssociative4Way:  "4-way Set-Associative",
	AssociativityFullyAssociative:    "Fully Associative",
	AssociativitySetAssociative8Way:  "8-way Set-Associative",
	AssociativitySetAssociative16Way: "16-way Set-Associative",
	AssociativitySetAssociative12Way: "12-way Set-Associative",
	AssociativitySetAssociative24Way: "24-way Set-Associative",
	AssociativitySetAssociative32Way: "32-way Set-Associative",
	AssociativitySetAssociative48Way: "48-way Set-Associative",
	AssociativitySetAssociative64Way: "64-way Set-Associative",
	AssociativitySetAssociative20Way: "20-way Set-Associative",
}

func (a Associativity) String() string {
	return enumString(a, associativityNames)
}
