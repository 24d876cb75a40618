// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"
)

// ProcessorType is the type of a processor.
type ProcessorType uint8

const (
	ProcessorTypeOther            = ProcessorType(0x01)
	ProcessorTypeUnknown          = ProcessorType(0x02)
	ProcessorTypeCentralProcessor = ProcessorType(0x03)
	ProcessorTypeMathProcessor    = ProcessorType(0x04)
	ProcessorTypeDSPProcessor     = ProcessorType(0x05)
	ProcessorTypeVideoProcessor   = ProcessorType(0x06)
)

var processorTypeNames = map[ProcessorType]string{
	ProcessorTypeOther:            "Other",
	ProcessorTypeUnknown:          "Unknown",
	ProcessorTypeCentralProcessor: "Central Processor",
	ProcessorTypeMathProcessor:    "Math Processor",
	ProcessorTypeDSPProcessor:     "DSP Processor",
	ProcessorTypeVideoProcessor:   "Video Processor",
}

func (t ProcessorType) String() string {
	return enumString(t, processorTypeNames)
}

// ProcessorFamily is the 8-bit processor family. Families which do not fit
// into 8 bits are set to ProcessorFamilyObtainFromFamily2 and the real
// family is stored in ProcessorFamily2.
type ProcessorFamily uint8

const (
	ProcessorFamilyOther             = ProcessorFamily(0x01)
	ProcessorFamilyUnknown           = ProcessorFamily(0x02)
	ProcessorFamilyObtainFromFamily2 = ProcessorFamily(0xFE)
)

var processorFamilyNames = map[ProcessorFamily]string{
	ProcessorFamilyOther:             "Other",
	ProcessorFamilyUnknown:           "Unknown",
	ProcessorFamilyObtainFromFamily2: "Obtain from Processor Family 2",
}

func (f ProcessorFamily) String() string {
	return enumString(f, processorFamilyNames)
}

// ProcessorFamily2 is the 16-bit processor family.
type ProcessorFamily2 uint16

const (
	ProcessorFamily2ARMv7      = ProcessorFamily2(0x0100)
	ProcessorFamily2ARMv8      = ProcessorFamily2(0x0101)
	ProcessorFamily2RISCVRV32  = ProcessorFamily2(0x0200)
	ProcessorFamily2RISCVRV64  = ProcessorFamily2(0x0201)
	ProcessorFamily2RISCVRV128 = ProcessorFamily2(0x0202)
	ProcessorFamily2Reserved   = ProcessorFamily2(0xFFFE)
)

var processorFamily2Names = map[ProcessorFamily2]string{
	ProcessorFamily2ARMv7:      "ARMv7",
	ProcessorFamily2ARMv8:      "ARMv8",
	ProcessorFamily2RISCVRV32:  "RISC-V RV32",
	ProcessorFamily2RISCVRV64:  "RISC-V RV64",
	ProcessorFamily2RISCVRV128: "RISC-V RV128",
	ProcessorFamily2Reserved:   "Reserved",
}

func (f ProcessorFamily2) String() string {
	return enumString(f, processorFamily2Names)
}

// ProcessorUpgrade is the socket type of a processor.
type ProcessorUpgrade uint8

const (
	ProcessorUpgradeOther         = ProcessorUpgrade(0x01)
	ProcessorUpgradeUnknown       = ProcessorUpgrade(0x02)
	ProcessorUpgradeDaughterBoard = ProcessorUpgrade(0x03)
	ProcessorUpgradeNone          = ProcessorUpgrade(0x06)
)

var processorUpgradeNames = map[ProcessorUpgrade]string{
	ProcessorUpgradeOther:         "Other",
	ProcessorUpgradeUnknown:       "Unknown",
	ProcessorUpgradeDaughterBoard: "Daughter Board",
	ProcessorUpgradeNone:          "None",
}

func (u ProcessorUpgrade) String() string {
	return enumString(u, processorUpgradeNames)
}

// ProcessorStatus combines two fields:
// * "CPU Socket Populated" (bit 6);
// * CPUStatus (bits 2:0).
type ProcessorStatus uint8

// CPUStatus is the state of a processor.
type CPUStatus uint8

const (
	CPUStatusUnknown             = CPUStatus(0)
	CPUStatusEnabled             = CPUStatus(1)
	CPUStatusDisabledByUser      = CPUStatus(2)
	CPUStatusDisabledByBIOSError = CPUStatus(3)
	CPUStatusIdle                = CPUStatus(4)
	CPUStatusOther               = CPUStatus(7)
)

var cpuStatusNames = map[CPUStatus]string{
	CPUStatusUnknown:             "Unknown",
	CPUStatusEnabled:             "Enabled",
	CPUStatusDisabledByUser:      "Disabled By User",
	CPUStatusDisabledByBIOSError: "Disabled By BIOS (POST Error)",
	CPUStatusIdle:                "Idle",
	CPUStatusOther:               "Other",
}

func (s CPUStatus) String() string {
	return enumString(s, cpuStatusNames)
}

// NewProcessorStatus returns a ProcessorStatus with the given fields set.
func NewProcessorStatus(populated bool, status CPUStatus) (ProcessorStatus, error) {
	var s ProcessorStatus
	s.SetSocketPopulated(populated)
	if err := s.SetCPUStatus(status); err != nil {
		return 0, err
	}
	return s, nil
}

// SocketPopulated returns bit "CPU Socket Populated".
func (s ProcessorStatus) SocketPopulated() bool {
	return s&(1<<6) != 0
}

// SetSocketPopulated sets bit "CPU Socket Populated".
func (s *ProcessorStatus) SetSocketPopulated(populated bool) {
	if populated {
		*s |= 1 << 6
	} else {
		*s &^= 1 << 6
	}
}

// CPUStatus returns field "CPU Status".
func (s ProcessorStatus) CPUStatus() CPUStatus {
	return CPUStatus(s & 0x07)
}

// SetCPUStatus sets field "CPU Status".
func (s *ProcessorStatus) SetCPUStatus(status CPUStatus) error {
	if status & ^CPUStatus(0x07) != 0 {
		return ErrBitFieldOverflow{Field: "CPU Status", Value: uint(status), Bits: 3}
	}
	*s = *s&^0x07 | ProcessorStatus(status)
	return nil
}

func (s ProcessorStatus) String() string {
	return fmt.Sprintf("populated: %v, status: %s", s.SocketPopulated(), s.CPUStatus())
}

// ProcessorCharacteristics defines which functions the processor supports.
type ProcessorCharacteristics uint16

// Flags which can be applied to ProcessorCharacteristics.
const (
	ProcessorCharacteristicsReserved               = ProcessorCharacteristics(1 << 0)
	ProcessorCharacteristicsUnknown                = ProcessorCharacteristics(1 << 1)
	ProcessorCharacteristics64BitCapable           = ProcessorCharacteristics(1 << 2)
	ProcessorCharacteristicsMultiCore              = ProcessorCharacteristics(1 << 3)
	ProcessorCharacteristicsHardwareThread         = ProcessorCharacteristics(1 << 4)
	ProcessorCharacteristicsExecuteProtection      = ProcessorCharacteristics(1 << 5)
	ProcessorCharacteristicsEnhancedVirtualization = ProcessorCharacteristics(1 << 6)
	ProcessorCharacteristicsPowerControl           = ProcessorCharacteristics(1 << 7)
	ProcessorCharacteristics128BitCapable          = ProcessorCharacteristics(1 << 8)
)

var processorCharacteristicsNames = []flagName{
	{uint64(ProcessorCharacteristicsReserved), "Reserved"},
	{uint64(ProcessorCharacteristicsUnknown), "Unknown"},
	{uint64(ProcessorCharacteristics64BitCapable), "64Bit"},
	{uint64(ProcessorCharacteristicsMultiCore), "MultiCore"},
	{uint64(ProcessorCharacteristicsHardwareThread), "HardwareThread"},
	{uint64(ProcessorCharacteristicsExecuteProtection), "ExecuteProtection"},
	{uint64(ProcessorCharacteristicsEnhancedVirtualization), "EnhancedVirtualization"},
	{uint64(ProcessorCharacteristicsPowerControl), "PowerControl"},
	{uint64(ProcessorCharacteristics128BitCapable), "128Bit"},
}

func (c ProcessorCharacteristics) String() string {
	return flagsString(uint64(c), processorCharacteristicsNames)
}
