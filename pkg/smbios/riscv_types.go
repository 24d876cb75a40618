// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

// XLEN is a native base integer ISA width of a RISC-V hart.
type XLEN uint8

const (
	XLENUnsupported = XLEN(0x00)
	XLEN32          = XLEN(0x01)
	XLEN64          = XLEN(0x02)
	XLEN128         = XLEN(0x03)
)

var xlenNames = map[XLEN]string{
	XLENUnsupported: "Unsupported",
	XLEN32:          "32-bit",
	XLEN64:          "64-bit",
	XLEN128:         "128-bit",
}

func (x XLEN) String() string {
	return enumString(x, xlenNames)
}

// RISCVPrivilegeLevels is a set of privilege levels supported by a hart.
type RISCVPrivilegeLevels uint8

// Flags which can be applied to RISCVPrivilegeLevels.
const (
	RISCVPrivilegeLevelMachine    = RISCVPrivilegeLevels(1 << 0)
	RISCVPrivilegeLevelSupervisor = RISCVPrivilegeLevels(1 << 2)
	RISCVPrivilegeLevelUser       = RISCVPrivilegeLevels(1 << 3)
	RISCVPrivilegeLevelDebug      = RISCVPrivilegeLevels(1 << 7)
)

var riscvPrivilegeLevelsNames = []flagName{
	{uint64(RISCVPrivilegeLevelMachine), "Machine"},
	{uint64(RISCVPrivilegeLevelSupervisor), "Supervisor"},
	{uint64(RISCVPrivilegeLevelUser), "User"},
	{uint64(RISCVPrivilegeLevelDebug), "Debug"},
}

func (l RISCVPrivilegeLevels) String() string {
	return flagsString(uint64(l), riscvPrivilegeLevelsNames)
}
