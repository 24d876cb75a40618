// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// ProcessorAdditionalInformation is the structure of type 44 with the
// RISC-V processor-specific block. One structure describes one hart.
//
// See https://github.com/riscv/riscv-smbios/blob/main/riscv-smbios.adoc
//
// PrettyString: Processor Additional Information (RISC-V)
type ProcessorAdditionalInformation struct {
	Header `type:"consts.TypeProcessorAdditionalInformation" length:"0x74"`

	// ReferencedHandle is the handle of the Processor Information
	// structure of the hart.
	ReferencedHandle Handle

	Revision        uint16
	StructureLength uint8

	// PrettyString: Hart ID
	HartID   Uint128
	BootHart uint8

	// PrettyString: Machine Vendor ID
	MachineVendorID Uint128
	// PrettyString: Machine Architecture ID
	MachineArchitectureID Uint128
	// PrettyString: Machine Implementation ID
	MachineImplementationID Uint128

	// ISASupported is the set of supported extensions: bit 0 is "A",
	// bit 25 is "Z".
	//
	// PrettyString: ISA Supported
	ISASupported uint32

	PrivilegeLevelSupported RISCVPrivilegeLevels

	MachineExceptionDelegation Uint128
	MachineInterruptDelegation Uint128

	// PrettyString: XLEN
	XLEN XLEN `default:"XLEN64"`
	// PrettyString: Machine XLEN
	MXLEN XLEN `default:"XLEN64"`

	Reserved uint8

	// PrettyString: Supervisor XLEN
	SXLEN XLEN `default:"XLEN64"`
	// PrettyString: User XLEN
	UXLEN XLEN `default:"XLEN64"`
}
