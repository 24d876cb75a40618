// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package consts contains the constants of the SMBIOS format.
//
// See "System Management BIOS (SMBIOS) Reference Specification", DSP0134,
// version 3.7.0:
//   - https://www.dmtf.org/sites/default/files/standards/documents/DSP0134_3.7.0.pdf
package consts

const (
	// MajorVersion is the major version of the SMBIOS specification
	// the structures are encoded for.
	MajorVersion = 3

	// MinorVersion is the minor version of the SMBIOS specification
	// the structures are encoded for.
	MinorVersion = 7

	// DocRev is the revision of the SMBIOS specification document.
	DocRev = 0

	// EntryPointRevision is the value of the "Entry Point Revision" field
	// of the 64-bit entry point. Value 1 means "SMBIOS 3.0 entry point".
	EntryPointRevision = 1

	// EntryPointLength is the length of the 64-bit entry point structure.
	EntryPointLength = 0x18

	// HeaderLength is the length of the header which starts every
	// structure: type, length and handle.
	HeaderLength = 4

	// MaxStrings is the maximal amount of strings one structure may
	// reference: string indexes are bytes and index 0 means "no string".
	MaxStrings = 255
)

// EntryPointAnchor is the anchor string of the 64-bit entry point.
var EntryPointAnchor = [5]byte{'_', 'S', 'M', '3', '_'}
