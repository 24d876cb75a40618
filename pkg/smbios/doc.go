// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package smbios encodes SMBIOS structures (DSP0134 version 3.7, 64-bit
// entry point) into their binary representation.
//
// Every structure is encoded on its own: the caller constructs it with a
// handle, fills the fields using the setters and serializes it into a Sink.
// Assembling a full table (handle allocation, placement, the end-of-table
// marker) is the caller's job; EntryPoint describes the assembled table.
//
// Most structures are generated by smbioscodegen from their schema (see
// files with "//go:generate smbioscodegen"). The structures which do not
// fit the generic shape (OEMStrings, SystemBootInformation, EntryPoint)
// are implemented by hand.
package smbios
