// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// EndOfTable is the structure of type 127 which terminates a table.
//
// PrettyString: End-of-Table
type EndOfTable struct {
	Header `type:"consts.TypeEndOfTable" length:"0x04"`
}
