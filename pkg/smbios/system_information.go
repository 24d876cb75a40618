// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate smbioscodegen

package smbios

// SystemInformation is the structure of type 1: the attributes of the
// overall system.
//
// PrettyString: System Information
type SystemInformation struct {
	Header `type:"consts.TypeSystemInformation" length:"0x1B"`

	Manufacturer StringIndex
	ProductName  StringIndex
	Version      StringIndex
	SerialNumber StringIndex

	// UUID is the universally unique ID of the system, see ParseUUID.
	UUID UUID

	// WakeupType is the event which caused the system to power up.
	WakeupType WakeupType `default:"WakeupTypeUnknown"`

	// SKUNumber identifies a particular computer configuration for sale.
	//
	// PrettyString: SKU Number
	SKUNumber StringIndex
	Family    StringIndex

	strings StringTable
}
