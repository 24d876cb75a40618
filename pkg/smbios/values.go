// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"encoding/hex"
	"fmt"
	"strings"
)

type enumValue interface {
	~uint8 | ~uint16
}

// enumString returns the name of an enumeration value, or its hex code if
// the value is not a known one.
func enumString[T enumValue](v T, names map[T]string) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("0x%X", uint64(v))
}

type flagName struct {
	bit  uint64
	name string
}

// flagsString returns human readable representation of the flags.
func flagsString(flags uint64, names []flagName) string {
	var result []string
	for _, f := range names {
		if f.bit&flags != 0 {
			result = append(result, f.name)
			flags &^= f.bit
		}
	}
	// Write a hex value for unknown flags.
	if flags != 0 || len(result) == 0 {
		result = append(result, fmt.Sprintf("%#x", flags))
	}
	return strings.Join(result, "|")
}

// Uint128 is a 128-bit unsigned little-endian integer value.
type Uint128 struct {
	Lo uint64
	Hi uint64
}

// NewUint128 returns a Uint128 with the value v.
func NewUint128(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// Serialize writes the value into sink.
func (v Uint128) Serialize(sink Sink) {
	sink.QWord(v.Lo)
	sink.QWord(v.Hi)
}

func (v Uint128) String() string {
	if v.Hi == 0 {
		return fmt.Sprintf("0x%X", v.Lo)
	}
	return fmt.Sprintf("0x%X%016X", v.Hi, v.Lo)
}

// UUID is a universally unique identifier in the SMBIOS byte order: the
// first three groups are little-endian.
type UUID [16]byte

// ParseUUID parses the canonical textual representation
// (xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx) of a UUID.
func ParseUUID(s string) (UUID, error) {
	var u UUID
	if len(s) != 36 || s[8] != '-' || s[13] != '-' || s[18] != '-' || s[23] != '-' {
		return u, fmt.Errorf("invalid UUID '%s': expected format xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx", s)
	}
	raw, err := hex.DecodeString(strings.ReplaceAll(s, "-", ""))
	if err != nil {
		return u, fmt.Errorf("invalid UUID '%s': %w", s, err)
	}
	u[0], u[1], u[2], u[3] = raw[3], raw[2], raw[1], raw[0]
	u[4], u[5] = raw[5], raw[4]
	u[6], u[7] = raw[7], raw[6]
	copy(u[8:], raw[8:])
	return u, nil
}

func (u UUID) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x-%02x%02x-%02x%02x-%x-%x",
		u[3], u[2], u[1], u[0], u[5], u[4], u[7], u[6], u[8:10], u[10:])
}
