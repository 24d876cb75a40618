// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"
	"strings"

	"github.com/linuxboot/smbios/pkg/smbios/consts"
	"github.com/linuxboot/smbios/pkg/smbios/pretty"
)

// OEMStrings is the structure of type 11: free-form strings defined by
// the OEM (part numbers, configuration notes and so on).
//
// The fixed part is the header and the count of strings. Unlike the
// other structures, an empty string table is terminated by a single NUL
// byte, since the count already tells there are no strings.
type OEMStrings struct {
	Header

	strings StringTable
}

// NewOEMStrings returns a new OEM Strings structure without strings.
func NewOEMStrings(handle Handle) *OEMStrings {
	return &OEMStrings{
		Header: Header{
			Type:   consts.TypeOEMStrings,
			Length: consts.OEMStringsLength,
			Handle: handle,
		},
	}
}

// AddString appends a string and returns its index.
func (s *OEMStrings) AddString(str string) (StringIndex, error) {
	idx, err := s.strings.Add(str)
	if err != nil {
		return 0, fmt.Errorf("unable to add an OEM string: %w", err)
	}
	return idx, nil
}

// Count returns the amount of strings.
func (s *OEMStrings) Count() uint8 {
	return uint8(s.strings.Len())
}

// Strings returns the strings in the order of addition.
func (s *OEMStrings) Strings() []string {
	return s.strings.Strings()
}

// Serialize implements Structure.
func (s *OEMStrings) Serialize(sink Sink) {
	s.Header.Serialize(sink)
	sink.Byte(s.Count())
	s.strings.serializeStrings(sink)
	sink.Byte(0)
}

// PrettyString returns the content of the structure in an easy-to-read format.
func (s *OEMStrings) PrettyString(depth uint, withHeader bool) string {
	var lines []string
	if withHeader {
		lines = append(lines, pretty.Header(depth, "OEM Strings", s))
	}
	if s == nil {
		return strings.Join(lines, "\n")
	}
	lines = append(lines, pretty.SubValue(depth+1, "Handle", "", s.Header.Handle))
	lines = append(lines, pretty.SubValue(depth+1, "Count", "", s.Count()))
	strs := s.strings.Strings()
	for idx := range strs {
		lines = append(lines, pretty.SubValue(depth+2, fmt.Sprintf("String %d", idx+1), pretty.StringRef(uint8(idx+1), strs), nil))
	}
	if depth < 2 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
