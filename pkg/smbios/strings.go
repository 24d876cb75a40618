// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"strings"

	"github.com/linuxboot/smbios/pkg/smbios/consts"
)

// StringTable is the set of strings which follows the fixed part of
// a structure. Strings are referenced by their 1-based index.
type StringTable struct {
	strings []string
}

// Add appends a string and returns its index.
func (t *StringTable) Add(s string) (StringIndex, error) {
	if strings.IndexByte(s, 0) >= 0 {
		return 0, ErrStringContainsNUL{Value: s}
	}
	if len(t.strings) >= consts.MaxStrings {
		return 0, ErrTooManyStrings{Limit: consts.MaxStrings}
	}
	t.strings = append(t.strings, s)
	return StringIndex(len(t.strings)), nil
}

// Len returns the amount of strings in the table.
func (t *StringTable) Len() int {
	return len(t.strings)
}

// Strings returns a copy of the strings, in the order of addition.
func (t *StringTable) Strings() []string {
	return append([]string(nil), t.strings...)
}

// Get returns the string with the given index. ok is false if the index
// does not point to a string.
func (t *StringTable) Get(idx StringIndex) (s string, ok bool) {
	if idx == 0 || int(idx) > len(t.strings) {
		return "", false
	}
	return t.strings[idx-1], true
}

// serializeStrings writes each string followed by a NUL byte.
func (t *StringTable) serializeStrings(sink Sink) {
	for _, s := range t.strings {
		sink.Vec([]byte(s))
		sink.Byte(0)
	}
}

// Serialize writes the string table: every string terminated by a NUL
// byte and one more NUL byte after the last string. A structure without
// strings is followed by two NUL bytes.
func (t *StringTable) Serialize(sink Sink) {
	t.serializeStrings(sink)
	sink.Byte(0)
	if len(t.strings) == 0 {
		sink.Byte(0)
	}
}
