// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"fmt"
	"strings"

	"github.com/xaionaro-go/gosrc"
)

// Struct is a schema of an SMBIOS structure.
type Struct struct {
	gosrc.Struct

	Parent *File
	Fields []*Field
}

// HeaderField returns the embedded Header.
func (_struct Struct) HeaderField() *Field {
	for _, field := range _struct.Fields {
		if field.IsHeader() {
			return field
		}
	}

	return nil
}

// IsSchema returns true if the structure embeds the Header, thus
// methods should be generated for it.
func (_struct Struct) IsSchema() bool {
	return _struct.HeaderField() != nil
}

// TypeValue returns the value of tag "type" of the Header.
func (_struct Struct) TypeValue() string {
	field := _struct.HeaderField()
	if field == nil {
		return ""
	}

	r, _ := field.TagGet("type")
	return r
}

// LengthValue returns the value of tag "length" of the Header: the
// mandated length of the fixed part of the structure.
func (_struct Struct) LengthValue() string {
	field := _struct.HeaderField()
	if field == nil {
		return ""
	}

	r, _ := field.TagGet("length")
	return r
}

// DataFields returns the fields which follow the header on the wire.
func (_struct Struct) DataFields() []*Field {
	var result []*Field
	for _, field := range _struct.Fields {
		if field.IsHeader() || !field.IsExported() {
			continue
		}
		result = append(result, field)
	}
	return result
}

// StringRefs returns the fields which reference strings.
func (_struct Struct) StringRefs() []*Field {
	var result []*Field
	for _, field := range _struct.DataFields() {
		if field.IsStringRef() {
			result = append(result, field)
		}
	}
	return result
}

// HasStringTable returns true if the structure has the unexported field
// "strings".
func (_struct Struct) HasStringTable() bool {
	for _, field := range _struct.Fields {
		if field.Name() == "strings" {
			return true
		}
	}
	return false
}

// ComputedLength returns the packed size of the header and all
// the data fields.
func (_struct Struct) ComputedLength() int64 {
	var size int64
	for _, field := range _struct.Fields {
		if !field.IsExported() {
			continue
		}
		size += field.TypeStdSize()
	}
	return size
}

// Validate checks the schema is usable by the generator.
func (_struct Struct) Validate() error {
	if _struct.TypeValue() == "" {
		return fmt.Errorf("the Header of %s has no tag 'type'", _struct.Name())
	}
	if _struct.LengthValue() == "" {
		return fmt.Errorf("the Header of %s has no tag 'length'", _struct.Name())
	}
	if len(_struct.StringRefs()) > 0 && !_struct.HasStringTable() {
		return fmt.Errorf("%s references strings, but has no field 'strings StringTable'", _struct.Name())
	}
	for _, field := range _struct.DataFields() {
		if _, err := field.Kind(); err != nil {
			return err
		}
	}
	return nil
}

// PrettyString returns the human-readable name of the structure.
func (_struct Struct) PrettyString() (string, error) {
	result, err := getPrettyString(_struct.TypeSpec.Name, _struct.TypeSpec.Doc, _struct.TypeSpec.Comment, "PrettyString:")
	if err != nil {
		err = fmt.Errorf("unable to get PrettyString for '%s'", _struct.TypeSpec.Name.Name)
	}
	return strings.TrimSpace(result), err
}
