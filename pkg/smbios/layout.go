// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"encoding/binary"
	"fmt"
	"reflect"

	"github.com/linuxboot/smbios/pkg/bytes"
)

// FieldLayout is the position of a field within the fixed part of
// a structure.
type FieldLayout struct {
	Name  string
	Type  string
	Range bytes.Range
}

// Layout is the byte layout of the fixed part of a structure.
type Layout struct {
	Name   string
	Fields []FieldLayout
}

// Ranges returns the ranges of all the fields.
func (l Layout) Ranges() bytes.Ranges {
	result := make(bytes.Ranges, 0, len(l.Fields))
	for _, field := range l.Fields {
		result = append(result, field.Range)
	}
	return result
}

// Size returns the size of the fixed part.
func (l Layout) Size() uint64 {
	return l.Ranges().TotalLength()
}

// LayoutOf calculates the layout of the fixed part of a structure from
// the exported fields of its Go type. Each field occupies exactly
// binary.Size bytes, there is no padding.
func LayoutOf(s Structure) (*Layout, error) {
	v := reflect.Indirect(reflect.ValueOf(s))
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected a structure, received %T", s)
	}
	t := v.Type()

	layout := &Layout{Name: t.Name()}
	var offset uint64
	for i := 0; i < t.NumField(); i++ {
		fieldType := t.Field(i)
		if !fieldType.IsExported() {
			continue
		}
		size := binary.Size(v.Field(i).Interface())
		if size < 0 {
			return nil, fmt.Errorf("field %s.%s of type %s has no fixed size", t.Name(), fieldType.Name, fieldType.Type)
		}
		layout.Fields = append(layout.Fields, FieldLayout{
			Name: fieldType.Name,
			Type: fieldType.Type.String(),
			Range: bytes.Range{
				Offset: offset,
				Length: uint64(size),
			},
		})
		offset += uint64(size)
	}
	return layout, nil
}

// Schemas returns a new instance of each structure built from a schema
// (see "smbioscodegen"), in the order of type ids.
func Schemas() []Structure {
	return []Structure{
		NewBIOSInformation(0),
		NewSystemInformation(0),
		NewProcessorInformation(0),
		NewCacheInformation(0),
		NewSystemSlots(0),
		NewPhysicalMemoryArray(0),
		NewMemoryDevice(0),
		NewMemoryArrayMappedAddress(0),
		NewMemoryDeviceMappedAddress(0),
		NewTPMDevice(0),
		NewProcessorAdditionalInformation(0),
		NewEndOfTable(0),
	}
}
