// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pretty renders SMBIOS structures in a human readable form.
package pretty

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/dustin/go-humanize"
)

// Header returns the title line of an object (or a field) at the given
// nesting depth.
func Header(depth uint, description string, obj interface{}) string {
	if description == "" {
		description = fmt.Sprintf("%T", obj)
	}
	switch depth {
	case 0:
		description = `----` + description + "----\n"
	case 1:
		description = `--` + description + `--`
	default:
		description += `:`
	}
	description = strings.Repeat("  ", int(depth)) + description
	return description
}

// SubValue returns the line describing a field. If valueDescription is
// empty then the description is derived from the value itself.
func SubValue(depth uint, fieldName, valueDescription string, value interface{}) string {
	if valueDescription == "" {
		valueDescription = describeValue(depth, value)
	}
	return fmt.Sprintf("%s %s", Header(depth, fieldName, nil), valueDescription)
}

// StringRef describes a string reference field: the index and the string
// it points to.
func StringRef(index uint8, strings []string) string {
	switch {
	case index == 0:
		return "0x00 (no string)"
	case int(index) > len(strings):
		return fmt.Sprintf("0x%02X (invalid: only %d strings)", index, len(strings))
	}
	return fmt.Sprintf("0x%02X %q", index, strings[index-1])
}

func describeValue(depth uint, value interface{}) string {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Ptr && v.IsNil() {
		return "is not set (nil)"
	}

	switch value := value.(type) {
	case interface {
		PrettyString(depth uint, withHeader bool) string
	}:
		description := value.PrettyString(depth, false)
		if len(strings.Split(description, "\n")) > 1 {
			return "\n" + description
		}
		return strings.TrimSpace(description)
	case fmt.GoStringer:
		return value.GoString()
	}

	v = reflect.Indirect(v)
	switch v.Kind() {
	case reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i := v.Uint()
		var hexFmt string
		switch v.Type().Size() {
		case 1:
			hexFmt = "0x%02X"
		case 2:
			hexFmt = "0x%04X"
		case 4:
			hexFmt = "0x%08X"
		case 8:
			hexFmt = "0x%016X"
		}
		s := fmt.Sprintf(hexFmt, i)
		if stringer, ok := value.(fmt.Stringer); ok {
			return s + " (" + stringer.String() + ")"
		}
		switch {
		case i < 10:
			return s
		case i < 65536:
			return fmt.Sprintf("%s (%d)", s, i)
		default:
			return fmt.Sprintf("%s (%d: %s)", s, i, humanize.IBytes(i))
		}

	case reflect.Array:
		if stringer, ok := value.(fmt.Stringer); ok {
			return stringer.String()
		}
		return fmt.Sprintf("0x%X", v.Interface())

	case reflect.Slice:
		if v.Len() == 0 {
			return "empty (len: 0)"
		}
		return fmt.Sprintf("0x%X (len: %d)", v.Interface(), v.Len())
	}

	if stringer, ok := value.(fmt.Stringer); ok {
		return stringer.String()
	}
	return fmt.Sprintf("%#+v (%T)", value, value)
}
