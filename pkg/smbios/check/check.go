// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package check contains sanity checks of values stored in SMBIOS
// structures.
package check

import (
	"github.com/hashicorp/go-multierror"
)

// StringRef is a string reference field of a structure.
type StringRef struct {
	Field string
	Index uint8
}

// StringIndexes checks that every reference is either zero (no string) or
// points to one of "count" strings:
// * 0 <= Index <= count
//
// All the violations are reported, not only the first one.
func StringIndexes(count uint, refs ...StringRef) error {
	var result *multierror.Error
	for _, ref := range refs {
		if uint(ref.Index) > count {
			result = multierror.Append(result, &ErrStringIndexOutOfRange{
				Field: ref.Field,
				Index: ref.Index,
				Count: count,
			})
		}
	}
	return result.ErrorOrNil()
}

// ValueRange checks that min <= value <= max.
func ValueRange(name string, value, min, max uint64) error {
	if value < min || value > max {
		return &ErrValueOutOfRange{Name: name, Value: value, Min: min, Max: max}
	}
	return nil
}
