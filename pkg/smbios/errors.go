// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"
)

// ErrTooManyStrings means a string cannot be added to a structure because
// its string table is full.
type ErrTooManyStrings struct {
	Limit int
}

func (err ErrTooManyStrings) Error() string {
	return fmt.Sprintf("the string table is full: a structure may reference at most %d strings", err.Limit)
}

// ErrStringContainsNUL means a string cannot be stored in a string table,
// because a NUL byte would terminate it early.
type ErrStringContainsNUL struct {
	Value string
}

func (err ErrStringContainsNUL) Error() string {
	return fmt.Sprintf("string %q contains a NUL byte", err.Value)
}

// ErrInvalidBootStatus means the boot status code is not allowed for the
// boot status kind.
type ErrInvalidBootStatus struct {
	Status BootStatus
	Err    error
}

func (err ErrInvalidBootStatus) Error() string {
	return fmt.Sprintf("invalid boot status %v: %v", err.Status, err.Err)
}

func (err ErrInvalidBootStatus) Unwrap() error {
	return err.Err
}

// ErrValueOverflow means a value does not fit into the field(s) it is
// encoded into, even with the extended encoding.
type ErrValueOverflow struct {
	Field string
	Value uint64
	Max   uint64
}

func (err ErrValueOverflow) Error() string {
	return fmt.Sprintf("value %d of field '%s' exceeds the maximal encodable value %d",
		err.Value, err.Field, err.Max)
}

// ErrBitFieldOverflow means a value does not fit into the bits of
// a bit-packed field.
type ErrBitFieldOverflow struct {
	Field string
	Value uint
	Bits  uint
}

func (err ErrBitFieldOverflow) Error() string {
	return fmt.Sprintf("value %d does not fit into %d bits of '%s'", err.Value, err.Bits, err.Field)
}
