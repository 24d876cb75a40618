// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"fmt"
)

// ErrStringIndexOutOfRange means a string reference field points past the
// end of the string table of its structure.
type ErrStringIndexOutOfRange struct {
	Field string
	Index uint8
	Count uint
}

func (err *ErrStringIndexOutOfRange) Error() string {
	return fmt.Sprintf("field '%s' references string #%d, but there are only %d strings",
		err.Field, err.Index, err.Count)
}

// ErrValueOutOfRange means a value is outside of the range allowed for it.
type ErrValueOutOfRange struct {
	Name  string
	Value uint64
	Min   uint64
	Max   uint64
}

func (err *ErrValueOutOfRange) Error() string {
	return fmt.Sprintf("%s value %d (0x%X) is out of range [%d, %d]",
		err.Name, err.Value, err.Value, err.Min, err.Max)
}
