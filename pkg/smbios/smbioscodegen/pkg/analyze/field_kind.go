// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"fmt"
)

// FieldKind defines how a field is written into a Sink.
type FieldKind uint

const (
	// FieldKindUndefined indicates that the field cannot be serialized
	FieldKindUndefined = FieldKind(iota)
	// FieldKindByte indicates an 8-bit value
	FieldKindByte
	// FieldKindWord indicates a 16-bit little-endian value
	FieldKindWord
	// FieldKindDWord indicates a 32-bit little-endian value
	FieldKindDWord
	// FieldKindQWord indicates a 64-bit little-endian value
	FieldKindQWord
	// FieldKindByteArray indicates a static byte array, written as is
	FieldKindByteArray
	// FieldKindSubStruct indicates a value which serializes itself (for
	// example Uint128)
	FieldKindSubStruct
)

func (kind FieldKind) String() string {
	switch kind {
	case FieldKindUndefined:
		return "undefined"
	case FieldKindByte:
		return "byte"
	case FieldKindWord:
		return "word"
	case FieldKindDWord:
		return "dword"
	case FieldKindQWord:
		return "qword"
	case FieldKindByteArray:
		return "byteArray"
	case FieldKindSubStruct:
		return "subStruct"
	}
	return fmt.Sprintf("unexpected_%d", uint(kind))
}
