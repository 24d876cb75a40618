// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"fmt"
	"go/ast"
	"go/types"
	"math"
	"path/filepath"

	"github.com/xaionaro-go/gosrc"
)

// Field is just a wrapper around gosrc.Field to provide necessary information
// for code generation.
type Field struct {
	gosrc.Field

	Parent *Struct
}

// ItemTypeName returns the type of the given field.
func (field Field) ItemTypeName() string {
	return field.Field.ItemTypeName().Name
}

// AccessPrefix returns a prefix of a given field.
func (field Field) AccessPrefix() string {
	itemTypeName := field.Field.ItemTypeName()
	if itemTypeName.Path == "" || itemTypeName.Path == filepath.Dir(field.Parent.Parent.Path) {
		// Builtin or not imported, so no prefix is required
		return ""
	}

	// Imported. As temporary solution we use directory name
	// as the package name.
	return filepath.Base(itemTypeName.Path) + "."
}

// TypeName returns the type of the field as it should be written in the
// generated code.
func (field Field) TypeName() string {
	return field.AccessPrefix() + field.ItemTypeName()
}

// TypeStdSize returns the size (in bytes) of the field's value.
//
// For example if the field has type `uint32` or `[4]byte`, then the returned
// value will be `4`.
//
// Basically this is something like `binary.Size(struct.Field)`.
func (field Field) TypeStdSize() int64 {
	// We set MaxInt64 as wordSize, because we expect wordSize to be
	// never used, so MaxInt64 will help us to reveal any errors.
	//
	// maxAlign is 1 since the data is packed.
	return field.Field.TypeStdSize(math.MaxInt64, 1)
}

// IsExported returns true if the field is a part of the fixed-size data
// of the structure. Unexported fields (like the string table) are not.
func (field Field) IsExported() bool {
	return ast.IsExported(field.Name())
}

// IsHeader returns true if the field is the embedded structure header.
func (field Field) IsHeader() bool {
	return field.ItemTypeName() == "Header"
}

// IsStringRef returns true if the field is a reference to a string of the
// string table.
func (field Field) IsStringRef() bool {
	return field.ItemTypeName() == "StringIndex"
}

// DefaultValue returns the value of the Tag default
func (field Field) DefaultValue() string {
	result, _ := field.TagGet("default")
	return result
}

// Kind returns the FieldKind of the field instance
func (field Field) Kind() (FieldKind, error) {
	_struct := field.Parent
	if _struct == nil {
		return FieldKindUndefined, fmt.Errorf("internal error: parent is not defined")
	}

	typ := gosrc.TypeDeepest(field.TypeValue.Type)
	if typCasted, ok := typ.(*types.Named); ok {
		typ = typCasted.Underlying()
	}

	switch typ := typ.(type) {
	case *types.Basic:
		switch typ.Kind() {
		case types.Uint8:
			return FieldKindByte, nil
		case types.Uint16:
			return FieldKindWord, nil
		case types.Uint32:
			return FieldKindDWord, nil
		case types.Uint64:
			return FieldKindQWord, nil
		}
		return FieldKindUndefined, fmt.Errorf("only unsigned integers are allowed in %s.%s: %s", _struct.Name(), field.Name(), typ.String())
	case *types.Array:
		elem, ok := typ.Elem().(*types.Basic)
		if !ok || elem.Kind() != types.Uint8 {
			return FieldKindUndefined, fmt.Errorf("static array, but not of bytes in %s.%s: %s", _struct.Name(), field.Name(), typ.String())
		}
		return FieldKindByteArray, nil
	case *types.Struct:
		return FieldKindSubStruct, nil
	case *types.Slice:
		return FieldKindUndefined, fmt.Errorf("dynamic arrays are not allowed in the fixed part of a structure, see %s.%s", _struct.Name(), field.Name())
	}

	return FieldKindUndefined, fmt.Errorf("unknown case: %s:%T: %v", field.Name(), typ, typ.String())
}

// SerializeStatement returns the statement which writes the field into
// a Sink named "sink".
func (field Field) SerializeStatement() (string, error) {
	kind, err := field.Kind()
	if err != nil {
		return "", err
	}
	switch kind {
	case FieldKindByte:
		return fmt.Sprintf("sink.Byte(uint8(s.%s))", field.Name()), nil
	case FieldKindWord:
		return fmt.Sprintf("sink.Word(uint16(s.%s))", field.Name()), nil
	case FieldKindDWord:
		return fmt.Sprintf("sink.DWord(uint32(s.%s))", field.Name()), nil
	case FieldKindQWord:
		return fmt.Sprintf("sink.QWord(uint64(s.%s))", field.Name()), nil
	case FieldKindByteArray:
		return fmt.Sprintf("sink.Vec(s.%s[:])", field.Name()), nil
	case FieldKindSubStruct:
		return fmt.Sprintf("s.%s.Serialize(sink)", field.Name()), nil
	}
	return "", fmt.Errorf("do not know how to serialize field %s of kind %s", field.Name(), kind)
}

// PrettyString returns a formatted string of the field structure instance
func (field Field) PrettyString() (string, error) {
	result, err := getPrettyString(&ast.Ident{Name: field.Name()}, field.Doc, field.Comment, "PrettyString:")
	if err != nil {
		err = fmt.Errorf("unable to get PrettyString for '%s.%s'", field.Parent.TypeSpec.Name.Name, field.Name())
	}
	return result, err
}
