// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"go/ast"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetPrettyString(t *testing.T) {
	doc := &ast.CommentGroup{List: []*ast.Comment{
		{Text: "// MemoryDevice describes a memory socket."},
		{Text: "//"},
		{Text: "// PrettyString: Memory Device (DIMM)"},
	}}

	s, err := getPrettyString(ast.NewIdent("MemoryDevice"), doc, nil, "PrettyString:")
	require.NoError(t, err)
	require.Equal(t, "Memory Device (DIMM)", s)

	s, err = getPrettyString(ast.NewIdent("SlotDataBusWidth"), nil, nil, "PrettyString:")
	require.NoError(t, err)
	require.Equal(t, "Slot Data Bus Width", s)

	s, err = getPrettyString(ast.NewIdent("BIOSROMSize"), &ast.CommentGroup{List: []*ast.Comment{{Text: "// ROM size."}}}, nil, "PrettyString:")
	require.NoError(t, err)
	require.Equal(t, "BIOSROM Size", s)

	_, err = getPrettyString(&ast.StarExpr{X: ast.NewIdent("T")}, nil, nil, "PrettyString:")
	require.Error(t, err)
}
