// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package analyze

import (
	"path"

	"github.com/xaionaro-go/gosrc"
)

// File is a source file with SMBIOS structure schemas. Structs maps the
// name of each schema to its description.
type File struct {
	gosrc.File

	Parent  *Package
	Structs map[string]*Struct
}

// PackageName returns the name of the package the file belongs to. The
// schemas are expected to live in a directory named after the package.
func (file File) PackageName() string {
	return path.Base(file.Package.Path())
}

// Package is the scanned package: gosrc.Package and the schema files.
type Package struct {
	gosrc.Package

	Files []*File
}

// StructByName returns Struct with the given name.
func (pkg *Package) StructByName(structName string) *Struct {
	for _, file := range pkg.Files {
		if _struct, ok := file.Structs[structName]; ok {
			return _struct
		}
	}

	return nil
}
