// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"path"
	"strings"
	"text/template"

	"github.com/fatih/camelcase"
	"github.com/linuxboot/smbios/pkg/log"
	"github.com/linuxboot/smbios/pkg/smbios/smbioscodegen/pkg/analyze"
)

const templateMethods = `// Code generated by "smbioscodegen". DO NOT EDIT.

package {{ .PackageName }}

import (
	"fmt"
	"strings"

	"github.com/linuxboot/smbios/pkg/smbios/check"
	"github.com/linuxboot/smbios/pkg/smbios/consts"
	"github.com/linuxboot/smbios/pkg/smbios/pretty"
)

var (
	// Just to avoid errors in "import" above in case if it wasn't used below
	_ = fmt.Errorf
	_ = strings.Join
	_ = check.StringIndexes
	_ = consts.HeaderLength
	_ = pretty.Header
)
{{ range $structName, $struct := .Structs }}
// {{ $structName }}Length is the length of the fixed part of {{ $structName }}
// (including the header).
const {{ $structName }}Length = {{ $struct.LengthValue }}

// The fields of {{ $structName }} must add up to {{ $structName }}Length bytes.
var _ = [1]struct{}{}[{{ $structName }}Length-{{ $struct.ComputedLength }}]

// New{{ $structName }} returns a new instance of {{ $structName }} with
// all default values set.
func New{{ $structName }}(handle Handle) *{{ $structName }} {
	s := &{{ $structName }}{}
	s.Header = Header{
		Type:   {{ $struct.TypeValue }},
		Length: {{ $structName }}Length,
		Handle: handle,
	}
{{- range $field := $struct.DataFields }}
{{- if $field.DefaultValue }}
	s.{{ $field.Name }} = {{ $field.DefaultValue }}
{{- end }}
{{- end }}
	return s
}
{{ range $field := $struct.DataFields }}
{{- if $field.IsStringRef }}
// Set{{ $field.Name }} appends the string to the string table and stores
// its index in field {{ $field.Name }}.
func (s *{{ $structName }}) Set{{ $field.Name }}(v string) error {
	idx, err := s.strings.Add(v)
	if err != nil {
		return fmt.Errorf("unable to set field '{{ $field.Name }}': %w", err)
	}
	s.{{ $field.Name }} = idx
	return nil
}
{{ else }}
// Set{{ $field.Name }} sets the value of field {{ $field.Name }}.
func (s *{{ $structName }}) Set{{ $field.Name }}(v {{ $field.TypeName }}) {
	s.{{ $field.Name }} = v
}
{{ end }}
{{- end }}
// Strings returns the strings referenced by the structure, in the order
// of their indexes.
func (s *{{ $structName }}) Strings() []string {
{{- if $struct.HasStringTable }}
	return s.strings.Strings()
{{- else }}
	return nil
{{- end }}
}

// Validate checks the header and that every string reference points
// into the string table.
func (s *{{ $structName }}) Validate() error {
	if s.Header.Type != {{ $struct.TypeValue }} {
		return fmt.Errorf("invalid structure type %d, expected %d", s.Header.Type, {{ $struct.TypeValue }})
	}
	if s.Header.Length != {{ $structName }}Length {
		return fmt.Errorf("invalid structure length %d, expected %d", s.Header.Length, {{ $structName }}Length)
	}
{{- if $struct.StringRefs }}
	return check.StringIndexes(uint(s.strings.Len()),
{{- range $field := $struct.StringRefs }}
		check.StringRef{Field: "{{ $field.Name }}", Index: uint8(s.{{ $field.Name }})},
{{- end }}
	)
{{- else }}
	return nil
{{- end }}
}

// Serialize writes the binary representation of {{ $structName }} into
// the sink.
func (s *{{ $structName }}) Serialize(sink Sink) {
	s.Header.Serialize(sink)
{{- range $field := $struct.DataFields }}
	{{ $field.SerializeStatement }}
{{- end }}
{{- if $struct.HasStringTable }}
	s.strings.Serialize(sink)
{{- else }}
	(&StringTable{}).Serialize(sink)
{{- end }}
}

// PrettyString returns the content of the structure in an easy-to-read format.
func (s *{{ $structName }}) PrettyString(depth uint, withHeader bool) string {
	var lines []string
	if withHeader {
		lines = append(lines, pretty.Header(depth, "{{ $struct.PrettyString }}", s))
	}
	if s == nil {
		return strings.Join(lines, "\n")
	}
{{- if $struct.HasStringTable }}
	strs := s.strings.Strings()
{{- end }}
	lines = append(lines, pretty.SubValue(depth+1, "Handle", "", s.Header.Handle))
{{- range $field := $struct.DataFields }}
{{- if $field.IsStringRef }}
	lines = append(lines, pretty.SubValue(depth+1, "{{ $field.PrettyString }}", pretty.StringRef(uint8(s.{{ $field.Name }}), strs), s.{{ $field.Name }}))
{{- else }}
	lines = append(lines, pretty.SubValue(depth+1, "{{ $field.PrettyString }}", "", s.{{ $field.Name }}))
{{- end }}
{{- end }}
	if depth < 2 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
{{ end }}`

type methodsData struct {
	analyze.File
}

// generateMethodsFile generates a file using the template above.
//
// The file name is constructed from the original file name, but with
// adding suffix '_smbioscodegen' before the file extension.
func generateMethodsFile(file analyze.File, isCheck bool) error {
	funcsMap := map[string]interface{}{
		"camelcaseToSentence": func(in string) string {
			return strings.Join(camelcase.Split(in), " ")
		},
	}

	if len(file.Structs) == 0 {
		return nil
	}

	templateMethods, err := template.New("methods").Funcs(funcsMap).Parse(templateMethods)
	if err != nil {
		return fmt.Errorf("unable to parse the template: %w", err)
	}
	if ext := path.Ext(file.Path); ext != ".go" {
		return fmt.Errorf("invalid extension: '%s'", ext)
	}
	generatedFile := fmt.Sprintf("%s_smbioscodegen.go",
		file.Path[:len(file.Path)-3],
	)

	var buf bytes.Buffer
	err = templateMethods.Execute(&buf, methodsData{
		File: file,
	})
	if err != nil {
		return fmt.Errorf("unable to write: %w", err)
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("unable to format the code generated for '%s': %w", file.Path, err)
	}

	if isCheck {
		current, err := os.ReadFile(generatedFile)
		if err != nil {
			return fmt.Errorf("unable to read file '%s': %w", generatedFile, err)
		}
		if !bytes.Equal(current, formatted) {
			return fmt.Errorf("file '%s' is not up-to-date; please run command: "+
				"go generate %s", generatedFile, file.Package.Path())
		}
		return nil
	}

	if err := os.WriteFile(generatedFile, formatted, 0644); err != nil {
		return fmt.Errorf("unable to write file '%s': %w", generatedFile, err)
	}
	log.Infof("generated '%s'", generatedFile)
	return nil
}
