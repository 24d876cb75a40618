// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/stretchr/testify/require"
)

type headerGetter interface {
	GetHeader() smbios.Header
}

func TestSchemaLayouts(t *testing.T) {
	schemas := smbios.Schemas()
	require.Len(t, schemas, 12)

	for _, s := range schemas {
		layout, err := smbios.LayoutOf(s)
		require.NoError(t, err)
		t.Run(layout.Name, func(t *testing.T) {
			hdr := s.(headerGetter).GetHeader()
			require.Equal(t, uint64(hdr.Length), layout.Size())
			require.True(t, layout.Ranges().IsPacked(0))
			require.Equal(t, "Header", layout.Fields[0].Name)
			require.Equal(t, uint64(4), layout.Fields[0].Range.Length)

			out := smbios.Marshal(s)
			require.Len(t, out, int(hdr.Length)+2)
			require.Equal(t, []byte{0, 0}, out[hdr.Length:])
			require.Equal(t, byte(hdr.Type), out[0])
			require.Equal(t, hdr.Length, out[1])
		})
	}
}

func TestLayoutOfMemoryDevice(t *testing.T) {
	layout, err := smbios.LayoutOf(smbios.NewMemoryDevice(0))
	require.NoError(t, err)

	offsets := map[string]uint64{}
	for _, f := range layout.Fields {
		offsets[f.Name] = f.Range.Offset
	}
	require.Equal(t, uint64(0x0C), offsets["Size"])
	require.Equal(t, uint64(0x1C), offsets["ExtendedSize"])
	require.Equal(t, uint64(0x28), offsets["MemoryTechnology"])
	require.Equal(t, uint64(0x54), offsets["ExtendedSpeed"])
	require.Equal(t, uint64(0x5C), offsets["PMIC0ManufacturerID"])
}

func TestLayoutOfNotAStruct(t *testing.T) {
	var buf smbios.Buffer
	_, err := smbios.LayoutOf(rawStructure(buf))
	require.Error(t, err)
}

type rawStructure []byte

func (s rawStructure) Serialize(sink smbios.Sink) {
	sink.Vec(s)
}
