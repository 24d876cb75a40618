// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"bytes"
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/stretchr/testify/require"
)

type byteCollector struct {
	data []byte
}

func (c *byteCollector) Byte(b uint8) {
	c.data = append(c.data, b)
}

func writeAll(sink smbios.Sink) {
	sink.Byte(0x01)
	sink.Word(0x0302)
	sink.DWord(0x07060504)
	sink.QWord(0x0F0E0D0C0B0A0908)
	sink.Vec([]byte{0x10, 0x11})
}

var writeAllExpected = []byte{
	0x01,
	0x02, 0x03,
	0x04, 0x05, 0x06, 0x07,
	0x08, 0x09, 0x0A, 0x0B, 0x0C, 0x0D, 0x0E, 0x0F,
	0x10, 0x11,
}

func TestBufferLittleEndian(t *testing.T) {
	var buf smbios.Buffer
	writeAll(&buf)
	require.Equal(t, writeAllExpected, buf.Bytes())
	require.Equal(t, len(writeAllExpected), buf.Len())

	var out bytes.Buffer
	n, err := buf.WriteTo(&out)
	require.NoError(t, err)
	require.Equal(t, int64(len(writeAllExpected)), n)
	require.Equal(t, writeAllExpected, out.Bytes())
}

func TestNewSinkDerivesFromByte(t *testing.T) {
	var c byteCollector
	writeAll(smbios.NewSink(&c))
	require.Equal(t, writeAllExpected, c.data)
}

func TestNewSinkKeepsFullSinks(t *testing.T) {
	var buf smbios.Buffer
	sink := smbios.NewSink(&buf)
	sink.Word(0xBEEF)
	require.Equal(t, []byte{0xEF, 0xBE}, buf.Bytes())
}
