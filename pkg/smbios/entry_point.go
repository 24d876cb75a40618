// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"
	"strings"

	"github.com/linuxboot/smbios/pkg/smbios/consts"
	"github.com/linuxboot/smbios/pkg/smbios/pretty"
)

// EntryPoint is the SMBIOS 3.0 (64-bit) entry point structure. It tells
// the consumer where the structure table is located.
type EntryPoint struct {
	Anchor             [5]byte
	Checksum           uint8
	Length             uint8
	MajorVersion       uint8
	MinorVersion       uint8
	DocRev             uint8
	Revision           uint8
	Reserved           uint8
	StructureMaxSize   uint32
	StructureTableAddr uint64
}

// The fields of EntryPoint must add up to consts.EntryPointLength bytes.
var _ = [1]struct{}{}[consts.EntryPointLength-24]

// NewEntryPoint returns an entry point of a structure table located at
// tableAddress. maxSize is the maximal size of the table: the sum of the
// sizes of all the structures.
func NewEntryPoint(maxSize uint32, tableAddress uint64) *EntryPoint {
	ep := &EntryPoint{
		Anchor:             consts.EntryPointAnchor,
		Length:             consts.EntryPointLength,
		MajorVersion:       consts.MajorVersion,
		MinorVersion:       consts.MinorVersion,
		DocRev:             consts.DocRev,
		Revision:           consts.EntryPointRevision,
		StructureMaxSize:   maxSize,
		StructureTableAddr: tableAddress,
	}
	ep.Rehash()
	return ep
}

// Checksum8 returns the value which makes the 8-bit sum of b and
// the value equal to zero.
func Checksum8(b []byte) uint8 {
	var sum uint8
	for _, c := range b {
		sum += c
	}
	return -sum
}

func (ep EntryPoint) serializeFields(sink Sink) {
	sink.Vec(ep.Anchor[:])
	sink.Byte(ep.Checksum)
	sink.Byte(ep.Length)
	sink.Byte(ep.MajorVersion)
	sink.Byte(ep.MinorVersion)
	sink.Byte(ep.DocRev)
	sink.Byte(ep.Revision)
	sink.Byte(ep.Reserved)
	sink.DWord(ep.StructureMaxSize)
	sink.QWord(ep.StructureTableAddr)
}

// Rehash recalculates the checksum. It should be called after any field
// is modified.
func (ep *EntryPoint) Rehash() {
	ep.Checksum = 0
	var buf Buffer
	ep.serializeFields(&buf)
	ep.Checksum = Checksum8(buf)
}

// Serialize implements Structure. The checksum is always consistent with
// the other fields, even if Rehash was not called after a modification.
func (ep *EntryPoint) Serialize(sink Sink) {
	c := *ep
	c.Rehash()
	c.serializeFields(sink)
}

// Validate checks the constant fields and the checksum.
func (ep *EntryPoint) Validate() error {
	if ep.Anchor != consts.EntryPointAnchor {
		return fmt.Errorf("invalid anchor %q, expected %q", ep.Anchor[:], consts.EntryPointAnchor[:])
	}
	if ep.Length != consts.EntryPointLength {
		return fmt.Errorf("invalid length %d, expected %d", ep.Length, consts.EntryPointLength)
	}
	if ep.Revision != consts.EntryPointRevision {
		return fmt.Errorf("invalid entry point revision %d, expected %d", ep.Revision, consts.EntryPointRevision)
	}
	var buf Buffer
	ep.serializeFields(&buf)
	if sum := Checksum8(buf); sum != 0 {
		return fmt.Errorf("invalid checksum 0x%02X, expected 0x%02X", ep.Checksum, ep.Checksum+sum)
	}
	return nil
}

// PrettyString returns the content of the structure in an easy-to-read format.
func (ep *EntryPoint) PrettyString(depth uint, withHeader bool) string {
	var lines []string
	if withHeader {
		lines = append(lines, pretty.Header(depth, "SMBIOS 3.0 Entry Point", ep))
	}
	if ep == nil {
		return strings.Join(lines, "\n")
	}
	lines = append(lines, pretty.SubValue(depth+1, "Anchor", fmt.Sprintf("%q", ep.Anchor[:]), nil))
	lines = append(lines, pretty.SubValue(depth+1, "Checksum", "", ep.Checksum))
	lines = append(lines, pretty.SubValue(depth+1, "Length", "", ep.Length))
	lines = append(lines, pretty.SubValue(depth+1, "Version", fmt.Sprintf("%d.%d.%d", ep.MajorVersion, ep.MinorVersion, ep.DocRev), nil))
	lines = append(lines, pretty.SubValue(depth+1, "Entry Point Revision", "", ep.Revision))
	lines = append(lines, pretty.SubValue(depth+1, "Structure Table Maximum Size", "", ep.StructureMaxSize))
	lines = append(lines, pretty.SubValue(depth+1, "Structure Table Address", "", ep.StructureTableAddr))
	if depth < 2 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
