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

// MaxBootStatusDataLength is the maximal length of the data which
// follows the status byte: the length of the structure (which includes
// the header, the reserved bytes, the status and the data) must fit into
// a byte.
const MaxBootStatusDataLength = 0xFF - consts.HeaderLength - consts.SystemBootReservedLength - 1

// SystemBootInformation is the structure of type 32. Its length depends
// on the boot status.
type SystemBootInformation struct {
	handle Handle
	status BootStatus
}

// NewSystemBootInformation returns a System Boot Information structure
// with the given status. It returns ErrInvalidBootStatus if the status
// code is not allowed for its kind, and ErrValueOverflow if the status
// data is too long.
func NewSystemBootInformation(handle Handle, status BootStatus) (*SystemBootInformation, error) {
	if status == nil {
		status = BootStatusNoErrors
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if l := len(status.Data()); l > MaxBootStatusDataLength {
		return nil, ErrValueOverflow{
			Field: "Boot Status",
			Value: uint64(l),
			Max:   MaxBootStatusDataLength,
		}
	}
	// The payload is owned by the structure.
	status = cloneBootStatus(status)
	return &SystemBootInformation{
		handle: handle,
		status: status,
	}, nil
}

func cloneBootStatus(status BootStatus) BootStatus {
	clone := func(b []byte) []byte {
		if b == nil {
			return nil
		}
		return append([]byte{}, b...)
	}
	switch status := status.(type) {
	case PreviouslyRequestedImage:
		return PreviouslyRequestedImage(clone(status))
	case VendorSpecific:
		return VendorSpecific{StatusCode: status.StatusCode, Payload: clone(status.Payload)}
	case ProductSpecific:
		return ProductSpecific{StatusCode: status.StatusCode, Payload: clone(status.Payload)}
	}
	return status
}

// Handle returns the handle of the structure.
func (s *SystemBootInformation) Handle() Handle {
	return s.handle
}

// Status returns the boot status.
func (s *SystemBootInformation) Status() BootStatus {
	return s.status
}

// Length returns the value of the length byte: everything but the two
// trailing NUL bytes.
func (s *SystemBootInformation) Length() uint8 {
	return uint8(consts.HeaderLength + consts.SystemBootReservedLength + 1 + len(s.status.Data()))
}

// Serialize implements Structure.
func (s *SystemBootInformation) Serialize(sink Sink) {
	Header{
		Type:   consts.TypeSystemBootInformation,
		Length: s.Length(),
		Handle: s.handle,
	}.Serialize(sink)
	for i := 0; i < consts.SystemBootReservedLength; i++ {
		sink.Byte(0)
	}
	sink.Byte(s.status.Code())
	sink.Vec(s.status.Data())
	sink.Byte(0)
	sink.Byte(0)
}

// PrettyString returns the content of the structure in an easy-to-read format.
func (s *SystemBootInformation) PrettyString(depth uint, withHeader bool) string {
	var lines []string
	if withHeader {
		lines = append(lines, pretty.Header(depth, "System Boot Information", s))
	}
	if s == nil {
		return strings.Join(lines, "\n")
	}
	lines = append(lines, pretty.SubValue(depth+1, "Handle", "", s.handle))
	lines = append(lines, pretty.SubValue(depth+1, "Length", "", s.Length()))
	lines = append(lines, pretty.SubValue(depth+1, "Boot Status", fmt.Sprintf("0x%02X (%v)", s.status.Code(), s.status), nil))
	if depth < 2 {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
