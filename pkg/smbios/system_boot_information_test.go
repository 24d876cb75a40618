// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"bytes"
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/linuxboot/smbios/pkg/smbios/check"
	"github.com/linuxboot/smbios/pkg/smbios/internal/unittest"
	"github.com/stretchr/testify/require"
)

func TestSystemBootInformationPreviouslyRequestedImage(t *testing.T) {
	data := []byte{0xAA, 0xBB}
	s, err := smbios.NewSystemBootInformation(0x20, smbios.PreviouslyRequestedImage(data))
	require.NoError(t, err)

	// The payload is copied.
	data[0] = 0
	require.Equal(t, uint8(13), s.Length())
	unittest.Serialize(t, s, []byte{
		32, 13, 0x20, 0,
		0, 0, 0, 0, 0, 0,
		7, 0xAA, 0xBB,
		0, 0,
	})
}

func TestSystemBootInformationCodes(t *testing.T) {
	for _, code := range []smbios.BootStatusCode{
		smbios.BootStatusNoErrors,
		smbios.BootStatusNoBootableMedia,
		smbios.BootStatusOperatingSystemFailedToLoad,
		smbios.BootStatusFirmwareDetectedHardwareFailure,
		smbios.BootStatusOperatingSystemDetectedHWFailure,
		smbios.BootStatusUserRequestedBoot,
		smbios.BootStatusSystemSecurityViolation,
		smbios.BootStatusSystemWatchdogTimer,
	} {
		t.Run(code.String(), func(t *testing.T) {
			s, err := smbios.NewSystemBootInformation(3, code)
			require.NoError(t, err)
			unittest.Serialize(t, s, []byte{
				32, 11, 3, 0,
				0, 0, 0, 0, 0, 0,
				uint8(code),
				0, 0,
			})
		})
	}
}

func TestSystemBootInformationDefaultStatus(t *testing.T) {
	s, err := smbios.NewSystemBootInformation(3, nil)
	require.NoError(t, err)
	require.Equal(t, smbios.BootStatusNoErrors, s.Status())
	require.Equal(t, smbios.Handle(3), s.Handle())
}

func TestSystemBootInformationSpecific(t *testing.T) {
	t.Run("vendor", func(t *testing.T) {
		s, err := smbios.NewSystemBootInformation(1, smbios.VendorSpecific{StatusCode: 130, Payload: []byte{1, 2, 3}})
		require.NoError(t, err)
		require.Equal(t, []byte{32, 14, 1, 0, 0, 0, 0, 0, 0, 0, 130, 1, 2, 3, 0, 0}, smbios.Marshal(s))
	})
	t.Run("product", func(t *testing.T) {
		s, err := smbios.NewSystemBootInformation(1, smbios.ProductSpecific{StatusCode: 0xFF})
		require.NoError(t, err)
		require.Equal(t, []byte{32, 11, 1, 0, 0, 0, 0, 0, 0, 0, 0xFF, 0, 0}, smbios.Marshal(s))
	})
}

func TestSystemBootInformationInvalid(t *testing.T) {
	for name, status := range map[string]smbios.BootStatus{
		"vendor_below_range":   smbios.VendorSpecific{StatusCode: 100},
		"vendor_above_range":   smbios.VendorSpecific{StatusCode: 192},
		"product_below_range":  smbios.ProductSpecific{StatusCode: 50},
		"product_vendor_range": smbios.ProductSpecific{StatusCode: 191},
		"code_with_data":       smbios.BootStatusCode(7),
		"reserved_code":        smbios.BootStatusCode(9),
	} {
		t.Run(name, func(t *testing.T) {
			s, err := smbios.NewSystemBootInformation(1, status)
			require.Nil(t, s)
			require.ErrorAs(t, err, &smbios.ErrInvalidBootStatus{})
		})
	}

	_, err := smbios.NewSystemBootInformation(1, smbios.VendorSpecific{StatusCode: 100})
	var errRange *check.ErrValueOutOfRange
	require.ErrorAs(t, err, &errRange)
	require.Equal(t, uint64(128), errRange.Min)
}

func TestSystemBootInformationPayloadLimit(t *testing.T) {
	s, err := smbios.NewSystemBootInformation(1, smbios.PreviouslyRequestedImage(bytes.Repeat([]byte{1}, smbios.MaxBootStatusDataLength)))
	require.NoError(t, err)
	require.Equal(t, uint8(0xFF), s.Length())
	require.Len(t, smbios.Marshal(s), 0xFF+2)

	_, err = smbios.NewSystemBootInformation(1, smbios.ProductSpecific{
		StatusCode: 200,
		Payload:    make([]byte, smbios.MaxBootStatusDataLength+1),
	})
	require.ErrorAs(t, err, &smbios.ErrValueOverflow{})
}
