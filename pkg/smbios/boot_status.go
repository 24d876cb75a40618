// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios

import (
	"fmt"

	"github.com/linuxboot/smbios/pkg/smbios/check"
)

// BootStatus is the outcome of the last boot attempt, reported in the
// System Boot Information structure.
//
// The set of implementations is closed: BootStatusCode,
// PreviouslyRequestedImage, VendorSpecific and ProductSpecific.
type BootStatus interface {
	// Code returns the status byte.
	Code() uint8

	// Data returns the bytes which follow the status byte.
	Data() []byte

	// Validate returns an error if the status cannot be encoded.
	Validate() error

	isBootStatus()
}

// BootStatusCode is one of the outcomes without additional data.
type BootStatusCode uint8

const (
	BootStatusNoErrors                         = BootStatusCode(0)
	BootStatusNoBootableMedia                  = BootStatusCode(1)
	BootStatusOperatingSystemFailedToLoad      = BootStatusCode(2)
	BootStatusFirmwareDetectedHardwareFailure  = BootStatusCode(3)
	BootStatusOperatingSystemDetectedHWFailure = BootStatusCode(4)
	BootStatusUserRequestedBoot                = BootStatusCode(5)
	BootStatusSystemSecurityViolation          = BootStatusCode(6)
	BootStatusSystemWatchdogTimer              = BootStatusCode(8)
)

const (
	bootStatusPreviouslyRequestedImage = 7
	bootStatusVendorSpecificMin        = 128
	bootStatusVendorSpecificMax        = 191
	bootStatusProductSpecificMin       = 192
)

var bootStatusCodeNames = map[BootStatusCode]string{
	BootStatusNoErrors:                         "No errors detected",
	BootStatusNoBootableMedia:                  "No bootable media",
	BootStatusOperatingSystemFailedToLoad:      "Normal operating system failed to load",
	BootStatusFirmwareDetectedHardwareFailure:  "Firmware-detected hardware failure",
	BootStatusOperatingSystemDetectedHWFailure: "Operating system-detected hardware failure",
	BootStatusUserRequestedBoot:                "User-requested boot",
	BootStatusSystemSecurityViolation:          "System security violation",
	BootStatusSystemWatchdogTimer:              "System watchdog timer expired",
}

func (c BootStatusCode) String() string {
	return enumString(c, bootStatusCodeNames)
}

// Code implements BootStatus.
func (c BootStatusCode) Code() uint8 {
	return uint8(c)
}

// Data implements BootStatus.
func (c BootStatusCode) Data() []byte {
	return nil
}

// Validate implements BootStatus.
func (c BootStatusCode) Validate() error {
	if _, ok := bootStatusCodeNames[c]; !ok {
		return ErrInvalidBootStatus{Status: c, Err: fmt.Errorf("code %d is not one of the outcomes without data", uint8(c))}
	}
	return nil
}

func (BootStatusCode) isBootStatus() {}

// PreviouslyRequestedImage means the system was booted to the image
// requested earlier. The data is passed verbatim.
type PreviouslyRequestedImage []byte

// Code implements BootStatus.
func (PreviouslyRequestedImage) Code() uint8 {
	return bootStatusPreviouslyRequestedImage
}

// Data implements BootStatus.
func (img PreviouslyRequestedImage) Data() []byte {
	return img
}

// Validate implements BootStatus.
func (PreviouslyRequestedImage) Validate() error {
	return nil
}

func (img PreviouslyRequestedImage) String() string {
	return fmt.Sprintf("Previously-requested image (data: 0x%X)", []byte(img))
}

func (PreviouslyRequestedImage) isBootStatus() {}

// VendorSpecific is a vendor/OEM-specific status, the code is within
// [128, 191].
type VendorSpecific struct {
	StatusCode uint8
	Payload    []byte
}

// Code implements BootStatus.
func (v VendorSpecific) Code() uint8 {
	return v.StatusCode
}

// Data implements BootStatus.
func (v VendorSpecific) Data() []byte {
	return v.Payload
}

// Validate implements BootStatus.
func (v VendorSpecific) Validate() error {
	err := check.ValueRange("vendor-specific status code", uint64(v.StatusCode), bootStatusVendorSpecificMin, bootStatusVendorSpecificMax)
	if err != nil {
		return ErrInvalidBootStatus{Status: v, Err: err}
	}
	return nil
}

func (v VendorSpecific) String() string {
	return fmt.Sprintf("Vendor/OEM-specific %d (data: 0x%X)", v.StatusCode, v.Payload)
}

func (VendorSpecific) isBootStatus() {}

// ProductSpecific is a product-specific status, the code is 192 or
// above.
type ProductSpecific struct {
	StatusCode uint8
	Payload    []byte
}

// Code implements BootStatus.
func (p ProductSpecific) Code() uint8 {
	return p.StatusCode
}

// Data implements BootStatus.
func (p ProductSpecific) Data() []byte {
	return p.Payload
}

// Validate implements BootStatus.
func (p ProductSpecific) Validate() error {
	err := check.ValueRange("product-specific status code", uint64(p.StatusCode), bootStatusProductSpecificMin, 0xFF)
	if err != nil {
		return ErrInvalidBootStatus{Status: p, Err: err}
	}
	return nil
}

func (p ProductSpecific) String() string {
	return fmt.Sprintf("Product-specific %d (data: 0x%X)", p.StatusCode, p.Payload)
}

func (ProductSpecific) isBootStatus() {}
