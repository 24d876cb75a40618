// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/linuxboot/smbios/pkg/log"
)

var controlCharacters = runes.Remove(runes.In(unicode.Cc))

// SanitizeString removes control characters (NUL included) from a string
// passed from the command line.
func SanitizeString(s string) (string, error) {
	result, _, err := transform.String(controlCharacters, s)
	if err != nil {
		return "", fmt.Errorf("unable to sanitize string %q: %w", s, err)
	}
	if result != s {
		log.Warnf("control characters were removed from string %q", s)
	}
	return result, nil
}

// ParseSize parses a human readable size like "16GiB" or "512 KiB".
// Note: "GB" is 10^9 bytes, while "GiB" is 2^30 bytes.
func ParseSize(s string) (uint64, error) {
	size, err := humanize.ParseBytes(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrArgs{Err: fmt.Errorf("invalid size '%s': %w", s, err)}
	}
	return size, nil
}
