// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoggerPrefixes(t *testing.T) {
	var out bytes.Buffer
	l := NewLogger(log.New(&out, "", 0))

	l.Infof("wrote %d bytes", 24)
	l.Warnf("string %q was sanitized", "a\tb")
	l.Errorf("unable to encode: %v", "boom")

	require.Equal(t, "[smbios][INFO] wrote 24 bytes\n"+
		"[smbios][WARN] string \"a\\tb\" was sanitized\n"+
		"[smbios][ERROR] unable to encode: boom\n", out.String())
}

func TestPackageHelpersUseDefaultLogger(t *testing.T) {
	var out bytes.Buffer
	saved := DefaultLogger
	defer func() { DefaultLogger = saved }()
	DefaultLogger = NewLogger(log.New(&out, "", 0))

	Warnf("x=%d", 1)
	require.Equal(t, "[smbios][WARN] x=1\n", out.String())
}
