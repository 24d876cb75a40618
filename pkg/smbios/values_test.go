// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package smbios_test

import (
	"testing"

	"github.com/linuxboot/smbios/pkg/smbios"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	const str = "4c4c4544-0051-3610-8052-b4c04f4c3132"
	uuid, err := smbios.ParseUUID(str)
	require.NoError(t, err)
	require.Equal(t, smbios.UUID{
		0x44, 0x45, 0x4c, 0x4c, 0x51, 0x00, 0x10, 0x36,
		0x80, 0x52, 0xb4, 0xc0, 0x4f, 0x4c, 0x31, 0x32,
	}, uuid)
	require.Equal(t, str, uuid.String())

	for _, bad := range []string{"", "4c4c4544005136108052b4c04f4c3132", "4c4c4544-0051-3610-8052-b4c04f4c31zz"} {
		_, err := smbios.ParseUUID(bad)
		require.Error(t, err, bad)
	}
}

func TestUint128(t *testing.T) {
	require.Equal(t, "0x2A", smbios.NewUint128(42).String())
	require.Equal(t, "0x10000000000000002", smbios.Uint128{Lo: 2, Hi: 1}.String())

	var buf smbios.Buffer
	smbios.Uint128{Lo: 0x0807060504030201, Hi: 0x100F0E0D0C0B0A09}.Serialize(&buf)
	require.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}, buf.Bytes())
}

func TestFlagsString(t *testing.T) {
	require.Equal(t, "Machine|Supervisor|User",
		(smbios.RISCVPrivilegeLevelMachine | smbios.RISCVPrivilegeLevelSupervisor | smbios.RISCVPrivilegeLevelUser).String())
	require.Equal(t, "PCI|0x40000000", (smbios.BIOSCharacteristicsPCISupported | 1<<30).String())
	require.Equal(t, "0x0", smbios.SRAMType(0).String())
}

func TestEnumString(t *testing.T) {
	require.Equal(t, "RISC-V RV64", smbios.ProcessorFamily2RISCVRV64.String())
	require.Equal(t, "0x7F", smbios.XLEN(0x7F).String())
	require.Equal(t, "64-bit", smbios.XLEN64.String())
	require.Equal(t, "Memory Device", smbios.Type(17).String())
	require.Equal(t, "type 200", smbios.Type(200).String())
	require.Equal(t, "not provided", smbios.HandleNotProvided.String())
	require.Equal(t, "42", smbios.Handle(42).String())
}

func TestCacheConfiguration(t *testing.T) {
	var cfg smbios.CacheConfiguration
	require.NoError(t, cfg.SetLevel(3))
	require.NoError(t, cfg.SetLocation(smbios.CacheLocationInternal))
	require.NoError(t, cfg.SetOperationalMode(smbios.CacheOperationalModeUnknown))
	cfg.SetEnabled(true)
	cfg.SetSocketed(true)

	require.Equal(t, smbios.CacheConfiguration(0x0300|0x80|0x08|0x02), cfg)
	require.Equal(t, uint8(3), cfg.Level())
	require.True(t, cfg.Enabled())
	require.True(t, cfg.Socketed())
	require.Equal(t, smbios.CacheLocationInternal, cfg.Location())
	require.Equal(t, smbios.CacheOperationalModeUnknown, cfg.OperationalMode())

	cfg.SetSocketed(false)
	require.False(t, cfg.Socketed())
	require.Equal(t, uint8(3), cfg.Level())

	t.Run("overflow", func(t *testing.T) {
		before := cfg
		require.ErrorAs(t, cfg.SetLevel(9), &smbios.ErrBitFieldOverflow{})
		require.ErrorAs(t, cfg.SetLevel(0), &smbios.ErrBitFieldOverflow{})
		require.ErrorAs(t, cfg.SetLocation(4), &smbios.ErrBitFieldOverflow{})
		require.ErrorAs(t, cfg.SetOperationalMode(4), &smbios.ErrBitFieldOverflow{})
		require.Equal(t, before, cfg)
	})
}

func TestProcessorStatus(t *testing.T) {
	s, err := smbios.NewProcessorStatus(true, smbios.CPUStatusEnabled)
	require.NoError(t, err)
	require.Equal(t, smbios.ProcessorStatus(0x41), s)
	require.True(t, s.SocketPopulated())
	require.Equal(t, smbios.CPUStatusEnabled, s.CPUStatus())

	_, err = smbios.NewProcessorStatus(true, smbios.CPUStatus(8))
	require.ErrorAs(t, err, &smbios.ErrBitFieldOverflow{})
}

func TestTPMVendorID(t *testing.T) {
	require.Equal(t, "NTC", smbios.TPMVendorID{'N', 'T', 'C', 0}.String())
	require.Equal(t, "IBM ", smbios.TPMVendorID{'I', 'B', 'M', ' '}.String())
}
