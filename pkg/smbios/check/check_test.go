// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"errors"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestStringIndexes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		require.NoError(t, StringIndexes(2,
			StringRef{Field: "Vendor", Index: 1},
			StringRef{Field: "Version", Index: 2},
			StringRef{Field: "ReleaseDate", Index: 0},
		))
	})

	t.Run("no_strings", func(t *testing.T) {
		require.NoError(t, StringIndexes(0, StringRef{Field: "Vendor"}))
	})

	t.Run("all_violations_reported", func(t *testing.T) {
		err := StringIndexes(1,
			StringRef{Field: "Vendor", Index: 2},
			StringRef{Field: "Version", Index: 1},
			StringRef{Field: "ReleaseDate", Index: 7},
		)
		require.Error(t, err)

		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		require.Len(t, merr.Errors, 2)

		var idxErr *ErrStringIndexOutOfRange
		require.True(t, errors.As(merr.Errors[1], &idxErr))
		require.Equal(t, "ReleaseDate", idxErr.Field)
		require.Equal(t, uint8(7), idxErr.Index)
		require.Equal(t, uint(1), idxErr.Count)
	})
}

func TestValueRange(t *testing.T) {
	require.NoError(t, ValueRange("vendor code", 128, 128, 191))
	require.NoError(t, ValueRange("vendor code", 191, 128, 191))

	err := ValueRange("vendor code", 100, 128, 191)
	var rangeErr *ErrValueOutOfRange
	require.True(t, errors.As(err, &rangeErr))
	require.Equal(t, uint64(100), rangeErr.Value)
	require.Equal(t, "vendor code value 100 (0x64) is out of range [128, 191]", err.Error())
}
