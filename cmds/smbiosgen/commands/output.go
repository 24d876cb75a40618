// Copyright 2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commands

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/linuxboot/smbios/pkg/log"
	"github.com/linuxboot/smbios/pkg/smbios"
)

// Stdout is where the hex dumps and the human readable descriptions are
// printed to.
var Stdout io.Writer = os.Stdout

// Structure is a structure a command could output.
type Structure interface {
	smbios.Structure
	PrettyString(depth uint, withHeader bool) string
}

// Output is the set of options of the commands which encode a structure.
type Output struct {
	Path   string `short:"o" long:"output" description:"write the raw bytes into the file instead of printing a hex dump"`
	Pretty bool   `long:"pretty" description:"also print the structure in a human readable form"`
}

// Write outputs the encoded structure.
func (out Output) Write(s Structure) error {
	b := smbios.Marshal(s)
	if out.Pretty {
		fmt.Fprintln(Stdout, s.PrettyString(0, true))
	}

	if out.Path == "" {
		_, err := fmt.Fprint(Stdout, hex.Dump(b))
		return err
	}

	if err := os.WriteFile(out.Path, b, 0644); err != nil {
		return fmt.Errorf("unable to write the structure into '%s': %w", out.Path, err)
	}
	log.Infof("wrote %d bytes into '%s'", len(b), out.Path)
	return nil
}
