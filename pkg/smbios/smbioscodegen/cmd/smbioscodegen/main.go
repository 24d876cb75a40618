// Copyright 2017-2024 the LinuxBoot Authors. All rights reserved
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// smbioscodegen generates the methods of SMBIOS structure schemas.
//
// A schema is a struct declared in a file with directive
// "//go:generate smbioscodegen", which embeds Header with tags "type"
// and "length". For each schema the generator writes file
// <name>_smbioscodegen.go with the constructor, setters, serializer,
// validator and pretty printer. It also asserts at compile time that the
// fields add up to the mandated length.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/linuxboot/smbios/pkg/log"
	"github.com/linuxboot/smbios/pkg/smbios/smbioscodegen/pkg/analyze"
)

func processPath(path string, isCheck bool) error {
	var goPaths []string
	if gopathEnv := os.Getenv("GOPATH"); gopathEnv != "" {
		goPaths = filepath.SplitList(gopathEnv)
	} else {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("unable to determine the homedir: %w", err)
		}

		goPaths = append(goPaths, filepath.Join(homeDir, "go"))
	}

	dirInfo, err := analyze.Scan(path, goPaths)
	if err != nil {
		return fmt.Errorf("unable to analyze path '%s': %w", path, err)
	}

	for _, fileInfo := range dirInfo.Files {
		err := generateMethodsFile(*fileInfo, isCheck)
		if err != nil {
			return err
		}
	}

	return nil
}

func processPaths(paths []string, checkFlag bool) int {
	errorCount := 0
	for _, path := range paths {
		err := processPath(path, checkFlag)
		if err != nil {
			log.Errorf("%v", err)
			errorCount++
		}
	}

	return errorCount
}

func main() {
	checkFlag := flag.Bool("check", false, "only check that the generated files are up-to-date")
	flag.Parse()

	var paths []string

	switch {
	case flag.NArg() > 0:
		paths = append(paths, flag.Args()...)
	default:
		// "go generate" runs the generator in the directory of the package,
		// and all the schemas of the package are processed at once.
		paths = append(paths, ".")
	}

	errorCount := processPaths(paths, *checkFlag)
	if errorCount != 0 {
		log.Fatalf("%d path(s) failed", errorCount)
	}
}
