// Copyright 2016 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command vresolve resolves the scales of view specifications.
//
// vresolve reads one or more view specifications in YAML or JSON
// format, resolves which views share each channel's scale, and
// reports the resulting domains and titles.
//
//	vresolve show spec.yaml
//	vresolve query -e 'domain x' -e 'title y "coverage track"' spec.yaml
//
// A specification path of "-" reads from standard input.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/razsultana/genome-spy/spec"
	"github.com/razsultana/genome-spy/view"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vresolve",
	Short: "Resolve the scales of view specifications",
}

func main() {
	log.SetPrefix("vresolve: ")
	log.SetFlags(0)

	rootCmd.AddCommand(showCmd, queryCmd)
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// load parses and resolves the specification at path.
func load(path string) (view.View, error) {
	var root view.View
	var err error
	if path == "-" {
		root, err = spec.Parse(os.Stdin, ".")
	} else {
		root, err = spec.Load(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := view.Resolve(root); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return root, nil
}

func displayPath(path string) string {
	if path == "-" {
		return "<stdin>"
	}
	return filepath.ToSlash(path)
}
