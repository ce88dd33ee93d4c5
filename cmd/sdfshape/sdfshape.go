// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command sdfshape emits SDFormat geometry fragments for the primitive
// shapes listed in a YAML or TOML document.
package main

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/cli"
	"github.com/mitchellh/go-homedir"
)

func main() {
	opts := cli.DefaultOptions("sdfshape", "Sdfshape emits SDFormat geometry fragments for box, sphere, cylinder, capsule, mesh and plane shapes.")
	opts.DefaultFiles = []string{"sdfshape.toml"}
	opts.IncludePaths = append(opts.IncludePaths, errors.Log1(homedir.Expand("~/.config/sdfshape")))
	cli.Run(opts, &Config{}, Emit, Tags)
}
