// Copyright 2025 The Skymosaic Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/awhiting/skymosaic/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
