// colourcount - count the hex colours used in a configuration file
//
// colourcount reports which #RRGGBB colours a key-value configuration file
// uses, how often, and under which keys.
//
// Copyright (c) 2025 John Mylchreest
// Licensed under the MIT License
package main

import (
	"os"

	"github.com/jmylchreest/colourcount/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
