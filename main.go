// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for pwgator.
//
// Usage:
//
//	go run . word -n 3 -l 16
//	./pwgator check -p 'Secret1!' -u -n -s
//
// See --help for options.
package main

import (
	"os"

	"github.com/toeirei/pwgator/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
