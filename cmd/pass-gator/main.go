// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Command pass-gator generates passwords without the banner or subcommands.
//
//	pass-gator -n 5 -l 20 -c nlu -x
package main

import (
	"os"

	"github.com/toeirei/pwgator/ui/cli"
)

func main() {
	if err := cli.ExecutePassGator(); err != nil {
		os.Exit(1)
	}
}
