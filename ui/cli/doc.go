// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for pwgator using Cobra.
// It wires configuration, validation and rendering around the `passgen` and
// `policy` packages. CLI code should remain thin and delegate the actual
// generation and evaluation to those packages.
package cli
