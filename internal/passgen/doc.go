// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package passgen builds candidate alphabets from character classes and draws
// passwords from them. It is pure: randomness is injected through Source so
// callers (and tests) control seeding. Rendering and input validation live in
// other packages.
package passgen
