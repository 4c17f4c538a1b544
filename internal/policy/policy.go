// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package policy evaluates an existing password against a set of checks.
package policy

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ErrInsufficientLength is reported when the password has fewer characters
// than there are enabled character checks, so no evaluation is attempted.
var ErrInsufficientLength = errors.New("password is too short for the supplied options")

// Check names a single predicate.
type Check string

const (
	MinimumLength Check = "minimum"
	Uppercase     Check = "uppercase"
	Lowercase     Check = "lowercase"
	Digit         Check = "number"
	Symbol        Check = "symbol"
)

// CheckSet selects the predicates to evaluate. MinimumLength is always
// evaluated; the booleans toggle the character checks.
type CheckSet struct {
	MinimumLength int
	RequireUpper  bool
	RequireLower  bool
	RequireDigit  bool
	RequireSymbol bool
}

// RequiredCount is the number of enabled character checks.
func (c CheckSet) RequiredCount() int {
	n := 0
	for _, on := range []bool{c.RequireUpper, c.RequireLower, c.RequireDigit, c.RequireSymbol} {
		if on {
			n++
		}
	}
	return n
}

// Verdict is the outcome of one check.
type Verdict struct {
	Check  Check
	Passed bool
}

// Report is the result of Evaluate. When Insufficient is set, Verdicts is
// empty and the whole evaluation failed.
type Report struct {
	Insufficient bool
	Verdicts     []Verdict
}

// Passed reports whether every evaluated check passed.
func (r Report) Passed() bool {
	if r.Insufficient {
		return false
	}
	for _, v := range r.Verdicts {
		if !v.Passed {
			return false
		}
	}
	return true
}

// Err returns ErrInsufficientLength for an insufficient report, nil otherwise.
func (r Report) Err() error {
	if r.Insufficient {
		return ErrInsufficientLength
	}
	return nil
}

// Verdict returns the verdict for c, if it was evaluated.
func (r Report) Verdict(c Check) (Verdict, bool) {
	for _, v := range r.Verdicts {
		if v.Check == c {
			return v, true
		}
	}
	return Verdict{}, false
}

// Evaluate runs the enabled checks against password. Length is counted in
// characters (runes). The minimum length check passes only when the password
// is strictly longer than MinimumLength. The symbol check accepts any rune
// that is neither a letter nor a digit, which includes whitespace and
// characters the generator never produces.
func Evaluate(password string, checks CheckSet) Report {
	length := utf8.RuneCountInString(password)
	if length < checks.RequiredCount() {
		return Report{Insufficient: true}
	}

	report := Report{Verdicts: []Verdict{{Check: MinimumLength, Passed: length > checks.MinimumLength}}}
	add := func(enabled bool, c Check, pred func(rune) bool) {
		if enabled {
			report.Verdicts = append(report.Verdicts, Verdict{Check: c, Passed: strings.ContainsFunc(password, pred)})
		}
	}
	add(checks.RequireUpper, Uppercase, unicode.IsUpper)
	add(checks.RequireLower, Lowercase, unicode.IsLower)
	add(checks.RequireDigit, Digit, unicode.IsDigit)
	add(checks.RequireSymbol, Symbol, isSymbol)
	return report
}

// isSymbol mirrors "not alphanumeric": numeric runes such as '²' are not
// symbols even though the digit check does not accept them.
func isSymbol(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r)
}
