// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package policy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_UppercaseMissing(t *testing.T) {
	r := Evaluate("abc", CheckSet{MinimumLength: 1, RequireUpper: true})
	require.False(t, r.Insufficient)
	assert.Equal(t, []Verdict{
		{Check: MinimumLength, Passed: true},
		{Check: Uppercase, Passed: false},
	}, r.Verdicts)
	assert.False(t, r.Passed())
	assert.NoError(t, r.Err())
}

func TestEvaluate_InsufficientLength(t *testing.T) {
	r := Evaluate("ab", CheckSet{RequireUpper: true, RequireLower: true, RequireDigit: true})
	assert.True(t, r.Insufficient)
	assert.Empty(t, r.Verdicts)
	assert.False(t, r.Passed())
	assert.True(t, errors.Is(r.Err(), ErrInsufficientLength))
}

func TestEvaluate_LengthEqualToRequiredCountIsEvaluated(t *testing.T) {
	r := Evaluate("aB", CheckSet{RequireUpper: true, RequireLower: true})
	require.False(t, r.Insufficient)
	assert.Len(t, r.Verdicts, 3)
}

func TestEvaluate_MinimumLengthIsStrict(t *testing.T) {
	r := Evaluate("abcd", CheckSet{MinimumLength: 4})
	v, ok := r.Verdict(MinimumLength)
	require.True(t, ok)
	assert.False(t, v.Passed)

	r = Evaluate("abcde", CheckSet{MinimumLength: 4})
	v, _ = r.Verdict(MinimumLength)
	assert.True(t, v.Passed)
}

func TestEvaluate_MinimumLengthAlwaysReported(t *testing.T) {
	r := Evaluate("", CheckSet{})
	require.Len(t, r.Verdicts, 1)
	assert.Equal(t, MinimumLength, r.Verdicts[0].Check)
	assert.False(t, r.Verdicts[0].Passed)
}

func TestEvaluate_AllChecksPass(t *testing.T) {
	r := Evaluate("Abc1$xyz", CheckSet{MinimumLength: 7, RequireUpper: true, RequireLower: true, RequireDigit: true, RequireSymbol: true})
	assert.True(t, r.Passed())
	var got []Check
	for _, v := range r.Verdicts {
		got = append(got, v.Check)
	}
	assert.Equal(t, []Check{MinimumLength, Uppercase, Lowercase, Digit, Symbol}, got)
}

func TestEvaluate_DisabledChecksOmitted(t *testing.T) {
	r := Evaluate("abc", CheckSet{RequireDigit: true})
	_, ok := r.Verdict(Uppercase)
	assert.False(t, ok)
	v, ok := r.Verdict(Digit)
	require.True(t, ok)
	assert.False(t, v.Passed)
}

func TestEvaluate_SymbolAcceptsWhitespaceAndNonASCII(t *testing.T) {
	for _, pw := range []string{"ab cd", "abc€", "tab\there"} {
		v, ok := Evaluate(pw, CheckSet{RequireSymbol: true}).Verdict(Symbol)
		require.True(t, ok, pw)
		assert.True(t, v.Passed, pw)
	}
	v, _ := Evaluate("abcé12", CheckSet{RequireSymbol: true}).Verdict(Symbol)
	assert.False(t, v.Passed)
}

func TestEvaluate_CountsRunesNotBytes(t *testing.T) {
	// Four runes, eight bytes.
	r := Evaluate("äöüß", CheckSet{MinimumLength: 4, RequireLower: true})
	v, _ := r.Verdict(MinimumLength)
	assert.False(t, v.Passed)
	v, _ = r.Verdict(Lowercase)
	assert.True(t, v.Passed)
}

func TestCheckSet_RequiredCount(t *testing.T) {
	assert.Equal(t, 0, CheckSet{MinimumLength: 10}.RequiredCount())
	assert.Equal(t, 4, CheckSet{RequireUpper: true, RequireLower: true, RequireDigit: true, RequireSymbol: true}.RequiredCount())
}
