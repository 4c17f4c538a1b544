// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package passgen

import (
	crand "crypto/rand"
	"errors"
	"math/rand/v2"
	"strings"
)

// Length bounds accepted on the command line.
const (
	MinLength = 4
	MaxLength = 300
)

// ErrEmptyAlphabet is returned when the class selection and exclusions leave
// nothing to draw from.
var ErrEmptyAlphabet = errors.New("no characters left to generate from")

const letterChars = LowercaseChars + UppercaseChars

// Source draws uniform integers in [0, n). *rand.Rand from math/rand/v2
// satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSeededSource returns a deterministic source, mainly for tests.
func NewSeededSource(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSource returns a ChaCha8 source seeded from the operating system.
func NewSource() Source {
	var seed [32]byte
	// crypto/rand.Read never returns an error on supported platforms.
	_, _ = crand.Read(seed[:])
	return rand.New(rand.NewChaCha8(seed))
}

// Request describes one generation run.
type Request struct {
	Length           int
	Classes          ClassSet
	Exclusions       Exclusions
	ForceFirstLetter bool
	Count            int
}

// Generator draws passwords from an alphabet. It is not safe for concurrent
// use because its Source is not; use one Generator per goroutine.
type Generator struct {
	src Source
}

// NewGenerator returns a Generator drawing from src. A nil src gets NewSource.
func NewGenerator(src Source) *Generator {
	if src == nil {
		src = NewSource()
	}
	return &Generator{src: src}
}

// Generate draws req.Length characters. Every position is an independent,
// uniform draw over the alphabet's elements, except the first one when
// req.ForceFirstLetter is set (see firstLetters).
func (g *Generator) Generate(req Request, a Alphabet) (string, error) {
	if a.Empty() {
		return "", ErrEmptyAlphabet
	}
	var b strings.Builder
	b.Grow(req.Length)
	for i := 0; i < req.Length; i++ {
		if i == 0 && req.ForceFirstLetter {
			letters := firstLetters(req.Classes)
			b.WriteByte(letters[g.src.IntN(len(letters))])
			continue
		}
		b.WriteRune(a.At(g.src.IntN(a.Len())))
	}
	return b.String(), nil
}

// GenerateBatch runs Generate req.Count times and returns the passwords in
// draw order. A Count below one is treated as one.
func (g *Generator) GenerateBatch(req Request, a Alphabet) ([]string, error) {
	n := req.Count
	if n < 1 {
		n = 1
	}
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		pw, err := g.Generate(req, a)
		if err != nil {
			return nil, err
		}
		out = append(out, pw)
	}
	return out, nil
}

// firstLetters picks the letter set for a forced first character. Only an
// exclusive lowercase or uppercase selection narrows it; with both or neither
// selected the full latin alphabet is used, even if no letter class was
// requested. Exclusions never apply to this draw.
func firstLetters(classes ClassSet) string {
	lower, upper := classes.Has(Lowercase), classes.Has(Uppercase)
	switch {
	case lower && !upper:
		return LowercaseChars
	case upper && !lower:
		return UppercaseChars
	default:
		return letterChars
	}
}
