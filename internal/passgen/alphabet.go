// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package passgen

import (
	"fmt"
	"strings"
)

// Fixed character class alphabets.
const (
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
	NumberChars    = "0123456789"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// SimilarChars look alike in many fonts.
	SimilarChars = "il1!0o"
	// AmbiguousChars tend to be mangled by shells and config formats.
	// The comma appears twice in the historical list; harmless for filtering.
	AmbiguousChars = "{}[]()/'\"!,;:>,."
)

// Class is one of the four selectable character classes.
type Class uint8

const (
	Symbols Class = 1 << iota
	Numbers
	Lowercase
	Uppercase
)

// classOrder is the order classes are appended in when building an alphabet.
var classOrder = []Class{Symbols, Numbers, Lowercase, Uppercase}

// Tag returns the single-letter tag used on the command line.
func (c Class) Tag() byte {
	switch c {
	case Symbols:
		return 's'
	case Numbers:
		return 'n'
	case Lowercase:
		return 'l'
	case Uppercase:
		return 'u'
	}
	return '?'
}

// Chars returns the fixed alphabet of the class.
func (c Class) Chars() string {
	switch c {
	case Symbols:
		return SymbolChars
	case Numbers:
		return NumberChars
	case Lowercase:
		return LowercaseChars
	case Uppercase:
		return UppercaseChars
	}
	return ""
}

func (c Class) String() string {
	switch c {
	case Symbols:
		return "symbols"
	case Numbers:
		return "numbers"
	case Lowercase:
		return "lowercase"
	case Uppercase:
		return "uppercase"
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// ClassSet is a set of character classes.
type ClassSet uint8

// AllClasses selects every class, matching the default "snlu".
const AllClasses = ClassSet(Symbols | Numbers | Lowercase | Uppercase)

// NewClassSet returns a set containing the given classes.
func NewClassSet(classes ...Class) ClassSet {
	var s ClassSet
	for _, c := range classes {
		s |= ClassSet(c)
	}
	return s
}

// Has reports whether c is in the set.
func (s ClassSet) Has(c Class) bool { return s&ClassSet(c) != 0 }

// Empty reports whether no class is selected.
func (s ClassSet) Empty() bool { return s == 0 }

// Classes returns the members of the set in alphabet order.
func (s ClassSet) Classes() []Class {
	out := make([]Class, 0, len(classOrder))
	for _, c := range classOrder {
		if s.Has(c) {
			out = append(out, c)
		}
	}
	return out
}

// String renders the set back as command line tags, e.g. "snlu".
func (s ClassSet) String() string {
	var b strings.Builder
	for _, c := range s.Classes() {
		b.WriteByte(c.Tag())
	}
	return b.String()
}

// UnknownTagError is returned by ParseClasses for a tag outside "snlu".
type UnknownTagError struct {
	Tag rune
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("invalid character: %q", e.Tag)
}

// ParseClasses parses a tag string such as "snlu" or "ln". Tags may repeat
// and appear in any order. An empty string yields an empty set.
func ParseClasses(tags string) (ClassSet, error) {
	var s ClassSet
	for _, r := range tags {
		switch r {
		case 's':
			s |= ClassSet(Symbols)
		case 'n':
			s |= ClassSet(Numbers)
		case 'l':
			s |= ClassSet(Lowercase)
		case 'u':
			s |= ClassSet(Uppercase)
		default:
			return 0, &UnknownTagError{Tag: r}
		}
	}
	return s, nil
}

// Exclusions selects the blocklists removed from an assembled alphabet.
type Exclusions struct {
	Similar   bool
	Ambiguous bool
}

// Alphabet is the ordered multiset of characters eligible for a draw.
// Characters are not deduplicated, so a character listed twice is twice as
// likely to be drawn.
type Alphabet struct {
	runes []rune
}

// Len returns the number of elements (not distinct characters).
func (a Alphabet) Len() int { return len(a.runes) }

// Empty reports whether nothing is left to draw from.
func (a Alphabet) Empty() bool { return len(a.runes) == 0 }

// At returns the i-th element.
func (a Alphabet) At(i int) rune { return a.runes[i] }

// Contains reports whether r is an element of the alphabet.
func (a Alphabet) Contains(r rune) bool {
	for _, x := range a.runes {
		if x == r {
			return true
		}
	}
	return false
}

func (a Alphabet) String() string { return string(a.runes) }

// BuildAlphabet concatenates the selected classes in the order symbols,
// numbers, lowercase, uppercase and then strips the active blocklists.
// An empty result is not an error here; Generate reports it.
func BuildAlphabet(classes ClassSet, ex Exclusions) Alphabet {
	var runes []rune
	for _, c := range classes.Classes() {
		runes = append(runes, []rune(c.Chars())...)
	}
	if ex.Similar {
		runes = without(runes, SimilarChars)
	}
	if ex.Ambiguous {
		runes = without(runes, AmbiguousChars)
	}
	return Alphabet{runes: runes}
}

func without(runes []rune, blocked string) []rune {
	out := runes[:0]
	for _, r := range runes {
		if !strings.ContainsRune(blocked, r) {
			out = append(out, r)
		}
	}
	return out
}
