// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package render decorates generated passwords and check reports for the
// terminal. Decoration is presentation only: stripping the escape sequences
// from any output yields exactly what the plain renderer prints.
package render

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/lipgloss"
)

// Renderer styles fragments of output.
type Renderer interface {
	// Password colors each character of pw by class.
	Password(pw string) string
	// Success and Failure style a verdict badge.
	Success(s string) string
	Failure(s string) string
	// Accent styles banners and separators.
	Accent(s string) string
}

// Plain returns s unchanged everywhere.
type Plain struct{}

func (Plain) Password(pw string) string { return pw }
func (Plain) Success(s string) string   { return s }
func (Plain) Failure(s string) string   { return s }
func (Plain) Accent(s string) string    { return s }

// colorPalette mirrors the classic bright ANSI colors used for the classes.
const (
	colorUpper   = lipgloss.Color("11") // bright yellow
	colorLower   = lipgloss.Color("12") // bright blue
	colorDigit   = lipgloss.Color("10") // bright green
	colorSymbol  = lipgloss.Color("13") // bright magenta
	colorSuccess = lipgloss.Color("10")
	colorFailure = lipgloss.Color("9") // bright red
	colorAccent  = lipgloss.Color("81")
)

// Color renders with lipgloss styles bound to one output.
type Color struct {
	upper, lower, digit, symbol lipgloss.Style
	success, failure, accent    lipgloss.Style
}

// NewColor builds a Color renderer. The lipgloss renderer decides the color
// profile, so output to a pipe degrades to plain text.
func NewColor(r *lipgloss.Renderer) *Color {
	style := func(c lipgloss.Color) lipgloss.Style {
		return r.NewStyle().Foreground(c).Bold(true).TabWidth(lipgloss.NoTabConversion)
	}
	return &Color{
		upper:   style(colorUpper),
		lower:   style(colorLower),
		digit:   style(colorDigit),
		symbol:  style(colorSymbol),
		success: style(colorSuccess),
		failure: style(colorFailure),
		accent:  r.NewStyle().Foreground(colorAccent),
	}
}

func (c *Color) Password(pw string) string {
	var b strings.Builder
	for _, r := range pw {
		b.WriteString(c.styleFor(r).Render(string(r)))
	}
	return b.String()
}

func (c *Color) styleFor(r rune) lipgloss.Style {
	switch {
	case unicode.IsUpper(r):
		return c.upper
	case unicode.IsLower(r):
		return c.lower
	case unicode.IsDigit(r):
		return c.digit
	default:
		return c.symbol
	}
}

func (c *Color) Success(s string) string { return c.success.Render(s) }
func (c *Color) Failure(s string) string { return c.failure.Render(s) }
func (c *Color) Accent(s string) string  { return c.accent.Render(s) }
