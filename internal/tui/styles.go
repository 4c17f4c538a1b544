// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import "github.com/charmbracelet/lipgloss"

// colorPalette defines the colors used around the report.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal
	colorError     = lipgloss.Color("196") // Bright red
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorHighlight).Bold(true).MarginBottom(1)
	helpStyle  = lipgloss.NewStyle().Foreground(colorSubtle).MarginTop(1)
	errorStyle = lipgloss.NewStyle().Foreground(colorError)
)
