// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui provides the interactive password checker: a masked input
// field with the policy report re-evaluated on every keystroke.
package tui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwgator/internal/i18n"
	"github.com/toeirei/pwgator/internal/policy"
	"github.com/toeirei/pwgator/internal/render"
)

// ErrCancelled is returned by Run when the user quits without submitting.
var ErrCancelled = errors.New("check cancelled")

// Model is the bubbletea model of the checker.
type Model struct {
	input     textinput.Model
	checks    policy.CheckSet
	renderer  render.Renderer
	labels    render.ReportLabels
	submitted bool
	cancelled bool
}

// NewModel returns a focused checker for checks.
func NewModel(checks policy.CheckSet, r render.Renderer, labels render.ReportLabels) Model {
	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.placeholder")
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Prompt = "> "
	ti.Focus()
	return Model{input: ti, checks: checks, renderer: r, labels: labels}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		case tea.KeyEsc, tea.KeyCtrlC:
			m.cancelled = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	rep := policy.Evaluate(m.input.Value(), m.checks)
	if rep.Insufficient {
		b.WriteString(errorStyle.Render(i18n.T("check.too_short")))
		b.WriteString("\n")
	} else {
		render.WriteReport(&b, m.renderer, rep, m.labels)
	}
	b.WriteString(helpStyle.Render(i18n.T("tui.help")))
	return b.String()
}

// Value returns the current input.
func (m Model) Value() string { return m.input.Value() }

// Submitted reports whether the user confirmed the input with enter.
func (m Model) Submitted() bool { return m.submitted }

// Cancelled reports whether the user left with esc or ctrl+c.
func (m Model) Cancelled() bool { return m.cancelled }

// Run shows the checker until the user submits or cancels and returns the
// submitted password.
func Run(checks policy.CheckSet, r render.Renderer, labels render.ReportLabels, opts ...tea.ProgramOption) (string, error) {
	final, err := tea.NewProgram(NewModel(checks, r, labels), opts...).Run()
	if err != nil {
		return "", err
	}
	m, ok := final.(Model)
	if !ok || m.Cancelled() || !m.Submitted() {
		return "", ErrCancelled
	}
	return m.Value(), nil
}
