// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/pwgator/internal/i18n"
	"github.com/toeirei/pwgator/internal/policy"
	"github.com/toeirei/pwgator/internal/render"
)

func testLabels() render.ReportLabels {
	return render.ReportLabels{
		Check:   func(c policy.Check) string { return "check " + string(c) },
		Success: "[ok]",
		Failure: "[fail]",
	}
}

func typeInto(m tea.Model, s string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestModel_ReevaluatesOnInput(t *testing.T) {
	i18n.Init("en")
	var m tea.Model = NewModel(policy.CheckSet{MinimumLength: 3, RequireUpper: true}, render.Plain{}, testLabels())

	view := m.View()
	if !strings.Contains(view, i18n.T("check.too_short")) {
		t.Fatalf("expected too short message on empty input, got:\n%s", view)
	}

	m = typeInto(m, "ab")
	view = m.View()
	if !strings.Contains(view, "check minimum   | [fail]") || !strings.Contains(view, "check uppercase | [fail]") {
		t.Fatalf("expected failing checks, got:\n%s", view)
	}

	m = typeInto(m, "cD")
	view = m.View()
	if !strings.Contains(view, "check minimum   | [ok]") || !strings.Contains(view, "check uppercase | [ok]") {
		t.Fatalf("expected passing checks, got:\n%s", view)
	}
	if strings.Contains(view, "abcD") {
		t.Fatalf("password echoed in clear text:\n%s", view)
	}
	if got := m.(Model).Value(); got != "abcD" {
		t.Fatalf("unexpected value %q", got)
	}
}

func TestModel_TooShortForOptions(t *testing.T) {
	i18n.Init("en")
	var m tea.Model = NewModel(policy.CheckSet{RequireUpper: true, RequireDigit: true}, render.Plain{}, testLabels())
	m = typeInto(m, "a")
	if !strings.Contains(m.View(), i18n.T("check.too_short")) {
		t.Fatalf("expected too short message, got:\n%s", m.View())
	}
}

func TestModel_EnterSubmitsEscCancels(t *testing.T) {
	var m tea.Model = NewModel(policy.CheckSet{}, render.Plain{}, testLabels())
	m = typeInto(m, "x")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil || !m.(Model).Submitted() {
		t.Fatalf("enter should submit and quit")
	}

	m = NewModel(policy.CheckSet{}, render.Plain{}, testLabels())
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil || m.(Model).Submitted() || !m.(Model).Cancelled() {
		t.Fatalf("esc should quit without submitting")
	}
}

func TestRun_ScriptedInput(t *testing.T) {
	in := strings.NewReader("Secret1\r")
	var out bytes.Buffer
	pw, err := Run(policy.CheckSet{MinimumLength: 1}, render.Plain{}, testLabels(),
		tea.WithInput(in), tea.WithOutput(&out), tea.WithoutRenderer())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if pw != "Secret1" {
		t.Fatalf("expected submitted password, got %q", pw)
	}
}
