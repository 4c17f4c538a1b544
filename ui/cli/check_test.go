// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/toeirei/pwgator/internal/policy"
	"github.com/toeirei/pwgator/internal/render"
	"github.com/toeirei/pwgator/internal/tui"
)

func TestCheck_ReportRows(t *testing.T) {
	setupTest(t)
	out, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q", "-p", "abc", "-m", "1", "-u", "--color", "never")
	if !errors.Is(err, errPolicyFailed) {
		t.Fatalf("expected policy failure, got %v", err)
	}
	if !strings.Contains(out, "Password: abc") {
		t.Fatalf("missing password line:\n%s", out)
	}
	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(l, "| ") {
			rows = append(rows, l)
		}
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d:\n%s", len(rows), out)
	}
	if !strings.Contains(rows[0], "minimum length") || !strings.HasSuffix(rows[0], "[Success!]") {
		t.Fatalf("unexpected minimum row %q", rows[0])
	}
	if !strings.Contains(rows[1], "uppercase") || !strings.HasSuffix(rows[1], "[Failure!]") {
		t.Fatalf("unexpected uppercase row %q", rows[1])
	}
}

func TestCheck_AllPass(t *testing.T) {
	setupTest(t)
	out, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q", "-p", "Abc1$xyz", "-m", "7", "-u", "-l", "-n", "-s", "--color", "never")
	if err != nil {
		t.Fatalf("expected pass, got %v\n%s", err, out)
	}
	if strings.Count(out, "[Success!]") != 5 {
		t.Fatalf("expected five successes:\n%s", out)
	}
}

func TestCheck_TooShortForOptions(t *testing.T) {
	setupTest(t)
	out, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q", "-p", "ab", "-m", "0", "-u", "-l", "-n", "--color", "never")
	if !errors.Is(err, errPolicyFailed) || !errors.Is(err, policy.ErrInsufficientLength) {
		t.Fatalf("expected insufficient length failure, got %v", err)
	}
	if strings.TrimSpace(out) != "Error: Password is too short for the supplied options." {
		t.Fatalf("expected only the too short message, got:\n%s", out)
	}
}

func TestCheck_ReadsPasswordFromStdin(t *testing.T) {
	setupTest(t)
	out, _, err := executeCommand(t, NewRootCmd(), strings.NewReader("hunter2\n"), "check", "-q", "-n", "--color", "never")
	if err != nil {
		t.Fatalf("expected pass, got %v\n%s", err, out)
	}
	if !strings.Contains(out, "Password: hunter2") {
		t.Fatalf("password not read from stdin:\n%s", out)
	}
}

func TestCheck_EmptyStdin(t *testing.T) {
	setupTest(t)
	_, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q")
	if err == nil || errors.Is(err, errPolicyFailed) {
		t.Fatalf("expected missing password error, got %v", err)
	}
}

func TestCheck_MinimumFromConfigEnv(t *testing.T) {
	setupTest(t)
	t.Setenv("PWGATOR_CHECK_MINIMUM", "10")
	_, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q", "-p", "short", "--color", "never")
	if !errors.Is(err, errPolicyFailed) {
		t.Fatalf("expected env minimum to fail the check, got %v", err)
	}
}

func TestCheck_NegativeMinimumRejected(t *testing.T) {
	setupTest(t)
	_, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-p", "abc", "-m", "-1")
	if err == nil || errors.Is(err, errPolicyFailed) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCheck_Interactive(t *testing.T) {
	setupTest(t)
	prev := runInteractive
	var gotChecks policy.CheckSet
	runInteractive = func(checks policy.CheckSet, r render.Renderer) (string, error) {
		gotChecks = checks
		return "Typed1!", nil
	}
	defer func() { runInteractive = prev }()

	out, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q", "-i", "-u", "-s", "--color", "never")
	if err != nil {
		t.Fatalf("expected pass, got %v\n%s", err, out)
	}
	if !gotChecks.RequireUpper || !gotChecks.RequireSymbol {
		t.Fatalf("checks not passed to the interactive checker: %+v", gotChecks)
	}
	if !strings.Contains(out, "Password: Typed1!") {
		t.Fatalf("interactive password not evaluated:\n%s", out)
	}

	runInteractive = func(policy.CheckSet, render.Renderer) (string, error) { return "", tui.ErrCancelled }
	_, _, err = executeCommand(t, NewRootCmd(), nil, "check", "-q", "-i")
	if !errors.Is(err, tui.ErrCancelled) {
		t.Fatalf("expected cancellation, got %v", err)
	}
}

func TestCheck_German(t *testing.T) {
	setupTest(t)
	out, _, err := executeCommand(t, NewRootCmd(), nil, "check", "-q", "-p", "abcdef", "--language", "de", "--color", "never")
	if err != nil {
		t.Fatalf("expected pass, got %v", err)
	}
	if !strings.Contains(out, "Passwort: abcdef") || !strings.Contains(out, "[Erfolg!]") {
		t.Fatalf("expected German output:\n%s", out)
	}
}
