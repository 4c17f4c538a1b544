// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/toeirei/pwgator/internal/config"
	"github.com/toeirei/pwgator/internal/i18n"
	"github.com/toeirei/pwgator/internal/policy"
	"github.com/toeirei/pwgator/internal/render"
	"golang.org/x/term"
)

// rendererFor picks the presentation for w according to the color setting.
func rendererFor(w io.Writer, mode string) render.Renderer {
	switch mode {
	case config.ColorNever:
		return render.Plain{}
	case config.ColorAlways:
		lr := lipgloss.NewRenderer(w)
		lr.SetColorProfile(termenv.ANSI256)
		return render.NewColor(lr)
	default:
		if !isTerminal(w) {
			return render.Plain{}
		}
		return render.NewColor(lipgloss.NewRenderer(w))
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// reportLabels returns the translated labels of the check report.
func reportLabels() render.ReportLabels {
	return render.ReportLabels{
		Check: func(c policy.Check) string {
			return i18n.T("check." + string(c))
		},
		Success: i18n.T("check.success"),
		Failure: i18n.T("check.failure"),
	}
}
