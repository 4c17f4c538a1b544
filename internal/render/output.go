// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/toeirei/pwgator/internal/policy"
)

// Separator frames blocks of output.
const Separator = "=------------------------------------------------------------------------------="

const banner = `                                      __
        ____ _      __   ____ _____ _/ /_____  _____
       / __ \ | /| / /  / __ ` + "`" + `/ __ ` + "`" + `/ __/ __ \/ ___/
      / /_/ / |/ |/ /  / /_/ / /_/ / /_/ /_/ / /
     / .___/|__/|__/   \__, /\__,_/\__/\____/_/
    /_/               /____/

                     _.---._     .---.
            __...---' .---. ` + "`" + `---'-.   ` + "`" + `.
    ~ -~ -.-''__.--' _.'( | )` + "`" + `.  ` + "`" + `.  ` + "`" + `._ :
    -.~~ .'__-'_ .--'' ._` + "`" + `---'_.-.  ` + "`" + `.   ` + "`" + `-` + "`" + `.
    ~ ~_~-~-~_ ~ -._ -._` + "``" + `---. -.    ` + "`" + `-._   ` + "`" + `.
    ~- ~ ~ -_ -~ ~ -.._ _ _ _ ..-_ ` + "`" + `.  ` + "`" + `-._` + "``" + `--.._
        ~~-~ ~-_ _~ ~-~ ~ -~ _~~_-~ -._  ` + "`" + `-.  -. ` + "`" + `-._` + "``" + `--.._.--''. ~ -~_
            ~~ -~_-~ _~- _~~ _~-_~ ~-_~~ ~-.___    -._  ` + "`" + `-.__   ` + "`" + `. ` + "`" + `. ~ -_~
        jgs   ~~ _~- ~~- -_~  ~- ~ - _~~- _~~ ~---...__ _    ._ .` + "`" + ` ` + "`" + `. ~-_~
                ~ ~- _~~- _-_~ ~-_ ~-~ ~_-~ _~- ~_~-_~  ~--.....--~ -~_ ~
                        ~ ~ - ~  ~ ~~ - ~~-  ~~- ~-  ~ -~ ~ ~ -~~-  ~- ~-~`

// WriteBanner prints the gator banner framed by separators.
func WriteBanner(w io.Writer, r Renderer) {
	fmt.Fprintln(w, r.Accent(Separator))
	for _, line := range strings.Split(banner, "\n") {
		fmt.Fprintln(w, r.Accent(line))
	}
	fmt.Fprintln(w, r.Accent(Separator))
}

// WritePasswords prints one password per line.
func WritePasswords(w io.Writer, r Renderer, passwords []string) {
	for _, pw := range passwords {
		fmt.Fprintln(w, r.Password(pw))
	}
}

// ReportLabels supplies the text shown for each check and verdict.
type ReportLabels struct {
	Check   func(policy.Check) string
	Success string
	Failure string
}

// WriteReport prints one aligned row per verdict:
//
//	| Checking password contains numbers...              | [Success!]
//
// An insufficient report is not written here; callers print their own error.
func WriteReport(w io.Writer, r Renderer, rep policy.Report, labels ReportLabels) {
	width := 0
	for _, v := range rep.Verdicts {
		if n := len([]rune(labels.Check(v.Check))); n > width {
			width = n
		}
	}
	for _, v := range rep.Verdicts {
		label := labels.Check(v.Check)
		pad := strings.Repeat(" ", width-len([]rune(label)))
		badge := r.Failure(labels.Failure)
		if v.Passed {
			badge = r.Success(labels.Success)
		}
		fmt.Fprintf(w, "| %s%s | %s\n", label, pad, badge)
	}
}
