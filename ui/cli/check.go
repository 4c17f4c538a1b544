// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/toeirei/pwgator/internal/i18n"
	"github.com/toeirei/pwgator/internal/policy"
	"github.com/toeirei/pwgator/internal/render"
	"github.com/toeirei/pwgator/internal/tui"
	"github.com/toeirei/pwgator/internal/validate"
	"golang.org/x/term"
)

// errPolicyFailed is returned when the report was printed but did not pass.
var errPolicyFailed = errors.New("password does not satisfy the policy")

// checkBindings map config keys to the flags of the check command.
var checkBindings = map[string]string{
	"check.minimum": "minimum",
}

// runInteractive is swapped in tests.
var runInteractive = func(checks policy.CheckSet, r render.Renderer) (string, error) {
	return tui.Run(checks, r, reportLabels())
}

type checkOptions struct {
	password    string
	uppercase   bool
	lowercase   bool
	number      bool
	symbol      bool
	interactive bool
}

func newCheckCmd() *cobra.Command {
	opts := &checkOptions{}
	cmd := &cobra.Command{
		Use:   "check",
		Short: i18n.T("check.short"),
		Long: `Checks a password against a minimum length and, optionally, the presence
of uppercase letters, lowercase letters, numbers and special characters.

Without --password the password is read from the terminal (hidden) or from
standard input.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, checkBindings)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.password, "password", "p", "", i18n.T("check.flag.password"))
	f.IntP("minimum", "m", 1, i18n.T("check.flag.minimum"))
	f.BoolVarP(&opts.uppercase, "uppercase", "u", false, i18n.T("check.flag.uppercase"))
	f.BoolVarP(&opts.lowercase, "lowercase", "l", false, i18n.T("check.flag.lowercase"))
	f.BoolVarP(&opts.number, "number", "n", false, i18n.T("check.flag.number"))
	f.BoolVarP(&opts.symbol, "symbol", "s", false, i18n.T("check.flag.symbol"))
	f.BoolVarP(&opts.interactive, "interactive", "i", false, i18n.T("check.flag.interactive"))
	return cmd
}

func runCheck(cmd *cobra.Command, opts *checkOptions) error {
	checks, err := validate.Check(validate.CheckInput{
		Minimum:   appConfig.Check.Minimum,
		Uppercase: opts.uppercase,
		Lowercase: opts.lowercase,
		Number:    opts.number,
		Symbol:    opts.symbol,
	})
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	out := cmd.OutOrStdout()
	r := rendererFor(out, appConfig.Color)

	password := opts.password
	switch {
	case cmd.Flags().Changed("password"):
	case opts.interactive:
		if password, err = runInteractive(checks, r); err != nil {
			return err
		}
	default:
		if password, err = readPassword(cmd.InOrStdin(), cmd.ErrOrStderr()); err != nil {
			return err
		}
	}

	if !quiet {
		render.WriteBanner(out, r)
	}

	rep := policy.Evaluate(password, checks)
	if rep.Insufficient {
		fmt.Fprintln(out, r.Failure(i18n.T("check.too_short")))
		return fmt.Errorf("%w: %w", errPolicyFailed, rep.Err())
	}

	fmt.Fprintln(out, i18n.T("check.password_label")+r.Password(password))
	fmt.Fprintln(out, r.Accent(render.Separator))
	render.WriteReport(out, r, rep, reportLabels())
	fmt.Fprintln(out, r.Accent(render.Separator))

	if !rep.Passed() {
		return errPolicyFailed
	}
	return nil
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise.
func readPassword(in io.Reader, prompt io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(prompt, i18n.T("check.prompt"))
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading password: %w", err)
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", errors.New(i18n.T("check.no_password"))
	}
	return strings.TrimRight(line, "\r\n"), nil
}
