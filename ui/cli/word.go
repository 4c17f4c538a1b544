// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"github.com/toeirei/pwgator/internal/config"
	"github.com/toeirei/pwgator/internal/i18n"
	"github.com/toeirei/pwgator/internal/logging"
	"github.com/toeirei/pwgator/internal/passgen"
	"github.com/toeirei/pwgator/internal/render"
	"github.com/toeirei/pwgator/internal/validate"
)

// wordBindings map config keys to the flags of the word command.
var wordBindings = map[string]string{
	"generate.length":     "length",
	"generate.characters": "characters",
	"generate.number":     "number",
	"generate.similar":    "similar",
	"generate.ambiguous":  "ambiguous",
	"generate.letter":     "letter",
}

// newSource is swapped in tests for a seeded source.
var newSource = passgen.NewSource

// copyToClipboard is swapped in tests; real clipboards are unavailable in CI.
var copyToClipboard = clipboard.WriteAll

type wordOptions struct {
	copy     bool
	banner   bool
	defaults map[string]any
}

const wordLong = `Generates one or more random passwords.

Characters are drawn from the selected classes ([s]ymbols, [n]umbers,
[l]owercase, [u]ppercase). Similar looking or syntactically ambiguous
characters can be excluded, and the first character can be forced to a letter.`

func addWordFlags(cmd *cobra.Command, opts *wordOptions) {
	length, _ := opts.defaults["generate.length"].(int)
	f := cmd.Flags()
	f.IntP("number", "n", 1, i18n.T("word.flag.number"))
	f.IntP("length", "l", length, i18n.T("word.flag.length"))
	f.StringP("characters", "c", "snlu", i18n.T("word.flag.characters"))
	f.BoolP("similar", "x", false, i18n.T("word.flag.similar"))
	f.BoolP("ambiguous", "a", false, i18n.T("word.flag.ambiguous"))
	f.BoolP("letter", "f", false, i18n.T("word.flag.letter"))
	f.BoolVar(&opts.copy, "copy", false, i18n.T("word.flag.copy"))
}

// newWordCmd builds a word command resolving its settings against opts.defaults.
func newWordCmd(opts *wordOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "word",
		Short: i18n.T("word.short"),
		Long:  wordLong,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setupServices(cmd, wordBindings, opts.defaults)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWord(cmd, opts)
		},
	}
	addWordFlags(cmd, opts)
	return cmd
}

// NewPassGatorCmd builds the generate-only command line. It only knows the
// word command, generates 4 character passwords by default and never prints
// the banner.
func NewPassGatorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pass-gator",
		Short:         i18n.T("word.short"),
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetOut(cmd.ErrOrStderr())
			_ = cmd.Help()
			return errNoCommand
		},
	}
	addPersistentFlags(cmd)
	setVersion(cmd)
	cmd.AddCommand(newWordCmd(&wordOptions{defaults: config.PassGatorDefaults()}))
	return cmd
}

func runWord(cmd *cobra.Command, opts *wordOptions) error {
	gen := appConfig.Generate
	req, err := validate.Generate(validate.GenerateInput{
		Length:           gen.Length,
		Characters:       gen.Characters,
		Count:            gen.Number,
		ExcludeSimilar:   gen.Similar,
		ExcludeAmbiguous: gen.Ambiguous,
		FirstLetter:      gen.Letter,
	})
	if err != nil {
		return err
	}
	cmd.SilenceUsage = true

	alphabet := passgen.BuildAlphabet(req.Classes, req.Exclusions)
	logging.Debugf("alphabet %q (%d elements) for classes %q", alphabet, alphabet.Len(), req.Classes)

	passwords, err := passgen.NewGenerator(newSource()).GenerateBatch(req, alphabet)
	if err != nil {
		return fmt.Errorf("classes %q: %w", req.Classes.String(), err)
	}

	out := cmd.OutOrStdout()
	r := rendererFor(out, appConfig.Color)
	showBanner := opts.banner && !quiet
	if showBanner {
		render.WriteBanner(out, r)
		fmt.Fprintln(out, i18n.T("word.generating"))
	}
	render.WritePasswords(out, r, passwords)
	if showBanner {
		fmt.Fprintln(out, r.Accent(render.Separator))
	}

	if opts.copy {
		last := passwords[len(passwords)-1]
		if err := copyToClipboard(last); err != nil {
			logging.Warnf("%s", i18n.T("word.copy_failed", err))
		} else {
			fmt.Fprintln(cmd.ErrOrStderr(), i18n.T("word.copied"))
		}
	}
	return nil
}
