// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for pwgator using the
// Cobra library. It defines the root command, the shared flags and the
// configuration bootstrap every subcommand runs first.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/pwgator/buildvars"
	"github.com/toeirei/pwgator/internal/config"
	"github.com/toeirei/pwgator/internal/i18n"
	"github.com/toeirei/pwgator/internal/logging"
	"github.com/toeirei/pwgator/internal/validate"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

var cfgFile string
var verbose bool
var quiet bool

var appConfig config.Config

// rootBindings map config keys to the persistent flags of the root command.
var rootBindings = map[string]string{
	"language": "language",
	"color":    "color",
}

func setupDefaultServices(cmd *cobra.Command, bindings map[string]string) error {
	return setupServices(cmd, bindings, config.Defaults())
}

// setupServices resolves appConfig against defaults and activates the
// configured language.
func setupServices(cmd *cobra.Command, bindings map[string]string, defaults map[string]any) error {
	logging.SetDebug(verbose)

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	keys := make(map[string]string, len(rootBindings)+len(bindings))
	for k, v := range rootBindings {
		keys[k] = v
	}
	for k, v := range bindings {
		keys[k] = v
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath, keys)
	// Running without a config file is the normal case.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	if appConfig.Language == "" {
		appConfig.Language = "en"
	}
	if err := validate.Language(appConfig.Language, i18n.GetAvailableLocales()); err != nil {
		return err
	}
	if i18n.GetLang() != appConfig.Language {
		i18n.SetLang(appConfig.Language)
	}
	logging.Debugf("config resolved: %+v", appConfig)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	presetLanguage(os.Args[1:])
	return run(NewRootCmd())
}

// ExecutePassGator runs the generate-only entrypoint.
func ExecutePassGator() error {
	presetLanguage(os.Args[1:])
	return run(NewPassGatorCmd())
}

// presetLanguage activates the language named by --language or
// PWGATOR_LANGUAGE before the commands are built, so that help texts are
// translated too. A language set only in the config file applies to command
// output but not to the help texts.
func presetLanguage(args []string) {
	l := os.Getenv("PWGATOR_LANGUAGE")
	for i, a := range args {
		if a == "--" {
			break
		}
		if v, ok := strings.CutPrefix(a, "--language="); ok {
			l = v
		} else if a == "--language" && i+1 < len(args) {
			l = args[i+1]
		}
	}
	if _, ok := i18n.GetAvailableLocales()[l]; ok {
		i18n.SetLang(l)
	}
}

// run executes cmd and logs failures that were not already reported.
func run(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err != nil && !errors.Is(err, errNoCommand) && !errors.Is(err, errPolicyFailed) {
		logging.Errorf("%v", err)
	}
	return err
}

// setVersion lets cobra answer -V/--version with the composite version.
func setVersion(cmd *cobra.Command) {
	cmd.Version = compositeVersion()
	cmd.SetVersionTemplate("{{.Version}}\n")
	cmd.Flags().BoolP("version", "V", false, i18n.T("root.flag.version"))
}

func addPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, i18n.T("root.flag.verbose"))
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", i18n.T("root.flag.config"))
	cmd.PersistentFlags().String("language", "en", i18n.T("root.flag.language"))
	cmd.PersistentFlags().String("color", config.ColorAuto, i18n.T("root.flag.color"))
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pwgator",
		Short: i18n.T("root.short"),
		Long: `pwgator generates random passwords from selectable character classes
and checks existing passwords against a small set of policy rules.`,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: print help and fail, as there is nothing to do.
			cmd.SetOut(cmd.ErrOrStderr())
			_ = cmd.Help()
			return errNoCommand
		},
	}
	addPersistentFlags(cmd)
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, i18n.T("root.flag.quiet"))
	setVersion(cmd)

	cmd.AddCommand(
		newWordCmd(&wordOptions{banner: true, defaults: config.Defaults()}),
		newCheckCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

var errNoCommand = errors.New("a command is required")

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: i18n.T("version.short"),
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "version: %s\n", v)
			fmt.Fprintf(out, "commit: %s\n", c)
			if d != "" {
				fmt.Fprintf(out, "built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	composite := v
	if c != "" && c != "dev" {
		composite = composite + " (" + c + ")"
	}
	if d != "" {
		composite = composite + " built: " + d
	}
	return composite
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If `info` is nil, it reads build info from
// the runtime. This helper is separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := buildvars.VersionOrDefault(version)
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}

	if info != nil {
		if resolvedVersion == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" && resolvedCommit == "dev" {
					resolvedCommit = s.Value
				}
			case "vcs.time":
				if s.Value != "" && resolvedDate == "" {
					resolvedDate = s.Value
				}
			}
		}
	}

	// As a last resort, show the commit provided via ldflags.
	if resolvedVersion == "dev" && gitCommit != "dev" && gitCommit != "" {
		resolvedVersion = gitCommit
	}

	return resolvedVersion, resolvedCommit, resolvedDate
}
