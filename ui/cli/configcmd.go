// Copyright (c) 2026 pwgator Team
// pwgator - password generator and policy checker
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/toeirei/pwgator/internal/config"
	"github.com/toeirei/pwgator/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: i18n.T("config.short"),
	}

	show := &cobra.Command{
		Use:   "show",
		Short: i18n.T("config.show.short"),
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(&appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	var system bool
	initCmd := &cobra.Command{
		Use:   "init",
		Short: i18n.T("config.init.short"),
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return setupDefaultServices(cmd, nil)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.WriteConfigFile(&appConfig, system); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}
			path, _ := config.GetConfigPath(system)
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("config.init.wrote", path))
			return nil
		},
	}
	initCmd.Flags().BoolVar(&system, "system", false, i18n.T("config.init.flag.system"))

	cmd.AddCommand(show, initCmd)
	return cmd
}
