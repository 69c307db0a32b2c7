// Copyright (c) 2025 The basics Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"basics/cli/internal/config"
	"basics/cli/internal/logging"
	"basics/cli/internal/render"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newConfigCmd groups commands that inspect and edit the config file.
func newConfigCmd(a *app) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change saved settings",
		Long: `The config command manages the settings file in the XDG config directory.
Settings: log_level, format, pause. Environment variables (BASICS_FORMAT,
BASICS_LOG_LEVEL, BASICS_PAUSE) and flags still take precedence.`,
	}

	configCmd.AddCommand(
		&cobra.Command{
			Use:   "path",
			Short: "Print the config file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				p, err := config.Path()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), p)
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "Print the effective settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				b, err := json.MarshalIndent(a.cfg, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			},
		},
		&cobra.Command{
			Use:       "set <key> <value>",
			Short:     "Save one setting to the config file",
			Args:      cobra.ExactArgs(2),
			ValidArgs: config.Keys(),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.setConfig(cmd, args[0], args[1])
			},
		},
	)
	return configCmd
}

// setConfig validates value, then saves it on top of the file's current
// contents. Environment overrides are not written back.
func (a *app) setConfig(cmd *cobra.Command, key, value string) error {
	c, err := config.LoadFile()
	if err != nil {
		return err
	}
	if err := c.Set(key, value); err != nil {
		return err
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	p, err := config.Save(c)
	if err != nil {
		return err
	}
	a.logger.Debug("config saved", zap.String("path", p), zap.String("key", key))
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s to %s\n", key, p)
	return nil
}
