// Copyright (c) 2025 The basics Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"basics/cli/internal/lesson"

	"github.com/spf13/cobra"
)

// newLessonCmd exposes a single lesson as its own subcommand.
func newLessonCmd(a *app, l lesson.Lesson) *cobra.Command {
	return &cobra.Command{
		Use:   l.Name,
		Short: "Lesson: " + l.Summary,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLessons(cmd.OutOrStdout(), []lesson.Lesson{l})
		},
	}
}

// newRunCmd runs several lessons; with no arguments it runs them all.
func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run [lesson...]",
		Short: "Run lessons in sequence",
		Long: `The run command executes the named lessons in the order given. Without
arguments every lesson runs, in teaching order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			lessons, err := a.registry.Resolve(args)
			if err != nil {
				return err
			}
			return a.runLessons(cmd.OutOrStdout(), lessons)
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return a.registry.Names(), cobra.ShellCompDirectiveNoFileComp
		},
	}
}
