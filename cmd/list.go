// Copyright (c) 2025 The basics Authors
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"basics/cli/internal/render"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

type listEntry struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Summary string `json:"summary"`
}

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available lessons",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			lessons := a.registry.All()

			switch a.outFormat {
			case render.FormatJSON:
				entries := make([]listEntry, 0, len(lessons))
				for _, l := range lessons {
					entries = append(entries, listEntry{Name: l.Name, Title: l.Title, Summary: l.Summary})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(entries)
			case render.FormatPretty:
				data := pterm.TableData{{"Lesson", "Summary"}}
				for _, l := range lessons {
					data = append(data, []string{l.Name, l.Summary})
				}
				table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
				if err != nil {
					return err
				}
				fmt.Fprintln(out, table)
				return nil
			default:
				for _, l := range lessons {
					fmt.Fprintf(out, "%-10s %s\n", l.Name, l.Summary)
				}
				return nil
			}
		},
	}
}
