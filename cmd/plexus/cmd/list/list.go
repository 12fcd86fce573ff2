// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"fmt"

	"github.com/plexus-space/ui-sub008/pkg/registry"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func Cmd(reg *registry.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "list the components available in the registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Println(renderTable(reg))
			return nil
		},
	}
}

func renderTable(reg *registry.Registry) string {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		Rows(lo.Map(reg.Ids(), func(id string, _ int) []string {
			d, _ := reg.Lookup(id)

			name := id
			if len(d.RegistryDependencies) > 0 {
				name = fmt.Sprintf("%s\t(needs %d)", id, len(d.RegistryDependencies))
			}

			category := d.Category
			if category == "" {
				category = lipgloss.NewStyle().Faint(true).Italic(true).Render("uncategorized")
			}

			return []string{
				name,
				category,
				d.Description,
			}
		})...).
		String()
}
