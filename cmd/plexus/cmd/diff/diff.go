// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package diff

import (
	"fmt"

	"github.com/plexus-space/ui-sub008/pkg/diffengine"
	"github.com/plexus-space/ui-sub008/pkg/layout"
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/source"
	"github.com/plexus-space/ui-sub008/pkg/uiconfig"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
)

func Cmd(config *uiconfig.Config, reg *registry.Registry) *cobra.Command {
	var showContents bool

	cmd := &cobra.Command{
		Use:   "diff <component>",
		Short: "report drift between installed files and their upstream versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) != 1 {
				return fmt.Errorf("expected a single argument <component>")
			}
			cmd.SilenceUsage = true

			mode, workspaceRoot := source.DetectMode()
			lay, err := layout.Detect(config.ProjectDir, config.ComponentsDir)
			if err != nil {
				return err
			}

			report, err := diffengine.Diff(ctx, reg,
				source.NewResolver(mode, workspaceRoot, config.RegistryBaseURL),
				source.NewFetcher(config.FetchTimeout),
				lay, args[0])
			if err != nil {
				return err
			}

			renderReport(cmd, report, showContents)
			return nil
		},
	}

	cmd.Flags().BoolVar(&showContents, "contents", false, "print the changed hunks for drifted files")
	return cmd
}

func renderReport(cmd *cobra.Command, report *diffengine.Report, showContents bool) {
	dmp := diffmatchpatch.New()

	for _, f := range report.Files {
		switch f.State {
		case diffengine.Missing:
			cmd.Println(color.RedString("missing     %s", f.Dest))
		case diffengine.Changed:
			cmd.Println(color.YellowString("changed     %s", f.Dest))
			if showContents {
				diffs := dmp.DiffMain(f.Local, f.Upstream, false)
				cmd.Println(dmp.DiffPrettyText(diffs))
			}
		default:
			cmd.Println(color.GreenString("up-to-date  %s", f.Dest))
		}
	}

	for _, s := range report.Skipped {
		cmd.PrintErrln(color.YellowString("warning: could not check %s: %s", s.Path, s.Err.Error()))
	}

	cmd.Printf("\n%s: %s\n", report.Id, report.Verdict().String())
}
