// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package add

import (
	"errors"
	"fmt"
	"strings"

	"github.com/plexus-space/ui-sub008/pkg/installer"
	"github.com/plexus-space/ui-sub008/pkg/layout"
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/source"
	"github.com/plexus-space/ui-sub008/pkg/uiconfig"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func Cmd(config *uiconfig.Config, reg *registry.Registry) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <component>...",
		Short: "add components and their registry dependencies to your project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if len(args) == 0 {
				return fmt.Errorf("expected at least one component. See 'plexus list'")
			}
			cmd.SilenceUsage = true

			mode, workspaceRoot := source.DetectMode()
			cmd.Printf("fetching from %s source\n", mode.String())

			lay, err := layout.Detect(config.ProjectDir, config.ComponentsDir)
			if err != nil {
				return err
			}

			if !config.SkipGitCheck {
				installer.WarnIfDirtyWorktree(config.ProjectDir)
			}

			inst := installer.New(
				reg,
				source.NewResolver(mode, workspaceRoot, config.RegistryBaseURL),
				source.NewFetcher(config.FetchTimeout),
				lay,
				config.Aliases,
				installer.RewriteImports,
				cmd,
			)

			outcome, err := inst.Install(ctx, args)
			var invalidErr *installer.InvalidComponentError
			if errors.As(err, &invalidErr) {
				return fmt.Errorf("%s. See 'plexus list'", invalidErr.Error())
			}
			if err != nil {
				return err
			}

			reportOutcome(cmd, outcome)
			if !outcome.FullySucceeded() {
				return fmt.Errorf("%d component(s) failed to install", len(outcome.Failed))
			}
			return nil
		},
	}
	return cmd
}

func reportOutcome(cmd *cobra.Command, outcome *installer.Outcome) {
	if len(outcome.Installed) > 0 {
		cmd.Println(color.GreenString("Installed %d component(s)", len(outcome.Installed)))
	}
	for _, f := range outcome.Failed {
		cmd.PrintErrln(color.RedString("failed: %s: %s", f.Id, f.Err.Error()))
	}

	// package-manager invocation stays with the caller; plexus only
	// decides the inputs
	if len(outcome.RequiredExternal) > 0 {
		cmd.Println("\nTo finish, install the required packages:")
		cmd.Println("  npm install " + strings.Join(outcome.RequiredExternal, " "))
	}
	if len(outcome.RequiredExternalDev) > 0 {
		if len(outcome.RequiredExternal) == 0 {
			cmd.Println("\nTo finish, install the required packages:")
		}
		cmd.Println("  npm install -D " + strings.Join(outcome.RequiredExternalDev, " "))
	}
}
