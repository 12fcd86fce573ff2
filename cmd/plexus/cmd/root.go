// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"context"

	"github.com/plexus-space/ui-sub008/cmd/plexus/cmd/add"
	diffCmd "github.com/plexus-space/ui-sub008/cmd/plexus/cmd/diff"
	"github.com/plexus-space/ui-sub008/cmd/plexus/cmd/list"
	"github.com/plexus-space/ui-sub008/pkg/cliversion"
	"github.com/plexus-space/ui-sub008/pkg/logging"
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/uiconfig"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
)

const PlexusName = "plexus"

func RootCmd(ctx context.Context) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   PlexusName,
		Short: "sync plexus-space UI components into your project",
	}

	if err := logging.InitLogging(); err != nil {
		return nil, err
	}

	config, err := uiconfig.Get()
	if err != nil {
		return nil, err
	}

	reg, err := registry.Load()
	if err != nil {
		return nil, err
	}

	cmd.AddCommand(
		add.Cmd(config, reg),
		diffCmd.Cmd(config, reg),
		list.Cmd(reg),
	)

	version, err := yaml.Marshal(cliversion.Get())
	if err != nil {
		return nil, err
	}
	cmd.Version = string(version)
	cmd.SetVersionTemplate("{{.Version}}")

	return cmd, nil
}
