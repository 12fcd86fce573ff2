// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	plexus "github.com/plexus-space/ui-sub008/cmd/plexus/cmd"

	"github.com/joho/godotenv"
)

func main() {
	ctx, cancelFn := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancelFn()

	// .env is optional; web projects commonly keep registry overrides there
	_ = godotenv.Load()

	cmd, err := plexus.RootCmd(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
	if err := cmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
