// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package installer orchestrates a batch install: it validates the request,
// expands it to its transitive closure, fetches and places every file, and
// aggregates per-component success/failure along with the union of external
// packages the installed components need.
package installer

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/plexus-space/ui-sub008/pkg/layout"
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/resolver"
	"github.com/plexus-space/ui-sub008/pkg/source"
	"github.com/plexus-space/ui-sub008/pkg/uiconfig"
	"github.com/plexus-space/ui-sub008/pkg/utils"
	"github.com/samber/lo"
)

const lockFileName = ".plexus.lock"

// InvalidComponentError is the fail-fast rejection of a request naming
// unknown components. It is raised before any I/O happens.
type InvalidComponentError struct {
	Ids []string
}

func (e *InvalidComponentError) Error() string {
	return fmt.Sprintf("unknown component(s): %s", strings.Join(e.Ids, ", "))
}

var _ error = (*InvalidComponentError)(nil)

// Rewriter adjusts import-path tokens in fetched content to the consuming
// project's alias configuration. It is a pure string transform and never
// fails; its rule set is product configuration, not sync logic, which is
// why it is injected rather than owned here.
type Rewriter func(content string, aliases uiconfig.Aliases) string

type Failure struct {
	Id  string
	Err error
}

// Outcome is the per-run aggregate. It is always inspectable, even for
// partially or fully failed runs.
type Outcome struct {
	Installed []string
	Failed    []Failure

	// dependency unions are computed from installed components only
	RequiredExternal    []string
	RequiredExternalDev []string
}

func (o *Outcome) FullySucceeded() bool {
	return len(o.Failed) == 0
}

type Installer struct {
	reg      *registry.Registry
	resolver *source.Resolver
	fetcher  *source.Fetcher
	layout   *layout.ProjectLayout
	aliases  uiconfig.Aliases
	rewrite  Rewriter
	printer  utils.RawPrinter
}

func New(reg *registry.Registry, res *source.Resolver, fetcher *source.Fetcher,
	lay *layout.ProjectLayout, aliases uiconfig.Aliases, rewrite Rewriter, printer utils.RawPrinter) *Installer {
	return &Installer{
		reg:      reg,
		resolver: res,
		fetcher:  fetcher,
		layout:   lay,
		aliases:  aliases,
		rewrite:  rewrite,
		printer:  printer,
	}
}

// Install fetches and places the requested components and everything they
// transitively depend on. One failing component never aborts the batch;
// failure semantics are additive, so files written before a component's
// failure stay on disk. The install is guarded by a lockfile under the
// components root so concurrent invocations cannot interleave writes.
func (i *Installer) Install(ctx context.Context, requestedIds []string) (*Outcome, error) {
	if len(requestedIds) == 0 {
		return nil, fmt.Errorf("nothing requested")
	}

	invalid := lo.Reject(requestedIds, func(id string, _ int) bool {
		_, ok := i.reg.Lookup(id)
		return ok
	})
	if len(invalid) > 0 {
		return nil, &InvalidComponentError{Ids: invalid}
	}

	closure := resolver.Closure(i.reg, requestedIds)
	slog.Debug("resolved install closure", "requested", len(requestedIds), "closure", len(closure))

	outcome := &Outcome{}
	lockFilePath := filepath.Join(i.layout.ComponentsDir, lockFileName)
	err := utils.WithInstallLock(ctx, lockFilePath, func() error {
		for _, id := range closure {
			if err := i.installComponent(ctx, id); err != nil {
				i.printer.PrintErrln("✗ " + id + ": " + err.Error())
				outcome.Failed = append(outcome.Failed, Failure{Id: id, Err: err})
				continue
			}
			i.printer.Println("✓ " + id)
			outcome.Installed = append(outcome.Installed, id)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	i.unionExternalDeps(outcome)
	return outcome, nil
}

// installComponent writes every file of one component. The first error wins
// and marks the whole component failed; already-written files are not
// rolled back.
func (i *Installer) installComponent(ctx context.Context, id string) error {
	d, ok := i.reg.Lookup(id)
	if !ok {
		// a registry dependency can point at an id the manifest no longer
		// carries. The requested ids were validated up front, so this can
		// only be a dangling edge
		return fmt.Errorf("not in registry (dangling registry dependency)")
	}

	if installed, _ := utils.FileExists(i.layout.DestinationPath(d.PrimaryFile())); installed {
		slog.Debug("component already present, overwriting", "component", id)
	}

	for _, f := range d.Files {
		content, err := i.fetcher.Fetch(ctx, i.resolver.Resolve(f))
		if err != nil {
			return err
		}

		if i.rewrite != nil {
			content = i.rewrite(content, i.aliases)
		}

		if bucketDir, ok := i.layout.BucketDir(f); ok {
			if err := utils.EnsureDirs(bucketDir); err != nil {
				return fmt.Errorf("failed to create %q: %w", bucketDir, err)
			}
		}

		dest := i.layout.DestinationPath(f)
		if err := os.WriteFile(dest, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", dest, err)
		}
		slog.Debug("installed file", "component", id, "source", f, "dest", dest)
	}
	return nil
}

func (i *Installer) unionExternalDeps(outcome *Outcome) {
	var external, externalDev []string
	for _, id := range outcome.Installed {
		d, ok := i.reg.Lookup(id)
		if !ok {
			continue
		}
		external = append(external, d.Dependencies...)
		externalDev = append(externalDev, d.DevDependencies...)
	}

	outcome.RequiredExternal = lo.Uniq(external)
	outcome.RequiredExternalDev = lo.Uniq(externalDev)
	slices.Sort(outcome.RequiredExternal)
	slices.Sort(outcome.RequiredExternalDev)
}
