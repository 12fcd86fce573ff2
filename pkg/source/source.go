// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package source decides where a component file's canonical content lives
// (local workspace checkout vs. the remote file host) and fetches it.
package source

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/plexus-space/ui-sub008/pkg/uiconfig"
	"github.com/plexus-space/ui-sub008/pkg/utils"
)

// Mode is computed once per invocation and threaded through explicitly;
// it never changes mid-run.
type Mode int

const (
	Remote Mode = iota
	Local
)

func (m Mode) String() string {
	if m == Local {
		return "local"
	}
	return "remote"
}

// DetectMode probes for a local workspace. PLEXUS_WORKSPACE wins; otherwise
// a 'registry' directory next to the plexus binary signals local/monorepo
// mode. Absence of both means remote.
func DetectMode() (Mode, string) {
	if ws, ok := uiconfig.GetWorkspaceOverride(); ok {
		slog.Debug("workspace override set, using local mode", "root", ws)
		return Local, ws
	}

	exe, err := os.Executable()
	if err != nil {
		slog.Debug("cannot determine own binary location, assuming remote mode", "err", err.Error())
		return Remote, ""
	}

	sibling := filepath.Join(filepath.Dir(exe), uiconfig.WorkspaceDirName)
	ok, err := utils.DirExists(sibling)
	if err != nil || !ok {
		return Remote, ""
	}
	slog.Debug("found workspace next to binary, using local mode", "root", sibling)
	return Local, sibling
}

// Location is a fully-resolved content address: an absolute filesystem path
// in local mode, an absolute URL in remote mode.
type Location struct {
	Mode   Mode
	Target string
}

type Resolver struct {
	mode          Mode
	workspaceRoot string
	baseURL       string
}

func NewResolver(mode Mode, workspaceRoot, baseURL string) *Resolver {
	return &Resolver{
		mode:          mode,
		workspaceRoot: workspaceRoot,
		baseURL:       strings.TrimSuffix(baseURL, "/"),
	}
}

// Resolve maps an upstream-relative file path to its location. It performs
// no I/O; retrieval failures are the Fetcher's to report.
func (r *Resolver) Resolve(relPath string) Location {
	if r.mode == Local {
		return Location{
			Mode:   Local,
			Target: filepath.Join(r.workspaceRoot, filepath.FromSlash(relPath)),
		}
	}
	return Location{
		Mode:   Remote,
		Target: r.baseURL + "/" + relPath,
	}
}
