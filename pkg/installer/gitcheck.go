// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"log/slog"

	"github.com/go-git/go-git/v5"
)

// WarnIfDirtyWorktree logs a warning when the project's git worktree has
// uncommitted changes, since an install may overwrite previously installed
// files. Projects that are not git repositories are skipped. The check
// never blocks an install.
func WarnIfDirtyWorktree(projectDir string) {
	repo, err := git.PlainOpenWithOptions(projectDir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		slog.Debug("no git repository detected, skipping worktree check", "dir", projectDir)
		return
	}

	wt, err := repo.Worktree()
	if err != nil {
		return
	}
	status, err := wt.Status()
	if err != nil {
		slog.Debug("failed to read worktree status", "err", err.Error())
		return
	}

	if !status.IsClean() {
		slog.Warn("git worktree has uncommitted changes; installed files may overwrite local edits")
	}
}
