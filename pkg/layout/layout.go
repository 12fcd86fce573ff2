// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package layout decides where fetched component sources land inside the
// consuming project: it detects the project's components root and buckets
// each source file into a fixed, shallow subdirectory layout.
package layout

import (
	"path/filepath"

	"github.com/plexus-space/ui-sub008/pkg/utils"
)

// ProjectLayout is derived once per invocation and read-only afterwards.
type ProjectLayout struct {
	// ComponentsDir is the absolute root all files are installed under
	ComponentsDir string
}

// layoutCandidates are probed in order against the project dir; the first
// directory that exists decides the components root.
var layoutCandidates = []struct {
	probe         string
	componentsDir string
}{
	{"app", "components"},
	{"src/app", "src/components"},
	{"src/components", "src/components"},
	{"components", "components"},
}

const defaultComponentsDir = "components"

// Detect probes the known directory conventions under projectDir.
// componentsDirOverride, when non-empty, wins over probing.
func Detect(projectDir, componentsDirOverride string) (*ProjectLayout, error) {
	if componentsDirOverride != "" {
		return &ProjectLayout{ComponentsDir: utils.ResolvePath(projectDir, componentsDirOverride)}, nil
	}

	for _, c := range layoutCandidates {
		ok, err := utils.DirExists(filepath.Join(projectDir, filepath.FromSlash(c.probe)))
		if err != nil {
			return nil, err
		}
		if ok {
			return &ProjectLayout{ComponentsDir: filepath.Join(projectDir, filepath.FromSlash(c.componentsDir))}, nil
		}
	}

	return &ProjectLayout{ComponentsDir: filepath.Join(projectDir, defaultComponentsDir)}, nil
}
