// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package uiconfig

import "time"

const (
	// DefaultRegistryBaseURL is the public file host serving the canonical
	// component sources. File URLs are formed as <base>/<relative-path>.
	DefaultRegistryBaseURL = "https://ui.plexus-space.dev/registry"

	// ProjectConfigFilename is the optional per-project config file,
	// looked up in the invoking working directory.
	ProjectConfigFilename = "plexus.yaml"

	// WorkspaceDirName is the sibling directory (relative to the plexus
	// binary) whose presence signals local/monorepo mode.
	WorkspaceDirName = "registry"

	DefaultFetchTimeout = 15 * time.Second

	UserAgentPrefix = "plexus"
)
