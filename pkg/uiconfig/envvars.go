// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package uiconfig

const envVarPrefix = "PLEXUS_"

const (
	// RegistryURLEnvVar
	// PLEXUS_REGISTRY_URL overrides the base URL from which component sources are fetched
	RegistryURLEnvVar = envVarPrefix + "REGISTRY_URL"

	// WorkspaceEnvVar
	// PLEXUS_WORKSPACE forces local mode and points at the workspace root
	// containing the registry sources. Normally local mode is detected by
	// probing for a 'registry' directory next to the plexus binary
	WorkspaceEnvVar = envVarPrefix + "WORKSPACE"

	// FetchTimeoutEnvVar
	// PLEXUS_FETCH_TIMEOUT bounds a single fetch request, using Go duration
	// syntax (e.g. "30s").
	// 	Default: 15s
	FetchTimeoutEnvVar = envVarPrefix + "FETCH_TIMEOUT"

	// LogLevelEnvVar
	// PLEXUS_LOG_LEVEL sets the log level.
	// 	Default: info
	//  Possible values: info error warn debug
	LogLevelEnvVar = envVarPrefix + "LOG_LEVEL"

	// SkipGitCheckEnvVar
	// PLEXUS_SKIP_GIT_CHECK disables the dirty-worktree warning emitted
	// before installed files are overwritten. Useful in CI
	SkipGitCheckEnvVar = envVarPrefix + "SKIP_GIT_CHECK"
)
