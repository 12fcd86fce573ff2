// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package uiconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/plexus-space/ui-sub008/pkg/cliversion"
	"github.com/plexus-space/ui-sub008/pkg/utils"
)

// Aliases maps import-path tokens found in upstream sources to the tokens
// the consuming project uses, e.g. "@plexus/ui" -> "@/components".
// The mapping is project-specific configuration, not sync logic.
type Aliases map[string]string

type Config struct {
	// ProjectDir is the directory plexus was invoked from. All layout
	// probing happens beneath it
	ProjectDir string `yaml:"-"`

	// ComponentsDir overrides the detected components root (relative to
	// ProjectDir unless absolute)
	ComponentsDir string `yaml:"components-dir,omitempty"`

	Aliases Aliases `yaml:"aliases,omitempty"`

	RegistryBaseURL string `yaml:"registry,omitempty"`

	FetchTimeout time.Duration `yaml:"-"`

	SkipGitCheck bool `yaml:"-"`
}

func Get() (*Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return GetWithProjectDir(cwd)
}

func GetWithProjectDir(projectDir string) (*Config, error) {
	config := Config{}

	// plexus.yaml is optional
	configFilePath := filepath.Join(projectDir, ProjectConfigFilename)
	fileInfo, err := os.Stat(configFilePath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	} else {
		if fileInfo.IsDir() {
			return nil, fmt.Errorf("%q is directory and not a file", configFilePath)
		}

		bytes, err := os.ReadFile(configFilePath)
		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(bytes, &config); err != nil {
			return nil, err
		}
	}

	registryURL, ok := os.LookupEnv(RegistryURLEnvVar)
	if ok {
		config.RegistryBaseURL = registryURL
	}
	if config.RegistryBaseURL == "" {
		config.RegistryBaseURL = DefaultRegistryBaseURL
	}

	config.FetchTimeout = DefaultFetchTimeout
	timeoutStr, ok := os.LookupEnv(FetchTimeoutEnvVar)
	if ok {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid value for '%s' env var: %w", FetchTimeoutEnvVar, err)
		}
		config.FetchTimeout = timeout
	}

	skipGitCheck, ok, err := utils.BoolEnvVar(SkipGitCheckEnvVar)
	if err != nil {
		return nil, err
	}
	if ok {
		config.SkipGitCheck = skipGitCheck
	}

	config.ProjectDir = projectDir
	return &config, nil
}

// GetWorkspaceOverride returns the workspace root from PLEXUS_WORKSPACE if set
func GetWorkspaceOverride() (string, bool) {
	return os.LookupEnv(WorkspaceEnvVar)
}

func GetUserAgent() string {
	return fmt.Sprintf("%s/%s", UserAgentPrefix, cliversion.GetVersion())
}
