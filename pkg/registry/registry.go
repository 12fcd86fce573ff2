// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package registry holds the static component manifest: the mapping from
// component id to the files, external packages and registry-internal
// dependencies that make up one installable unit. The manifest is embedded
// in the binary, parsed once at startup and immutable afterwards.
package registry

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/goccy/go-yaml"
	"github.com/plexus-space/ui-sub008/pkg/cliversion"
	"github.com/plexus-space/ui-sub008/pkg/layout"
	"github.com/samber/lo"
)

var ErrInvalidManifest = fmt.Errorf("invalid registry manifest")
var ErrMissingManifestField = fmt.Errorf("%w: a required field is missing", ErrInvalidManifest)
var ErrCliTooOld = fmt.Errorf("this plexus binary is too old for the embedded registry manifest")

const (
	APIGroup           = "plexus-space.dev"
	ManifestKind       = "ComponentRegistry"
	ManifestVersion    = "v1"
	ManifestAPIVersion = APIGroup + "/" + ManifestVersion
)

//go:embed manifest.yaml
var defaultManifest []byte

type ManifestMeta struct {
	APIVersion string `yaml:"apiVersion"`
	Kind       string `yaml:"kind"`
}

func (m ManifestMeta) ValidateSchema(target ManifestMeta) error {
	if target.Kind == "" {
		return fmt.Errorf("missing required field 'kind'")
	} else if target.Kind != m.Kind {
		return fmt.Errorf("unsupported kind %q. expected %q", target.Kind, m.Kind)
	}

	if target.APIVersion == "" {
		return fmt.Errorf("missing required field 'apiVersion'")
	}
	if target.APIVersion != m.APIVersion {
		return fmt.Errorf("unsupported apiVersion %q. expected %q", target.APIVersion, m.APIVersion)
	}

	return nil
}

// ComponentDescriptor describes one installable unit. Ids are
// case-normalized to lower; file paths are upstream-relative and
// '/'-separated. External package names are opaque, no version constraints
// are tracked.
type ComponentDescriptor struct {
	Id string `yaml:"-"`

	// Files is ordered; the first entry is the primary file used for
	// quick existence checks
	Files []string `yaml:"files"`

	Dependencies    []string `yaml:"dependencies,omitempty"`
	DevDependencies []string `yaml:"devDependencies,omitempty"`

	// RegistryDependencies may contain cycles; resolution must terminate
	// regardless
	RegistryDependencies []string `yaml:"registryDependencies,omitempty"`

	Category    string `yaml:"category,omitempty"`
	Description string `yaml:"description,omitempty"`
}

func (d *ComponentDescriptor) PrimaryFile() string {
	return d.Files[0]
}

type manifest struct {
	ManifestMeta  `yaml:",inline"`
	MinCliVersion string                          `yaml:"minCliVersion,omitempty"`
	Components    map[string]*ComponentDescriptor `yaml:"components"`
}

type Registry struct {
	components map[string]*ComponentDescriptor
	ids        []string
}

// Load parses the embedded manifest.
func Load() (*Registry, error) {
	return Parse(defaultManifest)
}

func Parse(contents []byte) (*Registry, error) {
	var m manifest
	if err := yaml.UnmarshalWithOptions(contents, &m, yaml.Strict()); err != nil {
		return nil, errors.Join(ErrInvalidManifest, err)
	}

	s := ManifestMeta{
		APIVersion: ManifestAPIVersion,
		Kind:       ManifestKind,
	}
	if err := s.ValidateSchema(m.ManifestMeta); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidManifest, err.Error())
	}

	if err := checkCliVersion(m.MinCliVersion); err != nil {
		return nil, err
	}

	if len(m.Components) == 0 {
		return nil, fmt.Errorf("%w: 'components'", ErrMissingManifestField)
	}

	r := &Registry{components: make(map[string]*ComponentDescriptor, len(m.Components))}
	for id, d := range m.Components {
		if d == nil || len(d.Files) == 0 {
			return nil, fmt.Errorf("%w: component %q: 'files'", ErrMissingManifestField, id)
		}
		for _, f := range d.Files {
			if err := layout.ValidateSourcePath(f); err != nil {
				return nil, fmt.Errorf("%w: component %q: %s", ErrInvalidManifest, id, err.Error())
			}
		}

		d.Id = Normalize(id)
		if _, dup := r.components[d.Id]; dup {
			return nil, fmt.Errorf("%w: duplicate component id %q", ErrInvalidManifest, d.Id)
		}
		r.components[d.Id] = d
	}

	r.ids = lo.Keys(r.components)
	slices.Sort(r.ids)
	return r, nil
}

// checkCliVersion enforces the manifest's minCliVersion against the running
// binary. Dev builds carry no version and are never rejected.
func checkCliVersion(minCliVersion string) error {
	if minCliVersion == "" {
		return nil
	}
	minVersion, err := semver.NewVersion(minCliVersion)
	if err != nil {
		return fmt.Errorf("%w: invalid minCliVersion %q: %s", ErrInvalidManifest, minCliVersion, err.Error())
	}

	current, err := semver.NewVersion(cliversion.GetVersion())
	if err != nil {
		return nil
	}
	if current.LessThan(minVersion) {
		return fmt.Errorf("%w: need at least %s, running %s", ErrCliTooOld, minVersion, current)
	}
	return nil
}

// Normalize maps a user-supplied component id to its registry key.
func Normalize(id string) string {
	return strings.ToLower(strings.TrimSpace(id))
}

// Lookup returns the descriptor for id, if any. Callers must check ok
// before use; a missing descriptor is an expected condition, not a bug.
func (r *Registry) Lookup(id string) (*ComponentDescriptor, bool) {
	d, ok := r.components[Normalize(id)]
	return d, ok
}

// Ids returns all component ids in lexical order.
func (r *Registry) Ids() []string {
	return r.ids
}

func (r *Registry) Len() int {
	return len(r.components)
}
