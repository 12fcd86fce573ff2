// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package resolver

import (
	"fmt"
	"testing"

	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const manifestHeader = "apiVersion: plexus-space.dev/v1\nkind: ComponentRegistry\ncomponents:\n"

func mustParse(t *testing.T, components string) *registry.Registry {
	t.Helper()
	reg, err := registry.Parse([]byte(manifestHeader + components))
	require.NoError(t, err)
	return reg
}

func TestClosureCycle(t *testing.T) {
	reg := mustParse(t, `
  a:
    files: [lib/a.ts]
    registryDependencies: [b]
  b:
    files: [lib/b.ts]
    registryDependencies: [a]
`)

	assert.ElementsMatch(t, []string{"a", "b"}, Closure(reg, []string{"a"}))
}

func TestClosureDiamond(t *testing.T) {
	reg := mustParse(t, `
  a:
    files: [lib/a.ts]
    registryDependencies: [b, c]
  b:
    files: [lib/b.ts]
    registryDependencies: [d]
  c:
    files: [lib/c.ts]
    registryDependencies: [d]
  d:
    files: [lib/d.ts]
`)

	closure := Closure(reg, []string{"a"})
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, closure)

	// d reachable via two paths must still appear exactly once
	count := 0
	for _, id := range closure {
		if id == "d" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestClosureFirstDiscoveryOrder(t *testing.T) {
	reg := mustParse(t, `
  a:
    files: [lib/a.ts]
    registryDependencies: [b, c]
  b:
    files: [lib/b.ts]
    registryDependencies: [d]
  c:
    files: [lib/c.ts]
  d:
    files: [lib/d.ts]
`)

	assert.Equal(t, []string{"a", "b", "d", "c"}, Closure(reg, []string{"a"}))
}

func TestClosureIdempotent(t *testing.T) {
	reg := mustParse(t, `
  a:
    files: [lib/a.ts]
    registryDependencies: [b]
  b:
    files: [lib/b.ts]
    registryDependencies: [c]
  c:
    files: [lib/c.ts]
`)

	once := Closure(reg, []string{"a"})
	twice := Closure(reg, once)
	assert.ElementsMatch(t, once, twice)
}

func TestClosureKeepsUnknownRequestedIds(t *testing.T) {
	reg := mustParse(t, `
  a:
    files: [lib/a.ts]
`)

	closure := Closure(reg, []string{"a", "no-such-thing"})
	assert.ElementsMatch(t, []string{"a", "no-such-thing"}, closure)
}

func TestClosureSkipsDanglingDependencies(t *testing.T) {
	reg := mustParse(t, `
  a:
    files: [lib/a.ts]
    registryDependencies: [gone]
`)

	// the dangling id is part of the set but contributes nothing further
	assert.ElementsMatch(t, []string{"a", "gone"}, Closure(reg, []string{"a"}))
}

func TestClosureScalesToWideGraphs(t *testing.T) {
	components := ""
	for i := 0; i < 50; i++ {
		components += fmt.Sprintf("  c%d:\n    files: [lib/c%d.ts]\n    registryDependencies: [shared]\n", i, i)
	}
	components += "  shared:\n    files: [lib/shared.ts]\n"
	reg := mustParse(t, components)

	requested := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		requested = append(requested, fmt.Sprintf("c%d", i))
	}

	assert.Len(t, Closure(reg, requested), 51)
}
