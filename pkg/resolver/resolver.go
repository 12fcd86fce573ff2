// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package resolver computes the transitive closure of registry-internal
// dependencies for a requested set of component ids.
package resolver

import (
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/utils/stringset"
	"github.com/samber/lo"
)

// Closure expands the requested ids into every id reachable via registry
// dependencies, depth-first. Membership is set-semantic: an id appears
// exactly once no matter how many dependency paths reach it, and cycles
// terminate via the visited set. Requested ids are always part of the
// result, even when they have no descriptor, so callers can report them.
// The returned order is first-discovery order, kept stable so install
// attempts and logs are reproducible.
func Closure(reg *registry.Registry, requestedIds []string) []string {
	visited := make(stringset.StringSet)
	var order []string

	var visit func(id string)
	visit = func(id string) {
		id = registry.Normalize(id)
		if visited.Contains(id) {
			return
		}
		visited.Add(id)
		order = append(order, id)

		d, ok := reg.Lookup(id)
		if !ok {
			// ids without a descriptor contribute no dependencies.
			// Deliberate: whether that is an error is the caller's call
			return
		}
		lo.ForEach(d.RegistryDependencies, func(dep string, _ int) {
			visit(dep)
		})
	}

	for _, id := range requestedIds {
		visit(id)
	}
	return order
}
