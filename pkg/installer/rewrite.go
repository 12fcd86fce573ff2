// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package installer

import (
	"strings"

	"github.com/plexus-space/ui-sub008/pkg/uiconfig"
)

// RewriteImports is the default Rewriter: plain token substitution of every
// configured alias, applied in no particular order. Aliases are expected to
// be non-overlapping (they map distinct upstream import roots).
func RewriteImports(content string, aliases uiconfig.Aliases) string {
	for from, to := range aliases {
		content = strings.ReplaceAll(content, from, to)
	}
	return content
}

var _ Rewriter = RewriteImports
