// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDestinationPathBuckets(t *testing.T) {
	lay := &ProjectLayout{ComponentsDir: filepath.Join("/", "proj", "components")}

	cases := []struct {
		source string
		dest   string
	}{
		{"lib/color-scale.ts", "lib/color-scale.ts"},
		{"primitives/canvas.tsx", "primitives/canvas.tsx"},
		{"primitives/shaders/atmosphere.frag", "primitives/shaders/atmosphere.frag"},
		{"charts/line-chart.tsx", "charts/line-chart.tsx"},
		{"components/telemetry-board.tsx", "telemetry-board.tsx"},
		// flattening: nesting depth upstream does not leak into the destination
		{"charts/internal/legend.tsx", "charts/legend.tsx"},
		{"primitives/globe/deep/nested/globe.tsx", "primitives/globe.tsx"},
		// lib wins over any other segment
		{"charts/lib/scales.ts", "lib/scales.ts"},
	}

	for _, tc := range cases {
		assert.Equal(t,
			filepath.Join(lay.ComponentsDir, filepath.FromSlash(tc.dest)),
			lay.DestinationPath(tc.source),
			tc.source)
	}
}

func TestBucketDir(t *testing.T) {
	lay := &ProjectLayout{ComponentsDir: filepath.Join("/", "proj", "components")}

	dir, ok := lay.BucketDir("lib/color-scale.ts")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(lay.ComponentsDir, "lib"), dir)

	dir, ok = lay.BucketDir("primitives/shaders/atmosphere.frag")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(lay.ComponentsDir, "primitives", "shaders"), dir)

	// root-bucket files need no subdirectory
	_, ok = lay.BucketDir("components/telemetry-board.tsx")
	assert.False(t, ok)
}

func TestValidateSourcePath(t *testing.T) {
	assert.NoError(t, ValidateSourcePath("lib/a.ts"))
	assert.NoError(t, ValidateSourcePath("components/board.tsx"))

	err := ValidateSourcePath("vendor/sneaky.ts")
	assert.ErrorContains(t, err, "unknown prefix")
}
