// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package layout

import (
	"fmt"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/samber/lo"
)

const (
	LibBucket        = "lib"
	PrimitivesBucket = "primitives"
	ChartsBucket     = "charts"
	ShadersSubBucket = "shaders"
)

// bucketByPrefix declares the leading source-path segments the registry is
// allowed to use, and the bucket each one maps to. An empty bucket means the
// file lands directly under the components root. Manifest loading validates
// every file path against this table so an upstream restructuring fails
// loudly instead of silently falling into the root bucket.
var bucketByPrefix = map[string]string{
	"lib":        LibBucket,
	"primitives": PrimitivesBucket,
	"charts":     ChartsBucket,
	"components": "",
}

// ValidateSourcePath checks that a registry file path starts with a declared
// prefix. Paths are upstream-relative and always '/'-separated.
func ValidateSourcePath(sourcePath string) error {
	segments := strings.Split(path.Clean(sourcePath), "/")
	if _, ok := bucketByPrefix[segments[0]]; !ok {
		return fmt.Errorf("source path %q has unknown prefix %q. Must be one of %q",
			sourcePath, segments[0], KnownPrefixes())
	}
	return nil
}

func KnownPrefixes() []string {
	keys := lo.Keys(bucketByPrefix)
	slices.Sort(keys)
	return keys
}

// bucketFor applies the bucketing precedence: lib wins over primitives wins
// over charts; anything else lands in the root. A primitives path also
// carrying a 'shaders' segment is nested one level deeper. Bucketing is
// segment-based on purpose: destinations stay shallow and predictable
// regardless of how deep the upstream source tree is.
func bucketFor(sourcePath string) []string {
	segments := strings.Split(path.Clean(sourcePath), "/")
	dirs := segments[:len(segments)-1]

	switch {
	case lo.Contains(dirs, LibBucket):
		return []string{LibBucket}
	case lo.Contains(dirs, PrimitivesBucket):
		if lo.Contains(dirs, ShadersSubBucket) {
			return []string{PrimitivesBucket, ShadersSubBucket}
		}
		return []string{PrimitivesBucket}
	case lo.Contains(dirs, ChartsBucket):
		return []string{ChartsBucket}
	default:
		return nil
	}
}

// DestinationPath maps an upstream source path to its absolute install
// location under the components root. The destination filename is the final
// path segment, unmodified.
func (l *ProjectLayout) DestinationPath(sourcePath string) string {
	parts := append([]string{l.ComponentsDir}, bucketFor(sourcePath)...)
	parts = append(parts, path.Base(sourcePath))
	return filepath.Join(parts...)
}

// BucketDir returns the subdirectory that must exist before writing the
// given source file, or ok=false if the file belongs directly under the root.
func (l *ProjectLayout) BucketDir(sourcePath string) (string, bool) {
	bucket := bucketFor(sourcePath)
	if len(bucket) == 0 {
		return "", false
	}
	return filepath.Join(append([]string{l.ComponentsDir}, bucket...)...), true
}
