// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

// Package diffengine reports drift between locally installed component
// files and their canonical upstream versions. Diffing is informational,
// never destructive: it only reads.
package diffengine

import (
	"context"
	"fmt"
	"os"

	"github.com/plexus-space/ui-sub008/pkg/layout"
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/source"
)

// NotFoundError means the diffed id has no descriptor. No partial diff is
// attempted.
type NotFoundError struct {
	Id string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("unknown component %q", e.Id)
}

var _ error = (*NotFoundError)(nil)

type FileState int

const (
	UpToDate FileState = iota
	Changed
	Missing
)

func (s FileState) String() string {
	switch s {
	case Missing:
		return "missing"
	case Changed:
		return "changed"
	default:
		return "up-to-date"
	}
}

type FileDiff struct {
	// Path is the upstream-relative source path
	Path string
	// Dest is the expected local install location
	Dest  string
	State FileState

	// Local and Upstream carry both contents when State is Changed, so
	// callers can render the drift
	Local    string
	Upstream string
}

type SkippedFile struct {
	Path string
	Err  error
}

type Report struct {
	Id    string
	Files []FileDiff
	// Skipped lists files whose canonical content could not be fetched.
	// They are not classified and do not affect the verdict
	Skipped []SkippedFile
}

// Verdict is the worst-case file state: missing > changed > up-to-date.
func (r *Report) Verdict() FileState {
	verdict := UpToDate
	for _, f := range r.Files {
		if f.State > verdict {
			verdict = f.State
		}
	}
	return verdict
}

// Diff re-fetches every file of the component and byte-compares it against
// the locally installed copy. Comparison is exact string equality, with no
// whitespace or line-ending normalization. A fetch failure skips that one
// file and the diff continues; this is deliberately weaker than the
// installer's failure contract.
func Diff(ctx context.Context, reg *registry.Registry, res *source.Resolver,
	fetcher *source.Fetcher, lay *layout.ProjectLayout, id string) (*Report, error) {
	normalized := registry.Normalize(id)
	d, ok := reg.Lookup(normalized)
	if !ok {
		return nil, &NotFoundError{Id: normalized}
	}

	report := &Report{Id: normalized}
	for _, f := range d.Files {
		dest := lay.DestinationPath(f)

		local, err := os.ReadFile(dest)
		if os.IsNotExist(err) {
			report.Files = append(report.Files, FileDiff{Path: f, Dest: dest, State: Missing})
			continue
		}
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedFile{Path: f, Err: err})
			continue
		}

		upstream, err := fetcher.Fetch(ctx, res.Resolve(f))
		if err != nil {
			report.Skipped = append(report.Skipped, SkippedFile{Path: f, Err: err})
			continue
		}

		if string(local) == upstream {
			report.Files = append(report.Files, FileDiff{Path: f, Dest: dest, State: UpToDate})
		} else {
			report.Files = append(report.Files, FileDiff{
				Path:     f,
				Dest:     dest,
				State:    Changed,
				Local:    string(local),
				Upstream: upstream,
			})
		}
	}
	return report, nil
}
