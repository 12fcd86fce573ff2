// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package diffengine

import (
	"os"
	"testing"

	"github.com/plexus-space/ui-sub008/pkg/installer"
	"github.com/plexus-space/ui-sub008/pkg/layout"
	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/plexus-space/ui-sub008/pkg/source"
	"github.com/plexus-space/ui-sub008/pkg/testutil"
	"github.com/plexus-space/ui-sub008/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const testManifest = `apiVersion: plexus-space.dev/v1
kind: ComponentRegistry
components:
  lib:
    files: [lib/a.ts]
  chart:
    files: [charts/chart.tsx, charts/legend.tsx]
    registryDependencies: [lib]
`

type DiffSuite struct {
	suite.Suite

	reg     *registry.Registry
	files   map[string]string
	res     *source.Resolver
	fetcher *source.Fetcher
	lay     *layout.ProjectLayout
}

func (s *DiffSuite) SetupTest() {
	var err error
	s.reg, err = registry.Parse([]byte(testManifest))
	s.Require().NoError(err)

	s.files = map[string]string{
		"lib/a.ts":          "export const a = 1\n",
		"charts/chart.tsx":  "export const chart = 1\n",
		"charts/legend.tsx": "export const legend = 1\n",
	}
	srv := testutil.ServeRegistry(s.T(), s.files)

	projectDir := testutil.Project(s.T(), "src/app")
	s.lay, err = layout.Detect(projectDir, "")
	s.Require().NoError(err)

	s.res = source.NewResolver(source.Remote, "", srv.URL)
	s.fetcher = source.NewFetcher(0)
}

func (s *DiffSuite) install(ids ...string) {
	inst := installer.New(s.reg, s.res, s.fetcher, s.lay, nil, nil, utils.StdPrinter{})
	outcome, err := inst.Install(testutil.Context(s.T()), ids)
	s.Require().NoError(err)
	s.Require().True(outcome.FullySucceeded())
}

func (s *DiffSuite) diff(id string) *Report {
	report, err := Diff(testutil.Context(s.T()), s.reg, s.res, s.fetcher, s.lay, id)
	s.Require().NoError(err)
	return report
}

func (s *DiffSuite) TestUnknownComponent() {
	_, err := Diff(testutil.Context(s.T()), s.reg, s.res, s.fetcher, s.lay, "bogus")

	var notFoundErr *NotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.Equal("bogus", notFoundErr.Id)
}

func (s *DiffSuite) TestRoundTripIsUpToDate() {
	s.install("chart")

	report := s.diff("chart")
	s.Len(report.Files, 2)
	s.Empty(report.Skipped)
	for _, f := range report.Files {
		s.Equal(UpToDate, f.State, f.Path)
	}
	s.Equal(UpToDate, report.Verdict())
}

func (s *DiffSuite) TestOneCharacterDrift() {
	s.install("chart", "lib")

	// upstream moves by a single character after install
	s.files["charts/chart.tsx"] = "export const chart = 2\n"

	report := s.diff("chart")
	s.Equal(Changed, report.Verdict())

	byPath := map[string]FileDiff{}
	for _, f := range report.Files {
		byPath[f.Path] = f
	}
	s.Equal(Changed, byPath["charts/chart.tsx"].State)
	s.Equal("export const chart = 1\n", byPath["charts/chart.tsx"].Local)
	s.Equal("export const chart = 2\n", byPath["charts/chart.tsx"].Upstream)
	s.Equal(UpToDate, byPath["charts/legend.tsx"].State)

	// a sibling component with byte-identical content stays clean
	s.Equal(UpToDate, s.diff("lib").Verdict())
}

func (s *DiffSuite) TestMissingOutranksChanged() {
	s.install("chart")
	s.files["charts/legend.tsx"] = "drifted\n"
	s.Require().NoError(removeInstalled(s.lay, "charts/chart.tsx"))

	report := s.diff("chart")
	s.Equal(Missing, report.Verdict())
}

func (s *DiffSuite) TestNotInstalledIsMissing() {
	report := s.diff("lib")
	s.Require().Len(report.Files, 1)
	s.Equal(Missing, report.Files[0].State)
	s.Equal(Missing, report.Verdict())
}

func (s *DiffSuite) TestFetchFailureIsSoftWarning() {
	s.install("chart")

	// upstream stops serving one file; the other must still be classified
	delete(s.files, "charts/chart.tsx")

	report := s.diff("chart")
	s.Require().Len(report.Skipped, 1)
	s.Equal("charts/chart.tsx", report.Skipped[0].Path)

	s.Require().Len(report.Files, 1)
	s.Equal("charts/legend.tsx", report.Files[0].Path)
	s.Equal(UpToDate, report.Files[0].State)
	s.Equal(UpToDate, report.Verdict())
}

func removeInstalled(lay *layout.ProjectLayout, sourcePath string) error {
	return os.Remove(lay.DestinationPath(sourcePath))
}

func TestDiffSuite(t *testing.T) {
	suite.Run(t, new(DiffSuite))
}

func TestVerdictSeverityOrder(t *testing.T) {
	report := &Report{Files: []FileDiff{{State: UpToDate}, {State: Changed}}}
	assert.Equal(t, Changed, report.Verdict())

	report.Files = append(report.Files, FileDiff{State: Missing})
	assert.Equal(t, Missing, report.Verdict())

	empty := &Report{}
	require.Equal(t, UpToDate, empty.Verdict())
}
