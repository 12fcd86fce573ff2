// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testdata

import _ "embed"

//go:embed valid.yaml
var Valid []byte

//go:embed badKind.yaml
var BadKind []byte

//go:embed unknownPrefix.yaml
var UnknownPrefix []byte

//go:embed missingFiles.yaml
var MissingFiles []byte

//go:embed futureCli.yaml
var FutureCli []byte
