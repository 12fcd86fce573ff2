// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package list

import (
	"bytes"
	"testing"

	"github.com/plexus-space/ui-sub008/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRendersEveryComponent(t *testing.T) {
	reg, err := registry.Load()
	require.NoError(t, err)

	cmd := Cmd(reg)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	require.NoError(t, cmd.Execute())
	for _, id := range reg.Ids() {
		assert.Contains(t, out.String(), id)
	}
}
