// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/plexus-space/ui-sub008/pkg/uiconfig"
	"github.com/stretchr/testify/require"
)

// ServeRegistry starts a file host serving the given relative-path ->
// content mapping, pointing PLEXUS_REGISTRY_URL at it for the duration of
// the test. Unknown paths return 404.
func ServeRegistry(t *testing.T, files map[string]string) *httptest.Server {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := files[r.URL.Path[1:]]
		if !ok {
			http.NotFound(w, r)
			return
		}
		_, _ = w.Write([]byte(content))
	}))
	t.Cleanup(srv.Close)

	t.Setenv(uiconfig.RegistryURLEnvVar, srv.URL)
	return srv
}

// Project creates a temp project dir carrying the given (slash-separated)
// subdirectories, so layout probing has something to find.
func Project(t *testing.T, dirs ...string) string {
	projectDir := t.TempDir()
	for _, d := range dirs {
		require.NoError(t, os.MkdirAll(filepath.Join(projectDir, filepath.FromSlash(d)), os.ModePerm))
	}
	return projectDir
}

func Context(t *testing.T) context.Context {
	ctx, stopFn := context.WithCancel(context.Background())
	t.Cleanup(stopFn)
	return ctx
}
