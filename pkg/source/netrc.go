// Copyright (c) 2024-2025 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"log/slog"
	"net/http"
	"os/user"
	"path/filepath"

	"github.com/jdx/go-netrc"
)

// applyNetrcAuth sets basic auth from the user's ~/.netrc when it carries a
// machine entry for the request host. Private registry mirrors use this;
// the public host ignores the header. Requests stay unauthenticated when no
// netrc (or no matching machine) is present.
func applyNetrcAuth(req *http.Request) {
	usr, err := user.Current()
	if err != nil {
		return
	}

	n, err := netrc.Parse(filepath.Join(usr.HomeDir, ".netrc"))
	if err != nil {
		slog.Debug("no usable .netrc, registry requests will be unauthenticated", "err", err.Error())
		return
	}

	machine := n.Machine(req.URL.Hostname())
	if machine == nil {
		return
	}

	slog.Debug("using netrc credentials for registry host", "host", req.URL.Hostname())
	req.SetBasicAuth(machine.Get("login"), machine.Get("password"))
}
