// Copyright (c) 2024-2026 Plexus Space and/or its affiliates. All rights reserved.
// SPDX-License-Identifier: Apache-2.0

package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/plexus-space/ui-sub008/pkg/uiconfig"
)

// RetrievalError wraps any failure to obtain a file's content: network
// errors, timeouts, non-2xx statuses, bad redirects, missing local files.
type RetrievalError struct {
	Target string
	Cause  error
}

func (e *RetrievalError) Error() string {
	return fmt.Sprintf("failed to retrieve %q: %s", e.Target, e.Cause.Error())
}

func (e *RetrievalError) Unwrap() error {
	return e.Cause
}

var _ error = (*RetrievalError)(nil)

type Fetcher struct {
	client    *http.Client
	userAgent string
}

func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = uiconfig.DefaultFetchTimeout
	}
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
			// redirects are followed manually, one hop at most
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		userAgent: uiconfig.GetUserAgent(),
	}
}

// Fetch retrieves the raw text content at loc. Files are source-code-sized,
// so the body is accumulated in memory rather than streamed.
func (f *Fetcher) Fetch(ctx context.Context, loc Location) (string, error) {
	if loc.Mode == Local {
		bytes, err := os.ReadFile(loc.Target)
		if err != nil {
			return "", &RetrievalError{Target: loc.Target, Cause: err}
		}
		return string(bytes), nil
	}
	return f.fetchRemote(ctx, loc.Target)
}

func (f *Fetcher) fetchRemote(ctx context.Context, url string) (string, error) {
	resp, err := f.get(ctx, url)
	if err != nil {
		return "", &RetrievalError{Target: url, Cause: err}
	}

	// follow exactly one 301/302 hop. This is a deliberate simplification
	// matching how the file host serves moved sources, not a general
	// redirect-chain handler
	if resp.StatusCode == http.StatusMovedPermanently || resp.StatusCode == http.StatusFound {
		redirectTarget := resp.Header.Get("Location")
		drainAndClose(resp)
		if redirectTarget == "" {
			return "", &RetrievalError{Target: url, Cause: fmt.Errorf("redirect (%d) without a Location header", resp.StatusCode)}
		}
		slog.Debug("following redirect", "from", url, "to", redirectTarget)

		resp, err = f.get(ctx, redirectTarget)
		if err != nil {
			return "", &RetrievalError{Target: url, Cause: fmt.Errorf("redirect to %q failed: %w", redirectTarget, err)}
		}
	}
	defer drainAndClose(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &RetrievalError{Target: url, Cause: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &RetrievalError{Target: url, Cause: err}
	}
	return string(body), nil
}

func (f *Fetcher) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", f.userAgent)
	applyNetrcAuth(req)

	slog.Debug("registry request", "method", req.Method, "url", req.URL.String())
	return f.client.Do(req)
}

func drainAndClose(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}
