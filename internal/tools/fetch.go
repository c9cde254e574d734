// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/agent-tools/internal/httputil"
	"github.com/pdiddy/agent-tools/pkg/types"
)

// FetchURL retrieves a page and converts its HTML body to markdown. A zero
// timeout means the default. Any non-2xx/3xx status, transport failure, or
// conversion failure collapses to the error variant carrying the input URL.
func (inv *Invoker) FetchURL(ctx context.Context, rawURL string, timeout time.Duration) types.FetchResult {
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	inv.log.Debug("fetch_url",
		zap.String("url", rawURL),
		zap.Duration("timeout", timeout))

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fetchFailure(rawURL, types.KindTransport,
			fmt.Sprintf("Fetch URL error: %v", err))
	}
	req.Header.Set("User-Agent", inv.userAgent)

	resp, err := inv.client.Do(req)
	if err != nil {
		if httputil.IsTimeout(err) {
			return fetchFailure(rawURL, types.KindTimeout,
				fmt.Sprintf("Fetch URL error: request timed out after %s", timeout))
		}
		return fetchFailure(rawURL, types.KindTransport,
			fmt.Sprintf("Fetch URL error: %v", err))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		return fetchFailure(rawURL, types.KindRemoteStatus,
			fmt.Sprintf("Fetch URL error: HTTP %d", resp.StatusCode))
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, inv.maxBodyBytes))
	if err != nil {
		if httputil.IsTimeout(err) {
			return fetchFailure(rawURL, types.KindTimeout,
				fmt.Sprintf("Fetch URL error: request timed out after %s", timeout))
		}
		return fetchFailure(rawURL, types.KindTransport,
			fmt.Sprintf("Fetch URL error: %v", err))
	}

	markdown, err := inv.converter.Convert(string(raw))
	if err != nil {
		return fetchFailure(rawURL, types.KindConversion,
			fmt.Sprintf("Fetch URL error: %v", err))
	}

	return types.FetchResult{
		URL:             finalURL(resp, rawURL),
		MarkdownContent: markdown,
		StatusCode:      resp.StatusCode,
		ContentLength:   len(markdown),
	}
}

// fetchFailure builds the error variant of FetchResult.
func fetchFailure(rawURL string, kind types.ErrorKind, msg string) types.FetchResult {
	return types.FetchResult{
		URL:       rawURL,
		Error:     msg,
		ErrorKind: kind,
	}
}
