// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/agent-tools/internal/httputil"
	"github.com/pdiddy/agent-tools/pkg/types"
)

// HTTPRequest executes one generic HTTP exchange and returns a ToolResult.
// Success means the server answered with a status below 400. A status of 0
// in the result means the server was never reached; Content then carries a
// human-readable description and ErrorKind the failure class.
func (inv *Invoker) HTTPRequest(ctx context.Context, spec RequestSpec) types.ToolResult {
	timeout := spec.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	method := strings.ToUpper(spec.Method)
	if method == "" {
		method = http.MethodGet
	}

	inv.log.Debug("http_request",
		zap.String("url", spec.URL),
		zap.String("method", method),
		zap.Duration("timeout", timeout))

	var bodyReader io.Reader
	var contentType string
	switch b := spec.Body.(type) {
	case nil:
	case JSONBody:
		data, err := json.Marshal(b.Value)
		if err != nil {
			return httpFailure(spec.URL, types.KindConversion,
				fmt.Sprintf("Error encoding JSON body: %v", err))
		}
		bodyReader = bytes.NewReader(data)
		contentType = "application/json"
	case TextBody:
		bodyReader = strings.NewReader(string(b))
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, spec.URL, bodyReader)
	if err != nil {
		return httpFailure(spec.URL, types.KindTransport,
			fmt.Sprintf("Error making request: %v", err))
	}

	if len(spec.Query) > 0 {
		q := req.URL.Query()
		for k, v := range spec.Query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}
	for k, v := range spec.Headers {
		req.Header.Set(k, v)
	}
	if contentType != "" && req.Header.Get("Content-Type") == "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := inv.client.Do(req)
	if err != nil {
		if httputil.IsTimeout(err) {
			return httpFailure(spec.URL, types.KindTimeout,
				fmt.Sprintf("Request timed out after %s", timeout))
		}
		return httpFailure(spec.URL, types.KindTransport,
			fmt.Sprintf("Request error: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if httputil.IsTimeout(err) {
			return httpFailure(spec.URL, types.KindTimeout,
				fmt.Sprintf("Request timed out after %s", timeout))
		}
		return httpFailure(spec.URL, types.KindTransport,
			fmt.Sprintf("Request error: %v", err))
	}

	return types.ToolResult{
		Success:    resp.StatusCode < 400,
		StatusCode: resp.StatusCode,
		Headers:    httputil.FlattenHeader(resp.Header),
		Content:    decodeContent(raw),
		URL:        finalURL(resp, spec.URL),
	}
}

// httpFailure builds the transport-failure variant of ToolResult.
func httpFailure(rawURL string, kind types.ErrorKind, msg string) types.ToolResult {
	return types.ToolResult{
		Success:    false,
		StatusCode: 0,
		Headers:    map[string]string{},
		Content:    msg,
		URL:        rawURL,
		ErrorKind:  kind,
	}
}

// decodeContent attempts a JSON decode and silently falls back to the raw
// body text. Whether the server declared a JSON content type is deliberately
// not consulted.
func decodeContent(raw []byte) any {
	var v any
	if err := json.Unmarshal(raw, &v); err == nil {
		return v
	}
	return string(raw)
}

// finalURL reports the URL of the completed exchange after redirects.
func finalURL(resp *http.Response, fallback string) string {
	if resp.Request != nil && resp.Request.URL != nil {
		return resp.Request.URL.String()
	}
	return fallback
}
