// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across tools.
package httputil

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"
)

// NewClient returns an HTTP client with the given overall timeout. A zero
// timeout means no client-level deadline; callers then bound requests with
// a context deadline instead.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// FlattenHeader collapses an http.Header into a one-value-per-key map,
// keeping the first value for each key.
func FlattenHeader(h http.Header) map[string]string {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out
}

// IsTimeout reports whether err represents a request timeout, whether from
// a context deadline, the client-level timeout, or the underlying transport.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
