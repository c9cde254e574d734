// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import "time"

// Body is the request payload for HTTPRequest. Exactly two implementations
// exist: JSONBody, sent as a JSON document with an application/json content
// type, and TextBody, sent as raw bytes. The sealed interface makes the
// "structured or raw" branch explicit at the call site.
type Body interface {
	isBody()
}

// JSONBody wraps a value to be marshaled and sent as a JSON payload.
type JSONBody struct {
	Value any
}

func (JSONBody) isBody() {}

// TextBody is sent as the raw request body.
type TextBody string

func (TextBody) isBody() {}

// RequestSpec describes one generic HTTP request.
type RequestSpec struct {
	// URL is the target URL.
	URL string

	// Method is the HTTP method (default GET). Case-insensitive.
	Method string

	// Headers are added to the request.
	Headers map[string]string

	// Body is the optional request payload.
	Body Body

	// Query parameters are appended to the URL.
	Query map[string]string

	// Timeout bounds the whole exchange (default 30s).
	Timeout time.Duration
}
