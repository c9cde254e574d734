// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the result shapes returned by the tool operations
// and the configuration they consume.
//
// Every tool operation returns exactly one value of its result type; no
// error ever crosses an operation boundary. Failures are encoded in the
// result itself, discriminated by ErrorKind so callers match on a stable
// constant instead of free-text messages.
package types

// ErrorKind classifies a tool failure. Empty on success.
type ErrorKind string

const (
	// KindTimeout means the request exceeded its configured timeout.
	KindTimeout ErrorKind = "timeout"

	// KindTransport covers connection refusals, DNS failures, and any
	// other failure before an HTTP exchange completed.
	KindTransport ErrorKind = "transport"

	// KindConfigurationMissing means a required credential or client was
	// not configured; no network call was attempted.
	KindConfigurationMissing ErrorKind = "configuration_missing"

	// KindRemoteStatus means the server answered with a non-success status.
	KindRemoteStatus ErrorKind = "remote_status"

	// KindConversion means a response was retrieved but could not be
	// converted (e.g. HTML to markdown).
	KindConversion ErrorKind = "conversion"
)

// ToolResult is the outcome of a generic HTTP request.
type ToolResult struct {
	// Success is true when an exchange completed with status below 400.
	Success bool `json:"success" yaml:"success"`

	// StatusCode is the HTTP status, or 0 when the server was never reached.
	StatusCode int `json:"status_code" yaml:"status_code"`

	// Headers holds the response headers, one value per key.
	Headers map[string]string `json:"headers" yaml:"headers"`

	// Content is the decoded JSON body when the response parses as JSON,
	// otherwise the raw body text. On failure it is a descriptive message.
	Content any `json:"content" yaml:"content"`

	// URL is the final URL after redirects (the input URL on failure).
	URL string `json:"url" yaml:"url"`

	// ErrorKind discriminates the failure branch. Empty on success.
	ErrorKind ErrorKind `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// SearchItem is a single web search result.
type SearchItem struct {
	// Title is the page title.
	Title string `json:"title" yaml:"title"`

	// URL is the page URL.
	URL string `json:"url" yaml:"url"`

	// Content is the relevant excerpt from the page.
	Content string `json:"content" yaml:"content"`

	// Score is the relevance score between 0.0 and 1.0.
	Score float64 `json:"score" yaml:"score"`

	// RawContent is the full page content, present only when requested.
	RawContent string `json:"raw_content,omitempty" yaml:"raw_content,omitempty"`
}

// SearchResult is the outcome of a web search. On failure Error and
// ErrorKind are set and Results is empty.
type SearchResult struct {
	// Results holds the ranked search results in the order the search
	// service returned them.
	Results []SearchItem `json:"results" yaml:"results"`

	// Query echoes the input query.
	Query string `json:"query" yaml:"query"`

	// Error describes the failure, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ErrorKind discriminates the failure branch. Empty on success.
	ErrorKind ErrorKind `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// IsError reports whether the result is the error variant.
func (r SearchResult) IsError() bool { return r.Error != "" }

// FetchResult is the outcome of a fetch-and-convert operation. On failure
// Error and ErrorKind are set and MarkdownContent is empty.
type FetchResult struct {
	// URL is the final URL after redirects (the input URL on failure).
	URL string `json:"url" yaml:"url"`

	// MarkdownContent is the page content converted to markdown.
	MarkdownContent string `json:"markdown_content,omitempty" yaml:"markdown_content,omitempty"`

	// StatusCode is the HTTP status of the fetch.
	StatusCode int `json:"status_code,omitempty" yaml:"status_code,omitempty"`

	// ContentLength is the exact length of MarkdownContent in bytes.
	ContentLength int `json:"content_length,omitempty" yaml:"content_length,omitempty"`

	// Error describes the failure, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ErrorKind discriminates the failure branch. Empty on success.
	ErrorKind ErrorKind `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}

// IsError reports whether the result is the error variant.
func (r FetchResult) IsError() bool { return r.Error != "" }

// Paper is a single paper returned by an arXiv search.
type Paper struct {
	// Title is the paper title.
	Title string `json:"title" yaml:"title"`

	// Authors lists author display names in source order.
	Authors []string `json:"authors" yaml:"authors"`

	// Published is the publication timestamp as reported by arXiv.
	Published string `json:"published" yaml:"published"`

	// Summary is the abstract text.
	Summary string `json:"summary" yaml:"summary"`

	// ArxivID is the short arXiv identifier (e.g. "2301.07041").
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// URL is the direct link to the paper's abstract page.
	URL string `json:"url" yaml:"url"`
}

// PaperSearchResult is the outcome of an arXiv search.
type PaperSearchResult struct {
	// Success is false on any failure, including missing configuration.
	Success bool `json:"success" yaml:"success"`

	// Papers holds up to the requested number of papers in relevance order.
	Papers []Paper `json:"papers" yaml:"papers"`

	// Query echoes the input query.
	Query string `json:"query" yaml:"query"`

	// TotalFound is the number of papers returned.
	TotalFound int `json:"total_found" yaml:"total_found"`

	// Error describes the failure, empty on success.
	Error string `json:"error,omitempty" yaml:"error,omitempty"`

	// ErrorKind discriminates the failure branch. Empty on success.
	ErrorKind ErrorKind `json:"error_kind,omitempty" yaml:"error_kind,omitempty"`
}
