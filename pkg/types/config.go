// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by tools that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "agent-tools/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the web search tool.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// TavilyAPIKey enables the web search tool. When empty, web search
	// returns its configuration-missing variant without a network call.
	TavilyAPIKey string `json:"tavily_api_key,omitempty" yaml:"tavily_api_key,omitempty"`

	// MaxResults is the default maximum number of results (default 5).
	MaxResults int `json:"max_results" yaml:"max_results"`
}

// FetchConfig holds settings for the URL fetch tool.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxBodyBytes caps how much of a response body is read before
	// conversion (default 2 MiB). Zero means the default.
	MaxBodyBytes int64 `json:"max_body_bytes" yaml:"max_body_bytes"`
}

// ToolsConfig groups all tool configurations.
type ToolsConfig struct {
	HTTP   HTTPConfig   `json:"http" yaml:"http"`
	Search SearchConfig `json:"search" yaml:"search"`
	Fetch  FetchConfig  `json:"fetch" yaml:"fetch"`
}
