// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search implements clients for the external search services the
// tools delegate to: Tavily for web search and arXiv for papers. Ranking
// and retrieval live entirely in those services; clients return results in
// the order the service yields them.
package search

import (
	"context"

	"github.com/pdiddy/agent-tools/pkg/types"
)

// Searcher is the web-search capability consumed by the tools layer.
// TavilyClient implements it; tests substitute fakes.
type Searcher interface {
	Search(ctx context.Context, query string, opts Options) ([]types.SearchItem, error)
}

// Options holds the optional parameters of a web search.
type Options struct {
	// MaxResults is the number of results to request (default 5).
	MaxResults int

	// Topic selects the search category: "general", "news", or "finance".
	Topic string

	// IncludeRawContent requests full page content per result.
	IncludeRawContent bool
}

// PaperSource is the paper-repository capability consumed by the tools
// layer. ArxivClient implements it; tests substitute fakes.
type PaperSource interface {
	Search(ctx context.Context, query string, maxPapers int) ([]types.Paper, error)
}
