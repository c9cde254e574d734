// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/agent-tools/internal/search"
	"github.com/pdiddy/agent-tools/pkg/types"
)

// WebSearch delegates the query to the configured search backend and
// returns its results verbatim, in backend order, tagged with the echoed
// query. Without a configured backend it returns the configuration-missing
// variant immediately; no network call is made.
func (inv *Invoker) WebSearch(ctx context.Context, query string, opts search.Options) types.SearchResult {
	if inv.searcher == nil {
		return types.SearchResult{
			Results:   []types.SearchItem{},
			Query:     query,
			Error:     "Tavily API key not configured. Set the tavily-api-key secret or the AGENT_TOOLS_SEARCH_TAVILY_API_KEY environment variable.",
			ErrorKind: types.KindConfigurationMissing,
		}
	}

	inv.log.Debug("web_search",
		zap.String("query", query),
		zap.Int("max_results", opts.MaxResults),
		zap.String("topic", opts.Topic))

	items, err := inv.searcher.Search(ctx, query, opts)
	if err != nil {
		inv.log.Debug("web_search failed", zap.Error(err))
		return types.SearchResult{
			Results:   []types.SearchItem{},
			Query:     query,
			Error:     fmt.Sprintf("Web search error: %v", err),
			ErrorKind: types.KindTransport,
		}
	}

	// A backend may report zero hits as a nil slice; keep the serialized
	// results field an empty list rather than null.
	if items == nil {
		items = []types.SearchItem{}
	}
	return types.SearchResult{
		Results: items,
		Query:   query,
	}
}
