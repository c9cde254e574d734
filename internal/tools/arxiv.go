// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pdiddy/agent-tools/pkg/types"
)

// ArxivSearch queries the configured paper repository, ranked by relevance,
// and returns up to maxPapers papers in source order. A zero or negative
// maxPapers means the default of 5. Without a configured paper source it
// returns the configuration-missing variant without any network call.
func (inv *Invoker) ArxivSearch(ctx context.Context, query string, maxPapers int) types.PaperSearchResult {
	if inv.papers == nil {
		return types.PaperSearchResult{
			Success:   false,
			Papers:    []types.Paper{},
			Query:     query,
			Error:     "arXiv search not configured. Construct the Invoker with a search.ArxivClient to enable it.",
			ErrorKind: types.KindConfigurationMissing,
		}
	}
	if maxPapers <= 0 {
		maxPapers = 5
	}

	inv.log.Debug("arxiv_search",
		zap.String("query", query),
		zap.Int("max_papers", maxPapers))

	papers, err := inv.papers.Search(ctx, query, maxPapers)
	if err != nil {
		inv.log.Debug("arxiv_search failed", zap.Error(err))
		return types.PaperSearchResult{
			Success:   false,
			Papers:    []types.Paper{},
			Query:     query,
			Error:     fmt.Sprintf("Error searching arXiv: %v", err),
			ErrorKind: types.KindTransport,
		}
	}

	// Sources may yield more than requested; keep the first maxPapers in
	// their ranked order.
	if len(papers) > maxPapers {
		papers = papers[:maxPapers]
	}
	if papers == nil {
		papers = []types.Paper{}
	}

	return types.PaperSearchResult{
		Success:    true,
		Papers:     papers,
		Query:      query,
		TotalFound: len(papers),
	}
}
