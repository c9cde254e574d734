// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/agent-tools/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web via Tavily",
	Long: `Search queries the Tavily search API and prints the ranked results. The
credential is read from search.tavily_api_key in the config file, the
AGENT_TOOLS_SEARCH_TAVILY_API_KEY environment variable, or the
.secrets/tavily-api-key file. Without a credential the command prints the
configuration-missing result without touching the network.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().Int("max-results", 5, "maximum number of results")
	searchCmd.Flags().String("topic", "general", "search topic: general, news, or finance")
	searchCmd.Flags().Bool("raw-content", false, "include full page content per result")

	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	maxResults, _ := cmd.Flags().GetInt("max-results")
	topic, _ := cmd.Flags().GetString("topic")
	rawContent, _ := cmd.Flags().GetBool("raw-content")

	// The config file's search.max_results applies unless the flag is set.
	if !cmd.Flags().Changed("max-results") {
		if n := toolsConfig().Search.MaxResults; n > 0 {
			maxResults = n
		}
	}

	inv := buildInvoker(cmd)
	res := inv.WebSearch(cmd.Context(), strings.Join(args, " "), search.Options{
		MaxResults:        maxResults,
		Topic:             topic,
		IncludeRawContent: rawContent,
	})
	return writeResult(cmd, os.Stdout, res)
}
