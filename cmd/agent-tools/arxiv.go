// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var arxivCmd = &cobra.Command{
	Use:   "arxiv <query>",
	Short: "Search arXiv for papers",
	Long: `Arxiv queries the arXiv API for papers matching the query, sorted by
relevance, and prints title, authors, publication date, abstract, arXiv ID,
and a direct link for each paper.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runArxiv,
}

func init() {
	arxivCmd.Flags().Int("max-papers", 5, "maximum number of papers")

	rootCmd.AddCommand(arxivCmd)
}

func runArxiv(cmd *cobra.Command, args []string) error {
	maxPapers, _ := cmd.Flags().GetInt("max-papers")

	inv := buildInvoker(cmd)
	res := inv.ArxivSearch(cmd.Context(), strings.Join(args, " "), maxPapers)
	return writeResult(cmd, os.Stdout, res)
}
