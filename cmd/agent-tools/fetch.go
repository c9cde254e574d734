// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"

	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a URL and convert it to markdown",
	Long: `Fetch retrieves a page, converts the HTML body to markdown (headings,
lists, links, and emphasis preserved; scripts and styles dropped), and
prints the result with the final URL, status code, and content length.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().Duration("timeout", 0, "request timeout (default 30s)")

	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if !cmd.Flags().Changed("timeout") {
		timeout = toolsConfig().Fetch.Timeout
	}

	inv := buildInvoker(cmd)
	res := inv.FetchURL(cmd.Context(), args[0], timeout)
	return writeResult(cmd, os.Stdout, res)
}
