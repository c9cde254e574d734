// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/agent-tools/internal/tools"
)

var httpCmd = &cobra.Command{
	Use:   "http <url>",
	Short: "Execute a generic HTTP request",
	Long: `Http executes one HTTP request and prints the structured result: success
flag, status code, flattened headers, decoded content, and the final URL.
A status code of 0 means the server was never reached.

The body is sent as a JSON payload when --json-body is given, or as raw
bytes with --body. The two flags are mutually exclusive.`,
	Args: cobra.ExactArgs(1),
	RunE: runHTTP,
}

func init() {
	httpCmd.Flags().String("method", "GET", "HTTP method")
	httpCmd.Flags().StringToString("header", nil, "request header (repeatable, key=value)")
	httpCmd.Flags().StringToString("query", nil, "query parameter (repeatable, key=value)")
	httpCmd.Flags().String("body", "", "raw request body")
	httpCmd.Flags().String("json-body", "", "JSON request body (validated before sending)")
	httpCmd.Flags().Duration("timeout", 0, "request timeout (default 30s)")

	rootCmd.AddCommand(httpCmd)
}

func runHTTP(cmd *cobra.Command, args []string) error {
	method, _ := cmd.Flags().GetString("method")
	headers, _ := cmd.Flags().GetStringToString("header")
	query, _ := cmd.Flags().GetStringToString("query")
	rawBody, _ := cmd.Flags().GetString("body")
	jsonBody, _ := cmd.Flags().GetString("json-body")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	if rawBody != "" && jsonBody != "" {
		return fmt.Errorf("--body and --json-body are mutually exclusive")
	}
	if !cmd.Flags().Changed("timeout") {
		timeout = toolsConfig().HTTP.Timeout
	}

	spec := tools.RequestSpec{
		URL:     args[0],
		Method:  method,
		Headers: headers,
		Query:   query,
		Timeout: timeout,
	}
	switch {
	case jsonBody != "":
		var v any
		if err := json.Unmarshal([]byte(jsonBody), &v); err != nil {
			return fmt.Errorf("invalid --json-body: %w", err)
		}
		spec.Body = tools.JSONBody{Value: v}
	case rawBody != "":
		spec.Body = tools.TextBody(rawBody)
	}

	inv := buildInvoker(cmd)
	res := inv.HTTPRequest(cmd.Context(), spec)
	return writeResult(cmd, os.Stdout, res)
}
