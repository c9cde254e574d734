// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"io"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// writeResult prints a tool result to w as indented JSON, or as YAML when
// the --yaml flag is set.
func writeResult(cmd *cobra.Command, w io.Writer, v any) error {
	asYAML, _ := cmd.Flags().GetBool("yaml")
	if asYAML {
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
