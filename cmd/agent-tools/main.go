// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the agent-tools CLI, a thin surface
// for invoking each tool by hand and inspecting its result shape.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/agent-tools/internal/httputil"
	"github.com/pdiddy/agent-tools/internal/search"
	"github.com/pdiddy/agent-tools/internal/secrets"
	"github.com/pdiddy/agent-tools/internal/tools"
	"github.com/pdiddy/agent-tools/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "agent-tools/0.1"
)

// rootCmd is the base command for the agent-tools CLI.
var rootCmd = &cobra.Command{
	Use:   "agent-tools",
	Short: "Agent tool calls from the command line",
	Long: `agent-tools exposes the tool functions an agent framework would call
(generic HTTP requests, Tavily web search, URL fetch-and-convert-to-markdown,
and arXiv paper search) as subcommands for manual verification.

Each subcommand prints the tool's structured result. Tools never fail with a
non-zero exit for remote errors; the error variant is part of the result.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./agent-tools.yaml or ~/.config/agent-tools/config.yaml)")
	rootCmd.PersistentFlags().Bool("yaml", false, "print results as YAML instead of JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("agent-tools")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "agent-tools"))
		}
	}

	viper.SetEnvPrefix("AGENT_TOOLS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// tavilyKey resolves the search credential: config/env first, then the
// .secrets/ directory. Empty means web search stays unconfigured.
func tavilyKey() string {
	if v := viper.GetString("search.tavily_api_key"); v != "" {
		return v
	}
	return loadedSecrets[secrets.KeyTavily]
}

// toolsConfig builds the effective configuration from defaults overlaid
// with the config file and environment.
func toolsConfig() types.ToolsConfig {
	cfg := types.ToolsConfig{
		HTTP: types.HTTPConfig{
			Timeout:   defaultTimeout,
			UserAgent: defaultUserAgent,
		},
	}
	if d := viper.GetDuration("http.timeout"); d > 0 {
		cfg.HTTP.Timeout = d
	}
	if ua := viper.GetString("http.user_agent"); ua != "" {
		cfg.HTTP.UserAgent = ua
	}
	cfg.Search.HTTPConfig = cfg.HTTP
	cfg.Search.TavilyAPIKey = tavilyKey()
	cfg.Search.MaxResults = viper.GetInt("search.max_results")
	cfg.Fetch.HTTPConfig = cfg.HTTP
	cfg.Fetch.MaxBodyBytes = viper.GetInt64("fetch.max_body_bytes")
	return cfg
}

// newLogger builds the CLI logger, honoring --verbose.
func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

// buildInvoker wires an Invoker the way an embedding agent framework would:
// the Tavily client only when a credential is present, the arXiv client
// always.
func buildInvoker(cmd *cobra.Command) *tools.Invoker {
	cfg := toolsConfig()
	tc := tools.Config{
		UserAgent:    cfg.Fetch.UserAgent,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		Logger:       newLogger(cmd),
	}

	// Search clients have no per-call timeout; they rely on the client's.
	apiClient := httputil.NewClient(cfg.Search.Timeout)
	if cfg.Search.TavilyAPIKey != "" {
		tc.Searcher = &search.TavilyClient{Client: apiClient, APIKey: cfg.Search.TavilyAPIKey}
	}
	tc.Papers = &search.ArxivClient{Client: apiClient, UserAgent: cfg.Search.UserAgent}

	return tools.New(tc)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
