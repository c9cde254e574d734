// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package tools implements the four agent-callable tool operations: generic
// HTTP request, web search, URL fetch-and-convert, and arXiv paper search.
//
// Every operation returns a tagged result from pkg/types and never a Go
// error: timeouts, transport failures, missing configuration, remote error
// statuses, and conversion failures all terminate in a result value whose
// ErrorKind field names the failure branch. The invoking agent inspects one
// uniform shape per tool instead of handling faults.
//
// An Invoker holds every external dependency, injected at construction and
// never mutated afterward, so a single Invoker is safe for concurrent use.
package tools

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/agent-tools/internal/convert"
	"github.com/pdiddy/agent-tools/internal/httputil"
	"github.com/pdiddy/agent-tools/internal/search"
)

const (
	// defaultTimeout bounds http_request and fetch_url when the caller
	// does not supply a timeout.
	defaultTimeout = 30 * time.Second

	// defaultUserAgent is the client identifier sent by fetch_url.
	defaultUserAgent = "Mozilla/5.0 (compatible; agent-tools/1.0)"

	// defaultMaxBodyBytes caps how much of a fetched page is read.
	defaultMaxBodyBytes = 2 << 20
)

// Config holds the dependencies and settings for an Invoker. Zero-value
// fields get defaults; a nil Searcher or PaperSource makes the matching
// tool return its configuration-missing variant.
type Config struct {
	// Client executes HTTP exchanges for http_request and fetch_url.
	// Defaults to a client with no fixed deadline; per-call timeouts
	// come from context deadlines.
	Client *http.Client

	// Searcher is the web-search backend. Nil disables web_search.
	Searcher search.Searcher

	// Papers is the paper-repository backend. Nil disables arxiv_search.
	Papers search.PaperSource

	// Converter renders fetched HTML as markdown. Defaults to the
	// html-to-markdown converter.
	Converter convert.Converter

	// UserAgent overrides the fetch_url client identifier.
	UserAgent string

	// MaxBodyBytes caps how much of a fetched body is read (default 2 MiB).
	MaxBodyBytes int64

	// Logger receives debug logging. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Invoker exposes the tool operations. Construct with New; the zero value
// is not usable.
type Invoker struct {
	client       *http.Client
	searcher     search.Searcher
	papers       search.PaperSource
	converter    convert.Converter
	userAgent    string
	maxBodyBytes int64
	log          *zap.Logger
}

// New builds an Invoker from cfg, filling in defaults for unset fields.
func New(cfg Config) *Invoker {
	inv := &Invoker{
		client:       cfg.Client,
		searcher:     cfg.Searcher,
		papers:       cfg.Papers,
		converter:    cfg.Converter,
		userAgent:    cfg.UserAgent,
		maxBodyBytes: cfg.MaxBodyBytes,
		log:          cfg.Logger,
	}
	if inv.client == nil {
		inv.client = httputil.NewClient(0)
	}
	if inv.converter == nil {
		inv.converter = convert.NewMarkdownConverter()
	}
	if inv.userAgent == "" {
		inv.userAgent = defaultUserAgent
	}
	if inv.maxBodyBytes <= 0 {
		inv.maxBodyBytes = defaultMaxBodyBytes
	}
	if inv.log == nil {
		inv.log = zap.NewNop()
	}
	return inv
}
