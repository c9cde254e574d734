// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleTavilyJSON = `{
  "query": "golang context cancellation",
  "results": [
    {
      "title": "Context and Cancellation - The Go Blog",
      "url": "https://go.dev/blog/context",
      "content": "The context package makes it easy to pass request-scoped values...",
      "score": 0.97,
      "raw_content": "full page text here"
    },
    {
      "title": "context package - context - Go Packages",
      "url": "https://pkg.go.dev/context",
      "content": "Package context defines the Context type...",
      "score": 0.81,
      "raw_content": ""
    }
  ]
}`

func TestTavilySearch(t *testing.T) {
	var gotReq tavilyRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sampleTavilyJSON))
	}))
	defer srv.Close()

	orig := tavilyAPIBase
	tavilyAPIBase = srv.URL
	defer func() { tavilyAPIBase = orig }()

	c := &TavilyClient{Client: srv.Client(), APIKey: "tvly-test-key"}
	items, err := c.Search(context.Background(), "golang context cancellation", Options{
		MaxResults: 2,
		Topic:      "general",
	})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	if gotAuth != "Bearer tvly-test-key" {
		t.Errorf("Authorization = %q, want bearer key", gotAuth)
	}
	if gotReq.Query != "golang context cancellation" {
		t.Errorf("request query = %q", gotReq.Query)
	}
	if gotReq.MaxResults != 2 {
		t.Errorf("request max_results = %d, want 2", gotReq.MaxResults)
	}
	if gotReq.Topic != "general" {
		t.Errorf("request topic = %q, want general", gotReq.Topic)
	}

	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].Title != "Context and Cancellation - The Go Blog" {
		t.Errorf("item[0].Title = %q", items[0].Title)
	}
	if items[0].Score != 0.97 {
		t.Errorf("item[0].Score = %v, want 0.97", items[0].Score)
	}
	if items[1].URL != "https://pkg.go.dev/context" {
		t.Errorf("item[1].URL = %q", items[1].URL)
	}
	// Raw content was not requested, so it must be omitted.
	if items[0].RawContent != "" {
		t.Errorf("RawContent should be empty when not requested, got %q", items[0].RawContent)
	}
}

func TestTavilySearchRawContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleTavilyJSON))
	}))
	defer srv.Close()

	orig := tavilyAPIBase
	tavilyAPIBase = srv.URL
	defer func() { tavilyAPIBase = orig }()

	c := &TavilyClient{Client: srv.Client(), APIKey: "k"}
	items, err := c.Search(context.Background(), "q", Options{IncludeRawContent: true})
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if items[0].RawContent != "full page text here" {
		t.Errorf("RawContent = %q, want full page text", items[0].RawContent)
	}
}

func TestTavilySearchDefaults(t *testing.T) {
	var gotReq tavilyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotReq)
		w.Write([]byte(`{"query":"q","results":[]}`))
	}))
	defer srv.Close()

	orig := tavilyAPIBase
	tavilyAPIBase = srv.URL
	defer func() { tavilyAPIBase = orig }()

	c := &TavilyClient{Client: srv.Client(), APIKey: "k"}
	if _, err := c.Search(context.Background(), "q", Options{}); err != nil {
		t.Fatalf("Search() error: %v", err)
	}
	if gotReq.MaxResults != 5 {
		t.Errorf("default max_results = %d, want 5", gotReq.MaxResults)
	}
	if gotReq.Topic != "general" {
		t.Errorf("default topic = %q, want general", gotReq.Topic)
	}
}

func TestTavilySearchHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	orig := tavilyAPIBase
	tavilyAPIBase = srv.URL
	defer func() { tavilyAPIBase = orig }()

	c := &TavilyClient{Client: srv.Client(), APIKey: "bad"}
	_, err := c.Search(context.Background(), "q", Options{})
	if err == nil {
		t.Fatal("expected error for HTTP 401")
	}
}
