// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/agent-tools/pkg/types"
)

const fetchTestHTML = `<html><head><title>Docs</title></head><body>
<h1>Getting Started</h1>
<p>Read the <a href="https://example.com/guide">guide</a> first.</p>
</body></html>`

func TestFetchURL(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(fetchTestHTML))
	}))
	defer srv.Close()

	inv := New(Config{Client: srv.Client()})
	res := inv.FetchURL(context.Background(), srv.URL, 0)

	if res.IsError() {
		t.Fatalf("unexpected error variant: %v", res.Error)
	}
	if res.StatusCode != http.StatusOK {
		t.Errorf("StatusCode = %d, want 200", res.StatusCode)
	}
	if res.URL != srv.URL {
		t.Errorf("URL = %q, want %q", res.URL, srv.URL)
	}
	if !strings.Contains(res.MarkdownContent, "# Getting Started") {
		t.Errorf("markdown missing heading marker:\n%s", res.MarkdownContent)
	}
	if !strings.Contains(res.MarkdownContent, "[guide](https://example.com/guide)") {
		t.Errorf("markdown missing link:\n%s", res.MarkdownContent)
	}
	if res.ContentLength != len(res.MarkdownContent) {
		t.Errorf("ContentLength = %d, want %d", res.ContentLength, len(res.MarkdownContent))
	}
	if !strings.Contains(gotUA, "agent-tools") {
		t.Errorf("User-Agent = %q, want descriptive client identifier", gotUA)
	}
}

func TestFetchURLFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/moved", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/docs", http.StatusFound)
	})
	mux.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(fetchTestHTML))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	inv := New(Config{Client: srv.Client()})
	res := inv.FetchURL(context.Background(), srv.URL+"/moved", 0)

	if res.IsError() {
		t.Fatalf("unexpected error variant: %v", res.Error)
	}
	// The result names the URL the content was fetched from, not the
	// redirecting one.
	if res.URL != srv.URL+"/docs" {
		t.Errorf("URL = %q, want %q", res.URL, srv.URL+"/docs")
	}
	if !strings.Contains(res.MarkdownContent, "# Getting Started") {
		t.Errorf("markdown missing heading marker:\n%s", res.MarkdownContent)
	}
}

func TestFetchURLRemoteStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	inv := New(Config{Client: srv.Client()})
	res := inv.FetchURL(context.Background(), srv.URL, 0)

	if !res.IsError() {
		t.Fatal("want error variant for HTTP 404")
	}
	if res.ErrorKind != types.KindRemoteStatus {
		t.Errorf("ErrorKind = %q, want remote_status", res.ErrorKind)
	}
	if res.URL != srv.URL {
		t.Errorf("URL = %q, want input URL", res.URL)
	}
	if !strings.Contains(res.Error, "404") {
		t.Errorf("Error = %q, want status named", res.Error)
	}
}

func TestFetchURLTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
	}))
	defer srv.Close()

	inv := New(Config{Client: srv.Client()})
	res := inv.FetchURL(context.Background(), srv.URL, 50*time.Millisecond)

	if !res.IsError() {
		t.Fatal("want error variant on timeout")
	}
	if res.ErrorKind != types.KindTimeout {
		t.Errorf("ErrorKind = %q, want timeout", res.ErrorKind)
	}
	if !strings.Contains(res.Error, "50ms") {
		t.Errorf("Error = %q, want timeout value named", res.Error)
	}
}

func TestFetchURLTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	deadURL := srv.URL
	srv.Close()

	inv := New(Config{})
	res := inv.FetchURL(context.Background(), deadURL, 0)

	if !res.IsError() {
		t.Fatal("want error variant on refused connection")
	}
	if res.ErrorKind != types.KindTransport {
		t.Errorf("ErrorKind = %q, want transport", res.ErrorKind)
	}
}

// failingConverter always errors, standing in for a conversion fault.
type failingConverter struct{}

func (failingConverter) Convert(string) (string, error) {
	return "", errors.New("conversion exploded")
}

func TestFetchURLConversionFault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<p>fine html</p>"))
	}))
	defer srv.Close()

	inv := New(Config{Client: srv.Client(), Converter: failingConverter{}})
	res := inv.FetchURL(context.Background(), srv.URL, 0)

	if !res.IsError() {
		t.Fatal("want error variant on conversion failure")
	}
	if res.ErrorKind != types.KindConversion {
		t.Errorf("ErrorKind = %q, want conversion", res.ErrorKind)
	}
	if !strings.Contains(res.Error, "conversion exploded") {
		t.Errorf("Error = %q, want diagnostic preserved", res.Error)
	}
}
