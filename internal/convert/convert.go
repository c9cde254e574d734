// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert implements HTML-to-Markdown conversion behind a small
// interface so the fetch tool can be tested without a real converter.
package convert

import (
	"fmt"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// Converter transforms an HTML document into Markdown text.
type Converter interface {
	// Convert returns the Markdown rendering of the HTML input.
	Convert(html string) (string, error)
}

// MarkdownConverter converts HTML using the html-to-markdown library.
// Headings, lists, links, and emphasis are preserved; script and style
// content is dropped.
type MarkdownConverter struct {
	conv *md.Converter
}

// NewMarkdownConverter creates a converter with commonmark defaults.
func NewMarkdownConverter() *MarkdownConverter {
	conv := md.NewConverter("", true, nil)
	conv.Remove("script", "style", "noscript", "iframe")
	return &MarkdownConverter{conv: conv}
}

// Convert renders the HTML input as Markdown. Non-HTML text passes through
// largely unchanged.
func (m *MarkdownConverter) Convert(html string) (string, error) {
	out, err := m.conv.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(out), nil
}
