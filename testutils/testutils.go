// Package testutils provides shared testing utilities across the application.
package testutils

import (
	"testing"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
)

// ParseDocument parses an HTML fragment into a Document, failing the test on
// error.
func ParseDocument(t *testing.T, content string) *dom.Document {
	t.Helper()

	doc, err := dom.ParseString(content)
	if err != nil {
		t.Fatalf("failed to parse document: %v", err)
	}
	return doc
}

// QueryOne returns the single element a selector matches, failing the test
// when the match count is not exactly one.
func QueryOne(t *testing.T, doc *dom.Document, sel string) *html.Node {
	t.Helper()

	nodes, err := doc.QueryAll(sel)
	if err != nil {
		t.Fatalf("query %q failed: %v", sel, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("query %q matched %d elements, want 1", sel, len(nodes))
	}
	return nodes[0]
}

// QueryAll returns every element a selector matches, failing the test on a
// parse error.
func QueryAll(t *testing.T, doc *dom.Document, sel string) []*html.Node {
	t.Helper()

	nodes, err := doc.QueryAll(sel)
	if err != nil {
		t.Fatalf("query %q failed: %v", sel, err)
	}
	return nodes
}
