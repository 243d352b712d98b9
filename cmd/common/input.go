package common

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
)

// Input errors.
var (
	// ErrNoQuery is returned when no target query was provided.
	ErrNoQuery = errors.New("a --query selector is required")
	// ErrQueryNoMatch is returned when the target query matches nothing.
	ErrQueryNoMatch = errors.New("query matched no elements")
)

// Targets bundles a parsed document with the resolved target nodes.
type Targets struct {
	// Document is the snapshot the generator queries.
	Document *dom.Document
	// Nodes are the target element nodes.
	Nodes []*html.Node
}

// ReadInput reads HTML from the given file, or from stdin when path is "-"
// or empty.
func ReadInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return content, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return content, nil
}

// ResolveTargets parses the document and locates the target element(s) with
// a standard CSS query. User queries go through goquery; only the generated
// extended grammar uses the internal matcher.
func ResolveTargets(content []byte, query string, all bool) (*Targets, error) {
	if query == "" {
		return nil, ErrNoQuery
	}
	gq, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	found := gq.Find(query)
	if found.Length() == 0 {
		return nil, fmt.Errorf("%w: %q", ErrQueryNoMatch, query)
	}

	nodes := found.Nodes
	if !all {
		nodes = nodes[:1]
	}
	return &Targets{Document: dom.FromGoquery(gq), Nodes: nodes}, nil
}
