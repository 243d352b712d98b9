package dom

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// QueryService is the live-tree query interface the selector generators and
// optimizers depend on. Both methods evaluate against a single document
// snapshot; neither mutates the tree.
type QueryService interface {
	// QueryAll returns every element matching the selector, in document order.
	QueryAll(selector string) ([]*html.Node, error)
	// QueryFirst returns the first element matching the selector, or nil.
	QueryFirst(selector string) (*html.Node, error)
}

// Document is an in-memory snapshot of a parsed HTML tree implementing
// QueryService.
type Document struct {
	root *html.Node
}

// NewDocument wraps an already-parsed tree rooted at root.
func NewDocument(root *html.Node) *Document {
	return &Document{root: root}
}

// Parse reads and parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML document from a string.
func ParseString(content string) (*Document, error) {
	return Parse(strings.NewReader(content))
}

// FromGoquery wraps the tree behind a goquery document. The goquery document
// stays usable for standard-CSS lookups; this wrapper serves the extended
// grammar the generators emit.
func FromGoquery(doc *goquery.Document) *Document {
	return &Document{root: doc.Get(0)}
}

// Root returns the document root node.
func (d *Document) Root() *html.Node {
	return d.root
}

// QueryAll returns all elements matching the selector, in document order.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var matches []*html.Node
	walkElements(d.root, func(n *html.Node) bool {
		if m.match(n) {
			matches = append(matches, n)
		}
		return true
	})
	return matches, nil
}

// QueryFirst returns the first element matching the selector, or nil when
// nothing matches.
func (d *Document) QueryFirst(selector string) (*html.Node, error) {
	m, err := compile(selector)
	if err != nil {
		return nil, err
	}
	var first *html.Node
	walkElements(d.root, func(n *html.Node) bool {
		if m.match(n) {
			first = n
			return false
		}
		return true
	})
	return first, nil
}

// walkElements visits every element under root in document order. The visit
// function returns false to stop the walk.
func walkElements(root *html.Node, visit func(*html.Node) bool) {
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		if IsElement(n) && !visit(n) {
			return false
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(root)
}
