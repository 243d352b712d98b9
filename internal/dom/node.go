// Package dom provides the document snapshot and query service the selector
// generators run against, along with element-node helpers for a
// golang.org/x/net/html tree.
package dom

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// IsElement reports whether the node is an element node.
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// AssertElement validates that the node is an element node.
func AssertElement(n *html.Node) error {
	if !IsElement(n) {
		return ErrNotElement
	}
	return nil
}

// TagName returns the lowercased element name.
func TagName(n *html.Node) string {
	return strings.ToLower(n.Data)
}

// Attr returns the value of the named attribute and whether it is present.
func Attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// ID returns the element's id attribute, or the empty string.
func ID(n *html.Node) string {
	id, _ := Attr(n, "id")
	return strings.TrimSpace(id)
}

// Classes returns the element's class list in document order.
func Classes(n *html.Node) []string {
	raw, ok := Attr(n, "class")
	if !ok {
		return nil
	}
	return strings.Fields(raw)
}

// HasClass reports whether the element carries the given class.
func HasClass(n *html.Node, class string) bool {
	for _, c := range Classes(n) {
		if c == class {
			return true
		}
	}
	return false
}

// ParentElement returns the nearest element ancestor, or nil at the root.
func ParentElement(n *html.Node) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if IsElement(p) {
			return p
		}
	}
	return nil
}

// ElementChildren returns the element child nodes in document order.
func ElementChildren(n *html.Node) []*html.Node {
	var children []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) {
			children = append(children, c)
		}
	}
	return children
}

// PrevElementSibling returns the previous element sibling, skipping text and
// comment nodes, or nil.
func PrevElementSibling(n *html.Node) *html.Node {
	for s := n.PrevSibling; s != nil; s = s.PrevSibling {
		if IsElement(s) {
			return s
		}
	}
	return nil
}

// NextElementSibling returns the next element sibling, skipping text and
// comment nodes, or nil.
func NextElementSibling(n *html.Node) *html.Node {
	for s := n.NextSibling; s != nil; s = s.NextSibling {
		if IsElement(s) {
			return s
		}
	}
	return nil
}

// ElementIndex returns the 1-based position of the node among its element
// siblings.
func ElementIndex(n *html.Node) int {
	index := 1
	for s := PrevElementSibling(n); s != nil; s = PrevElementSibling(s) {
		index++
	}
	return index
}

// ElementIndexFromEnd returns the 1-based position of the node among its
// element siblings counted from the end.
func ElementIndexFromEnd(n *html.Node) int {
	index := 1
	for s := NextElementSibling(n); s != nil; s = NextElementSibling(s) {
		index++
	}
	return index
}

// HasContent reports whether the node has any non-element child content
// (text or comment nodes).
func HasContent(n *html.Node) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.TextNode || c.Type == html.CommentNode {
			return true
		}
	}
	return false
}

// Contains reports whether node is root or lies inside root's subtree.
func Contains(root, node *html.Node) bool {
	for n := node; n != nil; n = n.Parent {
		if n == root {
			return true
		}
	}
	return false
}

// Root walks up to the topmost node of the tree containing n.
func Root(n *html.Node) *html.Node {
	top := n
	for top.Parent != nil {
		top = top.Parent
	}
	return top
}

// SortedAttributeNames returns the element's attribute names sorted
// alphabetically, for deterministic iteration.
func SortedAttributeNames(n *html.Node) []string {
	names := make([]string, 0, len(n.Attr))
	for _, a := range n.Attr {
		names = append(names, a.Key)
	}
	sort.Strings(names)
	return names
}
