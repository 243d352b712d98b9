// Package dom provides the document snapshot and query service.
package dom

import "errors"

// Common errors returned by the dom package.
var (
	// ErrNotElement is returned when a node is not an element node.
	ErrNotElement = errors.New("node is not an element node")
	// ErrEmptySelector is returned when an empty selector string is queried.
	ErrEmptySelector = errors.New("empty selector")
	// ErrInvalidSelector is returned when a selector string cannot be parsed.
	ErrInvalidSelector = errors.New("invalid selector")
)
