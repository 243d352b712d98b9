// Package selector generates minimal, unique CSS selectors for element nodes
// of an HTML document tree.
package selector

import "errors"

// Fatal errors returned by the selector package. They indicate a contract
// violation by the caller and are never retried.
var (
	// ErrNoTargets is returned when no target nodes are provided.
	ErrNoTargets = errors.New("no target nodes provided")

	// ErrInvalidNodeKind is returned when a target is not an element node.
	ErrInvalidNodeKind = errors.New("target is not an element node")

	// ErrIncompatibleTargets is returned when multiple targets do not belong
	// to the same document tree.
	ErrIncompatibleTargets = errors.New("targets do not share a common document tree")
)
