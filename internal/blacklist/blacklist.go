// Package blacklist provides wildcard-pattern matching for filtering out
// unreliable identifiers such as framework-generated ids, classes, and
// attribute names.
package blacklist

import (
	"fmt"
	"regexp"
	"strings"
)

// Matcher holds a compiled set of wildcard patterns. A pattern is matched
// against the whole value: "foo" matches only "foo", "*foo*" matches any
// value containing "foo".
type Matcher struct {
	patterns []*regexp.Regexp
}

// New compiles the given wildcard patterns into a Matcher. Patterns use `*`
// as the only metacharacter; everything else is matched literally.
func New(patterns []string) (*Matcher, error) {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		re, err := regexp.Compile(toRegexp(pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to compile blacklist pattern %q: %w", pattern, err)
		}
		compiled = append(compiled, re)
	}
	return &Matcher{patterns: compiled}, nil
}

// MustNew is like New but panics on an invalid pattern. Intended for
// compile-time-constant pattern lists.
func MustNew(patterns []string) *Matcher {
	m, err := New(patterns)
	if err != nil {
		panic(err)
	}
	return m
}

// Matches reports whether the value matches any of the configured patterns.
func (m *Matcher) Matches(value string) bool {
	for _, re := range m.patterns {
		if re.MatchString(value) {
			return true
		}
	}
	return false
}

// Empty reports whether the matcher has no patterns.
func (m *Matcher) Empty() bool {
	return len(m.patterns) == 0
}

// toRegexp converts a wildcard pattern to an anchored regular expression.
func toRegexp(pattern string) string {
	parts := strings.Split(pattern, "*")
	for i, part := range parts {
		parts[i] = regexp.QuoteMeta(part)
	}
	return "^" + strings.Join(parts, ".*") + "$"
}
