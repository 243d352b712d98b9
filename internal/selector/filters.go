package selector

import (
	"fmt"

	"github.com/jonesrussell/goselector/internal/blacklist"
)

// filters holds the compiled blacklist matchers and ignore lists shared by
// every generator of one Generator instance.
type filters struct {
	id    *blacklist.Matcher
	class *blacklist.Matcher
	attr  *blacklist.Matcher

	ignoredAttrs          map[string]bool
	exclusionIgnoredAttrs map[string]bool
}

// newFilters compiles the option pattern lists once.
func newFilters(opts Options) (*filters, error) {
	id, err := blacklist.New(opts.IDBlacklist)
	if err != nil {
		return nil, fmt.Errorf("failed to compile id blacklist: %w", err)
	}
	class, err := blacklist.New(opts.ClassBlacklist)
	if err != nil {
		return nil, fmt.Errorf("failed to compile class blacklist: %w", err)
	}
	attr, err := blacklist.New(opts.AttributeBlacklist)
	if err != nil {
		return nil, fmt.Errorf("failed to compile attribute blacklist: %w", err)
	}
	return &filters{
		id:                    id,
		class:                 class,
		attr:                  attr,
		ignoredAttrs:          toSet(opts.IgnoredAttributes),
		exclusionIgnoredAttrs: toSet(opts.ExclusionIgnoredAttributes),
	}, nil
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}
