package selector

import (
	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// TopDownOptimizer reduces a descriptor set greedily: starting from the full
// set it repeatedly removes the most expensive descriptor whose removal
// still leaves the build matching exactly the target nodes. The first viable
// removal found in cost-descending order is taken immediately; this is a
// steepest-first descent, not an exhaustive search.
type TopDownOptimizer struct {
	doc     dom.QueryService
	builder *Builder
	debug   *DebugOptimizer
	logger  logger.Interface
}

// NewTopDownOptimizer creates a new TopDownOptimizer.
func NewTopDownOptimizer(doc dom.QueryService, builder *Builder, log logger.Interface) *TopDownOptimizer {
	return &TopDownOptimizer{
		doc:     doc,
		builder: builder,
		debug:   NewDebugOptimizer(doc, builder),
		logger:  log,
	}
}

// Optimize returns a minimal descriptor subset whose build still matches
// exactly the target nodes. When the full set itself does not match,
// generation has failed to produce a sufficient set; the failure is logged,
// the debug optimizer narrows a minimal failing subset for the log, and the
// full unreduced set is returned as a best effort.
func (o *TopDownOptimizer) Optimize(targets []*html.Node, descriptors []Descriptor) []Descriptor {
	if !matchesExactly(o.doc, o.builder, targets, descriptors) {
		o.logger.Warn("generated descriptor set does not uniquely match targets",
			"targets", len(targets),
			"descriptors", len(descriptors),
		)
		if missing := o.firstUnmatched(targets, descriptors); missing != nil {
			narrowed := o.debug.Narrow(missing, descriptors)
			o.logger.Debug("minimal non-matching descriptor subset",
				"selector", o.builder.Build(narrowed),
			)
		}
		return descriptors
	}

	current := sortByCostDesc(descriptors)
	for len(current) > 1 {
		removed := false
		for i, d := range current {
			if d.Level == 0 && d.Type == TypeTag {
				// The root tag anchor is never removable; without a fixed
				// anchor a removal chain can degrade the selector to
				// degenerate universal matches.
				continue
			}
			trial := without(current, i)
			if matchesExactly(o.doc, o.builder, targets, trial) {
				current = trial
				removed = true
				break
			}
		}
		if !removed {
			break
		}
	}
	return current
}

// firstUnmatched returns the first target absent from the full build's
// matches, or nil.
func (o *TopDownOptimizer) firstUnmatched(targets []*html.Node, descriptors []Descriptor) *html.Node {
	sel := o.builder.Build(descriptors)
	matches, err := o.doc.QueryAll(sel)
	if err != nil {
		if len(targets) > 0 {
			return targets[0]
		}
		return nil
	}
	matched := make(map[*html.Node]bool, len(matches))
	for _, m := range matches {
		matched[m] = true
	}
	for _, t := range targets {
		if !matched[t] {
			return t
		}
	}
	return nil
}

// matchesExactly reports whether the candidate set builds into a selector
// matching exactly the target nodes: same count, every target present. An
// empty candidate set or an unbuildable selector is automatically invalid;
// matching the right number of the wrong nodes is invalid too.
func matchesExactly(doc dom.QueryService, builder *Builder, targets []*html.Node, candidate []Descriptor) bool {
	if len(candidate) == 0 {
		return false
	}
	sel := builder.Build(candidate)
	if sel == "" {
		return false
	}
	matches, err := doc.QueryAll(sel)
	if err != nil {
		return false
	}
	if len(matches) != len(targets) {
		return false
	}
	matched := make(map[*html.Node]bool, len(matches))
	for _, m := range matches {
		matched[m] = true
	}
	for _, t := range targets {
		if !matched[t] {
			return false
		}
	}
	return true
}

// DebugOptimizer narrows a descriptor set that fails to match a node down to
// a minimal subset sufficient to explain the non-match. Diagnostics only.
type DebugOptimizer struct {
	doc     dom.QueryService
	builder *Builder
}

// NewDebugOptimizer creates a new DebugOptimizer.
func NewDebugOptimizer(doc dom.QueryService, builder *Builder) *DebugOptimizer {
	return &DebugOptimizer{doc: doc, builder: builder}
}

// Narrow performs one cost-descending pass, removing each descriptor whose
// removal still leaves the set failing to match the node.
func (o *DebugOptimizer) Narrow(node *html.Node, descriptors []Descriptor) []Descriptor {
	current := sortByCostDesc(descriptors)
	for i := 0; i < len(current); {
		if len(current) == 1 {
			break
		}
		trial := without(current, i)
		if o.misses(node, trial) {
			current = trial
			continue
		}
		i++
	}
	return current
}

// misses reports whether the candidate set's build fails to match the node.
func (o *DebugOptimizer) misses(node *html.Node, candidate []Descriptor) bool {
	sel := o.builder.Build(candidate)
	matches, err := o.doc.QueryAll(sel)
	if err != nil {
		return true
	}
	for _, m := range matches {
		if m == node {
			return false
		}
	}
	return true
}
