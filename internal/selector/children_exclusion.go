package selector

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// ChildrenExclusionGenerator distinguishes the target from locally identical
// nodes at the structural level: it negates descendant identity marks that
// other base-selector matches expose and the target's own subtree does not.
type ChildrenExclusionGenerator struct {
	costs   Costs
	filters *filters
	local   *LocalGenerator
	builder *Builder
	doc     dom.QueryService
	logger  logger.Interface
}

// NewChildrenExclusionGenerator creates a new ChildrenExclusionGenerator.
func NewChildrenExclusionGenerator(
	costs Costs,
	f *filters,
	local *LocalGenerator,
	builder *Builder,
	doc dom.QueryService,
	log logger.Interface,
) *ChildrenExclusionGenerator {
	return &ChildrenExclusionGenerator{
		costs:   costs,
		filters: f,
		local:   local,
		builder: builder,
		doc:     doc,
		logger:  log,
	}
}

// Generate emits :not(:has(...)) descriptors for identity marks carried by
// descendants of other base-selector matches but absent from the target's
// subtree. Intersected across multiple targets.
func (g *ChildrenExclusionGenerator) Generate(targets ...*html.Node) ([]Descriptor, error) {
	sets := make([][]Descriptor, 0, len(targets))
	for i, target := range targets {
		if err := dom.AssertElement(target); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, ErrInvalidNodeKind)
		}
		set, err := g.generateOne(target)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	return intersect(sets), nil
}

func (g *ChildrenExclusionGenerator) generateOne(target *html.Node) ([]Descriptor, error) {
	base := g.builder.Build(g.local.generateOne(target))
	descendants, err := g.doc.QueryAll(base + " *")
	if err != nil {
		return nil, fmt.Errorf("failed to query descendants of %q: %w", base, err)
	}

	var descriptors []Descriptor
	for _, node := range descendants {
		if dom.Contains(target, node) {
			continue
		}
		for _, mark := range collectIdentityMarks(node, g.costs, g.filters) {
			exposed, probeErr := g.subtreeExposes(target, mark.fragment)
			if probeErr != nil {
				return nil, probeErr
			}
			if exposed {
				continue
			}
			descriptors = append(descriptors, Descriptor{
				Cost:     g.costs.Not + g.costs.Has + g.costs.Children + mark.cost,
				Level:    0,
				Type:     TypePseudo,
				Selector: ":not(:has(" + mark.fragment + "))",
			})
		}
	}
	return dedupe(descriptors), nil
}

// subtreeExposes reports whether any strict descendant of the target matches
// the inner fragment.
func (g *ChildrenExclusionGenerator) subtreeExposes(target *html.Node, fragment string) (bool, error) {
	matches, err := g.doc.QueryAll(fragment)
	if err != nil {
		return false, fmt.Errorf("failed to probe subtree for %q: %w", fragment, err)
	}
	for _, m := range matches {
		if m != target && dom.Contains(target, m) {
			return true, nil
		}
	}
	return false, nil
}
