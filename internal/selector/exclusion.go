package selector

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// LocalExclusionGenerator distinguishes the target from other nodes that its
// local selector alone also matches, by negating whatever identity marks
// those co-matching nodes carry and the target lacks.
type LocalExclusionGenerator struct {
	costs   Costs
	filters *filters
	local   *LocalGenerator
	builder *Builder
	doc     dom.QueryService
	logger  logger.Interface
}

// NewLocalExclusionGenerator creates a new LocalExclusionGenerator.
func NewLocalExclusionGenerator(
	costs Costs,
	f *filters,
	local *LocalGenerator,
	builder *Builder,
	doc dom.QueryService,
	log logger.Interface,
) *LocalExclusionGenerator {
	return &LocalExclusionGenerator{
		costs:   costs,
		filters: f,
		local:   local,
		builder: builder,
		doc:     doc,
		logger:  log,
	}
}

// Generate emits one :not() descriptor per identity mark present on a
// co-matching node but absent from the target. Intersected across multiple
// targets by selector-string equality.
func (g *LocalExclusionGenerator) Generate(targets ...*html.Node) ([]Descriptor, error) {
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

func (g *LocalExclusionGenerator) generateOne(target *html.Node) ([]Descriptor, error) {
	base := g.builder.Build(g.local.generateOne(target))
	matches, err := g.doc.QueryAll(base)
	if err != nil {
		return nil, fmt.Errorf("failed to query base selector %q: %w", base, err)
	}

	own := toSet(nil)
	for _, mark := range g.identityMarks(target) {
		own[mark.fragment] = true
	}

	var descriptors []Descriptor
	for _, node := range matches {
		if node == target {
			continue
		}
		for _, mark := range g.identityMarks(node) {
			if own[mark.fragment] {
				continue
			}
			descriptors = append(descriptors, Descriptor{
				Cost:     g.costs.Not + mark.cost,
				Level:    0,
				Type:     TypePseudo,
				Selector: ":not(" + mark.fragment + ")",
			})
		}
	}
	return dedupe(descriptors), nil
}

// identityMark is one id, class, or attribute fragment of a node,
// collected for exclusion purposes.
type identityMark struct {
	fragment string
	cost     int
}

// identityMarks collects a node's non-blacklisted identity fragments. This
// is the attribute-collector half of exclusion generation; it applies the
// exclusion ignore list rather than the local one.
func (g *LocalExclusionGenerator) identityMarks(n *html.Node) []identityMark {
	return collectIdentityMarks(n, g.costs, g.filters)
}

func collectIdentityMarks(n *html.Node, costs Costs, f *filters) []identityMark {
	var marks []identityMark

	if id := dom.ID(n); id != "" && !f.id.Matches(id) {
		marks = append(marks, identityMark{fragment: "#" + escapeIdent(id), cost: costs.ID})
	}
	for _, class := range dom.Classes(n) {
		if f.class.Matches(class) {
			continue
		}
		marks = append(marks, identityMark{fragment: "." + escapeIdent(class), cost: costs.Class})
	}
	for _, name := range dom.SortedAttributeNames(n) {
		if f.exclusionIgnoredAttrs[name] || f.attr.Matches(name) {
			continue
		}
		value, _ := dom.Attr(n, name)
		marks = append(marks, identityMark{fragment: attrFragment(name, value), cost: costs.Attr})
	}
	return marks
}
