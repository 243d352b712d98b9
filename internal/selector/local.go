package selector

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// LocalGenerator produces descriptors for a node's own identity: id, tag,
// classes, and attributes.
type LocalGenerator struct {
	costs   Costs
	filters *filters
	logger  logger.Interface
}

// NewLocalGenerator creates a new LocalGenerator.
func NewLocalGenerator(costs Costs, f *filters, log logger.Interface) *LocalGenerator {
	return &LocalGenerator{costs: costs, filters: f, logger: log}
}

// Generate returns identity descriptors valid for every target. For a single
// target this is its full local set; for multiple targets only fragments
// shared by every node survive.
func (g *LocalGenerator) Generate(targets ...*html.Node) ([]Descriptor, error) {
	sets := make([][]Descriptor, 0, len(targets))
	for i, target := range targets {
		if err := dom.AssertElement(target); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, ErrInvalidNodeKind)
		}
		sets = append(sets, g.generateOne(target))
	}
	return intersect(sets), nil
}

// generateOne builds the full local descriptor set for one element.
func (g *LocalGenerator) generateOne(n *html.Node) []Descriptor {
	var descriptors []Descriptor

	if id := dom.ID(n); id != "" && !g.filters.id.Matches(id) {
		descriptors = append(descriptors, Descriptor{
			Cost:     g.costs.ID,
			Level:    0,
			Type:     TypeID,
			Selector: "#" + escapeIdent(id),
		})
	}

	descriptors = append(descriptors, Descriptor{
		Cost:     g.costs.Tag,
		Level:    0,
		Type:     TypeTag,
		Selector: escapeIdent(dom.TagName(n)),
	})

	for _, class := range dom.Classes(n) {
		if g.filters.class.Matches(class) {
			continue
		}
		descriptors = append(descriptors, Descriptor{
			Cost:     g.costs.Class,
			Level:    0,
			Type:     TypeClass,
			Selector: "." + escapeIdent(class),
		})
	}

	for _, name := range dom.SortedAttributeNames(n) {
		if g.filters.ignoredAttrs[name] || g.filters.attr.Matches(name) {
			continue
		}
		value, _ := dom.Attr(n, name)
		descriptors = append(descriptors, Descriptor{
			Cost:     g.costs.Attr,
			Level:    0,
			Type:     TypeAttr,
			Selector: attrFragment(name, value),
		})
	}

	return dedupe(descriptors)
}

// attrFragment renders an attribute selector, with a value match when the
// attribute carries one.
func attrFragment(name, value string) string {
	if value == "" {
		return "[" + name + "]"
	}
	return "[" + name + `="` + escapeAttrValue(value) + `"]`
}
