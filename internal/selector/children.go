package selector

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// ChildrenGenerator recursively describes the descendant shape of the target
// subtree with relational pseudo-class descriptors. It deliberately emits a
// sound but redundant over-approximation: many overlapping structural facts
// at multiple costs, leaving pruning to the optimizer.
//
// Because :has() arguments cannot contain another :has(), all structural
// depth is flattened into a single relational argument: ">*" repeated depth
// times expresses depth levels of direct-child descent.
type ChildrenGenerator struct {
	costs  Costs
	local  *LocalGenerator
	logger logger.Interface
}

// NewChildrenGenerator creates a new ChildrenGenerator.
func NewChildrenGenerator(costs Costs, local *LocalGenerator, log logger.Interface) *ChildrenGenerator {
	return &ChildrenGenerator{costs: costs, local: local, logger: log}
}

// Generate returns structural descriptors valid for every target.
func (g *ChildrenGenerator) Generate(targets ...*html.Node) ([]Descriptor, error) {
	sets := make([][]Descriptor, 0, len(targets))
	for i, target := range targets {
		if err := dom.AssertElement(target); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, ErrInvalidNodeKind)
		}
		var set []Descriptor
		g.walk(target, 0, &set)
		sets = append(sets, dedupe(set))
	}
	return intersect(sets), nil
}

// walk emits descriptors for the node at the given depth below the target
// and recurses into its children.
func (g *ChildrenGenerator) walk(n *html.Node, depth int, out *[]Descriptor) {
	children := dom.ElementChildren(n)
	hasContent := dom.HasContent(n)

	if depth == 0 && len(children) == 0 && hasContent {
		// Text-only node. A nested "has no children" check is structurally
		// impossible because relational pseudo-classes cannot nest, so this
		// is only emitted for the target itself.
		*out = append(*out, g.pseudo(
			g.costs.Not+g.costs.Has+g.costs.Children,
			":not(:has(>*))",
		))
	}

	if len(children) == 0 && !hasContent {
		if depth == 0 {
			*out = append(*out, g.pseudo(g.costs.Children, ":empty"))
		} else {
			*out = append(*out, g.pseudo(
				depth*g.costs.Distance+g.costs.Has+g.costs.Children,
				":has("+childPath(depth)+":empty)",
			))
			// Cheaper existential alternative without the explicit path.
			*out = append(*out, g.pseudo(
				g.costs.Has+g.costs.Children,
				":has(:empty)",
			))
		}
	}

	if count := len(children); count > 0 {
		nth := ":nth-child(" + strconv.Itoa(count) + "):last-child"
		if depth == 0 {
			*out = append(*out, g.pseudo(
				g.costs.Has+g.costs.Children,
				":has("+nth+")",
			))
		} else {
			*out = append(*out, g.pseudo(
				depth*g.costs.Distance+g.costs.Has+g.costs.Children,
				":has("+childPath(depth)+">*"+nth+")",
			))
			*out = append(*out, g.pseudo(
				g.costs.Has+g.costs.Children,
				":has(* "+nth+")",
			))
		}
	}

	for _, child := range children {
		for _, ld := range g.local.generateOne(child) {
			cost := depth*g.costs.Distance + g.costs.Has + g.costs.Children + ld.Cost
			if depth == 0 {
				*out = append(*out, g.pseudo(cost, ":has(>"+ld.Selector+")"))
			} else {
				*out = append(*out, g.pseudo(cost, ":has("+childPath(depth)+">"+ld.Selector+")"))
				*out = append(*out, g.pseudo(
					g.costs.Has+g.costs.Children+ld.Cost,
					":has(* "+ld.Selector+")",
				))
			}
		}
		g.walk(child, depth+1, out)
	}
}

func (g *ChildrenGenerator) pseudo(cost int, fragment string) Descriptor {
	return Descriptor{Cost: cost, Level: 0, Type: TypePseudo, Selector: fragment}
}

// childPath renders depth levels of direct-child descent inside a single
// relational argument.
func childPath(depth int) string {
	return strings.Repeat(">*", depth)
}
