package selector

import (
	"fmt"
	"strconv"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// SiblingGenerator produces position-among-siblings and relative
// sibling-identity descriptors. Positional costs scale with the distance
// from the nearest edge of the sibling list, since short nth-child counts
// survive sibling mutation better than long ones.
type SiblingGenerator struct {
	costs  Costs
	local  *LocalGenerator
	logger logger.Interface
}

// NewSiblingGenerator creates a new SiblingGenerator.
func NewSiblingGenerator(costs Costs, local *LocalGenerator, log logger.Interface) *SiblingGenerator {
	return &SiblingGenerator{costs: costs, local: local, logger: log}
}

// Generate returns sibling descriptors valid for every target.
func (g *SiblingGenerator) Generate(targets ...*html.Node) ([]Descriptor, error) {
	sets := make([][]Descriptor, 0, len(targets))
	for i, target := range targets {
		if err := dom.AssertElement(target); err != nil {
			return nil, fmt.Errorf("target %d: %w", i, ErrInvalidNodeKind)
		}
		sets = append(sets, g.generateOne(target))
	}
	return intersect(sets), nil
}

func (g *SiblingGenerator) generateOne(target *html.Node) []Descriptor {
	var descriptors []Descriptor
	prev := dom.PrevElementSibling(target)
	next := dom.NextElementSibling(target)

	if prev == nil {
		descriptors = append(descriptors, g.pseudo(g.costs.Position, ":first-child"))
	}
	if next == nil {
		descriptors = append(descriptors, g.pseudo(g.costs.Position, ":last-child"))
	}
	if prev == nil && next == nil {
		descriptors = append(descriptors, g.pseudo(g.costs.Position, ":only-child"))
	}

	if prev != nil {
		position := dom.ElementIndex(target)
		fromEnd := dom.ElementIndexFromEnd(target)
		descriptors = append(descriptors, g.pseudo(
			g.costs.Position+(position-1)*g.costs.PositionStep,
			":nth-child("+strconv.Itoa(position)+")",
		))
		if next != nil {
			descriptors = append(descriptors, g.pseudo(
				g.costs.Position+(fromEnd-1)*g.costs.PositionStep,
				":nth-last-child("+strconv.Itoa(fromEnd)+")",
			))
		}
	}

	// Relative sibling identity: "some earlier sibling matching X precedes
	// me" and "a later sibling matching X follows me".
	for s := prev; s != nil; s = dom.PrevElementSibling(s) {
		for _, ld := range g.local.generateOne(s) {
			descriptors = append(descriptors, g.pseudo(
				g.costs.Neighbor+ld.Cost,
				":is("+ld.Selector+" ~ *)",
			))
		}
	}
	for s := next; s != nil; s = dom.NextElementSibling(s) {
		for _, ld := range g.local.generateOne(s) {
			descriptors = append(descriptors, g.pseudo(
				g.costs.Neighbor+ld.Cost,
				":has(~ "+ld.Selector+")",
			))
		}
	}

	return dedupe(descriptors)
}

func (g *SiblingGenerator) pseudo(cost int, fragment string) Descriptor {
	return Descriptor{Cost: cost, Level: 0, Type: TypePseudo, Selector: fragment}
}
