package selector

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// ParentGenerator walks the ancestor chain and describes each ancestor with
// the local, local-exclusion, and sibling generators, re-tagging the results
// with the ancestor depth. Ancestor chains in a tree cannot cycle, so the
// walk needs no guard beyond the optional level bound.
type ParentGenerator struct {
	costs     Costs
	local     *LocalGenerator
	exclusion *LocalExclusionGenerator
	sibling   *SiblingGenerator
	maxLevels int
	logger    logger.Interface
}

// NewParentGenerator creates a new ParentGenerator. maxLevels bounds the
// ancestor walk; zero walks to the document root.
func NewParentGenerator(
	costs Costs,
	local *LocalGenerator,
	exclusion *LocalExclusionGenerator,
	sibling *SiblingGenerator,
	maxLevels int,
	log logger.Interface,
) *ParentGenerator {
	return &ParentGenerator{
		costs:     costs,
		local:     local,
		exclusion: exclusion,
		sibling:   sibling,
		maxLevels: maxLevels,
		logger:    log,
	}
}

// Generate returns ancestor descriptors valid for every target. Targets with
// divergent ancestor chains intersect down to fewer (or no) parent
// descriptors rather than failing.
func (g *ParentGenerator) Generate(targets ...*html.Node) ([]Descriptor, error) {
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

func (g *ParentGenerator) generateOne(target *html.Node) ([]Descriptor, error) {
	var descriptors []Descriptor
	level := 0
	for ancestor := dom.ParentElement(target); ancestor != nil; ancestor = dom.ParentElement(ancestor) {
		level++
		if g.maxLevels > 0 && level > g.maxLevels {
			break
		}

		local, err := g.local.Generate(ancestor)
		if err != nil {
			return nil, err
		}
		exclusion, err := g.exclusion.Generate(ancestor)
		if err != nil {
			return nil, err
		}
		sibling, err := g.sibling.Generate(ancestor)
		if err != nil {
			return nil, err
		}

		for _, d := range local {
			descriptors = append(descriptors, g.retag(d, level))
		}
		for _, d := range exclusion {
			descriptors = append(descriptors, g.retag(d, level))
		}
		for _, d := range sibling {
			descriptors = append(descriptors, g.retag(d, level))
		}
	}
	return dedupe(descriptors), nil
}

// retag lifts a self-describing descriptor onto the ancestor level,
// overwriting the level 0 the sub-generators produce and adding the distance
// penalty.
func (g *ParentGenerator) retag(d Descriptor, level int) Descriptor {
	return Descriptor{
		Cost:     d.Cost + level*g.costs.Distance + g.costs.Parent,
		Level:    level,
		Type:     d.Type,
		Selector: d.Selector,
	}
}
