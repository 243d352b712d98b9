package selector

import (
	"sort"
	"strings"
)

// Builder linearizes a descriptor set into a single CSS selector string.
// Building the same set twice always yields an identical string.
type Builder struct{}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build groups descriptors by level, renders each level as a compound
// selector in fixed type order, and joins ancestor levels to the own
// selector with the appropriate combinators. Adjacent levels use the child
// combinator; a gap between levels falls back to the descendant combinator,
// so an optimizer may drop intermediate ancestors and still get a
// structurally correct selector.
func (b *Builder) Build(descriptors []Descriptor) string {
	levels := make(map[int][]Descriptor)
	for _, d := range descriptors {
		level := d.Level
		if level < 0 {
			level = 0
		}
		levels[level] = append(levels[level], d)
	}

	result := b.buildCompound(levels[0])

	ancestors := make([]int, 0, len(levels))
	for level := range levels {
		if level > 0 {
			ancestors = append(ancestors, level)
		}
	}
	sort.Ints(ancestors)

	previous := 0
	for _, level := range ancestors {
		combinator := " "
		if level == previous+1 {
			combinator = " > "
		}
		result = b.buildCompound(levels[level]) + combinator + result
		previous = level
	}
	return result
}

// buildCompound concatenates one level's fragments in tag, id, class, attr,
// pseudo order. An empty group renders as the universal selector so it can
// still anchor combinators.
func (b *Builder) buildCompound(descriptors []Descriptor) string {
	if len(descriptors) == 0 {
		return "*"
	}
	ordered := append([]Descriptor(nil), descriptors...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return typeOrder[ordered[i].Type] < typeOrder[ordered[j].Type]
	})
	var sb strings.Builder
	for _, d := range ordered {
		sb.WriteString(d.Selector)
	}
	return sb.String()
}
