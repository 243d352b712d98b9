package selector

import (
	"fmt"
	"sort"
)

// Type classifies the CSS fragment a descriptor contributes. The type
// determines builder ordering within a compound selector and the semantic
// weight used for costing.
type Type string

// Descriptor types in builder order.
const (
	TypeTag    Type = "tag"
	TypeID     Type = "id"
	TypeClass  Type = "class"
	TypeAttr   Type = "attr"
	TypePseudo Type = "pseudo"
)

// typeOrder fixes the concatenation order inside a compound selector. CSS
// requires the tag first and trailing pseudo fragments.
var typeOrder = map[Type]int{
	TypeTag:    0,
	TypeID:     1,
	TypeClass:  2,
	TypeAttr:   3,
	TypePseudo: 4,
}

// Descriptor is one candidate CSS selector fragment plus its metadata. It is
// the unit of currency between generators, optimizers, and the builder.
// Descriptors are never mutated after creation; optimizers only copy them
// into smaller slices.
type Descriptor struct {
	// Cost orders descriptors by reliability; lower is better. Costs are
	// additive across a descriptor set.
	Cost int
	// Level encodes ancestor distance: 0 is the target itself, n is the
	// ancestor n hops up. Descendant structure is encoded inside pseudo
	// fragments, never as a negative level.
	Level int
	// Type is the fragment kind.
	Type Type
	// Selector is the literal CSS fragment, e.g. "#foo", ".bar",
	// "[data-x]", ":nth-child(2)".
	Selector string
}

// key identifies a descriptor for intersection and deduplication.
func (d Descriptor) key() string {
	return fmt.Sprintf("%d|%s|%s", d.Level, d.Type, d.Selector)
}

// intersect keeps only descriptors whose (level, type, selector) triple
// appears in every per-target set, preserving the order of the first set.
// This is what generalizes single-node generation to multi-node generation:
// a fragment survives only if it is valid for every target.
func intersect(sets [][]Descriptor) []Descriptor {
	if len(sets) == 0 {
		return nil
	}
	if len(sets) == 1 {
		return sets[0]
	}
	common := make(map[string]int, len(sets[0]))
	for _, d := range sets[0] {
		common[d.key()] = 1
	}
	for _, set := range sets[1:] {
		seen := make(map[string]bool, len(set))
		for _, d := range set {
			k := d.key()
			if !seen[k] {
				seen[k] = true
				common[k]++
			}
		}
	}
	var out []Descriptor
	seen := make(map[string]bool, len(common))
	for _, d := range sets[0] {
		k := d.key()
		if common[k] == len(sets) && !seen[k] {
			seen[k] = true
			out = append(out, d)
		}
	}
	return out
}

// dedupe removes repeated fragments, keeping the first occurrence.
func dedupe(descriptors []Descriptor) []Descriptor {
	seen := make(map[string]bool, len(descriptors))
	out := descriptors[:0:0]
	for _, d := range descriptors {
		k := d.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, d)
	}
	return out
}

// sortByCostDesc returns a copy sorted worst-first. The sort is stable so
// equal-cost descriptors keep generation order and builds stay
// deterministic.
func sortByCostDesc(descriptors []Descriptor) []Descriptor {
	out := append([]Descriptor(nil), descriptors...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost > out[j].Cost })
	return out
}

// sortByCostAsc returns a copy sorted best-first.
func sortByCostAsc(descriptors []Descriptor) []Descriptor {
	out := append([]Descriptor(nil), descriptors...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Cost < out[j].Cost })
	return out
}

// without returns a copy of the set with the descriptor at index i removed.
func without(descriptors []Descriptor, i int) []Descriptor {
	out := make([]Descriptor, 0, len(descriptors)-1)
	out = append(out, descriptors[:i]...)
	return append(out, descriptors[i+1:]...)
}
