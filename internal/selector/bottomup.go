package selector

import (
	"math"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// initialThreshold is the starting improvement threshold of the bottom-up
// search; thresholds halve down to 1.
const initialThreshold = 16

// BottomUpOptimizer grows a descriptor set greedily from empty, committing
// the trial addition with the best match-count improvement under a
// coarse-to-fine threshold descent. Big improvements are locked in first
// under a loose threshold, finer ones under tightening thresholds, which
// avoids the local-minimum traps of a single-threshold greedy walk.
//
// It is an alternative strategy to the top-down reduction and is not wired
// into the default pipeline.
type BottomUpOptimizer struct {
	doc     dom.QueryService
	builder *Builder
	logger  logger.Interface
}

// NewBottomUpOptimizer creates a new BottomUpOptimizer.
func NewBottomUpOptimizer(doc dom.QueryService, builder *Builder, log logger.Interface) *BottomUpOptimizer {
	return &BottomUpOptimizer{doc: doc, builder: builder, logger: log}
}

// Optimize constructs a descriptor subset matching exactly the target
// nodes, stopping the instant a trial is exact. When no exact subset is
// found the best-seen set is returned.
func (o *BottomUpOptimizer) Optimize(targets []*html.Node, descriptors []Descriptor) []Descriptor {
	sorted := sortByCostAsc(descriptors)
	var current []Descriptor
	bestDeficit := math.MaxInt

	for threshold := initialThreshold; threshold >= 1; threshold /= 2 {
		for {
			var bestTrial []Descriptor
			bestTrialDeficit := bestDeficit

			for i, d := range sorted {
				if included(current, d) {
					continue
				}
				if d.Level > 0 && len(current) == 0 {
					// Never build on an unanchored ancestor selector.
					continue
				}
				trial := append(append([]Descriptor(nil), current...), sorted[i])
				deficit, exact := o.deficit(targets, trial)
				if exact {
					return trial
				}
				if deficit < bestTrialDeficit {
					bestTrialDeficit = deficit
					bestTrial = trial
				}
			}

			if bestTrial == nil || bestDeficit-bestTrialDeficit < threshold {
				break
			}
			current = bestTrial
			bestDeficit = bestTrialDeficit
		}
	}
	return current
}

// deficit measures how far the candidate's match set is from the target
// count. Invalid candidates (empty, unbuildable, or missing a target) are
// infinitely bad.
func (o *BottomUpOptimizer) deficit(targets []*html.Node, candidate []Descriptor) (int, bool) {
	if len(candidate) == 0 {
		return math.MaxInt, false
	}
	sel := o.builder.Build(candidate)
	if sel == "" {
		return math.MaxInt, false
	}
	matches, err := o.doc.QueryAll(sel)
	if err != nil {
		return math.MaxInt, false
	}
	matched := make(map[*html.Node]bool, len(matches))
	for _, m := range matches {
		matched[m] = true
	}
	for _, t := range targets {
		if !matched[t] {
			return math.MaxInt, false
		}
	}
	deficit := len(matches) - len(targets)
	if deficit < 0 {
		deficit = -deficit
	}
	return deficit, deficit == 0
}

func included(set []Descriptor, d Descriptor) bool {
	for _, s := range set {
		if s.key() == d.key() {
			return true
		}
	}
	return false
}
