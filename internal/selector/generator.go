package selector

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

// Generator is the public entry point: it owns one instance of every
// candidate generator and optimizer, wired to a single document query
// service. A Generator is cheap and stateless across calls; each Selector
// invocation owns its own descriptor slices.
type Generator struct {
	opts    Options
	logger  logger.Interface
	doc     dom.QueryService
	builder *Builder

	local             *LocalGenerator
	localExclusion    *LocalExclusionGenerator
	children          *ChildrenGenerator
	childrenExclusion *ChildrenExclusionGenerator
	sibling           *SiblingGenerator
	parent            *ParentGenerator

	topDown  *TopDownOptimizer
	bottomUp *BottomUpOptimizer
}

// Explanation is the full result of one generation run, for diagnostics and
// the inspect surfaces.
type Explanation struct {
	// Candidates is every descriptor the generators produced.
	Candidates []Descriptor
	// Selected is the subset the optimizer kept.
	Selected []Descriptor
	// Selector is the built result.
	Selector string
	// Degenerate is true when the full candidate set did not uniquely match
	// the targets and the selector is best-effort.
	Degenerate bool
}

// New creates a Generator against the given document query service.
func New(doc dom.QueryService, opts Options, log logger.Interface) (*Generator, error) {
	if log == nil {
		log = logger.NewNoOp()
	}
	f, err := newFilters(opts)
	if err != nil {
		return nil, err
	}

	builder := NewBuilder()
	local := NewLocalGenerator(opts.Costs, f, log)
	localExclusion := NewLocalExclusionGenerator(opts.Costs, f, local, builder, doc, log)
	sibling := NewSiblingGenerator(opts.Costs, local, log)

	g := &Generator{
		opts:              opts,
		logger:            log.WithComponent("selector"),
		doc:               doc,
		builder:           builder,
		local:             local,
		localExclusion:    localExclusion,
		children:          NewChildrenGenerator(opts.Costs, local, log),
		childrenExclusion: NewChildrenExclusionGenerator(opts.Costs, f, local, builder, doc, log),
		sibling:           sibling,
		parent:            NewParentGenerator(opts.Costs, local, localExclusion, sibling, opts.MaxParentLevels, log),
		topDown:           NewTopDownOptimizer(doc, builder, log),
		bottomUp:          NewBottomUpOptimizer(doc, builder, log),
	}
	return g, nil
}

// Selector returns a minimal CSS selector matching exactly the given target
// nodes against the document snapshot.
func (g *Generator) Selector(targets ...*html.Node) (string, error) {
	explanation, err := g.Explain(targets...)
	if err != nil {
		return "", err
	}
	return explanation.Selector, nil
}

// Explain runs the full generation pipeline and returns the candidate set,
// the optimized subset, and the built selector.
func (g *Generator) Explain(targets ...*html.Node) (*Explanation, error) {
	if err := g.validate(targets); err != nil {
		return nil, err
	}

	candidates, err := g.generate(targets)
	if err != nil {
		return nil, err
	}

	var selected []Descriptor
	switch g.opts.Optimizer {
	case OptimizerBottomUp:
		selected = g.bottomUp.Optimize(targets, candidates)
	default:
		selected = g.topDown.Optimize(targets, candidates)
	}

	result := &Explanation{
		Candidates: candidates,
		Selected:   selected,
		Selector:   g.builder.Build(selected),
		Degenerate: !matchesExactly(g.doc, g.builder, targets, selected),
	}
	g.logger.Debug("selector generated",
		"selector", result.Selector,
		"candidates", len(candidates),
		"selected", len(selected),
		"degenerate", result.Degenerate,
	)
	return result, nil
}

// generate runs all six generators and concatenates their output.
func (g *Generator) generate(targets []*html.Node) ([]Descriptor, error) {
	type namedGenerator struct {
		name string
		run  func(...*html.Node) ([]Descriptor, error)
	}
	generators := []namedGenerator{
		{"local", g.local.Generate},
		{"local-exclusion", g.localExclusion.Generate},
		{"children", g.children.Generate},
		{"children-exclusion", g.childrenExclusion.Generate},
		{"sibling", g.sibling.Generate},
		{"parent", g.parent.Generate},
	}

	var candidates []Descriptor
	for _, gen := range generators {
		descriptors, err := gen.run(targets...)
		if err != nil {
			return nil, fmt.Errorf("%s generation failed: %w", gen.name, err)
		}
		candidates = append(candidates, descriptors...)
	}
	return candidates, nil
}

// validate enforces the entry-point contract: at least one target, every
// target an element, all targets in the same tree.
func (g *Generator) validate(targets []*html.Node) error {
	if len(targets) == 0 {
		return ErrNoTargets
	}
	for i, target := range targets {
		if err := dom.AssertElement(target); err != nil {
			return fmt.Errorf("target %d: %w", i, ErrInvalidNodeKind)
		}
	}
	root := dom.Root(targets[0])
	for i, target := range targets[1:] {
		if dom.Root(target) != root {
			return fmt.Errorf("target %d: %w", i+1, ErrIncompatibleTargets)
		}
	}
	return nil
}
