package selector_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/dom/mocks"
	"github.com/jonesrussell/goselector/internal/logger"
	"github.com/jonesrussell/goselector/internal/selector"
	"github.com/jonesrussell/goselector/testutils"
)

const optimizerFixture = `<html><body>
<ul id="list">
  <li class="primary">A</li>
  <li>B</li>
</ul>
</body></html>`

// fullCandidates produces the complete candidate set for a target by
// running a generation and reading it back from the explanation.
func fullCandidates(t *testing.T, doc *dom.Document, target *html.Node) []selector.Descriptor {
	t.Helper()

	gen, err := selector.New(doc, selector.DefaultOptions(), logger.NewNoOp())
	require.NoError(t, err)
	explanation, err := gen.Explain(target)
	require.NoError(t, err)
	return explanation.Candidates
}

func TestTopDownOptimizer_PrefersCheapDescriptors(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseDocument(t, optimizerFixture)
	target := testutils.QueryOne(t, doc, ".primary")

	opt := selector.NewTopDownOptimizer(doc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, fullCandidates(t, doc, target))

	// The class beats every positional alternative on cost, so it is what
	// survives next to the tag anchor.
	require.Equal(t, "li.primary", selector.NewBuilder().Build(selected))
}

func TestTopDownOptimizer_KeepsTagAnchor(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseDocument(t,
		`<html><body><p id="only">x</p></body></html>`)
	target := testutils.QueryOne(t, doc, "#only")

	opt := selector.NewTopDownOptimizer(doc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, fullCandidates(t, doc, target))

	var hasTag bool
	for _, d := range selected {
		if d.Level == 0 && d.Type == selector.TypeTag {
			hasTag = true
		}
	}
	require.True(t, hasTag, "own tag descriptor must never be optimized away")
}

func TestTopDownOptimizer_ResultMatchesExactly(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseDocument(t, optimizerFixture)
	target := testutils.QueryOne(t, doc, ".primary")

	opt := selector.NewTopDownOptimizer(doc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, fullCandidates(t, doc, target))

	nodes := testutils.QueryAll(t, doc, selector.NewBuilder().Build(selected))
	require.Len(t, nodes, 1)
	require.Same(t, target, nodes[0])
}

func TestTopDownOptimizer_DegenerateReturnsFullSet(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	doc := testutils.ParseDocument(t, optimizerFixture)
	target := testutils.QueryOne(t, doc, ".primary")

	// A query service that never matches anything makes every candidate set
	// insufficient; the optimizer must hand back the full set untouched.
	svc := mocks.NewMockQueryService(ctrl)
	svc.EXPECT().QueryAll(gomock.Any()).Return(nil, nil).AnyTimes()

	candidates := []selector.Descriptor{
		{Cost: 10, Level: 0, Type: selector.TypeTag, Selector: "li"},
		{Cost: 3, Level: 0, Type: selector.TypeClass, Selector: ".primary"},
	}

	opt := selector.NewTopDownOptimizer(svc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, candidates)
	require.Equal(t, candidates, selected)
}

func TestTopDownOptimizer_ReducesWithMockedMatches(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	doc := testutils.ParseDocument(t, optimizerFixture)
	target := testutils.QueryOne(t, doc, ".primary")

	// Every build matches exactly the target, so everything except the tag
	// anchor is removable and removal runs to the end.
	svc := mocks.NewMockQueryService(ctrl)
	svc.EXPECT().
		QueryAll(gomock.Any()).
		Return([]*html.Node{target}, nil).
		AnyTimes()

	candidates := []selector.Descriptor{
		{Cost: 10, Level: 0, Type: selector.TypeTag, Selector: "li"},
		{Cost: 3, Level: 0, Type: selector.TypeClass, Selector: ".primary"},
		{Cost: 6, Level: 0, Type: selector.TypePseudo, Selector: ":first-child"},
		{Cost: 11, Level: 1, Type: selector.TypeID, Selector: "#list"},
	}

	opt := selector.NewTopDownOptimizer(svc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, candidates)

	require.Len(t, selected, 1)
	require.Equal(t, selector.TypeTag, selected[0].Type)
}

func TestBottomUpOptimizer(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseDocument(t, optimizerFixture)
	target := testutils.QueryOne(t, doc, ".primary")

	opt := selector.NewBottomUpOptimizer(doc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, fullCandidates(t, doc, target))
	require.NotEmpty(t, selected)

	nodes := testutils.QueryAll(t, doc, selector.NewBuilder().Build(selected))
	require.Len(t, nodes, 1)
	require.Same(t, target, nodes[0])
}

func TestBottomUpOptimizer_StopsAtFirstExactSet(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseDocument(t,
		`<html><body><div id="solo" class="a b c">x</div></body></html>`)
	target := testutils.QueryOne(t, doc, "#solo")

	candidates := []selector.Descriptor{
		{Cost: 1, Level: 0, Type: selector.TypeID, Selector: "#solo"},
		{Cost: 3, Level: 0, Type: selector.TypeClass, Selector: ".a"},
		{Cost: 3, Level: 0, Type: selector.TypeClass, Selector: ".b"},
		{Cost: 10, Level: 0, Type: selector.TypeTag, Selector: "div"},
	}

	opt := selector.NewBottomUpOptimizer(doc, selector.NewBuilder(), logger.NewNoOp())
	selected := opt.Optimize([]*html.Node{target}, candidates)

	// The cheapest single descriptor is already exact.
	require.Equal(t, []selector.Descriptor{candidates[0]}, selected)
}

func TestDebugOptimizer_NarrowsFailingSet(t *testing.T) {
	t.Parallel()

	doc := testutils.ParseDocument(t, optimizerFixture)
	target := testutils.QueryOne(t, doc, ".primary")

	// .absent is what makes the set miss the target; narrowing must keep a
	// subset that still misses.
	candidates := []selector.Descriptor{
		{Cost: 10, Level: 0, Type: selector.TypeTag, Selector: "li"},
		{Cost: 3, Level: 0, Type: selector.TypeClass, Selector: ".primary"},
		{Cost: 3, Level: 0, Type: selector.TypeClass, Selector: ".absent"},
	}

	opt := selector.NewDebugOptimizer(doc, selector.NewBuilder())
	narrowed := opt.Narrow(target, candidates)
	require.NotEmpty(t, narrowed)

	sel := selector.NewBuilder().Build(narrowed)
	for _, n := range testutils.QueryAll(t, doc, sel) {
		require.NotSame(t, target, n)
	}
}
