package selector

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/jonesrussell/goselector/internal/dom"
	"github.com/jonesrussell/goselector/internal/logger"
)

func parseFixture(t *testing.T, content string) *dom.Document {
	t.Helper()

	doc, err := dom.ParseString(content)
	if err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}
	return doc
}

func queryOne(t *testing.T, doc *dom.Document, sel string) *html.Node {
	t.Helper()

	nodes, err := doc.QueryAll(sel)
	if err != nil {
		t.Fatalf("query %q failed: %v", sel, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("query %q matched %d elements, want 1", sel, len(nodes))
	}
	return nodes[0]
}

func defaultFilters(t *testing.T) *filters {
	t.Helper()

	f, err := newFilters(DefaultOptions())
	require.NoError(t, err)
	return f
}

// fragments extracts the selector strings of a descriptor set.
func fragments(descriptors []Descriptor) map[string]int {
	out := make(map[string]int, len(descriptors))
	for _, d := range descriptors {
		out[d.Selector] = d.Cost
	}
	return out
}

func TestLocalGenerator(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t,
		`<html><body><div id="main" class="a b" data-role="panel" style="color:red" xmlns="ns"></div></body></html>`)
	target := queryOne(t, doc, "#main")

	gen := NewLocalGenerator(DefaultCosts(), defaultFilters(t), logger.NewNoOp())
	descriptors, err := gen.Generate(target)
	require.NoError(t, err)

	got := fragments(descriptors)
	require.Equal(t, map[string]int{
		"#main":               1,
		"div":                 10,
		".a":                  3,
		".b":                  3,
		`[data-role="panel"]`: 5,
	}, got)

	for _, d := range descriptors {
		if d.Level != 0 {
			t.Errorf("local descriptor %q has level %d, want 0", d.Selector, d.Level)
		}
	}
}

func TestLocalGenerator_Blacklists(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t,
		`<html><body><p id="lottie-player-3" class="css-1x2 real" data-v-abc="1"></p></body></html>`)
	target := queryOne(t, doc, "p")

	gen := NewLocalGenerator(DefaultCosts(), defaultFilters(t), logger.NewNoOp())
	descriptors, err := gen.Generate(target)
	require.NoError(t, err)

	got := fragments(descriptors)
	require.Contains(t, got, ".real")
	require.NotContains(t, got, "#lottie-player-3")
	require.NotContains(t, got, ".css-1x2")
	require.NotContains(t, got, `[data-v-abc="1"]`)
}

func TestLocalGenerator_MultiTargetIntersection(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body>
<li class="item odd">a</li>
<li class="item even">b</li>
</body></html>`)
	first := queryOne(t, doc, ".odd")
	second := queryOne(t, doc, ".even")

	gen := NewLocalGenerator(DefaultCosts(), defaultFilters(t), logger.NewNoOp())
	descriptors, err := gen.Generate(first, second)
	require.NoError(t, err)

	got := fragments(descriptors)
	require.Contains(t, got, "li")
	require.Contains(t, got, ".item")
	require.NotContains(t, got, ".odd")
	require.NotContains(t, got, ".even")
}

func TestLocalGenerator_RejectsNonElement(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body><p>text</p></body></html>`)
	target := queryOne(t, doc, "p")

	gen := NewLocalGenerator(DefaultCosts(), defaultFilters(t), logger.NewNoOp())
	_, err := gen.Generate(target.FirstChild)
	require.ErrorIs(t, err, ErrInvalidNodeKind)
}

func TestSiblingGenerator(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body><ul>
<li class="first">a</li>
<li class="mid">b</li>
<li class="last">c</li>
</ul></body></html>`)

	costs := DefaultCosts()
	local := NewLocalGenerator(costs, defaultFilters(t), logger.NewNoOp())
	gen := NewSiblingGenerator(costs, local, logger.NewNoOp())

	t.Run("middle node", func(t *testing.T) {
		t.Parallel()

		descriptors, err := gen.Generate(queryOne(t, doc, ".mid"))
		require.NoError(t, err)

		got := fragments(descriptors)
		require.Equal(t, 8, got[":nth-child(2)"])
		require.Equal(t, 8, got[":nth-last-child(2)"])
		require.Equal(t, 9, got[":is(.first ~ *)"])
		require.Equal(t, 16, got[":is(li ~ *)"])
		require.Equal(t, 9, got[":has(~ .last)"])
		require.Equal(t, 16, got[":has(~ li)"])
		require.NotContains(t, got, ":first-child")
		require.NotContains(t, got, ":last-child")
	})

	t.Run("first node", func(t *testing.T) {
		t.Parallel()

		descriptors, err := gen.Generate(queryOne(t, doc, ".first"))
		require.NoError(t, err)

		got := fragments(descriptors)
		require.Equal(t, 6, got[":first-child"])
		require.NotContains(t, got, ":nth-child(1)")
		require.NotContains(t, got, ":only-child")
		require.Contains(t, got, ":has(~ .mid)")
		require.Contains(t, got, ":has(~ .last)")
	})

	t.Run("last node", func(t *testing.T) {
		t.Parallel()

		descriptors, err := gen.Generate(queryOne(t, doc, ".last"))
		require.NoError(t, err)

		got := fragments(descriptors)
		require.Equal(t, 6, got[":last-child"])
		require.Equal(t, 10, got[":nth-child(3)"])
		require.NotContains(t, got, ":nth-last-child(1)")
		require.Contains(t, got, ":is(.mid ~ *)")
		require.Contains(t, got, ":is(.first ~ *)")
	})
}

func TestSiblingGenerator_OnlyChild(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body><div><span class="solo">x</span></div></body></html>`)

	costs := DefaultCosts()
	local := NewLocalGenerator(costs, defaultFilters(t), logger.NewNoOp())
	gen := NewSiblingGenerator(costs, local, logger.NewNoOp())

	descriptors, err := gen.Generate(queryOne(t, doc, ".solo"))
	require.NoError(t, err)

	got := fragments(descriptors)
	require.Contains(t, got, ":first-child")
	require.Contains(t, got, ":last-child")
	require.Contains(t, got, ":only-child")
}

func TestChildrenGenerator(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t,
		`<html><body><div id="t"><span class="s">text</span><p></p></div></body></html>`)
	target := queryOne(t, doc, "#t")

	costs := DefaultCosts()
	local := NewLocalGenerator(costs, defaultFilters(t), logger.NewNoOp())
	gen := NewChildrenGenerator(costs, local, logger.NewNoOp())

	descriptors, err := gen.Generate(target)
	require.NoError(t, err)

	got := fragments(descriptors)

	// Cardinality of the direct child list.
	require.Equal(t, 16, got[":has(:nth-child(2):last-child)"])
	// Direct child identities.
	require.Equal(t, 19, got[":has(>.s)"])
	require.Equal(t, 26, got[":has(>span)"])
	require.Equal(t, 26, got[":has(>p)"])
	// The empty paragraph one level down, path-anchored and existential.
	require.Equal(t, 18, got[":has(>*:empty)"])
	require.Equal(t, 16, got[":has(:empty)"])
}

func TestChildrenGenerator_LeafShapes(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t,
		`<html><body><p id="text">words</p><p id="void"></p></body></html>`)

	costs := DefaultCosts()
	local := NewLocalGenerator(costs, defaultFilters(t), logger.NewNoOp())
	gen := NewChildrenGenerator(costs, local, logger.NewNoOp())

	textOnly, err := gen.Generate(queryOne(t, doc, "#text"))
	require.NoError(t, err)
	require.Equal(t, map[string]int{":not(:has(>*))": 24}, fragments(textOnly))

	void, err := gen.Generate(queryOne(t, doc, "#void"))
	require.NoError(t, err)
	require.Equal(t, map[string]int{":empty": 4}, fragments(void))
}

func TestLocalExclusionGenerator(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body>
<div class="btn">ok</div>
<div id="other" class="btn danger" data-kind="x">no</div>
</body></html>`)
	target := queryOne(t, doc, "div.btn:not(.danger)")

	costs := DefaultCosts()
	f := defaultFilters(t)
	builder := NewBuilder()
	local := NewLocalGenerator(costs, f, logger.NewNoOp())
	gen := NewLocalExclusionGenerator(costs, f, local, builder, doc, logger.NewNoOp())

	descriptors, err := gen.Generate(target)
	require.NoError(t, err)

	got := fragments(descriptors)
	require.Equal(t, 9, got[":not(#other)"])
	require.Equal(t, 11, got[":not(.danger)"])
	require.Equal(t, 13, got[`:not([data-kind="x"])`])
	// Marks the target itself carries are never negated.
	require.NotContains(t, got, ":not(.btn)")
}

func TestLocalExclusionGenerator_UniqueBase(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body><div id="solo"></div></body></html>`)
	target := queryOne(t, doc, "#solo")

	costs := DefaultCosts()
	f := defaultFilters(t)
	local := NewLocalGenerator(costs, f, logger.NewNoOp())
	gen := NewLocalExclusionGenerator(costs, f, local, NewBuilder(), doc, logger.NewNoOp())

	descriptors, err := gen.Generate(target)
	require.NoError(t, err)
	require.Empty(t, descriptors)
}

func TestChildrenExclusionGenerator(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t, `<html><body>
<div class="card"><span class="x">a</span></div>
<div class="card"><span class="y">b</span></div>
</body></html>`)
	target := queryOne(t, doc, "div.card:has(.x)")

	costs := DefaultCosts()
	f := defaultFilters(t)
	local := NewLocalGenerator(costs, f, logger.NewNoOp())
	gen := NewChildrenExclusionGenerator(costs, f, local, NewBuilder(), doc, logger.NewNoOp())

	descriptors, err := gen.Generate(target)
	require.NoError(t, err)

	got := fragments(descriptors)
	require.Equal(t, 27, got[":not(:has(.y))"])
	// The target's own subtree exposes .x, so it is never negated.
	require.NotContains(t, got, ":not(:has(.x))")
}

func TestParentGenerator(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t,
		`<html><body><div id="wrap"><ul class="list"><li id="target">x</li></ul></div></body></html>`)
	target := queryOne(t, doc, "#target")

	costs := DefaultCosts()
	f := defaultFilters(t)
	builder := NewBuilder()
	local := NewLocalGenerator(costs, f, logger.NewNoOp())
	exclusion := NewLocalExclusionGenerator(costs, f, local, builder, doc, logger.NewNoOp())
	sibling := NewSiblingGenerator(costs, local, logger.NewNoOp())

	gen := NewParentGenerator(costs, local, exclusion, sibling, 0, logger.NewNoOp())
	descriptors, err := gen.Generate(target)
	require.NoError(t, err)

	byLevel := make(map[int]map[string]int)
	for _, d := range descriptors {
		if byLevel[d.Level] == nil {
			byLevel[d.Level] = make(map[string]int)
		}
		byLevel[d.Level][d.Selector] = d.Cost
	}

	// Level 1 is the ul: local identity plus distance and parent penalty.
	require.Equal(t, 11, byLevel[1][".list"])
	require.Equal(t, 18, byLevel[1]["ul"])
	require.Contains(t, byLevel[1], ":only-child")

	// Level 2 is the div.
	require.Equal(t, 11, byLevel[2]["#wrap"])
	require.Equal(t, 20, byLevel[2]["div"])

	// The walk reaches body and html.
	require.Contains(t, byLevel[3], "body")
	require.Contains(t, byLevel[4], "html")
}

func TestParentGenerator_MaxLevels(t *testing.T) {
	t.Parallel()

	doc := parseFixture(t,
		`<html><body><div id="wrap"><ul class="list"><li id="target">x</li></ul></div></body></html>`)
	target := queryOne(t, doc, "#target")

	costs := DefaultCosts()
	f := defaultFilters(t)
	builder := NewBuilder()
	local := NewLocalGenerator(costs, f, logger.NewNoOp())
	exclusion := NewLocalExclusionGenerator(costs, f, local, builder, doc, logger.NewNoOp())
	sibling := NewSiblingGenerator(costs, local, logger.NewNoOp())

	gen := NewParentGenerator(costs, local, exclusion, sibling, 1, logger.NewNoOp())
	descriptors, err := gen.Generate(target)
	require.NoError(t, err)
	require.NotEmpty(t, descriptors)

	for _, d := range descriptors {
		if d.Level != 1 {
			t.Errorf("descriptor %q has level %d, want 1", d.Selector, d.Level)
		}
	}
}
