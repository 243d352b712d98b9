package selector

import "testing"

func TestBuilder_CompoundOrder(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	descriptors := []Descriptor{
		{Type: TypePseudo, Selector: ":first-child"},
		{Type: TypeAttr, Selector: `[data-role="panel"]`},
		{Type: TypeClass, Selector: ".primary"},
		{Type: TypeID, Selector: "#main"},
		{Type: TypeTag, Selector: "div"},
	}

	want := `div#main.primary[data-role="panel"]:first-child`
	if got := b.Build(descriptors); got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestBuilder_Deterministic(t *testing.T) {
	t.Parallel()

	b := NewBuilder()
	descriptors := []Descriptor{
		{Type: TypeClass, Selector: ".a"},
		{Type: TypeTag, Selector: "p"},
		{Type: TypeClass, Selector: ".b"},
	}

	first := b.Build(descriptors)
	for i := 0; i < 10; i++ {
		if got := b.Build(descriptors); got != first {
			t.Fatalf("build %d = %q, want %q", i, got, first)
		}
	}
	// Equal-type fragments keep input order.
	if first != "p.a.b" {
		t.Errorf("Build = %q, want p.a.b", first)
	}
}

func TestBuilder_Combinators(t *testing.T) {
	t.Parallel()

	b := NewBuilder()

	tests := []struct {
		name        string
		descriptors []Descriptor
		want        string
	}{
		{
			"adjacent level uses child combinator",
			[]Descriptor{
				{Level: 0, Type: TypeTag, Selector: "li"},
				{Level: 1, Type: TypeTag, Selector: "ul"},
			},
			"ul > li",
		},
		{
			"gap falls back to descendant combinator",
			[]Descriptor{
				{Level: 0, Type: TypeTag, Selector: "li"},
				{Level: 2, Type: TypeClass, Selector: ".wrap"},
			},
			".wrap li",
		},
		{
			"mixed gaps",
			[]Descriptor{
				{Level: 0, Type: TypeTag, Selector: "li"},
				{Level: 1, Type: TypeTag, Selector: "ul"},
				{Level: 3, Type: TypeID, Selector: "#page"},
			},
			"#page ul > li",
		},
		{
			"empty own group renders universal",
			[]Descriptor{
				{Level: 1, Type: TypeID, Selector: "#page"},
			},
			"#page > *",
		},
		{
			"negative level clamps to own",
			[]Descriptor{
				{Level: -1, Type: TypeClass, Selector: ".x"},
				{Level: 0, Type: TypeTag, Selector: "p"},
			},
			"p.x",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := b.Build(tt.descriptors); got != tt.want {
				t.Errorf("Build = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilder_EmptySet(t *testing.T) {
	t.Parallel()

	if got := NewBuilder().Build(nil); got != "*" {
		t.Errorf("Build(nil) = %q, want *", got)
	}
}
