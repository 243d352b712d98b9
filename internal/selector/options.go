package selector

// Costs is the tunable cost table for descriptor generation. Lower cost
// means a more reliable fragment. The defaults preserve the orderings the
// generators rely on: ids are cheapest, classes beat attributes, plain local
// fragments beat positional pseudo-classes, and relational or negated
// fragments are the most expensive.
type Costs struct {
	// Base costs per identity kind.
	ID    int `mapstructure:"id"`
	Tag   int `mapstructure:"tag"`
	Class int `mapstructure:"class"`
	Attr  int `mapstructure:"attr"`

	// Not is added for every :not() wrapper.
	Not int `mapstructure:"not"`
	// Has is added for every :has() wrapper.
	Has int `mapstructure:"has"`
	// Children is added for structural (descendant-shape) fragments.
	Children int `mapstructure:"children"`

	// Distance is added per level or depth hop.
	Distance int `mapstructure:"distance"`
	// Parent is added once per ancestor-level descriptor.
	Parent int `mapstructure:"parent"`

	// Position is the base cost of positional pseudo-classes; PositionStep
	// is added per step away from the nearest sibling-list edge, since short
	// nth-child counts are more stable against sibling mutation.
	Position     int `mapstructure:"position"`
	PositionStep int `mapstructure:"position_step"`
	// Neighbor is the base cost of relative-sibling-identity fragments.
	Neighbor int `mapstructure:"neighbor"`
}

// DefaultCosts returns the default cost table.
func DefaultCosts() Costs {
	return Costs{
		ID:           1,
		Tag:          10,
		Class:        3,
		Attr:         5,
		Not:          8,
		Has:          12,
		Children:     4,
		Distance:     2,
		Parent:       6,
		Position:     6,
		PositionStep: 2,
		Neighbor:     6,
	}
}

// Options configures a Generator.
type Options struct {
	// Costs is the cost table used by every generator.
	Costs Costs

	// IDBlacklist, ClassBlacklist, and AttributeBlacklist are wildcard
	// patterns filtering out unreliable framework-generated identifiers.
	IDBlacklist        []string
	ClassBlacklist     []string
	AttributeBlacklist []string

	// IgnoredAttributes are attribute names the local generator never turns
	// into attr fragments; they are covered by dedicated descriptor kinds or
	// deliberately skipped.
	IgnoredAttributes []string
	// ExclusionIgnoredAttributes is the equivalent list for the two
	// exclusion generators' attribute collectors.
	ExclusionIgnoredAttributes []string

	// MaxParentLevels bounds the ancestor walk of the parent generator.
	// Zero walks to the document root.
	MaxParentLevels int

	// Optimizer selects the reduction strategy: OptimizerTopDown (default)
	// or OptimizerBottomUp.
	Optimizer string
}

// Optimizer strategy names.
const (
	OptimizerTopDown  = "top-down"
	OptimizerBottomUp = "bottom-up"
)

// DefaultOptions returns options with the default cost table, blacklists,
// and ignore lists.
func DefaultOptions() Options {
	return Options{
		Costs:              DefaultCosts(),
		IDBlacklist:        DefaultIDBlacklist(),
		ClassBlacklist:     DefaultClassBlacklist(),
		AttributeBlacklist: DefaultAttributeBlacklist(),
		IgnoredAttributes:  DefaultIgnoredAttributes(),

		ExclusionIgnoredAttributes: DefaultIgnoredAttributes(),
		MaxParentLevels:            0,
		Optimizer:                  OptimizerTopDown,
	}
}

// DefaultIDBlacklist returns patterns for framework-generated ids.
func DefaultIDBlacklist() []string {
	return []string{
		"*lottie*",
		"*ember*",
		"radix-*",
		"react-*",
		"headlessui-*",
	}
}

// DefaultClassBlacklist returns patterns for framework-generated classes.
func DefaultClassBlacklist() []string {
	return []string{
		"*lottie*",
		"css-*",
		"jsx-*",
		"svelte-*",
		"ng-*",
	}
}

// DefaultAttributeBlacklist returns patterns for attributes that carry no
// stable identity.
func DefaultAttributeBlacklist() []string {
	return []string{
		"xmlns",
		"xmlns:*",
		"ng-*",
		"data-v-*",
		"data-reactid",
	}
}

// DefaultIgnoredAttributes returns the attribute names excluded from the
// attr branch. The id and class attributes are represented by their own
// descriptor kinds; style is presentation-only.
func DefaultIgnoredAttributes() []string {
	return []string{"class", "id", "style"}
}
