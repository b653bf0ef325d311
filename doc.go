// Package objprint renders any Go value as deterministic, indented,
// human-readable text for test failure messages and debugging output.
//
// It is not a serialization format: output cannot be parsed back and may
// change when the rendered types change.
//
// # Output
//
// Structs render their type name followed by one line per exported field in
// declaration order, indented one unit per nesting level:
//
//	Person
//		Name = Alex
//		Age = 19
//		Parent = Person
//			Name = Kim
//			Age = 45
//			Parent = null
//		Tags = []string
//			a
//			b
//
// Booleans, numbers, strings, [time.Time], [time.Duration] and uuid.UUID are
// terminal: they render through [fmt.Stringer] or %v and are never recursed
// into. [WithTerminal] adds more terminal types. Slices and arrays render a
// header followed by their elements; maps render entries ordered by key text.
//
// # Rules
//
// A [Rules] store holds overrides. For a named field the first matching rule
// wins, in this order:
//
//  1. the field is excluded
//  2. the field's declared type is excluded
//  3. a renderer registered for the field
//  4. a truncation length registered for the field (string fields only)
//  5. a renderer registered for the declared type
//  6. a [Locale] registered for the declared type (numeric types only)
//
// Sequence elements and map values carry no field declaration, so only the
// type rules (2, 5, 6) apply to them, keyed by their runtime type.
//
// # Builder
//
// [For] returns a fluent [Config] over a fresh store. Field selectors are
// accessors returning the field's address:
//
//	cfg := objprint.For[Person]()
//	objprint.ExcludeType[uuid.UUID](cfg)
//	objprint.Printing[int](cfg).Using(func(n int) string { return strconv.Itoa(n) + "!" })
//	objprint.Localized(objprint.Printing[float64](cfg), language.German)
//	objprint.Cut(objprint.Property(cfg, func(p *Person) *string { return &p.Name }), 10)
//	out, err := cfg.PrintToString(person)
//
// # Settings
//
// Layout options can be loaded from a file with [ParseSettings] (YAML) or
// [ParseTOMLSettings]:
//
//	opts, err := objprint.ParseSettings([]byte("indent: \"  \"\nmax_depth: 32\n"))
//	out, err := objprint.Format(v, rules, opts...)
//
// [AsJSON] and [AsYAML] are ready-made renderers for nested values.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfiguration] — a registration that cannot apply, returned
//     when the registration is made and never while formatting
//   - [ErrRecursionLimitExceeded] — nesting deeper than [Options].MaxDepth, or
//     a cycle when [WithCycleDetection] is enabled
//   - [ErrInvalidSettings] — a malformed YAML or TOML settings document
package objprint
