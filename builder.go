package objprint

import (
	"reflect"

	"golang.org/x/text/language"
)

// Config is the fluent front end over a Rules store for values of type T.
//
// Every registration is applied immediately. The first one that fails is
// recorded, later registrations are ignored, and Err, Build and
// PrintToString report it before anything is formatted.
type Config[T any] struct {
	rules *Rules
	opts  []Option
	err   error
}

// For starts a configuration for values of type T.
func For[T any](opts ...Option) *Config[T] {
	o := NewOptions(opts...)
	return &Config[T]{
		rules: NewRules().SetLogger(o.Logger),
		opts:  opts,
	}
}

// Rules returns the store c registers into.
func (c *Config[T]) Rules() *Rules { return c.rules }

// Err returns the first registration error, if any.
func (c *Config[T]) Err() error { return c.err }

// Build returns a Printer over the configured rules.
func (c *Config[T]) Build() (*Printer, error) {
	if c.err != nil {
		return nil, c.err
	}
	return New(c.rules, c.opts...), nil
}

// PrintToString renders v with the configured rules.
func (c *Config[T]) PrintToString(v T) (string, error) {
	p, err := c.Build()
	if err != nil {
		return "", err
	}
	return p.Format(v)
}

// ExcludeField skips the field of T called name.
func (c *Config[T]) ExcludeField(name string) *Config[T] {
	return c.apply(func() error {
		return c.rules.ExcludeField(reflect.TypeFor[T](), name)
	})
}

func (c *Config[T]) apply(register func() error) *Config[T] {
	if c.err != nil {
		return c
	}
	c.err = register()
	return c
}

// ExcludeType skips every field and element of type P.
//
//	objprint.ExcludeType[int](cfg)
func ExcludeType[P, T any](c *Config[T]) *Config[T] {
	return c.apply(func() error {
		return c.rules.ExcludeType(reflect.TypeFor[P]())
	})
}

// Excluding skips the field of T addressed by sel.
//
//	objprint.Excluding(cfg, func(p *Person) *string { return &p.Name })
func Excluding[T, P any](c *Config[T], sel func(*T) *P) *Config[T] {
	return c.apply(func() error {
		f, err := selectField(sel)
		if err != nil {
			return err
		}
		c.rules.excludeField(f)
		return nil
	})
}

// TypeConfig attaches rules to every value of type P.
type TypeConfig[T, P any] struct {
	parent *Config[T]
}

// Printing selects the type P.
//
//	objprint.Printing[int](cfg).Using(func(n int) string { return strconv.Itoa(n) + "!" })
func Printing[P, T any](c *Config[T]) *TypeConfig[T, P] {
	return &TypeConfig[T, P]{parent: c}
}

// Using renders every value of type P with fn.
func (tc *TypeConfig[T, P]) Using(fn func(P) string) *Config[T] {
	c := tc.parent
	return c.apply(func() error {
		return c.rules.SetTypeRenderer(reflect.TypeFor[P](), adapt(fn))
	})
}

// Localized renders every value of numeric type N in the locale of tag.
//
//	objprint.Localized(objprint.Printing[float64](cfg), language.German)
func Localized[T any, N Number](tc *TypeConfig[T, N], tag language.Tag) *Config[T] {
	c := tc.parent
	return c.apply(func() error {
		return c.rules.SetTypeLocale(reflect.TypeFor[N](), NewLocale(tag))
	})
}

// PropertyConfig attaches rules to one field of T of type P.
type PropertyConfig[T, P any] struct {
	parent *Config[T]
	field  Field
}

// Property selects the field of T addressed by sel.
//
//	objprint.Property(cfg, func(p *Person) *string { return &p.Name })
func Property[T, P any](c *Config[T], sel func(*T) *P) *PropertyConfig[T, P] {
	pc := &PropertyConfig[T, P]{parent: c}
	c.apply(func() error {
		f, err := selectField(sel)
		pc.field = f
		return err
	})
	return pc
}

// Using renders the selected field with fn.
func (pc *PropertyConfig[T, P]) Using(fn func(P) string) *Config[T] {
	c := pc.parent
	return c.apply(func() error {
		return c.rules.setFieldRenderer(pc.field, adapt(fn))
	})
}

// Cut keeps only the first n characters of the selected string field.
func Cut[T any](pc *PropertyConfig[T, string], n int) *Config[T] {
	c := pc.parent
	return c.apply(func() error {
		return c.rules.truncateField(pc.field, truncation{length: n, unit: TruncateGraphemes})
	})
}

// CutColumns keeps only the first n display columns of the selected string
// field.
func CutColumns[T any](pc *PropertyConfig[T, string], n int) *Config[T] {
	c := pc.parent
	return c.apply(func() error {
		return c.rules.truncateField(pc.field, truncation{length: n, unit: TruncateColumns})
	})
}

// PrintToString renders v with the default rules, or with the rules added by
// configure.
//
//	s, err := objprint.PrintToString(person, func(c *objprint.Config[Person]) *objprint.Config[Person] {
//		return objprint.ExcludeType[int](c)
//	})
func PrintToString[T any](v T, configure ...func(*Config[T]) *Config[T]) (string, error) {
	c := For[T]()
	for _, fn := range configure {
		c = fn(c)
	}
	return c.PrintToString(v)
}

// adapt converts a typed render function into a Renderer. A nil value of an
// interface or pointer type P is passed as P's zero value.
func adapt[P any](fn func(P) string) Renderer {
	if fn == nil {
		return nil
	}
	return func(v any) string {
		p, _ := v.(P)
		return fn(p)
	}
}
