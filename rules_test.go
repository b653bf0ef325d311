package objprint_test

import (
	"bytes"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/bjaus/objprint"
)

func TestRulesRegistrationErrors(t *testing.T) {
	t.Parallel()
	person := reflect.TypeFor[Person]()
	render := func(any) string { return "" }
	tests := map[string]func(r *objprint.Rules) error{
		"exclude nil type":       func(r *objprint.Rules) error { return r.ExcludeType(nil) },
		"renderer for nil type":  func(r *objprint.Rules) error { return r.SetTypeRenderer(nil, render) },
		"nil type renderer":      func(r *objprint.Rules) error { return r.SetTypeRenderer(person, nil) },
		"locale for nil type":    func(r *objprint.Rules) error { return r.SetTypeLocale(nil, objprint.Locale{}) },
		"locale for string":      func(r *objprint.Rules) error { return r.SetTypeLocale(reflect.TypeFor[string](), objprint.Locale{}) },
		"exclude unknown field":  func(r *objprint.Rules) error { return r.ExcludeField(person, "Nope") },
		"exclude unexported":     func(r *objprint.Rules) error { return r.ExcludeField(reflect.TypeFor[withHidden](), "hidden") },
		"exclude on non-struct":  func(r *objprint.Rules) error { return r.ExcludeField(reflect.TypeFor[int](), "X") },
		"exclude on nil owner":   func(r *objprint.Rules) error { return r.ExcludeField(nil, "Name") },
		"nil field renderer":     func(r *objprint.Rules) error { return r.SetFieldRenderer(person, "Name", nil) },
		"renderer unknown field": func(r *objprint.Rules) error { return r.SetFieldRenderer(person, "Nope", render) },
		"truncate non-string":    func(r *objprint.Rules) error { return r.SetFieldTruncation(person, "Age", 1) },
		"truncate negative":      func(r *objprint.Rules) error { return r.SetFieldTruncation(person, "Name", -1) },
		"truncate unknown field": func(r *objprint.Rules) error { return r.SetFieldTruncation(person, "Nope", 1) },
		"truncate columns slice": func(r *objprint.Rules) error { return r.SetFieldTruncationColumns(person, "Tags", 1) },
		"truncate pointer owner": func(r *objprint.Rules) error { return r.SetFieldTruncation(reflect.TypeFor[*Person](), "Name", 1) },
	}
	for name, register := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			r := objprint.NewRules()
			require.ErrorIs(t, register(r), objprint.ErrInvalidConfiguration)
			assert.Zero(t, r.Len())
		})
	}
}

func TestRulesResolve(t *testing.T) {
	t.Parallel()
	person := reflect.TypeFor[Person]()
	name := objprint.Field{Owner: person, Name: "Name", Type: reflect.TypeFor[string]()}
	height := objprint.Field{Owner: person, Name: "Height", Type: reflect.TypeFor[float64]()}

	r := objprint.NewRules()
	assert.Equal(t, objprint.Decision{Action: objprint.Recurse}, r.Resolve(name, reflect.ValueOf("Alex")))

	require.NoError(t, r.SetFieldTruncation(person, "Name", 2))
	assert.Equal(t, objprint.Decision{Action: objprint.Render, Text: "Al"}, r.Resolve(name, reflect.ValueOf("Alex")))

	require.NoError(t, r.SetTypeLocale(reflect.TypeFor[float64](), objprint.NewLocale(language.German)))
	assert.Equal(t, objprint.Decision{Action: objprint.Render, Text: "0,5"}, r.Resolve(height, reflect.ValueOf(0.5)))

	require.NoError(t, r.ExcludeField(person, "Name"))
	assert.Equal(t, objprint.Skip, r.Resolve(name, reflect.ValueOf("Alex")).Action)
}

func TestRulesResolveElement(t *testing.T) {
	t.Parallel()
	r := objprint.NewRules()
	require.NoError(t, r.ExcludeType(reflect.TypeFor[int]()))
	require.NoError(t, r.SetTypeRenderer(reflect.TypeFor[string](), func(v any) string { return "s:" + v.(string) }))

	elems := reflect.ValueOf([]any{1, "a", nil, 2.5})
	assert.Equal(t, objprint.Skip, r.ResolveElement(elems.Index(0)).Action)
	assert.Equal(t, objprint.Decision{Action: objprint.Render, Text: "s:a"}, r.ResolveElement(elems.Index(1)))
	assert.Equal(t, objprint.Recurse, r.ResolveElement(elems.Index(2)).Action)
	assert.Equal(t, objprint.Recurse, r.ResolveElement(elems.Index(3)).Action)
}

func TestRulesClone(t *testing.T) {
	t.Parallel()
	person := reflect.TypeFor[Person]()
	base := objprint.NewRules()
	require.NoError(t, base.ExcludeType(reflect.TypeFor[bool]()))

	clone := base.Clone()
	require.NoError(t, clone.ExcludeField(person, "Name"))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, clone.Len())

	out := format(t, Person{Name: "Alex"}, base)
	assert.Contains(t, out, "Name = Alex")
	out = format(t, Person{Name: "Alex"}, clone)
	assert.NotContains(t, out, "Name = ")
}

func TestRulesLogging(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	r := objprint.NewRules().SetLogger(zerolog.New(&buf).Level(zerolog.DebugLevel))
	require.NoError(t, r.SetFieldTruncation(reflect.TypeFor[Person](), "Name", 3))

	assert.Contains(t, buf.String(), `"rule":"field_truncation"`)
	assert.Contains(t, buf.String(), `"field":"Person.Name"`)
	assert.Contains(t, buf.String(), `"unit":"graphemes"`)

	buf.Reset()
	format(t, Person{Name: "Alex"}, r)
	assert.Empty(t, buf.String(), "resolution is traced below debug level")
}

func TestActionString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "recurse", objprint.Recurse.String())
	assert.Equal(t, "skip", objprint.Skip.String())
	assert.Equal(t, "render", objprint.Render.String())
	assert.Equal(t, "unknown", objprint.Action(99).String())
}
