package objprint

import (
	"fmt"
	"maps"
	"reflect"

	"github.com/rs/zerolog"
)

// Renderer renders one value as text.
type Renderer func(v any) string

type truncation struct {
	length int
	unit   TruncateUnit
}

// Rules holds every exclusion and rendering override consulted while
// formatting. Registrations are last-write-wins. A Rules value must not be
// mutated while a Format call that uses it is running; it performs no locking.
type Rules struct {
	excludedTypes   map[reflect.Type]struct{}
	excludedFields  map[FieldKey]struct{}
	fieldRenderers  map[FieldKey]Renderer
	fieldTruncation map[FieldKey]truncation
	typeRenderers   map[reflect.Type]Renderer
	typeLocale      map[reflect.Type]Locale

	logger *zerolog.Logger
}

// NewRules returns an empty rule store.
func NewRules() *Rules {
	return &Rules{
		excludedTypes:   make(map[reflect.Type]struct{}),
		excludedFields:  make(map[FieldKey]struct{}),
		fieldRenderers:  make(map[FieldKey]Renderer),
		fieldTruncation: make(map[FieldKey]truncation),
		typeRenderers:   make(map[reflect.Type]Renderer),
		typeLocale:      make(map[reflect.Type]Locale),
	}
}

// SetLogger sets the logger registrations and resolutions are reported to.
func (r *Rules) SetLogger(l zerolog.Logger) *Rules {
	r.logger = &l
	return r
}

func (r *Rules) log() *zerolog.Logger {
	if r.logger == nil {
		return &nopLogger
	}
	return r.logger
}

var nopLogger = zerolog.Nop()

// ExcludeType skips every field whose declared type is t, and every sequence
// element or map value whose runtime type is t.
func (r *Rules) ExcludeType(t reflect.Type) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidConfiguration)
	}
	r.excludedTypes[t] = struct{}{}
	r.log().Debug().Str("rule", "exclude_type").Stringer("type", t).Msg("rule registered")
	return nil
}

// SetTypeRenderer renders every value of type t with fn.
func (r *Rules) SetTypeRenderer(t reflect.Type, fn Renderer) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidConfiguration)
	}
	if fn == nil {
		return fmt.Errorf("%w: nil renderer for %s", ErrInvalidConfiguration, t)
	}
	r.typeRenderers[t] = fn
	r.log().Debug().Str("rule", "type_renderer").Stringer("type", t).Msg("rule registered")
	return nil
}

// SetTypeLocale renders every value of numeric type t with loc.
func (r *Rules) SetTypeLocale(t reflect.Type, loc Locale) error {
	if t == nil {
		return fmt.Errorf("%w: nil type", ErrInvalidConfiguration)
	}
	if !isNumeric(t.Kind()) {
		return fmt.Errorf("%w: locale formatting requires a numeric type, got %s", ErrInvalidConfiguration, t)
	}
	r.typeLocale[t] = loc
	r.log().Debug().Str("rule", "type_locale").Stringer("type", t).Stringer("locale", loc).Msg("rule registered")
	return nil
}

// ExcludeField skips the named field of owner.
func (r *Rules) ExcludeField(owner reflect.Type, name string) error {
	f, err := lookupField(owner, name)
	if err != nil {
		return err
	}
	r.excludeField(f)
	return nil
}

func (r *Rules) excludeField(f Field) {
	r.excludedFields[f.Key()] = struct{}{}
	r.log().Debug().Str("rule", "exclude_field").Stringer("field", f).Msg("rule registered")
}

// SetFieldRenderer renders the named field of owner with fn.
func (r *Rules) SetFieldRenderer(owner reflect.Type, name string, fn Renderer) error {
	f, err := lookupField(owner, name)
	if err != nil {
		return err
	}
	return r.setFieldRenderer(f, fn)
}

func (r *Rules) setFieldRenderer(f Field, fn Renderer) error {
	if fn == nil {
		return fmt.Errorf("%w: nil renderer for %s", ErrInvalidConfiguration, f)
	}
	r.fieldRenderers[f.Key()] = fn
	r.log().Debug().Str("rule", "field_renderer").Stringer("field", f).Msg("rule registered")
	return nil
}

// SetFieldTruncation keeps only the first n characters of the named string
// field of owner.
func (r *Rules) SetFieldTruncation(owner reflect.Type, name string, n int) error {
	return r.setTruncation(owner, name, truncation{length: n, unit: TruncateGraphemes})
}

// SetFieldTruncationColumns keeps only the first n display columns of the
// named string field of owner.
func (r *Rules) SetFieldTruncationColumns(owner reflect.Type, name string, n int) error {
	return r.setTruncation(owner, name, truncation{length: n, unit: TruncateColumns})
}

func (r *Rules) setTruncation(owner reflect.Type, name string, tr truncation) error {
	f, err := lookupField(owner, name)
	if err != nil {
		return err
	}
	return r.truncateField(f, tr)
}

func (r *Rules) truncateField(f Field, tr truncation) error {
	if tr.length < 0 {
		return fmt.Errorf("%w: negative truncation length %d for %s", ErrInvalidConfiguration, tr.length, f)
	}
	if f.Type.Kind() != reflect.String {
		return fmt.Errorf("%w: truncation requires a string field, %s is %s", ErrInvalidConfiguration, f, f.Type)
	}
	r.fieldTruncation[f.Key()] = tr
	r.log().Debug().
		Str("rule", "field_truncation").
		Stringer("field", f).
		Int("length", tr.length).
		Stringer("unit", tr.unit).
		Msg("rule registered")
	return nil
}

// Len returns the number of registered rules.
func (r *Rules) Len() int {
	return len(r.excludedTypes) + len(r.excludedFields) + len(r.fieldRenderers) +
		len(r.fieldTruncation) + len(r.typeRenderers) + len(r.typeLocale)
}

// Clone returns an independent copy of r.
func (r *Rules) Clone() *Rules {
	return &Rules{
		excludedTypes:   maps.Clone(r.excludedTypes),
		excludedFields:  maps.Clone(r.excludedFields),
		fieldRenderers:  maps.Clone(r.fieldRenderers),
		fieldTruncation: maps.Clone(r.fieldTruncation),
		typeRenderers:   maps.Clone(r.typeRenderers),
		typeLocale:      maps.Clone(r.typeLocale),
		logger:          r.logger,
	}
}
