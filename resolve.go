package objprint

import (
	"reflect"
)

// Action is what the formatter does with one field or element.
type Action int

const (
	// Recurse applies default terminal, composite or enumerable rendering.
	Recurse Action = iota
	// Skip omits the line entirely.
	Skip
	// Render emits Decision.Text in place of the value.
	Render
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Recurse:
		return "recurse"
	case Skip:
		return "skip"
	case Render:
		return "render"
	default:
		return "unknown"
	}
}

// Decision is the outcome of resolving the rules for one field or element.
type Decision struct {
	Action Action
	Text   string
}

// step is one link of the resolution chain. It returns handled=false to fall
// through to the next step.
type step func(r *Rules, f Field, v reflect.Value) (d Decision, handled bool)

// fieldChain is the fixed precedence for named fields; first match wins.
var fieldChain = []step{
	skipExcludedField,
	skipExcludedType,
	renderField,
	truncateFieldText,
	renderType,
	localizeType,
}

// elementChain applies to sequence elements and map values, which carry no
// field declaration.
var elementChain = []step{
	skipExcludedType,
	renderType,
	localizeType,
}

// Resolve decides how field f holding value v is rendered.
func (r *Rules) Resolve(f Field, v reflect.Value) Decision {
	return r.run(fieldChain, f, v)
}

// ResolveElement decides how a sequence element or map value v is rendered,
// keyed by its runtime type.
func (r *Rules) ResolveElement(v reflect.Value) Decision {
	if v.Kind() == reflect.Interface && !v.IsNil() {
		v = v.Elem()
	}
	if !v.IsValid() || (v.Kind() == reflect.Interface && v.IsNil()) {
		return Decision{Action: Recurse}
	}
	return r.run(elementChain, Field{Type: v.Type()}, v)
}

func (r *Rules) run(chain []step, f Field, v reflect.Value) Decision {
	for _, s := range chain {
		if d, ok := s(r, f, v); ok {
			r.log().Trace().
				Stringer("field", f).
				Stringer("type", f.Type).
				Stringer("action", d.Action).
				Msg("rule resolved")
			return d
		}
	}
	return Decision{Action: Recurse}
}

func skipExcludedField(r *Rules, f Field, _ reflect.Value) (Decision, bool) {
	if _, ok := r.excludedFields[f.Key()]; ok {
		return Decision{Action: Skip}, true
	}
	return Decision{}, false
}

func skipExcludedType(r *Rules, f Field, _ reflect.Value) (Decision, bool) {
	if _, ok := r.excludedTypes[f.Type]; ok {
		return Decision{Action: Skip}, true
	}
	return Decision{}, false
}

func renderField(r *Rules, f Field, v reflect.Value) (Decision, bool) {
	if fn, ok := r.fieldRenderers[f.Key()]; ok {
		return Decision{Action: Render, Text: fn(valueOf(v))}, true
	}
	return Decision{}, false
}

func truncateFieldText(r *Rules, f Field, v reflect.Value) (Decision, bool) {
	if tr, ok := r.fieldTruncation[f.Key()]; ok {
		return Decision{Action: Render, Text: truncate(naturalText(v), tr.length, tr.unit)}, true
	}
	return Decision{}, false
}

func renderType(r *Rules, f Field, v reflect.Value) (Decision, bool) {
	if fn, ok := r.typeRenderers[f.Type]; ok {
		return Decision{Action: Render, Text: fn(valueOf(v))}, true
	}
	return Decision{}, false
}

func localizeType(r *Rules, f Field, v reflect.Value) (Decision, bool) {
	if loc, ok := r.typeLocale[f.Type]; ok {
		return Decision{Action: Render, Text: loc.Format(valueOf(v))}, true
	}
	return Decision{}, false
}

// valueOf unwraps v for handing to a Renderer.
func valueOf(v reflect.Value) any {
	if !v.IsValid() || !v.CanInterface() {
		return nil
	}
	return v.Interface()
}
