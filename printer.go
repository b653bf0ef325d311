package objprint

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfiguration   = errors.New("invalid configuration")
	ErrRecursionLimitExceeded = errors.New("recursion limit exceeded")
	ErrInvalidSettings        = errors.New("invalid settings")
)

// Printer formats values according to a rule store and layout options.
// A Printer is safe for concurrent use as long as its Rules are not mutated.
type Printer struct {
	rules    *Rules
	opts     Options
	terminal map[reflect.Type]struct{}
}

// New returns a Printer using rules. A nil rules formats with no overrides.
func New(rules *Rules, opts ...Option) *Printer {
	if rules == nil {
		rules = NewRules()
	}
	o := NewOptions(opts...)
	terminal := make(map[reflect.Type]struct{}, len(o.Terminal))
	for _, t := range o.Terminal {
		terminal[t] = struct{}{}
	}
	return &Printer{rules: rules, opts: o, terminal: terminal}
}

// Format renders v with rules. It is shorthand for New(rules, opts...).Format(v).
func Format(v any, rules *Rules, opts ...Option) (string, error) {
	return New(rules, opts...).Format(v)
}

// Rules returns the rule store p consults.
func (p *Printer) Rules() *Rules { return p.rules }

// Options returns the layout options of p.
func (p *Printer) Options() Options { return p.opts }

// Format renders v. It fails only with ErrRecursionLimitExceeded, in which
// case no partial output is returned.
func (p *Printer) Format(v any) (string, error) {
	s := &state{
		p:   p,
		nl:  p.opts.Newline,
		ind: p.opts.Indent,
	}
	if p.opts.DetectCycles {
		s.visiting = make(map[visitKey]struct{})
	}
	if err := s.write(reflect.ValueOf(v), 0); err != nil {
		p.opts.Logger.Debug().Err(err).Str("type", fmt.Sprintf("%T", v)).Msg("format failed")
		return "", err
	}
	return s.buf.String(), nil
}

// Write renders v and writes the result to w.
func (p *Printer) Write(w io.Writer, v any) error {
	out, err := p.Format(v)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// visitKey identifies a pointer, map or slice on the recursion stack.
type visitKey struct {
	typ reflect.Type
	ptr uintptr
	len int
}

// state is owned by a single Format call.
type state struct {
	p        *Printer
	buf      strings.Builder
	nl       string
	ind      string
	visiting map[visitKey]struct{}
}

func (s *state) line(text string) {
	s.buf.WriteString(text)
	s.buf.WriteString(s.nl)
}

func (s *state) indent(depth int) {
	for range depth {
		s.buf.WriteString(s.ind)
	}
}

func (s *state) write(v reflect.Value, depth int) error {
	// Pointers and interfaces are transparent; the last pointer followed is
	// the identity used for cycle detection.
	var ref reflect.Value
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			s.line(nullText)
			return nil
		}
		if v.Kind() == reflect.Pointer {
			ref = v
		}
		v = v.Elem()
	}
	if !v.IsValid() {
		s.line(nullText)
		return nil
	}

	t := v.Type()
	if isTerminal(t, s.p.terminal) {
		s.line(naturalText(v))
		return nil
	}

	switch v.Kind() {
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		if v.IsNil() {
			s.line(nullText)
			return nil
		}
	}
	if (v.Kind() == reflect.Map || v.Kind() == reflect.Slice) && v.Len() > 0 {
		ref = v
	}

	if depth > s.p.opts.MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d levels", ErrRecursionLimitExceeded, s.p.opts.MaxDepth)
	}

	if s.visiting != nil && ref.IsValid() && t.Size() > 0 {
		key := visitKey{typ: ref.Type(), ptr: ref.Pointer()}
		if ref.Kind() == reflect.Slice {
			key.len = ref.Len()
		}
		if _, ok := s.visiting[key]; ok {
			return fmt.Errorf("%w: cycle through %s at depth %d", ErrRecursionLimitExceeded, typeName(t), depth)
		}
		s.visiting[key] = struct{}{}
		defer delete(s.visiting, key)
	}

	switch v.Kind() {
	case reflect.Struct:
		return s.writeStruct(v, depth)
	case reflect.Slice, reflect.Array:
		return s.writeSequence(v, depth)
	case reflect.Map:
		return s.writeMap(v, depth)
	default:
		// Functions, channels and unsafe pointers have nothing to list.
		s.line(typeName(t))
		return nil
	}
}

func (s *state) writeStruct(v reflect.Value, depth int) error {
	t := v.Type()
	s.line(typeName(t))
	for _, f := range fieldsOf(t) {
		fv := v.Field(f.Index[0])
		d := s.p.rules.Resolve(f, fv)
		if d.Action == Skip {
			continue
		}
		s.indent(depth + 1)
		s.buf.WriteString(f.Name)
		s.buf.WriteString(" = ")
		if d.Action == Render {
			s.line(d.Text)
			continue
		}
		if err := s.write(fv, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) writeSequence(v reflect.Value, depth int) error {
	s.line(typeName(v.Type()))
	for i := range v.Len() {
		if err := s.writeElement("", v.Index(i), depth); err != nil {
			return err
		}
	}
	return nil
}

func (s *state) writeMap(v reflect.Value, depth int) error {
	s.line(typeName(v.Type()))

	type entry struct {
		key   string
		value reflect.Value
	}
	entries := make([]entry, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: naturalText(iter.Key()), value: iter.Value()})
	}
	slices.SortStableFunc(entries, func(a, b entry) int { return cmp.Compare(a.key, b.key) })

	for _, e := range entries {
		if err := s.writeElement(e.key+" = ", e.value, depth); err != nil {
			return err
		}
	}
	return nil
}

// writeElement renders one sequence element or map value one level below
// its container. Only type-level rules apply.
func (s *state) writeElement(prefix string, ev reflect.Value, depth int) error {
	d := s.p.rules.ResolveElement(ev)
	if d.Action == Skip {
		return nil
	}
	s.indent(depth + 1)
	s.buf.WriteString(prefix)
	if d.Action == Render {
		s.line(d.Text)
		return nil
	}
	return s.write(ev, depth+1)
}
