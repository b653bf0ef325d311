package objprint

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unsafe"
)

// Field describes one declared field of a struct type. Rules are keyed by
// the declaration (owner type and field name), never by a runtime value.
type Field struct {
	Owner reflect.Type
	Name  string
	Type  reflect.Type
	Index []int
}

// FieldKey identifies a field declaration for rule lookup.
type FieldKey struct {
	Owner reflect.Type
	Name  string
}

// Key returns the lookup key of f.
func (f Field) Key() FieldKey { return FieldKey{Owner: f.Owner, Name: f.Name} }

// String returns "Owner.Name".
func (f Field) String() string {
	if f.Owner == nil {
		return f.Name
	}
	return typeName(f.Owner) + "." + f.Name
}

// schemaCache memoizes the exported field list of each struct type.
var schemaCache sync.Map // key: reflect.Type, val: []Field

// fieldsOf returns the exported fields of struct type t in declaration order.
// Embedded structs are listed as a single field named after the embedded type.
func fieldsOf(t reflect.Type) []Field {
	if v, ok := schemaCache.Load(t); ok {
		return v.([]Field)
	}
	fields := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		fields = append(fields, Field{
			Owner: t,
			Name:  sf.Name,
			Type:  sf.Type,
			Index: []int{i},
		})
	}
	v, _ := schemaCache.LoadOrStore(t, fields)
	return v.([]Field)
}

// lookupField finds the exported field name of struct type owner.
func lookupField(owner reflect.Type, name string) (Field, error) {
	if owner == nil {
		return Field{}, fmt.Errorf("%w: nil owner type", ErrInvalidConfiguration)
	}
	if owner.Kind() != reflect.Struct {
		return Field{}, fmt.Errorf("%w: %s is not a struct type", ErrInvalidConfiguration, owner)
	}
	for _, f := range fieldsOf(owner) {
		if f.Name == name {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: %s has no exported field %q", ErrInvalidConfiguration, owner, name)
}

// selectField resolves an accessor like func(p *Person) *string { return &p.Name }
// to the field it addresses. The accessor is run against a zero T and the
// returned address is matched by offset and type against T's direct fields.
func selectField[T, P any](sel func(*T) *P) (Field, error) {
	owner := reflect.TypeFor[T]()
	if sel == nil {
		return Field{}, fmt.Errorf("%w: nil field selector for %s", ErrInvalidConfiguration, owner)
	}
	if owner.Kind() != reflect.Struct {
		return Field{}, fmt.Errorf("%w: %s is not a struct type", ErrInvalidConfiguration, owner)
	}

	var zero T
	p, err := runSelector(sel, &zero)
	if err != nil {
		return Field{}, err
	}
	if p == nil {
		return Field{}, fmt.Errorf("%w: field selector for %s returned nil", ErrInvalidConfiguration, owner)
	}

	base := uintptr(unsafe.Pointer(&zero))
	addr := uintptr(unsafe.Pointer(p))
	if addr < base || addr >= base+owner.Size() {
		return Field{}, fmt.Errorf("%w: field selector for %s does not address one of its fields", ErrInvalidConfiguration, owner)
	}

	off := addr - base
	want := reflect.TypeFor[P]()
	for _, f := range fieldsOf(owner) {
		if owner.Field(f.Index[0]).Offset == off && f.Type == want {
			return f, nil
		}
	}
	return Field{}, fmt.Errorf("%w: field selector for %s does not address an exported field of type %s", ErrInvalidConfiguration, owner, want)
}

// runSelector calls sel on zero. Selectors that follow a pointer field of the
// zero value panic; that is reported as an invalid selector.
func runSelector[T, P any](sel func(*T) *P, zero *T) (p *P, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: field selector for %s panicked: %v", ErrInvalidConfiguration, reflect.TypeFor[T](), r)
		}
	}()
	return sel(zero), nil
}

// typeName returns the header used for composite and enumerable values.
// Generic instantiation parameters are stripped: "Box[int]" -> "Box".
func typeName(t reflect.Type) string {
	if n := t.Name(); n != "" {
		return stripTypeParams(n)
	}
	return t.String()
}

func stripTypeParams(s string) string {
	if i := strings.IndexByte(s, '['); i >= 0 {
		return s[:i]
	}
	return s
}
