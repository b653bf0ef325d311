package objprint

import (
	"fmt"
	"reflect"
	"time"

	"github.com/google/uuid"
)

var (
	timeType     = reflect.TypeFor[time.Time]()
	durationType = reflect.TypeFor[time.Duration]()
	uuidType     = reflect.TypeFor[uuid.UUID]()
)

// isTerminal reports whether values of t are rendered by their natural text
// form instead of being recursed into. Every boolean, numeric and string kind
// is terminal, named or not, as are time.Time, time.Duration and uuid.UUID.
func isTerminal(t reflect.Type, extra map[reflect.Type]struct{}) bool {
	switch t {
	case timeType, durationType, uuidType:
		return true
	}
	if _, ok := extra[t]; ok {
		return true
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String:
		return true
	default:
		return false
	}
}

// naturalText converts v to its natural text form.
func naturalText(v reflect.Value) string {
	if !v.IsValid() {
		return nullText
	}
	if !v.CanInterface() {
		return fmt.Sprintf("%v", v)
	}
	item := v.Interface()
	if item == nil {
		return nullText
	}
	if str, ok := item.(fmt.Stringer); ok {
		return str.String()
	}
	return fmt.Sprintf("%v", item)
}

const nullText = "null"
