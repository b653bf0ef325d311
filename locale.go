package objprint

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Number is the set of types a Locale can format.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Locale formats numbers with the decimal and grouping symbols of a language.
// The zero Locale formats like language.Und.
type Locale struct {
	tag     language.Tag
	printer *message.Printer
}

// NewLocale returns a Locale for tag.
func NewLocale(tag language.Tag) Locale {
	return Locale{tag: tag, printer: message.NewPrinter(tag)}
}

// Tag returns the language of l.
func (l Locale) Tag() language.Tag { return l.tag }

// Format renders v, which must be of a numeric kind, in l's locale. Values of
// other kinds fall back to their natural text form.
func (l Locale) Format(v any) string {
	p := l.printer
	if p == nil {
		p = message.NewPrinter(language.Und)
	}
	rv := reflect.ValueOf(v)
	switch {
	case !rv.IsValid():
		return nullText
	case isSigned(rv.Kind()):
		return p.Sprint(number.Decimal(rv.Int()))
	case isUnsigned(rv.Kind()):
		return p.Sprint(number.Decimal(rv.Uint()))
	case isFloat(rv.Kind()):
		f := rv.Float()
		return p.Sprint(number.Decimal(f, number.MaxFractionDigits(fractionDigits(f, rv.Type().Bits()))))
	default:
		return naturalText(rv)
	}
}

// String returns the BCP 47 form of the locale's language.
func (l Locale) String() string { return fmt.Sprint(l.tag) }

// fractionDigits returns the number of fraction digits in the shortest text
// that reads back as f at the given bit size.
func fractionDigits(f float64, bitSize int) int {
	s := strconv.FormatFloat(f, 'f', -1, bitSize)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func isNumeric(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || isFloat(k)
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func isFloat(k reflect.Kind) bool {
	return k == reflect.Float32 || k == reflect.Float64
}
