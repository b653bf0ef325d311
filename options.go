package objprint

import (
	"fmt"
	"reflect"

	"github.com/rs/zerolog"
)

const (
	// DefaultIndent is the indent unit prefixed once per nesting level.
	DefaultIndent = "\t"
	// DefaultNewline terminates every emitted line.
	DefaultNewline = "\n"
	// DefaultMaxDepth bounds recursion. A Go stack overflow cannot be
	// recovered, so formatting stops with ErrRecursionLimitExceeded instead.
	DefaultMaxDepth = 256
)

// Options controls the layout of formatted output.
type Options struct {
	// Indent is the indent unit.
	Indent string
	// Newline is the line terminator.
	Newline string
	// MaxDepth is the deepest nesting level rendered before formatting fails.
	MaxDepth int
	// DetectCycles tracks the pointers, maps and slices on the recursion
	// stack and fails as soon as one is re-entered, instead of running into
	// MaxDepth.
	DetectCycles bool
	// Terminal lists extra types rendered by their natural text form.
	Terminal []reflect.Type
	// Logger receives debug and trace events.
	Logger zerolog.Logger
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Indent:   DefaultIndent,
		Newline:  DefaultNewline,
		MaxDepth: DefaultMaxDepth,
		Logger:   zerolog.Nop(),
	}
}

// NewOptions constructs Options from the given options.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	return o
}

// Option is a functional option that mutates Options during construction.
type Option func(*Options)

// WithIndent sets the indent unit.
func WithIndent(indent string) Option {
	return func(o *Options) {
		o.Indent = indent
	}
}

// WithNewline sets the line terminator.
func WithNewline(nl string) Option {
	return func(o *Options) {
		o.Newline = nl
	}
}

// WithMaxDepth sets the recursion bound.
// A non-positive value resets to the default.
func WithMaxDepth(depth int) Option {
	return func(o *Options) {
		if depth <= 0 {
			o.MaxDepth = DefaultMaxDepth
			return
		}
		o.MaxDepth = depth
	}
}

// WithCycleDetection enables or disables cycle detection.
func WithCycleDetection(enabled bool) Option {
	return func(o *Options) {
		o.DetectCycles = enabled
	}
}

// WithTerminal adds types that are rendered by their natural text form.
func WithTerminal(types ...reflect.Type) Option {
	return func(o *Options) {
		for _, t := range types {
			if t != nil {
				o.Terminal = append(o.Terminal, t)
			}
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// Settings is the file form of the layout options, as read by ParseSettings
// and ParseTOMLSettings. Absent keys keep their defaults.
//
//	indent: "  "
//	newline: "\n"
//	max_depth: 32
//	detect_cycles: true
type Settings struct {
	Indent       *string `yaml:"indent" toml:"indent"`
	Newline      *string `yaml:"newline" toml:"newline"`
	MaxDepth     *int    `yaml:"max_depth" toml:"max_depth"`
	DetectCycles *bool   `yaml:"detect_cycles" toml:"detect_cycles"`
}

// Options converts s into functional options.
func (s Settings) Options() []Option {
	var opts []Option
	if s.Indent != nil {
		opts = append(opts, WithIndent(*s.Indent))
	}
	if s.Newline != nil {
		opts = append(opts, WithNewline(*s.Newline))
	}
	if s.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*s.MaxDepth))
	}
	if s.DetectCycles != nil {
		opts = append(opts, WithCycleDetection(*s.DetectCycles))
	}
	return opts
}

func (s Settings) validated() ([]Option, error) {
	if s.MaxDepth != nil && *s.MaxDepth < 0 {
		return nil, fmt.Errorf("%w: max_depth must not be negative, got %d", ErrInvalidSettings, *s.MaxDepth)
	}
	return s.Options(), nil
}
