package objprint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/objprint"
)

func TestParseSettings(t *testing.T) {
	t.Parallel()
	opts, err := objprint.ParseSettings([]byte("indent: \"  \"\nnewline: \"\\r\\n\"\nmax_depth: 8\ndetect_cycles: true\n"))
	require.NoError(t, err)

	o := objprint.NewOptions(opts...)
	assert.Equal(t, "  ", o.Indent)
	assert.Equal(t, "\r\n", o.Newline)
	assert.Equal(t, 8, o.MaxDepth)
	assert.True(t, o.DetectCycles)

	out, err := objprint.Format(Box[int]{V: 1}, nil, opts...)
	require.NoError(t, err)
	assert.Equal(t, "Box\r\n  V = 1\r\n", out)
}

func TestParseSettingsPartial(t *testing.T) {
	t.Parallel()
	opts, err := objprint.ParseSettings([]byte("max_depth: 3\n"))
	require.NoError(t, err)

	o := objprint.NewOptions(opts...)
	assert.Equal(t, objprint.DefaultIndent, o.Indent)
	assert.Equal(t, objprint.DefaultNewline, o.Newline)
	assert.Equal(t, 3, o.MaxDepth)
	assert.False(t, o.DetectCycles)
}

func TestParseSettingsEmpty(t *testing.T) {
	t.Parallel()
	for _, doc := range []string{"", "# nothing set\n"} {
		opts, err := objprint.ParseSettings([]byte(doc))
		require.NoError(t, err)
		assert.Empty(t, opts)
	}
}

func TestParseSettingsInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key":        "tab_width: 4\n",
		"negative depth":     "max_depth: -1\n",
		"wrong type":         "max_depth: deep\n",
		"malformed document": "indent: [\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts, err := objprint.ParseSettings([]byte(doc))
			assert.Nil(t, opts)
			assert.ErrorIs(t, err, objprint.ErrInvalidSettings)
		})
	}
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()
	o := objprint.NewOptions()
	assert.Equal(t, "\t", o.Indent)
	assert.Equal(t, "\n", o.Newline)
	assert.Equal(t, objprint.DefaultMaxDepth, o.MaxDepth)
	assert.False(t, o.DetectCycles)

	o = objprint.NewOptions(objprint.WithMaxDepth(4), objprint.WithMaxDepth(0))
	assert.Equal(t, objprint.DefaultMaxDepth, o.MaxDepth, "non-positive depth restores the default")
}

func TestAsYAML(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "{a: 1, b: 2}", objprint.AsYAML(map[string]int{"b": 2, "a": 1}))
	assert.Equal(t, "[1, 2]", objprint.AsYAML([]int{1, 2}))
	assert.Equal(t, "{city: Lyon}", objprint.AsYAML(struct {
		City string `yaml:"city"`
	}{City: "Lyon"}))
}

func TestAsJSON(t *testing.T) {
	t.Parallel()
	assert.Equal(t, `{"a":1}`, objprint.AsJSON(map[string]int{"a": 1}))
	assert.Equal(t, `{"City":"Lyon"}`, objprint.AsJSON(Address{City: "Lyon"}))
	assert.Equal(t, "(1+2i)", objprint.AsJSON(complex(1, 2)), "unencodable values fall back to natural text")
}

func TestTypeRendererWithYAML(t *testing.T) {
	t.Parallel()
	cfg := objprint.For[Holder]()
	objprint.Printing[map[string]int](cfg).Using(func(m map[string]int) string { return objprint.AsYAML(m) })
	objprint.ExcludeType[func()](cfg)

	got, err := cfg.PrintToString(Holder{Attrs: map[string]int{"x": 1}})
	require.NoError(t, err)
	assert.Equal(t, "Holder\n\tAny = null\n\tAttrs = {x: 1}\n", got)
}

func TestParseTOMLSettings(t *testing.T) {
	t.Parallel()
	opts, err := objprint.ParseTOMLSettings([]byte("indent = \"  \"\nmax_depth = 8\ndetect_cycles = true\n"))
	require.NoError(t, err)

	o := objprint.NewOptions(opts...)
	assert.Equal(t, "  ", o.Indent)
	assert.Equal(t, objprint.DefaultNewline, o.Newline)
	assert.Equal(t, 8, o.MaxDepth)
	assert.True(t, o.DetectCycles)

	opts, err = objprint.ParseTOMLSettings(nil)
	require.NoError(t, err)
	assert.Empty(t, opts)
}

func TestParseTOMLSettingsInvalid(t *testing.T) {
	t.Parallel()
	tests := map[string]string{
		"unknown key":        "tab_width = 4\n",
		"negative depth":     "max_depth = -1\n",
		"wrong type":         "max_depth = \"deep\"\n",
		"malformed document": "indent = \n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			opts, err := objprint.ParseTOMLSettings([]byte(doc))
			assert.Nil(t, opts)
			assert.ErrorIs(t, err, objprint.ErrInvalidSettings)
		})
	}
}
