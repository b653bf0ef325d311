package objprint

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TruncateUnit selects what a truncation length counts.
type TruncateUnit int

const (
	// TruncateGraphemes counts user-perceived characters (grapheme clusters).
	TruncateGraphemes TruncateUnit = iota
	// TruncateColumns counts terminal display columns; wide characters take two.
	TruncateColumns
)

// String returns the unit name.
func (u TruncateUnit) String() string {
	switch u {
	case TruncateGraphemes:
		return "graphemes"
	case TruncateColumns:
		return "columns"
	default:
		return "unknown"
	}
}

// truncate keeps the leading n units of s. A length past the end of s keeps
// all of s.
func truncate(s string, n int, unit TruncateUnit) string {
	if n <= 0 {
		return ""
	}
	if unit == TruncateColumns {
		if runewidth.StringWidth(s) <= n {
			return s
		}
		return runewidth.Truncate(s, n, "")
	}

	var sb strings.Builder
	g := uniseg.NewGraphemes(s)
	for count := 0; count < n && g.Next(); count++ {
		sb.WriteString(g.Str())
	}
	return sb.String()
}
