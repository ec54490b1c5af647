// Package render assembles the final formatted string: sign glyph, grouped
// integer digits, decimal separator and fractional digits, and the
// unit-prefix or scientific suffix. It knows nothing about buckets or
// rounding; it only lays out what the earlier stages produced.
package render

import (
	"strconv"
	"strings"
)

// Layout carries everything the renderer needs for one value.
type Layout struct {
	Negative bool
	PlusSign bool // emit "+" when not negative

	Int  string // integer digit run, no leading zeros
	Frac string // fractional digit run, may be empty

	GroupSep      string
	DecimalSep    string
	TrailingZeros bool // keep trailing fractional zeros

	Symbol    string // unit prefix for a resolved bucket
	HasSymbol bool
	Spaced    bool // single space before a non-empty symbol

	Scientific bool // append " * Base^(Exp)" instead of a prefix
	Base       int
	Exp        int
}

// String renders the layout.
func String(l Layout) string {
	var b strings.Builder

	if l.Negative {
		b.WriteByte('-')
	} else if l.PlusSign {
		b.WriteByte('+')
	}

	writeGrouped(&b, l.Int, l.GroupSep)

	frac := l.Frac
	if !l.TrailingZeros {
		frac = strings.TrimRight(frac, "0")
	}
	if frac != "" {
		b.WriteString(l.DecimalSep)
		b.WriteString(frac)
	}

	switch {
	case l.Scientific:
		b.WriteString(" * ")
		b.WriteString(strconv.Itoa(l.Base))
		b.WriteString("^(")
		b.WriteString(strconv.Itoa(l.Exp))
		b.WriteString(")")
	case l.HasSymbol && l.Symbol != "":
		if l.Spaced {
			b.WriteByte(' ')
		}
		b.WriteString(l.Symbol)
	}

	return b.String()
}

// Infinity renders the fixed glyph for infinite inputs, which bypass the
// scaling and rounding stages entirely.
func Infinity(negative, plusSign bool) string {
	switch {
	case negative:
		return "-∞"
	case plusSign:
		return "+∞"
	default:
		return "∞"
	}
}

// writeGrouped writes the integer digit run with the group separator
// inserted between every three digits, counted from the least-significant
// digit. An empty separator disables grouping.
func writeGrouped(b *strings.Builder, digits, sep string) {
	if sep == "" || len(digits) <= 3 {
		b.WriteString(digits)
		return
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(sep)
		b.WriteString(digits[i : i+3])
	}
}
