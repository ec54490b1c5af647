// Package prefix holds the static unit-prefix tables used by the scaling
// pipeline: SI prefixes for decimal buckets and IEC prefixes for binary
// buckets. Tables are immutable process-wide constants with strictly
// increasing exponents and contiguous coverage; exponents outside the
// covered range are a defined "no prefix available" condition, not an error.
package prefix

// Table maps bucket exponents of one scaling base to unit-prefix symbols.
type Table struct {
	Base    int // scaling base the exponents refer to (10 or 2)
	Step    int // distance between adjacent bucket exponents
	min     int // smallest covered exponent
	symbols []string
}

// Decimal covers the SI prefixes from quecto (10^-30) to quetta (10^30).
var Decimal = &Table{
	Base: 10,
	Step: 3,
	min:  -30,
	symbols: []string{
		"q", "r", "y", "z", "a", "f", "p", "n", "µ", "m",
		"",
		"k", "M", "G", "T", "P", "E", "Z", "Y", "R", "Q",
	},
}

// Binary covers the IEC prefixes from 2^0 to yobi (2^80).
var Binary = &Table{
	Base: 2,
	Step: 10,
	min:  0,
	symbols: []string{
		"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi", "Yi",
	},
}

// Min returns the smallest covered bucket exponent.
func (t *Table) Min() int { return t.min }

// Max returns the largest covered bucket exponent.
func (t *Table) Max() int { return t.min + (len(t.symbols)-1)*t.Step }

// Covers reports whether exp is a bucket exponent inside the covered range.
func (t *Table) Covers(exp int) bool {
	return exp >= t.min && exp <= t.Max() && (exp-t.min)%t.Step == 0
}

// Lookup returns the symbol for a bucket exponent. The symbol for the
// neutral bucket (exponent 0) is the empty string; ok distinguishes that
// from an uncovered exponent.
func (t *Table) Lookup(exp int) (symbol string, ok bool) {
	if !t.Covers(exp) {
		return "", false
	}
	return t.symbols[(exp-t.min)/t.Step], true
}
