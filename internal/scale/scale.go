// Package scale picks the unit-prefix bucket for a finite value: the bucket
// exponent, the mantissa scaled into the bucket's canonical range, and the
// prefix symbol, or a scientific fallback when the prefix tables do not
// cover the required exponent.
package scale

import (
	"math"
	"strconv"
	"strings"

	"scaler/internal/prefix"
)

// Mode selects the scaling strategy.
type Mode uint8

const (
	None Mode = iota // no scaling, no fallback
	Scientific
	Decimal // SI prefixes, 10^3 steps
	Binary  // IEC prefixes, 2^10 steps
)

// String returns the string representation of Mode.
func (m Mode) String() string {
	switch m {
	case None:
		return "none"
	case Scientific:
		return "scientific"
	case Decimal:
		return "decimal"
	case Binary:
		return "binary"
	default:
		return "unknown"
	}
}

// Selection is the outcome of bucket selection for one non-negative value.
type Selection struct {
	Mantissa float64 // scaled value, in [1, Bound) for a resolved bucket
	Base     int     // 10 or 2
	Exp      int     // bucket exponent (power of Base)
	Step     int     // bucket step up: 3 decimal, 10 binary, 1 scientific
	Bound    float64 // upper mantissa bound; 0 disables overflow checking
	Symbol   string  // unit prefix, may be empty for the neutral bucket
	HasSymbol bool   // a prefix bucket was resolved
	Fallback bool    // render as mantissa * Base^(Exp)
	Order    int     // decimal-equivalent order of the bucket
}

// Select scales abs (>= 0, finite) under the given mode.
func Select(abs float64, mode Mode) Selection {
	switch mode {
	case Scientific:
		return scientific10(abs)
	case Decimal:
		return decimal(abs)
	case Binary:
		return binary(abs)
	default:
		return Selection{Mantissa: abs, Base: 10}
	}
}

// Promote moves a selection one bucket up after rounding reached its upper
// bound. Selection is re-run on the promoted absolute value, which is
// exactly Base^(Exp+Step), so a fallback bucket can re-enter the covered
// table range (e.g. 9.9996e-31 rounded to four digits lands on 10^-30 and
// gains the "q" prefix again).
func Promote(sel Selection, mode Mode) Selection {
	exp := sel.Exp + sel.Step
	var abs float64
	if sel.Base == 2 {
		abs = math.Ldexp(1, exp)
	} else {
		abs = math.Pow(10, float64(exp))
	}
	if abs == 0 || math.IsInf(abs, 0) {
		// Past the representable range; keep the scientific form directly.
		return Selection{
			Mantissa: 1,
			Base:     sel.Base,
			Exp:      exp,
			Step:     1,
			Bound:    float64(sel.Base),
			Fallback: true,
		}
	}
	return Select(abs, mode)
}

// DecimalOrder returns floor(log10(x)) for x > 0, computed from the decimal
// string representation so that exact powers of ten never land in the wrong
// bucket the way float log10 can put them.
func DecimalOrder(x float64) int {
	ord, _ := split10(x)
	return ord
}

// split10 decomposes x > 0 into its decimal order and a mantissa in [1, 10).
// Both come from strconv's shortest 'e' representation: the exponent is the
// exact decimal order and the mantissa round-trips to a float in [1, 10),
// which keeps bucket bounds honest even for values like 1e24 where a plain
// division by math.Pow(10, 24) drifts below 1.
func split10(x float64) (ord int, mant float64) {
	s := strconv.FormatFloat(x, 'e', -1, 64)
	i := strings.IndexByte(s, 'e')
	ord, err := strconv.Atoi(s[i+1:])
	if err != nil {
		panic("scale: malformed exponent in " + s)
	}
	mant, err = strconv.ParseFloat(s[:i], 64)
	if err != nil {
		panic("scale: malformed mantissa in " + s)
	}
	return ord, mant
}

func scientific10(abs float64) Selection {
	sel := Selection{
		Mantissa: abs,
		Base:     10,
		Step:     1,
		Bound:    10,
		Fallback: true,
	}
	if abs == 0 {
		return sel
	}
	sel.Exp, sel.Mantissa = split10(abs)
	return sel
}

func decimal(abs float64) Selection {
	if abs == 0 {
		symbol, _ := prefix.Decimal.Lookup(0)
		return Selection{
			Base:      10,
			Step:      prefix.Decimal.Step,
			Bound:     1000,
			Symbol:    symbol,
			HasSymbol: true,
		}
	}
	ord, mant := split10(abs)
	exp := prefix.Decimal.Step * floorDiv(ord, prefix.Decimal.Step)
	symbol, ok := prefix.Decimal.Lookup(exp)
	if !ok {
		return scientific10(abs)
	}
	// Shift the [1,10) mantissa into the bucket; the shift is at most two
	// decimal places, so the result stays strictly inside [1, 1000).
	for k := ord - exp; k > 0; k-- {
		mant *= 10
	}
	return Selection{
		Mantissa:  mant,
		Base:      10,
		Exp:       exp,
		Step:      prefix.Decimal.Step,
		Bound:     1000,
		Symbol:    symbol,
		HasSymbol: true,
		Order:     exp,
	}
}

func binary(abs float64) Selection {
	if abs == 0 {
		symbol, _ := prefix.Binary.Lookup(0)
		return Selection{
			Base:      2,
			Step:      prefix.Binary.Step,
			Bound:     1024,
			Symbol:    symbol,
			HasSymbol: true,
		}
	}
	ord2 := math.Ilogb(abs)
	exp := prefix.Binary.Step * floorDiv(ord2, prefix.Binary.Step)
	symbol, ok := prefix.Binary.Lookup(exp)
	if !ok {
		// Base-2 scientific fallback: mantissa in [1, 2).
		return Selection{
			Mantissa: math.Ldexp(abs, -ord2),
			Base:     2,
			Exp:      ord2,
			Step:     1,
			Bound:    2,
			Fallback: true,
		}
	}
	return Selection{
		Mantissa:  math.Ldexp(abs, -exp), // exact: power-of-two scaling
		Base:      2,
		Exp:       exp,
		Step:      prefix.Binary.Step,
		Bound:     1024,
		Symbol:    symbol,
		HasSymbol: true,
		Order:     decimalEquivalent(exp),
	}
}

// decimalEquivalent converts a covered binary bucket exponent to the decimal
// order of its scale factor, floor(e*log10(2)). For every table bucket
// (multiples of 10 up to 80) this is exactly 3e/10.
func decimalEquivalent(exp int) int {
	return 3 * exp / 10
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
