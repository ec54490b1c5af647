// Package scaler scales, rounds, and renders numbers as human-readable
// strings: SI or IEC unit prefixes (with scientific fallback), rounding to a
// magnitude or to significant digits, configurable separators, sign policy,
// and trailing-zero suppression.
//
// A Formatter is built once through its setters and then reused; Format is a
// pure function of the configuration and the input, so a Formatter may be
// shared between goroutines as long as nobody replaces it concurrently.
package scaler

import (
	"math"

	"scaler/internal/render"
	"scaler/internal/round"
	"scaler/internal/scale"
)

// Formatter is a standing formatting configuration. Construct with New;
// setters return an updated copy and leave the receiver untouched.
type Formatter struct {
	scaling       Scaling
	rounding      Rounding
	groupSep      string
	decimalSep    string
	sign          Sign
	trailingZeros bool
	warn          WarnFunc
}

// New returns the default Formatter: decimal scaling with a spaced prefix,
// rounding to 4 significant digits, "." as group separator, "," as decimal
// separator, a sign only when negative, and trailing zeros kept.
func New() Formatter {
	return Formatter{
		scaling:       ScalingDecimal(true),
		rounding:      RoundingSignificantDigits(4),
		groupSep:      ".",
		decimalSep:    ",",
		sign:          SignOnlyMinus,
		trailingZeros: true,
	}
}

// SetScaling sets the scaling mode.
func (f Formatter) SetScaling(s Scaling) Formatter {
	f.scaling = s
	return f
}

// SetRounding sets the rounding mode and precision.
func (f Formatter) SetRounding(r Rounding) Formatter {
	f.rounding = r
	return f
}

// SetSeparators sets the group separator (between every 3 integer digits)
// and the decimal separator (between integer and fractional digits). Either
// may be empty. Semantically questionable combinations are accepted and
// still format deterministically; an installed WarnFunc is notified.
func (f Formatter) SetSeparators(group, decimal string) Formatter {
	f.groupSep = group
	f.decimalSep = decimal
	checkSeparators(f.warn, group, decimal)
	return f
}

// SetSign sets the sign mode.
func (f Formatter) SetSign(s Sign) Formatter {
	f.sign = s
	return f
}

// SetTrailingZeros controls whether trailing fractional zeros are kept
// (default) or stripped, together with a then-dangling decimal separator.
func (f Formatter) SetTrailingZeros(keep bool) Formatter {
	f.trailingZeros = keep
	return f
}

// SetWarnFunc installs the advisory sink consulted by SetSeparators. The
// sink never alters formatting.
func (f Formatter) SetWarnFunc(fn WarnFunc) Formatter {
	f.warn = fn
	return f
}

// Format renders x under the standing configuration. Every input — finite,
// infinite, zero, subnormal, or NaN — produces a deterministic string;
// nothing fails.
func (f Formatter) Format(x float64) string {
	plus := f.sign == SignAlways
	switch {
	case math.IsInf(x, 1):
		return render.Infinity(false, plus)
	case math.IsInf(x, -1):
		return render.Infinity(true, plus)
	case math.IsNaN(x):
		return "NaN"
	}

	// The glyph comes from the original signed value; rounding never
	// changes it. Negative zero is not strictly negative, so it renders
	// like positive zero.
	neg := x < 0

	abs := math.Abs(x)
	if f.rounding.collapsesToZero() {
		abs = 0
	}

	mode := f.scaling.mode()
	spec := f.rounding.spec()

	sel := scale.Select(abs, mode)
	res := round.Apply(sel.Mantissa, spec, sel.Order, sel.Bound)

	// Rounding can push the mantissa onto the bucket's upper bound; promote
	// and re-round. At most two passes: a promoted mantissa is exactly 1
	// and cannot overflow again.
	for i := 0; res.Overflow && i < 2; i++ {
		sel = scale.Promote(sel, mode)
		res = round.Apply(sel.Mantissa, spec, sel.Order, sel.Bound)
	}

	// Magnitude rounding can also erase the mantissa entirely; the prefix
	// of the original bucket must not survive that.
	if res.Zero && abs != 0 {
		sel = scale.Select(0, mode)
		res = round.Apply(0, spec, sel.Order, sel.Bound)
	}

	return render.String(render.Layout{
		Negative:      neg,
		PlusSign:      plus && !neg,
		Int:           res.Int,
		Frac:          res.Frac,
		GroupSep:      f.groupSep,
		DecimalSep:    f.decimalSep,
		TrailingZeros: f.trailingZeros,
		Symbol:        sel.Symbol,
		HasSymbol:     sel.HasSymbol,
		Spaced:        f.scaling.spaced,
		Scientific:    sel.Fallback,
		Base:          sel.Base,
		Exp:           sel.Exp,
	})
}
