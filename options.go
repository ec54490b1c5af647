package scaler

import (
	"fmt"

	"scaler/internal/round"
	"scaler/internal/scale"
)

type scalingKind uint8

const (
	scalingDecimal scalingKind = iota
	scalingBinary
	scalingNone
	scalingScientific
)

// Scaling selects the unit-prefix strategy applied before rounding.
type Scaling struct {
	kind   scalingKind
	spaced bool
}

// ScalingNone disables scaling; values render at their natural magnitude
// with no fallback to scientific notation.
func ScalingNone() Scaling { return Scaling{kind: scalingNone} }

// ScalingScientific always renders mantissa * 10^(exponent).
func ScalingScientific() Scaling { return Scaling{kind: scalingScientific} }

// ScalingDecimal scales by 10^3 steps through the SI prefixes, falling back
// to scientific notation outside quecto..quetta. spaced inserts a space
// between the number and a non-empty prefix.
func ScalingDecimal(spaced bool) Scaling {
	return Scaling{kind: scalingDecimal, spaced: spaced}
}

// ScalingBinary scales by 2^10 steps through the IEC prefixes, falling back
// to base-2 scientific notation outside the covered range. spaced inserts a
// space between the number and a non-empty prefix.
func ScalingBinary(spaced bool) Scaling {
	return Scaling{kind: scalingBinary, spaced: spaced}
}

// String returns the string representation of Scaling.
func (s Scaling) String() string {
	switch s.kind {
	case scalingNone:
		return "none"
	case scalingScientific:
		return "scientific"
	case scalingDecimal:
		return "decimal"
	case scalingBinary:
		return "binary"
	default:
		return "unknown"
	}
}

func (s Scaling) mode() scale.Mode {
	switch s.kind {
	case scalingNone:
		return scale.None
	case scalingScientific:
		return scale.Scientific
	case scalingBinary:
		return scale.Binary
	default:
		return scale.Decimal
	}
}

type roundingKind uint8

const (
	roundingSignificant roundingKind = iota
	roundingMagnitude
)

// Rounding selects the rounding mode and precision.
type Rounding struct {
	kind      roundingKind
	magnitude int
	digits    uint8
}

// RoundingMagnitude rounds statically to the digit at 10^target. Rounding to
// whole numbers is target 0, to tens is 1, to tenths is -1.
func RoundingMagnitude(target int) Rounding {
	return Rounding{kind: roundingMagnitude, magnitude: target}
}

// RoundingSignificantDigits rounds dynamically to n meaningful digits,
// irrespective of magnitude. n == 0 always formats as "0".
func RoundingSignificantDigits(n uint8) Rounding {
	return Rounding{kind: roundingSignificant, digits: n}
}

// String returns the string representation of Rounding.
func (r Rounding) String() string {
	if r.kind == roundingMagnitude {
		return fmt.Sprintf("magnitude(%d)", r.magnitude)
	}
	return fmt.Sprintf("significant(%d)", r.digits)
}

func (r Rounding) spec() round.Spec {
	if r.kind == roundingMagnitude {
		return round.Magnitude(r.magnitude)
	}
	return round.SignificantDigits(r.digits)
}

// collapsesToZero reports the SignificantDigits(0) special case, which
// formats every finite input as zero.
func (r Rounding) collapsesToZero() bool {
	return r.kind == roundingSignificant && r.digits == 0
}

// Sign controls when a sign glyph is emitted.
type Sign uint8

const (
	// SignOnlyMinus emits "-" for strictly negative values and nothing
	// otherwise.
	SignOnlyMinus Sign = iota
	// SignAlways additionally emits "+" for everything else, zero included.
	SignAlways
)

// String returns the string representation of Sign.
func (s Sign) String() string {
	switch s {
	case SignOnlyMinus:
		return "only-minus"
	case SignAlways:
		return "always"
	default:
		return "unknown"
	}
}
