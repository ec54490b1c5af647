// Package round turns a bucket mantissa into exact decimal digit runs. The
// digit count is driven by the rounding mode and the bucket's
// decimal-equivalent order; ties round half away from zero against the
// mantissa's exact decimal expansion, so no binary-float display artifacts
// leak into the output.
package round

import (
	"strconv"
	"strings"

	"scaler/internal/scale"
)

type kind uint8

const (
	kindSignificant kind = iota
	kindMagnitude
)

// Spec selects how many digits survive rounding.
type Spec struct {
	kind      kind
	magnitude int
	digits    uint8
}

// Magnitude rounds to the digit at 10^target in absolute terms.
func Magnitude(target int) Spec {
	return Spec{kind: kindMagnitude, magnitude: target}
}

// SignificantDigits rounds to n meaningful digits. n == 0 always collapses
// the value to zero; callers handle that before selecting a bucket.
func SignificantDigits(n uint8) Spec {
	return Spec{kind: kindSignificant, digits: n}
}

// Result carries the rounded digit runs for rendering.
type Result struct {
	Int      string // integer digits, no leading zeros (single "0" below one)
	Frac     string // fractional digits, exactly the computed width
	Overflow bool   // the rounded mantissa reached the bucket's upper bound
	Zero     bool   // every digit rounded away to zero
}

// A float64's fractional decimal expansion never exceeds 1074 digits, so an
// 'f' formatting with this precision is the exact value padded with zeros.
const maxExactFrac = 1074

// Apply rounds mantissa m (>= 0, finite) under spec against a bucket whose
// decimal-equivalent order is order and whose upper mantissa bound is bound
// (0 disables the overflow check, as in unscaled formatting).
func Apply(m float64, spec Spec, order int, bound float64) Result {
	dp := spec.places(m, order)

	intRun, fracRun := digits(m, dp)

	// A full carry grows the run by a leading digit (9.9996 -> 10.000),
	// which would render one meaningful digit too many. The rounded value's
	// own digit count decides the width, as if rounding had happened first;
	// one pass suffices, since a carry at dp implies a carry at dp-1 (every
	// kept digit was 9).
	if spec.kind == kindSignificant && runDigitCount(intRun, fracRun) > digitCount(m) {
		dp--
		intRun, fracRun = digits(m, dp)
	}

	res := Result{
		Int:  intRun,
		Frac: fracRun,
		Zero: allZero(intRun) && allZero(fracRun),
	}
	if bound > 0 && !res.Zero {
		if iv, err := strconv.ParseUint(intRun, 10, 64); err == nil && float64(iv) >= bound {
			res.Overflow = true
		}
	}
	return res
}

// places computes the number of fractional digits to retain. The result may
// be negative, which rounds away integer positions (tens, hundreds, ...)
// while the rendered width is clamped at zero.
func (s Spec) places(m float64, order int) int {
	switch s.kind {
	case kindMagnitude:
		return order - s.magnitude
	default:
		return int(s.digits) - digitCount(m)
	}
}

// digitCount is the count of digits in the integer part of m, extended below
// one the way significant-digit counting needs it: 0.5 has count 0, 0.05 has
// count -1, so that n significant digits always span n rendered digits.
func digitCount(m float64) int {
	if m == 0 {
		return 1
	}
	return scale.DecimalOrder(m) + 1
}

// runDigitCount mirrors digitCount on already-rounded digit runs: the count
// of digits from the leading nonzero digit down to the unit position, zero or
// negative below one. An all-zero run counts as 1, like digitCount(0).
func runDigitCount(intRun, fracRun string) int {
	if intRun != "0" {
		return len(intRun)
	}
	for i := 0; i < len(fracRun); i++ {
		if fracRun[i] != '0' {
			return -i
		}
	}
	return 1
}

// digits produces the rounded digit runs of m at dp fractional places using
// round-half-away-from-zero on the exact decimal expansion. For dp < 0 the
// last -dp integer positions are rounded away and zero-filled; the rendered
// fractional run is then empty.
func digits(m float64, dp int) (intRun, fracRun string) {
	display := dp
	if display < 0 {
		display = 0
	}
	prec := maxExactFrac
	if dp > prec {
		prec = dp
	}
	s := strconv.FormatFloat(m, 'f', prec, 64)
	dot := strings.IndexByte(s, '.')
	ip, fp := s[:dot], s[dot+1:]

	if dp >= 0 {
		keep, tail := fp[:dp], fp[dp:]
		run := ip + keep
		if tail != "" && tail[0] >= '5' {
			run = increment(run)
		}
		cut := len(run) - dp
		intRun, fracRun = run[:cut], run[cut:]
	} else {
		k := -dp
		if len(ip) <= k {
			ip = strings.Repeat("0", k+1-len(ip)) + ip
		}
		cut := len(ip) - k
		run := ip[:cut]
		if ip[cut] >= '5' {
			run = increment(run)
		}
		intRun = run + strings.Repeat("0", k)
	}

	intRun = strings.TrimLeft(intRun, "0")
	if intRun == "" {
		intRun = "0"
	}
	return intRun, fracRun
}

// increment adds one to a decimal digit run, growing it on a full carry.
func increment(run string) string {
	b := []byte(run)
	for i := len(b) - 1; i >= 0; i-- {
		if b[i] != '9' {
			b[i]++
			return string(b)
		}
		b[i] = '0'
	}
	return "1" + string(b)
}

func allZero(run string) bool {
	for i := 0; i < len(run); i++ {
		if run[i] != '0' {
			return false
		}
	}
	return true
}
