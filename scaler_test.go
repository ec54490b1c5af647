package scaler

import (
	"math"
	"testing"
)

func TestDefaults(t *testing.T) {
	f := New()
	cases := []struct {
		in   float64
		want string
	}{
		{456789, "456,8 k"},
		{0.1, "100,0 m"},
		{-1, "-1,000"},
		{0, "0,000"},
		{1, "1,000"},
		{10, "10,00"},
		{999, "999,0"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestScalingDecimal(t *testing.T) {
	f := New().SetScaling(ScalingDecimal(true))
	cases := []struct {
		in   float64
		want string
	}{
		{1e-31, "1,000 * 10^(-31)"},
		{1e-30, "1,000 q"},
		{1e-3, "1,000 m"},
		{10, "10,00"},
		{1e3, "1,000 k"},
		{1e30, "1,000 Q"},
		{1e33, "1,000 * 10^(33)"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestScalingBinary(t *testing.T) {
	f := New().SetScaling(ScalingBinary(true))
	cases := []struct {
		in   float64
		want string
	}{
		{0.1, "1,600 * 2^(-4)"},
		{math.Pow(2, -10), "1,000 * 2^(-10)"},
		{2, "2,000"},
		{1023, "1.023"},
		{1024, "1,000 Ki"},
		{math.Pow(2, 20), "1,000 Mi"},
		{math.Pow(2, 90), "1,000 * 2^(90)"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestScalingNone(t *testing.T) {
	f := New().SetScaling(ScalingNone())
	cases := []struct {
		in   float64
		want string
	}{
		{1e-10, "0,0000000001000"},
		{0.1, "0,1000"},
		{1, "1,000"},
		{1000, "1.000"},
		{1e10, "10.000.000.000"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestScalingScientific(t *testing.T) {
	f := New().SetScaling(ScalingScientific())
	cases := []struct {
		in   float64
		want string
	}{
		{1e-1, "1,000 * 10^(-1)"},
		{1, "1,000 * 10^(0)"},
		{1e3, "1,000 * 10^(3)"},
		{123.456, "1,235 * 10^(2)"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestRoundingMagnitude(t *testing.T) {
	cases := []struct {
		target int
		in     float64
		want   string
	}{
		{-10, 0.000000123456789, "123,5 n"},
		{-10, 123.45, "123,4500000000"},
		{-10, 0.9, "900,0000000 m"},
		{-2, 42069, "42,06900 k"},
		{-1, 123456, "123,4560 k"},
		{-1, 123.456, "123,5"},
		{-1, 0.9, "900 m"},
		{0, 123456, "123,456 k"},
		{0, 123.456, "123"},
		{0, 0.9, "1"},
		{1, 123456, "123,46 k"},
		{1, 123.456, "120"},
		{1, 0.9, "0"},
	}
	for _, tc := range cases {
		f := New().SetRounding(RoundingMagnitude(tc.target))
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v) at magnitude %d: want %q, got %q", tc.in, tc.target, tc.want, got)
		}
	}
}

func TestRoundingSignificantDigits(t *testing.T) {
	cases := []struct {
		n    uint8
		in   float64
		want string
	}{
		{0, 123456, "0"},
		{0, 123.456, "0"},
		{0, 0.9, "0"},
		{1, 123456, "100 k"},
		{1, 123.456, "100"},
		{1, 0.9, "900 m"},
		{2, 123, "120"},
		{2, 4.56, "4,6"},
		{10, 123456, "123,4560000 k"},
		{10, 123.456, "123,4560000"},
		{10, 0.9, "900,0000000 m"},
	}
	for _, tc := range cases {
		f := New().SetRounding(RoundingSignificantDigits(tc.n))
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v) at %d significant digits: want %q, got %q", tc.in, tc.n, tc.want, got)
		}
	}
}

func TestSignificantDigitsCarry(t *testing.T) {
	// A carry into a new leading digit (9.9996 -> 10.000) must not widen
	// the output past n meaningful digits, with or without crossing the
	// bucket's upper bound.
	cases := []struct {
		f    Formatter
		in   float64
		want string
	}{
		{New(), 9.9996, "10,00"},
		{New(), 99996, "100,0 k"},
		// The carry lands exactly on the bucket bound and still promotes.
		{New(), 0.99996, "1,000"},
		{New().SetScaling(ScalingNone()), 99.996, "100,0"},
		// 999.95 Ki rounds up inside the binary bucket; 1000 < 1024, so no
		// promotion, just one fewer fractional digit.
		{New().SetScaling(ScalingBinary(true)), 1023948.8, "1.000 Ki"},
		{New().SetRounding(RoundingSignificantDigits(2)), 99.5, "100"},
	}
	for _, tc := range cases {
		if got := tc.f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSign(t *testing.T) {
	f := New().SetSign(SignOnlyMinus)
	for in, want := range map[float64]string{-1: "-1,000", 0: "0,000", 1: "1,000"} {
		if got := f.Format(in); got != want {
			t.Fatalf("only-minus Format(%v): want %q, got %q", in, want, got)
		}
	}

	f = New().SetSign(SignAlways)
	for in, want := range map[float64]string{-1: "-1,000", 0: "+0,000", 1: "+1,000"} {
		if got := f.Format(in); got != want {
			t.Fatalf("always Format(%v): want %q, got %q", in, want, got)
		}
	}
}

func TestNegativeZero(t *testing.T) {
	negZero := math.Copysign(0, -1)
	if got := New().Format(negZero); got != "0,000" {
		t.Fatalf("only-minus Format(-0): want %q, got %q", "0,000", got)
	}
	if got := New().SetSign(SignAlways).Format(negZero); got != "+0,000" {
		t.Fatalf("always Format(-0): want %q, got %q", "+0,000", got)
	}
}

func TestNonFinite(t *testing.T) {
	f := New()
	if got := f.Format(math.Inf(1)); got != "∞" {
		t.Fatalf("Format(+∞): got %q", got)
	}
	if got := f.Format(math.Inf(-1)); got != "-∞" {
		t.Fatalf("Format(-∞): got %q", got)
	}
	if got := f.Format(math.NaN()); got != "NaN" {
		t.Fatalf("Format(NaN): got %q", got)
	}

	f = f.SetSign(SignAlways)
	if got := f.Format(math.Inf(1)); got != "+∞" {
		t.Fatalf("always Format(+∞): got %q", got)
	}
	if got := f.Format(math.Inf(-1)); got != "-∞" {
		t.Fatalf("always Format(-∞): got %q", got)
	}
	if got := f.Format(math.NaN()); got != "NaN" {
		t.Fatalf("always Format(NaN): got %q", got)
	}
}

func TestSeparators(t *testing.T) {
	f := New().SetScaling(ScalingNone()).SetSeparators(".", ",")
	for in, want := range map[float64]string{123456: "123.500", 123.456: "123,5", 0.9: "0,9000"} {
		if got := f.Format(in); got != want {
			t.Fatalf("Format(%v): want %q, got %q", in, want, got)
		}
	}

	f = New().SetScaling(ScalingNone()).SetSeparators(",", ".")
	for in, want := range map[float64]string{123456: "123,500", 123.456: "123.5", 0.9: "0.9000"} {
		if got := f.Format(in); got != want {
			t.Fatalf("swapped Format(%v): want %q, got %q", in, want, got)
		}
	}

	// Empty separators are accepted and format deterministically.
	f = New().SetScaling(ScalingNone()).SetRounding(RoundingMagnitude(-1)).SetSeparators("", "")
	if got := f.Format(1234.5); got != "12345" {
		t.Fatalf("empty separators: got %q", got)
	}
}

func TestTrailingZeroSuppression(t *testing.T) {
	f := New().SetTrailingZeros(false)
	cases := []struct {
		in   float64
		want string
	}{
		{0.1, "100 m"},
		{999, "999"},
		{1024, "1,024 k"},
		{1.5, "1,5"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}

	f = f.SetScaling(ScalingScientific())
	if got := f.Format(1); got != "1 * 10^(0)" {
		t.Fatalf("scientific without trailing zeros: got %q", got)
	}
}

func TestBucketOverflowPromotion(t *testing.T) {
	cases := []struct {
		f    Formatter
		in   float64
		want string
	}{
		// 999.96 rounds to 1000.0 and must promote, never render "1000,0".
		{New(), 999.96, "1,000 k"},
		{New().SetScaling(ScalingBinary(true)), 1023.97, "1,000 Ki"},
		{New().SetScaling(ScalingScientific()), 9.9996, "1,000 * 10^(1)"},
		// A fallback bucket can promote back into the covered range.
		{New(), 9.9996e-31, "1,000 q"},
		// Promotion inside the table moves to the next prefix.
		{New(), 9.9996e29, "1,000 Q"},
		// Promotion out of the covered range falls back to scientific.
		{New(), 9.9996e32, "1,000 * 10^(33)"},
	}
	for _, tc := range cases {
		if got := tc.f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestTiesRoundAwayFromZero(t *testing.T) {
	f := New().SetScaling(ScalingNone()).SetRounding(RoundingMagnitude(0))
	cases := []struct {
		in   float64
		want string
	}{
		{0.5, "1"},
		{1.5, "2"},
		{2.5, "3"},
		{-0.5, "-1"},
	}
	for _, tc := range cases {
		if got := f.Format(tc.in); got != tc.want {
			t.Fatalf("Format(%v): want %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestSignificantZeroKeepsOuterSign(t *testing.T) {
	// The glyph derives from the original value even when rounding
	// collapses it to zero.
	f := New().SetRounding(RoundingSignificantDigits(0))
	if got := f.Format(-123.456); got != "-0" {
		t.Fatalf("Format(-123.456): want %q, got %q", "-0", got)
	}
	if got := f.SetSign(SignAlways).Format(123.456); got != "+0" {
		t.Fatalf("always Format(123.456): want %q, got %q", "+0", got)
	}
}

func TestSettersReturnCopies(t *testing.T) {
	base := New()
	derived := base.SetScaling(ScalingBinary(false)).SetSeparators(" ", ".")
	if got := base.Format(1024); got != "1,024 k" {
		t.Fatalf("base formatter changed: got %q", got)
	}
	if got := derived.Format(1024); got != "1.000Ki" {
		t.Fatalf("derived formatter: got %q", got)
	}
}

func TestFormatIsPure(t *testing.T) {
	f := New().SetScaling(ScalingBinary(true)).SetRounding(RoundingMagnitude(-3))
	for _, in := range []float64{0, 1, -1, 0.1, 1024, 123456.789, 1e-30, 1e30} {
		first := f.Format(in)
		for i := 0; i < 3; i++ {
			if got := f.Format(in); got != first {
				t.Fatalf("Format(%v) unstable: %q then %q", in, first, got)
			}
		}
	}
}

func TestSeparatorWarnings(t *testing.T) {
	var codes []string
	warn := func(code, _ string) { codes = append(codes, code) }

	f := New().SetWarnFunc(warn)

	codes = nil
	f = f.SetSeparators(".", ",")
	if len(codes) != 0 {
		t.Fatalf("default-like separators warned: %v", codes)
	}

	codes = nil
	f = f.SetSeparators(",", ",")
	if len(codes) != 1 || codes[0] != WarnSeparatorsEqual {
		t.Fatalf("equal separators: got %v", codes)
	}

	codes = nil
	f = f.SetSeparators(".", "")
	if len(codes) != 1 || codes[0] != WarnDecimalSeparatorEmpty {
		t.Fatalf("empty decimal separator: got %v", codes)
	}

	codes = nil
	f = f.SetSeparators("1", ",")
	if len(codes) != 1 || codes[0] != WarnSeparatorAmbiguous {
		t.Fatalf("digit separator: got %v", codes)
	}

	// The sink is advisory only: output matches a warning-free formatter.
	noisy := New().SetWarnFunc(warn).SetSeparators(",", ",")
	silent := New().SetSeparators(",", ",")
	for _, in := range []float64{1234.5, 0.125, -42} {
		if noisy.Format(in) != silent.Format(in) {
			t.Fatalf("warn sink altered output for %v", in)
		}
	}

	// No sink installed: nothing to call, still no panic.
	_ = New().SetSeparators(",", ",")
}

func TestSubnormal(t *testing.T) {
	f := New()
	got := f.Format(5e-324)
	want := "5,000 * 10^(-324)"
	if got != want {
		t.Fatalf("Format(5e-324): want %q, got %q", want, got)
	}
}
