package scaler

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Warning codes passed to a WarnFunc by SetSeparators.
const (
	WarnDecimalSeparatorEmpty = "decimal-separator-empty"
	WarnSeparatorsEqual       = "separators-equal"
	WarnSeparatorAmbiguous    = "separator-ambiguous"
)

// WarnFunc receives advisory notes about configurations that still format
// deterministically but may read ambiguously. The sink is write-only: it
// must never influence the configuration or any Format output. A nil sink
// disables the checks.
type WarnFunc func(code, message string)

// glyphs that also appear inside formatted numbers
const reservedGlyphs = "0123456789+-∞"

// checkSeparators runs the advisory ambiguity checks on NFC-normalized
// separator strings, so that visually identical separators composed from
// different codepoint sequences still compare equal.
func checkSeparators(warn WarnFunc, group, decimal string) {
	if warn == nil {
		return
	}
	g := norm.NFC.String(group)
	d := norm.NFC.String(decimal)
	switch {
	case d == "":
		warn(WarnDecimalSeparatorEmpty,
			"decimal separator is empty; fractional digits will run into the integer part")
	case g == d:
		warn(WarnSeparatorsEqual, fmt.Sprintf(
			"group separator %q and decimal separator %q are the same; output will be ambiguous",
			group, decimal))
	}
	for _, sep := range [...]string{g, d} {
		if sep != "" && strings.ContainsAny(sep, reservedGlyphs) {
			warn(WarnSeparatorAmbiguous, fmt.Sprintf(
				"separator %q contains a digit, sign, or infinity glyph", sep))
		}
	}
}
