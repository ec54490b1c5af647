// Package config loads formatter profiles from scaler.toml files for the
// CLI, and provides the shared string parsers for scaling and sign modes.
// Не делает: поиска файла по дереву каталогов или слияния нескольких
// профилей; CLI передаёт явный путь.
package config

import (
	"errors"
	"fmt"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"scaler"
)

// ErrRoundingConflict indicates a profile that sets both rounding modes.
var ErrRoundingConflict = errors.New("significant_digits and magnitude are mutually exclusive")

// Profile mirrors the [format] section of a scaler.toml file. Unset fields
// keep the library defaults.
type Profile struct {
	Scaling           string  `toml:"scaling"` // none|scientific|decimal|binary
	Spaced            *bool   `toml:"spaced"`
	SignificantDigits *int64  `toml:"significant_digits"`
	Magnitude         *int64  `toml:"magnitude"`
	GroupSeparator    *string `toml:"group_separator"`
	DecimalSeparator  *string `toml:"decimal_separator"`
	Sign              string  `toml:"sign"` // always|minus
	TrailingZeros     *bool   `toml:"trailing_zeros"`
}

type profileFile struct {
	Format Profile `toml:"format"`
}

// Load parses the [format] section from a scaler.toml profile.
func Load(path string) (Profile, error) {
	var pf profileFile
	if _, err := toml.DecodeFile(path, &pf); err != nil {
		return Profile{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	return pf.Format, nil
}

// Formatter builds a scaler.Formatter from the profile on top of the
// library defaults. warn is installed before separators are applied so that
// a questionable profile still reports its advisory notes.
func (p Profile) Formatter(warn scaler.WarnFunc) (scaler.Formatter, error) {
	f := scaler.New().SetWarnFunc(warn)

	if p.Scaling != "" || p.Spaced != nil {
		name := p.Scaling
		if name == "" {
			name = "decimal"
		}
		spaced := true
		if p.Spaced != nil {
			spaced = *p.Spaced
		}
		s, err := ParseScaling(name, spaced)
		if err != nil {
			return scaler.Formatter{}, err
		}
		f = f.SetScaling(s)
	}

	if p.SignificantDigits != nil && p.Magnitude != nil {
		return scaler.Formatter{}, ErrRoundingConflict
	}
	if p.SignificantDigits != nil {
		n, err := safecast.Conv[uint8](*p.SignificantDigits)
		if err != nil {
			return scaler.Formatter{}, fmt.Errorf("significant_digits %d out of range: %w", *p.SignificantDigits, err)
		}
		f = f.SetRounding(scaler.RoundingSignificantDigits(n))
	}
	if p.Magnitude != nil {
		m, err := safecast.Conv[int](*p.Magnitude)
		if err != nil {
			return scaler.Formatter{}, fmt.Errorf("magnitude %d out of range: %w", *p.Magnitude, err)
		}
		f = f.SetRounding(scaler.RoundingMagnitude(m))
	}

	if p.GroupSeparator != nil || p.DecimalSeparator != nil {
		group, decimal := ".", ","
		if p.GroupSeparator != nil {
			group = *p.GroupSeparator
		}
		if p.DecimalSeparator != nil {
			decimal = *p.DecimalSeparator
		}
		f = f.SetSeparators(group, decimal)
	}

	if p.Sign != "" {
		s, err := ParseSign(p.Sign)
		if err != nil {
			return scaler.Formatter{}, err
		}
		f = f.SetSign(s)
	}

	if p.TrailingZeros != nil {
		f = f.SetTrailingZeros(*p.TrailingZeros)
	}

	return f, nil
}

// ParseScaling converts a mode name to a scaler.Scaling.
func ParseScaling(name string, spaced bool) (scaler.Scaling, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return scaler.ScalingNone(), nil
	case "scientific":
		return scaler.ScalingScientific(), nil
	case "decimal":
		return scaler.ScalingDecimal(spaced), nil
	case "binary":
		return scaler.ScalingBinary(spaced), nil
	default:
		return scaler.Scaling{}, fmt.Errorf("invalid scaling %q (expected none|scientific|decimal|binary)", name)
	}
}

// ParseSign converts a mode name to a scaler.Sign.
func ParseSign(name string) (scaler.Sign, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "minus", "only-minus":
		return scaler.SignOnlyMinus, nil
	case "always":
		return scaler.SignAlways, nil
	default:
		return 0, fmt.Errorf("invalid sign %q (expected always|minus)", name)
	}
}
