package main

import (
	"fmt"
	"os"

	"fortio.org/safecast"
	"github.com/spf13/cobra"

	"scaler"
	"scaler/internal/config"
)

// formatterFlags holds the flag values shared by every command that renders
// numbers. A command opts in via addFormatterFlags and resolves the final
// formatter via formatterFromFlags.
type formatterFlags struct {
	profile string

	scaling string
	spaced  bool

	significant int
	magnitude   int

	groupSep   string
	decimalSep string

	sign            string
	noTrailingZeros bool
}

func addFormatterFlags(cmd *cobra.Command, f *formatterFlags) {
	cmd.Flags().StringVar(&f.profile, "profile", "", "path to a scaler.toml profile")
	cmd.Flags().StringVar(&f.scaling, "scaling", "", "scaling mode (none|scientific|decimal|binary)")
	cmd.Flags().BoolVar(&f.spaced, "spaced", true, "put a space between value and prefix")
	cmd.Flags().IntVar(&f.significant, "significant", 0, "round to N significant digits")
	cmd.Flags().IntVar(&f.magnitude, "magnitude", 0, "round to the given decimal magnitude")
	cmd.Flags().StringVar(&f.groupSep, "group-sep", "", "separator between digit groups")
	cmd.Flags().StringVar(&f.decimalSep, "decimal-sep", "", "separator before fractional digits")
	cmd.Flags().StringVar(&f.sign, "sign", "", "sign mode (minus|always)")
	cmd.Flags().BoolVar(&f.noTrailingZeros, "no-trailing-zeros", false, "trim trailing fractional zeros")
}

// formatterFromFlags layers explicit flags over an optional profile over the
// library defaults. Warnings about questionable separators go to stderr
// unless --quiet is set.
func formatterFromFlags(cmd *cobra.Command, f *formatterFlags) (scaler.Formatter, error) {
	warn := warnSink(cmd)

	out := scaler.New().SetWarnFunc(warn)
	if f.profile != "" {
		p, err := config.Load(f.profile)
		if err != nil {
			return scaler.Formatter{}, err
		}
		out, err = p.Formatter(warn)
		if err != nil {
			return scaler.Formatter{}, err
		}
	}

	if f.scaling != "" || cmd.Flags().Changed("spaced") {
		name := f.scaling
		if name == "" {
			name = "decimal"
		}
		s, err := config.ParseScaling(name, f.spaced)
		if err != nil {
			return scaler.Formatter{}, err
		}
		out = out.SetScaling(s)
	}

	sigSet := cmd.Flags().Changed("significant")
	magSet := cmd.Flags().Changed("magnitude")
	if sigSet && magSet {
		return scaler.Formatter{}, fmt.Errorf("--significant and --magnitude are mutually exclusive")
	}
	if sigSet {
		n, err := safecast.Conv[uint8](f.significant)
		if err != nil {
			return scaler.Formatter{}, fmt.Errorf("--significant %d out of range: %w", f.significant, err)
		}
		out = out.SetRounding(scaler.RoundingSignificantDigits(n))
	}
	if magSet {
		out = out.SetRounding(scaler.RoundingMagnitude(f.magnitude))
	}

	if cmd.Flags().Changed("group-sep") || cmd.Flags().Changed("decimal-sep") {
		group, decimal := ".", ","
		if cmd.Flags().Changed("group-sep") {
			group = f.groupSep
		}
		if cmd.Flags().Changed("decimal-sep") {
			decimal = f.decimalSep
		}
		out = out.SetSeparators(group, decimal)
	}

	if f.sign != "" {
		s, err := config.ParseSign(f.sign)
		if err != nil {
			return scaler.Formatter{}, err
		}
		out = out.SetSign(s)
	}

	if f.noTrailingZeros {
		out = out.SetTrailingZeros(false)
	}

	return out, nil
}

func warnSink(cmd *cobra.Command) scaler.WarnFunc {
	quiet, _ := cmd.Flags().GetBool("quiet")
	if quiet {
		return nil
	}
	return func(code, message string) {
		fmt.Fprintf(os.Stderr, "warning: %s: %s\n", code, message)
	}
}
