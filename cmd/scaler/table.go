package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"scaler"
)

var tableFlags formatterFlags

func init() {
	addFormatterFlags(tableCmd, &tableFlags)
}

var tableCmd = &cobra.Command{
	Use:   "table <numbers...>",
	Short: "Show every scaling mode side by side",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		base, err := formatterFromFlags(cmd, &tableFlags)
		if err != nil {
			return err
		}

		values := make([]float64, 0, len(args))
		for _, arg := range args {
			v, err := strconv.ParseFloat(arg, 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", arg)
			}
			values = append(values, v)
		}

		return renderTable(cmd, base, args, values)
	},
}

var tableScalings = []struct {
	name    string
	scaling scaler.Scaling
}{
	{"none", scaler.ScalingNone()},
	{"decimal", scaler.ScalingDecimal(true)},
	{"binary", scaler.ScalingBinary(true)},
	{"scientific", scaler.ScalingScientific()},
}

func renderTable(cmd *cobra.Command, base scaler.Formatter, args []string, values []float64) error {
	headers := []string{"input"}
	for _, s := range tableScalings {
		headers = append(headers, s.name)
	}

	rows := make([][]string, 0, len(values))
	for i, v := range values {
		row := []string{args[i]}
		for _, s := range tableScalings {
			row = append(row, base.SetScaling(s.scaling).Format(v))
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	out := cmd.OutOrStdout()
	bold := color.New(color.Bold)
	useColor := colorEnabled(cmd)
	for i, h := range headers {
		cell := runewidth.FillRight(h, widths[i])
		if useColor {
			cell = bold.Sprint(cell)
		}
		if i > 0 {
			fmt.Fprint(out, "  ")
		}
		fmt.Fprint(out, cell)
	}
	fmt.Fprintln(out)

	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(out, "  ")
			}
			fmt.Fprint(out, runewidth.FillRight(cell, widths[i]))
		}
		fmt.Fprintln(out)
	}
	return nil
}

// colorEnabled resolves the persistent --color flag against the terminal.
func colorEnabled(cmd *cobra.Command) bool {
	mode, _ := cmd.Flags().GetString("color")
	switch mode {
	case "on":
		return true
	case "off":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}
