package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var fmtFlags formatterFlags

func init() {
	addFormatterFlags(fmtCmd, &fmtFlags)
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [numbers...]",
	Short: "Format numbers given as arguments or on stdin",
	Long: `Format each number with the configured scaling and rounding.
With no arguments, reads one number per line from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := formatterFromFlags(cmd, &fmtFlags)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(args) > 0 {
			for _, arg := range args {
				v, err := strconv.ParseFloat(arg, 64)
				if err != nil {
					return fmt.Errorf("not a number: %q", arg)
				}
				fmt.Fprintln(out, f.Format(v))
			}
			return nil
		}

		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			v, err := strconv.ParseFloat(line, 64)
			if err != nil {
				return fmt.Errorf("not a number: %q", line)
			}
			fmt.Fprintln(out, f.Format(v))
		}
		return scanner.Err()
	},
}
