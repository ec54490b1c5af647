package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"scaler/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "scaler",
	Short: "Human-readable number formatting with unit prefixes",
	Long:  `scaler formats floating-point numbers with SI or IEC unit prefixes, scientific notation, configurable rounding and separators`,
}

// main registers subcommands and persistent flags, then executes the root
// command. If command execution returns an error, the process exits with
// status code 1.
func main() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Version

	// Добавляем команды
	rootCmd.AddCommand(fmtCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(pipeCmd)
	rootCmd.AddCommand(uiCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress separator warnings")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
