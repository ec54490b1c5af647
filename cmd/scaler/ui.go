package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"scaler/internal/ui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Interactive formatting playground",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTerminal(os.Stdout) {
			return fmt.Errorf("ui requires a terminal")
		}
		program := tea.NewProgram(ui.NewPlayground(), tea.WithOutput(os.Stdout))
		_, err := program.Run()
		return err
	},
}
