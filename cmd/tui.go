/*
Copyright © 2025 CODA Project
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/common-creation/calc/internal/styles"
	"github.com/common-creation/calc/internal/tui"
)

// tuiCmd represents the tui command
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Run the calculator in a terminal UI",
	Long: `Run the same calculator session in an interactive terminal UI.

Each prompt is answered in an input field; press Enter to submit and
Esc or Ctrl+C to quit.`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	c := GetConfig()
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())

	m, err := tui.Run(cmd.Context(), cmd.InOrStdin(), out, styles.New(out, colorEnabled()), c.CalculatorOptions())
	if err != nil {
		return err
	}
	if m.Aborted() {
		logger.Debug("tui aborted by user")
		return nil
	}
	return m.Err()
}
