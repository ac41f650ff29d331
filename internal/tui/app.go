package tui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/common-creation/calc/internal/calculator"
	"github.com/common-creation/calc/internal/styles"
)

// Run starts the bubbletea program and blocks until the run ends. The
// returned model carries the transcript and any error that ended the run.
func Run(ctx context.Context, in io.Reader, out io.Writer, st *styles.Styles, opts calculator.Options) (Model, error) {
	program := tea.NewProgram(New(st, opts),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := program.Run()
	if err != nil {
		return Model{}, fmt.Errorf("TUI error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Model{}, fmt.Errorf("unexpected model type %T", final)
	}
	return m, nil
}
