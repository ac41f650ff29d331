// Package tui drives a calculator session through a bubbletea program.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/common-creation/calc/internal/calculator"
	"github.com/common-creation/calc/internal/session"
	"github.com/common-creation/calc/internal/styles"
)

type step int

const (
	stepFirst step = iota
	stepSecond
	stepNum1
	stepNum2
	stepOperator
	stepDone
)

var prompts = map[step]string{
	stepFirst:    session.PromptFirstNumber,
	stepSecond:   session.PromptSecondNumber,
	stepNum1:     session.PromptFirstNumber,
	stepNum2:     session.PromptSecondNumber,
	stepOperator: session.PromptOperator,
}

// Model is the bubbletea model for one calculator run
type Model struct {
	input  textinput.Model
	styles *styles.Styles
	opts   calculator.Options

	step          step
	first, second int32
	num1, num2    int32
	lines         []string
	err           error
	aborted       bool
}

// New creates a model ready to prompt for the first number
func New(st *styles.Styles, opts calculator.Options) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		input:  ti,
		styles: st,
		opts:   opts,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.step = stepDone
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if m.step == stepDone {
		return m, tea.Quit
	}

	value := m.input.Value()
	m.input.Reset()
	m.lines = append(m.lines, styles.Paint(m.styles.Prompt, prompts[m.step]), value)

	switch m.step {
	case stepFirst, stepSecond:
		v, err := calculator.ParseStrict(value, true)
		if err != nil {
			return m.fail(err)
		}
		if m.step == stepFirst {
			m.first = v
		} else {
			m.second = v
			m.lines = append(m.lines, styles.Paint(m.styles.Result, session.Sum(m.first, m.second)))
		}
	case stepNum1:
		m.num1 = calculator.TryParse(value)
	case stepNum2:
		m.num2 = calculator.TryParse(value)
	case stepOperator:
		reply, err := session.Dispatch(value, m.num1, m.num2, m.opts)
		if err != nil {
			return m.fail(err)
		}
		style := m.styles.Result
		if reply.Failed {
			style = m.styles.Error
		}
		m.lines = append(m.lines, styles.Paint(style, reply.Text))
		m.step = stepDone
		return m, tea.Quit
	}

	m.step++
	return m, nil
}

func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	m.err = err
	m.step = stepDone
	m.lines = append(m.lines, styles.Paint(m.styles.Error, "Error: "+err.Error()))
	return m, tea.Quit
}

// Err returns the error that ended the run, if any
func (m Model) Err() error {
	return m.err
}

// Aborted reports whether the user quit before the run finished
func (m Model) Aborted() bool {
	return m.aborted
}

// Transcript returns every line shown so far
func (m Model) Transcript() []string {
	return append([]string(nil), m.lines...)
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	if m.styles.Colorless() {
		b.WriteString("calc")
	} else {
		b.WriteString(m.styles.Title.Render("calc"))
	}
	b.WriteString("\n\n")

	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.step != stepDone {
		b.WriteString(styles.Paint(m.styles.Prompt, prompts[m.step]))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(styles.Paint(m.styles.Muted, "enter to submit, esc to quit"))
		b.WriteString("\n")
	}

	return b.String()
}
