// Package session runs the interactive calculator over a line-oriented
// reader and writer.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/common-creation/calc/internal/calculator"
	"github.com/common-creation/calc/internal/styles"
)

// Session is a single calculator run. It is not reusable.
type Session struct {
	ID string

	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
	styles *styles.Styles
	opts   calculator.Options
}

// Option configures a Session
type Option func(*Session)

// WithLogger sets the logger used for diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// WithStyles sets the output styles
func WithStyles(st *styles.Styles) Option {
	return func(s *Session) {
		s.styles = st
	}
}

// WithCalculatorOptions sets how operators are evaluated
func WithCalculatorOptions(opts calculator.Options) Option {
	return func(s *Session) {
		s.opts = opts
	}
}

// New creates a session reading from in and printing to out
func New(in io.Reader, out io.Writer, opts ...Option) *Session {
	s := &Session{
		ID:     uuid.New().String(),
		in:     bufio.NewReader(in),
		out:    out,
		logger: log.New(io.Discard),
		styles: styles.Plain(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("session_id", s.ID)
	return s
}

// Run prompts for two numbers and prints their sum, then prompts for two
// more numbers and an operator and prints the result. Numbers in the first
// pass must parse; numbers in the second pass default to zero.
func (s *Session) Run(ctx context.Context) error {
	first, err := s.readStrict(ctx, PromptFirstNumber)
	if err != nil {
		return err
	}
	second, err := s.readStrict(ctx, PromptSecondNumber)
	if err != nil {
		return err
	}
	s.print(s.styles.Result, Sum(first, second))

	num1, err := s.readTry(ctx, PromptFirstNumber)
	if err != nil {
		return err
	}
	num2, err := s.readTry(ctx, PromptSecondNumber)
	if err != nil {
		return err
	}

	opLine, _, err := s.ask(ctx, PromptOperator)
	if err != nil {
		return err
	}
	s.logger.Debug("evaluating", "num1", num1, "num2", num2, "operator", opLine)

	reply, err := Dispatch(opLine, num1, num2, s.opts)
	if err != nil {
		s.logger.Error("evaluation failed", "error", err)
		return err
	}

	style := s.styles.Result
	if reply.Failed {
		style = s.styles.Error
	}
	s.print(style, reply.Text)
	return nil
}

func (s *Session) readStrict(ctx context.Context, prompt string) (int32, error) {
	line, present, err := s.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	v, err := calculator.ParseStrict(line, present)
	if err != nil {
		s.logger.Debug("operand rejected", "input", line, "error", err)
		return 0, err
	}
	return v, nil
}

func (s *Session) readTry(ctx context.Context, prompt string) (int32, error) {
	line, _, err := s.ask(ctx, prompt)
	if err != nil {
		return 0, err
	}
	return calculator.TryParse(line), nil
}

// ask prints prompt and reads the next line. present is false when the
// input ended before any character of the line was read.
func (s *Session) ask(ctx context.Context, prompt string) (line string, present bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	s.print(s.styles.Prompt, prompt)

	line, err = s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, fmt.Errorf("failed to read input: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		return "", false, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true, nil
}

func (s *Session) print(style lipgloss.Style, text string) {
	fmt.Fprintln(s.out, styles.Paint(style, text))
}
