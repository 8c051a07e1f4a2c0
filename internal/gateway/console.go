package gateway

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// maxAttempts bounds how many times a prompt re-asks after invalid input.
// User-driven repetition (answering N to a confirmation) is not counted.
const maxAttempts = 3

// ErrAttemptsExhausted is returned when a prompt received invalid input
// maxAttempts times in a row.
var ErrAttemptsExhausted = errors.New("too many invalid entries")

// Console provides the line-oriented prompt primitives for the interactive
// interview. The reader and writer are injected so tests can script a
// session.
type Console struct {
	in  *bufio.Reader
	out io.Writer
}

// NewConsole wraps the given streams.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewReader(in), out: out}
}

// ReadLine prints the label and returns the next input line, trimmed. Any
// line is acceptable, so there is no retry.
func (c *Console) ReadLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil && (line == "" || err != io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// PromptAmount asks for a monetary amount. Thousands separators are
// stripped before parsing; a line that still does not parse as a number is
// rejected with a notice and re-asked, up to maxAttempts times.
func (c *Console) PromptAmount(label string) (decimal.Decimal, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		line, err := c.ReadLine(label)
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := decimal.NewFromString(strings.ReplaceAll(line, ",", ""))
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Please enter a valid number.")
			continue
		}
		return amount, nil
	}
	return decimal.Zero, ErrAttemptsExhausted
}

// PromptValidated asks until the trimmed answer satisfies valid, printing
// notice after each rejected entry, up to maxAttempts times.
func (c *Console) PromptValidated(label, notice string, valid func(string) bool) (string, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		line, err := c.ReadLine(label)
		if err != nil {
			return "", err
		}

		if valid(line) {
			return line, nil
		}
		fmt.Fprintln(c.out, notice)
	}
	return "", ErrAttemptsExhausted
}

// Confirm asks a Y/N question. Answers other than y or n get a notice and a
// re-ask, up to maxAttempts times.
func (c *Console) Confirm(label string) (bool, error) {
	for attempt := 0; attempt < maxAttempts; attempt++ {
		line, err := c.ReadLine(label)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(line) {
		case "y":
			return true, nil
		case "n":
			return false, nil
		default:
			fmt.Fprintln(c.out, "Please enter Y or N.")
		}
	}
	return false, ErrAttemptsExhausted
}
