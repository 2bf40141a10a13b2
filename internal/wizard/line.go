package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LinePrompter asks questions as plain lines of text.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter reads answers from in and writes questions to out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// readLine returns the next line without its line ending. End of input with
// nothing typed counts as a cancel.
func (p *LinePrompter) readLine() (string, error) {
	input, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && input == "" {
			fmt.Fprintln(p.out)
			return "", ErrCancelled
		}
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
	}
	return strings.TrimRight(input, "\r\n"), nil
}

// Text prints the question with the pre-filled value in brackets, or the
// placeholder as a hint. An empty answer keeps the pre-filled value.
func (p *LinePrompter) Text(question, placeholder, value string) (string, error) {
	switch {
	case value != "":
		fmt.Fprintf(p.out, "%s [%s] ", question, value)
	case placeholder != "":
		fmt.Fprintf(p.out, "%s (e.g. %s) ", question, placeholder)
	default:
		fmt.Fprint(p.out, question+" ")
	}

	input, err := p.readLine()
	if err != nil {
		return "", err
	}
	if input == "" {
		return value, nil
	}
	return input, nil
}

// Select shows a numbered menu. Enter keeps the default, q cancels, and
// anything else that is not a listed number asks again.
func (p *LinePrompter) Select(question string, options []string, defaultIndex int) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("no options for '%s'", question)
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	fmt.Fprintln(p.out, question)
	for i, opt := range options {
		marker := "  "
		if i == defaultIndex {
			marker = "> "
		}
		fmt.Fprintf(p.out, "  %s%d. %s\n", marker, i+1, opt)
	}

	for {
		fmt.Fprintf(p.out, "Choice [%d]: ", defaultIndex+1)

		input, err := p.readLine()
		if err != nil {
			return "", err
		}
		input = strings.TrimSpace(input)

		switch strings.ToLower(input) {
		case "":
			return options[defaultIndex], nil
		case "q", "quit":
			return "", ErrCancelled
		}

		if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(options) {
			return options[idx-1], nil
		}
		fmt.Fprintf(p.out, "Invalid choice '%s': enter a number 1-%d, or q to cancel\n", input, len(options))
	}
}
