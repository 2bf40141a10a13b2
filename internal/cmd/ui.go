package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// isInteractive returns true if stdin is a terminal (not piped).
func isInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// Confirm asks for confirmation with a y/n prompt. Enter means yes; end of
// input means no.
func Confirm(reader *bufio.Reader, out io.Writer, prompt string) bool {
	fmt.Fprint(out, prompt+" [Y/n] ")
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		fmt.Fprintln(out)
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "" || response == "y" || response == "yes"
}
