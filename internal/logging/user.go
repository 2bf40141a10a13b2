package logging

import (
	"fmt"
	"io"
	"os"
)

// UserOutput receives user-facing notifications. It defaults to stderr so a
// document written to stdout stays clean.
var UserOutput io.Writer = os.Stderr

// UserInfo prints an info message.
func UserInfo(format string, args ...any) {
	fmt.Fprintf(UserOutput, "ℹ "+format+"\n", args...)
}

// UserSuccess prints a success message.
func UserSuccess(format string, args ...any) {
	fmt.Fprintf(UserOutput, "✓ "+format+"\n", args...)
}

// UserWarning prints a warning message.
func UserWarning(format string, args ...any) {
	fmt.Fprintf(UserOutput, "⚠ "+format+"\n", args...)
}

// UserError prints an error message.
func UserError(format string, args ...any) {
	fmt.Fprintf(UserOutput, "✗ "+format+"\n", args...)
}
