// Package logging provides logging utilities for readmegen.
//
// Two kinds of output live here:
//   - Debug logging: structured logs via slog, enabled with --verbose
//   - User output: short status lines for the person running the wizard
//
// # Debug Logging
//
//	logging.Debug("manifest detected", "file", "package.json", "type", "javascript")
//
// # User Output
//
//	logging.UserInfo("Analyzing your project...")
//	logging.UserSuccess("Smart README generated for %s!", name)
//	logging.UserError("Error generating README: %v", err)
//
// User functions prepend status indicators (ℹ ✓ ⚠ ✗) and write to
// UserOutput, which is stderr unless a test swaps it.
package logging
