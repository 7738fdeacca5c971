// Package errmsg provides consistent error formatting for user-facing messages.
package errmsg

import "fmt"

// Op represents an operation that can fail.
type Op string

// Operation constants - grouped by domain.
const (
	// Startup operations
	OpLoadConfig  Op = "load configuration"
	OpLoadSongs   Op = "load song file"
	OpLoadCatalog Op = "build song catalog"

	// Playback operations
	OpPlay       Op = "start playback"
	OpPickRandom Op = "pick a random song"
	OpStop       Op = "stop playback"
)

// Format creates a user-friendly error message.
func Format(op Op, err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Failed to %s: %v", op, err)
}

// FormatWith creates an error message with additional context.
func FormatWith(op Op, context string, err error) string {
	if err == nil {
		return ""
	}
	if context == "" {
		return Format(op, err)
	}
	return fmt.Sprintf("Failed to %s '%s': %v", op, context, err)
}
