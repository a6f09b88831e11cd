package sanitize

import "strings"

// DefaultMaxChars matches the message limit enforced by the mobile client.
const DefaultMaxChars = 2000

// Clamp strips NUL characters and truncates the result to max characters.
// Truncation is a hard cut with no ellipsis or word-boundary handling.
func Clamp(text string, max int) string {
	if max <= 0 {
		max = DefaultMaxChars
	}
	safe := strings.ReplaceAll(text, "\x00", "")
	runes := []rune(safe)
	if len(runes) > max {
		return string(runes[:max])
	}
	return safe
}
