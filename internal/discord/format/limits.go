package format

import (
	"strconv"
	"strings"
)

// Discord embed field caps.
const (
	MaxEmbedTitle       = 256
	MaxEmbedDescription = 4096
	MaxEmbedFooter      = 2048
	MaxMessageContent   = 2000
)

// Truncate caps s at max runes. Discord rejects over-length fields
// outright, so stored content is clipped rather than bounced.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// ParseHexColor parses an optional six-digit hex color with or without a
// leading '#'. The second return reports whether the input was a valid
// color; empty or malformed input yields false.
func ParseHexColor(s string) (int, bool) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if len(s) != 6 {
		return 0, false
	}
	v, err := strconv.ParseInt(s, 16, 32)
	if err != nil {
		return 0, false
	}
	return int(v), true
}
