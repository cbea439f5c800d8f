package normalizer

import (
	"strings"
	"unicode"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// WhitespaceStripper removes every whitespace character. It is the
// preprocessing step of bigram scoring.
type WhitespaceStripper struct{}

// NewWhitespaceStripper creates a new whitespace-stripping normalizer.
func NewWhitespaceStripper() ports.Normalizer {
	return &WhitespaceStripper{}
}

// Normalize drops all whitespace and keeps everything else, case included.
func (n *WhitespaceStripper) Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}
