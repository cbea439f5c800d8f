package normalizer

import (
	"strings"

	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// SearchNormalizer prepares both sides of a substring search. It must stay
// separate from WhitespaceStripper: scores depend on the difference.
type SearchNormalizer struct{}

// NewSearchNormalizer creates a new search normalizer.
func NewSearchNormalizer() ports.Normalizer {
	return &SearchNormalizer{}
}

// Normalize trims the text, collapses each whitespace run to one space and lowercases it.
func (n *SearchNormalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}
