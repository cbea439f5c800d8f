package normalizer

import "github.com/baditaflorin/go_string_similarity/internal/ports"

// NormalizerFactory creates normalizers by type.
type NormalizerFactory struct{}

// NewNormalizerFactory creates a new normalizer factory
func NewNormalizerFactory() *NormalizerFactory {
	return &NormalizerFactory{}
}

// NormalizerType selects a normalization strategy.
type NormalizerType int

const (
	// StripWhitespaceType removes all whitespace (bigram scoring).
	StripWhitespaceType NormalizerType = iota
	// SearchType trims, collapses whitespace and lowercases (substring search).
	SearchType
)

func (t NormalizerType) String() string {
	switch t {
	case StripWhitespaceType:
		return "strip_whitespace"
	case SearchType:
		return "search"
	default:
		return "unknown"
	}
}

// CreateNormalizer creates a normalizer of the specified type.
// Unknown types fall back to the whitespace stripper.
func (f *NormalizerFactory) CreateNormalizer(normalizerType NormalizerType) ports.Normalizer {
	switch normalizerType {
	case SearchType:
		return NewSearchNormalizer()
	default:
		return NewWhitespaceStripper()
	}
}
