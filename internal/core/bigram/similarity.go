// Package bigram implements the Sørensen–Dice bigram similarity score.
package bigram

import (
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// pair is two adjacent characters.
type pair [2]rune

// Scorer compares two strings by the overlap of their bigram multisets.
type Scorer struct {
	logger     ports.Logger
	normalizer ports.Normalizer
}

// NewScorer creates a new bigram scorer. The normalizer runs on both inputs
// before any bigram is taken; it is expected to strip whitespace.
func NewScorer(logger ports.Logger, normalizer ports.Normalizer) (*Scorer, error) {
	if logger == nil {
		return nil, domain.ErrNilLogger
	}
	if normalizer == nil {
		return nil, domain.ErrNilNormalizer
	}

	return &Scorer{
		logger:     logger,
		normalizer: normalizer,
	}, nil
}

// Compare returns a fraction between 0 and 1 indicating how similar the two
// strings are. Identical strings score 1. The comparison is case-sensitive
// and the order of the arguments does not change the score.
func (s *Scorer) Compare(first, second string) float64 {
	first = s.normalizer.Normalize(first)
	second = s.normalizer.Normalize(second)

	if first == second {
		s.logger.Debug("Identical strings", "first", first, "second", second)
		return 1
	}

	firstRunes := []rune(first)
	secondRunes := []rune(second)
	if len(firstRunes) < 2 || len(secondRunes) < 2 {
		s.logger.Debug("String too short for bigrams",
			"first_length", len(firstRunes),
			"second_length", len(secondRunes),
		)
		return 0
	}

	counts := make(map[pair]int, len(firstRunes)-1)
	for i := 0; i < len(firstRunes)-1; i++ {
		counts[pair{firstRunes[i], firstRunes[i+1]}]++
	}

	// Each bigram of first can be matched at most as many times as it occurs.
	intersection := 0
	for i := 0; i < len(secondRunes)-1; i++ {
		p := pair{secondRunes[i], secondRunes[i+1]}
		if counts[p] > 0 {
			counts[p]--
			intersection++
		}
	}

	score := 2.0 * float64(intersection) / float64(len(firstRunes)+len(secondRunes)-2)

	s.logger.Debug("Computed bigram similarity",
		"first", first,
		"second", second,
		"intersection", intersection,
		"score", score,
	)
	return score
}
