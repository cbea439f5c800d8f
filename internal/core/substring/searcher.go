// Package substring finds the part of a longer string that best resembles a
// search string, using an exact match when one exists and a sliding window
// otherwise.
package substring

import (
	"math"
	"strings"

	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// DefaultThreshold is the minimum rating for a window to count as similar.
const DefaultThreshold = 0.55

// SearchConfig holds configuration for the substring searcher.
type SearchConfig struct {
	Threshold float64
}

// DefaultConfig returns a default configuration.
func DefaultConfig() SearchConfig {
	return SearchConfig{
		Threshold: DefaultThreshold,
	}
}

// Validate checks if the configuration is valid. Any number is accepted as
// a threshold, including values outside [0,1].
func (c SearchConfig) Validate() error {
	if math.IsNaN(c.Threshold) {
		return domain.ErrInvalidThreshold
	}
	return nil
}

// Searcher implements the similar-substring search.
type Searcher struct {
	config     SearchConfig
	logger     ports.Logger
	normalizer ports.Normalizer
	finder     ports.MatchFinder
}

// NewSearcher creates a new substring searcher. The normalizer is applied to
// both strings before searching; the finder rates the candidate windows.
func NewSearcher(config SearchConfig, logger ports.Logger, normalizer ports.Normalizer, finder ports.MatchFinder) (*Searcher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		return nil, domain.ErrNilLogger
	}
	if normalizer == nil {
		return nil, domain.ErrNilNormalizer
	}
	if finder == nil {
		return nil, domain.ErrNilFinder
	}

	return &Searcher{
		config:     config,
		logger:     logger,
		normalizer: normalizer,
		finder:     finder,
	}, nil
}

// HasSimilarSubstring searches with the configured threshold.
func (s *Searcher) HasSimilarSubstring(searchString, fullString string) domain.SimilarSubstringResult {
	return s.HasSimilarSubstringWithThreshold(searchString, fullString, s.config.Threshold)
}

// HasSimilarSubstringWithThreshold reports whether fullString contains a
// substring whose rating against searchString is at least threshold.
func (s *Searcher) HasSimilarSubstringWithThreshold(searchString, fullString string, threshold float64) domain.SimilarSubstringResult {
	search := s.normalizer.Normalize(searchString)
	full := s.normalizer.Normalize(fullString)

	result := domain.SimilarSubstringResult{
		SearchString: search,
		FullString:   full,
		Threshold:    threshold,
	}

	searchRunes := []rune(search)
	fullRunes := []rune(full)
	if len(searchRunes) == 0 || len(fullRunes) == 0 || len(searchRunes) > len(fullRunes) {
		s.logger.Debug("Nothing to search",
			"search_length", len(searchRunes),
			"full_length", len(fullRunes),
		)
		return result
	}

	if idx := strings.Index(full, search); idx >= 0 {
		match := full[idx : idx+len(search)]
		result.Result = 1
		result.IsSimilar = true
		result.SubString = &match
		s.logger.Debug("Found exact substring", "search", search, "offset", idx)
		return result
	}

	width := len(searchRunes)
	windows := make([]string, 0, len(fullRunes)-width+1)
	for i := 0; i+width <= len(fullRunes); i++ {
		windows = append(windows, string(fullRunes[i:i+width]))
	}

	if match := s.finder.FindBestMatch(search, windows); match != nil {
		result.Result = match.BestMatch.Rating
		if target := match.BestMatch.Target; target != "" {
			result.SubString = &target
		}
	}
	result.IsSimilar = result.Result >= threshold

	s.logger.Debug("Searched sliding windows",
		"search", search,
		"windows", len(windows),
		"result", result.Result,
		"is_similar", result.IsSimilar,
		"threshold", threshold,
	)
	return result
}
