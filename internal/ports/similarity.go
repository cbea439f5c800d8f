package ports

import "github.com/baditaflorin/go_string_similarity/internal/core/domain"

// Scorer computes a similarity fraction in [0,1] between two strings.
type Scorer interface {
	Compare(first, second string) float64
}

// MatchFinder rates every candidate against a query and picks the best one.
// A nil result means there were no candidates.
type MatchFinder interface {
	FindBestMatch(query string, candidates []string) *domain.BestMatchResult
}

// SubstringSearcher looks for a part of a longer string that resembles a search string.
type SubstringSearcher interface {
	HasSimilarSubstring(searchString, fullString string) domain.SimilarSubstringResult
	HasSimilarSubstringWithThreshold(searchString, fullString string, threshold float64) domain.SimilarSubstringResult
}
