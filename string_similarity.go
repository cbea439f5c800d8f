// string_similarity.go
// Package stringsimilarity finds the degree of similarity between strings
// based on Dice's coefficient over character bigrams.
//
// The score of two strings, after all whitespace is removed, is
//
//	score = 2 * |bigrams(a) ∩ bigrams(b)| / (len(a) + len(b) - 2)
//
// where the intersection counts repeated bigrams at most as often as they
// occur in both strings. Identical strings score 1.
//
// The functions in this package use a silent default configuration. Use
// pkg/similarity for a configurable instance with logging.
package stringsimilarity

import "github.com/baditaflorin/go_string_similarity/pkg/similarity"

type (
	// Rating is the similarity of one candidate against a query.
	Rating = similarity.Rating
	// BestMatchResult holds every rating and the best one.
	BestMatchResult = similarity.BestMatchResult
	// SimilarSubstringResult is the outcome of a similar-substring search.
	SimilarSubstringResult = similarity.SimilarSubstringResult
)

// DefaultThreshold is the rating HasSimilarSubstring requires by default.
const DefaultThreshold = similarity.DefaultThreshold

// CompareTwoStrings returns a fraction between 0 and 1, which indicates the
// degree of similarity between the two strings. 0 indicates completely
// different strings, 1 identical strings. The comparison is case-sensitive
// and the order of the arguments does not matter.
func CompareTwoStrings(first, second string) float64 {
	return defaultSimilarity().CompareTwoStrings(first, second)
}

// FindBestMatch compares query against each candidate. It returns nil when
// there are no candidates.
func FindBestMatch(query string, candidates []string) *BestMatchResult {
	return defaultSimilarity().FindBestMatch(query, candidates)
}

// HasSimilarSubstring reports whether fullString contains a substring whose
// rating against searchString is at least DefaultThreshold.
func HasSimilarSubstring(searchString, fullString string) SimilarSubstringResult {
	return defaultSimilarity().HasSimilarSubstring(searchString, fullString)
}

// HasSimilarSubstringWithThreshold is HasSimilarSubstring with a custom threshold.
func HasSimilarSubstringWithThreshold(searchString, fullString string, threshold float64) SimilarSubstringResult {
	return defaultSimilarity().HasSimilarSubstringWithThreshold(searchString, fullString, threshold)
}
