package domain

import (
	"fmt"
	"strings"
)

// Rating is the similarity of one candidate against a fixed query.
type Rating struct {
	Target string
	Rating float64
}

// Equal reports whether both ratings have the same target and score.
func (r Rating) Equal(other Rating) bool {
	return r == other
}

func (r Rating) String() string {
	return fmt.Sprintf("Rating { target: %s, rating: %v }", r.Target, r.Rating)
}

// BestMatchResult holds every candidate rating and the highest one.
// Ratings keep the order of the candidates they were computed from, and
// Ratings[BestMatchIndex] == BestMatch. An absent result is a nil pointer.
type BestMatchResult struct {
	Ratings        []Rating
	BestMatch      Rating
	BestMatchIndex int
}

// Equal compares all fields, including every rating in order.
func (r *BestMatchResult) Equal(other *BestMatchResult) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.BestMatchIndex != other.BestMatchIndex || r.BestMatch != other.BestMatch {
		return false
	}
	if len(r.Ratings) != len(other.Ratings) {
		return false
	}
	for i := range r.Ratings {
		if r.Ratings[i] != other.Ratings[i] {
			return false
		}
	}
	return true
}

func (r *BestMatchResult) String() string {
	if r == nil {
		return "BestMatchResult { <nil> }"
	}
	ratings := make([]string, len(r.Ratings))
	for i, rating := range r.Ratings {
		ratings[i] = rating.String()
	}
	return fmt.Sprintf("BestMatchResult { bestMatchIndex: %d, bestMatch: %s, ratings: %s }",
		r.BestMatchIndex, r.BestMatch, strings.Join(ratings, ", "))
}

// SimilarSubstringResult is the outcome of a similar-substring search.
// SearchString and FullString are the normalized forms that were compared.
// SubString is nil when no window could be evaluated.
type SimilarSubstringResult struct {
	Result       float64
	IsSimilar    bool
	SearchString string
	FullString   string
	Threshold    float64
	SubString    *string
}

// Matched returns the matched window and whether one exists.
func (r SimilarSubstringResult) Matched() (string, bool) {
	if r.SubString == nil {
		return "", false
	}
	return *r.SubString, true
}

// Equal compares all fields; SubString is compared by value.
func (r SimilarSubstringResult) Equal(other SimilarSubstringResult) bool {
	if r.Result != other.Result ||
		r.IsSimilar != other.IsSimilar ||
		r.SearchString != other.SearchString ||
		r.FullString != other.FullString ||
		r.Threshold != other.Threshold {
		return false
	}
	sub, ok := r.Matched()
	otherSub, otherOK := other.Matched()
	return ok == otherOK && sub == otherSub
}

func (r SimilarSubstringResult) String() string {
	sub := "<nil>"
	if s, ok := r.Matched(); ok {
		sub = s
	}
	return fmt.Sprintf("SimilarSubstringResult { result: %v, isSimilar: %t, searchString: %s, fullString: %s, threshold: %v, subString: %s }",
		r.Result, r.IsSimilar, r.SearchString, r.FullString, r.Threshold, sub)
}
