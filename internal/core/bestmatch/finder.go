// Package bestmatch picks the candidate most similar to a query.
package bestmatch

import (
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
)

// Finder rates candidates with a scorer and tracks the highest rating.
type Finder struct {
	logger ports.Logger
	scorer ports.Scorer
}

// NewFinder creates a new best-match finder.
func NewFinder(logger ports.Logger, scorer ports.Scorer) (*Finder, error) {
	if logger == nil {
		return nil, domain.ErrNilLogger
	}
	if scorer == nil {
		return nil, domain.ErrNilScorer
	}

	return &Finder{
		logger: logger,
		scorer: scorer,
	}, nil
}

// FindBestMatch compares query against each candidate in order. It returns
// nil when there are no candidates. On equal ratings the earliest candidate
// wins.
func (f *Finder) FindBestMatch(query string, candidates []string) *domain.BestMatchResult {
	if len(candidates) == 0 {
		f.logger.Debug("No candidates to match", "query", query)
		return nil
	}

	ratings := make([]domain.Rating, 0, len(candidates))
	bestIndex := 0
	for i, candidate := range candidates {
		rating := domain.Rating{
			Target: candidate,
			Rating: f.scorer.Compare(query, candidate),
		}
		ratings = append(ratings, rating)
		if rating.Rating > ratings[bestIndex].Rating {
			bestIndex = i
		}
	}

	f.logger.Debug("Found best match",
		"query", query,
		"candidates", len(candidates),
		"best_match_index", bestIndex,
		"best_match", ratings[bestIndex].Target,
		"rating", ratings[bestIndex].Rating,
	)

	return &domain.BestMatchResult{
		Ratings:        ratings,
		BestMatch:      ratings[bestIndex],
		BestMatchIndex: bestIndex,
	}
}
