package domain

import "errors"

var (
	// ErrNilLogger is returned when a component is built without a logger.
	ErrNilLogger = errors.New("logger must not be nil")
	// ErrNilNormalizer is returned when a component is built without a normalizer.
	ErrNilNormalizer = errors.New("normalizer must not be nil")
	// ErrNilScorer is returned when a finder is built without a scorer.
	ErrNilScorer = errors.New("scorer must not be nil")
	// ErrNilFinder is returned when a searcher is built without a match finder.
	ErrNilFinder = errors.New("match finder must not be nil")
	// ErrInvalidThreshold is returned for a NaN threshold.
	ErrInvalidThreshold = errors.New("threshold must be a number")
)
