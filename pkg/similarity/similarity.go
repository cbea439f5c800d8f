// Package similarity exposes a configurable bigram string-similarity engine.
package similarity

import (
	"fmt"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_similarity/internal/core/bestmatch"
	"github.com/baditaflorin/go_string_similarity/internal/core/bigram"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/core/substring"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/baditaflorin/l"
)

type (
	// Rating is the similarity of one candidate against a query.
	Rating = domain.Rating
	// BestMatchResult holds every rating and the best one.
	BestMatchResult = domain.BestMatchResult
	// SimilarSubstringResult is the outcome of a similar-substring search.
	SimilarSubstringResult = domain.SimilarSubstringResult
	// Normalizer rewrites text before it is compared.
	Normalizer = ports.Normalizer
)

// DefaultThreshold is the rating a substring needs to count as similar.
const DefaultThreshold = substring.DefaultThreshold

// Errors returned by New.
var (
	ErrNilNormalizer    = domain.ErrNilNormalizer
	ErrInvalidThreshold = domain.ErrInvalidThreshold
)

// StringSimilarity scores strings, picks best matches and searches for similar substrings.
type StringSimilarity struct {
	scorer   ports.Scorer
	finder   ports.MatchFinder
	searcher ports.SubstringSearcher
	logger   ports.Logger
}

// Option defines a functional option for configuring StringSimilarity.
type Option func(*config)

type config struct {
	Threshold        float64
	Logger           ports.Logger
	ScoreNormalizer  ports.Normalizer
	SearchNormalizer ports.Normalizer
	scoreSet         bool
	searchSet        bool
	discard          bool
}

// WithThreshold sets the default threshold for HasSimilarSubstring.
// Values outside [0,1] are accepted as is.
func WithThreshold(th float64) Option {
	return func(cfg *config) {
		cfg.Threshold = th
	}
}

// WithLogger sets a custom logger.
func WithLogger(l l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(l)
		cfg.discard = false
	}
}

// WithScoreNormalizer replaces the whitespace stripping applied before
// bigram scoring.
func WithScoreNormalizer(n Normalizer) Option {
	return func(cfg *config) {
		cfg.ScoreNormalizer = n
		cfg.scoreSet = true
	}
}

// WithSearchNormalizer replaces the trim, collapse and lowercase step
// applied before a substring search.
func WithSearchNormalizer(n Normalizer) Option {
	return func(cfg *config) {
		cfg.SearchNormalizer = n
		cfg.searchSet = true
	}
}

// WithDiscardLogger silences all logging.
func WithDiscardLogger() Option {
	return func(cfg *config) {
		cfg.Logger = nil
		cfg.discard = true
	}
}

// New creates a new StringSimilarity instance. Without WithLogger or
// WithDiscardLogger it logs to stdout through the standard logger.
func New(opts ...Option) (*StringSimilarity, error) {
	cfg := &config{
		Threshold: DefaultThreshold,
	}

	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.Logger == nil {
		var err error
		if cfg.discard {
			cfg.Logger, err = logger.NewDiscardLogger()
		} else {
			cfg.Logger, err = logger.NewStdLogger()
		}
		if err != nil {
			return nil, fmt.Errorf("create logger: %w", err)
		}
	}

	factory := normalizer.NewNormalizerFactory()
	if !cfg.scoreSet {
		cfg.ScoreNormalizer = factory.CreateNormalizer(normalizer.StripWhitespaceType)
	}
	if !cfg.searchSet {
		cfg.SearchNormalizer = factory.CreateNormalizer(normalizer.SearchType)
	}

	scorer, err := bigram.NewScorer(cfg.Logger, cfg.ScoreNormalizer)
	if err != nil {
		return nil, fmt.Errorf("create scorer: %w", err)
	}
	finder, err := bestmatch.NewFinder(cfg.Logger, scorer)
	if err != nil {
		return nil, fmt.Errorf("create finder: %w", err)
	}
	searcher, err := substring.NewSearcher(
		substring.SearchConfig{Threshold: cfg.Threshold},
		cfg.Logger,
		cfg.SearchNormalizer,
		finder,
	)
	if err != nil {
		return nil, fmt.Errorf("create searcher: %w", err)
	}

	cfg.Logger.Info("String similarity initialized", "threshold", cfg.Threshold)

	return &StringSimilarity{
		scorer:   scorer,
		finder:   finder,
		searcher: searcher,
		logger:   cfg.Logger,
	}, nil
}

// CompareTwoStrings returns a fraction between 0 and 1 indicating how similar
// the two strings are. Whitespace is ignored and case matters.
func (s *StringSimilarity) CompareTwoStrings(first, second string) float64 {
	return s.scorer.Compare(first, second)
}

// FindBestMatch rates each candidate against query. It returns nil when
// candidates is empty.
func (s *StringSimilarity) FindBestMatch(query string, candidates []string) *BestMatchResult {
	return s.finder.FindBestMatch(query, candidates)
}

// HasSimilarSubstring reports whether fullString contains a substring similar
// to searchString, using the configured threshold.
func (s *StringSimilarity) HasSimilarSubstring(searchString, fullString string) SimilarSubstringResult {
	return s.searcher.HasSimilarSubstring(searchString, fullString)
}

// HasSimilarSubstringWithThreshold is HasSimilarSubstring with an explicit threshold.
func (s *StringSimilarity) HasSimilarSubstringWithThreshold(searchString, fullString string, threshold float64) SimilarSubstringResult {
	return s.searcher.HasSimilarSubstringWithThreshold(searchString, fullString, threshold)
}

// Close releases the logger.
func (s *StringSimilarity) Close() error {
	return s.logger.Close()
}
