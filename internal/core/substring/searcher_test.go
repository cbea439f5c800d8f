package substring

import (
	"math"
	"testing"

	"github.com/baditaflorin/go_string_similarity/internal/adapters/logger"
	"github.com/baditaflorin/go_string_similarity/internal/adapters/normalizer"
	"github.com/baditaflorin/go_string_similarity/internal/core/bestmatch"
	"github.com/baditaflorin/go_string_similarity/internal/core/bigram"
	"github.com/baditaflorin/go_string_similarity/internal/core/domain"
	"github.com/baditaflorin/go_string_similarity/internal/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// emptyFinder never finds anything.
type emptyFinder struct{}

func (emptyFinder) FindBestMatch(string, []string) *domain.BestMatchResult { return nil }

func newTestLogger(t *testing.T) ports.Logger {
	t.Helper()
	lg, err := logger.NewDiscardLogger()
	require.NoError(t, err)
	t.Cleanup(func() { _ = lg.Close() })
	return lg
}

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	lg := newTestLogger(t)

	scorer, err := bigram.NewScorer(lg, normalizer.NewWhitespaceStripper())
	require.NoError(t, err)
	finder, err := bestmatch.NewFinder(lg, scorer)
	require.NoError(t, err)
	s, err := NewSearcher(DefaultConfig(), lg, normalizer.NewSearchNormalizer(), finder)
	require.NoError(t, err)
	return s
}

func strPtr(s string) *string { return &s }

func TestHasSimilarSubstring(t *testing.T) {
	tests := []struct {
		name     string
		search   string
		full     string
		expected domain.SimilarSubstringResult
	}{
		{
			name:   "Sliding window match",
			search: "lin Pack",
			full:   "My name is Carlin Jackson",
			expected: domain.SimilarSubstringResult{
				Result:       0.6666666666666666,
				IsSimilar:    true,
				SearchString: "lin pack",
				FullString:   "my name is carlin jackson",
				Threshold:    DefaultThreshold,
				SubString:    strPtr("lin jack"),
			},
		},
		{
			name:   "Window scored without whitespace",
			search: "healed",
			full:   "the wound has sealed up",
			expected: domain.SimilarSubstringResult{
				Result:       0.8888888888888888,
				IsSimilar:    true,
				SearchString: "healed",
				FullString:   "the wound has sealed up",
				Threshold:    DefaultThreshold,
				SubString:    strPtr("ealed "),
			},
		},
		{
			name:   "Exact match after normalization",
			search: "  Hello   World ",
			full:   "say HELLO\tworld again",
			expected: domain.SimilarSubstringResult{
				Result:       1,
				IsSimilar:    true,
				SearchString: "hello world",
				FullString:   "say hello world again",
				Threshold:    DefaultThreshold,
				SubString:    strPtr("hello world"),
			},
		},
		{
			name:   "No similar window",
			search: "xyz",
			full:   "abcdef",
			expected: domain.SimilarSubstringResult{
				Result:       0,
				IsSimilar:    false,
				SearchString: "xyz",
				FullString:   "abcdef",
				Threshold:    DefaultThreshold,
				SubString:    strPtr("abc"),
			},
		},
		{
			name:   "Search longer than full",
			search: "abc",
			full:   "ab",
			expected: domain.SimilarSubstringResult{
				SearchString: "abc",
				FullString:   "ab",
				Threshold:    DefaultThreshold,
			},
		},
		{
			name:   "Empty search",
			search: " \t ",
			full:   "abc",
			expected: domain.SimilarSubstringResult{
				SearchString: "",
				FullString:   "abc",
				Threshold:    DefaultThreshold,
			},
		},
		{
			name:   "Empty full",
			search: "abc",
			full:   "",
			expected: domain.SimilarSubstringResult{
				SearchString: "abc",
				FullString:   "",
				Threshold:    DefaultThreshold,
			},
		},
	}

	s := newTestSearcher(t)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := s.HasSimilarSubstring(tc.search, tc.full)
			assert.Equal(t, tc.expected, result)
			assert.True(t, tc.expected.Equal(result), "got %s", result)
		})
	}
}

func TestHasSimilarSubstringThresholdBoundary(t *testing.T) {
	s := newTestSearcher(t)

	atBoundary := s.HasSimilarSubstringWithThreshold("lin Pack", "My name is Carlin Jackson", 0.6666666666666666)
	assert.Equal(t, 0.6666666666666666, atBoundary.Result)
	assert.True(t, atBoundary.IsSimilar)

	above := s.HasSimilarSubstringWithThreshold("lin Pack", "My name is Carlin Jackson", 0.67)
	assert.False(t, above.IsSimilar)
	assert.Equal(t, 0.67, above.Threshold)
	sub, ok := above.Matched()
	assert.True(t, ok)
	assert.Equal(t, "lin jack", sub)
}

func TestHasSimilarSubstringThresholdNotClamped(t *testing.T) {
	s := newTestSearcher(t)

	negative := s.HasSimilarSubstringWithThreshold("xyz", "abcdef", -1)
	assert.True(t, negative.IsSimilar)
	assert.Equal(t, -1.0, negative.Threshold)

	tooHigh := s.HasSimilarSubstringWithThreshold("lin Pack", "My name is Carlin Jackson", 1.5)
	assert.False(t, tooHigh.IsSimilar)

	// Degenerate inputs are never similar, whatever the threshold.
	degenerate := s.HasSimilarSubstringWithThreshold("abc", "ab", -1)
	assert.False(t, degenerate.IsSimilar)
	_, ok := degenerate.Matched()
	assert.False(t, ok)

	// An exact match is always similar.
	exact := s.HasSimilarSubstringWithThreshold("carlin", "My name is Carlin Jackson", 1.5)
	assert.True(t, exact.IsSimilar)
	assert.Equal(t, 1.0, exact.Result)
}

func TestHasSimilarSubstringWindowsUseRunes(t *testing.T) {
	s := newTestSearcher(t)

	result := s.HasSimilarSubstring("crème", "une crime brûlée")
	sub, ok := result.Matched()
	require.True(t, ok)
	assert.Equal(t, "crime", sub)
	assert.Equal(t, 0.5, result.Result)
}

func TestHasSimilarSubstringWithoutMatch(t *testing.T) {
	s, err := NewSearcher(DefaultConfig(), newTestLogger(t), normalizer.NewSearchNormalizer(), emptyFinder{})
	require.NoError(t, err)

	result := s.HasSimilarSubstringWithThreshold("xyz", "abcdef", 0)
	assert.Equal(t, 0.0, result.Result)
	assert.True(t, result.IsSimilar)
	assert.Nil(t, result.SubString)
}

func TestSearchConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.NoError(t, SearchConfig{Threshold: -3}.Validate())
	assert.NoError(t, SearchConfig{Threshold: 7}.Validate())
	assert.ErrorIs(t, SearchConfig{Threshold: math.NaN()}.Validate(), domain.ErrInvalidThreshold)
}

func TestNewSearcherRejectsInvalidInput(t *testing.T) {
	lg := newTestLogger(t)
	norm := normalizer.NewSearchNormalizer()

	_, err := NewSearcher(SearchConfig{Threshold: math.NaN()}, lg, norm, emptyFinder{})
	assert.ErrorIs(t, err, domain.ErrInvalidThreshold)

	_, err = NewSearcher(DefaultConfig(), nil, norm, emptyFinder{})
	assert.ErrorIs(t, err, domain.ErrNilLogger)

	_, err = NewSearcher(DefaultConfig(), lg, nil, emptyFinder{})
	assert.ErrorIs(t, err, domain.ErrNilNormalizer)

	_, err = NewSearcher(DefaultConfig(), lg, norm, nil)
	assert.ErrorIs(t, err, domain.ErrNilFinder)
}
