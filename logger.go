// logger.go
// Package stringsimilarity provides shared utilities for the go_string_similarity package.
package stringsimilarity

import (
	"sync"

	"github.com/baditaflorin/go_string_similarity/pkg/similarity"
)

// defaultSimilarity is built once on first use. It holds no mutable state,
// so concurrent callers can share it.
var defaultSimilarity = sync.OnceValue(func() *similarity.StringSimilarity {
	s, err := similarity.New(similarity.WithDiscardLogger())
	if err != nil {
		panic(err)
	}
	return s
})
