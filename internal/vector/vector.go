package vector

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/shrinidhir/TwiBot/internal/domain"
	"github.com/shrinidhir/TwiBot/internal/idf"
)

// ErrDimensionMismatch reports an attempt to compare vectors built over
// different feature spaces. Always a caller contract violation.
var ErrDimensionMismatch = errors.New("vectors are not the same length")

// FeatureSpace returns the sorted set of distinct tokens from both
// sentences. The canonical order makes vector positions deterministic, so
// two vectors built over the same pair of sentences are comparable.
func FeatureSpace(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, t := range a {
		set[t] = struct{}{}
	}
	for _, t := range b {
		set[t] = struct{}{}
	}
	space := make([]string, 0, len(set))
	for t := range set {
		space = append(space, t)
	}
	sort.Strings(space)
	return space
}

// Binary marks presence: coordinate i is 1 if space[i] occurs anywhere in
// the sentence, else 0.
type Binary struct{}

func (Binary) Name() string { return "binary" }

func (Binary) Vectorize(space, tokens []string) []float64 {
	present := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		present[t] = struct{}{}
	}
	vec := make([]float64, len(space))
	for i, point := range space {
		if _, ok := present[point]; ok {
			vec[i] = 1
		}
	}
	return vec
}

// Frequency counts occurrences: coordinate i is the number of times space[i]
// appears in the sentence.
type Frequency struct{}

func (Frequency) Name() string { return "frequency" }

func (Frequency) Vectorize(space, tokens []string) []float64 {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	vec := make([]float64, len(space))
	for i, point := range space {
		vec[i] = float64(counts[point])
	}
	return vec
}

// TFIDF scales raw term frequency by the background-corpus IDF weight.
// Tokens absent from the table weigh 0.
type TFIDF struct {
	Table idf.Table
}

func (TFIDF) Name() string { return "tfidf" }

func (v TFIDF) Vectorize(space, tokens []string) []float64 {
	vec := Frequency{}.Vectorize(space, tokens)
	for i, point := range space {
		vec[i] *= v.Table.Weight(point)
	}
	return vec
}

// Cosine returns the cosine similarity of two non-negative vectors, in
// [0,1]: the dot product divided by the product of the Euclidean norms.
// A zero-norm vector has no direction; its similarity to anything,
// including another zero vector, is 0.
func Cosine(x, y []float64) (float64, error) {
	if len(x) != len(y) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(x), len(y))
	}
	var dot, nx, ny float64
	for i := range x {
		dot += x[i] * y[i]
		nx += x[i] * x[i]
		ny += y[i] * y[i]
	}
	if nx == 0 || ny == 0 {
		return 0, nil
	}
	return dot / (math.Sqrt(nx) * math.Sqrt(ny)), nil
}

// TokenCosine compares two token sequences directly: it builds their shared
// feature space, vectorizes both under v and delegates to Cosine. The space
// is pairwise and discarded after the comparison.
func TokenCosine(a, b []string, v domain.Vectorizer) (float64, error) {
	space := FeatureSpace(a, b)
	return Cosine(v.Vectorize(space, a), v.Vectorize(space, b))
}
