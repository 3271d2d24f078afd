package ranker

import (
	"math"
	"sort"

	"github.com/shrinidhir/TwiBot/internal/domain"
)

// Frequency orders candidates by normalized word frequency: sentences dense
// in the collection's common content words come first. Stopwords are ignored
// and scores are scaled by sqrt of content length to avoid favoring long
// sentences. Ties keep document order.
type Frequency struct {
	stopwords map[string]struct{}
}

func NewFrequency() *Frequency {
	return &Frequency{stopwords: defaultStopwords()}
}

func (r *Frequency) Rank(sentences []domain.Sentence) []domain.Sentence {
	// Compute word frequencies across the whole candidate set
	freq := map[string]float64{}
	for _, sent := range sentences {
		for _, tok := range sent.Tokens {
			if _, ok := r.stopwords[tok]; ok {
				continue
			}
			freq[tok]++
		}
	}
	// Normalize frequencies
	maxF := 0.0
	for _, v := range freq {
		if v > maxF {
			maxF = v
		}
	}
	if maxF > 0 {
		for k, v := range freq {
			freq[k] = v / maxF
		}
	}
	// Score sentences
	type pair struct {
		idx   int
		score float64
	}
	scores := make([]pair, len(sentences))
	for i, sent := range sentences {
		sscore := 0.0
		content := 0
		for _, tok := range sent.Tokens {
			if _, ok := r.stopwords[tok]; ok {
				continue
			}
			sscore += freq[tok]
			content++
		}
		if content > 0 {
			sscore /= math.Sqrt(float64(content))
		}
		scores[i] = pair{i, sscore}
	}
	sort.SliceStable(scores, func(i, j int) bool { return scores[i].score > scores[j].score })
	out := make([]domain.Sentence, len(sentences))
	for i, p := range scores {
		out[i] = sentences[p.idx]
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "again", "further", "than", "so", "such", "into", "about", "between", "through", "during", "before", "after", "above", "below", "out", "off", "own", "same", "too", "very", "can", "will", "just", "don", "should", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
