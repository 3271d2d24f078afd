package summary

import (
	"github.com/shrinidhir/TwiBot/internal/domain"
	"github.com/shrinidhir/TwiBot/internal/vector"
)

// Admission bounds and duplication cutoff used when Options leaves them unset.
const (
	DefaultMinSentenceLen = 5
	DefaultMaxSentenceLen = 200
	DefaultMaxSimilarity  = 0.4
)

// IsValidLength reports whether a tokenized sentence is admissible: its
// token count falls within [min, max] inclusive.
func IsValidLength(tokens []string, min, max int) bool {
	return min <= len(tokens) && len(tokens) <= max
}

// Options configures an Assembler. BudgetWords is the maximum cumulative
// token count of the summary; MaxSimilarity is the cosine similarity above
// which a candidate is rejected as a duplicate.
type Options struct {
	BudgetWords    int
	MaxSimilarity  float64
	MinSentenceLen int
	MaxSentenceLen int
}

// Assembler accepts candidate sentences in the order given until the word
// budget is exhausted, skipping sentences that are too short, too long, or
// too similar to one already accepted. It never reorders candidates.
type Assembler struct {
	vectorizer domain.Vectorizer
	opts       Options
}

func New(vectorizer domain.Vectorizer, opts Options) *Assembler {
	if opts.MaxSimilarity <= 0 {
		opts.MaxSimilarity = DefaultMaxSimilarity
	}
	if opts.MinSentenceLen <= 0 {
		opts.MinSentenceLen = DefaultMinSentenceLen
	}
	if opts.MaxSentenceLen <= 0 {
		opts.MaxSentenceLen = DefaultMaxSentenceLen
	}
	return &Assembler{vectorizer: vectorizer, opts: opts}
}

// Options returns the effective options after defaults were applied.
func (a *Assembler) Options() Options { return a.opts }

// Redundant reports whether candidate duplicates content already in
// accepted: true as soon as any pairwise cosine similarity strictly exceeds
// the cutoff. Query-only; accepted is never mutated.
func (a *Assembler) Redundant(candidate []string, accepted []domain.Sentence) (bool, error) {
	for _, other := range accepted {
		sim, err := vector.TokenCosine(candidate, other.Tokens, a.vectorizer)
		if err != nil {
			return false, err
		}
		if sim > a.opts.MaxSimilarity {
			return true, nil
		}
	}
	return false, nil
}

// MostSimilar returns the peak pairwise similarity between candidate and the
// accepted sentences, with the index of the closest one (-1 when accepted is
// empty). Unlike Redundant it scans the whole accepted set.
func (a *Assembler) MostSimilar(candidate []string, accepted []domain.Sentence) (float64, int, error) {
	best, bestIdx := 0.0, -1
	for i, other := range accepted {
		sim, err := vector.TokenCosine(candidate, other.Tokens, a.vectorizer)
		if err != nil {
			return 0, -1, err
		}
		if bestIdx == -1 || sim > best {
			best, bestIdx = sim, i
		}
	}
	return best, bestIdx, nil
}

// Assemble runs the selection loop over candidates, in order: stop once the
// accumulated word count reaches the budget, skip invalid-length candidates,
// skip candidates redundant with the accepted set so far, accept the rest.
// An empty candidate stream or a zero budget yields an empty summary.
// A similarity error aborts the run; it means mismatched feature spaces,
// which this loop can never produce itself.
func (a *Assembler) Assemble(candidates []domain.Sentence) (domain.Summary, error) {
	var sum domain.Summary
	for _, cand := range candidates {
		if sum.WordCount >= a.opts.BudgetWords {
			break
		}
		if !IsValidLength(cand.Tokens, a.opts.MinSentenceLen, a.opts.MaxSentenceLen) {
			continue
		}
		redundant, err := a.Redundant(cand.Tokens, sum.Sentences)
		if err != nil {
			return domain.Summary{}, err
		}
		if redundant {
			continue
		}
		sum.Sentences = append(sum.Sentences, cand)
		sum.WordCount += len(cand.Tokens)
	}
	return sum, nil
}
