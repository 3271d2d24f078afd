package domain

import "strings"

// Sentence is one tokenized sentence from a collection document. Tokens are
// lowercase; identity for similarity purposes is the token content alone,
// not the source position.
type Sentence struct {
	Text   string
	Tokens []string
}

// Summary is the ordered list of sentences accepted by the assembler,
// together with the running token count that was charged against the budget.
type Summary struct {
	Sentences []Sentence
	WordCount int
}

// Text renders the summary as the accepted sentences joined by newlines,
// in acceptance order.
func (s Summary) Text() string {
	lines := make([]string, len(s.Sentences))
	for i, sent := range s.Sentences {
		lines[i] = sent.Text
	}
	return strings.Join(lines, "\n")
}

// Verdict describes how the assembler would treat one probe sentence
// against an already assembled summary.
type Verdict struct {
	Tokens         []string
	Valid          bool
	Redundant      bool
	PeakSimilarity float64
	Nearest        int // index of the most similar accepted sentence, -1 if none
}

// Vectorizer maps a token sequence into a numeric vector over a shared
// feature space. Implementations must produce one coordinate per feature,
// in feature order.
type Vectorizer interface {
	Name() string
	Vectorize(space, tokens []string) []float64
}

// Tokenizer splits raw document text into lowercase sentences and a
// sentence into its word tokens.
type Tokenizer interface {
	Sentences(text string) []string
	Words(sentence string) []string
}

// Ranker orders candidate sentences for the assembler. The assembler never
// reorders; it consumes candidates exactly as ranked.
type Ranker interface {
	Rank(sentences []Sentence) []Sentence
}
