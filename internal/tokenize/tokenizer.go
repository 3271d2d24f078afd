package tokenize

import (
	"regexp"
	"strings"
)

// Splitter turns raw document text into lowercase sentences and sentences
// into word tokens. Sentences end at ., ! or ?; tokens are letter runs
// (internal apostrophes kept) or digit runs.
type Splitter struct {
	sentencePattern *regexp.Regexp
	wordPattern     *regexp.Regexp
}

func NewSplitter() *Splitter {
	return &Splitter{
		sentencePattern: regexp.MustCompile(`(?m)(?U)([^.!?]+[.!?])`),
		wordPattern:     regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*|\p{N}+`),
	}
}

// Sentences splits text into trimmed, lowercased sentences. Text with no
// sentence terminator is returned as a single sentence.
func (s *Splitter) Sentences(text string) []string {
	raw := s.sentencePattern.FindAllString(text, -1)
	if len(raw) == 0 {
		trimmed := strings.TrimSpace(text)
		if trimmed == "" {
			return nil
		}
		raw = []string{trimmed}
	}
	out := make([]string, 0, len(raw))
	for _, sent := range raw {
		sent = strings.ToLower(strings.TrimSpace(sent))
		if sent != "" {
			out = append(out, sent)
		}
	}
	return out
}

// Words returns the word tokens of a sentence. Input is expected to be
// lowercase already (Sentences lowercases); no further normalization happens.
func (s *Splitter) Words(sentence string) []string {
	return s.wordPattern.FindAllString(sentence, -1)
}
