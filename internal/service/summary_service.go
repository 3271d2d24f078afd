package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shrinidhir/TwiBot/internal/corpus"
	"github.com/shrinidhir/TwiBot/internal/domain"
	"github.com/shrinidhir/TwiBot/internal/summary"
)

// SummaryService generates budget-bounded extractive summaries for
// evaluation collections.
type SummaryService struct {
	tokenizer domain.Tokenizer
	ranker    domain.Ranker
	assembler *summary.Assembler
}

func NewSummaryService(tokenizer domain.Tokenizer, ranker domain.Ranker, assembler *summary.Assembler) *SummaryService {
	return &SummaryService{tokenizer: tokenizer, ranker: ranker, assembler: assembler}
}

// SummarizeCollection loads every sentence under path (a file or a
// collection directory), ranks the candidates and assembles a summary.
func (s *SummaryService) SummarizeCollection(path string) (domain.Summary, error) {
	sents, err := corpus.Sentences(path, s.tokenizer)
	if err != nil {
		return domain.Summary{}, err
	}
	return s.assembler.Assemble(s.ranker.Rank(sents))
}

// GenerateAll summarizes each collection and writes summaryNN.txt under
// outDir, returning the paths written so far.
func (s *SummaryService) GenerateAll(collections []corpus.Collection, outDir string) ([]string, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}
	var written []string
	for _, col := range collections {
		sum, err := s.SummarizeCollection(col.Dir)
		if err != nil {
			return written, fmt.Errorf("collection %02d: %w", col.Index, err)
		}
		path := filepath.Join(outDir, fmt.Sprintf("summary%02d.txt", col.Index))
		if err := os.WriteFile(path, []byte(sum.Text()), 0o644); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// Inspect reports how the assembler would treat one candidate sentence
// against an already assembled summary: its admissibility and its peak
// similarity with the accepted sentences.
func (s *SummaryService) Inspect(sum domain.Summary, sentence string) (domain.Verdict, error) {
	tokens := s.tokenizer.Words(strings.ToLower(sentence))
	opts := s.assembler.Options()

	verdict := domain.Verdict{Tokens: tokens, Nearest: -1}
	verdict.Valid = summary.IsValidLength(tokens, opts.MinSentenceLen, opts.MaxSentenceLen)
	peak, nearest, err := s.assembler.MostSimilar(tokens, sum.Sentences)
	if err != nil {
		return domain.Verdict{}, err
	}
	verdict.PeakSimilarity = peak
	verdict.Nearest = nearest
	verdict.Redundant = peak > opts.MaxSimilarity
	return verdict, nil
}
