package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shrinidhir/TwiBot/internal/config"
	"github.com/shrinidhir/TwiBot/internal/corpus"
	"github.com/shrinidhir/TwiBot/internal/domain"
	"github.com/shrinidhir/TwiBot/internal/idf"
	"github.com/shrinidhir/TwiBot/internal/ranker"
	"github.com/shrinidhir/TwiBot/internal/service"
	"github.com/shrinidhir/TwiBot/internal/summary"
	"github.com/shrinidhir/TwiBot/internal/tokenize"
	"github.com/shrinidhir/TwiBot/internal/vector"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/twibot/config.yaml if not provided)")
	start := flag.Int("start", 0, "First collection index to summarize")
	end := flag.Int("end", -1, "Collection index to stop before (-1 = all)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Assemble components
	var vect domain.Vectorizer
	switch cfg.Vectorizer.Type {
	case "tfidf", "":
		table, err := idf.Load(cfg.Vectorizer.IDFFile)
		if err != nil {
			log.Fatalf("failed to load idf weights: %v", err)
		}
		vect = vector.TFIDF{Table: table}
	case "frequency":
		vect = vector.Frequency{}
	case "binary":
		vect = vector.Binary{}
	default:
		log.Fatalf("unknown vectorizer: %s", cfg.Vectorizer.Type)
	}

	var rank domain.Ranker
	switch cfg.Ranker.Type {
	case "position", "":
		rank = ranker.NewPosition()
	case "frequency":
		rank = ranker.NewFrequency()
	default:
		log.Fatalf("unknown ranker: %s", cfg.Ranker.Type)
	}

	asm := summary.New(vect, summary.Options{
		BudgetWords:    cfg.Summary.BudgetWords,
		MaxSimilarity:  cfg.Summary.MaxSimilarity,
		MinSentenceLen: cfg.Summary.MinSentenceLen,
		MaxSentenceLen: cfg.Summary.MaxSentenceLen,
	})
	svc := service.NewSummaryService(tokenize.NewSplitter(), rank, asm)

	cols, err := corpus.Collections(cfg.Corpus.InputRoot, cfg.Corpus.ModelsRoot, cfg.Corpus.BaselineRoot)
	if err != nil {
		log.Fatalf("failed to enumerate collections: %v", err)
	}
	if len(cols) == 0 {
		fmt.Printf("No collections found under %s\n", cfg.Corpus.InputRoot)
		os.Exit(1)
	}
	lo, hi := *start, *end
	if hi < 0 || hi > len(cols) {
		hi = len(cols)
	}
	if lo < 0 || lo > hi {
		log.Fatalf("invalid collection range [%d, %d)", lo, hi)
	}

	written, err := svc.GenerateAll(cols[lo:hi], cfg.Corpus.OutputRoot)
	if err != nil {
		log.Fatalf("generation failed: %v", err)
	}
	for _, path := range written {
		log.Printf("wrote %s", path)
	}
}
