package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"github.com/shrinidhir/TwiBot/internal/config"
	"github.com/shrinidhir/TwiBot/internal/domain"
	"github.com/shrinidhir/TwiBot/internal/idf"
	"github.com/shrinidhir/TwiBot/internal/ranker"
	"github.com/shrinidhir/TwiBot/internal/service"
	"github.com/shrinidhir/TwiBot/internal/summary"
	"github.com/shrinidhir/TwiBot/internal/tokenize"
	"github.com/shrinidhir/TwiBot/internal/tui"
	"github.com/shrinidhir/TwiBot/internal/vector"
)

func main() {
	_ = godotenv.Load()

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/twibot/config.yaml if not provided)")
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Println("Usage: summary-browser [--config=config.yaml] <collection dir or file>")
		os.Exit(1)
	}

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

	sum, err := svc.SummarizeCollection(flag.Arg(0))
	if err != nil {
		log.Fatalf("summarization failed: %v", err)
	}

	m := tui.New(svc, sum, cfg.Summary.BudgetWords)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		log.Fatal(err)
	}
}
