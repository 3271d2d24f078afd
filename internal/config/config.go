package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// CorpusConfig locates the evaluation tree: input collections, reference
// summaries, baseline summaries and where generated summaries are written.
type CorpusConfig struct {
	InputRoot    string `yaml:"input_root"`
	ModelsRoot   string `yaml:"models_root"`
	BaselineRoot string `yaml:"baseline_root"`
	OutputRoot   string `yaml:"output_root"`
}

// VectorizerConfig selects the sentence vectorization strategy.
type VectorizerConfig struct {
	Type    string `yaml:"type"`     // binary, frequency or tfidf
	IDFFile string `yaml:"idf_file"` // weight table consulted by tfidf
}

// RankerConfig selects the candidate-ordering strategy.
type RankerConfig struct {
	Type string `yaml:"type"` // position or frequency
}

// SummaryConfig bounds the assembled summary.
type SummaryConfig struct {
	BudgetWords    int     `yaml:"budget_words"`
	MaxSimilarity  float64 `yaml:"max_similarity"`
	MinSentenceLen int     `yaml:"min_sentence_len"`
	MaxSentenceLen int     `yaml:"max_sentence_len"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Vectorizer VectorizerConfig `yaml:"vectorizer"`
	Ranker     RankerConfig     `yaml:"ranker"`
	Summary    SummaryConfig    `yaml:"summary"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/twibot/config.yaml.
// If neither exists, it writes defaults to ~/.config/twibot/config.yaml and
// returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "twibot", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		Corpus: CorpusConfig{
			InputRoot:    "input",
			ModelsRoot:   filepath.Join("rouge", "models"),
			BaselineRoot: filepath.Join("rouge", "baseline"),
			OutputRoot:   filepath.Join("rouge", "system"),
		},
		Vectorizer: VectorizerConfig{Type: "tfidf", IDFFile: "bgIdfValues.unstemmed.txt"},
		Ranker:     RankerConfig{Type: "position"},
		Summary: SummaryConfig{
			BudgetWords:    100,
			MaxSimilarity:  0.4,
			MinSentenceLen: 5,
			MaxSentenceLen: 200,
		},
	}
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Corpus.InputRoot == "" {
		cfg.Corpus.InputRoot = def.Corpus.InputRoot
	}
	if cfg.Corpus.ModelsRoot == "" {
		cfg.Corpus.ModelsRoot = def.Corpus.ModelsRoot
	}
	if cfg.Corpus.BaselineRoot == "" {
		cfg.Corpus.BaselineRoot = def.Corpus.BaselineRoot
	}
	if cfg.Corpus.OutputRoot == "" {
		cfg.Corpus.OutputRoot = def.Corpus.OutputRoot
	}
	if cfg.Vectorizer.Type == "tfidf" || cfg.Vectorizer.Type == "" {
		if cfg.Vectorizer.IDFFile == "" {
			cfg.Vectorizer.IDFFile = def.Vectorizer.IDFFile
		}
	}
	if cfg.Summary.BudgetWords == 0 {
		cfg.Summary.BudgetWords = def.Summary.BudgetWords
	}
	if cfg.Summary.MaxSimilarity == 0 {
		cfg.Summary.MaxSimilarity = def.Summary.MaxSimilarity
	}
	if cfg.Summary.MinSentenceLen == 0 {
		cfg.Summary.MinSentenceLen = def.Summary.MinSentenceLen
	}
	if cfg.Summary.MaxSentenceLen == 0 {
		cfg.Summary.MaxSentenceLen = def.Summary.MaxSentenceLen
	}
}
