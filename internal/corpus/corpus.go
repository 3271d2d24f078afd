package corpus

import (
	"os"
	"path/filepath"

	"github.com/shrinidhir/TwiBot/internal/domain"
)

// Collection pairs one input document set with its reference material for
// offline evaluation: human-written model summaries and a baseline summary.
type Collection struct {
	Index    int
	Dir      string   // directory holding the collection's documents
	Docs     []string // document files inside Dir
	Models   []string // reference summary files
	Baseline string   // baseline summary file, empty if absent
}

// Sentences loads lowercase tokenized sentences from path. A regular file is
// read directly; a directory is treated as a collection and every file in it
// is read in sorted name order.
func Sentences(path string, tok domain.Tokenizer) ([]domain.Sentence, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return collectionSentences(path, tok)
	}
	return fileSentences(path, tok)
}

func fileSentences(path string, tok domain.Tokenizer) ([]domain.Sentence, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var sents []domain.Sentence
	for _, text := range tok.Sentences(string(data)) {
		sents = append(sents, domain.Sentence{Text: text, Tokens: tok.Words(text)})
	}
	return sents, nil
}

func collectionSentences(dir string, tok domain.Tokenizer) ([]domain.Sentence, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var sents []domain.Sentence
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		fileSents, err := fileSentences(filepath.Join(dir, entry.Name()), tok)
		if err != nil {
			return nil, err
		}
		sents = append(sents, fileSents...)
	}
	return sents, nil
}

// Collections enumerates evaluation collections: the i-th directory under
// inputRoot is paired with the i-th directory under modelsRoot and the i-th
// file under baselineRoot. Missing model or baseline entries leave the
// fields empty rather than failing, since generation only needs the inputs.
func Collections(inputRoot, modelsRoot, baselineRoot string) ([]Collection, error) {
	inputs, err := ls(inputRoot)
	if err != nil {
		return nil, err
	}
	models, err := ls(modelsRoot)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}
	baselines, err := ls(baselineRoot)
	if err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	cols := make([]Collection, 0, len(inputs))
	for i, dir := range inputs {
		col := Collection{Index: i, Dir: dir}
		col.Docs, err = ls(dir)
		if err != nil {
			return nil, err
		}
		if i < len(models) {
			col.Models, err = ls(models[i])
			if err != nil {
				return nil, err
			}
		}
		if i < len(baselines) {
			col.Baseline = baselines[i]
		}
		cols = append(cols, col)
	}
	return cols, nil
}

// ls returns the full paths of dir's entries in sorted name order.
func ls(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}
