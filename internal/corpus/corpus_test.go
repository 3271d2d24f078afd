package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shrinidhir/TwiBot/internal/tokenize"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestSentencesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.txt")
	writeFile(t, path, "The cat sat. A dog ran.")
	sents, err := Sentences(path, tokenize.NewSplitter())
	if err != nil {
		t.Fatalf("sentences failed: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sents))
	}
	if sents[0].Text != "the cat sat." {
		t.Errorf("first sentence = %q", sents[0].Text)
	}
	if len(sents[0].Tokens) != 3 {
		t.Errorf("first sentence tokens = %v", sents[0].Tokens)
	}
}

func TestSentencesFromDirectoryInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.txt"), "Second file here.")
	writeFile(t, filepath.Join(dir, "a.txt"), "First file here.")
	sents, err := Sentences(dir, tokenize.NewSplitter())
	if err != nil {
		t.Fatalf("sentences failed: %v", err)
	}
	if len(sents) != 2 {
		t.Fatalf("got %d sentences, want 2", len(sents))
	}
	if sents[0].Text != "first file here." {
		t.Errorf("sorted order broken: first = %q", sents[0].Text)
	}
}

func TestSentencesMissingPath(t *testing.T) {
	_, err := Sentences(filepath.Join(t.TempDir(), "missing"), tokenize.NewSplitter())
	if err == nil {
		t.Fatal("expected error for missing path")
	}
}

func TestCollectionsPairsByIndex(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "input")
	models := filepath.Join(root, "models")
	baseline := filepath.Join(root, "baseline")

	writeFile(t, filepath.Join(input, "c00", "doc1.txt"), "Doc one.")
	writeFile(t, filepath.Join(input, "c00", "doc2.txt"), "Doc two.")
	writeFile(t, filepath.Join(input, "c01", "doc1.txt"), "Other doc.")
	writeFile(t, filepath.Join(models, "c00", "model1.txt"), "Model.")
	writeFile(t, filepath.Join(models, "c01", "model1.txt"), "Model.")
	writeFile(t, filepath.Join(baseline, "baseline00.txt"), "Baseline.")
	writeFile(t, filepath.Join(baseline, "baseline01.txt"), "Baseline.")

	cols, err := Collections(input, models, baseline)
	if err != nil {
		t.Fatalf("collections failed: %v", err)
	}
	if len(cols) != 2 {
		t.Fatalf("got %d collections, want 2", len(cols))
	}
	if cols[0].Index != 0 || cols[1].Index != 1 {
		t.Errorf("indices = %d, %d", cols[0].Index, cols[1].Index)
	}
	if len(cols[0].Docs) != 2 {
		t.Errorf("collection 0 docs = %v", cols[0].Docs)
	}
	if len(cols[0].Models) != 1 {
		t.Errorf("collection 0 models = %v", cols[0].Models)
	}
	if filepath.Base(cols[1].Baseline) != "baseline01.txt" {
		t.Errorf("collection 1 baseline = %q", cols[1].Baseline)
	}
}

func TestCollectionsMissingReferenceTrees(t *testing.T) {
	root := t.TempDir()
	input := filepath.Join(root, "input")
	writeFile(t, filepath.Join(input, "c00", "doc1.txt"), "Doc one.")

	cols, err := Collections(input, filepath.Join(root, "models"), filepath.Join(root, "baseline"))
	if err != nil {
		t.Fatalf("collections failed: %v", err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d collections, want 1", len(cols))
	}
	if len(cols[0].Models) != 0 || cols[0].Baseline != "" {
		t.Errorf("expected empty reference fields, got %+v", cols[0])
	}
}
