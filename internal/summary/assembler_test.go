package summary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/shrinidhir/TwiBot/internal/domain"
	"github.com/shrinidhir/TwiBot/internal/vector"
)

func sent(tokens ...string) domain.Sentence {
	return domain.Sentence{Text: strings.Join(tokens, " ") + ".", Tokens: tokens}
}

// disjointSentence builds a sentence of n tokens sharing no vocabulary with
// any other prefix, so pairwise similarity is always 0.
func disjointSentence(prefix string, n int) domain.Sentence {
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("%s%d", prefix, i)
	}
	return sent(tokens...)
}

func TestIsValidLength(t *testing.T) {
	cases := []struct {
		n    int
		want bool
	}{
		{4, false},
		{5, true},
		{200, true},
		{201, false},
	}
	for _, c := range cases {
		tokens := make([]string, c.n)
		if got := IsValidLength(tokens, 5, 200); got != c.want {
			t.Errorf("IsValidLength(%d tokens) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestRedundantOverlappingSentences(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	redundant, err := a.Redundant(
		[]string{"the", "cat", "sat"},
		[]domain.Sentence{sent("the", "cat", "sits")},
	)
	if err != nil {
		t.Fatalf("redundancy check failed: %v", err)
	}
	if !redundant {
		t.Error("expected 2/3 similarity to exceed the 0.4 cutoff")
	}
}

func TestRedundantEmptyAcceptedSet(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	redundant, err := a.Redundant([]string{"the", "cat", "sat"}, nil)
	if err != nil {
		t.Fatalf("redundancy check failed: %v", err)
	}
	if redundant {
		t.Error("nothing accepted yet, candidate cannot be redundant")
	}
}

func TestAcceptedSentenceIsRedundantWithItself(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	s := sent("storms", "battered", "the", "northern", "coast")
	sum, err := a.Assemble([]domain.Sentence{s})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(sum.Sentences) != 1 {
		t.Fatalf("expected the sentence to be accepted, got %d", len(sum.Sentences))
	}
	redundant, err := a.Redundant(s.Tokens, sum.Sentences)
	if err != nil {
		t.Fatalf("redundancy check failed: %v", err)
	}
	if !redundant {
		t.Error("a sentence must be redundant with itself once accepted")
	}
}

func TestAssembleEmptyCandidates(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	sum, err := a.Assemble(nil)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(sum.Sentences) != 0 || sum.WordCount != 0 || sum.Text() != "" {
		t.Errorf("expected empty summary, got %+v", sum)
	}
}

func TestAssembleZeroBudget(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 0})
	sum, err := a.Assemble([]domain.Sentence{disjointSentence("a", 10)})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(sum.Sentences) != 0 {
		t.Errorf("zero budget must yield an empty summary, got %d sentences", len(sum.Sentences))
	}
}

func TestAssembleStopsAfterBudgetReached(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 25})
	candidates := []domain.Sentence{
		disjointSentence("a", 10),
		disjointSentence("b", 10),
		disjointSentence("c", 10),
		disjointSentence("d", 10),
	}
	sum, err := a.Assemble(candidates)
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	// 10, 20, still under 25, then 30: the third sentence crosses the budget
	// and nothing is added after it.
	if len(sum.Sentences) != 3 {
		t.Fatalf("accepted %d sentences, want 3", len(sum.Sentences))
	}
	if sum.WordCount != 30 {
		t.Errorf("word count = %d, want 30", sum.WordCount)
	}
}

func TestAssembleSkipsInvalidLengths(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 300})
	tooShort := disjointSentence("s", 4)
	tooLong := disjointSentence("l", 201)
	ok := disjointSentence("m", 6)
	sum, err := a.Assemble([]domain.Sentence{tooShort, tooLong, ok})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(sum.Sentences) != 1 || sum.Sentences[0].Text != ok.Text {
		t.Fatalf("expected only the 6-token sentence, got %d sentences", len(sum.Sentences))
	}
}

func TestAssembleSkipsDuplicates(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	s := sent("storms", "battered", "the", "northern", "coast")
	other := disjointSentence("x", 6)
	sum, err := a.Assemble([]domain.Sentence{s, s, other})
	if err != nil {
		t.Fatalf("assemble failed: %v", err)
	}
	if len(sum.Sentences) != 2 {
		t.Fatalf("accepted %d sentences, want 2 (duplicate skipped)", len(sum.Sentences))
	}
	if sum.WordCount != 11 {
		t.Errorf("word count = %d, want 11", sum.WordCount)
	}
}

func TestMostSimilarReportsClosestSentence(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	accepted := []domain.Sentence{
		disjointSentence("z", 5),
		sent("the", "cat", "sits"),
	}
	sim, idx, err := a.MostSimilar([]string{"the", "cat", "sat"}, accepted)
	if err != nil {
		t.Fatalf("most similar failed: %v", err)
	}
	if idx != 1 {
		t.Errorf("nearest index = %d, want 1", idx)
	}
	if sim <= 0.4 {
		t.Errorf("similarity = %f, want > 0.4", sim)
	}
}

func TestMostSimilarEmptyAcceptedSet(t *testing.T) {
	a := New(vector.Binary{}, Options{BudgetWords: 100})
	sim, idx, err := a.MostSimilar([]string{"the", "cat"}, nil)
	if err != nil {
		t.Fatalf("most similar failed: %v", err)
	}
	if idx != -1 || sim != 0 {
		t.Errorf("got (%f, %d), want (0, -1)", sim, idx)
	}
}
