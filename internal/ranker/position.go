package ranker

import "github.com/shrinidhir/TwiBot/internal/domain"

// Position keeps candidates in document order.
type Position struct{}

func NewPosition() Position { return Position{} }

func (Position) Rank(sentences []domain.Sentence) []domain.Sentence {
	out := make([]domain.Sentence, len(sentences))
	copy(out, sentences)
	return out
}
