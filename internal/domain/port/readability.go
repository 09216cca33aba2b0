package port

import (
	"context"

	"arai-engine/internal/domain/entity"
)

// ReadabilityScorer интерфейс оценщика читаемости текста
type ReadabilityScorer interface {
	// Score оценивает читаемость извлечённого текста по шкале 0-100
	Score(ctx context.Context, blocks []entity.TextBlock) (*entity.CategoryResult, error)
}
