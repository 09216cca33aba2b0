package port

import (
	"context"
	"image"

	"arai-engine/internal/domain/entity"
)

// SaliencyPredictor интерфейс модели предсказания заметности
type SaliencyPredictor interface {
	// Predict строит карту заметности в координатах исходного изображения.
	// Значения карты нормированы к [0,1]. Результат детерминирован.
	Predict(ctx context.Context, img image.Image) (*entity.SaliencyMap, error)

	// Name возвращает идентификатор модели для логов и ключей кэша
	Name() string
}
