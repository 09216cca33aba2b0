package port

import (
	"image"

	"arai-engine/internal/domain/entity"
)

// SaliencyCache интерфейс кэша карт заметности
type SaliencyCache interface {
	// Get возвращает карту для пары изображение-предсказатель, если она в кэше
	Get(img image.Image, predictor string) (*entity.SaliencyMap, bool)

	// Put сохраняет карту для пары изображение-предсказатель
	Put(img image.Image, predictor string, m *entity.SaliencyMap)
}
