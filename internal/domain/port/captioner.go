package port

import (
	"context"
	"image"

	"arai-engine/internal/domain/entity"
)

// Captioner интерфейс генератора подписей для изображений без alt-текста
type Captioner interface {
	// Suggest генерирует черновик alt-текста для элемента на скриншоте
	Suggest(ctx context.Context, img image.Image, el entity.UIElement) (string, error)
}
