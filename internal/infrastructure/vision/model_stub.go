//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"errors"
	"image"

	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/port"
)

// ONNXPredictor — заглушка предсказателя для сборки без OpenCV.
type ONNXPredictor struct {
	InputSize int
}

var _ port.SaliencyPredictor = (*ONNXPredictor)(nil)

// NewONNXPredictor создаёт заглушку (без OpenCV).
func NewONNXPredictor(modelPath string) (*ONNXPredictor, error) {
	_ = modelPath
	return &ONNXPredictor{InputSize: 256}, nil
}

// Name возвращает идентификатор предсказателя.
func (p *ONNXPredictor) Name() string { return "onnx" }

// Close ничего не освобождает в сборке без OpenCV.
func (p *ONNXPredictor) Close() error { return nil }

// Predict возвращает ошибку, если сборка без тега gocv.
func (p *ONNXPredictor) Predict(ctx context.Context, img image.Image) (*entity.SaliencyMap, error) {
	_ = ctx
	_ = img
	return nil, errors.New("gocv build tag is not enabled")
}
