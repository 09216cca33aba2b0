//go:build gocv
// +build gocv

package vision

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"gocv.io/x/gocv"

	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/port"
)

// ONNXPredictor прогоняет предобученную ONNX-модель заметности через OpenCV DNN.
type ONNXPredictor struct {
	InputSize int

	mu  sync.Mutex
	net gocv.Net
}

var _ port.SaliencyPredictor = (*ONNXPredictor)(nil)

// NewONNXPredictor загружает модель заметности из файла ONNX.
func NewONNXPredictor(modelPath string) (*ONNXPredictor, error) {
	net := gocv.ReadNetFromONNX(modelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load saliency model from %s", modelPath)
	}
	return &ONNXPredictor{InputSize: 256, net: net}, nil
}

// Name возвращает идентификатор предсказателя.
func (p *ONNXPredictor) Name() string { return "onnx" }

// Close освобождает ресурсы модели.
func (p *ONNXPredictor) Close() error {
	return p.net.Close()
}

// Predict выполняет один детерминированный прямой проход модели
// и возвращает карту заметности в размере исходного изображения.
// Сеть OpenCV не потокобезопасна, прогоны сериализуются мьютексом.
func (p *ONNXPredictor) Predict(ctx context.Context, img image.Image) (*entity.SaliencyMap, error) {
	_ = ctx
	if img == nil {
		return nil, errors.New("nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, errors.New("empty image")
	}

	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	defer mat.Close()

	blob := gocv.BlobFromImage(mat, 1.0/255.0, image.Pt(p.InputSize, p.InputSize), gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	p.mu.Lock()
	p.net.SetInput(blob, "")
	out := p.net.Forward("")
	p.mu.Unlock()
	defer out.Close()

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("failed to read model output: %w", err)
	}
	if len(data) < p.InputSize*p.InputSize {
		return nil, fmt.Errorf("unexpected model output size %d", len(data))
	}

	values := make([]float64, p.InputSize*p.InputSize)
	for i := range values {
		values[i] = float64(data[i])
	}

	m := &entity.SaliencyMap{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Values: resampleBilinear(values, p.InputSize, p.InputSize, bounds.Dx(), bounds.Dy()),
	}
	m.Normalize()
	return m, nil
}
