package vision

import (
	"context"
	"errors"
	"image"
	"math"

	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/port"
)

// HeuristicPredictor строит запасную карту заметности без модели:
// взвешенная сумма плотности границ и гауссова смещения к центру.
type HeuristicPredictor struct {
	EdgeWeight   float64
	CenterWeight float64
	CenterSigma  float64
}

var _ port.SaliencyPredictor = (*HeuristicPredictor)(nil)

// NewHeuristicPredictor создаёт эвристику с весами по умолчанию.
func NewHeuristicPredictor() *HeuristicPredictor {
	return &HeuristicPredictor{
		EdgeWeight:   0.6,
		CenterWeight: 0.4,
		CenterSigma:  0.25,
	}
}

// Name возвращает идентификатор предсказателя.
func (p *HeuristicPredictor) Name() string { return "heuristic" }

// Predict строит карту заметности по градиентам яркости и центру кадра.
func (p *HeuristicPredictor) Predict(ctx context.Context, img image.Image) (*entity.SaliencyMap, error) {
	_ = ctx
	if img == nil {
		return nil, errors.New("nil image")
	}
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 {
		return nil, errors.New("empty image")
	}

	edges := sobelMagnitude(grayscale(img), w, h)

	m := entity.NewSaliencyMap(w, h)
	for y := 0; y < h; y++ {
		dy := float64(y)/float64(h) - 0.5
		for x := 0; x < w; x++ {
			dx := float64(x)/float64(w) - 0.5
			bias := math.Exp(-(dx*dx + dy*dy) / (2 * p.CenterSigma * p.CenterSigma))
			m.Values[y*w+x] = p.EdgeWeight*edges[y*w+x] + p.CenterWeight*bias
		}
	}
	m.Normalize()
	return m, nil
}

// sobelMagnitude возвращает нормированную величину градиента яркости.
// Крайние пиксели остаются нулевыми.
func sobelMagnitude(gray []float64, w, h int) []float64 {
	out := make([]float64, w*h)
	if w < 3 || h < 3 {
		return out
	}
	maxMag := 0.0
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			tl := gray[(y-1)*w+x-1]
			tc := gray[(y-1)*w+x]
			tr := gray[(y-1)*w+x+1]
			ml := gray[y*w+x-1]
			mr := gray[y*w+x+1]
			bl := gray[(y+1)*w+x-1]
			bc := gray[(y+1)*w+x]
			br := gray[(y+1)*w+x+1]

			gx := (tr + 2*mr + br) - (tl + 2*ml + bl)
			gy := (bl + 2*bc + br) - (tl + 2*tc + tr)
			mag := math.Sqrt(gx*gx + gy*gy)
			out[y*w+x] = mag
			if mag > maxMag {
				maxMag = mag
			}
		}
	}
	if maxMag > 0 {
		for i := range out {
			out[i] /= maxMag
		}
	}
	return out
}
