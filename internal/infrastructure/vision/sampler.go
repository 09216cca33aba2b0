package vision

import (
	"image"

	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/wcag"
)

// RegionSampler выбирает цветовую пару из пикселей области скриншота.
// Передний план берётся из самого тёмного пикселя, задний из самого светлого,
// так что пара отражает крайний случай различимости в области.
type RegionSampler struct {
	img image.Image
}

var _ wcag.ColorSampler = (*RegionSampler)(nil)

// NewRegionSampler создаёт сэмплер для одного изображения.
func NewRegionSampler(img image.Image) *RegionSampler {
	return &RegionSampler{img: img}
}

// Sample возвращает крайние по яркости цвета области.
func (s *RegionSampler) Sample(b entity.BoundingBox) (entity.RGB, entity.RGB, bool) {
	if s.img == nil || b.Width <= 0 || b.Height <= 0 {
		return entity.RGB{}, entity.RGB{}, false
	}
	bounds := s.img.Bounds()
	x0 := bounds.Min.X + b.X
	y0 := bounds.Min.Y + b.Y
	x1 := x0 + b.Width
	y1 := y0 + b.Height
	if x0 < bounds.Min.X {
		x0 = bounds.Min.X
	}
	if y0 < bounds.Min.Y {
		y0 = bounds.Min.Y
	}
	if x1 > bounds.Max.X {
		x1 = bounds.Max.X
	}
	if y1 > bounds.Max.Y {
		y1 = bounds.Max.Y
	}
	if x0 >= x1 || y0 >= y1 {
		return entity.RGB{}, entity.RGB{}, false
	}

	// Большие области обходим с шагом, чтобы не сканировать каждый пиксель.
	stepX := (x1 - x0) / 64
	if stepX < 1 {
		stepX = 1
	}
	stepY := (y1 - y0) / 64
	if stepY < 1 {
		stepY = 1
	}

	var darkest, lightest entity.RGB
	minLum, maxLum := 2.0, -1.0
	for y := y0; y < y1; y += stepY {
		for x := x0; x < x1; x += stepX {
			r, g, bl, _ := s.img.At(x, y).RGBA()
			c := entity.RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}
			lum := wcag.RelativeLuminance(c)
			if lum < minLum {
				minLum = lum
				darkest = c
			}
			if lum > maxLum {
				maxLum = lum
				lightest = c
			}
		}
	}
	return darkest, lightest, true
}
