// Package colorvision моделирует восприятие цвета при дальтонизме
// и измеряет различимость цветовых пар.
package colorvision

import (
	"image"

	"arai-engine/internal/domain/entity"
)

// Deficiency задаёт тип нарушения цветового зрения
type Deficiency string

const (
	Protanopia   Deficiency = "protanopia"
	Deuteranopia Deficiency = "deuteranopia"
	Tritanopia   Deficiency = "tritanopia"
)

// Deficiencies перечисляет все моделируемые нарушения
var Deficiencies = []Deficiency{Protanopia, Deuteranopia, Tritanopia}

// Матрицы преобразования sRGB для каждого типа нарушения
var transforms = map[Deficiency][3][3]float64{
	Protanopia: {
		{0.567, 0.433, 0.0},
		{0.558, 0.442, 0.0},
		{0.0, 0.242, 0.758},
	},
	Deuteranopia: {
		{0.625, 0.375, 0.0},
		{0.7, 0.3, 0.0},
		{0.0, 0.3, 0.7},
	},
	Tritanopia: {
		{0.95, 0.05, 0.0},
		{0.0, 0.433, 0.567},
		{0.0, 0.475, 0.525},
	},
}

// Simulate возвращает цвет, каким его видит человек с заданным нарушением.
// Неизвестное нарушение оставляет цвет без изменений.
func Simulate(c entity.RGB, kind Deficiency) entity.RGB {
	m, ok := transforms[kind]
	if !ok {
		return c
	}

	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	nr := m[0][0]*r + m[0][1]*g + m[0][2]*b
	ng := m[1][0]*r + m[1][1]*g + m[1][2]*b
	nb := m[2][0]*r + m[2][1]*g + m[2][2]*b

	return entity.RGB{
		R: clampChannel(nr * 255),
		G: clampChannel(ng * 255),
		B: clampChannel(nb * 255),
	}
}

// SimulateImage строит превью изображения для заданного нарушения
func SimulateImage(img image.Image, kind Deficiency) *image.RGBA {
	bounds := img.Bounds()
	out := image.NewRGBA(bounds)

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, a := img.At(x, y).RGBA()
			c := Simulate(entity.RGB{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			}, kind)

			i := out.PixOffset(x, y)
			out.Pix[i+0] = c.R
			out.Pix[i+1] = c.G
			out.Pix[i+2] = c.B
			out.Pix[i+3] = uint8(a >> 8)
		}
	}
	return out
}

func clampChannel(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
