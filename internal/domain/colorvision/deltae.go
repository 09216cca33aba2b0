package colorvision

import (
	"math"

	"arai-engine/internal/domain/entity"
)

// Опорная белая точка D65
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// DeltaE возвращает цветовое различие CIE76 между двумя цветами sRGB.
// Значения ниже ~10 означают, что цвета трудно различить.
func DeltaE(a, b entity.RGB) float64 {
	l1, a1, b1 := toLab(a)
	l2, a2, b2 := toLab(b)

	dl := l1 - l2
	da := a1 - a2
	db := b1 - b2
	return math.Sqrt(dl*dl + da*da + db*db)
}

// toLab переводит sRGB в CIE L*a*b* через XYZ (D65)
func toLab(c entity.RGB) (l, a, b float64) {
	r := linearize(float64(c.R) / 255)
	g := linearize(float64(c.G) / 255)
	bl := linearize(float64(c.B) / 255)

	x := 0.4124564*r + 0.3575761*g + 0.1804375*bl
	y := 0.2126729*r + 0.7151522*g + 0.0721750*bl
	z := 0.0193339*r + 0.1191920*g + 0.9503041*bl

	fx := labF(x / whiteX)
	fy := labF(y / whiteY)
	fz := labF(z / whiteZ)

	l = 116*fy - 16
	a = 500 * (fx - fy)
	b = 200 * (fy - fz)
	return l, a, b
}

func linearize(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

func labF(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	return t/(3*delta*delta) + 4.0/29.0
}
