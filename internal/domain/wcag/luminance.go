// Package wcag реализует проверки доступности интерфейса по критериям WCAG 2.1.
package wcag

import (
	"math"

	"arai-engine/internal/domain/entity"
)

// RelativeLuminance возвращает относительную яркость цвета по формуле WCAG
func RelativeLuminance(c entity.RGB) float64 {
	r := decodeChannel(float64(c.R) / 255)
	g := decodeChannel(float64(c.G) / 255)
	b := decodeChannel(float64(c.B) / 255)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// decodeChannel снимает гамма-кодирование канала sRGB
func decodeChannel(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// ContrastRatio возвращает коэффициент контрастности двух цветов.
// Результат лежит в [1, 21] и не зависит от порядка аргументов.
func ContrastRatio(a, b entity.RGB) float64 {
	la := RelativeLuminance(a)
	lb := RelativeLuminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
