package entity

// BoundingBox представляет прямоугольную область элемента на скриншоте
type BoundingBox struct {
	X      int `json:"x"`      // координата X левого верхнего угла
	Y      int `json:"y"`      // координата Y левого верхнего угла
	Width  int `json:"width"`  // ширина области в пикселях
	Height int `json:"height"` // высота области в пикселях
}

// Center возвращает координаты центра области
func (b BoundingBox) Center() (x, y int) {
	return b.X + b.Width/2, b.Y + b.Height/2
}

// Area возвращает площадь области в пикселях
func (b BoundingBox) Area() int {
	if b.Width <= 0 || b.Height <= 0 {
		return 0
	}
	return b.Width * b.Height
}

// MinDimension возвращает меньшую из сторон области.
// Отрицательные размеры считаются нулевыми.
func (b BoundingBox) MinDimension() int {
	w, h := b.Width, b.Height
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if w < h {
		return w
	}
	return h
}
