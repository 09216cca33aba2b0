package entity

// SaliencyMap хранит карту заметности: значения [0,1] построчно
type SaliencyMap struct {
	Width  int
	Height int
	Values []float64 // длина Width*Height
}

// NewSaliencyMap создаёт нулевую карту заданного размера
func NewSaliencyMap(width, height int) *SaliencyMap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &SaliencyMap{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At возвращает значение в точке (x, y); вне карты — ноль
func (m *SaliencyMap) At(x, y int) float64 {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return 0
	}
	return m.Values[y*m.Width+x]
}

// Set задаёт значение в точке (x, y); точки вне карты игнорируются
func (m *SaliencyMap) Set(x, y int, v float64) {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return
	}
	m.Values[y*m.Width+x] = v
}

// RegionMean возвращает среднюю заметность внутри области.
// Область обрезается по границам карты; пустое пересечение даёт ноль.
func (m *SaliencyMap) RegionMean(b BoundingBox) float64 {
	x0, y0 := b.X, b.Y
	x1, y1 := b.X+b.Width, b.Y+b.Height
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > m.Width {
		x1 = m.Width
	}
	if y1 > m.Height {
		y1 = m.Height
	}
	if x0 >= x1 || y0 >= y1 {
		return 0
	}

	var sum float64
	for y := y0; y < y1; y++ {
		row := y * m.Width
		for x := x0; x < x1; x++ {
			sum += m.Values[row+x]
		}
	}
	return sum / float64((x1-x0)*(y1-y0))
}

// Total возвращает сумму всех значений карты
func (m *SaliencyMap) Total() float64 {
	var sum float64
	for _, v := range m.Values {
		sum += v
	}
	return sum
}

// Normalize приводит значения к диапазону [0,1] методом min-max.
// Плоская карта (все значения равны) обнуляется.
func (m *SaliencyMap) Normalize() {
	if len(m.Values) == 0 {
		return
	}
	lo, hi := m.Values[0], m.Values[0]
	for _, v := range m.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if hi-lo < 1e-12 {
		for i := range m.Values {
			m.Values[i] = 0
		}
		return
	}
	scale := 1 / (hi - lo)
	for i, v := range m.Values {
		m.Values[i] = (v - lo) * scale
	}
}
