package entity

// ElementType задаёт тип элемента интерфейса
type ElementType string

const (
	ElementButton    ElementType = "button"
	ElementText      ElementType = "text"
	ElementHeading   ElementType = "heading"
	ElementImage     ElementType = "image"
	ElementInput     ElementType = "input"
	ElementCheckbox  ElementType = "checkbox"
	ElementLink      ElementType = "link"
	ElementIcon      ElementType = "icon"
	ElementContainer ElementType = "container"
	ElementOther     ElementType = "other"
)

// UIElement представляет обнаруженный элемент интерфейса.
// Список элементов приходит от внешнего детектора и не изменяется движком.
type UIElement struct {
	ID             string      `json:"id"`
	Type           ElementType `json:"type"`
	Bounds         BoundingBox `json:"bounds"`
	Text           string      `json:"text,omitempty"`
	FontSizePx     float64     `json:"font_size_px,omitempty"`
	Foreground     *RGB        `json:"foreground,omitempty"`
	Background     *RGB        `json:"background,omitempty"`
	AltText        string      `json:"alt_text,omitempty"`
	LabelID        string      `json:"label_id,omitempty"`
	HasFocusStyle  *bool       `json:"has_focus_style,omitempty"` // nil — детектор не определил
	Interactive    bool        `json:"is_interactive,omitempty"`
	ImportanceRank int         `json:"importance_rank,omitempty"` // 1 — самый важный; 0 — ранг не задан
}

// IsInteractive сообщает, относится ли элемент к интерактивным.
// Учитывается явный флаг детектора и тип элемента.
func (e UIElement) IsInteractive() bool {
	if e.Interactive {
		return true
	}
	switch e.Type {
	case ElementButton, ElementInput, ElementCheckbox, ElementLink, ElementIcon:
		return true
	}
	return false
}

// IsTextual сообщает, содержит ли элемент читаемый текст
func (e UIElement) IsTextual() bool {
	switch e.Type {
	case ElementText, ElementHeading, ElementButton, ElementLink, ElementInput:
		return true
	}
	return false
}

// IsFormControl сообщает, является ли элемент полем формы
func (e UIElement) IsFormControl() bool {
	return e.Type == ElementInput || e.Type == ElementCheckbox
}

// EstimatedFontSize возвращает размер шрифта в пикселях.
// Если размер не задан, он оценивается по высоте рамки текстового элемента.
func (e UIElement) EstimatedFontSize() float64 {
	if e.FontSizePx > 0 {
		return e.FontSizePx
	}
	if !e.IsTextual() || e.Bounds.Height <= 0 {
		return 0
	}
	return float64(e.Bounds.Height)
}

// ValidBounds проверяет, что рамка элемента неотрицательна
// и целиком лежит внутри изображения width x height.
func (e UIElement) ValidBounds(width, height int) bool {
	b := e.Bounds
	if b.X < 0 || b.Y < 0 || b.Width < 0 || b.Height < 0 {
		return false
	}
	return b.X+b.Width <= width && b.Y+b.Height <= height
}

// TextBlock — фрагмент извлечённого текста для оценки читаемости
type TextBlock struct {
	Text   string       `json:"text"`
	Bounds *BoundingBox `json:"bounds,omitempty"`
}
