package wcag

import (
	"arai-engine/internal/domain/entity"
)

// ColorSampler выбирает цветовую пару (текст и фон) из области изображения
type ColorSampler interface {
	// Sample возвращает цвета переднего и заднего плана области.
	// ok=false означает, что область не дала пригодной пары.
	Sample(b entity.BoundingBox) (fg, bg entity.RGB, ok bool)
}

// checkFunc — независимая проверка над списком элементов
type checkFunc func(elements []entity.UIElement, sampler ColorSampler) []entity.Issue

// Engine прогоняет проверки доступности по списку элементов интерфейса.
// Каждая проверка независима: нехватка данных по одному элементу
// не прерывает остальные. Движок не хранит состояния между вызовами,
// поэтому один экземпляр можно использовать из разных горутин.
type Engine struct {
	MinContrastNormal   float64 // минимальный контраст обычного текста
	MinContrastLarge    float64 // минимальный контраст крупного текста
	LargeTextPx         float64 // порог размера крупного текста
	MinTouchTarget      int     // минимальный размер цели касания
	CriticalTouchTarget int     // ниже этого размера проблема серьёзная
	MinFontSizePx       float64 // минимальный размер шрифта
	MinDeltaE           float64 // порог цветового различия CIE76

	checks []checkFunc
}

// NewEngine создаёт движок проверок с порогами WCAG по умолчанию
func NewEngine() *Engine {
	e := &Engine{
		MinContrastNormal:   4.5,
		MinContrastLarge:    3.0,
		LargeTextPx:         18,
		MinTouchTarget:      44,
		CriticalTouchTarget: 24,
		MinFontSizePx:       16,
		MinDeltaE:           10,
	}
	e.checks = []checkFunc{
		e.CheckContrast,
		e.CheckTouchTargets,
		e.CheckTextSizes,
		e.CheckColorVision,
		e.CheckAltText,
		e.CheckForms,
	}
	return e
}

// Check прогоняет все зарегистрированные проверки и возвращает проблемы,
// упорядоченные по убыванию серьёзности с сохранением порядка обнаружения.
// Сэмплер привязан к конкретному изображению и передаётся на каждый запуск.
func (e *Engine) Check(elements []entity.UIElement, sampler ColorSampler) []entity.Issue {
	issues := make([]entity.Issue, 0)
	for _, check := range e.checks {
		issues = append(issues, check(elements, sampler)...)
	}
	entity.SortIssues(issues)
	return issues
}

// elementColors возвращает цветовую пару элемента.
// Если у элемента нет цветов, пара выбирается сэмплером из изображения.
func elementColors(el entity.UIElement, sampler ColorSampler) (fg, bg entity.RGB, ok bool) {
	if el.Foreground != nil && el.Background != nil {
		return *el.Foreground, *el.Background, true
	}
	if sampler != nil {
		return sampler.Sample(el.Bounds)
	}
	return entity.RGB{}, entity.RGB{}, false
}
