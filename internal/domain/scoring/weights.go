// Package scoring сводит результаты проверок в итоговые оценки дизайна.
package scoring

import (
	"fmt"
	"math"

	"arai-engine/internal/domain/entity"
)

// Weights задаёт штраф за одну проблему каждого уровня серьёзности.
type Weights struct {
	Critical float64
	High     float64
	Medium   float64
	Low      float64
}

// DefaultWeights возвращает штрафы по умолчанию.
func DefaultWeights() Weights {
	return Weights{Critical: 10, High: 5, Medium: 2, Low: 1}
}

// Deduction возвращает суммарный штраф за найденные проблемы.
func (w Weights) Deduction(c entity.IssueCount) float64 {
	return w.Critical*float64(c.Critical) +
		w.High*float64(c.High) +
		w.Medium*float64(c.Medium) +
		w.Low*float64(c.Low)
}

// CompositeWeights задаёт вклад каждой категории в итоговую оценку.
type CompositeWeights struct {
	Accessibility float64
	Readability   float64
	Attention     float64
}

// DefaultCompositeWeights возвращает веса категорий по умолчанию.
func DefaultCompositeWeights() CompositeWeights {
	return CompositeWeights{Accessibility: 0.4, Readability: 0.3, Attention: 0.3}
}

// Validate проверяет, что веса категорий в сумме дают единицу.
func (w CompositeWeights) Validate() error {
	sum := w.Accessibility + w.Readability + w.Attention
	if math.Abs(sum-1.0) > 0.001 {
		return fmt.Errorf("composite weights sum to %.3f, expected 1.0", sum)
	}
	return nil
}
