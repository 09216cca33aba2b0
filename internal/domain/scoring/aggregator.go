package scoring

import (
	"errors"
	"fmt"
	"math"

	"arai-engine/internal/domain/entity"
)

// ErrMissingCategoryScore возвращается, когда одна из трёх категорий не оценена.
var ErrMissingCategoryScore = errors.New("missing category score")

// Aggregator вычисляет оценки категорий и сводит их в итоговый результат.
type Aggregator struct {
	Severity   Weights
	Composite  CompositeWeights
	LoadFactor float64 // вклад когнитивной нагрузки в оценку внимания
}

// NewAggregator создаёт агрегатор с весами по умолчанию.
func NewAggregator() *Aggregator {
	return &Aggregator{
		Severity:   DefaultWeights(),
		Composite:  DefaultCompositeWeights(),
		LoadFactor: 0.3,
	}
}

// Category собирает оценённый результат категории по списку проблем.
func (a *Aggregator) Category(issues []entity.Issue) entity.CategoryResult {
	count := entity.CountIssues(issues)
	return entity.CategoryResult{
		Score:      clampScore(100 - a.Severity.Deduction(count)),
		IssueCount: count,
		Issues:     issues,
	}
}

// AttentionCategory собирает оценку внимания с учётом когнитивной нагрузки.
func (a *Aggregator) AttentionCategory(load float64, issues []entity.Issue) entity.CategoryResult {
	count := entity.CountIssues(issues)
	return entity.CategoryResult{
		Score:      clampScore(100 - a.LoadFactor*load - a.Severity.Deduction(count)),
		IssueCount: count,
		Issues:     issues,
	}
}

// Aggregate сводит три категории в итоговый отчёт.
// Отсутствие любой из оценок считается фатальной ошибкой.
func (a *Aggregator) Aggregate(acc, read *entity.CategoryResult, attn *entity.AttentionResult) (*entity.Result, error) {
	if err := validCategory("accessibility", acc); err != nil {
		return nil, err
	}
	if err := validCategory("readability", read); err != nil {
		return nil, err
	}
	if attn == nil || math.IsNaN(attn.Score) {
		return nil, fmt.Errorf("%w: attention", ErrMissingCategoryScore)
	}

	composite := a.Composite.Accessibility*acc.Score +
		a.Composite.Readability*read.Score +
		a.Composite.Attention*attn.Score
	composite = math.Round(clampScore(composite)*10) / 10

	accessibility := *acc
	accessibility.ConformanceLevel = Conformance(accessibility.Score)

	return &entity.Result{
		ARAIScore:        composite,
		OverallGrade:     Grade(composite),
		ConformanceLevel: accessibility.ConformanceLevel,
		Accessibility:    accessibility,
		Readability:      *read,
		Attention:        *attn,
	}, nil
}

func validCategory(name string, c *entity.CategoryResult) error {
	if c == nil || math.IsNaN(c.Score) {
		return fmt.Errorf("%w: %s", ErrMissingCategoryScore, name)
	}
	return nil
}

// Grade возвращает буквенную оценку для балла.
func Grade(score float64) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// Conformance возвращает уровень соответствия WCAG для балла доступности.
func Conformance(score float64) string {
	switch {
	case score >= 90:
		return "AAA"
	case score >= 80:
		return "AA"
	case score >= 70:
		return "A"
	case score >= 60:
		return "Partial"
	default:
		return "Non-conformant"
	}
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
