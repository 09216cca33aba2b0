// Package attention вычисляет метрики внимания по карте заметности.
package attention

import (
	"fmt"
	"math"
	"sort"

	"arai-engine/internal/domain/entity"
)

// Metrics вычисляет показатели внимания для карты заметности и элементов
type Metrics struct {
	MinElementAttention   float64 // порог достаточного внимания к важному элементу
	MaxSecondaryAttention float64 // порог избыточного внимания к второстепенному
	GridSize              int     // сторона сетки для когнитивной нагрузки
	TopShare              float64 // доля элементов, образующих вершину иерархии
	HighLoad              float64 // порог высокой когнитивной нагрузки
	FocalThreshold        float64 // минимальная заметность фокусной точки
}

// NewMetrics создаёт вычислитель с порогами по умолчанию
func NewMetrics() *Metrics {
	return &Metrics{
		MinElementAttention:   0.5,
		MaxSecondaryAttention: 0.8,
		GridSize:              8,
		TopShare:              0.10,
		HighLoad:              75,
		FocalThreshold:        0.7,
	}
}

// Report — итог анализа внимания
type Report struct {
	ElementAttention []entity.ElementAttention
	Hierarchy        string
	CognitiveLoad    float64
	Distribution     entity.Distribution
	FocalPoints      []entity.FocalPoint
	Issues           []entity.Issue
}

// Analyze строит отчёт о внимании.
// Карта читается только на чтение, элементы не изменяются.
func (m *Metrics) Analyze(sal *entity.SaliencyMap, elements []entity.UIElement) *Report {
	r := &Report{}

	r.ElementAttention, r.Issues = m.elementAttention(sal, elements)

	verdict, hierarchyIssue := m.checkHierarchy(r.ElementAttention, elements)
	r.Hierarchy = verdict
	if hierarchyIssue != nil {
		r.Issues = append(r.Issues, *hierarchyIssue)
	}

	r.CognitiveLoad = m.CognitiveLoad(sal)
	if r.CognitiveLoad > m.HighLoad {
		r.Issues = append(r.Issues, entity.Issue{
			Type:           entity.IssueHighCognitiveLoad,
			Severity:       entity.SeverityMedium,
			Description:    fmt.Sprintf("Attention is scattered across the design (load %.0f of 100)", r.CognitiveLoad),
			CurrentValue:   fmt.Sprintf("%.0f", r.CognitiveLoad),
			RequiredValue:  fmt.Sprintf("<=%.0f", m.HighLoad),
			Recommendation: "Create clear focal points to guide user attention",
			Confidence:     0.75,
		})
	}

	r.Distribution = Distribution(sal)
	r.FocalPoints = m.FocalPoints(sal)

	entity.SortIssues(r.Issues)
	return r
}

// elementAttention считает среднюю заметность каждого элемента
// и отмечает проблемные уровни внимания.
func (m *Metrics) elementAttention(sal *entity.SaliencyMap, elements []entity.UIElement) ([]entity.ElementAttention, []entity.Issue) {
	scores := make([]entity.ElementAttention, 0, len(elements))
	var issues []entity.Issue

	for _, el := range elements {
		mean := sal.RegionMean(el.Bounds)
		scores = append(scores, entity.ElementAttention{ElementID: el.ID, Score: mean})

		if el.IsInteractive() && mean < m.MinElementAttention {
			loc := el.Bounds
			issues = append(issues, entity.Issue{
				Type:           entity.IssueLowAttention,
				Severity:       entity.SeverityHigh,
				Location:       &loc,
				ElementID:      el.ID,
				Description:    fmt.Sprintf("Critical element receives only %.1f%% of user attention", mean*100),
				CurrentValue:   fmt.Sprintf("%.2f", mean),
				RequiredValue:  fmt.Sprintf("%.2f", m.MinElementAttention),
				Recommendation: "Increase visual prominence through size, color, contrast, or position",
				Confidence:     0.8,
			})
			continue
		}

		if !el.IsInteractive() && el.ImportanceRank == 0 && mean > m.MaxSecondaryAttention {
			loc := el.Bounds
			issues = append(issues, entity.Issue{
				Type:           entity.IssueExcessAttention,
				Severity:       entity.SeverityLow,
				Location:       &loc,
				ElementID:      el.ID,
				Description:    fmt.Sprintf("Secondary element draws %.1f%% of user attention", mean*100),
				CurrentValue:   fmt.Sprintf("%.2f", mean),
				Recommendation: "Consider reducing visual prominence if not a primary action",
				Confidence:     0.65,
			})
		}
	}
	return scores, issues
}

// checkHierarchy сверяет заявленную важность элементов с полученным вниманием.
// Без заявленных рангов иерархия считается согласованной.
func (m *Metrics) checkHierarchy(scores []entity.ElementAttention, elements []entity.UIElement) (string, *entity.Issue) {
	topDeclared := -1
	bestRank := 0
	for i, el := range elements {
		if el.ImportanceRank <= 0 {
			continue
		}
		if topDeclared == -1 || el.ImportanceRank < bestRank {
			topDeclared = i
			bestRank = el.ImportanceRank
		}
	}
	if topDeclared == -1 {
		return entity.HierarchyConsistent, nil
	}

	k := int(math.Ceil(m.TopShare * float64(len(elements))))
	if k < 1 {
		k = 1
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return scores[order[a]].Score > scores[order[b]].Score
	})

	for pos := 0; pos < k && pos < len(order); pos++ {
		if order[pos] == topDeclared {
			return entity.HierarchyConsistent, nil
		}
	}

	el := elements[topDeclared]
	loc := el.Bounds
	return entity.HierarchyInverted, &entity.Issue{
		Type:           entity.IssueInvertedHierarchy,
		Severity:       entity.SeverityMedium,
		Location:       &loc,
		ElementID:      el.ID,
		Description:    fmt.Sprintf("The most important element is not among the top %d by attention", k),
		Recommendation: "Move critical elements to the most salient part of the design",
		Confidence:     0.75,
	}
}

// CognitiveLoad оценивает нагрузку как энтропию Шеннона распределения
// внимания по сетке, нормированную к шкале 0-100.
func (m *Metrics) CognitiveLoad(sal *entity.SaliencyMap) float64 {
	n := m.GridSize
	if n < 2 {
		n = 2
	}
	if sal.Width == 0 || sal.Height == 0 {
		return 0
	}

	cells := make([]float64, n*n)
	var total float64
	for y := 0; y < sal.Height; y++ {
		gy := y * n / sal.Height
		row := y * sal.Width
		for x := 0; x < sal.Width; x++ {
			gx := x * n / sal.Width
			v := sal.Values[row+x]
			cells[gy*n+gx] += v
			total += v
		}
	}
	if total <= 0 {
		return 0
	}

	var h float64
	for _, c := range cells {
		if c <= 0 {
			continue
		}
		p := c / total
		h -= p * math.Log(p)
	}

	load := 100 * h / math.Log(float64(n*n))
	if load < 0 {
		return 0
	}
	if load > 100 {
		return 100
	}
	return load
}

// Distribution считает доли общей заметности по третям изображения.
// Каждая ось в сумме даёт единицу; нулевая карта даёт нули.
func Distribution(sal *entity.SaliencyMap) entity.Distribution {
	var d entity.Distribution
	total := sal.Total()
	if total <= 0 {
		return d
	}

	for y := 0; y < sal.Height; y++ {
		row := y * sal.Width
		vert := thirdIndex(y, sal.Height)
		for x := 0; x < sal.Width; x++ {
			v := sal.Values[row+x]
			switch vert {
			case 0:
				d.Top += v
			case 1:
				d.Middle += v
			default:
				d.Bottom += v
			}
			switch thirdIndex(x, sal.Width) {
			case 0:
				d.Left += v
			case 1:
				d.Center += v
			default:
				d.Right += v
			}
		}
	}

	d.Top /= total
	d.Middle /= total
	d.Bottom /= total
	d.Left /= total
	d.Center /= total
	d.Right /= total
	return d
}

// thirdIndex возвращает номер трети (0..2) для координаты
func thirdIndex(i, size int) int {
	t := i * 3 / size
	if t > 2 {
		t = 2
	}
	return t
}

// FocalPoints находит до пяти локальных максимумов внимания.
// Карта укрупняется до сетки, точки сравниваются с соседями.
func (m *Metrics) FocalPoints(sal *entity.SaliencyMap) []entity.FocalPoint {
	n := m.GridSize
	if n < 2 {
		n = 2
	}
	if sal.Width == 0 || sal.Height == 0 {
		return nil
	}

	sums := make([]float64, n*n)
	counts := make([]int, n*n)
	for y := 0; y < sal.Height; y++ {
		gy := y * n / sal.Height
		row := y * sal.Width
		for x := 0; x < sal.Width; x++ {
			gx := x * n / sal.Width
			sums[gy*n+gx] += sal.Values[row+x]
			counts[gy*n+gx]++
		}
	}

	means := make([]float64, n*n)
	for i := range sums {
		if counts[i] > 0 {
			means[i] = sums[i] / float64(counts[i])
		}
	}

	var points []entity.FocalPoint
	for gy := 0; gy < n; gy++ {
		for gx := 0; gx < n; gx++ {
			v := means[gy*n+gx]
			if v < m.FocalThreshold || !isLocalMax(means, n, gx, gy) {
				continue
			}
			points = append(points, entity.FocalPoint{
				X:         (float64(gx) + 0.5) / float64(n),
				Y:         (float64(gy) + 0.5) / float64(n),
				Intensity: v,
			})
		}
	}

	sort.SliceStable(points, func(a, b int) bool {
		return points[a].Intensity > points[b].Intensity
	})
	if len(points) > 5 {
		points = points[:5]
	}
	return points
}

// isLocalMax проверяет, что ячейка не уступает всем восьми соседям
func isLocalMax(means []float64, n, gx, gy int) bool {
	v := means[gy*n+gx]
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			x, y := gx+dx, gy+dy
			if x < 0 || y < 0 || x >= n || y >= n {
				continue
			}
			if means[y*n+x] > v {
				return false
			}
		}
	}
	return true
}
