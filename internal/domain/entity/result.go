package entity

import "time"

// IssueCount хранит количество проблем по уровням серьёзности
type IssueCount struct {
	Critical int `json:"critical"`
	High     int `json:"high"`
	Medium   int `json:"medium"`
	Low      int `json:"low"`
}

// CountIssues подсчитывает проблемы по уровням
func CountIssues(issues []Issue) IssueCount {
	var c IssueCount
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityCritical:
			c.Critical++
		case SeverityHigh:
			c.High++
		case SeverityMedium:
			c.Medium++
		case SeverityLow:
			c.Low++
		}
	}
	return c
}

// Total возвращает общее количество проблем
func (c IssueCount) Total() int {
	return c.Critical + c.High + c.Medium + c.Low
}

// CategoryResult хранит итог по одной категории анализа
type CategoryResult struct {
	Score            float64    `json:"score"`
	ConformanceLevel string     `json:"conformance_level,omitempty"`
	IssueCount       IssueCount `json:"issue_count"`
	Issues           []Issue    `json:"issues"`
}

// Distribution описывает доли внимания по третям экрана.
// Вертикальная и горизонтальная оси нормированы к единице каждая.
type Distribution struct {
	Top    float64 `json:"top"`
	Middle float64 `json:"middle"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Center float64 `json:"center"`
	Right  float64 `json:"right"`
}

// FocalPoint — локальный максимум внимания в нормированных координатах
type FocalPoint struct {
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Intensity float64 `json:"intensity"`
}

// Вердикты проверки визуальной иерархии
const (
	HierarchyConsistent = "consistent"
	HierarchyInverted   = "inverted"
)

// ElementAttention — средняя заметность одного элемента
type ElementAttention struct {
	ElementID string  `json:"element_id"`
	Score     float64 `json:"score"`
}

// AttentionResult хранит итог анализа внимания
type AttentionResult struct {
	CategoryResult
	Degraded         bool               `json:"degraded"`
	CognitiveLoad    float64            `json:"cognitive_load"`
	Hierarchy        string             `json:"hierarchy"`
	ElementAttention []ElementAttention `json:"element_attention,omitempty"`
	FocalPoints      []FocalPoint       `json:"focal_points,omitempty"`
	Distribution     Distribution       `json:"distribution"`
}

// Result — полный отчёт анализа юзабилити
type Result struct {
	AnalysisID       string          `json:"analysis_id"`
	GeneratedAt      time.Time       `json:"generated_at"`
	ProcessingTimeMs int64           `json:"processing_time_ms"`
	ARAIScore        float64         `json:"arai_score"`
	OverallGrade     string          `json:"overall_grade"`
	ConformanceLevel string          `json:"conformance_level"`
	Accessibility    CategoryResult  `json:"accessibility"`
	Readability      CategoryResult  `json:"readability"`
	Attention        AttentionResult `json:"attention"`
	Warnings         []string        `json:"warnings,omitempty"`
}

// AllIssues возвращает проблемы всех категорий в одном списке
func (r *Result) AllIssues() []Issue {
	out := make([]Issue, 0, len(r.Accessibility.Issues)+len(r.Readability.Issues)+len(r.Attention.Issues))
	out = append(out, r.Accessibility.Issues...)
	out = append(out, r.Readability.Issues...)
	out = append(out, r.Attention.Issues...)
	return out
}
