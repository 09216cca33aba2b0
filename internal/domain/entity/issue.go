package entity

import "sort"

// Severity задаёт уровень серьёзности проблемы
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Rank возвращает порядок уровня для сортировки: чем меньше, тем серьёзнее
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	}
	return 4
}

// Типы проблем. Строки входят в контракт выдачи и не меняются.
const (
	IssueLowContrast        = "Low Contrast"
	IssueTouchTargetSmall   = "Touch Target Too Small"
	IssueSmallFontSize      = "Small Font Size"
	IssueColorBlindnessRisk = "Color Blindness Risk"
	IssueMissingAltText     = "Missing Alt Text"
	IssueFormAccessibility  = "Form Accessibility Issues"
	IssueLowAttention       = "Low Attention to Critical Element"
	IssueExcessAttention    = "Excessive Attention to Secondary Element"
	IssueInvertedHierarchy  = "Inverted Visual Hierarchy"
	IssueHighCognitiveLoad  = "High Cognitive Load"
	IssueLongSentences      = "Long Sentences"
	IssueDifficultText      = "Difficult Text"
)

// Issue описывает одну обнаруженную проблему юзабилити.
// После создания проверкой проблема не изменяется.
type Issue struct {
	Type           string       `json:"type"`
	Severity       Severity     `json:"severity"`
	Location       *BoundingBox `json:"location,omitempty"`
	ElementID      string       `json:"element_id,omitempty"`
	Description    string       `json:"description"`
	CurrentValue   string       `json:"current_value,omitempty"`
	RequiredValue  string       `json:"required_value,omitempty"`
	Recommendation string       `json:"recommendation,omitempty"`
	WCAGCriterion  string       `json:"wcag_criterion,omitempty"`
	Fixes          []string     `json:"fixes,omitempty"`
	Suggestions    []string     `json:"suggestions,omitempty"`
	SubIssues      []string     `json:"sub_issues,omitempty"`
	BeforeValue    float64      `json:"before_value,omitempty"`
	AfterValue     float64      `json:"after_value,omitempty"`
	Confidence     float64      `json:"confidence,omitempty"`
}

// SortIssues упорядочивает проблемы по убыванию серьёзности.
// Порядок обнаружения внутри одного уровня сохраняется.
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].Severity.Rank() < issues[j].Severity.Rank()
	})
}
