package wcag

import (
	"fmt"
	"strings"

	"arai-engine/internal/domain/colorvision"
	"arai-engine/internal/domain/entity"
)

// CheckContrast проверяет контраст текста и фона по критерию 1.4.3
func (e *Engine) CheckContrast(elements []entity.UIElement, sampler ColorSampler) []entity.Issue {
	var issues []entity.Issue
	for _, el := range elements {
		fg, bg, ok := elementColors(el, sampler)
		if !ok {
			continue
		}

		required := e.MinContrastNormal
		textKind := "normal"
		if el.EstimatedFontSize() >= e.LargeTextPx {
			required = e.MinContrastLarge
			textKind = "large"
		}

		ratio := ContrastRatio(fg, bg)
		if ratio >= required {
			continue
		}

		severity := entity.SeverityMedium
		if ratio < e.MinContrastLarge {
			severity = entity.SeverityHigh
		}

		loc := el.Bounds
		issues = append(issues, entity.Issue{
			Type:           entity.IssueLowContrast,
			Severity:       severity,
			Location:       &loc,
			ElementID:      el.ID,
			Description:    fmt.Sprintf("Insufficient contrast ratio for %s text: %.2f:1", textKind, ratio),
			CurrentValue:   fmt.Sprintf("%.2f:1", ratio),
			RequiredValue:  fmt.Sprintf("%.1f:1", required),
			Recommendation: fmt.Sprintf("Increase contrast to at least %.1f:1 by darkening text or lightening background", required),
			WCAGCriterion:  "1.4.3",
			Fixes: []string{
				fmt.Sprintf("Darken the foreground color (current %s)", fg.Hex()),
				fmt.Sprintf("Lighten the background color (current %s)", bg.Hex()),
			},
			BeforeValue: ratio,
			AfterValue:  required,
			Confidence:  0.85,
		})
	}
	return issues
}

// CheckTouchTargets проверяет размер целей касания по критерию 2.5.5
func (e *Engine) CheckTouchTargets(elements []entity.UIElement, _ ColorSampler) []entity.Issue {
	var issues []entity.Issue
	for _, el := range elements {
		if !el.IsInteractive() {
			continue
		}

		side := el.Bounds.MinDimension()
		if side >= e.MinTouchTarget {
			continue
		}

		severity := entity.SeverityMedium
		if side < e.CriticalTouchTarget {
			severity = entity.SeverityHigh
		}

		loc := el.Bounds
		issues = append(issues, entity.Issue{
			Type:           entity.IssueTouchTargetSmall,
			Severity:       severity,
			Location:       &loc,
			ElementID:      el.ID,
			Description:    fmt.Sprintf("Interactive element is %dx%dpx, below the recommended minimum", el.Bounds.Width, el.Bounds.Height),
			CurrentValue:   fmt.Sprintf("%dx%dpx", el.Bounds.Width, el.Bounds.Height),
			RequiredValue:  fmt.Sprintf("%dx%dpx", e.MinTouchTarget, e.MinTouchTarget),
			Recommendation: fmt.Sprintf("Make touch targets at least %dx%dpx", e.MinTouchTarget, e.MinTouchTarget),
			WCAGCriterion:  "2.5.5",
			Confidence:     0.9,
		})
	}
	return issues
}

// CheckTextSizes проверяет минимальный размер шрифта по критерию 1.4.4
func (e *Engine) CheckTextSizes(elements []entity.UIElement, _ ColorSampler) []entity.Issue {
	var issues []entity.Issue
	for _, el := range elements {
		size := el.EstimatedFontSize()
		if size <= 0 || size >= e.MinFontSizePx {
			continue
		}

		loc := el.Bounds
		issues = append(issues, entity.Issue{
			Type:           entity.IssueSmallFontSize,
			Severity:       entity.SeverityMedium,
			Location:       &loc,
			ElementID:      el.ID,
			Description:    fmt.Sprintf("Text may be too small (estimated %.0fpx)", size),
			CurrentValue:   fmt.Sprintf("%.0fpx", size),
			RequiredValue:  fmt.Sprintf("%.0fpx", e.MinFontSizePx),
			Recommendation: fmt.Sprintf("Increase font size to at least %.0fpx", e.MinFontSizePx),
			WCAGCriterion:  "1.4.4",
			Confidence:     0.6,
		})
	}
	return issues
}

// CheckColorVision моделирует дальтонизм для цветовых пар по критерию 1.4.1.
// Проверяются только элементы, у которых цвет — единственный носитель смысла.
func (e *Engine) CheckColorVision(elements []entity.UIElement, sampler ColorSampler) []entity.Issue {
	var issues []entity.Issue
	for _, el := range elements {
		if el.Text != "" {
			continue
		}
		fg, bg, ok := elementColors(el, sampler)
		if !ok {
			continue
		}

		// Пара, неразличимая и без моделирования, относится к проверке контраста.
		if colorvision.DeltaE(fg, bg) < e.MinDeltaE {
			continue
		}

		var affected []string
		var suggestions []string
		worst := e.MinDeltaE
		for _, kind := range colorvision.Deficiencies {
			d := colorvision.DeltaE(colorvision.Simulate(fg, kind), colorvision.Simulate(bg, kind))
			if d >= e.MinDeltaE {
				continue
			}
			affected = append(affected, string(kind))
			suggestions = append(suggestions, fmt.Sprintf("Verify the design under %s simulation", kind))
			if d < worst {
				worst = d
			}
		}
		if len(affected) == 0 {
			continue
		}

		loc := el.Bounds
		issues = append(issues, entity.Issue{
			Type:           entity.IssueColorBlindnessRisk,
			Severity:       entity.SeverityMedium,
			Location:       &loc,
			ElementID:      el.ID,
			Description:    fmt.Sprintf("Colors may be indistinguishable for users with %s", strings.Join(affected, ", ")),
			CurrentValue:   fmt.Sprintf("delta-E %.1f", worst),
			RequiredValue:  fmt.Sprintf("delta-E %.1f", e.MinDeltaE),
			Recommendation: "Add text labels, patterns, or icons to convey information without relying solely on color",
			WCAGCriterion:  "1.4.1",
			Suggestions:    suggestions,
			BeforeValue:    worst,
			AfterValue:     e.MinDeltaE,
			Confidence:     0.75,
		})
	}
	return issues
}

// CheckAltText проверяет наличие замещающего текста по критерию 1.1.1.
// Текст предложения генерирует внешний сервис описаний, не движок.
func (e *Engine) CheckAltText(elements []entity.UIElement, _ ColorSampler) []entity.Issue {
	var issues []entity.Issue
	for _, el := range elements {
		if el.Type != entity.ElementImage || el.AltText != "" {
			continue
		}

		loc := el.Bounds
		issues = append(issues, entity.Issue{
			Type:           entity.IssueMissingAltText,
			Severity:       entity.SeverityHigh,
			Location:       &loc,
			ElementID:      el.ID,
			Description:    "Image element has no text alternative",
			Recommendation: "Provide alt text describing the image content or mark it decorative",
			WCAGCriterion:  "1.1.1",
			Confidence:     0.9,
		})
	}
	return issues
}

// CheckForms собирает проблемы форм в одну сводную запись.
// Отдельные находки перечисляются в sub_issues.
func (e *Engine) CheckForms(elements []entity.UIElement, _ ColorSampler) []entity.Issue {
	var subIssues []string
	var first *entity.BoundingBox
	missingLabel := false

	for _, el := range elements {
		if el.IsFormControl() && el.LabelID == "" && el.Text == "" {
			subIssues = append(subIssues, "Missing Label")
			missingLabel = true
			if first == nil {
				loc := el.Bounds
				first = &loc
			}
		}
		if el.IsInteractive() && el.HasFocusStyle != nil && !*el.HasFocusStyle {
			subIssues = append(subIssues, "No Visual Focus Indicator")
			if first == nil {
				loc := el.Bounds
				first = &loc
			}
		}
	}
	if len(subIssues) == 0 {
		return nil
	}

	severity := entity.SeverityMedium
	criterion := "2.4.7"
	if missingLabel {
		severity = entity.SeverityHigh
		criterion = "3.3.2"
	}

	return []entity.Issue{{
		Type:           entity.IssueFormAccessibility,
		Severity:       severity,
		Location:       first,
		Description:    fmt.Sprintf("Found %d form accessibility problems", len(subIssues)),
		Recommendation: "Label every form field and give interactive elements a visible focus indicator",
		WCAGCriterion:  criterion,
		SubIssues:      subIssues,
		Confidence:     0.8,
	}}
}
