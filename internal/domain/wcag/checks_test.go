package wcag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arai-engine/internal/domain/entity"
)

func white() *entity.RGB { return &entity.RGB{R: 255, G: 255, B: 255} }
func black() *entity.RGB { return &entity.RGB{R: 0, G: 0, B: 0} }

func TestCheckContrastWhiteOnWhite(t *testing.T) {
	e := NewEngine()
	issues := e.CheckContrast([]entity.UIElement{{
		ID:         "label",
		Type:       entity.ElementText,
		Bounds:     entity.BoundingBox{X: 10, Y: 10, Width: 100, Height: 14},
		Foreground: white(),
		Background: white(),
	}}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, "Low Contrast", issues[0].Type)
	require.Equal(t, entity.SeverityHigh, issues[0].Severity)
	require.Equal(t, "1.00:1", issues[0].CurrentValue)
	require.Equal(t, "4.5:1", issues[0].RequiredValue)
	require.Equal(t, "1.4.3", issues[0].WCAGCriterion)
	require.InDelta(t, 1.0, issues[0].BeforeValue, 1e-9)
}

func TestCheckContrastPasses(t *testing.T) {
	e := NewEngine()
	issues := e.CheckContrast([]entity.UIElement{{
		ID:         "body",
		Type:       entity.ElementText,
		Foreground: black(),
		Background: white(),
	}}, nil)
	require.Empty(t, issues)
}

func TestCheckContrastLargeTextThreshold(t *testing.T) {
	e := NewEngine()
	// Контраст серого #767676 на белом около 4.54:1, а #949494 около 3.03:1.
	gray := &entity.RGB{R: 0x94, G: 0x94, B: 0x94}

	normal := entity.UIElement{ID: "small", Type: entity.ElementText, FontSizePx: 14, Foreground: gray, Background: white()}
	large := entity.UIElement{ID: "big", Type: entity.ElementHeading, FontSizePx: 24, Foreground: gray, Background: white()}

	issues := e.CheckContrast([]entity.UIElement{normal, large}, nil)
	require.Len(t, issues, 1)
	require.Equal(t, "small", issues[0].ElementID)
	require.Equal(t, entity.SeverityMedium, issues[0].Severity)
}

func TestCheckContrastSkipsWithoutColors(t *testing.T) {
	e := NewEngine()
	issues := e.CheckContrast([]entity.UIElement{{ID: "a", Type: entity.ElementText}}, nil)
	require.Empty(t, issues)
}

func TestCheckTouchTargets(t *testing.T) {
	e := NewEngine()
	issues := e.CheckTouchTargets([]entity.UIElement{{
		ID:          "btn",
		Type:        entity.ElementButton,
		Bounds:      entity.BoundingBox{X: 50, Y: 50, Width: 32, Height: 32},
		Interactive: true,
	}}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, "Touch Target Too Small", issues[0].Type)
	require.Equal(t, "32x32px", issues[0].CurrentValue)
	require.Equal(t, "44x44px", issues[0].RequiredValue)
	require.Equal(t, entity.SeverityMedium, issues[0].Severity)
	require.Equal(t, "2.5.5", issues[0].WCAGCriterion)
}

func TestCheckTouchTargetsTiny(t *testing.T) {
	e := NewEngine()
	issues := e.CheckTouchTargets([]entity.UIElement{{
		ID:     "icon",
		Type:   entity.ElementIcon,
		Bounds: entity.BoundingBox{Width: 16, Height: 16},
	}}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, entity.SeverityHigh, issues[0].Severity)
}

func TestCheckTouchTargetsIgnoresStatic(t *testing.T) {
	e := NewEngine()
	issues := e.CheckTouchTargets([]entity.UIElement{{
		ID:     "caption",
		Type:   entity.ElementText,
		Bounds: entity.BoundingBox{Width: 10, Height: 10},
	}}, nil)
	require.Empty(t, issues)
}

func TestCheckTextSizes(t *testing.T) {
	e := NewEngine()
	issues := e.CheckTextSizes([]entity.UIElement{
		{ID: "tiny", Type: entity.ElementText, FontSizePx: 11},
		{ID: "fine", Type: entity.ElementText, FontSizePx: 16},
		{ID: "estimated", Type: entity.ElementText, Bounds: entity.BoundingBox{Height: 12}},
	}, nil)

	require.Len(t, issues, 2)
	require.Equal(t, "Small Font Size", issues[0].Type)
	require.Equal(t, "tiny", issues[0].ElementID)
	require.Equal(t, "11px", issues[0].CurrentValue)
	require.Equal(t, "estimated", issues[1].ElementID)
}

func TestCheckColorVisionRedGreen(t *testing.T) {
	e := NewEngine()
	// Пара лежит на линии смешения деутеранопии: после моделирования
	// оба цвета сходятся к почти одинаковому оливковому.
	issues := e.CheckColorVision([]entity.UIElement{{
		ID:         "status",
		Type:       entity.ElementIcon,
		Foreground: &entity.RGB{R: 170, G: 80, B: 60},
		Background: &entity.RGB{R: 119, G: 180, B: 17},
	}}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, "Color Blindness Risk", issues[0].Type)
	require.Equal(t, entity.SeverityMedium, issues[0].Severity)
	require.Equal(t, "1.4.1", issues[0].WCAGCriterion)
	require.NotEmpty(t, issues[0].Suggestions)
	require.Contains(t, issues[0].Description, "deuteranopia")
}

func TestCheckColorVisionSkipsLabelled(t *testing.T) {
	e := NewEngine()
	issues := e.CheckColorVision([]entity.UIElement{{
		ID:         "status",
		Type:       entity.ElementButton,
		Text:       "Submit",
		Foreground: &entity.RGB{R: 170, G: 80, B: 60},
		Background: &entity.RGB{R: 119, G: 180, B: 17},
	}}, nil)
	require.Empty(t, issues)
}

func TestCheckColorVisionKeepsDistinctPairs(t *testing.T) {
	e := NewEngine()
	issues := e.CheckColorVision([]entity.UIElement{{
		ID:         "ok",
		Type:       entity.ElementIcon,
		Foreground: black(),
		Background: white(),
	}}, nil)
	require.Empty(t, issues)
}

func TestCheckAltText(t *testing.T) {
	e := NewEngine()
	issues := e.CheckAltText([]entity.UIElement{
		{ID: "hero", Type: entity.ElementImage},
		{ID: "logo", Type: entity.ElementImage, AltText: "Company logo"},
		{ID: "btn", Type: entity.ElementButton},
	}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, "Missing Alt Text", issues[0].Type)
	require.Equal(t, "hero", issues[0].ElementID)
	require.Equal(t, entity.SeverityHigh, issues[0].Severity)
	require.Equal(t, "1.1.1", issues[0].WCAGCriterion)
}

func TestCheckFormsBundle(t *testing.T) {
	e := NewEngine()
	noFocus := false
	issues := e.CheckForms([]entity.UIElement{
		{ID: "email", Type: entity.ElementInput},
		{ID: "agree", Type: entity.ElementCheckbox, LabelID: "agree-label"},
		{ID: "send", Type: entity.ElementButton, HasFocusStyle: &noFocus},
	}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, "Form Accessibility Issues", issues[0].Type)
	require.Equal(t, entity.SeverityHigh, issues[0].Severity)
	require.Equal(t, "3.3.2", issues[0].WCAGCriterion)
	require.Equal(t, []string{"Missing Label", "No Visual Focus Indicator"}, issues[0].SubIssues)
}

func TestCheckFormsFocusOnly(t *testing.T) {
	e := NewEngine()
	noFocus := false
	issues := e.CheckForms([]entity.UIElement{
		{ID: "send", Type: entity.ElementButton, HasFocusStyle: &noFocus},
	}, nil)

	require.Len(t, issues, 1)
	require.Equal(t, entity.SeverityMedium, issues[0].Severity)
	require.Equal(t, "2.4.7", issues[0].WCAGCriterion)
	require.Equal(t, []string{"No Visual Focus Indicator"}, issues[0].SubIssues)
}

func TestCheckFormsClean(t *testing.T) {
	e := NewEngine()
	focus := true
	issues := e.CheckForms([]entity.UIElement{
		{ID: "email", Type: entity.ElementInput, LabelID: "email-label", HasFocusStyle: &focus},
	}, nil)
	require.Empty(t, issues)
}

type fakeSampler struct {
	fg, bg entity.RGB
}

func (s fakeSampler) Sample(entity.BoundingBox) (entity.RGB, entity.RGB, bool) {
	return s.fg, s.bg, true
}

func TestCheckContrastUsesSampler(t *testing.T) {
	e := NewEngine()
	sampler := fakeSampler{fg: entity.RGB{R: 200, G: 200, B: 200}, bg: entity.RGB{R: 255, G: 255, B: 255}}

	issues := e.CheckContrast([]entity.UIElement{{ID: "a", Type: entity.ElementText}}, sampler)
	require.Len(t, issues, 1)
	require.Equal(t, "Low Contrast", issues[0].Type)
}

func TestCheckOrdersBySeverity(t *testing.T) {
	e := NewEngine()
	elements := []entity.UIElement{
		{ID: "tiny-text", Type: entity.ElementText, FontSizePx: 12},
		{ID: "hero", Type: entity.ElementImage},
		{ID: "btn", Type: entity.ElementButton, Bounds: entity.BoundingBox{Width: 30, Height: 30}},
	}

	issues := e.Check(elements, nil)
	require.GreaterOrEqual(t, len(issues), 3)
	for i := 1; i < len(issues); i++ {
		require.LessOrEqual(t, issues[i-1].Severity.Rank(), issues[i].Severity.Rank())
	}
}
