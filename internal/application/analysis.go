package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"arai-engine/internal/domain/attention"
	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/port"
	"arai-engine/internal/domain/scoring"
	"arai-engine/internal/domain/wcag"
)

// defaultTimeout ограничивает время прогона модели заметности.
const defaultTimeout = 30 * time.Second

// AnalysisService координирует полный разбор макета: проверки доступности,
// читаемость и анализ внимания выполняются над одним снимком и сводятся
// в итоговый отчёт.
type AnalysisService struct {
	engine      *wcag.Engine
	metrics     *attention.Metrics
	aggregator  *scoring.Aggregator
	readability port.ReadabilityScorer
	predictor   port.SaliencyPredictor
	fallback    port.SaliencyPredictor

	// Cache хранит карты заметности между запусками. Может быть nil.
	Cache port.SaliencyCache
	// Captioner подбирает черновики alt-текста. Может быть nil.
	Captioner port.Captioner
	// SamplerFor строит сэмплер цветов для конкретного изображения. Может быть nil.
	SamplerFor func(img image.Image) wcag.ColorSampler
	// Timeout ограничивает прогон модели заметности.
	Timeout time.Duration
	// Logger получает предупреждения о деградации анализа.
	Logger *slog.Logger
}

// Input описывает один запрос на анализ макета
type Input struct {
	Image    image.Image
	Elements []entity.UIElement
	Blocks   []entity.TextBlock
}

// NewAnalysisService создаёт сервис анализа юзабилити.
// Предсказатель может быть nil: карта внимания тогда строится эвристикой,
// а результат помечается деградированным.
func NewAnalysisService(engine *wcag.Engine, metrics *attention.Metrics, aggregator *scoring.Aggregator, readability port.ReadabilityScorer, predictor, fallback port.SaliencyPredictor) *AnalysisService {
	return &AnalysisService{
		engine:      engine,
		metrics:     metrics,
		aggregator:  aggregator,
		readability: readability,
		predictor:   predictor,
		fallback:    fallback,
		Timeout:     defaultTimeout,
		Logger:      slog.Default(),
	}
}

// Analyze выполняет полный разбор макета и возвращает сводный отчёт.
// Проверки доступности и прогон модели заметности идут параллельно
// и соединяются перед подсчётом метрик внимания.
func (s *AnalysisService) Analyze(ctx context.Context, input Input) (*entity.Result, error) {
	if input.Image == nil {
		return nil, errors.New("image is not provided")
	}
	if s.engine == nil {
		return nil, errors.New("rule engine is not configured")
	}
	if s.metrics == nil {
		return nil, errors.New("attention metrics are not configured")
	}
	if s.aggregator == nil {
		return nil, errors.New("aggregator is not configured")
	}
	if s.readability == nil {
		return nil, errors.New("readability scorer is not configured")
	}

	start := time.Now()
	bounds := input.Image.Bounds()
	elements, warnings := validElements(input.Elements, bounds.Dx(), bounds.Dy())

	salCh := make(chan saliencyOutcome, 1)
	go func() { salCh <- s.saliency(ctx, input.Image) }()

	var sampler wcag.ColorSampler
	if s.SamplerFor != nil {
		sampler = s.SamplerFor(input.Image)
	}
	accessibilityIssues := s.engine.Check(elements, sampler)
	s.suggestAltText(ctx, input.Image, elements, accessibilityIssues)

	readability, err := s.readability.Score(ctx, textBlocks(input.Blocks, elements))
	if err != nil {
		return nil, err
	}

	sal := <-salCh
	report := s.metrics.Analyze(sal.m, elements)

	accessibility := s.aggregator.Category(accessibilityIssues)
	attn := entity.AttentionResult{
		CategoryResult:   s.aggregator.AttentionCategory(report.CognitiveLoad, report.Issues),
		Degraded:         sal.degraded,
		CognitiveLoad:    report.CognitiveLoad,
		Hierarchy:        report.Hierarchy,
		ElementAttention: report.ElementAttention,
		FocalPoints:      report.FocalPoints,
		Distribution:     report.Distribution,
	}

	result, err := s.aggregator.Aggregate(&accessibility, readability, &attn)
	if err != nil {
		return nil, err
	}

	result.AnalysisID = uuid.NewString()
	result.GeneratedAt = time.Now().UTC()
	result.ProcessingTimeMs = time.Since(start).Milliseconds()
	result.Warnings = warnings
	return result, nil
}

// saliencyOutcome — карта заметности и признак деградации
type saliencyOutcome struct {
	m        *entity.SaliencyMap
	degraded bool
}

// saliency возвращает карту заметности из кэша или от модели.
// Отсутствие модели, ошибка, таймаут или отмена контекста переключают
// на эвристику: анализ внимания деградирует, но запрос не падает.
func (s *AnalysisService) saliency(ctx context.Context, img image.Image) saliencyOutcome {
	if s.predictor == nil {
		return s.fallbackMap(img)
	}
	if s.Cache != nil {
		if m, ok := s.Cache.Get(img, s.predictor.Name()); ok {
			return saliencyOutcome{m: m}
		}
	}

	type prediction struct {
		m   *entity.SaliencyMap
		err error
	}
	done := make(chan prediction, 1)
	go func() {
		m, err := s.predictor.Predict(ctx, img)
		if err == nil && s.Cache != nil {
			// Поздно завершившийся прогон всё равно попадает в кэш.
			s.Cache.Put(img, s.predictor.Name(), m)
		}
		done <- prediction{m: m, err: err}
	}()

	timer := time.NewTimer(s.timeout())
	defer timer.Stop()

	select {
	case p := <-done:
		if p.err == nil {
			return saliencyOutcome{m: p.m}
		}
		s.Logger.Warn("saliency prediction failed, using fallback", "predictor", s.predictor.Name(), "err", p.err)
	case <-timer.C:
		s.Logger.Warn("saliency prediction timed out, using fallback", "predictor", s.predictor.Name(), "timeout", s.timeout())
	case <-ctx.Done():
		s.Logger.Warn("saliency prediction cancelled, using fallback", "predictor", s.predictor.Name(), "err", ctx.Err())
	}
	return s.fallbackMap(img)
}

// fallbackMap строит эвристическую карту. Контекст запроса не используется:
// деградированный результат нужен даже после отмены.
func (s *AnalysisService) fallbackMap(img image.Image) saliencyOutcome {
	if s.fallback == nil {
		b := img.Bounds()
		return saliencyOutcome{m: entity.NewSaliencyMap(b.Dx(), b.Dy()), degraded: true}
	}
	m, err := s.fallback.Predict(context.Background(), img)
	if err != nil {
		s.Logger.Warn("fallback saliency failed, attention analysis is empty", "err", err)
		b := img.Bounds()
		m = entity.NewSaliencyMap(b.Dx(), b.Dy())
	}
	return saliencyOutcome{m: m, degraded: true}
}

// timeout возвращает предел ожидания модели заметности
func (s *AnalysisService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return defaultTimeout
}

// suggestAltText добавляет черновики alt-текста к проблемам отсутствующих описаний.
// Ошибки генератора не прерывают анализ.
func (s *AnalysisService) suggestAltText(ctx context.Context, img image.Image, elements []entity.UIElement, issues []entity.Issue) {
	if s.Captioner == nil {
		return
	}
	byID := make(map[string]entity.UIElement, len(elements))
	for _, el := range elements {
		byID[el.ID] = el
	}
	for i := range issues {
		if issues[i].Type != entity.IssueMissingAltText {
			continue
		}
		el, ok := byID[issues[i].ElementID]
		if !ok {
			continue
		}
		caption, err := s.Captioner.Suggest(ctx, img, el)
		if err != nil {
			s.Logger.Warn("alt text suggestion failed", "element", el.ID, "err", err)
			continue
		}
		if caption != "" {
			issues[i].Suggestions = append(issues[i].Suggestions, caption)
		}
	}
}

// validElements отбрасывает элементы с рамками вне изображения
// и копит предупреждения о качестве входных данных.
func validElements(elements []entity.UIElement, width, height int) ([]entity.UIElement, []string) {
	valid := make([]entity.UIElement, 0, len(elements))
	var warnings []string
	for _, el := range elements {
		if !el.ValidBounds(width, height) {
			warnings = append(warnings, fmt.Sprintf(
				"element %s excluded: bounds %dx%d at (%d,%d) outside %dx%d image",
				el.ID, el.Bounds.Width, el.Bounds.Height, el.Bounds.X, el.Bounds.Y, width, height))
			continue
		}
		valid = append(valid, el)
	}
	return valid, warnings
}

// textBlocks возвращает блоки для оценки читаемости.
// Если готовых блоков нет, текст собирается из текстовых элементов.
func textBlocks(blocks []entity.TextBlock, elements []entity.UIElement) []entity.TextBlock {
	if len(blocks) > 0 {
		return blocks
	}
	derived := make([]entity.TextBlock, 0, len(elements))
	for _, el := range elements {
		if !el.IsTextual() || el.Text == "" {
			continue
		}
		b := el.Bounds
		derived = append(derived, entity.TextBlock{Text: el.Text, Bounds: &b})
	}
	return derived
}
