package container

import (
	"image"

	"arai-engine/config"
	app "arai-engine/internal/application"
	"arai-engine/internal/domain/attention"
	"arai-engine/internal/domain/port"
	"arai-engine/internal/domain/scoring"
	"arai-engine/internal/domain/wcag"
	"arai-engine/internal/infrastructure/readability"
	"arai-engine/internal/infrastructure/render"
	"arai-engine/internal/infrastructure/storage"
	"arai-engine/internal/infrastructure/vision"
)

// Container собирает готовые сервисы приложения
type Container struct {
	Analysis  *app.AnalysisService
	Annotator *render.Annotator
}

// New строит граф зависимостей по конфигурации и порогам.
func New(cfg *config.Config, th *config.Thresholds) (*Container, error) {
	engine := wcag.NewEngine()
	engine.MinContrastNormal = th.Contrast.Normal
	engine.MinContrastLarge = th.Contrast.Large
	engine.LargeTextPx = th.Contrast.LargeTextPx
	engine.MinTouchTarget = th.Touch.MinSize
	engine.CriticalTouchTarget = th.Touch.CriticalSize
	engine.MinFontSizePx = th.MinFontPx
	engine.MinDeltaE = th.MinDeltaE

	metrics := attention.NewMetrics()
	metrics.GridSize = th.Attention.GridSize
	metrics.MinElementAttention = th.Attention.MinElementAttention
	metrics.MaxSecondaryAttention = th.Attention.MaxSecondaryAttention
	metrics.TopShare = th.Attention.TopShare
	metrics.HighLoad = th.Attention.HighLoad
	metrics.FocalThreshold = th.Attention.FocalThreshold

	aggregator := scoring.NewAggregator()
	aggregator.Severity = scoring.Weights{
		Critical: th.Severity.Critical,
		High:     th.Severity.High,
		Medium:   th.Severity.Medium,
		Low:      th.Severity.Low,
	}
	aggregator.Composite = scoring.CompositeWeights{
		Accessibility: th.Composite.Accessibility,
		Readability:   th.Composite.Readability,
		Attention:     th.Composite.Attention,
	}
	aggregator.LoadFactor = th.Attention.LoadFactor

	flesch := readability.NewFleschScorer()
	flesch.MaxSentenceWords = th.Readability.MaxSentenceWords
	flesch.HardSentenceWords = th.Readability.HardSentenceWords

	var predictor port.SaliencyPredictor
	if cfg.ModelPath != "" {
		onnx, err := vision.NewONNXPredictor(cfg.ModelPath)
		if err != nil {
			return nil, err
		}
		predictor = onnx
	}

	analysis := app.NewAnalysisService(engine, metrics, aggregator, flesch, predictor, vision.NewHeuristicPredictor())
	analysis.Timeout = cfg.SaliencyTimeout
	analysis.SamplerFor = func(img image.Image) wcag.ColorSampler {
		return vision.NewRegionSampler(img)
	}

	if cfg.CacheSize > 0 {
		cache, err := storage.NewLRUSaliencyCache(cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		analysis.Cache = cache
	}

	return &Container{
		Analysis:  analysis,
		Annotator: render.NewAnnotator(),
	}, nil
}
