package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Thresholds задаёт пороги проверок и веса итоговых оценок.
// Файл порогов перекрывает значения по умолчанию по полям.
type Thresholds struct {
	Contrast    ContrastThresholds    `yaml:"contrast"`
	Touch       TouchThresholds       `yaml:"touch"`
	MinFontPx   float64               `yaml:"min_font_px"`
	MinDeltaE   float64               `yaml:"min_delta_e"`
	Attention   AttentionThresholds   `yaml:"attention"`
	Readability ReadabilityThresholds `yaml:"readability"`
	Severity    SeverityWeights       `yaml:"severity_weights"`
	Composite   CompositeWeights      `yaml:"composite_weights"`
}

// ContrastThresholds задаёт минимальный контраст текста
type ContrastThresholds struct {
	Normal      float64 `yaml:"normal"`
	Large       float64 `yaml:"large"`
	LargeTextPx float64 `yaml:"large_text_px"`
}

// TouchThresholds задаёт размеры целей касания
type TouchThresholds struct {
	MinSize      int `yaml:"min_size"`
	CriticalSize int `yaml:"critical_size"`
}

// AttentionThresholds задаёт пороги анализа внимания
type AttentionThresholds struct {
	GridSize              int     `yaml:"grid_size"`
	MinElementAttention   float64 `yaml:"min_element_attention"`
	MaxSecondaryAttention float64 `yaml:"max_secondary_attention"`
	TopShare              float64 `yaml:"top_share"`
	HighLoad              float64 `yaml:"high_load"`
	FocalThreshold        float64 `yaml:"focal_threshold"`
	LoadFactor            float64 `yaml:"load_factor"`
}

// ReadabilityThresholds задаёт пороги длины предложений
type ReadabilityThresholds struct {
	MaxSentenceWords  float64 `yaml:"max_sentence_words"`
	HardSentenceWords float64 `yaml:"hard_sentence_words"`
}

// SeverityWeights задаёт штрафы за проблемы по уровням серьёзности
type SeverityWeights struct {
	Critical float64 `yaml:"critical"`
	High     float64 `yaml:"high"`
	Medium   float64 `yaml:"medium"`
	Low      float64 `yaml:"low"`
}

// CompositeWeights задаёт веса категорий в итоговой оценке
type CompositeWeights struct {
	Accessibility float64 `yaml:"accessibility"`
	Readability   float64 `yaml:"readability"`
	Attention     float64 `yaml:"attention"`
}

// DefaultThresholds возвращает пороги WCAG и веса по умолчанию.
func DefaultThresholds() *Thresholds {
	return &Thresholds{
		Contrast: ContrastThresholds{
			Normal:      4.5,
			Large:       3.0,
			LargeTextPx: 18,
		},
		Touch: TouchThresholds{
			MinSize:      44,
			CriticalSize: 24,
		},
		MinFontPx: 16,
		MinDeltaE: 10,
		Attention: AttentionThresholds{
			GridSize:              8,
			MinElementAttention:   0.5,
			MaxSecondaryAttention: 0.8,
			TopShare:              0.10,
			HighLoad:              75,
			FocalThreshold:        0.7,
			LoadFactor:            0.3,
		},
		Readability: ReadabilityThresholds{
			MaxSentenceWords:  20,
			HardSentenceWords: 30,
		},
		Severity: SeverityWeights{
			Critical: 10,
			High:     5,
			Medium:   2,
			Low:      1,
		},
		Composite: CompositeWeights{
			Accessibility: 0.4,
			Readability:   0.3,
			Attention:     0.3,
		},
	}
}

// LoadThresholds читает YAML с порогами поверх значений по умолчанию.
func LoadThresholds(path string) (*Thresholds, error) {
	th := DefaultThresholds()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read thresholds %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, th); err != nil {
		return nil, fmt.Errorf("parse thresholds %s: %w", path, err)
	}
	return th, th.Validate()
}

// Validate проверяет согласованность порогов.
func (t *Thresholds) Validate() error {
	if t.Contrast.Normal <= 1 || t.Contrast.Large <= 1 {
		return fmt.Errorf("contrast thresholds must be > 1")
	}
	if t.Touch.MinSize <= 0 {
		return fmt.Errorf("touch min_size must be > 0")
	}
	if t.Touch.CriticalSize > t.Touch.MinSize {
		return fmt.Errorf("touch critical_size must not exceed min_size")
	}
	if t.MinFontPx <= 0 {
		return fmt.Errorf("min_font_px must be > 0")
	}
	if t.Attention.GridSize < 2 {
		return fmt.Errorf("attention grid_size must be >= 2")
	}
	sum := t.Composite.Accessibility + t.Composite.Readability + t.Composite.Attention
	if math.Abs(sum-1) > 0.001 {
		return fmt.Errorf("composite weights sum to %.3f, expected 1.0", sum)
	}
	return nil
}
