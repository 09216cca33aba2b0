// Package readability оценивает читаемость текста интерфейса.
package readability

import (
	"context"
	"fmt"
	"strings"

	"arai-engine/internal/domain/entity"
	"arai-engine/internal/domain/port"
)

// FleschScorer считает лёгкость чтения по формуле Флеша
// и штрафует слишком длинные предложения.
type FleschScorer struct {
	MaxSentenceWords  float64 // порог средней длины предложения
	HardSentenceWords float64 // выше этого порога проблема серьёзная
}

var _ port.ReadabilityScorer = (*FleschScorer)(nil)

// NewFleschScorer создаёт оценщик с порогами по умолчанию.
func NewFleschScorer() *FleschScorer {
	return &FleschScorer{
		MaxSentenceWords:  20,
		HardSentenceWords: 30,
	}
}

// Score возвращает оценку читаемости текстовых блоков.
// Пустой ввод считается идеально читаемым.
func (s *FleschScorer) Score(ctx context.Context, blocks []entity.TextBlock) (*entity.CategoryResult, error) {
	_ = ctx

	var issues []entity.Issue
	totalWords, totalSentences, totalSyllables := 0, 0, 0

	for _, block := range blocks {
		words := strings.Fields(block.Text)
		if len(words) == 0 {
			continue
		}
		sentences := countSentences(block.Text)

		totalWords += len(words)
		totalSentences += sentences
		for _, w := range words {
			totalSyllables += countSyllables(w)
		}

		avg := float64(len(words)) / float64(sentences)
		if avg <= s.MaxSentenceWords {
			continue
		}
		severity := entity.SeverityMedium
		if avg > s.HardSentenceWords {
			severity = entity.SeverityHigh
		}
		issue := entity.Issue{
			Type:           entity.IssueLongSentences,
			Severity:       severity,
			Description:    fmt.Sprintf("Sentences average %.0f words, which slows reading", avg),
			CurrentValue:   fmt.Sprintf("%.0f words per sentence", avg),
			RequiredValue:  fmt.Sprintf("<=%.0f words per sentence", s.MaxSentenceWords),
			Recommendation: "Break long sentences into shorter ones",
			Confidence:     0.7,
		}
		if block.Bounds != nil {
			loc := *block.Bounds
			issue.Location = &loc
		}
		issues = append(issues, issue)
	}

	if totalWords == 0 {
		return &entity.CategoryResult{Score: 100, Issues: []entity.Issue{}}, nil
	}

	ease := fleschEase(totalWords, totalSentences, totalSyllables)
	score := 100.0
	switch {
	case ease < 30:
		score -= 30
		issues = append(issues, difficultTextIssue(ease, "very difficult", entity.SeverityHigh))
	case ease < 50:
		score -= 15
		issues = append(issues, difficultTextIssue(ease, "difficult", entity.SeverityMedium))
	case ease < 60:
		score -= 5
		issues = append(issues, difficultTextIssue(ease, "fairly difficult", entity.SeverityLow))
	}

	for _, issue := range issues {
		if issue.Type != entity.IssueLongSentences {
			continue
		}
		if issue.Severity == entity.SeverityHigh {
			score -= 10
		} else {
			score -= 5
		}
	}
	if score < 0 {
		score = 0
	}

	entity.SortIssues(issues)
	return &entity.CategoryResult{
		Score:      score,
		IssueCount: entity.CountIssues(issues),
		Issues:     issues,
	}, nil
}

func difficultTextIssue(ease float64, label string, severity entity.Severity) entity.Issue {
	return entity.Issue{
		Type:           entity.IssueDifficultText,
		Severity:       severity,
		Description:    fmt.Sprintf("Flesch reading ease %.0f indicates %s text", ease, label),
		CurrentValue:   fmt.Sprintf("%.0f", ease),
		RequiredValue:  ">=60",
		Recommendation: "Use shorter words and sentences to improve readability",
		Confidence:     0.7,
	}
}

// fleschEase считает индекс лёгкости чтения Флеша.
func fleschEase(words, sentences, syllables int) float64 {
	if words == 0 {
		return 100
	}
	if sentences < 1 {
		sentences = 1
	}
	return 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(syllables)/float64(words))
}

// countSentences возвращает количество предложений в тексте.
// Текст без завершающих знаков считается одним предложением.
func countSentences(text string) int {
	count := 0
	inRun := false
	for _, r := range text {
		if r == '.' || r == '!' || r == '?' {
			if !inRun {
				count++
			}
			inRun = true
			continue
		}
		inRun = false
	}
	if count == 0 {
		return 1
	}
	return count
}

const vowels = "aeiouyаеёиоуыэюя"

// countSyllables приближённо считает слоги как группы гласных.
// Немое латинское "e" на конце слова не учитывается.
func countSyllables(word string) int {
	w := strings.ToLower(word)
	if len(w) > 2 && strings.HasSuffix(w, "e") {
		w = strings.TrimSuffix(w, "e")
	}

	count := 0
	inGroup := false
	for _, r := range w {
		if strings.ContainsRune(vowels, r) {
			if !inGroup {
				count++
			}
			inGroup = true
			continue
		}
		inGroup = false
	}
	if count == 0 {
		return 1
	}
	return count
}
