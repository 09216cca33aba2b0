// Package render рисует результаты анализа поверх исходного скриншота.
package render

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"

	"arai-engine/internal/domain/colorvision"
	"arai-engine/internal/domain/entity"
)

// Annotator рисует рамки вокруг областей с проблемами.
type Annotator struct {
	BorderWidth int
	Quality     int // качество итогового JPEG
}

// NewAnnotator создаёт отрисовщик с настройками по умолчанию.
func NewAnnotator() *Annotator {
	return &Annotator{BorderWidth: 3, Quality: 90}
}

// Annotate возвращает JPEG с цветными рамками вокруг областей проблем.
// Цвет рамки соответствует серьёзности, проблемы без области пропускаются.
func (a *Annotator) Annotate(img image.Image, issues []entity.Issue) ([]byte, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}
	bounds := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	// Рисуем от низкой серьёзности к высокой, чтобы важные рамки были сверху.
	for i := len(issues) - 1; i >= 0; i-- {
		issue := issues[i]
		if issue.Location == nil {
			continue
		}
		a.drawBorder(canvas, *issue.Location, severityColor(issue.Severity))
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: a.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CVDPreview возвращает JPEG изображения, каким его видит человек
// с указанным видом дальтонизма.
func (a *Annotator) CVDPreview(img image.Image, kind colorvision.Deficiency) ([]byte, error) {
	if img == nil {
		return nil, errors.New("nil image")
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, colorvision.SimulateImage(img, kind), &jpeg.Options{Quality: a.Quality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (a *Annotator) drawBorder(canvas *image.RGBA, b entity.BoundingBox, c color.RGBA) {
	rect := image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height).Intersect(canvas.Bounds())
	if rect.Empty() {
		return
	}
	w := a.BorderWidth
	src := &image.Uniform{C: c}

	top := image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+w).Intersect(rect)
	bottom := image.Rect(rect.Min.X, rect.Max.Y-w, rect.Max.X, rect.Max.Y).Intersect(rect)
	left := image.Rect(rect.Min.X, rect.Min.Y, rect.Min.X+w, rect.Max.Y).Intersect(rect)
	right := image.Rect(rect.Max.X-w, rect.Min.Y, rect.Max.X, rect.Max.Y).Intersect(rect)

	draw.Draw(canvas, top, src, image.Point{}, draw.Src)
	draw.Draw(canvas, bottom, src, image.Point{}, draw.Src)
	draw.Draw(canvas, left, src, image.Point{}, draw.Src)
	draw.Draw(canvas, right, src, image.Point{}, draw.Src)
}

// severityColor возвращает цвет рамки для уровня серьёзности.
func severityColor(s entity.Severity) color.RGBA {
	switch s {
	case entity.SeverityCritical:
		return color.RGBA{R: 220, G: 20, B: 60, A: 255}
	case entity.SeverityHigh:
		return color.RGBA{R: 255, G: 140, A: 255}
	case entity.SeverityMedium:
		return color.RGBA{R: 255, G: 215, A: 255}
	default:
		return color.RGBA{R: 144, G: 238, B: 144, A: 255}
	}
}
