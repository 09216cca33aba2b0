package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"log/slog"
	"os"
	"strings"

	"arai-engine/config"
	app "arai-engine/internal/application"
	"arai-engine/internal/container"
	"arai-engine/internal/domain/colorvision"
	"arai-engine/internal/domain/entity"
)

func main() {
	imagePath := flag.String("image", "", "path to the screenshot (png or jpeg)")
	elementsPath := flag.String("elements", "", "path to the detected elements JSON")
	blocksPath := flag.String("blocks", "", "path to the extracted text blocks JSON")
	annotatePath := flag.String("annotate", "", "write an annotated screenshot to this path")
	cvdKind := flag.String("cvd", "", "color vision preview: protanopia, deuteranopia or tritanopia")
	cvdPath := flag.String("cvd-out", "", "output path for the color vision preview")
	flag.Parse()

	if *imagePath == "" {
		log.Fatal("-image is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel(cfg.LogLevel)})))

	thresholds := config.DefaultThresholds()
	if cfg.ThresholdsPath != "" {
		thresholds, err = config.LoadThresholds(cfg.ThresholdsPath)
		if err != nil {
			log.Fatalf("Failed to load thresholds: %v", err)
		}
	}

	img, err := loadImage(*imagePath)
	if err != nil {
		log.Fatalf("Failed to load image: %v", err)
	}

	var elements []entity.UIElement
	if *elementsPath != "" {
		if err := readJSON(*elementsPath, &elements); err != nil {
			log.Fatalf("Failed to load elements: %v", err)
		}
	}

	var blocks []entity.TextBlock
	if *blocksPath != "" {
		if err := readJSON(*blocksPath, &blocks); err != nil {
			log.Fatalf("Failed to load text blocks: %v", err)
		}
	}

	// Собираем сервисы приложения
	c, err := container.New(cfg, thresholds)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}

	result, err := c.Analysis.Analyze(context.Background(), app.Input{
		Image:    img,
		Elements: elements,
		Blocks:   blocks,
	})
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}

	if *annotatePath != "" {
		data, err := c.Annotator.Annotate(img, result.AllIssues())
		if err != nil {
			log.Fatalf("Failed to annotate: %v", err)
		}
		if err := os.WriteFile(*annotatePath, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *annotatePath, err)
		}
	}

	if *cvdKind != "" {
		kind, err := parseDeficiency(*cvdKind)
		if err != nil {
			log.Fatalf("Failed to parse -cvd: %v", err)
		}
		if *cvdPath == "" {
			log.Fatal("-cvd-out is required with -cvd")
		}
		data, err := c.Annotator.CVDPreview(img, kind)
		if err != nil {
			log.Fatalf("Failed to render preview: %v", err)
		}
		if err := os.WriteFile(*cvdPath, data, 0o644); err != nil {
			log.Fatalf("Failed to write %s: %v", *cvdPath, err)
		}
	}

	slog.Info("analysis complete",
		"score", result.ARAIScore,
		"grade", result.OverallGrade,
		"issues", len(result.AllIssues()),
		"degraded", result.Attention.Degraded)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
	fmt.Println(string(out))
}

// loadImage читает и декодирует скриншот
func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// readJSON читает JSON-файл в переданную структуру
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// parseDeficiency разбирает тип нарушения цветового зрения
func parseDeficiency(s string) (colorvision.Deficiency, error) {
	kind := colorvision.Deficiency(strings.ToLower(s))
	for _, d := range colorvision.Deficiencies {
		if kind == d {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown deficiency %q", s)
}

// logLevel переводит строку конфигурации в уровень slog
func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
