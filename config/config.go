package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config задаёт параметры запуска движка анализа
type Config struct {
	ModelPath       string        // путь к ONNX-модели заметности, пусто — только эвристика
	ThresholdsPath  string        // путь к YAML с порогами, пусто — значения по умолчанию
	SaliencyTimeout time.Duration // предел ожидания прогона модели
	CacheSize       int           // ёмкость кэша карт заметности, 0 — без кэша
	LogLevel        string        // debug, info, warn или error
}

// Load читает конфигурацию процесса из переменных окружения
func Load() (*Config, error) {
	// Загружаем .env файл (игнорируем ошибку если файла нет)
	_ = godotenv.Load()

	cfg := &Config{
		ModelPath:       os.Getenv("ARAI_MODEL_PATH"),
		ThresholdsPath:  os.Getenv("ARAI_THRESHOLDS"),
		SaliencyTimeout: 30 * time.Second,
		CacheSize:       64,
		LogLevel:        os.Getenv("ARAI_LOG_LEVEL"),
	}

	if v := os.Getenv("ARAI_SALIENCY_TIMEOUT"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			return nil, fmt.Errorf("invalid ARAI_SALIENCY_TIMEOUT: %s", v)
		}
		cfg.SaliencyTimeout = time.Duration(secs) * time.Second
	}

	if v := os.Getenv("ARAI_CACHE_SIZE"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("invalid ARAI_CACHE_SIZE: %s", v)
		}
		cfg.CacheSize = n
	}

	return cfg, nil
}
