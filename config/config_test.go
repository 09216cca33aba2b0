package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ARAI_MODEL_PATH", "")
	t.Setenv("ARAI_THRESHOLDS", "")
	t.Setenv("ARAI_SALIENCY_TIMEOUT", "")
	t.Setenv("ARAI_CACHE_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Empty(t, cfg.ModelPath)
	require.Empty(t, cfg.ThresholdsPath)
	require.Equal(t, 30*time.Second, cfg.SaliencyTimeout)
	require.Equal(t, 64, cfg.CacheSize)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARAI_MODEL_PATH", "/models/salgan.onnx")
	t.Setenv("ARAI_SALIENCY_TIMEOUT", "5")
	t.Setenv("ARAI_CACHE_SIZE", "8")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "/models/salgan.onnx", cfg.ModelPath)
	require.Equal(t, 5*time.Second, cfg.SaliencyTimeout)
	require.Equal(t, 8, cfg.CacheSize)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("ARAI_SALIENCY_TIMEOUT", "soon")
	_, err := Load()
	require.Error(t, err)

	t.Setenv("ARAI_SALIENCY_TIMEOUT", "")
	t.Setenv("ARAI_CACHE_SIZE", "-1")
	_, err = Load()
	require.Error(t, err)
}
