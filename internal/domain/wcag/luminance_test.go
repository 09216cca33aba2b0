package wcag

import (
	"testing"

	"github.com/stretchr/testify/require"

	"arai-engine/internal/domain/entity"
)

func TestRelativeLuminance(t *testing.T) {
	require.InDelta(t, 0.0, RelativeLuminance(entity.RGB{}), 1e-9)
	require.InDelta(t, 1.0, RelativeLuminance(entity.RGB{R: 255, G: 255, B: 255}), 1e-9)
	require.InDelta(t, 0.2126, RelativeLuminance(entity.RGB{R: 255}), 1e-4)
}

func TestContrastRatioRange(t *testing.T) {
	pairs := [][2]entity.RGB{
		{{R: 0, G: 0, B: 0}, {R: 255, G: 255, B: 255}},
		{{R: 255, G: 0, B: 0}, {R: 0, G: 255, B: 0}},
		{{R: 17, G: 34, B: 51}, {R: 200, G: 180, B: 60}},
		{{R: 128, G: 128, B: 128}, {R: 128, G: 128, B: 128}},
	}

	for _, p := range pairs {
		ratio := ContrastRatio(p[0], p[1])
		require.GreaterOrEqual(t, ratio, 1.0)
		require.LessOrEqual(t, ratio, 21.0)
		require.InDelta(t, ratio, ContrastRatio(p[1], p[0]), 1e-9)
	}
}

func TestContrastRatioBlackWhite(t *testing.T) {
	ratio := ContrastRatio(entity.RGB{}, entity.RGB{R: 255, G: 255, B: 255})
	require.InDelta(t, 21.0, ratio, 1e-9)
}

func TestContrastRatioIdenticalColors(t *testing.T) {
	white := entity.RGB{R: 255, G: 255, B: 255}
	require.InDelta(t, 1.0, ContrastRatio(white, white), 1e-9)
}
