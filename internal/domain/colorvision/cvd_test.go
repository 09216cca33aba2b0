package colorvision

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"

	"arai-engine/internal/domain/entity"
)

func TestSimulateProtanopia(t *testing.T) {
	red := entity.RGB{R: 255, G: 0, B: 0}
	seen := Simulate(red, Protanopia)

	// 255*0.567 = 144.585, 255*0.558 = 142.29
	require.Equal(t, uint8(145), seen.R)
	require.Equal(t, uint8(142), seen.G)
	require.Equal(t, uint8(0), seen.B)
}

func TestSimulateWhiteStaysWhite(t *testing.T) {
	white := entity.RGB{R: 255, G: 255, B: 255}
	for _, kind := range Deficiencies {
		seen := Simulate(white, kind)
		require.InDelta(t, 255, int(seen.R), 1)
		require.InDelta(t, 255, int(seen.G), 1)
		require.InDelta(t, 255, int(seen.B), 1)
	}
}

func TestSimulateUnknownKind(t *testing.T) {
	c := entity.RGB{R: 10, G: 20, B: 30}
	require.Equal(t, c, Simulate(c, Deficiency("unknown")))
}

func TestSimulateImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})

	out := SimulateImage(img, Deuteranopia)
	require.Equal(t, img.Bounds(), out.Bounds())

	r, g, _, a := out.At(0, 0).RGBA()
	require.Equal(t, uint8(159), uint8(r>>8)) // 255*0.625
	require.InDelta(t, 178, int(uint8(g>>8)), 1)
	require.Equal(t, uint8(255), uint8(a>>8))
}

func TestDeltaEIdentical(t *testing.T) {
	c := entity.RGB{R: 120, G: 80, B: 200}
	require.InDelta(t, 0.0, DeltaE(c, c), 1e-9)
}

func TestDeltaEBlackWhite(t *testing.T) {
	d := DeltaE(entity.RGB{}, entity.RGB{R: 255, G: 255, B: 255})
	require.InDelta(t, 100.0, d, 0.01)
}

func TestDeltaESymmetric(t *testing.T) {
	a := entity.RGB{R: 200, G: 30, B: 30}
	b := entity.RGB{R: 30, G: 160, B: 30}
	require.InDelta(t, DeltaE(a, b), DeltaE(b, a), 1e-9)
}

func TestRedGreenCollapseUnderDeuteranopia(t *testing.T) {
	red := entity.RGB{R: 220, G: 40, B: 40}
	green := entity.RGB{R: 40, G: 180, B: 40}

	normal := DeltaE(red, green)
	simulated := DeltaE(Simulate(red, Deuteranopia), Simulate(green, Deuteranopia))

	require.Greater(t, normal, 10.0)
	require.Less(t, simulated, normal)
}
