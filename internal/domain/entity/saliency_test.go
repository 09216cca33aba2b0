package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegionMean(t *testing.T) {
	m := NewSaliencyMap(4, 4)
	m.Set(0, 0, 1.0)
	m.Set(1, 0, 1.0)
	m.Set(0, 1, 1.0)
	m.Set(1, 1, 1.0)

	require.InDelta(t, 1.0, m.RegionMean(BoundingBox{X: 0, Y: 0, Width: 2, Height: 2}), 1e-9)
	require.InDelta(t, 0.25, m.RegionMean(BoundingBox{X: 0, Y: 0, Width: 4, Height: 4}), 1e-9)
	require.Equal(t, 0.0, m.RegionMean(BoundingBox{X: 2, Y: 2, Width: 2, Height: 2}))
}

func TestRegionMeanClipped(t *testing.T) {
	m := NewSaliencyMap(4, 4)
	m.Set(3, 3, 0.8)

	require.InDelta(t, 0.8, m.RegionMean(BoundingBox{X: 3, Y: 3, Width: 10, Height: 10}), 1e-9)
	require.Equal(t, 0.0, m.RegionMean(BoundingBox{X: 10, Y: 10, Width: 5, Height: 5}))
}

func TestNormalize(t *testing.T) {
	m := NewSaliencyMap(2, 2)
	m.Values = []float64{2, 4, 6, 10}
	m.Normalize()

	require.InDelta(t, 0.0, m.Values[0], 1e-9)
	require.InDelta(t, 0.25, m.Values[1], 1e-9)
	require.InDelta(t, 0.5, m.Values[2], 1e-9)
	require.InDelta(t, 1.0, m.Values[3], 1e-9)
}

func TestNormalizeFlat(t *testing.T) {
	m := NewSaliencyMap(2, 2)
	m.Values = []float64{3, 3, 3, 3}
	m.Normalize()

	for _, v := range m.Values {
		require.Equal(t, 0.0, v)
	}
}
