package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsInteractive(t *testing.T) {
	require.True(t, UIElement{Type: ElementButton}.IsInteractive())
	require.True(t, UIElement{Type: ElementCheckbox}.IsInteractive())
	require.True(t, UIElement{Type: ElementText, Interactive: true}.IsInteractive())
	require.False(t, UIElement{Type: ElementHeading}.IsInteractive())
	require.False(t, UIElement{Type: ElementContainer}.IsInteractive())
}

func TestValidBounds(t *testing.T) {
	e := UIElement{Bounds: BoundingBox{X: 50, Y: 50, Width: 32, Height: 32}}
	require.True(t, e.ValidBounds(800, 600))

	e = UIElement{Bounds: BoundingBox{X: -1, Y: 0, Width: 10, Height: 10}}
	require.False(t, e.ValidBounds(800, 600))

	e = UIElement{Bounds: BoundingBox{X: 790, Y: 0, Width: 20, Height: 10}}
	require.False(t, e.ValidBounds(800, 600))

	e = UIElement{Bounds: BoundingBox{X: 0, Y: 0, Width: 10, Height: -5}}
	require.False(t, e.ValidBounds(800, 600))
}

func TestEstimatedFontSize(t *testing.T) {
	e := UIElement{Type: ElementText, FontSizePx: 14}
	require.Equal(t, 14.0, e.EstimatedFontSize())

	e = UIElement{Type: ElementText, Bounds: BoundingBox{Height: 22}}
	require.Equal(t, 22.0, e.EstimatedFontSize())

	e = UIElement{Type: ElementImage, Bounds: BoundingBox{Height: 22}}
	require.Equal(t, 0.0, e.EstimatedFontSize())
}
