package gm

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRectWithPoints(t *testing.T) {
	r := RectWithPoints(Vec{X: 3, Y: -1}, Vec{X: -2, Y: 4}, Vec{X: 0, Y: 0})
	require.Equal(t, Rect{Min: Vec{X: -2, Y: -1}, Max: Vec{X: 3, Y: 4}}, r)

	require.Equal(t, Rect{}, RectWithPoints())
}

func TestRect_Contains(t *testing.T) {
	r := RectWithCenterAndSize(VecZero, Vec{X: 2, Y: 2})

	require.True(t, r.Contains(VecZero))
	require.True(t, r.Contains(VecOne))
	require.False(t, r.Contains(Vec{X: 1.5}))
	require.Equal(t, Vec{X: 2, Y: 2}, r.Size())
	require.Equal(t, image.Rect(-1, -1, 1, 1), r.ToImageRectangle())
}
