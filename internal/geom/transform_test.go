package geom

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
)

func TestNewTransformScales(t *testing.T) {
	tr := NewTransform(200, 100, 100, 100)
	assert.Equal(t, 2.0, tr.ScaleX)
	assert.Equal(t, 1.0, tr.ScaleY)

	p := tr.Apply(r2.Point{X: 10, Y: 10})
	assert.Equal(t, r2.Point{X: 20, Y: 10}, p)
}

func TestNewTransformIdentityFallback(t *testing.T) {
	tr := NewTransform(200, 100, 0, -1)
	assert.Equal(t, 1.0, tr.ScaleX)
	assert.Equal(t, 1.0, tr.ScaleY)
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(1920, 1080, 640, 480)

	orig := r2.Point{X: 123.4, Y: 456.7}
	back := tr.Invert(tr.Apply(orig))
	assert.InDelta(t, orig.X, back.X, 1e-9)
	assert.InDelta(t, orig.Y, back.Y, 1e-9)
}

func TestInvertZeroScale(t *testing.T) {
	tr := Transform{ScaleX: 0, ScaleY: 2}
	p := tr.Invert(r2.Point{X: 10, Y: 10})
	assert.Equal(t, 10.0, p.X) // untouched when the axis cannot be inverted
	assert.Equal(t, 5.0, p.Y)
}
