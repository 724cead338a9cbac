// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/blitkit/blitkit/f32"
)

func TestViewTransformCorners(t *testing.T) {
	v := NewView(f32.Rect(0, 0, 800, 600))

	// the center lands on the device origin, the world top-left on the
	// upper-left device corner
	got := v.Transform().Transform(f32.Pt(400, 300))
	assert.InDelta(t, 0, got.X, 1e-5)
	assert.InDelta(t, 0, got.Y, 1e-5)

	got = v.Transform().Transform(f32.Pt(0, 0))
	assert.InDelta(t, -1, got.X, 1e-5)
	assert.InDelta(t, 1, got.Y, 1e-5)

	got = v.Transform().Transform(f32.Pt(800, 600))
	assert.InDelta(t, 1, got.X, 1e-5)
	assert.InDelta(t, -1, got.Y, 1e-5)
}

func TestViewInverseRoundTrip(t *testing.T) {
	v := NewView(f32.Rect(0, 0, 800, 600))
	v.SetRotation(45)
	v.Move(f32.Pt(100, -50))
	v.Zoom(0.5)

	p := f32.Pt(321, 123)
	back := v.InverseTransform().Transform(v.Transform().Transform(p))
	assert.InDelta(t, p.X, back.X, 1e-2)
	assert.InDelta(t, p.Y, back.Y, 1e-2)
}

func TestViewReset(t *testing.T) {
	v := NewView(f32.Rect(0, 0, 100, 100))
	v.SetRotation(90)
	v.SetViewport(f32.Rect(0, 0, 0.5, 0.5))

	v.Reset(f32.Rect(10, 10, 210, 110))
	assert.Equal(t, f32.Pt(110, 60), v.Center())
	assert.Equal(t, f32.Pt(200, 100), v.Size())
	assert.Equal(t, float32(0), v.Rotation())
	// the viewport is not part of the world rectangle
	assert.Equal(t, f32.Rect(0, 0, 0.5, 0.5), v.ViewportFraction())
}

func TestViewRotationNormalized(t *testing.T) {
	v := NewView(f32.Rect(0, 0, 100, 100))
	v.SetRotation(-90)
	assert.InDelta(t, 270, v.Rotation(), 1e-6)
	v.Rotate(100)
	assert.InDelta(t, 10, v.Rotation(), 1e-4)
	v.SetRotation(720)
	assert.InDelta(t, 0, v.Rotation(), 1e-6)
}

func TestViewZoomMove(t *testing.T) {
	v := NewView(f32.Rect(0, 0, 800, 600))
	v.Zoom(2)
	assert.Equal(t, f32.Pt(1600, 1200), v.Size())
	v.Move(f32.Pt(10, 20))
	assert.Equal(t, f32.Pt(410, 320), v.Center())
}

func TestViewTransformCachedAcrossCopies(t *testing.T) {
	v := NewView(f32.Rect(0, 0, 800, 600))
	first := v.Transform()

	// a copy carries the cached transform
	cp := *v
	assert.Equal(t, first, cp.Transform())

	// mutation invalidates
	cp.SetCenter(f32.Pt(0, 0))
	assert.NotEqual(t, first, cp.Transform())
}
