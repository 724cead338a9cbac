// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"github.com/chewxy/math32"

	"github.com/blitkit/blitkit/f32"
)

// View is a 2D camera: a world-space rectangle (center, size,
// rotation) mapped onto a viewport expressed as fractions of the
// target size. Views are plain values; a RenderTarget stores its own
// copy.
//
// The forward transform maps world coordinates to normalized device
// coordinates with +Y up, so the world-space top edge lands at NDC
// y=+1. It is recomputed lazily and cached across copies.
type View struct {
	center   f32.Point
	size     f32.Point
	rotation float32 // degrees, [0, 360)
	viewport f32.Rectangle

	transform      f32.Affine2D
	invTransform   f32.Affine2D
	transformOK    bool
	invTransformOK bool
}

// NewView creates a view covering the given world rectangle with the
// full-target viewport.
func NewView(rect f32.Rectangle) *View {
	v := &View{viewport: f32.Rect(0, 0, 1, 1)}
	v.Reset(rect)
	return v
}

// Reset re-targets the view to the given world rectangle, clearing any
// rotation. The viewport is left unchanged.
func (v *View) Reset(rect f32.Rectangle) {
	v.center = rect.Center()
	v.size = rect.Size()
	v.rotation = 0
	v.invalidate()
}

// SetCenter moves the view to look at the given world point.
func (v *View) SetCenter(center f32.Point) {
	v.center = center
	v.invalidate()
}

// SetSize resizes the visible world rectangle.
func (v *View) SetSize(size f32.Point) {
	v.size = size
	v.invalidate()
}

// SetRotation sets the view rotation in degrees.
func (v *View) SetRotation(degrees float32) {
	v.rotation = math32.Mod(degrees, 360)
	if v.rotation < 0 {
		v.rotation += 360
	}
	v.invalidate()
}

// SetViewport sets the fraction of the target the view renders into,
// with (0,0)-(1,1) covering the whole target.
func (v *View) SetViewport(viewport f32.Rectangle) {
	v.viewport = viewport
}

// Move offsets the view center.
func (v *View) Move(offset f32.Point) {
	v.SetCenter(v.center.Add(offset))
}

// Rotate adds to the view rotation, in degrees.
func (v *View) Rotate(degrees float32) {
	v.SetRotation(v.rotation + degrees)
}

// Zoom scales the visible world rectangle. Factors above 1 zoom out.
func (v *View) Zoom(factor float32) {
	v.SetSize(v.size.Mul(factor))
}

// Center returns the world point the view looks at.
func (v *View) Center() f32.Point { return v.center }

// Size returns the visible world size.
func (v *View) Size() f32.Point { return v.size }

// Rotation returns the view rotation in degrees.
func (v *View) Rotation() float32 { return v.rotation }

// ViewportFraction returns the viewport fraction rectangle.
func (v *View) ViewportFraction() f32.Rectangle { return v.viewport }

// Transform returns the world-to-device transform.
func (v *View) Transform() f32.Affine2D {
	if !v.transformOK {
		// rotation components
		angle := v.rotation * math32.Pi / 180
		sin, cos := math32.Sincos(angle)
		tx := -v.center.X*cos - v.center.Y*sin + v.center.X
		ty := v.center.X*sin - v.center.Y*cos + v.center.Y

		// projection components
		a := 2 / v.size.X
		b := -2 / v.size.Y
		c := -a * v.center.X
		d := -b * v.center.Y

		v.transform = f32.NewAffine2D(
			a*cos, a*sin, a*tx+c,
			-b*sin, b*cos, b*ty+d,
		)
		v.transformOK = true
	}
	return v.transform
}

// InverseTransform returns the device-to-world transform.
func (v *View) InverseTransform() f32.Affine2D {
	if !v.invTransformOK {
		v.invTransform = v.Transform().Invert()
		v.invTransformOK = true
	}
	return v.invTransform
}

func (v *View) invalidate() {
	v.transformOK = false
	v.invTransformOK = false
}
