// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"image"

	"github.com/chewxy/math32"

	"github.com/blitkit/blitkit/f32"
)

// unitQuad is the triangle-strip unit quad every sprite renders. The
// static quad buffer holds the same data on the GPU; the slice exists
// so the draw call still carries a vertex count.
var unitQuad = [quadVertexCount]Vertex{
	{Position: f32.Pt(0, 0), Color: White, TexCoords: f32.Pt(0, 0)},
	{Position: f32.Pt(0, 1), Color: White, TexCoords: f32.Pt(0, 1)},
	{Position: f32.Pt(1, 0), Color: White, TexCoords: f32.Pt(1, 0)},
	{Position: f32.Pt(1, 1), Color: White, TexCoords: f32.Pt(1, 1)},
}

// Sprite draws a rectangular region of a texture with a position,
// rotation, scale and origin. Every sprite renders through the
// target's static quad buffer: the quad is stretched to the texture
// rectangle by a transform and the texture matrix selects the region,
// so no per-sprite vertex data is ever uploaded.
type Sprite struct {
	texture     *Texture
	textureRect image.Rectangle
	color       Color

	position f32.Point
	rotation float32 // degrees
	scale    f32.Point
	origin   f32.Point

	transform   f32.Affine2D
	transformOK bool
}

// NewSprite creates a sprite covering the whole texture.
func NewSprite(tex *Texture) *Sprite {
	s := &Sprite{
		color: White,
		scale: f32.Pt(1, 1),
	}
	s.SetTexture(tex, true)
	return s
}

// SetTexture changes the source texture. With resetRect the texture
// rectangle is reset to the full logical size.
func (s *Sprite) SetTexture(tex *Texture, resetRect bool) {
	s.texture = tex
	if resetRect && tex != nil {
		sz := tex.Size()
		s.textureRect = image.Rect(0, 0, sz.X, sz.Y)
	}
}

// Texture returns the source texture.
func (s *Sprite) Texture() *Texture { return s.texture }

// SetTextureRect selects the texture region the sprite displays, in
// pixels.
func (s *Sprite) SetTextureRect(rect image.Rectangle) {
	s.textureRect = rect
}

// TextureRect returns the displayed texture region.
func (s *Sprite) TextureRect() image.Rectangle { return s.textureRect }

// SetColor sets the tint multiplied into the texture.
func (s *Sprite) SetColor(c Color) { s.color = c }

// Color returns the tint.
func (s *Sprite) Color() Color { return s.color }

// SetPosition places the sprite's origin at the given world point.
func (s *Sprite) SetPosition(p f32.Point) {
	s.position = p
	s.transformOK = false
}

// Position returns the world position of the origin.
func (s *Sprite) Position() f32.Point { return s.position }

// Move offsets the position.
func (s *Sprite) Move(offset f32.Point) {
	s.SetPosition(s.position.Add(offset))
}

// SetRotation sets the rotation around the origin, in degrees.
func (s *Sprite) SetRotation(degrees float32) {
	s.rotation = math32.Mod(degrees, 360)
	if s.rotation < 0 {
		s.rotation += 360
	}
	s.transformOK = false
}

// Rotation returns the rotation in degrees.
func (s *Sprite) Rotation() float32 { return s.rotation }

// Rotate adds to the rotation, in degrees.
func (s *Sprite) Rotate(degrees float32) {
	s.SetRotation(s.rotation + degrees)
}

// SetScale sets the scale factors applied around the origin.
func (s *Sprite) SetScale(factors f32.Point) {
	s.scale = factors
	s.transformOK = false
}

// Scale returns the scale factors.
func (s *Sprite) Scale() f32.Point { return s.scale }

// SetOrigin sets the local point, in texture-rectangle pixels, that
// position, rotation and scale are relative to.
func (s *Sprite) SetOrigin(origin f32.Point) {
	s.origin = origin
	s.transformOK = false
}

// Origin returns the local origin.
func (s *Sprite) Origin() f32.Point { return s.origin }

// LocalBounds returns the sprite's bounds in its own coordinate
// system, ignoring the transform.
func (s *Sprite) LocalBounds() f32.Rectangle {
	w := math32.Abs(float32(s.textureRect.Dx()))
	h := math32.Abs(float32(s.textureRect.Dy()))
	return f32.Rect(0, 0, w, h)
}

// GlobalBounds returns the axis-aligned bounds of the transformed
// sprite in world coordinates.
func (s *Sprite) GlobalBounds() f32.Rectangle {
	return transformRect(s.Transform(), s.LocalBounds())
}

// Transform returns the combined position, rotation, scale and origin
// transform. It is cached until one of them changes.
func (s *Sprite) Transform() f32.Affine2D {
	if !s.transformOK {
		angle := -s.rotation * math32.Pi / 180
		sin, cos := math32.Sincos(angle)
		sxc := s.scale.X * cos
		syc := s.scale.Y * cos
		sxs := s.scale.X * sin
		sys := s.scale.Y * sin
		tx := -s.origin.X*sxc - s.origin.Y*sys + s.position.X
		ty := s.origin.X*sxs - s.origin.Y*syc + s.position.Y

		s.transform = f32.NewAffine2D(
			sxc, sys, tx,
			-sxs, syc, ty,
		)
		s.transformOK = true
	}
	return s.transform
}

// Draw renders the sprite through the target's static quad buffer.
func (s *Sprite) Draw(target *RenderTarget, states RenderStates) {
	if s.texture == nil {
		return
	}

	// stretch the unit quad to the texture rectangle
	w := float32(s.textureRect.Dx())
	h := float32(s.textureRect.Dy())
	vertexTransform := f32.NewAffine2D(
		w, 0, 0,
		0, h, 0,
	)
	states.Transform = states.Transform.Mul(s.Transform()).Mul(vertexTransform)

	tt := s.textureTransform()
	states.TextureTransform = &tt
	states.Texture = s.texture
	states.Color = s.color
	states.UseColor = true
	states.UseQuadBuffer = true

	target.Draw(unitQuad[:], TriangleStrip, states)
}

// textureTransform maps unit texture coordinates to the sprite's
// region of the texture, in the texture's actual (possibly padded)
// normalized space. A flipped texture mirrors the region vertically
// within its logical extent.
func (s *Sprite) textureTransform() f32.Affine2D {
	actual := s.texture.ActualSize()
	sx := float32(s.textureRect.Dx()) / float32(actual.X)
	sy := float32(s.textureRect.Dy()) / float32(actual.Y)
	ox := float32(s.textureRect.Min.X) / float32(actual.X)
	oy := float32(s.textureRect.Min.Y) / float32(actual.Y)
	if s.texture.PixelsFlipped() {
		sy = -sy
		oy = float32(s.texture.Size().Y)/float32(actual.Y) - oy
	}
	return f32.NewAffine2D(
		sx, 0, ox,
		0, sy, oy,
	)
}

// transformRect returns the axis-aligned bounds of a transformed
// rectangle.
func transformRect(t f32.Affine2D, r f32.Rectangle) f32.Rectangle {
	corners := [4]f32.Point{
		t.Transform(r.Min),
		t.Transform(f32.Pt(r.Min.X, r.Max.Y)),
		t.Transform(f32.Pt(r.Max.X, r.Min.Y)),
		t.Transform(r.Max),
	}
	bounds := f32.Rectangle{Min: corners[0], Max: corners[0]}
	for _, c := range corners[1:] {
		bounds.Min.X = math32.Min(bounds.Min.X, c.X)
		bounds.Min.Y = math32.Min(bounds.Min.Y, c.Y)
		bounds.Max.X = math32.Max(bounds.Max.X, c.X)
		bounds.Max.Y = math32.Max(bounds.Max.Y, c.Y)
	}
	return bounds
}
