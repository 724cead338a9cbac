// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blitkit/blitkit/f32"
	"github.com/blitkit/blitkit/internal/gl"
)

func TestSpriteDefaults(t *testing.T) {
	tex := WrapTexture(1, image.Pt(64, 32), image.Pt(64, 32))
	s := NewSprite(tex)

	assert.Equal(t, image.Rect(0, 0, 64, 32), s.TextureRect())
	assert.Equal(t, White, s.Color())
	assert.Equal(t, f32.Pt(1, 1), s.Scale())
	assert.Equal(t, f32.Rect(0, 0, 64, 32), s.LocalBounds())

	// a full-rect sprite samples the whole texture as-is
	assert.Equal(t, f32.AffineId(), s.textureTransform())
}

func TestSpriteSetTextureKeepsRect(t *testing.T) {
	small := WrapTexture(1, image.Pt(32, 32), image.Pt(32, 32))
	big := WrapTexture(2, image.Pt(128, 128), image.Pt(128, 128))

	s := NewSprite(small)
	s.SetTexture(big, false)
	assert.Equal(t, image.Rect(0, 0, 32, 32), s.TextureRect())

	s.SetTexture(big, true)
	assert.Equal(t, image.Rect(0, 0, 128, 128), s.TextureRect())
}

func TestSpriteTransform(t *testing.T) {
	tex := WrapTexture(1, image.Pt(64, 64), image.Pt(64, 64))
	s := NewSprite(tex)
	s.SetOrigin(f32.Pt(32, 32))
	s.SetPosition(f32.Pt(100, 100))
	s.SetRotation(90)

	// the origin lands on the position regardless of rotation
	got := s.Transform().Transform(f32.Pt(32, 32))
	assert.InDelta(t, 100, got.X, 1e-4)
	assert.InDelta(t, 100, got.Y, 1e-4)

	// rotation is clockwise in screen coordinates, so a quarter turn
	// maps local +x to world +y
	got = s.Transform().Transform(f32.Pt(64, 32))
	assert.InDelta(t, 100, got.X, 1e-4)
	assert.InDelta(t, 132, got.Y, 1e-4)
}

func TestSpriteRotationNormalized(t *testing.T) {
	s := NewSprite(WrapTexture(1, image.Pt(8, 8), image.Pt(8, 8)))
	s.SetRotation(-90)
	assert.InDelta(t, 270, s.Rotation(), 1e-6)
	s.Rotate(180)
	assert.InDelta(t, 90, s.Rotation(), 1e-6)
}

func TestSpriteGlobalBounds(t *testing.T) {
	tex := WrapTexture(1, image.Pt(40, 20), image.Pt(40, 20))
	s := NewSprite(tex)
	s.SetPosition(f32.Pt(10, 10))
	s.SetScale(f32.Pt(2, 2))

	b := s.GlobalBounds()
	assert.InDelta(t, 10, b.Min.X, 1e-4)
	assert.InDelta(t, 10, b.Min.Y, 1e-4)
	assert.InDelta(t, 90, b.Max.X, 1e-4)
	assert.InDelta(t, 50, b.Max.Y, 1e-4)

	// rotation swaps the extents
	s.SetScale(f32.Pt(1, 1))
	s.SetRotation(90)
	b = s.GlobalBounds()
	assert.InDelta(t, 20, b.Dx(), 1e-3)
	assert.InDelta(t, 40, b.Dy(), 1e-3)
}

func TestSpriteTextureTransform(t *testing.T) {
	tex := WrapTexture(1, image.Pt(64, 64), image.Pt(64, 64))
	s := NewSprite(tex)
	s.SetTextureRect(image.Rect(16, 16, 48, 48))

	tt := s.textureTransform()
	// unit coordinates address the selected region
	assert.Equal(t, f32.Pt(0.25, 0.25), tt.Transform(f32.Pt(0, 0)))
	assert.Equal(t, f32.Pt(0.75, 0.75), tt.Transform(f32.Pt(1, 1)))
}

func TestSpriteTextureTransformPadded(t *testing.T) {
	// logical 100x100 stored in a padded 128x128 texture
	tex := WrapTexture(1, image.Pt(100, 100), image.Pt(128, 128))
	s := NewSprite(tex)

	tt := s.textureTransform()
	assert.Equal(t, f32.Pt(0, 0), tt.Transform(f32.Pt(0, 0)))
	got := tt.Transform(f32.Pt(1, 1))
	assert.InDelta(t, 100.0/128, got.X, 1e-6)
	assert.InDelta(t, 100.0/128, got.Y, 1e-6)
}

func TestSpriteTextureTransformFlipped(t *testing.T) {
	tex := WrapTexture(1, image.Pt(64, 64), image.Pt(64, 64))
	tex.SetPixelsFlipped(true)
	s := NewSprite(tex)

	tt := s.textureTransform()
	// the vertical axis mirrors within the logical extent
	assert.Equal(t, f32.Pt(0, 1), tt.Transform(f32.Pt(0, 0)))
	assert.Equal(t, f32.Pt(1, 0), tt.Transform(f32.Pt(1, 1)))
}

func TestSpriteDrawUsesQuadBuffer(t *testing.T) {
	fake, target := newTestTarget(gl.AllCaps())
	prime(fake, target)

	tex := WrapTexture(7, image.Pt(64, 64), image.Pt(64, 64))
	s := NewSprite(tex)
	s.SetPosition(f32.Pt(10, 20))
	s.SetColor(RGBA(255, 0, 0, 255))

	target.DrawObject(s, DefaultRenderStates())

	// a sprite is an indexed draw from the static quad buffer
	assert.Equal(t, 1, fake.count("DrawElements"))
	assert.Equal(t, 0, fake.count("DrawArrays"))

	// the tint reaches the color uniform
	call, ok := fake.last("Uniform4f")
	require.True(t, ok)
	assert.Equal(t, []any{int32(0), float32(1), float32(0), float32(0), float32(1)}, call.args)

	// drawing again reuses the quad bindings
	binds := fake.count("BindBuffer")
	target.DrawObject(s, DefaultRenderStates())
	assert.Equal(t, binds, fake.count("BindBuffer"))
	assert.Equal(t, 2, fake.count("DrawElements"))
}

func TestSpriteWithoutTexture(t *testing.T) {
	fake, target := newTestTarget(gl.AllCaps())
	prime(fake, target)

	var s Sprite
	target.DrawObject(&s, DefaultRenderStates())
	assert.Empty(t, fake.names())
}
