// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import "github.com/blitkit/blitkit/f32"

// RenderStates is the per-draw bundle of render state. It is carried
// by value into Draw so that every call looks self-contained; the
// state cache decides which parts actually reach the GPU.
//
// Texture and Shader are borrowed references: the caller keeps them
// alive for the duration of the draw.
type RenderStates struct {
	// Transform maps vertex positions to world coordinates.
	Transform f32.Affine2D

	// TextureTransform, when set, is loaded into the texture matrix so
	// that unit texture coordinates address a sub-rectangle of the
	// texture. Setting it forces a texture re-bind even when the same
	// texture is already bound, since it changes sampling geometry.
	TextureTransform *f32.Affine2D

	// BlendMode combines fragments with the framebuffer.
	BlendMode BlendMode

	// Texture to sample, or nil for untextured drawing.
	Texture *Texture

	// Shader to draw with. Nil selects a context default keyed by
	// texture presence.
	Shader *Shader

	// Color tints the draw when UseColor is set; otherwise opaque
	// white is used.
	Color    Color
	UseColor bool

	// UseQuadBuffer selects the static quad buffer fast path. The
	// vertex slice must then hold exactly the 4 triangle-strip corners
	// of a unit quad.
	UseQuadBuffer bool
}

// DefaultRenderStates is the state bundle used when a drawable is
// drawn with no explicit states: identity transform, alpha blending,
// no texture, no shader, no tint.
func DefaultRenderStates() RenderStates {
	return RenderStates{BlendMode: BlendModeAlpha}
}
