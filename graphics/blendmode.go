// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"github.com/blitkit/blitkit/internal/assert"
	"github.com/blitkit/blitkit/internal/gl"
)

// BlendFactor is a source or destination blending factor.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

// BlendEquation combines the weighted source and destination colors.
type BlendEquation uint8

const (
	BlendAdd BlendEquation = iota
	BlendSubtract
	BlendReverseSubtract
)

// BlendMode describes how incoming fragments are combined with the
// framebuffer, with separate factor pairs and equations for the color
// and alpha channels. The zero value is BlendAlpha-like only by
// accident; use the named modes or the constructors.
type BlendMode struct {
	ColorSrcFactor BlendFactor
	ColorDstFactor BlendFactor
	ColorEquation  BlendEquation
	AlphaSrcFactor BlendFactor
	AlphaDstFactor BlendFactor
	AlphaEquation  BlendEquation
}

// NewBlendMode builds a mode with the same factors and equation for
// both channels.
func NewBlendMode(src, dst BlendFactor, eq BlendEquation) BlendMode {
	return BlendMode{
		ColorSrcFactor: src, ColorDstFactor: dst, ColorEquation: eq,
		AlphaSrcFactor: src, AlphaDstFactor: dst, AlphaEquation: eq,
	}
}

// Canonical blend modes.
var (
	// BlendModeAlpha blends the source over the destination using the
	// source alpha. It is the default for every draw.
	BlendModeAlpha = BlendMode{
		ColorSrcFactor: BlendSrcAlpha, ColorDstFactor: BlendOneMinusSrcAlpha, ColorEquation: BlendAdd,
		AlphaSrcFactor: BlendOne, AlphaDstFactor: BlendOneMinusSrcAlpha, AlphaEquation: BlendAdd,
	}
	// BlendModeAdd adds source to destination.
	BlendModeAdd = BlendMode{
		ColorSrcFactor: BlendSrcAlpha, ColorDstFactor: BlendOne, ColorEquation: BlendAdd,
		AlphaSrcFactor: BlendOne, AlphaDstFactor: BlendOne, AlphaEquation: BlendAdd,
	}
	// BlendModeMultiply multiplies source with destination.
	BlendModeMultiply = NewBlendMode(BlendDstColor, BlendZero, BlendAdd)
	// BlendModeNone overwrites the destination.
	BlendModeNone = NewBlendMode(BlendOne, BlendZero, BlendAdd)
)

// factorToGL maps a blend factor to its GL constant. An out-of-range
// value is a programming error: assert builds panic, release builds
// substitute BlendZero.
func factorToGL(f BlendFactor) gl.Enum {
	switch f {
	case BlendZero:
		return gl.ZERO
	case BlendOne:
		return gl.ONE
	case BlendSrcColor:
		return gl.SRC_COLOR
	case BlendOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case BlendDstColor:
		return gl.DST_COLOR
	case BlendOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case BlendSrcAlpha:
		return gl.SRC_ALPHA
	case BlendOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case BlendDstAlpha:
		return gl.DST_ALPHA
	case BlendOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	}
	logger().Error("invalid blend factor, substituting BlendZero", "factor", uint8(f))
	assert.That(false, "invalid blend factor %d", f)
	return gl.ZERO
}

// equationToGL maps a blend equation to its GL constant, with the same
// failure policy as factorToGL but substituting BlendAdd.
func equationToGL(eq BlendEquation) gl.Enum {
	switch eq {
	case BlendAdd:
		return gl.FUNC_ADD
	case BlendSubtract:
		return gl.FUNC_SUBTRACT
	case BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	}
	logger().Error("invalid blend equation, substituting BlendAdd", "equation", uint8(eq))
	assert.That(false, "invalid blend equation %d", eq)
	return gl.FUNC_ADD
}
