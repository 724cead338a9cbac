// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"github.com/blitkit/blitkit/f32"
	"github.com/blitkit/blitkit/internal/gl"
)

// vertexCacheSize is the largest vertex count eligible for the
// pre-transform fast path. A textured quad is 4 vertices, the dominant
// draw by far.
const vertexCacheSize = 4

// statesCache is the shadow copy of the GPU binding state. Every write
// to a cacheable dimension goes through an apply method that updates
// the shadow, so a comparison against the shadow is equivalent to a
// comparison against the real GPU state.
type statesCache struct {
	// glStatesSet records whether the baseline states have ever been
	// established on this context.
	glStatesSet bool

	viewChanged              bool
	lastBlendMode            BlendMode
	lastTextureID            uint64
	lastProgram              uint32
	lastProgramBoundTextures bool
	lastColor                Color

	useVertexCache     bool
	lastUsedQuadBuffer bool
	vertexCache        [vertexCacheSize]Vertex
}

// Context is the binding context shared by every RenderTarget that
// renders through the same GL context. It owns the state cache; if two
// targets kept separate caches the shadows would fall out of sync with
// the single real GPU state and stale bindings would leak between
// targets.
//
// A Context is not safe for concurrent use. Correctness depends on
// draws reaching the GPU in the exact order the cache observed them,
// so all targets sharing a Context must be used from a single
// goroutine, in sequence.
type Context struct {
	fns      gl.Functions
	caps     gl.Caps
	defaults *DefaultShaders

	cache statesCache

	blendEquationWarned bool
	quadsWarned         bool
}

// NewContext wraps a GL context. defaults may be nil when no default
// shader programs are available; draws without an explicit shader then
// run on the fixed-function pipeline (program 0).
func NewContext(fns gl.Functions, caps gl.Caps, defaults *DefaultShaders) *Context {
	return &Context{
		fns:      fns,
		caps:     caps,
		defaults: defaults,
		cache:    statesCache{viewChanged: true},
	}
}

// Functions returns the underlying GL call surface.
func (c *Context) Functions() gl.Functions { return c.fns }

// Caps returns the context capabilities.
func (c *Context) Caps() gl.Caps { return c.caps }

func (c *Context) shadersAvailable() bool {
	return c.caps.Shaders && c.defaults != nil
}

func (c *Context) defaultShader(textured bool) *Shader {
	if c.defaults == nil {
		return nil
	}
	if textured {
		return c.defaults.Textured
	}
	return c.defaults.Untextured
}

// applyBlendMode programs both factor pairs and, where the context
// supports them, both equations. On contexts without separate
// equations the color equation is used for both channels; without any
// equation support a non-default equation degrades to add with a
// one-time warning. The cache is updated unconditionally.
func (c *Context) applyBlendMode(mode BlendMode) {
	f := c.fns
	if c.caps.BlendFuncSeparate {
		f.BlendFuncSeparate(
			factorToGL(mode.ColorSrcFactor), factorToGL(mode.ColorDstFactor),
			factorToGL(mode.AlphaSrcFactor), factorToGL(mode.AlphaDstFactor))
	} else {
		f.BlendFunc(factorToGL(mode.ColorSrcFactor), factorToGL(mode.ColorDstFactor))
	}

	if c.caps.BlendMinMax && c.caps.BlendSubtract {
		if c.caps.BlendEquationSeparate {
			f.BlendEquationSeparate(equationToGL(mode.ColorEquation), equationToGL(mode.AlphaEquation))
		} else {
			f.BlendEquation(equationToGL(mode.ColorEquation))
		}
	} else if mode.ColorEquation != BlendAdd || mode.AlphaEquation != BlendAdd {
		if !c.blendEquationWarned {
			logger().Warn("blend equations are not supported by this context; using add")
			c.blendEquationWarned = true
		}
	}

	c.cache.lastBlendMode = mode
}

// applyTransform loads the model transform. There is no equality
// caching here: the transform changes on nearly every draw, so callers
// decide when to load. The matrix mode is assumed to be modelview,
// which every other operation restores before returning.
func (c *Context) applyTransform(t f32.Affine2D) {
	m := t.GLMatrix()
	c.fns.LoadMatrixf(&m)
}

// applyTexture binds the texture, or unbinds if tex is nil, and loads
// the texture matrix from tt (identity when absent). The cache records
// the stable identity, never the GL name: names are recycled after
// deletion and would produce false hits.
func (c *Context) applyTexture(tex *Texture, tt *f32.Affine2D) {
	f := c.fns
	if tex != nil {
		f.BindTexture(gl.TEXTURE_2D, tex.handle)
	} else {
		f.BindTexture(gl.TEXTURE_2D, 0)
	}
	f.MatrixMode(gl.TEXTURE)
	if tt != nil {
		m := tt.GLMatrix()
		f.LoadMatrixf(&m)
	} else {
		f.LoadIdentity()
	}
	f.MatrixMode(gl.MODELVIEW)

	if tex != nil {
		c.cache.lastTextureID = tex.cacheID
	} else {
		c.cache.lastTextureID = 0
	}
}

// applyShader binds the shader, or program 0 if nil, and records the
// native handle plus whether textures are considered bound under it.
func (c *Context) applyShader(s *Shader) {
	if s != nil {
		c.fns.UseProgram(s.program)
		c.cache.lastProgram = s.program
		c.cache.lastProgramBoundTextures = true
	} else {
		c.fns.UseProgram(0)
		c.cache.lastProgram = 0
		c.cache.lastProgramBoundTextures = false
	}
}
