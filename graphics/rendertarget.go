// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"image"
	"unsafe"

	"github.com/blitkit/blitkit/f32"
	"github.com/blitkit/blitkit/internal/assert"
	"github.com/blitkit/blitkit/internal/gl"
)

// Drawer is implemented by high level objects that know how to draw
// themselves onto a target, like Sprite.
type Drawer interface {
	Draw(target *RenderTarget, states RenderStates)
}

// RenderTarget issues draw calls against a surface (a window or an
// off-screen texture) through a shared Context. It owns a logical
// view, a default view derived from the surface size, and a static
// quad buffer pair used by the sprite fast path.
//
// A RenderTarget inherits the Context's single-goroutine constraint.
type RenderTarget struct {
	ctx  *Context
	size image.Point

	view        View
	defaultView View

	quadVertexBuffer uint32
	quadIndexBuffer  uint32
	released         bool

	// activate makes the target's surface the current GL context.
	// When it fails the operation is silently skipped: a failing
	// activation almost always means the surface is being torn down
	// and there is no way to surface a recoverable error mid-frame.
	activate func(active bool) bool

	// forceColorReapply preserves the historical DrawAdvanced
	// behavior of reapplying the tint uniform on every call.
	forceColorReapply bool
}

// NewRenderTarget creates a target of the given pixel size. The GL
// context must be current: the static quad buffers are allocated here.
// The baseline flag is cleared so that the first draw re-establishes
// the GL states this layer depends on.
func NewRenderTarget(ctx *Context, size image.Point) *RenderTarget {
	t := &RenderTarget{
		ctx:               ctx,
		size:              size,
		forceColorReapply: true,
	}
	t.defaultView = *NewView(f32.Rect(0, 0, float32(size.X), float32(size.Y)))
	t.view = t.defaultView

	// defer baseline setup to the first draw so that user GL states
	// are not disturbed by construction
	ctx.cache.glStatesSet = false

	t.initQuadBuffers()
	return t
}

// SetActivator installs the hook that makes the target's surface
// current. A nil activator (the default) always succeeds, which is
// correct for a plain window that is current for the whole frame.
func (t *RenderTarget) SetActivator(activate func(active bool) bool) {
	t.activate = activate
}

// SetForceColorReapply controls whether DrawAdvanced reapplies the
// tint uniform unconditionally. It defaults to true.
func (t *RenderTarget) SetForceColorReapply(force bool) {
	t.forceColorReapply = force
}

// Release frees the static quad buffers. The target must not be used
// afterwards.
func (t *RenderTarget) Release() {
	if t.released {
		return
	}
	t.released = true
	t.ctx.fns.DeleteBuffer(t.quadIndexBuffer)
	t.ctx.fns.DeleteBuffer(t.quadVertexBuffer)
}

// Size returns the target's pixel size.
func (t *RenderTarget) Size() image.Point { return t.size }

// Clear fills the whole target with the given color. Any bound
// texture is unbound first: leaving an off-screen target's attachment
// bound during a clear trips a class of driver bugs where the clear
// does not take.
func (t *RenderTarget) Clear(color Color) {
	if !t.activateTarget() {
		return
	}
	t.ctx.applyTexture(nil, nil)
	t.resetGLStates(true)

	r, g, b, a := color.vec4()
	t.ctx.fns.ClearColor(r, g, b, a)
	t.ctx.fns.Clear(gl.COLOR_BUFFER_BIT)
}

// SetView replaces the current view. The projection is reprogrammed
// on the next draw.
func (t *RenderTarget) SetView(view View) {
	t.view = view
	t.ctx.cache.viewChanged = true
}

// View returns a copy of the current view.
func (t *RenderTarget) View() View { return t.view }

// DefaultView returns a copy of the view covering the full target at
// construction size.
func (t *RenderTarget) DefaultView() View { return t.defaultView }

// Viewport maps the view's viewport fractions to a pixel rectangle in
// target space, rounding each edge to nearest. A nil view means the
// current view.
//
// The rounding (add 0.5, truncate) is load bearing for pixel-exact
// hit testing; keep it in sync with MapPixelToCoords.
func (t *RenderTarget) Viewport(view *View) image.Rectangle {
	if view == nil {
		view = &t.view
	}
	width := float32(t.size.X)
	height := float32(t.size.Y)
	vp := view.ViewportFraction()
	x := int(0.5 + width*vp.Min.X)
	y := int(0.5 + height*vp.Min.Y)
	w := int(0.5 + width*vp.Dx())
	h := int(0.5 + height*vp.Dy())
	return image.Rect(x, y, x+w, y+h)
}

// MapPixelToCoords converts a target-pixel position to the world
// coordinates seen through the view (nil for the current view): the
// pixel is first mapped to normalized device coordinates using the
// viewport rectangle (flipping Y, since device Y points up), then
// through the view's inverse transform.
func (t *RenderTarget) MapPixelToCoords(p image.Point, view *View) f32.Point {
	if view == nil {
		view = &t.view
	}
	vp := t.Viewport(view)
	normalized := f32.Point{
		X: -1 + 2*(float32(p.X)-float32(vp.Min.X))/float32(vp.Dx()),
		Y: 1 - 2*(float32(p.Y)-float32(vp.Min.Y))/float32(vp.Dy()),
	}
	return view.InverseTransform().Transform(normalized)
}

// MapCoordsToPixel is the inverse of MapPixelToCoords up to integer
// truncation.
func (t *RenderTarget) MapCoordsToPixel(p f32.Point, view *View) image.Point {
	if view == nil {
		view = &t.view
	}
	normalized := view.Transform().Transform(p)
	vp := t.Viewport(view)
	return image.Point{
		X: int((normalized.X+1)/2*float32(vp.Dx())) + vp.Min.X,
		Y: int((-normalized.Y+1)/2*float32(vp.Dy())) + vp.Min.Y,
	}
}

// Draw renders a vertex stream with the given states. When the states
// carry no shader an internal default is selected by texture presence.
func (t *RenderTarget) Draw(vertices []Vertex, primitive PrimitiveType, states RenderStates) {
	t.drawImpl(vertices, primitive, states, false)
}

// DrawAdvanced renders a vertex stream with a caller-supplied shader,
// which is required: there is no default fallback on this path. The
// tint uniform is reapplied every call while the force-color policy is
// enabled.
func (t *RenderTarget) DrawAdvanced(vertices []Vertex, primitive PrimitiveType, states RenderStates) {
	assert.That(states.Shader != nil, "DrawAdvanced requires an explicit shader")
	if states.Shader == nil {
		return
	}
	t.drawImpl(vertices, primitive, states, true)
}

// DrawObject dispatches to the drawable with the given states.
func (t *RenderTarget) DrawObject(d Drawer, states RenderStates) {
	d.Draw(t, states)
}

// PushGLStates saves the entire GL attribute and matrix stacks so that
// foreign GL code can run without corrupting this layer's assumptions,
// then re-establishes this layer's baseline so the foreign code starts
// from a known state. Pair with PopGLStates.
func (t *RenderTarget) PushGLStates() {
	if t.activateTarget() {
		if assert.Enabled {
			if e := t.ctx.fns.GetError(); e != gl.NO_ERROR {
				logger().Warn("GL error left unchecked by user code", "error", uint32(e))
			}
		}
		f := t.ctx.fns
		f.PushClientAttrib(gl.CLIENT_ALL_ATTRIB_BITS)
		f.PushAttrib(gl.ALL_ATTRIB_BITS)
		f.MatrixMode(gl.MODELVIEW)
		f.PushMatrix()
		f.MatrixMode(gl.PROJECTION)
		f.PushMatrix()
		f.MatrixMode(gl.TEXTURE)
		f.PushMatrix()
	}
	t.ResetGLStates()
}

// PopGLStates restores the stacks saved by PushGLStates.
func (t *RenderTarget) PopGLStates() {
	if !t.activateTarget() {
		return
	}
	f := t.ctx.fns
	f.MatrixMode(gl.PROJECTION)
	f.PopMatrix()
	f.MatrixMode(gl.MODELVIEW)
	f.PopMatrix()
	f.MatrixMode(gl.TEXTURE)
	f.PopMatrix()
	f.PopClientAttrib()
	f.PopAttrib()
}

// ResetGLStates re-establishes the baseline GL states this layer
// assumes (no culling, lighting, depth or alpha test; 2D texturing,
// blending and the three client arrays on) and re-applies every
// cacheable dimension, resynchronizing the cache with the real GPU
// state after foreign code may have mutated it.
func (t *RenderTarget) ResetGLStates() {
	t.resetGLStates(false)
}

// resetGLStates with applyOnly set skips the structural enables and
// the buffer unbinds, re-applying only the cacheable dimensions. Used
// by Clear, where the structural state is known to be unaffected.
func (t *RenderTarget) resetGLStates(applyOnly bool) {
	c := t.ctx
	// read before activation so a context change cannot slip between
	shadersAvailable := c.shadersAvailable()

	if !t.activateTarget() {
		return
	}
	f := c.fns

	if !applyOnly {
		if c.caps.Multitexture {
			f.ClientActiveTexture(gl.TEXTURE0)
			f.ActiveTexture(gl.TEXTURE0)
		}

		f.Disable(gl.CULL_FACE)
		f.Disable(gl.LIGHTING)
		f.Disable(gl.DEPTH_TEST)
		f.Disable(gl.ALPHA_TEST)
		f.Enable(gl.TEXTURE_2D)
		f.Enable(gl.BLEND)
		f.MatrixMode(gl.MODELVIEW)
		f.EnableClientState(gl.VERTEX_ARRAY)
		f.EnableClientState(gl.COLOR_ARRAY)
		f.EnableClientState(gl.TEXTURE_COORD_ARRAY)
		c.cache.glStatesSet = true
	}

	c.applyBlendMode(BlendModeAlpha)
	c.applyTransform(f32.AffineId())
	c.applyTexture(nil, nil)
	if shadersAvailable {
		c.applyShader(nil)
	}

	if !applyOnly {
		f.BindBuffer(gl.ARRAY_BUFFER, 0)
		f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
		c.cache.useVertexCache = false
		c.cache.lastUsedQuadBuffer = false

		t.SetView(t.view)
	}
}

// drawImpl is the single state-diffing draw routine behind Draw and
// DrawAdvanced.
func (t *RenderTarget) drawImpl(vertices []Vertex, primitive PrimitiveType, states RenderStates, requireShader bool) {
	if len(vertices) == 0 {
		return
	}
	c := t.ctx
	f := c.fns

	if primitive == Quads && !c.caps.Quads {
		if !c.quadsWarned {
			logger().Warn("Quads primitive type is not supported by this context, drawing skipped")
			c.quadsWarned = true
		}
		return
	}
	assert.That(!states.UseQuadBuffer || len(vertices) == quadVertexCount,
		"quad buffer path expects exactly %d vertices, got %d", quadVertexCount, len(vertices))

	if !t.activateTarget() {
		return
	}
	cache := &c.cache

	if !cache.glStatesSet {
		t.resetGLStates(false)
	}

	// Per-draw transform loads are the most expensive repeated state
	// change for small batches, so pre-multiply small batches into the
	// scratch buffer and render them under an identity transform.
	useVertexCache := len(vertices) <= vertexCacheSize && !states.UseQuadBuffer
	if useVertexCache {
		for i, v := range vertices {
			cache.vertexCache[i] = Vertex{
				Position:  states.Transform.Transform(v.Position),
				Color:     v.Color,
				TexCoords: v.TexCoords,
			}
		}
		if !cache.useVertexCache {
			c.applyTransform(f32.AffineId())
		}
	} else {
		c.applyTransform(states.Transform)
	}

	if cache.viewChanged {
		t.applyCurrentView()
	}

	if states.BlendMode != cache.lastBlendMode {
		c.applyBlendMode(states.BlendMode)
	}

	// resolve the effective shader
	shader := states.Shader
	defaultTextured := false
	if shader == nil && !requireShader {
		defaultTextured = states.Texture != nil
		shader = c.defaultShader(defaultTextured)
	}

	// compare stable identities, never GL names; a texture transform
	// forces a re-bind since it changes sampling geometry even for the
	// same texture
	var textureID uint64
	if states.Texture != nil {
		textureID = states.Texture.cacheID
	}
	if textureID != cache.lastTextureID || states.TextureTransform != nil {
		c.applyTexture(states.Texture, states.TextureTransform)
	}

	setColor := requireShader && t.forceColorReapply
	if shader != nil {
		if shader.program != cache.lastProgram || !cache.lastProgramBoundTextures {
			setColor = true
			c.applyShader(shader)
			if defaultTextured && shader.textureLoc >= 0 {
				// the default textured shader emulates the fixed
				// function single-texture pipeline: sample unit 0
				f.Uniform1i(shader.textureLoc, 0)
			}
		}

		color := White
		if states.UseColor {
			color = states.Color
		}
		if color != cache.lastColor || setColor {
			// set the uniform directly; the program is already bound
			r, g, b, a := color.vec4()
			f.Uniform4f(shader.colorLoc, r, g, b, a)
			cache.lastColor = color
		}
	}

	// swap in the scratch buffer. If the previous draw also used it
	// the attribute pointers are already correct: both draws point
	// into the same scratch memory.
	drawVertices := vertices
	if useVertexCache {
		if !cache.useVertexCache {
			drawVertices = cache.vertexCache[:]
		} else {
			drawVertices = nil
		}
	}

	if cache.lastUsedQuadBuffer && !states.UseQuadBuffer {
		// leaving the buffer path; client-array pointers are invalid
		// while a buffer is bound
		f.BindBuffer(gl.ARRAY_BUFFER, 0)
		f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	}

	if states.UseQuadBuffer {
		if !cache.lastUsedQuadBuffer {
			f.BindBuffer(gl.ARRAY_BUFFER, t.quadVertexBuffer)
			f.VertexPointer(2, gl.FLOAT, vertexStride, gl.PtrOffset(0))
			f.ColorPointer(4, gl.UNSIGNED_BYTE, vertexStride, gl.PtrOffset(vertexColorOff))
			f.TexCoordPointer(2, gl.FLOAT, vertexStride, gl.PtrOffset(vertexTexOff))
			f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, t.quadIndexBuffer)
		}
		f.DrawElements(gl.TRIANGLE_STRIP, quadVertexCount, gl.UNSIGNED_SHORT, gl.PtrOffset(0))
	} else if drawVertices != nil {
		base := unsafe.Pointer(&drawVertices[0])
		f.VertexPointer(2, gl.FLOAT, vertexStride, base)
		f.ColorPointer(4, gl.UNSIGNED_BYTE, vertexStride, unsafe.Add(base, vertexColorOff))
		f.TexCoordPointer(2, gl.FLOAT, vertexStride, unsafe.Add(base, vertexTexOff))
	}
	cache.lastUsedQuadBuffer = states.UseQuadBuffer

	if !states.UseQuadBuffer {
		f.DrawArrays(primitiveModes[primitive], 0, int32(len(vertices)))
	}

	// some drivers fail to invalidate a texture that stays bound while
	// also attached to an off-screen target; forcibly unbind
	if states.Texture != nil && states.Texture.fboAttachment {
		c.applyTexture(nil, nil)
	}

	cache.useVertexCache = useVertexCache
}

// applyCurrentView programs the pixel viewport (flipping Y, since GL
// viewports are anchored at the bottom) and loads the view's forward
// transform as the projection matrix.
func (t *RenderTarget) applyCurrentView() {
	c := t.ctx
	f := c.fns
	vp := t.Viewport(&t.view)
	top := t.size.Y - (vp.Min.Y + vp.Dy())
	f.Viewport(int32(vp.Min.X), int32(top), int32(vp.Dx()), int32(vp.Dy()))

	f.MatrixMode(gl.PROJECTION)
	m := t.view.Transform().GLMatrix()
	f.LoadMatrixf(&m)
	f.MatrixMode(gl.MODELVIEW)

	c.cache.viewChanged = false
}

func (t *RenderTarget) activateTarget() bool {
	if t.activate == nil {
		return true
	}
	return t.activate(true)
}

// initQuadBuffers uploads the fixed unit quad used by the sprite fast
// path: 4 triangle-strip vertices with unit positions and texture
// coordinates, and the trivial index set.
func (t *RenderTarget) initQuadBuffers() {
	f := t.ctx.fns

	vertices := [quadVertexCount]Vertex{
		{Position: f32.Pt(0, 0), Color: White, TexCoords: f32.Pt(0, 0)},
		{Position: f32.Pt(0, 1), Color: White, TexCoords: f32.Pt(0, 1)},
		{Position: f32.Pt(1, 0), Color: White, TexCoords: f32.Pt(1, 0)},
		{Position: f32.Pt(1, 1), Color: White, TexCoords: f32.Pt(1, 1)},
	}
	indices := [quadVertexCount]uint16{0, 1, 2, 3}

	t.quadVertexBuffer = f.GenBuffer()
	f.BindBuffer(gl.ARRAY_BUFFER, t.quadVertexBuffer)
	f.BufferData(gl.ARRAY_BUFFER, int(unsafe.Sizeof(vertices)), unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	t.quadIndexBuffer = f.GenBuffer()
	f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, t.quadIndexBuffer)
	f.BufferData(gl.ELEMENT_ARRAY_BUFFER, int(unsafe.Sizeof(indices)), unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	f.BindBuffer(gl.ARRAY_BUFFER, 0)
	f.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
}
