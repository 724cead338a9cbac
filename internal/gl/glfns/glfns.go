// SPDX-License-Identifier: Unlicense OR MIT

// Package glfns implements gl.Functions on top of the go-gl OpenGL 2.1
// bindings. It requires a current GL context on the calling thread.
package glfns

import (
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	ogl "github.com/go-gl/gl/v2.1/gl"

	"github.com/blitkit/blitkit/internal/gl"
)

// Functions dispatches to the live context. The zero value is not
// usable; call New after the context is current.
type Functions struct{}

// New initializes the bindings for the current context.
func New() (*Functions, error) {
	if err := ogl.Init(); err != nil {
		return nil, fmt.Errorf("glfns: %w", err)
	}
	return &Functions{}, nil
}

func (*Functions) Enable(cap gl.Enum)             { ogl.Enable(uint32(cap)) }
func (*Functions) Disable(cap gl.Enum)            { ogl.Disable(uint32(cap)) }
func (*Functions) EnableClientState(a gl.Enum)    { ogl.EnableClientState(uint32(a)) }
func (*Functions) DisableClientState(a gl.Enum)   { ogl.DisableClientState(uint32(a)) }
func (*Functions) MatrixMode(mode gl.Enum)        { ogl.MatrixMode(uint32(mode)) }
func (*Functions) LoadMatrixf(m *[16]float32)     { ogl.LoadMatrixf(&m[0]) }
func (*Functions) LoadIdentity()                  { ogl.LoadIdentity() }
func (*Functions) PushMatrix()                    { ogl.PushMatrix() }
func (*Functions) PopMatrix()                     { ogl.PopMatrix() }
func (*Functions) PushAttrib(mask gl.Enum)        { ogl.PushAttrib(uint32(mask)) }
func (*Functions) PopAttrib()                     { ogl.PopAttrib() }
func (*Functions) PushClientAttrib(mask gl.Enum)  { ogl.PushClientAttrib(uint32(mask)) }
func (*Functions) PopClientAttrib()               { ogl.PopClientAttrib() }
func (*Functions) Viewport(x, y, w, h int32)      { ogl.Viewport(x, y, w, h) }
func (*Functions) ClearColor(r, g, b, a float32)  { ogl.ClearColor(r, g, b, a) }
func (*Functions) Clear(mask gl.Enum)             { ogl.Clear(uint32(mask)) }
func (*Functions) BlendFunc(sf, df gl.Enum)       { ogl.BlendFunc(uint32(sf), uint32(df)) }
func (*Functions) BlendEquation(mode gl.Enum)     { ogl.BlendEquation(uint32(mode)) }
func (*Functions) ActiveTexture(unit gl.Enum)     { ogl.ActiveTexture(uint32(unit)) }
func (*Functions) ClientActiveTexture(u gl.Enum)  { ogl.ClientActiveTexture(uint32(u)) }
func (*Functions) UseProgram(program uint32)      { ogl.UseProgram(program) }
func (*Functions) Uniform1i(loc int32, v int32)   { ogl.Uniform1i(loc, v) }
func (*Functions) GetError() gl.Enum              { return gl.Enum(ogl.GetError()) }
func (*Functions) DeleteBuffer(b uint32)          { ogl.DeleteBuffers(1, &b) }
func (*Functions) BindTexture(t gl.Enum, id uint32) { ogl.BindTexture(uint32(t), id) }

func (*Functions) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	ogl.BlendFuncSeparate(uint32(srcRGB), uint32(dstRGB), uint32(srcAlpha), uint32(dstAlpha))
}

func (*Functions) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	ogl.BlendEquationSeparate(uint32(modeRGB), uint32(modeAlpha))
}

func (*Functions) GenBuffer() uint32 {
	var b uint32
	ogl.GenBuffers(1, &b)
	return b
}

func (*Functions) BindBuffer(target gl.Enum, buffer uint32) {
	ogl.BindBuffer(uint32(target), buffer)
}

func (*Functions) BufferData(target gl.Enum, size int, data unsafe.Pointer, usage gl.Enum) {
	ogl.BufferData(uint32(target), size, data, uint32(usage))
}

func (*Functions) VertexPointer(size int32, xtype gl.Enum, stride int32, pointer unsafe.Pointer) {
	ogl.VertexPointer(size, uint32(xtype), stride, pointer)
}

func (*Functions) ColorPointer(size int32, xtype gl.Enum, stride int32, pointer unsafe.Pointer) {
	ogl.ColorPointer(size, uint32(xtype), stride, pointer)
}

func (*Functions) TexCoordPointer(size int32, xtype gl.Enum, stride int32, pointer unsafe.Pointer) {
	ogl.TexCoordPointer(size, uint32(xtype), stride, pointer)
}

func (*Functions) DrawArrays(mode gl.Enum, first, count int32) {
	ogl.DrawArrays(uint32(mode), first, count)
}

func (*Functions) DrawElements(mode gl.Enum, count int32, xtype gl.Enum, indices unsafe.Pointer) {
	ogl.DrawElements(uint32(mode), count, uint32(xtype), indices)
}

func (*Functions) Uniform4f(loc int32, v0, v1, v2, v3 float32) {
	ogl.Uniform4f(loc, v0, v1, v2, v3)
}

func (*Functions) GetString(name gl.Enum) string {
	s := ogl.GetString(uint32(name))
	if s == nil {
		return ""
	}
	return ogl.GoStr(s)
}

// DetectCaps derives the capability flags from the context's version
// and extension strings.
func DetectCaps(f gl.Functions) gl.Caps {
	major, minor := parseVersion(f.GetString(gl.VERSION))
	exts := " " + f.GetString(gl.EXTENSIONS) + " "
	has := func(ext string) bool {
		return strings.Contains(exts, " "+ext+" ")
	}
	atLeast := func(maj, min int) bool {
		return major > maj || (major == maj && minor >= min)
	}
	return gl.Caps{
		BlendFuncSeparate:     atLeast(1, 4) || has("GL_EXT_blend_func_separate"),
		BlendEquationSeparate: atLeast(2, 0) || has("GL_EXT_blend_equation_separate"),
		BlendMinMax:           atLeast(1, 4) || has("GL_EXT_blend_minmax"),
		BlendSubtract:         atLeast(1, 4) || has("GL_EXT_blend_subtract"),
		Multitexture:          atLeast(1, 3) || has("GL_ARB_multitexture"),
		Quads:                 true, // always present in the 2.1 profile
		Shaders:               atLeast(2, 0),
	}
}

func parseVersion(version string) (major, minor int) {
	// the version string has the form "major.minor[.release] vendor".
	dot := strings.IndexByte(version, '.')
	if dot < 0 {
		return 0, 0
	}
	major, err := strconv.Atoi(version[:dot])
	if err != nil {
		return 0, 0
	}
	rest := version[dot+1:]
	end := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
	if end < 0 {
		end = len(rest)
	}
	minor, err = strconv.Atoi(rest[:end])
	if err != nil {
		return major, 0
	}
	return major, minor
}
