// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"fmt"
	"unsafe"

	"github.com/blitkit/blitkit/internal/gl"
)

// glCall is one recorded GL entry point invocation.
type glCall struct {
	name string
	args []any
}

func (c glCall) String() string {
	return fmt.Sprintf("%s%v", c.name, c.args)
}

// fakeGL records every call made through the gl.Functions surface so
// tests can assert on exactly which state changes reached the driver.
type fakeGL struct {
	calls      []glCall
	nextBuffer uint32
}

func (f *fakeGL) record(name string, args ...any) {
	f.calls = append(f.calls, glCall{name: name, args: args})
}

// reset drops the recorded calls, typically right after target
// construction so tests see only the calls they provoke.
func (f *fakeGL) reset() {
	f.calls = f.calls[:0]
}

// count returns how many calls to the named entry point were recorded.
func (f *fakeGL) count(name string) int {
	n := 0
	for _, c := range f.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

// last returns the most recent call to the named entry point.
func (f *fakeGL) last(name string) (glCall, bool) {
	for i := len(f.calls) - 1; i >= 0; i-- {
		if f.calls[i].name == name {
			return f.calls[i], true
		}
	}
	return glCall{}, false
}

// names returns the recorded call names in order.
func (f *fakeGL) names() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = c.name
	}
	return out
}

func (f *fakeGL) Enable(cap gl.Enum)            { f.record("Enable", cap) }
func (f *fakeGL) Disable(cap gl.Enum)           { f.record("Disable", cap) }
func (f *fakeGL) EnableClientState(a gl.Enum)   { f.record("EnableClientState", a) }
func (f *fakeGL) DisableClientState(a gl.Enum)  { f.record("DisableClientState", a) }
func (f *fakeGL) MatrixMode(mode gl.Enum)       { f.record("MatrixMode", mode) }
func (f *fakeGL) LoadMatrixf(m *[16]float32)    { f.record("LoadMatrixf", *m) }
func (f *fakeGL) LoadIdentity()                 { f.record("LoadIdentity") }
func (f *fakeGL) PushMatrix()                   { f.record("PushMatrix") }
func (f *fakeGL) PopMatrix()                    { f.record("PopMatrix") }
func (f *fakeGL) PushAttrib(mask gl.Enum)       { f.record("PushAttrib", mask) }
func (f *fakeGL) PopAttrib()                    { f.record("PopAttrib") }
func (f *fakeGL) PushClientAttrib(mask gl.Enum) { f.record("PushClientAttrib", mask) }
func (f *fakeGL) PopClientAttrib()              { f.record("PopClientAttrib") }
func (f *fakeGL) Viewport(x, y, w, h int32)     { f.record("Viewport", x, y, w, h) }
func (f *fakeGL) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }
func (f *fakeGL) Clear(mask gl.Enum)            { f.record("Clear", mask) }
func (f *fakeGL) BlendFunc(s, d gl.Enum)        { f.record("BlendFunc", s, d) }
func (f *fakeGL) BlendEquation(mode gl.Enum)    { f.record("BlendEquation", mode) }
func (f *fakeGL) ActiveTexture(unit gl.Enum)    { f.record("ActiveTexture", unit) }
func (f *fakeGL) ClientActiveTexture(u gl.Enum) { f.record("ClientActiveTexture", u) }
func (f *fakeGL) UseProgram(program uint32)     { f.record("UseProgram", program) }
func (f *fakeGL) Uniform1i(loc int32, v int32)  { f.record("Uniform1i", loc, v) }
func (f *fakeGL) GetError() gl.Enum             { return gl.NO_ERROR }
func (f *fakeGL) GetString(name gl.Enum) string { return "" }
func (f *fakeGL) DeleteBuffer(buffer uint32)    { f.record("DeleteBuffer", buffer) }
func (f *fakeGL) DrawArrays(m gl.Enum, fi, c int32) {
	f.record("DrawArrays", m, fi, c)
}

func (f *fakeGL) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	f.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *fakeGL) BlendEquationSeparate(modeRGB, modeAlpha gl.Enum) {
	f.record("BlendEquationSeparate", modeRGB, modeAlpha)
}

func (f *fakeGL) BindTexture(target gl.Enum, texture uint32) {
	f.record("BindTexture", target, texture)
}

func (f *fakeGL) GenBuffer() uint32 {
	f.nextBuffer++
	f.record("GenBuffer", f.nextBuffer)
	return f.nextBuffer
}

func (f *fakeGL) BindBuffer(target gl.Enum, buffer uint32) {
	f.record("BindBuffer", target, buffer)
}

func (f *fakeGL) BufferData(target gl.Enum, size int, data unsafe.Pointer, usage gl.Enum) {
	f.record("BufferData", target, size, usage)
}

func (f *fakeGL) VertexPointer(size int32, xtype gl.Enum, stride int32, pointer unsafe.Pointer) {
	f.record("VertexPointer", size, xtype, stride, pointer)
}

func (f *fakeGL) ColorPointer(size int32, xtype gl.Enum, stride int32, pointer unsafe.Pointer) {
	f.record("ColorPointer", size, xtype, stride, pointer)
}

func (f *fakeGL) TexCoordPointer(size int32, xtype gl.Enum, stride int32, pointer unsafe.Pointer) {
	f.record("TexCoordPointer", size, xtype, stride, pointer)
}

func (f *fakeGL) DrawElements(mode gl.Enum, count int32, xtype gl.Enum, indices unsafe.Pointer) {
	f.record("DrawElements", mode, count, xtype, indices)
}

func (f *fakeGL) Uniform4f(location int32, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", location, v0, v1, v2, v3)
}
