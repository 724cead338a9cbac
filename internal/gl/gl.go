// SPDX-License-Identifier: Unlicense OR MIT

// Package gl defines the slice of the fixed-function OpenGL API that
// the graphics package drives, together with the enum values it needs.
// The real implementation lives in the glfns subpackage; tests inject
// recording implementations.
package gl

import "unsafe"

type Enum uint32

const (
	FALSE = 0
	TRUE  = 1

	// matrix modes
	MODELVIEW  = 0x1700
	PROJECTION = 0x1701
	TEXTURE    = 0x1702

	// client array states
	VERTEX_ARRAY        = 0x8074
	COLOR_ARRAY         = 0x8076
	TEXTURE_COORD_ARRAY = 0x8078

	// server states
	CULL_FACE  = 0x0b44
	LIGHTING   = 0x0b50
	DEPTH_TEST = 0x0b71
	ALPHA_TEST = 0x0bc0
	BLEND      = 0x0be2
	TEXTURE_2D = 0x0de1

	// blend factors
	ZERO                = 0x0000
	ONE                 = 0x0001
	SRC_COLOR           = 0x0300
	ONE_MINUS_SRC_COLOR = 0x0301
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303
	DST_ALPHA           = 0x0304
	ONE_MINUS_DST_ALPHA = 0x0305
	DST_COLOR           = 0x0306
	ONE_MINUS_DST_COLOR = 0x0307

	// blend equations
	FUNC_ADD              = 0x8006
	FUNC_SUBTRACT         = 0x800a
	FUNC_REVERSE_SUBTRACT = 0x800b

	// buffer objects
	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88e4

	// primitive modes
	POINTS         = 0x0000
	LINES          = 0x0001
	LINE_STRIP     = 0x0003
	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006
	QUADS          = 0x0007

	// vertex component types
	UNSIGNED_BYTE  = 0x1401
	UNSIGNED_SHORT = 0x1403
	FLOAT          = 0x1406

	// texture units
	TEXTURE0 = 0x84c0

	// attribute stack masks
	ALL_ATTRIB_BITS        = 0x000fffff
	CLIENT_ALL_ATTRIB_BITS = 0xffffffff

	COLOR_BUFFER_BIT = 0x4000

	NO_ERROR   = 0x0000
	VENDOR     = 0x1f00
	RENDERER   = 0x1f01
	VERSION    = 0x1f02
	EXTENSIONS = 0x1f03
)

// Functions is the fixed-function GL call surface used by the state
// cache. Pointer arguments follow the client-array convention: a real
// pointer for client-side arrays, a byte offset (see PtrOffset) while
// a buffer object is bound.
type Functions interface {
	Enable(cap Enum)
	Disable(cap Enum)
	EnableClientState(array Enum)
	DisableClientState(array Enum)

	MatrixMode(mode Enum)
	LoadMatrixf(m *[16]float32)
	LoadIdentity()
	PushMatrix()
	PopMatrix()

	PushAttrib(mask Enum)
	PopAttrib()
	PushClientAttrib(mask Enum)
	PopClientAttrib()

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask Enum)

	BlendFunc(sfactor, dfactor Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlendEquation(mode Enum)
	BlendEquationSeparate(modeRGB, modeAlpha Enum)

	ActiveTexture(unit Enum)
	ClientActiveTexture(unit Enum)
	BindTexture(target Enum, texture uint32)

	GenBuffer() uint32
	DeleteBuffer(buffer uint32)
	BindBuffer(target Enum, buffer uint32)
	BufferData(target Enum, size int, data unsafe.Pointer, usage Enum)

	VertexPointer(size int32, xtype Enum, stride int32, pointer unsafe.Pointer)
	ColorPointer(size int32, xtype Enum, stride int32, pointer unsafe.Pointer)
	TexCoordPointer(size int32, xtype Enum, stride int32, pointer unsafe.Pointer)

	DrawArrays(mode Enum, first, count int32)
	DrawElements(mode Enum, count int32, xtype Enum, indices unsafe.Pointer)

	UseProgram(program uint32)
	Uniform1i(location int32, v int32)
	Uniform4f(location int32, v0, v1, v2, v3 float32)

	GetError() Enum
	GetString(name Enum) string
}

// Caps describes what the underlying context supports. The graphics
// package checks these at run time instead of compiling per-profile
// variants.
type Caps struct {
	BlendFuncSeparate     bool
	BlendEquationSeparate bool
	BlendMinMax           bool
	BlendSubtract         bool
	Multitexture          bool
	Quads                 bool
	Shaders               bool
}

// AllCaps is a fully featured desktop profile. Reduced profiles clear
// individual flags.
func AllCaps() Caps {
	return Caps{
		BlendFuncSeparate:     true,
		BlendEquationSeparate: true,
		BlendMinMax:           true,
		BlendSubtract:         true,
		Multitexture:          true,
		Quads:                 true,
		Shaders:               true,
	}
}

// PtrOffset converts a byte offset into the fake pointer expected by
// the *Pointer and DrawElements calls while a buffer object is bound.
func PtrOffset(offset int) unsafe.Pointer {
	return unsafe.Pointer(uintptr(offset))
}
