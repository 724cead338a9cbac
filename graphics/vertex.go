// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"github.com/blitkit/blitkit/f32"
	"github.com/blitkit/blitkit/internal/gl"
)

// Vertex is one element of the interleaved vertex stream handed to
// RenderTarget.Draw. The field order is the wire layout: position at
// byte 0, color at byte 8, texture coordinates at byte 12, 20 bytes
// per vertex.
type Vertex struct {
	Position  f32.Point
	Color     Color
	TexCoords f32.Point
}

const (
	vertexStride    = 20
	vertexColorOff  = 8
	vertexTexOff    = 12
	quadVertexCount = 4
)

// PrimitiveType selects how a vertex stream is assembled into
// primitives.
type PrimitiveType uint8

const (
	Points PrimitiveType = iota
	Lines
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
	// Quads is unavailable on reduced profiles; such draws are skipped
	// with a one-time diagnostic.
	Quads
)

var primitiveModes = [...]gl.Enum{
	Points:        gl.POINTS,
	Lines:         gl.LINES,
	LineStrip:     gl.LINE_STRIP,
	Triangles:     gl.TRIANGLES,
	TriangleStrip: gl.TRIANGLE_STRIP,
	TriangleFan:   gl.TRIANGLE_FAN,
	Quads:         gl.QUADS,
}

func (p PrimitiveType) String() string {
	switch p {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	case Quads:
		return "Quads"
	}
	return "Unknown"
}
