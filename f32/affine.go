// SPDX-License-Identifier: Unlicense OR MIT

package f32

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Affine2D is a 2D affine transform. Transformed points P' have the
// form
//
//	P' = A * P
//
// where A is the full 3x3 matrix
//
//	[sx hx ox]
//	[hy sy oy]
//	[ 0  0  1]
//
// and only the top two rows are stored.
type Affine2D struct {
	// in order to make the zero value of Affine2D equal to the identity
	// transform the actual fields hold the difference from the identity
	// diagonal.
	sx, hx, ox float32
	hy, sy, oy float32
}

// NewAffine2D creates a new Affine2D transform from the matrix elements
// in row major order.
func NewAffine2D(sx, hx, ox, hy, sy, oy float32) Affine2D {
	return Affine2D{
		sx: sx - 1, hx: hx, ox: ox,
		hy: hy, sy: sy - 1, oy: oy,
	}
}

// AffineId returns the identity transform.
func AffineId() Affine2D {
	return Affine2D{}
}

// Offset the transform by the vector t.
func (a Affine2D) Offset(t Point) Affine2D {
	return Affine2D{
		a.sx, a.hx, a.ox + t.X,
		a.hy, a.sy, a.oy + t.Y,
	}
}

// Scale the transform around the given origin.
func (a Affine2D) Scale(origin, factor Point) Affine2D {
	if origin == (Point{}) {
		return a.scale(factor)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.scale(factor)
	return a.Offset(origin)
}

// Rotate the transform by the given angle (clockwise) around the given
// origin.
func (a Affine2D) Rotate(origin Point, radians float32) Affine2D {
	if origin == (Point{}) {
		return a.rotate(radians)
	}
	a = a.Offset(origin.Mul(-1))
	a = a.rotate(radians)
	return a.Offset(origin)
}

// Mul returns A*B, the transform that first applies B and then A.
func (a Affine2D) Mul(b Affine2D) (r Affine2D) {
	asx, ahx, aox, ahy, asy, aoy := a.elems()
	bsx, bhx, box, bhy, bsy, boy := b.elems()
	r.sx = asx*bsx + ahx*bhy - 1
	r.hx = asx*bhx + ahx*bsy
	r.ox = asx*box + ahx*boy + aox
	r.hy = ahy*bsx + asy*bhy
	r.sy = ahy*bhx + asy*bsy - 1
	r.oy = ahy*box + asy*boy + aoy
	return r
}

// Invert the transform. Does not check for singular transforms.
func (a Affine2D) Invert() Affine2D {
	sx, hx, ox, hy, sy, oy := a.elems()
	det := sx*sy - hx*hy
	isx, ihx := sy/det, -hx/det
	ihy, isy := -hy/det, sx/det
	iox := -(isx*ox + ihx*oy)
	ioy := -(ihy*ox + isy*oy)
	return Affine2D{isx - 1, ihx, iox, ihy, isy - 1, ioy}
}

// Transform applies the transform to the point p.
func (a Affine2D) Transform(p Point) Point {
	return Point{
		X: p.X*(a.sx+1) + p.Y*a.hx + a.ox,
		Y: p.X*a.hy + p.Y*(a.sy+1) + a.oy,
	}
}

// Elems returns the matrix elements of the transform in row major
// order. The rows are: sx, hx, ox, hy, sy, oy.
func (a Affine2D) Elems() (sx, hx, ox, hy, sy, oy float32) {
	return a.elems()
}

// GLMatrix expands the transform to the column major 4x4 matrix layout
// expected by glLoadMatrixf. The affine z row and column pass through
// unchanged.
func (a Affine2D) GLMatrix() [16]float32 {
	sx, hx, ox, hy, sy, oy := a.elems()
	return [16]float32{
		sx, hy, 0, 0,
		hx, sy, 0, 0,
		0, 0, 1, 0,
		ox, oy, 0, 1,
	}
}

func (a Affine2D) scale(factor Point) Affine2D {
	return Affine2D{
		(a.sx+1)*factor.X - 1, a.hx * factor.X, a.ox * factor.X,
		a.hy * factor.Y, (a.sy+1)*factor.Y - 1, a.oy * factor.Y,
	}
}

func (a Affine2D) rotate(radians float32) Affine2D {
	sin, cos := math32.Sincos(radians)
	sx, hx, ox, hy, sy, oy := a.elems()
	return Affine2D{
		sx*cos - hy*sin - 1, hx*cos - sy*sin, ox*cos - oy*sin,
		sx*sin + hy*cos, hx*sin + sy*cos, ox*sin + oy*cos,
	}
}

func (a Affine2D) elems() (sx, hx, ox, hy, sy, oy float32) {
	return a.sx + 1, a.hx, a.ox, a.hy, a.sy + 1, a.oy
}

func (a Affine2D) String() string {
	sx, hx, ox, hy, sy, oy := a.elems()
	return fmt.Sprintf("[[%v %v %v] [%v %v %v]]", sx, hx, ox, hy, sy, oy)
}
