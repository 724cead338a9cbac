// SPDX-License-Identifier: Unlicense OR MIT

package graphics

import (
	"image"
	"sync/atomic"
)

// cacheIDCounter issues stable texture identities. GL texture names
// are recycled by the driver after deletion, so the state cache must
// never compare them; identities from this counter are unique for the
// lifetime of the process.
var cacheIDCounter atomic.Uint64

// Texture is a non-owning handle to a GL texture created elsewhere.
// Loading and decoding pixel data is out of scope for this package;
// collaborators wrap the textures they own so that draws can refer to
// them.
type Texture struct {
	handle  uint32
	cacheID uint64

	size       image.Point
	actualSize image.Point

	pixelsFlipped bool
	fboAttachment bool
}

// WrapTexture wraps an existing GL texture. actualSize is the padded
// storage size; pass size if the storage is not padded.
func WrapTexture(handle uint32, size, actualSize image.Point) *Texture {
	return &Texture{
		handle:     handle,
		cacheID:    cacheIDCounter.Add(1),
		size:       size,
		actualSize: actualSize,
	}
}

// SetPixelsFlipped marks the texture as stored bottom-up.
func (t *Texture) SetPixelsFlipped(flipped bool) { t.pixelsFlipped = flipped }

// SetFBOAttachment marks the texture as the color attachment of an
// off-screen render target. Draws sourcing such a texture are followed
// by a forced unbind to work around drivers that fail to invalidate a
// texture bound as both render source and render target.
func (t *Texture) SetFBOAttachment(attached bool) { t.fboAttachment = attached }

// NativeHandle returns the GL texture name.
func (t *Texture) NativeHandle() uint32 { return t.handle }

// CacheID returns the stable identity used by the state cache.
func (t *Texture) CacheID() uint64 { return t.cacheID }

// Size returns the logical pixel size.
func (t *Texture) Size() image.Point { return t.size }

// ActualSize returns the possibly padded storage size.
func (t *Texture) ActualSize() image.Point { return t.actualSize }

// PixelsFlipped reports whether the pixel rows are stored bottom-up.
func (t *Texture) PixelsFlipped() bool { return t.pixelsFlipped }

// FBOAttachment reports whether the texture backs an off-screen
// target.
func (t *Texture) FBOAttachment() bool { return t.fboAttachment }
