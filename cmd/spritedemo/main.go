// SPDX-License-Identifier: Unlicense OR MIT

// Command spritedemo opens an SDL window and renders rotating tinted
// sprites through the cached fixed-function pipeline. Escape quits.
package main

import (
	"image"
	"image/color"
	"log/slog"
	"os"
	"runtime"

	ogl "github.com/go-gl/gl/v2.1/gl"
	"github.com/veandco/go-sdl2/sdl"
	"golang.org/x/image/colornames"

	"github.com/blitkit/blitkit/f32"
	"github.com/blitkit/blitkit/graphics"
	"github.com/blitkit/blitkit/internal/gl"
	"github.com/blitkit/blitkit/internal/gl/glfns"
)

const (
	windowWidth  = 800
	windowHeight = 600
	texSize      = 64
)

func init() {
	// GL and SDL event handling are bound to the main thread
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		slog.Error("spritedemo failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}
	defer sdl.Quit()

	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)

	window, err := sdl.CreateWindow("spritedemo",
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		windowWidth, windowHeight, sdl.WINDOW_OPENGL)
	if err != nil {
		return err
	}
	defer window.Destroy()

	glContext, err := window.GLCreateContext()
	if err != nil {
		return err
	}
	defer sdl.GLDeleteContext(glContext)

	fns, err := glfns.New()
	if err != nil {
		return err
	}
	caps := glfns.DetectCaps(fns)
	slog.Info("GL context ready",
		"version", fns.GetString(gl.VERSION),
		"quads", caps.Quads, "shaders", caps.Shaders)

	ctx := graphics.NewContext(fns, caps, nil)
	target := graphics.NewRenderTarget(ctx, image.Pt(windowWidth, windowHeight))
	defer target.Release()

	tex := makeCheckerTexture()
	sprites := make([]*graphics.Sprite, 0, 3)
	for i, name := range []color.RGBA{
		colornames.Orange, colornames.Skyblue, colornames.Palegreen,
	} {
		s := graphics.NewSprite(tex)
		s.SetOrigin(f32.Pt(texSize/2, texSize/2))
		s.SetPosition(f32.Pt(float32(200+200*i), windowHeight/2))
		s.SetScale(f32.Pt(2, 2))
		s.SetColor(toColor(name))
		sprites = append(sprites, s)
	}

	clear := toColor(colornames.Midnightblue)
	for running := true; running; {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false
			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}
			}
		}

		for i, s := range sprites {
			s.Rotate(float32(1 + i))
			s.Move(f32.Pt(float32(1+i), 0))
			if s.Position().X > windowWidth+texSize {
				s.SetPosition(f32.Pt(-texSize, s.Position().Y))
			}
		}

		target.Clear(clear)
		for _, s := range sprites {
			target.DrawObject(s, graphics.DefaultRenderStates())
		}
		drawOverlay(target)
		window.GLSwap()
		sdl.Delay(16)
	}
	return nil
}

// drawOverlay crosses out the window center with raw immediate-mode
// calls, bracketed by the state save/restore so the cached pipeline is
// undisturbed.
func drawOverlay(target *graphics.RenderTarget) {
	target.PushGLStates()

	ogl.MatrixMode(ogl.PROJECTION)
	ogl.LoadIdentity()
	ogl.Ortho(0, windowWidth, windowHeight, 0, -1, 1)
	ogl.MatrixMode(ogl.MODELVIEW)
	ogl.LoadIdentity()
	ogl.Disable(ogl.TEXTURE_2D)
	ogl.Color4f(1, 1, 1, 0.5)
	ogl.Begin(ogl.LINES)
	ogl.Vertex2f(windowWidth/2-20, windowHeight/2)
	ogl.Vertex2f(windowWidth/2+20, windowHeight/2)
	ogl.Vertex2f(windowWidth/2, windowHeight/2-20)
	ogl.Vertex2f(windowWidth/2, windowHeight/2+20)
	ogl.End()

	target.PopGLStates()
}

// makeCheckerTexture uploads a checkerboard pattern and wraps it. The
// GL context must be current.
func makeCheckerTexture() *graphics.Texture {
	pixels := make([]byte, texSize*texSize*4)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			c := colornames.White
			if (x/8+y/8)%2 == 0 {
				c = colornames.Slategray
			}
			i := (y*texSize + x) * 4
			pixels[i+0] = c.R
			pixels[i+1] = c.G
			pixels[i+2] = c.B
			pixels[i+3] = 255
		}
	}

	var name uint32
	ogl.GenTextures(1, &name)
	ogl.BindTexture(ogl.TEXTURE_2D, name)
	ogl.TexParameteri(ogl.TEXTURE_2D, ogl.TEXTURE_MIN_FILTER, ogl.NEAREST)
	ogl.TexParameteri(ogl.TEXTURE_2D, ogl.TEXTURE_MAG_FILTER, ogl.NEAREST)
	ogl.TexParameteri(ogl.TEXTURE_2D, ogl.TEXTURE_WRAP_S, ogl.CLAMP_TO_EDGE)
	ogl.TexParameteri(ogl.TEXTURE_2D, ogl.TEXTURE_WRAP_T, ogl.CLAMP_TO_EDGE)
	ogl.TexImage2D(ogl.TEXTURE_2D, 0, ogl.RGBA, texSize, texSize, 0,
		ogl.RGBA, ogl.UNSIGNED_BYTE, ogl.Ptr(pixels))
	ogl.BindTexture(ogl.TEXTURE_2D, 0)

	return graphics.WrapTexture(name, image.Pt(texSize, texSize), image.Pt(texSize, texSize))
}

func toColor(c color.RGBA) graphics.Color {
	return graphics.RGBA(c.R, c.G, c.B, c.A)
}
