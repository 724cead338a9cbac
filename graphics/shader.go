// SPDX-License-Identifier: Unlicense OR MIT

package graphics

// Shader is a non-owning handle to a linked GL program. Compilation
// and uniform management beyond the tint color live with the
// collaborator that owns the program.
type Shader struct {
	program    uint32
	colorLoc   int32
	textureLoc int32
}

// WrapShader wraps a linked program. colorLoc is the location of the
// vec4 tint uniform; textureLoc the location of the sampler uniform,
// or -1 if the program samples no texture.
func WrapShader(program uint32, colorLoc, textureLoc int32) *Shader {
	return &Shader{program: program, colorLoc: colorLoc, textureLoc: textureLoc}
}

// NativeHandle returns the GL program name.
func (s *Shader) NativeHandle() uint32 { return s.program }

// ColorLocation returns the tint uniform location.
func (s *Shader) ColorLocation() int32 { return s.colorLoc }

// TextureLocation returns the sampler uniform location, or -1.
func (s *Shader) TextureLocation() int32 { return s.textureLoc }

// DefaultShaders holds the programs a Context substitutes when a draw
// carries no explicit shader. Untextured is used when no texture is
// bound, Textured otherwise; the textured program's sampler uniform is
// pointed at texture unit 0, emulating the fixed-function single
// texture pipeline.
type DefaultShaders struct {
	Untextured *Shader
	Textured   *Shader
}
