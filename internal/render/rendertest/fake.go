// Package rendertest provides in-memory implementations of the render
// interfaces that record what was drawn.
package rendertest

import (
	"errors"
	"image"
	"image/color"

	"chosenoffset.com/thickline/internal/render"
)

var (
	_ render.Image        = (*Image)(nil)
	_ render.Renderer     = (*Renderer)(nil)
	_ render.InputManager = (*Input)(nil)
)

// DrawCall is one recorded DrawTrianglesShader submission.
type DrawCall struct {
	Vertices []render.Vertex
	Indices  []uint16
	Shader   render.Shader
	Uniforms map[string]interface{}
}

// Image records fills and triangle submissions.
type Image struct {
	W, H      int
	FillColor color.Color
	Fills     int
	Calls     []DrawCall
	Blits     []render.Image
	Disposed  bool
}

// NewImage creates a recording image of the given size.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h}
}

func (i *Image) Bounds() image.Rectangle { return image.Rect(0, 0, i.W, i.H) }

func (i *Image) Size() (int, int) { return i.W, i.H }

// Fill starts a new recorded frame.
func (i *Image) Fill(clr color.Color) {
	i.FillColor = clr
	i.Fills++
	i.Calls = nil
}

func (i *Image) DrawImage(src render.Image, _ *render.DrawImageOptions) {
	i.Blits = append(i.Blits, src)
}

func (i *Image) DrawTrianglesShader(vertices []render.Vertex, indices []uint16, shader render.Shader, opts *render.DrawTrianglesShaderOptions) {
	call := DrawCall{
		Vertices: append([]render.Vertex(nil), vertices...),
		Indices:  append([]uint16(nil), indices...),
		Shader:   shader,
		Uniforms: map[string]interface{}{},
	}
	if opts != nil {
		for k, v := range opts.Uniforms {
			if f, ok := v.([]float32); ok {
				v = append([]float32(nil), f...)
			}
			call.Uniforms[k] = v
		}
	}
	i.Calls = append(i.Calls, call)
}

func (i *Image) Dispose() { i.Disposed = true }

// Shader is a no-op compiled shader.
type Shader struct {
	Source   []byte
	Disposed bool
}

func (s *Shader) Dispose() { s.Disposed = true }

// Compiler compiles every source successfully unless Err is set.
type Compiler struct {
	Err      error
	Compiled []*Shader
}

func (c *Compiler) CompileShader(src []byte) (render.Shader, error) {
	if c.Err != nil {
		return nil, c.Err
	}
	s := &Shader{Source: src}
	c.Compiled = append(c.Compiled, s)
	return s, nil
}

// ErrCompile is a canned compiler diagnostic.
var ErrCompile = errors.New("2:1: unexpected token")

// Renderer is a recording render.Renderer.
type Renderer struct {
	Compiler
	Images []*Image
	Texts  []string
}

func (r *Renderer) NewImage(w, h int) render.Image {
	img := NewImage(w, h)
	r.Images = append(r.Images, img)
	return img
}

func (r *Renderer) FillRect(render.Image, float32, float32, float32, float32, color.Color) {}

func (r *Renderer) StrokeRect(render.Image, float32, float32, float32, float32, float32, color.Color) {
}

func (r *Renderer) DrawText(_ render.Image, text string, _, _ int, _ color.Color) {
	r.Texts = append(r.Texts, text)
}

func (r *Renderer) MeasureText(text string) (int, int) {
	return len(text) * 7, 13
}

// Input is a scripted render.InputManager. Set the fields for one tick,
// call the code under test, then call Reset.
type Input struct {
	Keys    map[render.Key]bool
	Clicked bool
	X, Y    int
	Chars   []rune
}

func (in *Input) IsKeyJustPressed(key render.Key) bool { return in.Keys[key] }

func (in *Input) IsMouseButtonJustPressed(button render.MouseButton) bool {
	return button == render.MouseButtonLeft && in.Clicked
}

func (in *Input) GetCursorPosition() (int, int) { return in.X, in.Y }

func (in *Input) AppendInputChars(runes []rune) []rune { return append(runes, in.Chars...) }

// Press marks keys as just pressed for the next tick.
func (in *Input) Press(keys ...render.Key) {
	if in.Keys == nil {
		in.Keys = make(map[render.Key]bool)
	}
	for _, k := range keys {
		in.Keys[k] = true
	}
}

// Click marks a left click at (x, y) for the next tick.
func (in *Input) Click(x, y int) {
	in.Clicked = true
	in.X, in.Y = x, y
}

// Type queues characters for the next tick.
func (in *Input) Type(s string) {
	in.Chars = append(in.Chars, []rune(s)...)
}

// Reset clears all per-tick input.
func (in *Input) Reset() {
	in.Keys = nil
	in.Clicked = false
	in.Chars = nil
}
