package thickline

import (
	"errors"
	"image/color"

	"chosenoffset.com/thickline/internal/core/geometry"
	"chosenoffset.com/thickline/internal/render"
)

var (
	// ErrNotBound is returned by DrawQuad when no target has been bound.
	ErrNotBound = errors.New("no render target bound")
	// ErrEmptyViewport is returned by DrawQuad before a usable viewport is set.
	ErrEmptyViewport = errors.New("viewport has zero area")
	// ErrReleased is returned after the context has been released.
	ErrReleased = errors.New("rendering context released")
)

// fanIndices splits a 4-vertex fan into triangles 0,1,2 and 0,2,3.
var fanIndices = []uint16{0, 1, 2, 0, 2, 3}

// Context is the rendering context: it owns the program handle and the
// reusable vertex buffer, and tracks the bound target and viewport.
type Context struct {
	program  *Program
	target   render.Image
	width    int
	height   int
	vertices [4]render.Vertex
}

// NewContext creates a rendering context around a linked program.
func NewContext(program *Program) *Context {
	return &Context{program: program}
}

// SetViewport configures the output region. The size is uploaded as the
// Resolution uniform and the program discards fragments outside it.
func (c *Context) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Bind makes dst the target of subsequent DrawQuad calls.
func (c *Context) Bind(dst render.Image) {
	c.target = dst
}

// Unbind clears the bound target.
func (c *Context) Unbind() {
	c.target = nil
}

// DrawQuad uploads the quad into the vertex buffer and submits one filled
// triangle-fan draw with the given color.
func (c *Context) DrawQuad(q geometry.Quad, clr color.Color) error {
	if c.program == nil || c.program.shader == nil {
		return ErrReleased
	}
	if c.target == nil {
		return ErrNotBound
	}
	if c.width <= 0 || c.height <= 0 {
		return ErrEmptyViewport
	}

	r, g, b, a := premultiplied(clr)
	for i, p := range q {
		c.vertices[i] = render.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		}
	}

	opts := &render.DrawTrianglesShaderOptions{
		Uniforms: map[string]interface{}{
			UniformColor:      []float32{r, g, b, a},
			UniformResolution: []float32{float32(c.width), float32(c.height)},
		},
	}
	c.target.DrawTrianglesShader(c.vertices[:], fanIndices, c.program.shader, opts)
	return nil
}

// Release frees the program. The context cannot draw afterwards.
func (c *Context) Release() {
	c.target = nil
	if c.program != nil {
		c.program.Release()
	}
}

func premultiplied(clr color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := clr.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}
