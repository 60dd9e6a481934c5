// Package scene rebuilds the polyline image whenever the store or the
// surface size changes.
package scene

import (
	"errors"
	"fmt"
	"image/color"
	"log"

	"chosenoffset.com/thickline/internal/core/geometry"
	"chosenoffset.com/thickline/internal/core/polyline"
	"chosenoffset.com/thickline/internal/render"
	"chosenoffset.com/thickline/internal/render/thickline"
)

// Options holds the fixed scene colors.
type Options struct {
	Background color.Color
	Foreground color.Color
}

// DefaultOptions returns opaque black lines on opaque white.
func DefaultOptions() Options {
	return Options{
		Background: color.White,
		Foreground: color.Black,
	}
}

// Controller redraws the whole scene into a cached texture.
type Controller struct {
	store    *polyline.Store
	ctx      *thickline.Context
	renderer render.Renderer
	opts     Options

	texture render.Image
	width   int
	height  int
	dirty   bool

	// Segment indices already reported as degenerate
	skipped map[int]bool
}

// NewController creates a scene controller over store, drawing through ctx.
// Images are allocated with r.
func NewController(store *polyline.Store, ctx *thickline.Context, r render.Renderer, opts Options) *Controller {
	if opts.Background == nil {
		opts.Background = color.White
	}
	if opts.Foreground == nil {
		opts.Foreground = color.Black
	}
	return &Controller{
		store:    store,
		ctx:      ctx,
		renderer: r,
		opts:     opts,
		dirty:    true,
		skipped:  make(map[int]bool),
	}
}

// Invalidate marks the scene as needing a redraw.
func (c *Controller) Invalidate() {
	c.dirty = true
}

// Dirty reports whether the next Present will redraw.
func (c *Controller) Dirty() bool {
	return c.dirty
}

// SurfaceSize returns the size of the last drawn surface.
func (c *Controller) SurfaceSize() (width, height int) {
	return c.width, c.height
}

// Present redraws the scene if needed and copies it onto screen.
func (c *Controller) Present(screen render.Image) error {
	w, h := screen.Size()
	if c.dirty || w != c.width || h != c.height {
		if err := c.Redraw(w, h); err != nil {
			return err
		}
	}
	if c.texture != nil {
		screen.DrawImage(c.texture, nil)
	}
	return nil
}

// Redraw rebuilds the scene for a surface of the given size. It is a pure
// function of the store contents and the size.
func (c *Controller) Redraw(width, height int) error {
	// Step 1: Match the backing texture to the surface
	c.width, c.height = width, height
	if width <= 0 || height <= 0 {
		// Nothing to show; drop the old image so it is never blitted
		c.Release()
		c.dirty = false
		return nil
	}
	if c.texture == nil || needsResize(c.texture, width, height) {
		if c.texture != nil {
			c.texture.Dispose()
		}
		c.texture = c.renderer.NewImage(width, height)
	}

	// Step 2: Viewport
	c.ctx.SetViewport(width, height)

	// Step 3: Clear
	c.texture.Fill(c.opts.Background)

	// Step 4: Bind program and target once
	c.ctx.Bind(c.texture)
	defer c.ctx.Unbind()

	// Step 5: One draw per segment
	for i, seg := range c.store.Segments() {
		quad, err := geometry.ThickLineQuad(seg.Start, seg.End, seg.Width)
		if errors.Is(err, geometry.ErrDegenerateSegment) {
			if !c.skipped[i] {
				c.skipped[i] = true
				log.Printf("Skipping degenerate segment %d at (%.1f, %.1f)", i, seg.Start.X, seg.Start.Y)
			}
			continue
		}
		if err := c.ctx.DrawQuad(quad, c.opts.Foreground); err != nil {
			return fmt.Errorf("failed to draw segment %d: %w", i, err)
		}
	}

	c.dirty = false
	return nil
}

// Release disposes the cached texture.
func (c *Controller) Release() {
	if c.texture != nil {
		c.texture.Dispose()
		c.texture = nil
	}
}

func needsResize(img render.Image, w, h int) bool {
	bounds := img.Bounds()
	return bounds.Dx() != w || bounds.Dy() != h
}
