// SPDX-License-Identifier: MPL-2.0

package offscreen

import (
	"fmt"
	"image"
	"image/color"

	"github.com/glbench/glbench/internal/glerr"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

const (
	// MaxDimension is the largest width or height accepted for a surface.
	MaxDimension = 16384

	// DefaultWidth and DefaultHeight are used when a Config leaves them unset.
	DefaultWidth  = 256
	DefaultHeight = 256
)

type (
	// Config describes the offscreen surface.
	Config struct {
		Width  int
		Height int
	}

	// Option customizes the rendering context created by New.
	Option func(*[]gg.ContextOption)

	// Context is an offscreen surface with a current rendering context.
	// It is not safe for concurrent use.
	Context struct {
		cfg    Config
		dc     *gg.Context
		closed bool
	}
)

// DefaultConfig returns a 256x256 surface configuration.
func DefaultConfig() Config {
	return Config{Width: DefaultWidth, Height: DefaultHeight}
}

// Validate checks the surface size. It fails with EGL_BAD_PARAMETER, which is
// what eglCreatePbufferSurface raises for out-of-range sizes.
func (c Config) Validate() error {
	if c.Width < 1 || c.Height < 1 || c.Width > MaxDimension || c.Height > MaxDimension {
		return fmt.Errorf("surface %dx%d: %w", c.Width, c.Height,
			glerr.Wrap("eglCreatePbufferSurface", glerr.EGLBadParameter))
	}
	return nil
}

// WithRenderer rasterizes through r instead of the software renderer.
func WithRenderer(r gg.Renderer) Option {
	return func(opts *[]gg.ContextOption) {
		*opts = append(*opts, gg.WithRenderer(r))
	}
}

// New creates an offscreen context of the configured size.
func New(cfg Config, opts ...Option) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var ggOpts []gg.ContextOption
	for _, opt := range opts {
		opt(&ggOpts)
	}
	return &Context{cfg: cfg, dc: gg.NewContext(cfg.Width, cfg.Height, ggOpts...)}, nil
}

// Width returns the surface width in pixels.
func (c *Context) Width() int { return c.cfg.Width }

// Height returns the surface height in pixels.
func (c *Context) Height() int { return c.cfg.Height }

// Clear fills the whole surface with col.
func (c *Context) Clear(col color.Color) error {
	if err := c.current("glClear"); err != nil {
		return err
	}
	c.dc.ClearWithColor(gg.FromColor(col))
	return nil
}

// FillRect fills an axis-aligned rectangle with col.
func (c *Context) FillRect(x, y, w, h float64, col color.Color) error {
	if err := c.current("glDrawArrays"); err != nil {
		return err
	}
	if w < 0 || h < 0 {
		return glerr.Wrap("glDrawArrays", glerr.InvalidValue)
	}
	c.dc.SetColor(col)
	c.dc.DrawRectangle(x, y, w, h)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("glDrawArrays: %w", err)
	}
	return nil
}

// FillCircle fills a circle centred on (x, y) with col.
func (c *Context) FillCircle(x, y, r float64, col color.Color) error {
	if err := c.current("glDrawArrays"); err != nil {
		return err
	}
	if r < 0 {
		return glerr.Wrap("glDrawArrays", glerr.InvalidValue)
	}
	c.dc.SetColor(col)
	c.dc.DrawCircle(x, y, r)
	if err := c.dc.Fill(); err != nil {
		return fmt.Errorf("glDrawArrays: %w", err)
	}
	return nil
}

// Readback copies the surface into a new RGBA image.
func (c *Context) Readback() (*image.RGBA, error) {
	if err := c.current("glReadPixels"); err != nil {
		return nil, err
	}
	src := c.dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, c.cfg.Width, c.cfg.Height))
	xdraw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, xdraw.Src)
	return dst, nil
}

// ReadbackScaled copies the surface into a w by h image using bilinear filtering.
func (c *Context) ReadbackScaled(w, h int) (*image.RGBA, error) {
	if err := c.current("glBlitFramebuffer"); err != nil {
		return nil, err
	}
	if w < 1 || h < 1 {
		return nil, glerr.Wrap("glBlitFramebuffer", glerr.InvalidValue)
	}
	src := c.dc.Image()
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// PixelAt reads back a single pixel.
func (c *Context) PixelAt(x, y int) (color.RGBA, error) {
	if err := c.current("glReadPixels"); err != nil {
		return color.RGBA{}, err
	}
	if x < 0 || y < 0 || x >= c.cfg.Width || y >= c.cfg.Height {
		return color.RGBA{}, glerr.Wrap("glReadPixels", glerr.InvalidValue)
	}
	r, g, b, a := c.dc.Image().At(x, y).RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}, nil
}

// Close flushes and releases the surface. It is idempotent.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	err := c.dc.Close()
	c.dc = nil
	if err != nil {
		return fmt.Errorf("eglDestroySurface: %w", err)
	}
	return nil
}

// current fails with EGL_BAD_SURFACE once the context is closed.
func (c *Context) current(op string) error {
	if c.closed {
		return glerr.Wrap(op, glerr.EGLBadSurface)
	}
	return nil
}
