// Package oled draws text and lines on a monochrome OLED panel.
//
// Canvas keeps a 1-bit frame in memory and sends it to any periph.io
// display.Drawer on Flush, such as the ssd1306 driver which also handles
// SH1106 and SH1107 panels. The driver only transmits the pixels that
// changed, so redrawing the whole frame after every edit is cheap on I²C.
package oled

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"periph.io/x/conn/v3/display"
	"periph.io/x/devices/v3/ssd1306/image1bit"
)

// Canvas is an off-screen frame for a display.Drawer.
type Canvas struct {
	dev  display.Drawer
	img  *image1bit.VerticalLSB
	face font.Face

	ascent     int
	lineHeight int
	glyphWidth int
}

// New returns a blank Canvas covering the bounds of dev.
//
// face must be monospaced; nil selects the 7x13 basic font.
func New(dev display.Drawer, face font.Face) (*Canvas, error) {
	if dev == nil {
		return nil, errors.New("oled: display is required")
	}
	r := dev.Bounds()
	if r.Empty() || r.Dy()%8 != 0 {
		return nil, fmt.Errorf("oled: unsupported display bounds %v", r)
	}
	if face == nil {
		face = basicfont.Face7x13
	}
	adv, ok := face.GlyphAdvance('0')
	if !ok || adv <= 0 {
		return nil, errors.New("oled: font has no digits")
	}
	m := face.Metrics()

	return &Canvas{
		dev:        dev,
		img:        image1bit.NewVerticalLSB(r),
		face:       face,
		ascent:     m.Ascent.Ceil(),
		lineHeight: m.Height.Ceil(),
		glyphWidth: adv.Round(),
	}, nil
}

// Clear turns every pixel off.
func (c *Canvas) Clear() {
	clear(c.img.Pix)
}

// DrawText draws s with its top-left corner at (x, y). Pixels outside the
// panel are dropped.
func (c *Canvas) DrawText(s string, x, y int) {
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(image1bit.On),
		Face: c.face,
		Dot:  fixed.P(x, y+c.ascent),
	}
	d.DrawString(s)
}

// DrawHorizontalLine turns on w pixels of row y starting at column x.
func (c *Canvas) DrawHorizontalLine(x, y, w int) {
	if w <= 0 {
		return
	}
	draw.Draw(c.img, image.Rect(x, y, x+w, y+1), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
}

// Flush sends the frame to the display.
func (c *Canvas) Flush() error {
	if err := c.dev.Draw(c.dev.Bounds(), c.img, image.Point{}); err != nil {
		return fmt.Errorf("oled: %w", err)
	}
	return nil
}

// GlyphWidth returns the advance of one digit in pixels.
func (c *Canvas) GlyphWidth() int {
	return c.glyphWidth
}

// LineHeight returns the height of one line of text in pixels.
func (c *Canvas) LineHeight() int {
	return c.lineHeight
}

// Bounds returns the drawable area.
func (c *Canvas) Bounds() image.Rectangle {
	return c.img.Bounds()
}

func (c *Canvas) String() string {
	return fmt.Sprintf("oled.Canvas{%s}", c.dev)
}
