package pixel

import (
	"image"
	"image/color"

	"github.com/BeatGlow/rawsensor/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// RawImage exposes a Raw buffer as a 16-bit gray scale image.
//
// Samples are scaled from the full range of T to the 16-bit range, so an 8-bit sample of 0xff
// reads as 0xffff. Coordinates outside the buffer read as transparent and writes to them are
// ignored, as with the standard library images.
type RawImage[T Element] struct {
	raw *Raw[T]
}

// Image returns a view of p, writes through the view change p.
func (p *Raw[T]) Image() *RawImage[T] {
	return &RawImage[T]{raw: p}
}

// Raw returns the underlying buffer.
func (p *RawImage[T]) Raw() *Raw[T] {
	return p.raw
}

func (p *RawImage[T]) Bounds() image.Rectangle {
	return p.raw.Bounds()
}

func (p *RawImage[T]) ColorModel() color.Model {
	return color.Gray16Model
}

func (p *RawImage[T]) At(x, y int) color.Color {
	i, err := p.raw.offset(x, y)
	if err != nil {
		return color.Transparent
	}
	return color.Gray16{Y: scale16(p.raw.pix[i])}
}

func (p *RawImage[T]) Gray16At(x, y int) color.Gray16 {
	i, err := p.raw.offset(x, y)
	if err != nil {
		return color.Gray16{}
	}
	return color.Gray16{Y: scale16(p.raw.pix[i])}
}

func (p *RawImage[T]) Set(x, y int, c color.Color) {
	i, err := p.raw.offset(x, y)
	if err != nil {
		return
	}
	p.raw.pix[i] = unscale16[T](color.Gray16Model.Convert(c).(color.Gray16).Y)
}

func (p *RawImage[T]) Fill(c color.Color) {
	p.raw.Fill(unscale16[T](color.Gray16Model.Convert(c).(color.Gray16).Y))
}

func (p *RawImage[T]) Clear() {
	p.raw.Clear()
}

// Interface checks.
var (
	_ Image = (*RawImage[uint8])(nil)
	_ Image = (*RawImage[uint16])(nil)
	_ Image = (*RawImage[uint32])(nil)
)
