// Package preview renders raw sensor images for viewing.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/draw"
	"github.com/BeatGlow/rawsensor/pixel"
)

// Mode selects how samples are colored.
type Mode uint8

// Supported modes.
const (
	// CFA tints every photosite with the color of the filter in front of it.
	CFA Mode = iota

	// Gray shows the samples as plain intensities.
	Gray
)

func (m Mode) String() string {
	switch m {
	case Gray:
		return "gray"
	default:
		return "cfa"
	}
}

// ParseMode parses a mode name.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "cfa":
		return CFA, nil
	case "gray", "grey":
		return Gray, nil
	default:
		return 0, fmt.Errorf("preview: unknown mode %q", s)
	}
}

// Options control rendering.
type Options struct {
	Mode   Mode
	Layout bayer.Layout

	// Scale is the integer upscaling factor, values below 1 mean 1.
	Scale int

	// Grid outlines every 2x2 filter tile. It is only drawn when Scale is at least 4.
	Grid bool

	// Caption is drawn in a bar below the image if not empty.
	Caption  string
	FontSize float64
}

var (
	gridColor    = color.RGBA{R: 0x40, G: 0x40, B: 0x40, A: 0xff}
	captionColor = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

// Render draws p into a new RGBA image. Samples are normalized to the largest value present so
// that images with few significant bits remain visible.
func Render[T pixel.Element](p *pixel.Raw[T], opts Options) (*image.RGBA, error) {
	var (
		h    = p.Height()
		peak = uint64(p.MaxValue())
		base = image.NewRGBA(p.Bounds())
	)
	if peak == 0 {
		peak = 1
	}
	for y := 0; y < h; y++ {
		row, _ := p.Row(y)
		for x, v := range row {
			l := uint8(uint64(v) * 0xff / peak)
			c := color.RGBA{R: l, G: l, B: l, A: 0xff}
			if opts.Mode == CFA {
				c = tint(opts.Layout.Channel(x, y), l)
			}
			base.SetRGBA(x, y, c)
		}
	}

	scale := max(opts.Scale, 1)
	img := base
	if scale > 1 {
		img = draw.Scale(base, scale)
	}
	if opts.Grid && scale >= 4 {
		draw.Grid(img, img.Bounds(), 2*scale, gridColor)
	}
	if opts.Caption == "" {
		return img, nil
	}

	size := opts.FontSize
	if size <= 0 {
		size = 12
	}
	var (
		bar = draw.LabelHeight(size)
		r   = img.Bounds()
		out = image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()+bar))
	)
	draw.Draw(out, out.Bounds(), image.Black, image.Point{}, draw.Src)
	draw.Draw(out, r, img, image.Point{}, draw.Src)
	if err := draw.Label(out, image.Pt(2, r.Dy()+int(size)), opts.Caption, size, captionColor); err != nil {
		return nil, err
	}
	return out, nil
}

func tint(ch bayer.Channel, l uint8) color.RGBA {
	switch ch {
	case bayer.Red:
		return color.RGBA{R: l, A: 0xff}
	case bayer.Blue:
		return color.RGBA{B: l, A: 0xff}
	default:
		return color.RGBA{G: l, A: 0xff}
	}
}

// Caption describes p for use as Options.Caption.
func Caption[T pixel.Element](p *pixel.Raw[T], layout bayer.Layout) string {
	return fmt.Sprintf("%dx%d %s %d-bit max=%d", p.Width(), p.Height(), layout, pixel.Bits[T](), p.MaxValue())
}

// Encode renders p and writes it to w as PNG.
func Encode[T pixel.Element](w io.Writer, p *pixel.Raw[T], opts Options) error {
	img, err := Render(p, opts)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// WriteFile renders p to the named PNG file.
func WriteFile[T pixel.Element](name string, p *pixel.Raw[T], opts Options) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return Encode(f, p, opts)
}
