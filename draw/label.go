package draw

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	regularOnce sync.Once
	regular     *truetype.Font
	regularErr  error
)

func regularFont() (*truetype.Font, error) {
	regularOnce.Do(func() {
		regular, regularErr = freetype.ParseFont(goregular.TTF)
	})
	return regular, regularErr
}

// LabelHeight returns the number of pixels a single line label of the given font size needs.
func LabelHeight(size float64) int {
	return int(size*1.5 + 0.5)
}

// Label draws text with its baseline at pt, clipped to the bounds of dst.
func Label(dst Image, pt image.Point, text string, size float64, c color.Color) error {
	f, err := regularFont()
	if err != nil {
		return fmt.Errorf("draw: parse font: %w", err)
	}

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	if _, err = ctx.DrawString(text, freetype.Pt(pt.X, pt.Y)); err != nil {
		return fmt.Errorf("draw: label: %w", err)
	}
	return nil
}
