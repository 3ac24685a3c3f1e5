package draw

import (
	"image"
	"image/color"
)

// HorizontalLine draws a line between (x,y) and (x+w,y).
func HorizontalLine(dst Image, x, y, w int, c color.Color) {
	for i := 0; i < w; i++ {
		dst.Set(x+i, y, c)
	}
}

// VerticalLine draws a line between (x,y) and (x,y+h).
func VerticalLine(dst Image, x, y, h int, c color.Color) {
	for i := 0; i < h; i++ {
		dst.Set(x, y+i, c)
	}
}

// Rectangle draws a rectangle outline.
func Rectangle(dst Image, rect image.Rectangle, c color.Color) {
	var (
		w = rect.Dx()
		h = rect.Dy()
	)
	if w <= 0 || h <= 0 {
		return
	}
	HorizontalLine(dst, rect.Min.X, rect.Min.Y, w, c)
	HorizontalLine(dst, rect.Min.X, rect.Max.Y-1, w, c)
	VerticalLine(dst, rect.Min.X, rect.Min.Y, h, c)
	VerticalLine(dst, rect.Max.X-1, rect.Min.Y, h, c)
}

// Grid draws lines every cell pixels inside rect, starting at rect.Min. A cell size below 1
// draws nothing.
func Grid(dst Image, rect image.Rectangle, cell int, c color.Color) {
	if cell < 1 {
		return
	}
	for x := rect.Min.X; x < rect.Max.X; x += cell {
		VerticalLine(dst, x, rect.Min.Y, rect.Dy(), c)
	}
	for y := rect.Min.Y; y < rect.Max.Y; y += cell {
		HorizontalLine(dst, rect.Min.X, y, rect.Dx(), c)
	}
}
