package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRawImage8(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		p, err := New[uint8](size.X, size.Y)
		if err != nil {
			panic(err)
		}
		return p.Image()
	})
}

func TestRawImage16(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		p, err := New[uint16](size.X, size.Y)
		if err != nil {
			panic(err)
		}
		return p.Image()
	})
}

func TestRawImage32(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		p, err := New[uint32](size.X, size.Y)
		if err != nil {
			panic(err)
		}
		return p.Image()
	})
}

func TestRawImageScaling(t *testing.T) {
	p, _ := FromRows([][]uint8{{0x00, 0x80, 0xff}})
	i := p.Image()
	for x, want := range []uint16{0x0000, 0x8080, 0xffff} {
		if v := i.Gray16At(x, 0).Y; v != want {
			t.Errorf("expected pixel (%d,0) to be %#04x, got %#04x", x, want, v)
		}
	}

	i.Set(1, 0, color.Gray16{Y: 0x4040})
	if v := p.MustGet(1, 0); v != 0x40 {
		t.Errorf("expected sample %#02x, got %#02x", 0x40, v)
	}
}

func testImage(t *testing.T, f func(image.Point) Image) {
	t.Helper()
	testCases := []image.Point{
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(3, 5),
		image.Pt(256, 32),
		image.Pt(256, 64),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != color.Gray16Model {
				it.Errorf("expected color model %T, got %T", color.Gray16Model, v)
			}

			it.Run("in-bounds-matching-model", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := i.At(x, y)
						i.Set(x, y, c)
						if i.At(x, y) != c {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v", x, y, i.At(x, y), c)
							return
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -test.Y; y < test.Y*2; y++ {
					for x := -test.X; x < test.X*2; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
								return
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				i.Fill(color.White)
				x := rand.Intn(test.X)
				y := rand.Intn(test.Y)
				if v := i.At(x, y); v != (color.Gray16{Y: 0xffff}) {
					itt.Fatalf("pixel (%d,%d) is %#+v, expected white", x, y, v)
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				x := rand.Intn(test.X)
				y := rand.Intn(test.Y)
				if v := i.At(x, y); v != (color.Gray16{}) {
					itt.Fatalf("pixel (%d,%d) is not black", x, y)
				}
			})
		})
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
