package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/BeatGlow/rawsensor/bayer"
	"github.com/BeatGlow/rawsensor/pixel"
)

func testRaw(t *testing.T) *pixel.Raw[uint16] {
	t.Helper()
	p, err := pixel.FromRows([][]uint16{
		{0x3ff, 0x3ff, 0x3ff, 0x3ff},
		{0x3ff, 0x3ff, 0x3ff, 0x3ff},
	})
	if err != nil {
		t.Fatal(err)
	}
	return p
}

func TestRenderCFA(t *testing.T) {
	img, err := Render(testRaw(t), Options{Layout: bayer.RGGB})
	if err != nil {
		t.Fatal(err)
	}
	want := [2][2]color.RGBA{
		{{R: 0xff, A: 0xff}, {G: 0xff, A: 0xff}},
		{{G: 0xff, A: 0xff}, {B: 0xff, A: 0xff}},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			if v := img.RGBAAt(x, y); v != want[y%2][x%2] {
				t.Errorf("pixel (%d,%d) is %v, expected %v", x, y, v, want[y%2][x%2])
			}
		}
	}
}

func TestRenderGray(t *testing.T) {
	p := testRaw(t)
	_ = p.Set(1, 0, 0)
	img, err := Render(p, Options{Mode: Gray, Scale: 2})
	if err != nil {
		t.Fatal(err)
	}
	if v := img.Bounds().Size(); !v.Eq(image.Pt(8, 4)) {
		t.Fatalf("expected size (8,4), got %s", v)
	}
	if v := img.RGBAAt(0, 0); v != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("expected white, got %v", v)
	}
	if v := img.RGBAAt(3, 1); v != (color.RGBA{A: 0xff}) {
		t.Errorf("expected black, got %v", v)
	}
}

func TestRenderCaption(t *testing.T) {
	p := testRaw(t)
	img, err := Render(p, Options{Scale: 4, Grid: true, Caption: Caption(p, bayer.RGGB), FontSize: 10})
	if err != nil {
		t.Fatal(err)
	}
	if v := img.Bounds().Size(); v.X != 16 || v.Y <= 8 {
		t.Errorf("expected a caption bar below the 16x8 image, got %s", v)
	}
	if v := img.RGBAAt(0, 0); v != gridColor {
		t.Errorf("expected grid at origin, got %v", v)
	}
}

func TestEncode(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, testRaw(t), Options{}); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if v := img.Bounds().Size(); !v.Eq(image.Pt(4, 2)) {
		t.Errorf("expected size (4,2), got %s", v)
	}
}

func TestCaption(t *testing.T) {
	if v, want := Caption(testRaw(t), bayer.Diagonal), "4x2 diagonal 16-bit max=1023"; v != want {
		t.Errorf("expected %q, got %q", want, v)
	}
}

func TestParseMode(t *testing.T) {
	if v, err := ParseMode("gray"); err != nil || v != Gray {
		t.Errorf("expected gray, got %s (%v)", v, err)
	}
	if _, err := ParseMode("false"); err == nil {
		t.Error("expected error for unknown mode")
	}
}
