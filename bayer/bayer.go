// Package bayer synthesises raw sensor images from RGB images through a color filter array.
//
// Every photosite of a Bayer sensor records exactly one of red, green or blue. [Mosaic] mimics
// such a sensor by picking, for each pixel of an RGB image, the single channel the filter array
// would have let through. No interpolation or calibration takes place.
package bayer

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/BeatGlow/rawsensor/pixel"
)

// Layout selects how channels are assigned to the corners of the 2x2 filter tile.
type Layout uint8

// Supported layouts.
const (
	// RGGB classifies by (y mod 2, x mod 2): R at (even, even), Gr at (even, odd),
	// Gb at (odd, even) and B at (odd, odd).
	RGGB Layout = iota

	// Diagonal classifies by parity: green where x and y parity differ, otherwise red on even
	// columns and blue on odd columns.
	Diagonal
)

func (l Layout) String() string {
	switch l {
	case RGGB:
		return "rggb"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("layout(%d)", uint8(l))
	}
}

// ParseLayout parses a layout name as returned by Layout.String.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rggb", "quadrant":
		return RGGB, nil
	case "diagonal", "parity":
		return Diagonal, nil
	default:
		return 0, fmt.Errorf("bayer: unknown layout %q", s)
	}
}

// Channel is the color a photosite records.
type Channel uint8

// Channels.
const (
	Red Channel = iota
	GreenR
	GreenB
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "R"
	case GreenR:
		return "Gr"
	case GreenB:
		return "Gb"
	case Blue:
		return "B"
	default:
		return "?"
	}
}

// IsGreen reports whether c is one of the green channels.
func (c Channel) IsGreen() bool {
	return c == GreenR || c == GreenB
}

// Channel returns the color recorded at (x, y) for layout l.
//
// The Diagonal layout does not distinguish the two greens and always reports GreenR.
func (l Layout) Channel(x, y int) Channel {
	xOdd, yOdd := x&1 == 1, y&1 == 1
	switch l {
	case Diagonal:
		switch {
		case xOdd != yOdd:
			return GreenR
		case !xOdd:
			return Red
		default:
			return Blue
		}
	default:
		switch {
		case !yOdd && !xOdd:
			return Red
		case !yOdd:
			return GreenR
		case !xOdd:
			return GreenB
		default:
			return Blue
		}
	}
}

// Depth is the channel resolution read from the source image.
type Depth uint8

// Supported depths.
const (
	Depth8  Depth = 8
	Depth16 Depth = 16
)

// ParseDepth validates a bit depth.
func ParseDepth(bits int) (Depth, error) {
	switch bits {
	case 0, 8:
		return Depth8, nil
	case 16:
		return Depth16, nil
	default:
		return 0, fmt.Errorf("bayer: unsupported depth %d", bits)
	}
}

// Sampler reads the filtered channel of an RGB image.
type Sampler struct {
	// Layout of the color filter array.
	Layout Layout

	// Depth of the sampled values, the zero value means Depth8.
	Depth Depth
}

// Validate reports an unknown layout or depth.
func (s Sampler) Validate() error {
	if s.Layout != RGGB && s.Layout != Diagonal {
		return fmt.Errorf("bayer: unknown %s", s.Layout)
	}
	if s.Depth != 0 && s.Depth != Depth8 && s.Depth != Depth16 {
		return fmt.Errorf("bayer: unsupported depth %d", s.Depth)
	}
	return nil
}

// Sample returns the channel value a sensor would record at (x, y), relative to the bounds
// of src, along with the channel that was read.
func (s Sampler) Sample(src image.Image, x, y int) (uint32, Channel) {
	var (
		origin = src.Bounds().Min
		ch     = s.Layout.Channel(x, y)
		c      = src.At(origin.X+x, origin.Y+y)
	)
	var r, g, b uint32
	if s.Depth == Depth16 {
		n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
		r, g, b = uint32(n.R), uint32(n.G), uint32(n.B)
	} else {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		r, g, b = uint32(n.R), uint32(n.G), uint32(n.B)
	}
	switch ch {
	case Red:
		return r, ch
	case Blue:
		return b, ch
	default:
		return g, ch
	}
}

// Mosaic samples every pixel of src through s and returns the resulting raw image.
//
// It fails with pixel.ErrConversionOverflow if a sampled value does not fit T, and with
// pixel.ErrInvalidDimensions if src is empty. A sampler that does not pass Validate is rejected.
// No buffer is returned on failure.
func Mosaic[T pixel.Element](src image.Image, s Sampler) (*pixel.Raw[T], error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	size := src.Bounds().Size()
	out, err := pixel.New[T](size.X, size.Y)
	if err != nil {
		return nil, err
	}
	for y := 0; y < size.Y; y++ {
		row, _ := out.Row(y)
		for x := range row {
			v, ch := s.Sample(src, x, y)
			if row[x], err = pixel.Convert[T](v); err != nil {
				return nil, fmt.Errorf("bayer: %s sample at (%d,%d): %w", ch, x, y, err)
			}
		}
	}
	return out, nil
}
