// Package rawfile reads and writes raw sensor images in a compact binary format.
//
// The format is a 4 byte header followed by the raster, all values are little-endian 16-bit
// unsigned integers:
//
//	offset 0   : width
//	offset 2   : height
//	offset 4.. : height rows of width samples, top to bottom, left to right
package rawfile

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/BeatGlow/rawsensor/pixel"
)

// HeaderSize is the size of the header in bytes.
const HeaderSize = 4

// Errors
var (
	ErrTruncated = errors.New("rawfile: truncated stream")
)

var order = binary.LittleEndian

// Header describes the raster that follows it.
type Header struct {
	Width  uint16
	Height uint16
}

// Size is the total encoded size in bytes, header included.
func (h Header) Size() int64 {
	return HeaderSize + 2*int64(h.Width)*int64(h.Height)
}

func (h Header) validate() error {
	if h.Width == 0 || h.Height == 0 {
		return fmt.Errorf("rawfile: header declares %dx%d: %w", h.Width, h.Height, pixel.ErrInvalidDimensions)
	}
	return nil
}

// ReadHeader reads and validates the header.
func ReadHeader(r io.Reader) (Header, error) {
	var b [HeaderSize]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return Header{}, readError("header", err)
	}
	h := Header{
		Width:  order.Uint16(b[0:]),
		Height: order.Uint16(b[2:]),
	}
	if err := h.validate(); err != nil {
		return Header{}, err
	}
	return h, nil
}

func readError(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: short %s", ErrTruncated, what)
	}
	return fmt.Errorf("rawfile: read %s: %w", what, err)
}

// Encode writes p to w.
//
// Every sample and both dimensions must fit in 16 bits, this is checked before anything is
// written, so w receives either nothing or a complete image (barring write errors).
func Encode[T pixel.Element](w io.Writer, p *pixel.Raw[T]) error {
	width, height := p.Shape()
	if width > math.MaxUint16 || height > math.MaxUint16 {
		return fmt.Errorf("rawfile: %dx%d exceeds header range: %w", width, height, pixel.ErrConversionOverflow)
	}
	for i, v := range p.Pix() {
		if _, err := pixel.ToWire(v); err != nil {
			return fmt.Errorf("rawfile: sample at (%d,%d): %w", i%width, i/width, err)
		}
	}

	var header [HeaderSize]byte
	order.PutUint16(header[0:], uint16(width))
	order.PutUint16(header[2:], uint16(height))
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("rawfile: write header: %w", err)
	}

	line := make([]byte, 2*width)
	for y := 0; y < height; y++ {
		row, _ := p.Row(y)
		for x, v := range row {
			order.PutUint16(line[2*x:], uint16(v))
		}
		if _, err := w.Write(line); err != nil {
			return fmt.Errorf("rawfile: write row %d: %w", y, err)
		}
	}
	return nil
}

// Decode reads an image from r. Bytes after the raster are not consumed.
//
// A stream that ends early fails with ErrTruncated, a zero dimension with
// pixel.ErrInvalidDimensions and a sample that does not fit T with
// pixel.ErrConversionOverflow. No buffer is returned on failure.
func Decode[T pixel.Element](r io.Reader) (*pixel.Raw[T], error) {
	h, err := ReadHeader(r)
	if err != nil {
		return nil, err
	}
	return decodeRaster[T](r, h)
}

func decodeRaster[T pixel.Element](r io.Reader, h Header) (*pixel.Raw[T], error) {
	var (
		width  = int(h.Width)
		height = int(h.Height)
		line   = make([]byte, 2*width)
		// Grown row by row so a bogus header on a short stream does not allocate the full raster.
		rows = make([][]T, 0, min(height, 64))
	)
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, line); err != nil {
			return nil, readError(fmt.Sprintf("row %d", y), err)
		}
		row := make([]T, width)
		for x := range row {
			v, err := pixel.FromWire[T](order.Uint16(line[2*x:]))
			if err != nil {
				return nil, fmt.Errorf("rawfile: sample at (%d,%d): %w", x, y, err)
			}
			row[x] = v
		}
		rows = append(rows, row)
	}
	return pixel.FromRows(rows)
}

// WriteFile encodes p to the named file, creating or truncating it.
func WriteFile[T pixel.Element](name string, p *pixel.Raw[T]) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(f)
	if err = Encode(w, p); err != nil {
		return err
	}
	return w.Flush()
}

// ReadFile decodes the named file.
func ReadFile[T pixel.Element](name string) (*pixel.Raw[T], error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode[T](bufio.NewReader(f))
}

// Stat reads only the header of the named file.
func Stat(name string) (Header, error) {
	f, err := os.Open(name)
	if err != nil {
		return Header{}, err
	}
	defer f.Close()

	return ReadHeader(f)
}
