package pixel

import (
	"errors"
	"fmt"
	"image"
	"math"
)

// Errors
var (
	ErrInvalidDimensions  = errors.New("pixel: invalid dimensions")
	ErrOutOfBounds        = errors.New("pixel: out of bounds")
	ErrConversionOverflow = errors.New("pixel: conversion overflow")
)

// Raw is a single channel raw sensor image with samples of type T.
//
// The zero value is not usable; buffers are created with New, FromRows or bayer.Mosaic.
type Raw[T Element] struct {
	// pix holds the samples in row-major order, row y starts at y*width.
	pix    []T
	width  int
	height int
}

// New allocates a zero filled raw buffer of the given size.
func New[T Element](width, height int) (*Raw[T], error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	return &Raw[T]{
		pix:    make([]T, width*height),
		width:  width,
		height: height,
	}, nil
}

// FromRows builds a raw buffer from rows of samples, rows[y][x] ends up at (x, y).
//
// All rows must have the same non-zero length.
func FromRows[T Element](rows [][]T) (*Raw[T], error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidDimensions)
	}
	width := len(rows[0])
	p, err := New[T](width, len(rows))
	if err != nil {
		return nil, err
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d samples, expected %d", ErrInvalidDimensions, y, len(row), width)
		}
		copy(p.pix[y*width:], row)
	}
	return p, nil
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if width > math.MaxInt/height {
		return fmt.Errorf("%w: %dx%d is too large", ErrInvalidDimensions, width, height)
	}
	return nil
}

// Width in pixels.
func (p *Raw[T]) Width() int {
	return p.width
}

// Height in pixels.
func (p *Raw[T]) Height() int {
	return p.height
}

// Shape returns the width and height.
func (p *Raw[T]) Shape() (width, height int) {
	return p.width, p.height
}

// Bounds is the image bounding box, it always starts at (0, 0).
func (p *Raw[T]) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// Pix returns the backing samples in row-major order.
//
// The slice is shared with the buffer, callers must not modify it.
func (p *Raw[T]) Pix() []T {
	return p.pix
}

// Row returns the samples of row y. The slice shares the backing store, writes to it change
// the buffer.
func (p *Raw[T]) Row(y int) ([]T, error) {
	if y < 0 || y >= p.height {
		return nil, fmt.Errorf("%w: row %d of %d", ErrOutOfBounds, y, p.height)
	}
	return p.pix[y*p.width : (y+1)*p.width], nil
}

func (p *Raw[T]) offset(x, y int) (int, error) {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return 0, fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, p.width, p.height)
	}
	return y*p.width + x, nil
}

// Get returns the sample at (x, y).
func (p *Raw[T]) Get(x, y int) (T, error) {
	i, err := p.offset(x, y)
	if err != nil {
		return 0, err
	}
	return p.pix[i], nil
}

// MustGet is like Get but panics if (x, y) is out of bounds.
func (p *Raw[T]) MustGet(x, y int) T {
	v, err := p.Get(x, y)
	if err != nil {
		panic(err)
	}
	return v
}

// Set the sample at (x, y).
func (p *Raw[T]) Set(x, y int, v T) error {
	i, err := p.offset(x, y)
	if err != nil {
		return err
	}
	p.pix[i] = v
	return nil
}

// Update replaces the sample at (x, y) with the result of f.
func (p *Raw[T]) Update(x, y int, f func(T) T) error {
	i, err := p.offset(x, y)
	if err != nil {
		return err
	}
	p.pix[i] = f(p.pix[i])
	return nil
}

// Fill the buffer with a single value.
func (p *Raw[T]) Fill(v T) {
	for i := range p.pix {
		p.pix[i] = v
	}
}

// Clear the buffer.
func (p *Raw[T]) Clear() {
	clear(p.pix)
}

// Clone returns a deep copy.
func (p *Raw[T]) Clone() *Raw[T] {
	return &Raw[T]{
		pix:    append([]T(nil), p.pix...),
		width:  p.width,
		height: p.height,
	}
}

// Equal reports whether p and q have the same shape and samples.
func (p *Raw[T]) Equal(q *Raw[T]) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.width != q.width || p.height != q.height {
		return false
	}
	for i, v := range p.pix {
		if q.pix[i] != v {
			return false
		}
	}
	return true
}

// MaxValue returns the largest sample in the buffer.
func (p *Raw[T]) MaxValue() T {
	var m T
	for _, v := range p.pix {
		if v > m {
			m = v
		}
	}
	return m
}
