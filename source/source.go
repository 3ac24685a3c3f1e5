// Package source decodes RGB images from files for sampling into raw sensor images.
//
// PNG, JPEG and GIF are decoded by the standard library, BMP, TIFF and WebP by
// golang.org/x/image.
package source

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	// Image formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Errors
var (
	ErrDecode = errors.New("source: decode failed")
)

// Error wraps the underlying failure of opening or decoding an image.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
	}
	return fmt.Sprintf("%v: %s: %v", ErrDecode, e.Path, e.Err)
}

// Is reports ErrDecode so callers can match any decoding failure.
func (e *Error) Is(target error) bool {
	return target == ErrDecode
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Decode an image from r, returning the image and its format name.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", &Error{Err: err}
	}
	return img, format, nil
}

// Open decodes the named image file.
func Open(name string) (image.Image, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", &Error{Path: name, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", &Error{Path: name, Err: err}
	}
	return img, format, nil
}
