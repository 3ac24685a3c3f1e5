// Package pixel implements raw sensor image buffers.
//
// A [Raw] holds one unsigned integer sample per photosite, addressed as column x, row y and
// stored in row-major order. Buffers are created with [New], [FromRows] or by sampling an RGB
// image through a color filter array (see package bayer), and can be exposed to Go's native
// [image.Image] / [draw.Image] interfaces through [Raw.Image].
package pixel
