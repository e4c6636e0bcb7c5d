// Package pixel implements packed colors and color buffers suitable for addressable LED strips
// and small LED matrices.
//
// Colors are packed into a single integer, either as 24-bit RGB (0xRRGGBB) or 32-bit ARGB
// (0xAARRGGBB). A [ColorBuffer] stores packed colors as raw bytes, high-order channel first,
// which is also the byte stream most LED drivers expect on the wire.
//
// All color math is integer only. Out of range channel values are truncated to 8 bits and out of
// range buffer accesses are ignored, so per-pixel loops never have to handle errors. Build with
// the pixeldebug tag to turn out of range buffer accesses into panics during development.
//
// This package also provides color models and [draw.Image] views compatible with Go's native
// [color.Color] and [image.Image] interfaces.
package pixel
