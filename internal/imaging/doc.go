// Package imaging implements the color substitution engine and its
// supporting image plumbing.
//
// The core of the package is the pair Matches/ReplaceColor: a tolerance
// comparator over 4-component RGBA colors and a single-pass scan that
// rewrites every matching pixel of an image in place. Everything else
// (hex color parsing, loading, RGBA normalization, saving, dominant
// color extraction) exists to feed that pair or report on its inputs.
//
// # Color Representation
//
// Colors are 8-bit RGBA tuples (RGBAColor), each component 0-255, with
// straight (non-premultiplied) alpha. Hex strings use the forms
// "#RRGGBBAA" or "#RRGGBB" (alpha defaulting to opaque).
//
// # Pixel Format
//
// ReplaceColor operates on *image.NRGBA only; Normalize converts any
// decoded image into that form first. This keeps the hot loop a flat
// byte-slice walk with no per-pixel color model conversions.
//
// # Error Handling
//
// The scan itself is total: given a normalized image and in-range
// colors it cannot fail, and a zero replacement count is a valid
// result. Failures belong to the edges: ErrColorParse for malformed
// color strings, ErrUnsupportedFormat for undecodable files or unknown
// output extensions, and wrapped os errors for file I/O.
package imaging
