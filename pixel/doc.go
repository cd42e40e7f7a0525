// Package pixel implements the color and image types used by LED matrix displays.
//
// The color types are compatible with Go's native [color.Color] interface. The
// [Bitmap] and [Palette] types describe image sources that can be copied onto
// a display, either as palette indices or as raw packed 5-6-5 colors.
package pixel
