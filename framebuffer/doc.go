// Package framebuffer mirrors the LED matrix onto the operating system's
// native framebuffer.
//
// This requires framebuffer device support in the operating system. Each LED
// is drawn as a square block of Opts.Scale pixels in the top left corner of
// the screen.
package framebuffer
