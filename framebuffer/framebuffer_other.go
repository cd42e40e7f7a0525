//go:build !linux

package framebuffer

// Open is only supported on Linux.
func Open(_ string, _ *Opts) (*Sink, error) {
	return nil, ErrNotSupported
}
