package screenshot

import (
	"image"

	"github.com/anthonynsimon/bild/imgio"
)

// Decoder opens one raster image from disk. The default wraps bild's imgio
// loader; tests inject stubs to simulate decode failures or synthesize frames
// without fixture files.
type Decoder interface {
	Decode(path string) (image.Image, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(path string) (image.Image, error)

// Decode calls fn.
func (fn DecoderFunc) Decode(path string) (image.Image, error) {
	return fn(path)
}

func defaultDecoder() Decoder {
	return DecoderFunc(imgio.Open)
}
