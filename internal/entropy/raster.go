package entropy

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrRowOutOfBounds is returned by ReadRow when the requested span is not
// inside the raster.
var ErrRowOutOfBounds = errors.New("entropy: row span outside raster")

// Sample is a single pixel with 8-bit red, green and blue intensities.
type Sample struct {
	R uint8
	G uint8
	B uint8
}

// Raster is the read-only pixel source used by the histogram accumulator.
//
// ReadRow returns width samples starting at (x, y). An error means the row
// could not be read; callers treat that row as contributing no pixels.
type Raster interface {
	Width() int
	Height() int
	ReadRow(x, y, width int) ([]Sample, error)
}

// imageRaster serves rows from an NRGBA copy of the source image.
type imageRaster struct {
	img *image.NRGBA
}

// FromImage adapts an image.Image to the Raster interface.
//
// The image is copied once into non-premultiplied 8-bit form with its origin
// moved to (0, 0), so 16-bit images are scaled down and the returned raster
// does not observe later changes to img.
func FromImage(img image.Image) Raster {
	return &imageRaster{img: imaging.Clone(img)}
}

func (r *imageRaster) Width() int  { return r.img.Rect.Dx() }
func (r *imageRaster) Height() int { return r.img.Rect.Dy() }

func (r *imageRaster) ReadRow(x, y, width int) ([]Sample, error) {
	if x < 0 || y < 0 || width < 0 || y >= r.Height() || x+width > r.Width() {
		return nil, fmt.Errorf("%w: x=%d y=%d width=%d", ErrRowOutOfBounds, x, y, width)
	}

	samples := make([]Sample, width)
	off := r.img.PixOffset(x, y)
	for i := range samples {
		p := r.img.Pix[off : off+4 : off+4]
		samples[i] = Sample{R: p[0], G: p[1], B: p[2]}
		off += 4
	}
	return samples, nil
}
