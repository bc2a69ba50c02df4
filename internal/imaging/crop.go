package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/entropy-crop-mcp/internal/entropy"
)

// Region is a rectangle within an image: (X1,Y1) inclusive, (X2,Y2) exclusive.
type Region struct {
	X1 int `json:"x1"`
	Y1 int `json:"y1"`
	X2 int `json:"x2"`
	Y2 int `json:"y2"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X1, r.Y1, r.X2, r.Y2)
}

// regionOf converts an image-space region to a raster rectangle, whose origin
// is the image's Bounds().Min. A nil region selects the whole image.
func regionOf(img image.Image, region *Region) (entropy.Rect, error) {
	bounds := img.Bounds()
	if region == nil {
		return entropy.RectFrom(bounds.Sub(bounds.Min)), nil
	}
	if err := validateRegion(bounds, region.X1, region.Y1, region.X2, region.Y2); err != nil {
		return entropy.Rect{}, err
	}
	return entropy.RectFrom(region.Rect().Sub(bounds.Min)), nil
}

func validateRegion(bounds image.Rectangle, x1, y1, x2, y2 int) error {
	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
	}
	return nil
}

// CropResult contains the cropped image data
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Crop extracts a rectangular region from an image
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (*CropResult, error) {
	if err := validateRegion(img.Bounds(), x1, y1, x2, y2); err != nil {
		return nil, err
	}
	return encodeCrop(imaging.Crop(img, image.Rect(x1, y1, x2, y2)), scale)
}

// encodeCrop optionally rescales a cropped image and encodes it as PNG.
func encodeCrop(cropped *image.NRGBA, scale float64) (*CropResult, error) {
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	data, err := encodePNG(cropped)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: data,
		MimeType:    "image/png",
	}, nil
}

func encodePNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// SmartCropResult describes an entropy-maximizing crop.
type SmartCropResult struct {
	// Region is the selected crop in image coordinates.
	Region Region `json:"region"`

	// TargetRatio is the requested width/height.
	TargetRatio float64 `json:"target_ratio"`

	// ActualRatio is the width/height of Region.
	ActualRatio float64 `json:"actual_ratio"`

	// Entropy is the joint channel entropy of Region, in bits.
	Entropy float64 `json:"entropy"`

	// Converged is false when the search stopped at its iteration limit.
	Converged bool `json:"converged"`

	// Iterations is the number of strips the search removed.
	Iterations int `json:"iterations"`

	// Preview holds the cropped image, or nil when not requested.
	Preview *CropResult `json:"preview,omitempty"`
}

// SmartCrop finds the region of img with aspect ratio targetRatio that keeps
// the most information, and optionally encodes it scaled by scale.
//
// The search starts from the full image; see entropy.MaxEntropyRect.
func SmartCrop(img image.Image, targetRatio, scale float64, preview bool, opts ...entropy.Option) (*SmartCropResult, error) {
	res, err := entropy.Crop(targetRatio, entropy.FromImage(img), opts...)
	if err != nil {
		return nil, err
	}

	r := res.Rect.Bounds().Add(img.Bounds().Min)
	out := &SmartCropResult{
		Region:      Region{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y},
		TargetRatio: targetRatio,
		ActualRatio: aspectRatio(r.Dx(), r.Dy()),
		Entropy:     res.Entropy,
		Converged:   res.Converged,
		Iterations:  res.Iterations,
	}

	if preview {
		out.Preview, err = encodeCrop(imaging.Crop(img, r), scale)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
