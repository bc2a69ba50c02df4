package imaging

import (
	"fmt"

	"github.com/ironsheep/entropy-crop-mcp/internal/compose"
)

// LayerSpec names an image file and where it sits on the layer canvas.
type LayerSpec struct {
	Path    string  `json:"path"`
	OffsetX int     `json:"offset_x"`
	OffsetY int     `json:"offset_y"`
	Opacity float64 `json:"opacity"`
}

// MergeMode selects how layers are merged.
type MergeMode string

const (
	MergeFlatten MergeMode = "flatten"
	MergeMosaic  MergeMode = "mosaic"
)

// MergeResult is a merged image, encoded like a crop.
type MergeResult struct {
	Mode   MergeMode `json:"mode"`
	Layers int       `json:"layers"`
	CropResult
}

// MergeLayers loads every layer through cache and merges them with c.
func MergeLayers(cache *ImageCache, c compose.Compositor, specs []LayerSpec, mode MergeMode) (*MergeResult, error) {
	layers := make([]compose.Layer, len(specs))
	for i, s := range specs {
		img, err := cache.Load(s.Path)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		layers[i] = compose.Layer{Image: img, OffsetX: s.OffsetX, OffsetY: s.OffsetY, Opacity: s.Opacity}
	}

	merge := c.Flatten
	switch mode {
	case MergeFlatten:
	case MergeMosaic:
		merge = c.Mosaic
	default:
		return nil, fmt.Errorf("unknown merge mode: %s", mode)
	}

	merged, err := merge(layers)
	if err != nil {
		return nil, err
	}

	enc, err := encodeCrop(merged, 1.0)
	if err != nil {
		return nil, err
	}
	return &MergeResult{Mode: mode, Layers: len(layers), CropResult: *enc}, nil
}
