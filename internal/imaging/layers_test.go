package imaging

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/entropy-crop-mcp/internal/compose"
)

func TestMergeLayers(t *testing.T) {
	cache := NewImageCache()
	base := createTestImage(t, 40, 30, color.RGBA{255, 0, 0, 255})
	top := createTestImage(t, 20, 20, color.RGBA{0, 0, 255, 255})

	specs := []LayerSpec{
		{Path: base},
		{Path: top, OffsetX: 30, OffsetY: 20, Opacity: 0.5},
	}

	tests := []struct {
		mode         MergeMode
		wantW, wantH int
	}{
		{MergeFlatten, 40, 30},
		{MergeMosaic, 50, 40},
	}

	for _, tt := range tests {
		t.Run(string(tt.mode), func(t *testing.T) {
			res, err := MergeLayers(cache, compose.New(nil), specs, tt.mode)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, res.Mode)
			assert.Equal(t, 2, res.Layers)
			assert.Equal(t, tt.wantW, res.Width)
			assert.Equal(t, tt.wantH, res.Height)
			assert.Equal(t, "image/png", res.MimeType)
			assert.NotEmpty(t, res.ImageBase64)
		})
	}
}

func TestMergeLayers_Errors(t *testing.T) {
	cache := NewImageCache()
	base := createTestImage(t, 10, 10, color.RGBA{255, 0, 0, 255})
	c := compose.New(nil)

	_, err := MergeLayers(cache, c, []LayerSpec{{Path: base}}, MergeMode("stack"))
	assert.ErrorContains(t, err, "unknown merge mode")

	_, err = MergeLayers(cache, c, []LayerSpec{{Path: base}, {Path: "/nonexistent/layer.png"}}, MergeFlatten)
	assert.ErrorContains(t, err, "layer 1")

	_, err = MergeLayers(cache, c, nil, MergeMosaic)
	assert.ErrorIs(t, err, compose.ErrNoLayers)
}
