package imaging

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegionEntropy_WholeImage(t *testing.T) {
	img := createPatternImage(100, 100)

	res, err := RegionEntropy(img, nil)
	require.NoError(t, err)

	assert.Equal(t, Region{X1: 0, Y1: 0, X2: 100, Y2: 100}, res.Region)
	assert.Equal(t, 10000, res.Pixels)
	// Each channel is half 0, half 255.
	assert.Equal(t, ChannelValues{Red: 1, Green: 1, Blue: 1}, res.Channels)
	assert.Equal(t, 1.0, res.MeanChannelEntropy)
	assert.InDelta(t, 1+math.Log2(3), res.Entropy, 1e-4)
	assert.Zero(t, res.SkippedRows)
}

func TestRegionEntropy_SingleColour(t *testing.T) {
	img := createPatternImage(100, 100)

	res, err := RegionEntropy(img, &Region{X1: 0, Y1: 0, X2: 50, Y2: 50})
	require.NoError(t, err)

	assert.Equal(t, 2500, res.Pixels)
	assert.Zero(t, res.MeanChannelEntropy)
	assert.Equal(t, ChannelValues{}, res.Channels)
	assert.InDelta(t, math.Log2(3), res.Entropy, 1e-4)
}

func TestRegionEntropy_OffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 25, 25))
	for y := 5; y < 25; y++ {
		for x := 5; x < 25; x++ {
			if x < 15 {
				img.Set(x, y, color.RGBA{0, 0, 0, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 255, 255})
			}
		}
	}

	left, err := RegionEntropy(img, &Region{X1: 5, Y1: 5, X2: 15, Y2: 25})
	require.NoError(t, err)
	assert.Zero(t, left.MeanChannelEntropy)
	assert.Equal(t, Region{X1: 5, Y1: 5, X2: 15, Y2: 25}, left.Region)

	all, err := RegionEntropy(img, nil)
	require.NoError(t, err)
	assert.Equal(t, Region{X1: 5, Y1: 5, X2: 25, Y2: 25}, all.Region)
	assert.Equal(t, 1.0, all.MeanChannelEntropy)
}

func TestRegionEntropy_InvalidRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	for _, r := range []Region{
		{X1: 0, Y1: 0, X2: 101, Y2: 50},
		{X1: 10, Y1: 10, X2: 10, Y2: 50},
		{X1: -1, Y1: 0, X2: 50, Y2: 50},
	} {
		r := r
		_, err := RegionEntropy(img, &r)
		assert.Error(t, err, "region %+v", r)
	}
}

func TestRegionHistogram(t *testing.T) {
	img := createPatternImage(100, 100)

	res, err := RegionHistogram(img, nil)
	require.NoError(t, err)

	require.Len(t, res.Red, 256)
	require.Len(t, res.Green, 256)
	require.Len(t, res.Blue, 256)

	// Red is set in the red and white quadrants.
	assert.Equal(t, int64(5000), res.Red[255])
	assert.Equal(t, int64(5000), res.Red[0])
	assert.Equal(t, int64(5000), res.Blue[255])
	assert.Equal(t, ChannelValues{Red: 127.5, Green: 127.5, Blue: 127.5}, res.Mean)
	assert.Equal(t, "#808080", res.MeanColor)
	assert.Equal(t, 10000, res.Pixels)
}

func TestRegionHistogram_Quadrant(t *testing.T) {
	img := createPatternImage(100, 100)

	res, err := RegionHistogram(img, &Region{X1: 50, Y1: 0, X2: 100, Y2: 50})
	require.NoError(t, err)

	assert.Equal(t, int64(2500), res.Green[255])
	assert.Equal(t, int64(2500), res.Red[0])
	assert.Equal(t, "#00ff00", res.MeanColor)
}

func TestRegionHistogram_InvalidRegion(t *testing.T) {
	img := createPatternImage(10, 10)
	_, err := RegionHistogram(img, &Region{X1: 0, Y1: 0, X2: 11, Y2: 11})
	assert.Error(t, err)
}
