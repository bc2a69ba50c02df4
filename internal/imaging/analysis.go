package imaging

import (
	"image"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/entropy-crop-mcp/internal/entropy"
)

// EntropyResult reports the information content of a region.
type EntropyResult struct {
	Region Region `json:"region"`
	Pixels int    `json:"pixels"`

	// Entropy is the joint entropy over all three channel histograms, in
	// bits. It is log2(3) for a single-colour region.
	Entropy float64 `json:"entropy"`

	// MeanChannelEntropy is the average per-channel entropy, 0 to 8 bits.
	MeanChannelEntropy float64 `json:"mean_channel_entropy"`

	// Channels holds the entropy of the red, green and blue bands.
	Channels ChannelValues `json:"channels"`

	// SkippedRows counts rows that could not be read.
	SkippedRows int `json:"skipped_rows,omitempty"`
}

// ChannelValues holds one number per colour channel.
type ChannelValues struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
}

// RegionEntropy measures the entropy of region, or of the whole image when
// region is nil.
func RegionEntropy(img image.Image, region *Region) (*EntropyResult, error) {
	rect, err := regionOf(img, region)
	if err != nil {
		return nil, err
	}

	var h entropy.Histogram
	skipped := h.Accumulate(entropy.FromImage(img), &rect, 1)
	pixels := rect.Area()

	return &EntropyResult{
		Region:             imageRegion(img, rect),
		Pixels:             pixels,
		Entropy:            round4(entropy.Entropy(&h, pixels)),
		MeanChannelEntropy: round4(entropy.MeanChannelEntropy(&h, pixels)),
		Channels: ChannelValues{
			Red:   round4(entropy.ChannelEntropy(&h, entropy.Red, pixels)),
			Green: round4(entropy.ChannelEntropy(&h, entropy.Green, pixels)),
			Blue:  round4(entropy.ChannelEntropy(&h, entropy.Blue, pixels)),
		},
		SkippedRows: skipped,
	}, nil
}

// HistogramResult contains the channel histograms of a region.
type HistogramResult struct {
	Region Region `json:"region"`
	Pixels int    `json:"pixels"`

	// Red, Green and Blue hold 256 counts each, indexed by intensity.
	Red   []int64 `json:"red"`
	Green []int64 `json:"green"`
	Blue  []int64 `json:"blue"`

	// Mean is the average intensity of each channel.
	Mean ChannelValues `json:"mean"`

	// MeanColor is the average colour as "#rrggbb".
	MeanColor string `json:"mean_color"`
}

// RegionHistogram returns the 256-level histograms of region, or of the whole
// image when region is nil.
func RegionHistogram(img image.Image, region *Region) (*HistogramResult, error) {
	rect, err := regionOf(img, region)
	if err != nil {
		return nil, err
	}

	var h entropy.Histogram
	h.Accumulate(entropy.FromImage(img), &rect, 1)

	mean := ChannelValues{
		Red:   channelMean(&h, entropy.Red),
		Green: channelMean(&h, entropy.Green),
		Blue:  channelMean(&h, entropy.Blue),
	}
	avg := colorful.Color{R: mean.Red / 255, G: mean.Green / 255, B: mean.Blue / 255}

	return &HistogramResult{
		Region:    imageRegion(img, rect),
		Pixels:    rect.Area(),
		Red:       append([]int64(nil), h.Channel(entropy.Red)...),
		Green:     append([]int64(nil), h.Channel(entropy.Green)...),
		Blue:      append([]int64(nil), h.Channel(entropy.Blue)...),
		Mean:      ChannelValues{Red: round4(mean.Red), Green: round4(mean.Green), Blue: round4(mean.Blue)},
		MeanColor: avg.Clamped().Hex(),
	}, nil
}

func channelMean(h *entropy.Histogram, c entropy.Channel) float64 {
	var sum, n float64
	for level, count := range h.Channel(c) {
		sum += float64(level) * float64(count)
		n += float64(count)
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

// imageRegion maps a raster rectangle back to image coordinates.
func imageRegion(img image.Image, rect entropy.Rect) Region {
	r := rect.Bounds().Add(img.Bounds().Min)
	return Region{X1: r.Min.X, Y1: r.Min.Y, X2: r.Max.X, Y2: r.Max.Y}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
