package entropy

// Histogram dimensions.
const (
	Levels   = 256
	Channels = 3
	Bins     = Levels * Channels
)

// Channel selects one band of a Histogram.
type Channel int

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// Histogram counts per-channel intensities over a region.
//
// Counters are signed so that incremental subtraction can pass through
// negative values while a caller is still updating; a histogram is only
// meaningful for entropy once every subtraction has been matched by counts
// that were previously added.
type Histogram [Bins]int64

// Accumulate scans the pixels of rect and adds weight to the bin of each
// pixel's red, green and blue intensity.
//
// A positive weight clears the histogram first, so the result is a fresh
// count of rect. A negative weight subtracts from the existing counts. A nil
// rect means the whole raster; a non-nil rect is clipped to the raster and
// contributes nothing when the clipped area is empty.
//
// Rows the raster fails to read are skipped. The number of skipped rows is
// returned so callers can log it.
func (h *Histogram) Accumulate(src Raster, rect *Rect, weight int) int {
	if weight > 0 {
		h.Reset()
	}
	return h.scan(src, rect, int64(weight))
}

// Add adds the pixels of rect without clearing existing counts.
func (h *Histogram) Add(src Raster, rect *Rect) int {
	return h.scan(src, rect, 1)
}

// Subtract removes the pixels of rect from the existing counts.
func (h *Histogram) Subtract(src Raster, rect *Rect) int {
	return h.scan(src, rect, -1)
}

func (h *Histogram) scan(src Raster, rect *Rect, weight int64) int {
	if src == nil || weight == 0 {
		return 0
	}

	region := Rect{Width: src.Width(), Height: src.Height()}
	if rect != nil {
		region = rect.clip(region.Width, region.Height)
	}
	if region.Empty() {
		return 0
	}

	skipped := 0
	for y := region.Y; y < region.Y+region.Height; y++ {
		row, err := src.ReadRow(region.X, y, region.Width)
		if err != nil {
			skipped++
			continue
		}
		for _, s := range row {
			h[s.R] += weight
			h[Levels+int(s.G)] += weight
			h[2*Levels+int(s.B)] += weight
		}
	}
	return skipped
}

// Clone returns an independent copy of h.
func (h *Histogram) Clone() *Histogram {
	c := *h
	return &c
}

// Reset zeroes every bin.
func (h *Histogram) Reset() {
	*h = Histogram{}
}

// Channel returns the 256 counters of one band.
func (h *Histogram) Channel(c Channel) []int64 {
	start := int(c) * Levels
	return h[start : start+Levels]
}

// ChannelTotal returns the sum of one band, which equals the number of
// pixels counted for a fully accumulated region.
func (h *Histogram) ChannelTotal(c Channel) int64 {
	var total int64
	for _, n := range h.Channel(c) {
		total += n
	}
	return total
}

// IsZero reports whether every bin is zero.
func (h *Histogram) IsZero() bool {
	return *h == Histogram{}
}
