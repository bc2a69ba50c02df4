package entropy

import (
	"errors"
	"math"
)

var (
	// ErrInvalidRatio is returned when the target ratio is not a positive
	// finite number.
	ErrInvalidRatio = errors.New("entropy: target ratio must be positive and finite")

	// ErrInvalidRegion is returned when the raster or the working
	// dimensions cover no pixels.
	ErrInvalidRegion = errors.New("entropy: region has no pixels")
)

// Search defaults.
const (
	DefaultMaxIterations = 10000
	DefaultStripWidth    = 10
	DefaultTolerance     = 0.001
)

// Options tunes MaxEntropyRect.
type Options struct {
	// MaxIterations bounds the number of strips removed. When reached, the
	// best rectangle so far is returned with Converged set to false.
	MaxIterations int

	// StripWidth is the widest strip removed in one step.
	StripWidth int

	// Tolerance is the absolute ratio difference accepted as converged.
	Tolerance float64

	// Logger, if set, receives diagnostics such as skipped rows.
	Logger func(format string, args ...any)
}

// Option mutates Options.
type Option func(*Options)

// WithMaxIterations sets Options.MaxIterations. Values below 1 are ignored.
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxIterations = n
		}
	}
}

// WithStripWidth sets Options.StripWidth. Values below 1 are ignored.
func WithStripWidth(px int) Option {
	return func(o *Options) {
		if px > 0 {
			o.StripWidth = px
		}
	}
}

// WithTolerance sets Options.Tolerance. Non-positive values are ignored.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol > 0 {
			o.Tolerance = tol
		}
	}
}

// WithLogger sets Options.Logger.
func WithLogger(fn func(format string, args ...any)) Option {
	return func(o *Options) {
		o.Logger = fn
	}
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		MaxIterations: DefaultMaxIterations,
		StripWidth:    DefaultStripWidth,
		Tolerance:     DefaultTolerance,
	}
}

func (o *Options) logf(format string, args ...any) {
	if o.Logger != nil {
		o.Logger(format, args...)
	}
}

// Result is the outcome of a rectangle search.
type Result struct {
	// Rect is the selected region, always inside the raster.
	Rect Rect `json:"rect"`

	// Entropy is Entropy() of Rect's histogram.
	Entropy float64 `json:"entropy"`

	// Converged is false when MaxIterations stopped the search early.
	Converged bool `json:"converged"`

	// Iterations is the number of strips removed.
	Iterations int `json:"iterations"`
}

// Crop runs MaxEntropyRect starting from the raster's own dimensions.
func Crop(targetRatio float64, src Raster, opts ...Option) (*Result, error) {
	if src == nil || src.Width() < 1 || src.Height() < 1 {
		return nil, ErrInvalidRegion
	}
	w, h := float64(src.Width()), float64(src.Height())
	return MaxEntropyRect(targetRatio, src, w, h, w/h, opts...)
}

// MaxEntropyRect searches src for the region of ratio targetRatio that keeps
// the most information, by repeatedly discarding the lower-entropy strip.
//
// The search starts from the rectangle at (0, 0) of size workingWidth x
// workingHeight, clipped to the raster, and uses workingRatio for its first
// comparison against targetRatio. Callers normally pass the raster's own
// dimensions and ratio (see Crop).
//
// Each step removes a strip of min(StripWidth, remaining) pixels, where
// remaining is the excess over the exact target size, from either the far or
// the near edge along the axis that is too long. Both candidate histograms
// are derived from the working histogram by subtracting the strip. The far
// strip (right or bottom) is removed only if that leaves strictly higher
// entropy; on a tie the near strip (left or top) is removed.
//
// The search stops when the ratio is within Tolerance of targetRatio, when
// the rectangle reaches the rounded target size, when less than one pixel of
// excess remains, or after MaxIterations steps.
func MaxEntropyRect(targetRatio float64, src Raster, workingWidth, workingHeight, workingRatio float64, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !(targetRatio > 0) || math.IsInf(targetRatio, 0) {
		return nil, ErrInvalidRatio
	}
	if src == nil || src.Width() < 1 || src.Height() < 1 {
		return nil, ErrInvalidRegion
	}
	if !(workingWidth >= 1) || !(workingHeight >= 1) {
		return nil, ErrInvalidRegion
	}

	r := Rect{
		Width:  int(math.Min(workingWidth, float64(src.Width()))),
		Height: int(math.Min(workingHeight, float64(src.Height()))),
	}
	ratio := workingRatio
	if !(ratio > 0) || math.IsInf(ratio, 0) {
		ratio = r.Ratio()
	}

	var hist Histogram
	if n := hist.Accumulate(src, &r, 1); n > 0 {
		o.logf("entropy: skipped %d unreadable rows in %s", n, r)
	}
	a, b := hist, hist

	res := &Result{Rect: r, Entropy: Entropy(&hist, r.Area())}

	for math.Abs(targetRatio-ratio) >= o.Tolerance {
		if res.Iterations >= o.MaxIterations {
			o.logf("entropy: no convergence after %d iterations, ratio %.4f target %.4f", res.Iterations, ratio, targetRatio)
			return res, nil
		}

		var stripA, stripB, keepA, keepB Rect
		var remaining float64
		var targetW, targetH int

		wide := ratio > targetRatio
		if wide {
			remaining = float64(r.Width) - float64(r.Height)*targetRatio
			targetW, targetH = int(math.Round(float64(r.Height)*targetRatio)), r.Height
		} else {
			remaining = float64(r.Height) - float64(r.Width)/targetRatio
			targetW, targetH = r.Width, int(math.Round(float64(r.Width)/targetRatio))
		}

		px := int(math.Min(remaining, float64(o.StripWidth)))
		if px < 1 {
			// No whole pixel left to remove.
			break
		}

		if wide {
			w := r.Width - px
			stripA = Rect{X: r.X + w, Y: r.Y, Width: px, Height: r.Height}
			stripB = Rect{X: r.X, Y: r.Y, Width: px, Height: r.Height}
			keepA = Rect{X: r.X, Y: r.Y, Width: w, Height: r.Height}
			keepB = Rect{X: r.X + px, Y: r.Y, Width: w, Height: r.Height}
		} else {
			h := r.Height - px
			stripA = Rect{X: r.X, Y: r.Y + h, Width: r.Width, Height: px}
			stripB = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: px}
			keepA = Rect{X: r.X, Y: r.Y, Width: r.Width, Height: h}
			keepB = Rect{X: r.X, Y: r.Y + px, Width: r.Width, Height: h}
		}

		if n := a.Subtract(src, &stripA) + b.Subtract(src, &stripB); n > 0 {
			o.logf("entropy: skipped %d unreadable rows while scoring %s", n, r)
		}

		ea := Entropy(&a, keepA.Area())
		eb := Entropy(&b, keepB.Area())
		if ea > eb {
			r, hist, res.Entropy = keepA, a, ea
		} else {
			r, hist, res.Entropy = keepB, b, eb
		}
		a, b = hist, hist

		res.Rect = r
		res.Iterations++

		if r.Width == targetW && r.Height == targetH {
			break
		}
		ratio = r.Ratio()
	}

	res.Converged = true
	return res, nil
}
