// Package entropy implements entropy-maximizing crop selection.
//
// Given a raster and a target aspect ratio, MaxEntropyRect repeatedly removes
// a thin strip from one edge of a working rectangle until the rectangle has
// the requested ratio. At every step the two opposite strips are compared and
// the strip whose removal leaves the higher-entropy region is discarded.
//
// # Histograms
//
// A Histogram holds 768 counters: 256 intensity levels for each of the red,
// green and blue channels, laid out as [red 0..255][green 256..511][blue 512..767].
// Histograms are plain values; assigning one copies it. The search keeps one
// canonical histogram for the working rectangle and two scratch copies that
// are reset from it after every step.
//
// # Entropy
//
// Entropy sums -p*log2(p) over all 768 bins with p = count / (3 * pixels),
// so the three channel histograms of one region contribute to a single
// figure. For any non-empty region the minimum is log2(3); MeanChannelEntropy
// reports the same information shifted so that a single-colour region scores 0.
//
// # Rasters
//
// The search reads pixels through the Raster interface, one row at a time.
// FromImage adapts any image.Image. Rows that fail to read are skipped and do
// not contribute to the histogram.
//
// # Thread Safety
//
// A search keeps all of its state locally. Rasters returned by FromImage are
// read-only and may be shared by concurrent searches.
package entropy
