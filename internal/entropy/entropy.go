package entropy

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy in bits of the joint distribution of
// all 768 bins, where each bin's probability is count / (3 * total).
//
// total is the pixel count of the region h describes. Bins at or below zero
// contribute nothing. A total of zero or less yields 0.
func Entropy(h *Histogram, total int) float64 {
	if h == nil || total <= 0 {
		return 0
	}
	return bits(h[:], float64(Channels*total))
}

// ChannelEntropy returns the entropy in bits of one band, with each bin's
// probability being count / total. It ranges from 0 (one intensity) to 8.
func ChannelEntropy(h *Histogram, c Channel, total int) float64 {
	if h == nil || total <= 0 {
		return 0
	}
	return bits(h.Channel(c), float64(total))
}

// MeanChannelEntropy averages ChannelEntropy over red, green and blue.
//
// For a fully accumulated region it equals Entropy(h, total) - log2(3), so
// it orders regions identically while scoring a single-colour region as 0.
func MeanChannelEntropy(h *Histogram, total int) float64 {
	var sum float64
	for c := Red; c <= Blue; c++ {
		sum += ChannelEntropy(h, c, total)
	}
	return sum / Channels
}

func bits(counts []int64, t float64) float64 {
	p := make([]float64, 0, len(counts))
	for _, n := range counts {
		if n > 0 {
			p = append(p, float64(n)/t)
		}
	}
	if len(p) == 0 {
		return 0
	}
	// stat.Entropy works in nats and skips zero probabilities.
	return stat.Entropy(p) / math.Ln2
}
