package imaging

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ironsheep/entropy-crop-mcp/internal/entropy"
)

// BatchItem is the smart crop outcome for one file.
type BatchItem struct {
	Path   string           `json:"path"`
	Result *SmartCropResult `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// BatchResult lists one item per requested path, in request order.
type BatchResult struct {
	Items     []BatchItem `json:"items"`
	Succeeded int         `json:"succeeded"`
	Failed    int         `json:"failed"`
}

// SmartCropBatch runs SmartCrop on every path with at most workers searches
// in flight. Each search owns its state; only the cache is shared.
//
// A file that fails to load or crop is reported in its item and does not stop
// the others. The returned error is non-nil only when ctx is cancelled.
func SmartCropBatch(ctx context.Context, cache *ImageCache, paths []string, targetRatio float64, workers int, opts ...entropy.Option) (*BatchResult, error) {
	if workers < 1 {
		workers = 1
	}

	items := make([]BatchItem, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			items[i] = cropOne(cache, path, targetRatio, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch cancelled: %w", err)
	}

	res := &BatchResult{Items: items}
	for _, it := range items {
		if it.Error != "" {
			res.Failed++
		} else {
			res.Succeeded++
		}
	}
	return res, nil
}

func cropOne(cache *ImageCache, path string, targetRatio float64, opts []entropy.Option) BatchItem {
	img, err := cache.Load(path)
	if err != nil {
		return BatchItem{Path: path, Error: err.Error()}
	}
	res, err := SmartCrop(img, targetRatio, 1.0, false, opts...)
	if err != nil {
		return BatchItem{Path: path, Error: err.Error()}
	}
	return BatchItem{Path: path, Result: res}
}
