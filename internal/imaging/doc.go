// Package imaging provides the image operations exposed by the MCP server.
//
// It loads and caches images, crops explicit regions, measures the entropy
// and channel histograms of regions, picks entropy-maximizing crops for a
// target aspect ratio (singly or in batches), and merges layered images.
// The entropy computations themselves live in package entropy; this package
// adapts image.Image values to it and encodes results for transport.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Individual image operations
// are stateless and can be called concurrently on different images, which is
// what SmartCropBatch does.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds or with no area
//   - Non-positive or non-finite aspect ratios
//   - File I/O errors during image loading
//   - Encoding errors during image output
//
// A smart crop that stops at the iteration limit is not an error; its result
// carries Converged=false.
package imaging
