// Package compose merges layered images into a single frame.
//
// A layered image is an ordered list of layers, bottom first, each placed at
// an offset on a shared virtual canvas. Two merges are provided:
//
//   - Flatten paints every layer onto a canvas the size of the first layer,
//     clipping anything that falls outside it.
//   - Mosaic grows the canvas to the union of all layer rectangles so that no
//     layer is clipped and relative offsets are preserved.
//
// Uncovered canvas pixels take the compositor's background colour.
package compose

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// ErrNoLayers is returned when a merge is requested for an empty layer list.
var ErrNoLayers = errors.New("compose: no layers")

// Layer is one image placed on the virtual canvas.
type Layer struct {
	Image   image.Image
	OffsetX int
	OffsetY int

	// Opacity scales the layer's alpha, 0 to 1. Zero is treated as fully
	// opaque so that the zero Layer value paints normally.
	Opacity float64
}

// Compositor flattens or mosaics a layered image.
type Compositor interface {
	Flatten(layers []Layer) (*image.NRGBA, error)
	Mosaic(layers []Layer) (*image.NRGBA, error)
}

// Overlay is the default Compositor, painting layers in order with
// source-over blending.
type Overlay struct {
	Background color.Color
}

// New returns an Overlay compositor. A nil background means transparent.
func New(background color.Color) *Overlay {
	if background == nil {
		background = color.Transparent
	}
	return &Overlay{Background: background}
}

// Flatten merges layers onto a canvas the size and position of layers[0].
func (o *Overlay) Flatten(layers []Layer) (*image.NRGBA, error) {
	if err := validate(layers); err != nil {
		return nil, err
	}
	return o.paint(layerRect(layers[0]), layers), nil
}

// Mosaic merges layers onto a canvas covering every layer.
func (o *Overlay) Mosaic(layers []Layer) (*image.NRGBA, error) {
	if err := validate(layers); err != nil {
		return nil, err
	}

	canvas := layerRect(layers[0])
	for _, l := range layers[1:] {
		canvas = canvas.Union(layerRect(l))
	}
	return o.paint(canvas, layers), nil
}

func (o *Overlay) paint(canvas image.Rectangle, layers []Layer) *image.NRGBA {
	dst := imaging.New(canvas.Dx(), canvas.Dy(), o.Background)
	for _, l := range layers {
		pos := image.Pt(l.OffsetX-canvas.Min.X, l.OffsetY-canvas.Min.Y)
		dst = imaging.Overlay(dst, l.Image, pos, opacity(l))
	}
	return dst
}

// layerRect is the rectangle a layer occupies on the virtual canvas.
func layerRect(l Layer) image.Rectangle {
	size := l.Image.Bounds().Size()
	return image.Rect(l.OffsetX, l.OffsetY, l.OffsetX+size.X, l.OffsetY+size.Y)
}

func opacity(l Layer) float64 {
	switch {
	case l.Opacity <= 0 || l.Opacity > 1:
		return 1
	default:
		return l.Opacity
	}
}

func validate(layers []Layer) error {
	if len(layers) == 0 {
		return ErrNoLayers
	}
	for i, l := range layers {
		if l.Image == nil {
			return fmt.Errorf("compose: layer %d has no image", i)
		}
	}
	if layers[0].Image.Bounds().Empty() {
		return errors.New("compose: base layer is empty")
	}
	return nil
}
