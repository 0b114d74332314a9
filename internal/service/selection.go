package service

import (
	"github.com/akronstore/akron_api/internal/models"
	"github.com/akronstore/akron_api/internal/utils"
)

// SelectionState is the state of the product selection dialog.
type SelectionState string

const (
	SelectionClosed   SelectionState = "closed"
	AwaitingSelection SelectionState = "awaiting-selection"
)

// Zoom bounds for the image viewer.
const (
	zoomMin  = 0.5
	zoomMax  = 3.0
	zoomStep = 0.5
)

// ImageViewer is the gallery sub-state of the selection dialog: selected
// image index and zoom factor. It has no bearing on the purchase flow.
type ImageViewer struct {
	Index int     `json:"index"`
	Zoom  float64 `json:"zoom"`
}

// Reset returns the viewer to the first image at normal zoom.
func (v *ImageViewer) Reset() {
	v.Index = 0
	v.Zoom = 1.0
}

// Select switches to the image at the given index. Out-of-range indexes are
// ignored.
func (v *ImageViewer) Select(index, imageCount int) {
	if index >= 0 && index < imageCount {
		v.Index = index
	}
}

// ZoomIn increases zoom by one step, clamped to the maximum.
func (v *ImageViewer) ZoomIn() {
	if v.Zoom+zoomStep <= zoomMax {
		v.Zoom += zoomStep
	} else {
		v.Zoom = zoomMax
	}
}

// ZoomOut decreases zoom by one step, clamped to the minimum.
func (v *ImageViewer) ZoomOut() {
	if v.Zoom-zoomStep >= zoomMin {
		v.Zoom -= zoomStep
	} else {
		v.Zoom = zoomMin
	}
}

// ResetZoom returns zoom to 1.0 without touching the image index.
func (v *ImageViewer) ResetZoom() {
	v.Zoom = 1.0
}

// SelectionFlow drives the buy dialog. Opening a product with more than one
// color or size enters awaiting-selection with the first color and size
// seeded as defaults; a product with at most one of each bypasses the dialog
// entirely. Finalize is gated on every multi-option dimension having been
// explicitly chosen.
type SelectionFlow struct {
	state   SelectionState
	product models.Product
	color   string
	size    string

	colorChosen bool
	sizeChosen  bool

	Viewer ImageViewer
}

// NewSelectionFlow returns a flow in the closed state.
func NewSelectionFlow() *SelectionFlow {
	return &SelectionFlow{state: SelectionClosed, Viewer: ImageViewer{Zoom: 1.0}}
}

// State returns the current dialog state.
func (f *SelectionFlow) State() SelectionState { return f.state }

// Color returns the currently selected (or seeded) color.
func (f *SelectionFlow) Color() string { return f.color }

// Size returns the currently selected (or seeded) size.
func (f *SelectionFlow) Size() string { return f.size }

// Open starts the flow for a product and resets the image viewer. It returns
// true when the dialog must be shown for color/size selection, false when
// the product has at most one of each and goes straight to composition.
func (f *SelectionFlow) Open(p models.Product) bool {
	f.product = p
	f.Viewer.Reset()

	f.color, f.size = "", ""
	if len(p.Colors) > 0 {
		f.color = p.Colors[0]
	}
	if len(p.Sizes) > 0 {
		f.size = p.Sizes[0]
	}
	// Dimensions with a single option need no explicit choice.
	f.colorChosen = len(p.Colors) <= 1
	f.sizeChosen = len(p.Sizes) <= 1

	if len(p.Colors) > 1 || len(p.Sizes) > 1 {
		f.state = AwaitingSelection
		return true
	}

	f.state = SelectionClosed
	return false
}

// SelectColor records an explicit color choice. The color must be one the
// product offers.
func (f *SelectionFlow) SelectColor(color string) error {
	if f.state != AwaitingSelection {
		return utils.ErrInvalidSelection
	}
	if !f.product.HasColor(color) {
		return utils.ErrInvalidSelection
	}
	f.color = color
	f.colorChosen = true
	return nil
}

// SelectSize records an explicit size choice. The size must be one the
// product offers.
func (f *SelectionFlow) SelectSize(size string) error {
	if f.state != AwaitingSelection {
		return utils.ErrInvalidSelection
	}
	if !f.product.HasSize(size) {
		return utils.ErrInvalidSelection
	}
	f.size = size
	f.sizeChosen = true
	return nil
}

// CanFinalize reports whether the purchase button is enabled: every dimension
// the product offers more than one option in must have been chosen. A
// dimension with no options is vacuous and never blocks.
func (f *SelectionFlow) CanFinalize() bool {
	return f.state == AwaitingSelection && f.colorChosen && f.sizeChosen
}

// Finalize closes the dialog and returns the resolved selection. It fails
// when a choice is still missing, leaving the dialog open.
func (f *SelectionFlow) Finalize() (models.Product, string, string, error) {
	if !f.CanFinalize() {
		return models.Product{}, "", "", utils.ErrSelectionIncomplete
	}
	product, color, size := f.product, f.color, f.size
	f.Dismiss()
	return product, color, size, nil
}

// Dismiss closes the dialog and clears the selection.
func (f *SelectionFlow) Dismiss() {
	f.state = SelectionClosed
	f.product = models.Product{}
	f.color, f.size = "", ""
	f.colorChosen, f.sizeChosen = false, false
}
