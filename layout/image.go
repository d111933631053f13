package layout

import (
	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/model"
	"github.com/tsawler/rpdf/pdfwrite"
)

// buildImageItem sizes an image box to its explicit width (scaling height
// to preserve aspect ratio) or, absent one, its intrinsic pixel size
// capped to the available width. An image taller than a full page surfaces
// as a layout.Error once the paginator sees it can't fit any page and
// can't be split — spec §7's canonical LayoutError example.
func buildImageItem(b *boxtree.Box, x, width float64) (flowItem, error) {
	w, h := b.IntrinsicW, b.IntrinsicH
	if w <= 0 || h <= 0 {
		return flowItem{}, nil
	}

	cw := w
	if !b.Style.Width.Auto() {
		cw = resolveLength(b.Style.Width, width)
	} else if cw > width {
		cw = width
	}
	scale := cw / w
	ch := h * scale

	key := b.ImageKey
	return flowItem{
		height:     ch,
		avoidSplit: true,
		draw: func(topY float64) []pdfwrite.Primitive {
			bounds := model.NewBBox(x, topY-ch, cw, ch)
			return []pdfwrite.Primitive{pdfwrite.DrawImage{ImageKey: key, X: bounds.Left(), Y: bounds.Bottom(), W: bounds.Width, H: bounds.Height}}
		},
	}, nil
}
