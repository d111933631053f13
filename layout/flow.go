package layout

import (
	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/model"
	"github.com/tsawler/rpdf/pdfwrite"
	"github.com/tsawler/rpdf/style"
)

// buildItems is block flow (spec §4.4): each box in boxes is assigned the
// available inline width minus its own margin, stacked top to bottom.
// Margins don't collapse; a box with a background or border becomes one
// non-splittable composite item so its fill/stroke spans its full
// content, matching the teacher's own depth-first, cursor-threaded
// traversal style rather than building a separate positioned tree first.
func buildItems(boxes []*boxtree.Box, x, width float64) ([]flowItem, error) {
	var out []flowItem
	for _, b := range boxes {
		items, err := buildOne(b, x, width)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

func buildOne(b *boxtree.Box, x, width float64) ([]flowItem, error) {
	m := b.Style.Margin
	avail := width - m.Left - m.Right
	if avail < 0 {
		avail = 0
	}
	cw := resolveLength(b.Style.Width, avail)
	cx := x + m.Left

	bw := b.Style.BorderWidthPt
	pad := b.Style.Padding
	innerX := cx + pad.Left + bw
	innerW := cw - pad.Left - pad.Right - 2*bw
	if innerW < 0 {
		innerW = 0
	}

	var core []flowItem
	var coreHeight float64

	switch b.Kind {
	case boxtree.KindText:
		lines, h, e := buildTextLines(b, innerX, innerW)
		if e != nil {
			return nil, e
		}
		if len(lines) > 0 {
			core = []flowItem{{height: h, lines: lines, avoidSplit: b.Style.BreakInsideAvoid}}
		}
		coreHeight = h
	case boxtree.KindImage:
		item, e := buildImageItem(b, innerX, innerW)
		if e != nil {
			return nil, e
		}
		core = []flowItem{item}
		coreHeight = item.height
	case boxtree.KindFlex:
		item, e := buildFlex(b, innerX, innerW)
		if e != nil {
			return nil, e
		}
		core = []flowItem{item}
		coreHeight = item.height
	case boxtree.KindList:
		items, e := buildListItems(b, innerX, innerW)
		if e != nil {
			return nil, e
		}
		core = items
		coreHeight = sumHeights(items)
	case boxtree.KindTable:
		item, e := buildTable(b, innerX, innerW)
		if e != nil {
			return nil, e
		}
		core = []flowItem{item}
		coreHeight = item.height
	default: // KindBlock, KindTableCell, KindListItem: recurse into children
		items, e := buildItems(b.Children, innerX, innerW)
		if e != nil {
			return nil, e
		}
		core = items
		coreHeight = sumHeights(items)
	}

	var wrapped []flowItem
	switch {
	case b.Style.HasBackground || bw > 0:
		total := coreHeight + pad.Top + pad.Bottom + 2*bw
		wrapped = []flowItem{wrapDecorated(b, core, cx, cw, total)}
	case pad.Top > 0 || pad.Bottom > 0:
		if pad.Top > 0 {
			wrapped = append(wrapped, spacer(pad.Top))
		}
		wrapped = append(wrapped, core...)
		if pad.Bottom > 0 {
			wrapped = append(wrapped, spacer(pad.Bottom))
		}
	default:
		wrapped = core
	}

	needsMarker := b.Style.BreakBefore == style.BreakPage || b.Style.BreakAfter == style.BreakPage
	if len(wrapped) == 0 && needsMarker {
		wrapped = []flowItem{{}}
	}
	if len(wrapped) > 0 {
		wrapped[0].breakBefore = wrapped[0].breakBefore || b.Style.BreakBefore == style.BreakPage
		wrapped[0].avoidSplit = wrapped[0].avoidSplit || b.Style.BreakInsideAvoid
		last := len(wrapped) - 1
		wrapped[last].breakAfter = wrapped[last].breakAfter || b.Style.BreakAfter == style.BreakPage
	}

	var result []flowItem
	if m.Top > 0 {
		result = append(result, spacer(m.Top))
	}
	result = append(result, wrapped...)
	if m.Bottom > 0 {
		result = append(result, spacer(m.Bottom))
	}
	return result, nil
}

// wrapDecorated folds a box's background/border and its children into a
// single non-splittable flowItem: once a box paints a fill or stroke
// spanning its full height, that height can no longer be torn across a
// page boundary without the fill looking wrong on one side of the tear.
func wrapDecorated(b *boxtree.Box, children []flowItem, x, w, total float64) flowItem {
	pad := b.Style.Padding
	bw := b.Style.BorderWidthPt
	bg := b.Style.BackgroundColor
	hasBg := b.Style.HasBackground
	return flowItem{
		height:     total,
		avoidSplit: true,
		draw: func(topY float64) []pdfwrite.Primitive {
			bounds := model.NewBBox(x, topY-total, w, total)
			var prims []pdfwrite.Primitive
			if hasBg {
				prims = append(prims, pdfwrite.FillRect{X: bounds.Left(), Y: bounds.Bottom(), W: bounds.Width, H: bounds.Height, Color: bg})
			}
			if bw > 0 {
				prims = append(prims, pdfwrite.StrokeRect{X: bounds.Left(), Y: bounds.Bottom(), W: bounds.Width, H: bounds.Height, Color: model.Black, LineWidth: bw})
			}
			inner := renderFlowItems(children, bounds.Top()-pad.Top-bw)
			return append(prims, inner...)
		},
	}
}

func resolveLength(l style.Length, available float64) float64 {
	switch l.Kind {
	case style.LengthPt:
		return l.Value
	case style.LengthPercent:
		return available * l.Value / 100
	default:
		return available
	}
}

func fontKeyFor(s style.Computed) font.Key {
	bold := s.FontWeight == style.WeightBold
	italic := s.FontStyle == style.StyleItalic
	switch {
	case bold && italic:
		return font.HelveticaBoldOblique
	case bold:
		return font.HelveticaBold
	case italic:
		return font.HelveticaOblique
	default:
		return font.Helvetica
	}
}

// collectRuns flattens a subtree down to its inline runs, in document
// order, ignoring any block structure inside it (used by list items,
// whose content is usually just text but may nest a span or two).
func collectRuns(b *boxtree.Box) []boxtree.InlineRun {
	if b.Kind == boxtree.KindText {
		return b.Runs
	}
	var out []boxtree.InlineRun
	for _, c := range b.Children {
		out = append(out, collectRuns(c)...)
	}
	return out
}
