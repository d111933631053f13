package layout

import (
	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/pdfwrite"
	"github.com/tsawler/rpdf/style"
)

// buildFlex lays out a flex container's direct children along its main
// axis, per spec §4.4, and returns one non-splittable composite item: flex
// distribution depends on every sibling at once, so there's no meaningful
// child boundary to paginate at.
func buildFlex(b *boxtree.Box, x, width float64) (flowItem, error) {
	if b.Style.FlexDirection == style.FlexColumn {
		return buildFlexColumn(b, x, width)
	}
	return buildFlexRow(b, x, width)
}

// intrinsicWidthOf estimates a flex child's unconstrained main-axis size:
// its explicit width if set, its single unwrapped line width if it's
// text, its native width (capped to available) if it's an image, else 0
// — an auto-width block with no fixed-width descendant shrinks to
// nothing and grows only via flex-grow, a documented simplification of
// spec §4.4's "sum of fixed-width children" rule.
func intrinsicWidthOf(b *boxtree.Box, available float64) float64 {
	if !b.Style.Width.Auto() {
		return resolveLength(b.Style.Width, available)
	}
	switch b.Kind {
	case boxtree.KindText:
		w := 0.0
		for _, r := range b.Runs {
			w += font.MeasureBytes(fontKeyFor(r.Style), font.EncodeWinAnsi(r.Text), r.Style.FontSizePt)
		}
		if w > available {
			w = available
		}
		return w
	case boxtree.KindImage:
		if b.IntrinsicW > available {
			return available
		}
		return b.IntrinsicW
	default:
		return 0
	}
}

func buildFlexRow(b *boxtree.Box, x, width float64) (flowItem, error) {
	children := b.Children
	n := len(children)
	if n == 0 {
		return flowItem{}, nil
	}

	gap := b.Style.GapPt
	intrinsic := make([]float64, n)
	grow := make([]float64, n)
	sumIntrinsic, sumGrow := 0.0, 0.0
	for i, c := range children {
		intrinsic[i] = intrinsicWidthOf(c, width)
		grow[i] = c.Style.FlexGrow
		sumIntrinsic += intrinsic[i]
		sumGrow += grow[i]
	}
	free := width - gap*float64(n-1) - sumIntrinsic

	itemWidths := make([]float64, n)
	for i := range children {
		w := intrinsic[i]
		if free > 0 && sumGrow > 0 {
			w += free * grow[i] / sumGrow
		}
		if w < 0 {
			w = 0
		}
		itemWidths[i] = w
	}

	leading, between := 0.0, 0.0
	if free > 0 && sumGrow == 0 {
		switch b.Style.JustifyContent {
		case style.JustifyCenter:
			leading = free / 2
		case style.JustifyBetween:
			if n > 1 {
				between = free / float64(n-1)
			}
		case style.JustifyAround:
			between = free / float64(n)
			leading = between / 2
		case style.JustifyEvenly:
			between = free / float64(n+1)
			leading = between
		}
	}

	xs := make([]float64, n)
	cx := x + leading
	for i := range children {
		xs[i] = cx
		cx += itemWidths[i] + gap + between
	}

	childItems := make([][]flowItem, n)
	childHeights := make([]float64, n)
	maxH := 0.0
	for i, c := range children {
		items, err := buildItems([]*boxtree.Box{c}, xs[i], itemWidths[i])
		if err != nil {
			return flowItem{}, err
		}
		childItems[i] = items
		childHeights[i] = sumHeights(items)
		if childHeights[i] > maxH {
			maxH = childHeights[i]
		}
	}

	align := b.Style.AlignItems
	return flowItem{
		height:     maxH,
		avoidSplit: true,
		draw: func(topY float64) []pdfwrite.Primitive {
			var prims []pdfwrite.Primitive
			for i := range children {
				top := topY
				switch align {
				case style.AlignItemsCenter:
					top = topY - (maxH-childHeights[i])/2
				case style.AlignItemsEnd:
					top = topY - (maxH - childHeights[i])
				}
				prims = append(prims, renderFlowItems(childItems[i], top)...)
			}
			return prims
		},
	}, nil
}

// buildFlexColumn stacks children vertically, like block flow, but
// additionally honors align-items on the cross (horizontal) axis; main-
// axis grow is meaningless here since a column's height is intrinsic, not
// page-constrained, so flex-grow is a no-op in this direction.
func buildFlexColumn(b *boxtree.Box, x, width float64) (flowItem, error) {
	gap := b.Style.GapPt
	var all []flowItem
	total := 0.0
	for i, c := range b.Children {
		cw := width
		cx := x
		if b.Style.AlignItems != style.AlignItemsStretch {
			cw = intrinsicWidthOf(c, width)
			switch b.Style.AlignItems {
			case style.AlignItemsCenter:
				cx = x + (width-cw)/2
			case style.AlignItemsEnd:
				cx = x + (width - cw)
			}
		}
		items, err := buildItems([]*boxtree.Box{c}, cx, cw)
		if err != nil {
			return flowItem{}, err
		}
		all = append(all, items...)
		total += sumHeights(items)
		if gap > 0 && i < len(b.Children)-1 {
			all = append(all, spacer(gap))
			total += gap
		}
	}
	return flowItem{
		height:     total,
		avoidSplit: true,
		draw: func(topY float64) []pdfwrite.Primitive {
			return renderFlowItems(all, topY)
		},
	}, nil
}
