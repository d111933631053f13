package layout

import "github.com/tsawler/rpdf/pdfwrite"

// textLine is one wrapped line of a text box: its own height (1.2x the
// line's max font size per spec §4.4) and a closure that draws it with
// its top edge at a given page-space y.
type textLine struct {
	height float64
	draw   func(topY float64) []pdfwrite.Primitive
}

// flowItem is one vertically-stacked unit of block flow. A text box (and
// each list item) carries lines and no draw, so the paginator can split it
// at line boundaries; an image, flex container, table, or decorated block
// carries a single opaque draw and moves as a whole.
type flowItem struct {
	height      float64
	breakBefore bool
	breakAfter  bool
	avoidSplit  bool
	lines       []textLine
	draw        func(topY float64) []pdfwrite.Primitive
}

func spacer(h float64) flowItem { return flowItem{height: h} }

// renderFlowItems stacks a sequence of items downward from topY, exactly
// the way block flow's cursor_y walk does, and collects every primitive
// they draw. Used both for top-level pagination and for rendering the
// inside of composite items (decorated blocks, flex children, table
// cells) that don't themselves get split across pages.
func renderFlowItems(items []flowItem, topY float64) []pdfwrite.Primitive {
	var prims []pdfwrite.Primitive
	cursor := topY
	for _, it := range items {
		if it.lines != nil {
			for _, ln := range it.lines {
				if ln.draw != nil {
					prims = append(prims, ln.draw(cursor)...)
				}
				cursor -= ln.height
			}
			continue
		}
		if it.draw != nil {
			prims = append(prims, it.draw(cursor)...)
		}
		cursor -= it.height
	}
	return prims
}

func sumLineHeights(lines []textLine) float64 {
	total := 0.0
	for _, ln := range lines {
		total += ln.height
	}
	return total
}

func sumHeights(items []flowItem) float64 {
	total := 0.0
	for _, it := range items {
		total += it.height
	}
	return total
}
