package layout

import "github.com/tsawler/rpdf/pdfwrite"

// paginate walks a flat, already-positioned item stream with a running
// page cursor — the two-pass design spec §9 describes: buildItems already
// measured every box unbounded, so this pass only decides where page
// boundaries fall. A non-text item moves whole to a fresh page when it
// doesn't fit the remainder of the current one. A text item is split at
// line boundaries wherever a line would cross the bottom margin, unless it
// is marked avoidSplit and fits on a fresh page, in which case it moves
// whole.
func paginate(items []flowItem, page Page) ([]pdfwrite.Page, error) {
	contentHeight := page.ContentHeight()
	top := page.HeightPt - page.MarginPt
	bottom := page.MarginPt

	var pages []pdfwrite.Page
	var prims []pdfwrite.Primitive
	cursor := top

	flush := func() {
		pages = append(pages, pdfwrite.Page{WidthPt: page.WidthPt, HeightPt: page.HeightPt, Primitives: prims})
		prims = nil
		cursor = top
	}

	for _, it := range items {
		if it.breakBefore && cursor != top {
			flush()
		}

		if it.lines != nil {
			total := sumLineHeights(it.lines)
			if it.avoidSplit && cursor != top && cursor-total < bottom && total <= contentHeight {
				flush()
			}
			for _, ln := range it.lines {
				if ln.height > contentHeight {
					return nil, layoutErrorf("text line height %.1fpt exceeds page content height %.1fpt", ln.height, contentHeight)
				}
				if cursor-ln.height < bottom && cursor != top {
					flush()
				}
				if ln.draw != nil {
					prims = append(prims, ln.draw(cursor)...)
				}
				cursor -= ln.height
			}
		} else {
			if cursor-it.height < bottom && cursor != top {
				flush()
			}
			if it.height > contentHeight {
				return nil, layoutErrorf("box height %.1fpt exceeds page content height %.1fpt and cannot be split", it.height, contentHeight)
			}
			if it.draw != nil {
				prims = append(prims, it.draw(cursor)...)
			}
			cursor -= it.height
		}

		if it.breakAfter {
			flush()
		}
	}

	if len(prims) > 0 || len(pages) == 0 {
		flush()
	}
	return pages, nil
}
