package layout

import (
	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/model"
	"github.com/tsawler/rpdf/pdfwrite"
)

// minCellWidth keeps an empty or near-empty cell from collapsing to zero
// width when every row happens to be short.
const minCellWidth = 20.0

// buildTable computes column widths in one pass — the first row's cell
// count is authoritative per spec §9's Open Question resolution — then
// lays out every row at those widths. The whole table is one
// non-splittable composite item: row-by-row pagination would need a
// repeated header row, which the spec doesn't ask for.
func buildTable(b *boxtree.Box, x, width float64) (flowItem, error) {
	rows := b.Rows
	if len(rows) == 0 {
		return flowItem{}, nil
	}
	ncols := len(rows[0])
	if ncols == 0 {
		return flowItem{}, nil
	}

	colWidth := make([]float64, ncols)
	for _, row := range rows {
		for c := 0; c < ncols && c < len(row); c++ {
			iw := intrinsicCellWidth(row[c])
			if iw > colWidth[c] {
				colWidth[c] = iw
			}
		}
	}
	sumCol := 0.0
	for _, w := range colWidth {
		sumCol += w
	}
	if sumCol <= 0 {
		for c := range colWidth {
			colWidth[c] = width / float64(ncols)
		}
	} else {
		scale := width / sumCol
		for c := range colWidth {
			colWidth[c] *= scale
		}
	}

	colX := make([]float64, ncols)
	cx := x
	for c := 0; c < ncols; c++ {
		colX[c] = cx
		cx += colWidth[c]
	}

	type laidRow struct {
		height float64
		cells  [][]flowItem
	}
	laid := make([]laidRow, len(rows))
	total := 0.0
	for r, row := range rows {
		cells := make([][]flowItem, ncols)
		rowH := 0.0
		for c := 0; c < ncols && c < len(row); c++ {
			items, err := buildItems([]*boxtree.Box{row[c]}, colX[c], colWidth[c])
			if err != nil {
				return flowItem{}, err
			}
			cells[c] = items
			if h := sumHeights(items); h > rowH {
				rowH = h
			}
		}
		laid[r] = laidRow{height: rowH, cells: cells}
		total += rowH
	}

	return flowItem{
		height:     total,
		avoidSplit: true,
		draw: func(topY float64) []pdfwrite.Primitive {
			var prims []pdfwrite.Primitive
			rowTop := topY
			for r, row := range rows {
				lr := laid[r]
				for c := 0; c < ncols && c < len(row); c++ {
					cellStyle := row[c].Style
					cellBounds := model.NewBBox(colX[c], rowTop-lr.height, colWidth[c], lr.height)
					if cellStyle.BorderWidthPt > 0 {
						prims = append(prims, pdfwrite.StrokeRect{
							X: cellBounds.Left(), Y: cellBounds.Bottom(), W: cellBounds.Width, H: cellBounds.Height,
							Color: model.Black, LineWidth: cellStyle.BorderWidthPt,
						})
					}
					prims = append(prims, renderFlowItems(lr.cells[c], cellBounds.Top())...)
				}
				rowTop -= lr.height
			}
			return prims
		},
	}, nil
}

// intrinsicCellWidth estimates a column's natural width from one cell:
// its explicit width if set, else its unwrapped text width plus
// horizontal padding.
func intrinsicCellWidth(cell *boxtree.Box) float64 {
	if !cell.Style.Width.Auto() {
		return cell.Style.Width.Value
	}
	w := 0.0
	for _, r := range collectRuns(cell) {
		w += font.MeasureBytes(fontKeyFor(r.Style), font.EncodeWinAnsi(r.Text), r.Style.FontSizePt)
	}
	w += cell.Style.Padding.Left + cell.Style.Padding.Right
	if w < minCellWidth {
		w = minCellWidth
	}
	return w
}
