// Package layout assigns positions and sizes, in PDF points, to every box
// in a boxtree.Document and paginates the result into pdfwrite.Pages. It
// plays the role tabula's own layout package plays for the inverse
// direction (detecting structure in an existing PDF): here the structure
// is already known, and layout's job is to place it.
package layout

import (
	"fmt"

	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/pdfwrite"
)

// Page describes the page geometry every render call lays out against.
type Page struct {
	WidthPt  float64
	HeightPt float64
	MarginPt float64
}

// ContentWidth is the usable horizontal space between the left and right
// margins.
func (p Page) ContentWidth() float64 { return p.WidthPt - 2*p.MarginPt }

// ContentHeight is the usable vertical space between the top and bottom
// margins — the height budget a single page fragment can hold.
func (p Page) ContentHeight() float64 { return p.HeightPt - 2*p.MarginPt }

// Error is a layout-stage failure: a box that exceeds even a fresh page's
// content area and cannot be split (spec §7's LayoutError).
type Error struct {
	msg string
}

func (e *Error) Error() string { return e.msg }

func layoutErrorf(format string, args ...interface{}) error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Build lays out and paginates a full box tree, returning one pdfwrite.Page
// per output page.
func Build(doc *boxtree.Document, page Page) ([]pdfwrite.Page, error) {
	items, err := buildItems(doc.Roots, page.MarginPt, page.ContentWidth())
	if err != nil {
		return nil, err
	}

	return paginate(items, page)
}
