package pdfwrite

import (
	"bytes"
	"fmt"

	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/model"
)

// ContentBuilder assembles one page's content stream operator by
// operator. It plays the inverse role of tabula's graphicsstate.State,
// which tracks the *effect* of operators read from an existing stream;
// this type emits the operators in the first place, in the grammar spec
// §4.5 names: BT/ET, Tf, Tj, Td, rg/RG, re f/S, Do.
type ContentBuilder struct {
	buf bytes.Buffer
}

// NewContentBuilder returns an empty content stream builder.
func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{}
}

// Bytes returns the accumulated operator stream.
func (c *ContentBuilder) Bytes() []byte {
	return c.buf.Bytes()
}

func (c *ContentBuilder) num(f float64) {
	fmt.Fprintf(&c.buf, "%s ", trimFloat(f))
}

// Save pushes the graphics state (q).
func (c *ContentBuilder) Save() { c.buf.WriteString("q\n") }

// Restore pops the graphics state (Q).
func (c *ContentBuilder) Restore() { c.buf.WriteString("Q\n") }

// SetFillColorRGB sets the nonstroking color (rg).
func (c *ContentBuilder) SetFillColorRGB(r, g, b float64) {
	c.num(r)
	c.num(g)
	c.num(b)
	c.buf.WriteString("rg\n")
}

// SetStrokeColorRGB sets the stroking color (RG).
func (c *ContentBuilder) SetStrokeColorRGB(r, g, b float64) {
	c.num(r)
	c.num(g)
	c.num(b)
	c.buf.WriteString("RG\n")
}

// SetLineWidth sets the stroke width (w).
func (c *ContentBuilder) SetLineWidth(width float64) {
	c.num(width)
	c.buf.WriteString("w\n")
}

// Rect appends a rectangle path (re); a following Fill or Stroke paints it.
func (c *ContentBuilder) Rect(x, y, w, h float64) {
	c.num(x)
	c.num(y)
	c.num(w)
	c.num(h)
	c.buf.WriteString("re\n")
}

// Fill paints the current path (f).
func (c *ContentBuilder) Fill() { c.buf.WriteString("f\n") }

// Stroke strokes the current path (S).
func (c *ContentBuilder) Stroke() { c.buf.WriteString("S\n") }

// BeginText starts a text object (BT).
func (c *ContentBuilder) BeginText() { c.buf.WriteString("BT\n") }

// EndText ends a text object (ET).
func (c *ContentBuilder) EndText() { c.buf.WriteString("ET\n") }

// SetFont selects a font resource and size (Tf). name is the page
// resource dictionary key (e.g. "F1"), not the base font's PDF name.
func (c *ContentBuilder) SetFont(name string, sizePt float64) {
	fmt.Fprintf(&c.buf, "/%s ", name)
	c.num(sizePt)
	c.buf.WriteString("Tf\n")
}

// MoveText moves to the start of the next line, offset (tx, ty) from the
// current line's start (Td).
func (c *ContentBuilder) MoveText(tx, ty float64) {
	c.num(tx)
	c.num(ty)
	c.buf.WriteString("Td\n")
}

// ShowText draws a WinAnsi-encoded, already-escaped literal string (Tj).
func (c *ContentBuilder) ShowText(escaped []byte) {
	c.buf.WriteByte('(')
	c.buf.Write(escaped)
	c.buf.WriteString(") Tj\n")
}

// ShowString is a convenience wrapper that encodes and escapes text for
// the caller.
func (c *ContentBuilder) ShowString(text string) {
	c.ShowText(font.EscapeForContentStream(font.EncodeWinAnsi(text)))
}

// transformRect concatenates a scale+translate matrix (cm) that maps the
// unit square an image XObject is defined on onto the rect (x, y, w, h).
func (c *ContentBuilder) transformRect(x, y, w, h float64) {
	m := model.Scale(w, h)
	m[4], m[5] = x, y
	for _, v := range m {
		c.num(v)
	}
	c.buf.WriteString("cm\n")
}

// Do paints an XObject (image) named in the page's resource dictionary.
func (c *ContentBuilder) Do(name string) {
	fmt.Fprintf(&c.buf, "/%s Do\n", name)
}
