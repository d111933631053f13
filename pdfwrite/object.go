// Package pdfwrite implements the PDF 1.7 object model and the
// cross-reference/trailer bookkeeping needed to serialize it: the writer
// half of the object model tabula's core package implements for reading.
//
// Dict is deliberately insertion-ordered rather than a bare Go map — spec
// §8 requires generate() to be byte-for-byte deterministic, and Go's map
// iteration order is randomized per-process, which would make two
// runs of the same input disagree on dictionary key order.
package pdfwrite

import (
	"bytes"
	"strconv"

	"github.com/tsawler/rpdf/font"
)

// Object is anything that can serialize itself into PDF object syntax.
type Object interface {
	WritePDF(buf *bytes.Buffer)
}

// Null is the PDF null object.
type Null struct{}

func (Null) WritePDF(buf *bytes.Buffer) { buf.WriteString("null") }

// Bool is a PDF boolean.
type Bool bool

func (b Bool) WritePDF(buf *bytes.Buffer) {
	if b {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
}

// Int is a PDF integer.
type Int int64

func (i Int) WritePDF(buf *bytes.Buffer) { buf.WriteString(strconv.FormatInt(int64(i), 10)) }

// Real is a PDF real number, formatted without an exponent (PDF forbids
// scientific notation) and without unnecessary trailing zeros.
type Real float64

func (r Real) WritePDF(buf *bytes.Buffer) {
	buf.WriteString(strconv.FormatFloat(float64(r), 'f', -1, 64))
}

// Str is a PDF literal string. Text is transliterated to WinAnsi and
// escaped for '(', ')', and '\' before being wrapped in parens, per
// spec §4.5 — applied uniformly to every string object, not just content
// stream text, so /Title and other metadata strings follow the same rule.
type Str string

func (s Str) WritePDF(buf *bytes.Buffer) {
	winAnsi := font.EncodeWinAnsi(string(s))
	escaped := font.EscapeForContentStream(winAnsi)
	buf.WriteByte('(')
	buf.Write(escaped)
	buf.WriteByte(')')
}

// Name is a PDF name object, e.g. /Type.
type Name string

func (n Name) WritePDF(buf *bytes.Buffer) {
	buf.WriteByte('/')
	buf.WriteString(string(n))
}

// Array is a PDF array.
type Array []Object

func (a Array) WritePDF(buf *bytes.Buffer) {
	buf.WriteByte('[')
	for i, obj := range a {
		if i > 0 {
			buf.WriteByte(' ')
		}
		obj.WritePDF(buf)
	}
	buf.WriteByte(']')
}

// Ref is an indirect object reference, "N G R".
type Ref struct {
	Number     int
	Generation int
}

func (r Ref) WritePDF(buf *bytes.Buffer) {
	buf.WriteString(strconv.Itoa(r.Number))
	buf.WriteByte(' ')
	buf.WriteString(strconv.Itoa(r.Generation))
	buf.WriteString(" R")
}
