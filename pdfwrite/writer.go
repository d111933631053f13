package pdfwrite

import (
	"bytes"
	"fmt"
)

// Writer accumulates indirect objects in emission order and serializes
// them into a complete PDF 1.7 byte stream: header, objects, xref table,
// trailer — the object ordering spec §4.5 mandates (Catalog, Pages, each
// Page, each Content Stream, Font resources, Image XObjects) is the
// caller's responsibility; Writer just assigns numbers in Add() call
// order and records byte offsets as it serializes.
type Writer struct {
	objects []Object
}

// New returns an empty Writer.
func New() *Writer {
	return &Writer{}
}

// Add appends an object, assigning it the next object number, and returns
// a Ref pointing to it.
func (w *Writer) Add(obj Object) Ref {
	w.objects = append(w.objects, obj)
	return Ref{Number: len(w.objects), Generation: 0}
}

// Set overwrites a previously Add-ed object, for the common two-pass
// pattern of reserving a Ref before the object it points to exists yet
// (e.g. a Page needs to reference its own not-yet-built Contents stream,
// or vice versa within a cyclic Pages/Kids graph).
func (w *Writer) Set(ref Ref, obj Object) {
	w.objects[ref.Number-1] = obj
}

// Reserve allocates an object number without a value yet; Set fills it in
// later. Until Set is called the slot serializes as PDF null.
func (w *Writer) Reserve() Ref {
	return w.Add(Null{})
}

// Bytes serializes the full PDF file: header, every added object, an
// xref table with a byte offset per object, and a trailer naming root
// and info.
func (w *Writer) Bytes(root, info Ref) []byte {
	var buf bytes.Buffer
	buf.WriteString("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")

	offsets := make([]int, len(w.objects))
	for i, obj := range w.objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n", i+1)
		obj.WritePDF(&buf)
		buf.WriteString("\nendobj\n")
	}

	xrefStart := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(w.objects)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}

	buf.WriteString("trailer\n")
	trailer := NewDict()
	trailer.Set("Size", Int(len(w.objects)+1))
	trailer.Set("Root", root)
	trailer.Set("Info", info)
	trailer.WritePDF(&buf)
	buf.WriteByte('\n')

	fmt.Fprintf(&buf, "startxref\n%d\n%%%%EOF\n", xrefStart)
	return buf.Bytes()
}
