package pdfwrite

import "bytes"

// Dict is an insertion-ordered PDF dictionary. Unlike a Go map, iterating
// it (via WritePDF, or Keys) always visits entries in the order they were
// first Set, which is what makes writer output reproducible across runs.
type Dict struct {
	keys   []string
	values map[string]Object
}

// NewDict returns an empty dictionary.
func NewDict() *Dict {
	return &Dict{values: make(map[string]Object)}
}

// Set adds or overwrites a key. A new key is appended to the end of the
// insertion order; overwriting an existing key keeps its original
// position.
func (d *Dict) Set(key string, value Object) *Dict {
	if _, exists := d.values[key]; !exists {
		d.keys = append(d.keys, key)
	}
	d.values[key] = value
	return d
}

// Get retrieves a value, returning (nil, false) if the key is absent.
func (d *Dict) Get(key string) (Object, bool) {
	v, ok := d.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	return d.keys
}

func (d *Dict) WritePDF(buf *bytes.Buffer) {
	buf.WriteString("<<")
	for _, k := range d.keys {
		buf.WriteByte('/')
		buf.WriteString(k)
		buf.WriteByte(' ')
		d.values[k].WritePDF(buf)
		buf.WriteByte(' ')
	}
	buf.WriteString(">>")
}

// Stream is a PDF stream object: a dictionary plus raw byte payload. The
// dictionary's /Length entry is filled in by WritePDF, so callers must not
// set /Length themselves.
type Stream struct {
	Dict *Dict
	Data []byte
}

func (s *Stream) WritePDF(buf *bytes.Buffer) {
	s.Dict.Set("Length", Int(len(s.Data)))
	s.Dict.WritePDF(buf)
	buf.WriteString("\nstream\n")
	buf.Write(s.Data)
	buf.WriteString("\nendstream")
}
