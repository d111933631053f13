package boxtree

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/png"
	"testing"

	"github.com/tsawler/rpdf/htmlparse"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

func build(t *testing.T, src string) *Document {
	t.Helper()
	parsed, err := htmlparse.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	doc, err := Build(parsed)
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return doc
}

func TestBuildParagraph(t *testing.T) {
	doc := build(t, "<p>Hello</p>")
	if len(doc.Roots) != 1 || doc.Roots[0].Kind != KindBlock {
		t.Fatalf("got %+v, want one block root", doc.Roots)
	}
	text := doc.Roots[0].Children[0]
	if text.Kind != KindText || text.Runs[0].Text != "Hello" {
		t.Fatalf("got %+v, want text run \"Hello\"", text)
	}
}

func TestBuildDropsDisplayNone(t *testing.T) {
	doc := build(t, `<div style="display:none">hidden</div><p>visible</p>`)
	if len(doc.Roots) != 1 {
		t.Fatalf("got %d roots, want 1 (display:none dropped)", len(doc.Roots))
	}
}

func TestBuildTable(t *testing.T) {
	doc := build(t, `<table><tr><th>A</th><th>B</th></tr><tr><td>1</td><td>2</td></tr></table>`)
	table := doc.Roots[0]
	if table.Kind != KindTable {
		t.Fatalf("got kind %v, want KindTable", table.Kind)
	}
	if len(table.Rows) != 2 || len(table.Rows[0]) != 2 {
		t.Fatalf("got rows %+v, want 2x2", table.Rows)
	}
}

func TestBuildImageRejectsNonDataURI(t *testing.T) {
	_, err := buildErr(t, `<img src="http://example.com/x.png">`)
	if err == nil {
		t.Fatal("expected ImageError for non-data-URI src")
	}
}

func TestBuildImageAcceptsPNGDataURI(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString(encodePNG(t, 10, 5))
	doc := build(t, `<img src="data:image/png;base64,`+b64+`">`)
	box := doc.Roots[0]
	if box.Kind != KindImage {
		t.Fatalf("got kind %v, want KindImage", box.Kind)
	}
	if box.IntrinsicW != 10 || box.IntrinsicH != 5 {
		t.Errorf("got %vx%v, want 10x5", box.IntrinsicW, box.IntrinsicH)
	}
	if len(doc.Images) != 1 {
		t.Errorf("got %d images in palette, want 1", len(doc.Images))
	}
}

// TestBuildImagePNGIsDecodedToRawSamples guards against re-embedding a
// PNG's own file bytes under /FlateDecode: a real PNG's IDAT stream is
// chunk-framed and per-scanline filtered, not a plain zlib stream of raw
// pixels, so the stored Data must no longer look like a PNG file.
func TestBuildImagePNGIsDecodedToRawSamples(t *testing.T) {
	raw := encodePNG(t, 4, 4)
	b64 := base64.StdEncoding.EncodeToString(raw)
	doc := build(t, `<img src="data:image/png;base64,`+b64+`">`)
	if len(doc.Images) != 1 {
		t.Fatalf("got %d images, want 1", len(doc.Images))
	}
	for _, img := range doc.Images {
		if bytes.HasPrefix(img.Data, []byte{0x89, 0x50, 0x4E, 0x47}) {
			t.Error("stored image Data is still a raw PNG file, want decoded/re-deflated samples")
		}
		if bytes.Equal(img.Data, raw) {
			t.Error("stored image Data equals the original PNG file bytes, want decoded raw samples")
		}
	}
}

func TestBuildImageRejectsCorruptPNGPixelData(t *testing.T) {
	corrupt := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A,
		0, 0, 0, 13, 'I', 'H', 'D', 'R', 0, 0, 0, 10, 0, 0, 0, 5, 8, 2, 0, 0, 0, 0, 0, 0, 0}
	b64 := base64.StdEncoding.EncodeToString(corrupt)
	_, err := buildErr(t, `<img src="data:image/png;base64,`+b64+`">`)
	if err == nil {
		t.Fatal("expected ImageError for a PNG header with no valid pixel data")
	}
}

func buildErr(t *testing.T, src string) (*Document, error) {
	t.Helper()
	parsed, err := htmlparse.Parse([]byte(src))
	if err != nil {
		return nil, err
	}
	return Build(parsed)
}
