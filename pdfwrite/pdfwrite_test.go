package pdfwrite

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/model"
)

func TestDictPreservesInsertionOrder(t *testing.T) {
	d := NewDict().Set("Zulu", Int(1)).Set("Alpha", Int(2))
	var buf bytes.Buffer
	d.WritePDF(&buf)
	got := buf.String()
	if !strings.Contains(got, "/Zulu 1 /Alpha 2") {
		t.Errorf("Dict.WritePDF() = %q, want Zulu before Alpha", got)
	}
}

func TestBuildProducesValidHeaderAndTrailer(t *testing.T) {
	doc := Document{
		Pages: []Page{{
			WidthPt: 595, HeightPt: 842,
			Primitives: []Primitive{
				TextLine{Font: font.Helvetica, Size: 14, Color: model.Black, X: 40, Y: 780, Text: "Hello"},
			},
		}},
	}
	out := Build(doc)
	if !bytes.HasPrefix(out, []byte("%PDF-1.7")) {
		t.Errorf("output does not start with %%PDF-1.7: %q", out[:20])
	}
	if !bytes.HasSuffix(out, []byte("%%EOF\n")) {
		t.Errorf("output does not end with %%%%EOF: %q", out[len(out)-20:])
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	makeDoc := func() Document {
		return Document{
			Pages: []Page{{
				WidthPt: 595, HeightPt: 842,
				Primitives: []Primitive{
					TextLine{Font: font.Helvetica, Size: 14, Color: model.Black, X: 40, Y: 780, Text: "Hello"},
					TextLine{Font: font.HelveticaBold, Size: 14, Color: model.Black, X: 40, Y: 760, Text: "World"},
				},
			}},
		}
	}
	a := Build(makeDoc())
	b := Build(makeDoc())
	if !bytes.Equal(a, b) {
		t.Error("Build() is not deterministic across identical inputs")
	}
}

func TestContentBuilderTextOperators(t *testing.T) {
	cb := NewContentBuilder()
	cb.BeginText()
	cb.SetFont("F1", 12)
	cb.MoveText(10, 20)
	cb.ShowString("Hi")
	cb.EndText()
	got := string(cb.Bytes())
	for _, op := range []string{"BT\n", "/F1 12 Tf\n", "10 20 Td\n", "(Hi) Tj\n", "ET\n"} {
		if !strings.Contains(got, op) {
			t.Errorf("content stream %q missing operator %q", got, op)
		}
	}
}
