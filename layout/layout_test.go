package layout

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/htmlparse"
	"github.com/tsawler/rpdf/pdfwrite"
	"github.com/tsawler/rpdf/style"
)

var portraitA4 = Page{WidthPt: 595, HeightPt: 842, MarginPt: 40}

func buildDoc(t *testing.T, html string) *boxtree.Document {
	t.Helper()
	parsed, err := htmlparse.Parse([]byte(html))
	if err != nil {
		t.Fatalf("htmlparse.Parse: %v", err)
	}
	doc, err := boxtree.Build(parsed)
	if err != nil {
		t.Fatalf("boxtree.Build: %v", err)
	}
	return doc
}

func pageText(p pdfwrite.Page) string {
	var b strings.Builder
	for _, prim := range p.Primitives {
		if t, ok := prim.(pdfwrite.TextLine); ok {
			b.WriteString(t.Text)
			b.WriteString(" ")
		}
	}
	return b.String()
}

func TestSingleParagraphIsOnePage(t *testing.T) {
	doc := buildDoc(t, "<p>Hello</p>")
	pages, err := Build(doc, portraitA4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	if !strings.Contains(pageText(pages[0]), "Hello") {
		t.Errorf("page text %q does not contain Hello", pageText(pages[0]))
	}
}

func TestForcedPageBreakProducesTwoPages(t *testing.T) {
	doc := buildDoc(t, `<div>A</div><div class="page"></div><div>B</div>`)
	pages, err := Build(doc, portraitA4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if !strings.Contains(pageText(pages[0]), "A") {
		t.Errorf("page 1 text %q does not contain A", pageText(pages[0]))
	}
	if !strings.Contains(pageText(pages[1]), "B") {
		t.Errorf("page 2 text %q does not contain B", pageText(pages[1]))
	}
}

func TestTableSpansFullWidthInEqualColumns(t *testing.T) {
	doc := buildDoc(t, `<table class="w-full"><tr><th class="p-2">A</th><th class="p-2">B</th></tr><tr><td class="p-2">1</td><td class="p-2">2</td></tr></table>`)
	pages, err := Build(doc, portraitA4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("got %d pages, want 1", len(pages))
	}
	var xs []float64
	cellX := map[string]float64{}
	for _, prim := range pages[0].Primitives {
		if tl, ok := prim.(pdfwrite.TextLine); ok {
			xs = append(xs, tl.X)
			cellX[tl.Text] = tl.X
		}
	}
	if len(xs) < 2 {
		t.Fatalf("expected at least 2 text primitives, got %d", len(xs))
	}
	// "1" and "2" are left-aligned with identical padding, so their x
	// offsets differ by exactly the first column's width: half of 515pt.
	if d := cellX["2"] - cellX["1"]; math.Abs(d-257.5) > 1e-6 {
		t.Errorf("column 1 width = %v, want 257.5 (two equal columns over 515pt)", d)
	}
}

func TestOversizedNonSplittableBoxIsLayoutError(t *testing.T) {
	doc := &boxtree.Document{
		Roots: []*boxtree.Box{{
			Kind:       boxtree.KindImage,
			Style:      style.Initial(),
			ImageKey:   "k",
			IntrinsicW: 100,
			IntrinsicH: 2000,
		}},
	}
	_, err := Build(doc, portraitA4)
	if err == nil {
		t.Fatal("expected LayoutError for an image taller than the page")
	}
	if _, ok := err.(*Error); !ok {
		t.Errorf("got error of type %T, want *layout.Error", err)
	}
}

// taggedLine builds a textLine that just renders a tag, so pageText-style
// assertions can identify which page it landed on.
func taggedLine(tag string, height float64) textLine {
	return textLine{height: height, draw: func(topY float64) []pdfwrite.Primitive {
		return []pdfwrite.Primitive{pdfwrite.TextLine{Text: tag, X: 0, Y: topY}}
	}}
}

func TestBreakInsideAvoidMovesItemWholeRatherThanSplitting(t *testing.T) {
	page := Page{WidthPt: 595, HeightPt: 842, MarginPt: 40}
	contentHeight := page.ContentHeight()

	// Filler leaves only 30pt of remaining room on page 1.
	filler := flowItem{height: contentHeight - 30, lines: []textLine{taggedLine("filler", contentHeight-30)}}
	// Two 40pt lines: doesn't fit the 30pt remainder, but fits a fresh page.
	avoided := flowItem{
		height:     80,
		avoidSplit: true,
		lines:      []textLine{taggedLine("avoided-1", 40), taggedLine("avoided-2", 40)},
	}

	pages, err := paginate([]flowItem{filler, avoided}, page)
	if err != nil {
		t.Fatalf("paginate: %v", err)
	}
	if len(pages) != 2 {
		t.Fatalf("got %d pages, want 2", len(pages))
	}
	if strings.Contains(pageText(pages[0]), "avoided") {
		t.Errorf("avoid-split item was split onto page 1 instead of moving whole to page 2")
	}
	p2 := pageText(pages[1])
	if !strings.Contains(p2, "avoided-1") || !strings.Contains(p2, "avoided-2") {
		t.Errorf("page 2 text %q does not contain both lines of the avoided item", p2)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	doc := buildDoc(t, `<div class="p-2 bg-gray-100"><h1>Title</h1><p>Some body text that is long enough to wrap across more than one line in a 515pt content column.</p></div>`)
	a, err := Build(doc, portraitA4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	doc2 := buildDoc(t, `<div class="p-2 bg-gray-100"><h1>Title</h1><p>Some body text that is long enough to wrap across more than one line in a 515pt content column.</p></div>`)
	b, err := Build(doc2, portraitA4)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("Build() is not deterministic across identical inputs")
	}
}
