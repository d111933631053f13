package htmlparse

import "testing"

func TestParseInvalidUTF8(t *testing.T) {
	_, err := Parse([]byte{0xff, 0xfe, 0xfd})
	if err == nil {
		t.Fatal("expected error for invalid UTF-8")
	}
}

func TestParseWhitelistedTags(t *testing.T) {
	doc, err := Parse([]byte(`<p>Hello <span>world</span></p><foo>dropped-ish</foo>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Roots) != 2 {
		t.Fatalf("got %d roots, want 2", len(doc.Roots))
	}
	p := doc.Roots[0]
	if p.Kind != KindElement || p.Tag != "p" {
		t.Fatalf("root[0] = %+v, want <p> element", p)
	}
	foo := doc.Roots[1]
	if foo.Kind != KindUnknown || foo.Tag != "foo" {
		t.Fatalf("root[1] = %+v, want unknown <foo>", foo)
	}
}

func TestWhitespaceCollapsing(t *testing.T) {
	doc, err := Parse([]byte("<p>a  \n\t b</p>"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	text := doc.Roots[0].Children[0]
	if text.Kind != KindText || text.Text != "a b" {
		t.Fatalf("got %+v, want collapsed text %q", text, "a b")
	}
}

func TestUnclosedTagsRecover(t *testing.T) {
	doc, err := Parse([]byte(`<div><p>one<p>two</div>`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(doc.Roots) != 1 || doc.Roots[0].Tag != "div" {
		t.Fatalf("got %+v, want single <div> root", doc.Roots)
	}
}
