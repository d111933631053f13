package rpdf

import (
	"bytes"
	"strings"
	"testing"
)

func TestEmptyInputFails(t *testing.T) {
	_, err := Generate(nil, Config{})
	if err == nil {
		t.Fatal("expected an error for empty input")
	}
	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got error of type %T, want *rpdf.Error", err)
	}
	if rerr.Code() != CodeEmptyInput {
		t.Errorf("Code() = %v, want CodeEmptyInput", rerr.Code())
	}
}

func TestSingleParagraphProducesOnePageWithSearchableText(t *testing.T) {
	pdf, err := Generate([]byte("<p>Hello</p>"), Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertWellFormedPDF(t, pdf)
	if !bytes.Contains(pdf, []byte("(Hello) Tj")) {
		t.Error("output does not contain a Tj operator showing \"Hello\"")
	}
	if got := bytes.Count(pdf, []byte("/Contents")); got != 1 {
		t.Errorf("got %d /Contents references, want 1", got)
	}
}

func TestForcedBreakProducesTwoPages(t *testing.T) {
	html := `<div>A</div><div class="page"></div><div>B</div>`
	pdf, err := Generate([]byte(html), Config{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	assertWellFormedPDF(t, pdf)
	if got := bytes.Count(pdf, []byte("/Contents")); got != 2 {
		t.Errorf("got %d /Contents references, want 2 (one per page)", got)
	}
}

func TestImageRejectionReturnsImageError(t *testing.T) {
	_, err := Generate([]byte(`<img src="http://example.com/x.png">`), Config{})
	if err == nil {
		t.Fatal("expected an error for a non-data-URI image src")
	}
	rerr, ok := err.(*Error)
	if !ok {
		t.Fatalf("got error of type %T, want *rpdf.Error", err)
	}
	if rerr.Code() != CodeImageError {
		t.Errorf("Code() = %v, want CodeImageError", rerr.Code())
	}
}

func TestLandscapeOverridesMediaBox(t *testing.T) {
	pdf, err := Generate([]byte("<p>Hello</p>"), Config{Orientation: Landscape})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Contains(pdf, []byte("/MediaBox [0 0 842 595]")) {
		t.Errorf("output missing landscape MediaBox: %s", excerptAroundMediaBox(pdf))
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	html := []byte(`<div class="p-2 bg-gray-100"><h1>Report</h1><p class="text-lg">Body text.</p></div>`)
	a, err := Generate(html, Config{Title: "Report"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, err := Generate(html, Config{Title: "Report"})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Generate() is not deterministic across identical inputs")
	}
}

func TestLastErrorRecordsMostRecentFailure(t *testing.T) {
	_, err := Generate([]byte(`<img src="not-a-data-uri">`), Config{})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(LastError(), "data:image") {
		t.Errorf("LastError() = %q, want it to mention the data-URI requirement", LastError())
	}
}

func assertWellFormedPDF(t *testing.T, pdf []byte) {
	t.Helper()
	if !bytes.HasPrefix(pdf, []byte("%PDF-1.7")) {
		t.Errorf("output does not start with %%PDF-1.7")
	}
	if !bytes.HasSuffix(pdf, []byte("%%EOF\n")) {
		t.Errorf("output does not end with %%%%EOF")
	}
}

func excerptAroundMediaBox(pdf []byte) string {
	i := bytes.Index(pdf, []byte("/MediaBox"))
	if i < 0 {
		return "(no /MediaBox found)"
	}
	end := i + 40
	if end > len(pdf) {
		end = len(pdf)
	}
	return string(pdf[i:end])
}
