// Package rpdf renders a styled HTML fragment into a self-contained PDF
// 1.7 byte stream. It plays the role tabula's own top-level package plays
// for the opposite direction (pulling structured content back out of a
// PDF): Generate is the single entry point, and Config controls page
// geometry the way tabula's Options controls extraction scope.
package rpdf

import (
	"fmt"
	"sync"

	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/htmlparse"
	"github.com/tsawler/rpdf/layout"
	"github.com/tsawler/rpdf/pdfwrite"
)

// ErrorCode names one of the mutually exclusive failure classes spec §7
// defines. The zero value, CodeSuccess, is never carried by an *Error —
// Generate returns a nil error on success.
type ErrorCode int

const (
	CodeSuccess ErrorCode = iota
	CodeEmptyInput
	CodeParseError
	CodeImageError
	CodeLayoutError
	CodeInternalError
)

func (c ErrorCode) String() string {
	switch c {
	case CodeEmptyInput:
		return "EmptyInput"
	case CodeParseError:
		return "ParseError"
	case CodeImageError:
		return "ImageError"
	case CodeLayoutError:
		return "LayoutError"
	case CodeInternalError:
		return "InternalError"
	default:
		return "Success"
	}
}

// Error is the concrete failure type Generate returns. Code identifies
// the class; Error() gives a human-readable detail message.
type Error struct {
	code ErrorCode
	msg  string
}

func (e *Error) Error() string { return e.msg }

// Code reports which of spec §7's error classes this failure belongs to.
func (e *Error) Code() ErrorCode { return e.code }

func newError(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{code: code, msg: fmt.Sprintf(format, args...)}
}

// Orientation selects the page's long axis.
type Orientation int

const (
	Portrait Orientation = iota
	Landscape
)

const (
	a4WidthPt   = 595.0
	a4HeightPt  = 842.0
	defaultMarginPt = 40.0
)

// Config controls page geometry and document metadata, mirroring spec
// §6's external configuration surface exactly: every field has a
// documented zero value that resolves to the spec's default.
type Config struct {
	// Title becomes the PDF /Info /Title. Empty defaults to "rpdf output".
	Title string

	// Orientation picks A4 portrait or landscape when Page{Width,Height}Pt
	// are both zero.
	Orientation Orientation

	// PageWidthPt and PageHeightPt override the page size. Both must be
	// zero (use the orientation default) or both positive.
	PageWidthPt  float64
	PageHeightPt float64

	// PageMarginPt overrides the page margin on every side. Zero means 40pt.
	PageMarginPt float64
}

func (c Config) resolvePage() layout.Page {
	w, h := c.PageWidthPt, c.PageHeightPt
	if w == 0 && h == 0 {
		w, h = a4WidthPt, a4HeightPt
		if c.Orientation == Landscape {
			w, h = h, w
		}
	}
	margin := c.PageMarginPt
	if margin == 0 {
		margin = defaultMarginPt
	}
	return layout.Page{WidthPt: w, HeightPt: h, MarginPt: margin}
}

var (
	lastErrorMu sync.Mutex
	lastError   string
)

func setLastError(msg string) {
	lastErrorMu.Lock()
	lastError = msg
	lastErrorMu.Unlock()
}

// LastError returns the message from the most recent failing Generate
// call in this process, best-effort per spec §6 (the spec's C-ABI
// contract calls it thread-local; a Go process has no such storage
// class, so this is process-wide and last-writer-wins across concurrent
// callers — noted in SPEC_FULL.md §6).
func LastError() string {
	lastErrorMu.Lock()
	defer lastErrorMu.Unlock()
	return lastError
}

// FreeBuffer exists to satisfy spec §6's release entry point. Go's
// garbage collector already reclaims Generate's output slice once the
// caller drops its reference, so this is a documented no-op.
func FreeBuffer(_ []byte) {}

// Version reports the library's version string.
func Version() string { return "1.0.0" }

// Generate renders an HTML fragment into a complete PDF byte stream.
func Generate(html []byte, cfg Config) ([]byte, error) {
	out, err := generate(html, cfg)
	if err != nil {
		setLastError(err.Error())
		return nil, err
	}
	return out, nil
}

func generate(html []byte, cfg Config) ([]byte, error) {
	if len(html) == 0 {
		return nil, newError(CodeEmptyInput, "input is empty")
	}

	parsed, err := htmlparse.Parse(html)
	if err != nil {
		return nil, newError(CodeParseError, "%v", err)
	}

	boxes, err := boxtree.Build(parsed)
	if err != nil {
		return nil, newError(CodeImageError, "%v", err)
	}

	page := cfg.resolvePage()
	pages, err := layout.Build(boxes, page)
	if err != nil {
		return nil, newError(CodeLayoutError, "%v", err)
	}

	images := make(map[string]*pdfwrite.ImageResource, len(boxes.Images))
	for key, img := range boxes.Images {
		images[key] = &pdfwrite.ImageResource{
			IsJPEG: img.Format == boxtree.ImageFormatJPEG,
			Data:   img.Data,
			Width:  img.Width,
			Height: img.Height,
		}
	}

	pdf := pdfwrite.Build(pdfwrite.Document{
		Title:  cfg.Title,
		Pages:  pages,
		Images: images,
	})
	return pdf, nil
}
