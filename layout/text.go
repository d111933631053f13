package layout

import (
	"strings"

	"github.com/tsawler/rpdf/boxtree"
	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/pdfwrite"
	"github.com/tsawler/rpdf/style"
)

// word is one space-delimited token of a text box's runs, still carrying
// the ComputedStyle of the run it came from (so bold/italic spans measure
// and render at their own font and size).
type word struct {
	text        string
	style       style.Computed
	spaceBefore bool
}

func flattenWords(runs []boxtree.InlineRun) []word {
	var words []word
	first := true
	for _, r := range runs {
		fields := strings.Fields(r.Text)
		for i, f := range fields {
			sb := i > 0 || !first
			words = append(words, word{text: f, style: r.Style, spaceBefore: sb})
			first = false
		}
	}
	return words
}

// buildTextLines greedily word-wraps a text box's runs into lines no
// wider than width, per spec §4.4: accumulate words until the next one
// would overflow, then break at the most recent space; a single
// overflong word is placed alone and allowed to overflow.
func buildTextLines(b *boxtree.Box, x, width float64) ([]textLine, float64, error) {
	words := flattenWords(b.Runs)
	if len(words) == 0 {
		return nil, 0, nil
	}

	var raw [][]word
	var cur []word
	curWidth := 0.0

	for _, w := range words {
		wWidth := font.MeasureBytes(fontKeyFor(w.style), font.EncodeWinAnsi(w.text), w.style.FontSizePt)
		sep := 0.0
		if len(cur) > 0 && w.spaceBefore {
			sep = font.MeasureBytes(fontKeyFor(w.style), []byte(" "), w.style.FontSizePt)
		}
		if len(cur) > 0 && curWidth+sep+wWidth > width {
			raw = append(raw, cur)
			cur = nil
			curWidth = 0
			sep = 0
		}
		cur = append(cur, w)
		curWidth += sep + wWidth
	}
	if len(cur) > 0 {
		raw = append(raw, cur)
	}

	align := b.Style.TextAlign
	lines := make([]textLine, len(raw))
	total := 0.0
	for i, lw := range raw {
		lw := lw
		maxSize := 0.0
		lineWidth := 0.0
		for j, w := range lw {
			if w.style.FontSizePt > maxSize {
				maxSize = w.style.FontSizePt
			}
			ww := font.MeasureBytes(fontKeyFor(w.style), font.EncodeWinAnsi(w.text), w.style.FontSizePt)
			if j > 0 && w.spaceBefore {
				lineWidth += font.MeasureBytes(fontKeyFor(w.style), []byte(" "), w.style.FontSizePt)
			}
			lineWidth += ww
		}
		startX := x
		switch align {
		case style.AlignCenter:
			startX = x + (width-lineWidth)/2
		case style.AlignRight:
			startX = x + width - lineWidth
		}
		height := maxSize * 1.2
		lines[i] = textLine{
			height: height,
			draw:   drawLine(lw, startX, maxSize),
		}
		total += height
	}
	return lines, total, nil
}

// drawLine renders one already-wrapped line: each word at its own font
// and size, with a thin underline stroke for decorated words per §4.4; a
// word whose predecessor is also underlined has its stroke cover the space
// between them.
func drawLine(lw []word, startX, maxSize float64) func(float64) []pdfwrite.Primitive {
	return func(topY float64) []pdfwrite.Primitive {
		var prims []pdfwrite.Primitive
		baseline := topY - maxSize
		cx := startX
		for i, w := range lw {
			sp := 0.0
			if i > 0 && w.spaceBefore {
				sp = font.MeasureBytes(fontKeyFor(w.style), []byte(" "), w.style.FontSizePt)
				cx += sp
			}
			wBytes := font.EncodeWinAnsi(w.text)
			ww := font.MeasureBytes(fontKeyFor(w.style), wBytes, w.style.FontSizePt)
			prims = append(prims, pdfwrite.TextLine{
				Font: fontKeyFor(w.style), Size: w.style.FontSizePt,
				Color: w.style.Color, X: cx, Y: baseline, Text: w.text,
			})
			if w.style.TextDecoration == style.DecorationUnderline {
				ux, uw := cx, ww
				if sp > 0 && lw[i-1].style.TextDecoration == style.DecorationUnderline {
					// extend back over the space so an underlined run stays continuous
					ux, uw = cx-sp, ww+sp
				}
				prims = append(prims, pdfwrite.FillRect{
					X: ux, Y: baseline - 1.0, W: uw, H: 0.6, Color: w.style.Color,
				})
			}
			cx += ww
		}
		return prims
	}
}
