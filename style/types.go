// Package style resolves each element's ComputedStyle by merging tag
// defaults, class tokens, inline declarations, and inherited values, in the
// precedence order inline > class > tag default > inherited > initial.
//
// The merge is implemented as sequential overwrite: each stage only touches
// the properties it actually specifies, applied in reverse-precedence order,
// so the last stage to touch a property wins. This mirrors the value-copy
// inheritance tabula's own layout stage uses (no shared style objects, no
// pointer to the parent needed once resolved).
package style

import "github.com/tsawler/rpdf/model"

// FontWeight is one of the two supported weights.
type FontWeight int

const (
	WeightNormal FontWeight = iota
	WeightBold
)

// FontStyle is one of the two supported slants.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleItalic
)

// TextDecoration is one of the two supported decorations.
type TextDecoration int

const (
	DecorationNone TextDecoration = iota
	DecorationUnderline
)

// TextAlign is horizontal alignment within a line.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Display controls how boxtree.Build turns an element into a box.
type Display int

const (
	DisplayBlock Display = iota
	DisplayInline
	DisplayFlex
	DisplayListItem
	DisplayTable
	DisplayTableRow
	DisplayTableCell
	DisplayNone
)

// FlexDirection is the main axis of a flex container.
type FlexDirection int

const (
	FlexRow FlexDirection = iota
	FlexColumn
)

// Justify is the main-axis distribution of a flex container.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyBetween
	JustifyAround
	JustifyEvenly
)

// AlignItems is the cross-axis placement of flex items.
type AlignItems int

const (
	AlignItemsStretch AlignItems = iota
	AlignItemsStart
	AlignItemsCenter
	AlignItemsEnd
)

// Break is a page-break directive: leave alone, or force a page boundary.
type Break int

const (
	BreakAuto Break = iota
	BreakPage
)

// LengthKind distinguishes an unset (auto), absolute (pt), or relative
// (percent of the containing block) length.
type LengthKind int

const (
	LengthAuto LengthKind = iota
	LengthPt
	LengthPercent
)

// Length is a CSS-style dimension: either auto, a fixed point value, or a
// percentage resolved later against the containing block.
type Length struct {
	Kind  LengthKind
	Value float64 // pt, or percentage points (0-100) when Kind == LengthPercent
}

// Auto reports whether the length is unset.
func (l Length) Auto() bool { return l.Kind == LengthAuto }

// Sides holds the four edges of a box (margin, padding, border) in pt.
type Sides struct {
	Top, Right, Bottom, Left float64
}

// Computed is the fully resolved, inheritance-applied style of one element.
type Computed struct {
	FontFamily     string // always "Helvetica" per spec; kept for clarity, not cascaded
	FontSizePt     float64
	FontWeight     FontWeight
	FontStyle      FontStyle
	TextDecoration TextDecoration
	TextAlign      TextAlign
	Color          model.Color
	HasBackground  bool
	BackgroundColor model.Color

	Width  Length
	Height Length

	Padding Sides
	Margin  Sides

	BorderWidthPt float64
	GapPt         float64

	Display Display

	FlexDirection FlexDirection
	FlexGrow      float64
	FlexWrap      bool
	AlignItems    AlignItems
	JustifyContent Justify

	BreakAfter       Break
	BreakBefore      Break
	BreakInsideAvoid bool
}

// Initial returns the initial (top-of-cascade) style values.
func Initial() Computed {
	return Computed{
		FontFamily: "Helvetica",
		FontSizePt: 12,
		FontWeight: WeightNormal,
		FontStyle:  StyleNormal,
		TextDecoration: DecorationNone,
		TextAlign:      AlignLeft,
		Color:          model.Black,
		Width:          Length{Kind: LengthAuto},
		Height:         Length{Kind: LengthAuto},
		Display:        DisplayBlock,
		FlexDirection:  FlexRow,
		FlexGrow:       0,
		AlignItems:     AlignItemsStretch,
		JustifyContent: JustifyStart,
	}
}

// inheritSubset copies the properties spec §3 marks inheritable: color,
// font-size, font-weight, font-style, text-decoration, text-align.
func inheritSubset(dst *Computed, parent Computed) {
	dst.Color = parent.Color
	dst.FontSizePt = parent.FontSizePt
	dst.FontWeight = parent.FontWeight
	dst.FontStyle = parent.FontStyle
	dst.TextDecoration = parent.TextDecoration
	dst.TextAlign = parent.TextAlign
}
