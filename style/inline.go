package style

import (
	"strconv"
	"strings"

	"github.com/tsawler/rpdf/model"
)

// applyStyleAttr parses a forgiving CSS declaration list from style="".
// Declarations are split on ';', each split on the first ':', trimmed;
// unknown properties or malformed values are ignored. Later declarations
// for the same property win, matching spec §4.2.
func applyStyleAttr(c *Computed, style string) {
	for _, decl := range strings.Split(style, ";") {
		i := strings.IndexByte(decl, ':')
		if i < 0 {
			continue
		}
		prop := strings.ToLower(strings.TrimSpace(decl[:i]))
		val := strings.TrimSpace(decl[i+1:])
		if val == "" {
			continue
		}
		applyDeclaration(c, prop, val)
	}
}

func applyDeclaration(c *Computed, prop, val string) {
	switch prop {
	case "color":
		if col, ok := parseColor(val); ok {
			c.Color = col
		}
	case "background-color":
		if col, ok := parseColor(val); ok {
			c.HasBackground = true
			c.BackgroundColor = col
		}
	case "font-size":
		if n, ok := parseLengthPt(val); ok {
			c.FontSizePt = n
		}
	case "font-weight":
		switch val {
		case "bold", "700":
			c.FontWeight = WeightBold
		case "normal", "400":
			c.FontWeight = WeightNormal
		}
	case "font-style":
		switch val {
		case "italic":
			c.FontStyle = StyleItalic
		case "normal":
			c.FontStyle = StyleNormal
		}
	case "text-decoration":
		switch val {
		case "underline":
			c.TextDecoration = DecorationUnderline
		case "none":
			c.TextDecoration = DecorationNone
		}
	case "text-align":
		switch val {
		case "left":
			c.TextAlign = AlignLeft
		case "center":
			c.TextAlign = AlignCenter
		case "right":
			c.TextAlign = AlignRight
		}
	case "width":
		if l, ok := parseLength(val); ok {
			c.Width = l
		}
	case "height":
		if l, ok := parseLength(val); ok {
			c.Height = l
		}
	case "margin", "margin-top", "margin-right", "margin-bottom", "margin-left":
		if n, ok := parseLengthPt(val); ok {
			applySideDeclaration(&c.Margin, prop, "margin", n)
		}
	case "padding", "padding-top", "padding-right", "padding-bottom", "padding-left":
		if n, ok := parseLengthPt(val); ok {
			applySideDeclaration(&c.Padding, prop, "padding", n)
		}
	case "border-width":
		if n, ok := parseLengthPt(val); ok {
			c.BorderWidthPt = n
		}
	case "gap":
		if n, ok := parseLengthPt(val); ok {
			c.GapPt = n
		}
	case "break-after", "page-break-after":
		if val == "page" || val == "always" {
			c.BreakAfter = BreakPage
		}
	case "break-before", "page-break-before":
		if val == "page" || val == "always" {
			c.BreakBefore = BreakPage
		}
	case "page-break-inside":
		if val == "avoid" {
			c.BreakInsideAvoid = true
		}
	case "display":
		if val == "none" {
			c.Display = DisplayNone
		}
	}
}

func applySideDeclaration(sides *Sides, prop, base string, n float64) {
	if prop == base {
		sides.Top, sides.Right, sides.Bottom, sides.Left = n, n, n, n
		return
	}
	switch strings.TrimPrefix(prop, base+"-") {
	case "top":
		sides.Top = n
	case "right":
		sides.Right = n
	case "bottom":
		sides.Bottom = n
	case "left":
		sides.Left = n
	}
}

// parseLengthPt accepts {n}px|pt|rem, matching table §6; rem is fixed at
// 14 pt per the guide's root font size. It never returns a percent — used
// only where the grammar column has no percent option.
func parseLengthPt(val string) (float64, bool) {
	switch {
	case strings.HasSuffix(val, "rem"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "rem"), 64)
		if err != nil {
			return 0, false
		}
		return n * 14, true
	case strings.HasSuffix(val, "px"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "px"), 64)
		if err != nil {
			return 0, false
		}
		return n, true // 1px = 1pt
	case strings.HasSuffix(val, "pt"):
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "pt"), 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// parseLength additionally accepts a trailing '%' for width/height.
func parseLength(val string) (Length, bool) {
	if strings.HasSuffix(val, "%") {
		n, err := strconv.ParseFloat(strings.TrimSuffix(val, "%"), 64)
		if err != nil {
			return Length{}, false
		}
		return Length{Kind: LengthPercent, Value: n}, true
	}
	if n, ok := parseLengthPt(val); ok {
		return Length{Kind: LengthPt, Value: n}, true
	}
	return Length{}, false
}

// parseColor accepts #rgb, #rrggbb, and rgb(r,g,b).
func parseColor(val string) (model.Color, bool) {
	val = strings.TrimSpace(val)
	switch {
	case strings.HasPrefix(val, "#"):
		return parseHexColor(val[1:])
	case strings.HasPrefix(val, "rgb(") && strings.HasSuffix(val, ")"):
		return parseRGBFunc(val[4 : len(val)-1])
	}
	return model.Color{}, false
}
