package style

import (
	"strconv"
	"strings"
)

// spacingSides maps a class-token prefix to the Sides fields it touches.
// "p"/"m" hit all four edges, the axis forms hit two, the single-side forms
// hit one — the full Tailwind-style shorthand set spec §4.2's grammar
// implies and the templating guide's original spelled out explicitly.
var spacingSides = map[string][]string{
	"p": {"top", "right", "bottom", "left"}, "m": {"top", "right", "bottom", "left"},
	"px": {"right", "left"}, "py": {"top", "bottom"},
	"mx": {"right", "left"}, "my": {"top", "bottom"},
	"pt": {"top"}, "pr": {"right"}, "pb": {"bottom"}, "pl": {"left"},
	"mt": {"top"}, "mr": {"right"}, "mb": {"bottom"}, "ml": {"left"},
}

var fontSizeScale = map[string]float64{
	"text-xs": 12, "text-sm": 14, "text-base": 16, "text-lg": 18,
	"text-xl": 20, "text-2xl": 24, "text-3xl": 30,
}

// applyClassAttr parses the class="" attribute value and overlays every
// recognized token onto c. Order of appearance does not matter (spec
// §4.2); unrecognized tokens are silently ignored.
func applyClassAttr(c *Computed, class string) {
	for _, tok := range strings.Fields(class) {
		applyClassToken(c, tok)
	}
}

func applyClassToken(c *Computed, tok string) {
	switch {
	case tok == "font-bold":
		c.FontWeight = WeightBold
	case tok == "font-normal":
		c.FontWeight = WeightNormal
	case tok == "italic":
		c.FontStyle = StyleItalic
	case tok == "underline":
		c.TextDecoration = DecorationUnderline
	case tok == "text-left":
		c.TextAlign = AlignLeft
	case tok == "text-center":
		c.TextAlign = AlignCenter
	case tok == "text-right":
		c.TextAlign = AlignRight
	case fontSizeScale[tok] != 0:
		c.FontSizePt = fontSizeScale[tok]

	case strings.HasPrefix(tok, "text-"):
		if col, ok := namedColors[strings.TrimPrefix(tok, "text-")]; ok {
			c.Color = col
		}
	case strings.HasPrefix(tok, "bg-"):
		if col, ok := namedColors[strings.TrimPrefix(tok, "bg-")]; ok {
			c.HasBackground = true
			c.BackgroundColor = col
		}

	case tok == "w-full":
		c.Width = Length{Kind: LengthPercent, Value: 100}
	case tok == "w-1/2":
		c.Width = Length{Kind: LengthPercent, Value: 50}
	case tok == "w-1/3":
		c.Width = Length{Kind: LengthPercent, Value: 100.0 / 3}
	case tok == "w-2/3":
		c.Width = Length{Kind: LengthPercent, Value: 200.0 / 3}
	case tok == "w-1/4":
		c.Width = Length{Kind: LengthPercent, Value: 25}
	case tok == "w-3/4":
		c.Width = Length{Kind: LengthPercent, Value: 75}
	case strings.HasPrefix(tok, "w-"):
		if n, ok := parseScaleSuffix(tok, "w-"); ok {
			c.Width = Length{Kind: LengthPt, Value: n * 4}
		}

	case tok == "flex":
		c.Display = DisplayFlex
		c.FlexDirection = FlexRow
	case tok == "flex-col":
		c.Display = DisplayFlex
		c.FlexDirection = FlexColumn
	case tok == "flex-1":
		c.FlexGrow = 1
	case tok == "flex-wrap":
		c.FlexWrap = true
	case tok == "items-center":
		c.AlignItems = AlignItemsCenter
	case tok == "items-start":
		c.AlignItems = AlignItemsStart
	case tok == "items-end":
		c.AlignItems = AlignItemsEnd
	case tok == "justify-center":
		c.JustifyContent = JustifyCenter
	case tok == "justify-between":
		c.JustifyContent = JustifyBetween
	case tok == "justify-around":
		c.JustifyContent = JustifyAround
	case tok == "justify-evenly":
		c.JustifyContent = JustifyEvenly
	case strings.HasPrefix(tok, "gap-"):
		if n, ok := parseScaleSuffix(tok, "gap-"); ok {
			c.GapPt = n * 4
		}

	case tok == "page" || tok == "page-break" || tok == "break-after":
		c.BreakAfter = BreakPage
	case tok == "break-before":
		c.BreakBefore = BreakPage
	case tok == "break-inside-avoid":
		c.BreakInsideAvoid = true

	default:
		if sides, ok := spacingSides[spacingPrefix(tok)]; ok {
			if n, ok := parseScaleSuffix(tok, spacingPrefix(tok)+"-"); ok {
				applySpacing(c, tok[0], sides, n*4)
			}
		}
	}
}

// spacingPrefix extracts the letters before the first '-', e.g. "pt" from
// "pt-2", so the caller can look it up in spacingSides.
func spacingPrefix(tok string) string {
	i := strings.IndexByte(tok, '-')
	if i < 0 {
		return ""
	}
	return tok[:i]
}

func parseScaleSuffix(tok, prefix string) (float64, bool) {
	if !strings.HasPrefix(tok, prefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(tok, prefix))
	if err != nil {
		return 0, false
	}
	return float64(n), true
}

func applySpacing(c *Computed, category byte, sides []string, pt float64) {
	target := &c.Padding
	if category == 'm' {
		target = &c.Margin
	}
	for _, side := range sides {
		switch side {
		case "top":
			target.Top = pt
		case "right":
			target.Right = pt
		case "bottom":
			target.Bottom = pt
		case "left":
			target.Left = pt
		}
	}
}
