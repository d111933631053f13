package style

// applyTagDefaults overlays the fixed per-tag defaults spec §4.2 lists:
// h1-h3 are bold at fixed sizes with a bottom margin, p carries its own
// size and bottom margin, th is bold and centered.
func applyTagDefaults(c *Computed, tag string) {
	switch tag {
	case "h1":
		c.FontWeight = WeightBold
		c.FontSizePt = 24
		c.Margin.Bottom = 8
	case "h2":
		c.FontWeight = WeightBold
		c.FontSizePt = 20
		c.Margin.Bottom = 8
	case "h3":
		c.FontWeight = WeightBold
		c.FontSizePt = 16
		c.Margin.Bottom = 8
	case "p":
		c.FontSizePt = 14
		c.Margin.Bottom = 4
	case "th":
		c.FontWeight = WeightBold
		c.TextAlign = AlignCenter
		c.Display = DisplayTableCell
	case "td":
		c.Display = DisplayTableCell
	case "tr":
		c.Display = DisplayTableRow
	case "table":
		c.Display = DisplayTable
	case "ul", "ol":
		c.Display = DisplayBlock
	case "li":
		c.Display = DisplayListItem
	case "span":
		c.Display = DisplayInline
	case "img":
		c.Display = DisplayInline
	}
}
