package layout

import (
	"strconv"

	"github.com/tsawler/rpdf/boxtree"
)

// listIndent is how far list markers push item content inward, per
// spec §4.4: "<ul> prefixes each item with '• ' offset 16 pt".
const listIndent = 16.0

// buildListItems renders each <li> as its own splittable text item, so a
// page break can land between list items, and also between the lines of a
// multi-line item. The marker ("• " or "N. ") is synthesized as a leading run sharing
// the first real run's style, falling back to the list's own style for an
// empty item.
func buildListItems(b *boxtree.Box, x, width float64) ([]flowItem, error) {
	var out []flowItem
	for i, li := range b.Children {
		runs := collectRuns(li)
		markerStyle := b.Style
		if len(runs) > 0 {
			markerStyle = runs[0].Style
		}
		marker := "• "
		if b.Ordered {
			marker = strconv.Itoa(i+1) + ". "
		}
		allRuns := append([]boxtree.InlineRun{{Style: markerStyle, Text: marker}}, runs...)
		textBox := &boxtree.Box{Kind: boxtree.KindText, Style: li.Style, Runs: allRuns}

		lines, h, err := buildTextLines(textBox, x+listIndent, width-listIndent)
		if err != nil {
			return nil, err
		}
		if len(lines) > 0 {
			out = append(out, flowItem{height: h, lines: lines})
		}
	}
	return out, nil
}
