package boxtree

import (
	"github.com/tsawler/rpdf/htmlparse"
	"github.com/tsawler/rpdf/style"
)

type builder struct {
	doc *Document
}

// Build walks a parsed HTML tree into a Document: a box tree plus the
// deduplicated image palette every Image box refers into.
func Build(parsed *htmlparse.Document) (*Document, error) {
	b := &builder{doc: &Document{Images: map[string]*Image{}}}
	root := style.RootParent()
	for _, n := range parsed.Roots {
		box, err := b.buildTopLevel(n, root)
		if err != nil {
			return nil, err
		}
		if box != nil {
			b.doc.Roots = append(b.doc.Roots, box)
		}
	}
	return b.doc, nil
}

// buildTopLevel builds one root-level node. Stray text at the document
// root (no enclosing block) is wrapped in an anonymous block so the
// layout engine always sees block-level siblings at the top.
func (b *builder) buildTopLevel(n *htmlparse.Node, parent style.Computed) (*Box, error) {
	if n.Kind == htmlparse.KindText {
		return &Box{
			Kind:  KindBlock,
			Style: parent,
			Children: []*Box{{
				Kind:  KindText,
				Style: parent,
				Runs:  []InlineRun{{Style: parent, Text: n.Text}},
			}},
		}, nil
	}
	return b.buildElement(n, parent)
}

// buildElement builds one element node into a Box, or returns (nil, nil)
// if the element (or its computed style) says to drop it.
func (b *builder) buildElement(n *htmlparse.Node, parent style.Computed) (*Box, error) {
	if n.Kind == htmlparse.KindUnknown {
		return nil, nil
	}

	computed := style.Resolve(n.Tag, n.Attrs, parent)
	if computed.Display == style.DisplayNone {
		return nil, nil
	}

	switch n.Tag {
	case "img":
		return b.buildImage(n, computed)
	case "table":
		return b.buildTable(n, computed)
	case "ul", "ol":
		return b.buildList(n, computed, n.Tag == "ol")
	default:
		if computed.Display == style.DisplayFlex {
			return b.buildFlex(n, computed)
		}
		return b.buildFlow(n, computed)
	}
}

// buildFlow builds a block's children, coalescing runs of inline content
// (text and <span>) into Text boxes and keeping block-level children
// (h1-h3, p, div, ul, ol, table, img) as separate sibling boxes.
func (b *builder) buildFlow(n *htmlparse.Node, computed style.Computed) (*Box, error) {
	box := &Box{Kind: KindBlock, Style: computed}
	var runs []InlineRun

	flush := func() {
		if len(runs) == 0 {
			return
		}
		box.Children = append(box.Children, &Box{Kind: KindText, Style: computed, Runs: runs})
		runs = nil
	}

	for _, c := range n.Children {
		switch {
		case c.Kind == htmlparse.KindText:
			runs = append(runs, InlineRun{Style: computed, Text: c.Text})
		case c.Kind == htmlparse.KindElement && c.Tag == "span":
			collectInline(c, computed, &runs)
		case c.Kind == htmlparse.KindUnknown:
			// dropped silently
		default:
			flush()
			child, err := b.buildElement(c, computed)
			if err != nil {
				return nil, err
			}
			if child != nil {
				box.Children = append(box.Children, child)
			}
		}
	}
	flush()
	return box, nil
}

// collectInline flattens a <span> (and any nested spans/text) into runs,
// each carrying the style resolved at its own nesting depth.
func collectInline(n *htmlparse.Node, parent style.Computed, runs *[]InlineRun) {
	computed := style.Resolve(n.Tag, n.Attrs, parent)
	if computed.Display == style.DisplayNone {
		return
	}
	for _, c := range n.Children {
		switch {
		case c.Kind == htmlparse.KindText:
			*runs = append(*runs, InlineRun{Style: computed, Text: c.Text})
		case c.Kind == htmlparse.KindElement && c.Tag == "span":
			collectInline(c, computed, runs)
		}
	}
}

func (b *builder) buildFlex(n *htmlparse.Node, computed style.Computed) (*Box, error) {
	box := &Box{Kind: KindFlex, Style: computed}
	for _, c := range n.Children {
		if c.Kind == htmlparse.KindText || c.Kind == htmlparse.KindUnknown {
			continue
		}
		child, err := b.buildElement(c, computed)
		if err != nil {
			return nil, err
		}
		if child != nil {
			box.Children = append(box.Children, child)
		}
	}
	return box, nil
}

func (b *builder) buildList(n *htmlparse.Node, computed style.Computed, ordered bool) (*Box, error) {
	box := &Box{Kind: KindList, Style: computed, Ordered: ordered}
	for _, c := range n.Children {
		if c.Kind != htmlparse.KindElement || c.Tag != "li" {
			continue
		}
		itemStyle := style.Resolve(c.Tag, c.Attrs, computed)
		if itemStyle.Display == style.DisplayNone {
			continue
		}
		item, err := b.buildFlow(c, itemStyle)
		if err != nil {
			return nil, err
		}
		item.Kind = KindListItem
		box.Children = append(box.Children, item)
	}
	return box, nil
}

func (b *builder) buildTable(n *htmlparse.Node, computed style.Computed) (*Box, error) {
	box := &Box{Kind: KindTable, Style: computed}
	trs := collectRows(n)
	for _, tr := range trs {
		rowStyle := style.Resolve("tr", tr.Attrs, computed)
		if rowStyle.Display == style.DisplayNone {
			continue
		}
		var cells []*Box
		for _, cell := range collectCells(tr) {
			cellStyle := style.Resolve(cell.Tag, cell.Attrs, rowStyle)
			if cellStyle.Display == style.DisplayNone {
				continue
			}
			// background doesn't inherit (it isn't in inheritSubset), so a
			// row-level bg class would otherwise never reach its cells.
			if !cellStyle.HasBackground && rowStyle.HasBackground {
				cellStyle.HasBackground = true
				cellStyle.BackgroundColor = rowStyle.BackgroundColor
			}
			cellBox, err := b.buildFlow(cell, cellStyle)
			if err != nil {
				return nil, err
			}
			cellBox.Kind = KindTableCell
			cells = append(cells, cellBox)
		}
		box.Rows = append(box.Rows, cells)
	}
	return box, nil
}

// collectRows finds <tr> elements, flattening through non-whitelisted
// wrapper tags (thead/tbody/tfoot) that the tokenizer keeps as Unknown
// nodes but whose rows still belong to the table.
func collectRows(n *htmlparse.Node) []*htmlparse.Node {
	var rows []*htmlparse.Node
	for _, c := range n.Children {
		switch {
		case c.Kind == htmlparse.KindElement && c.Tag == "tr":
			rows = append(rows, c)
		case c.Kind == htmlparse.KindUnknown:
			rows = append(rows, collectRows(c)...)
		}
	}
	return rows
}

// collectCells finds direct <td>/<th> children of a row.
func collectCells(tr *htmlparse.Node) []*htmlparse.Node {
	var cells []*htmlparse.Node
	for _, c := range tr.Children {
		if c.Kind == htmlparse.KindElement && (c.Tag == "td" || c.Tag == "th") {
			cells = append(cells, c)
		}
	}
	return cells
}

func (b *builder) buildImage(n *htmlparse.Node, computed style.Computed) (*Box, error) {
	src, _ := n.Attr("src")
	key, w, h, err := b.decodeImageSrc(src)
	if err != nil {
		return nil, err
	}
	return &Box{
		Kind:       KindImage,
		Style:      computed,
		ImageKey:   key,
		IntrinsicW: float64(w),
		IntrinsicH: float64(h),
	}, nil
}
