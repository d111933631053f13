// Package htmlparse turns an HTML byte string into an element tree.
//
// Tokenizing and tree construction is delegated to golang.org/x/net/html,
// the same tolerant HTML5 parser tabula uses to read whole documents
// (htmldoc.Reader). Its tree-construction algorithm already recovers from
// unclosed tags and mismatched end tags, so this package's own job is
// narrower: walk the resulting tree, keep only the whitelisted element set,
// and apply the whitespace-collapsing rule browsers leave to CSS.
package htmlparse

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Kind distinguishes the two node shapes in the tree.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindUnknown
)

// whitelisted is the closed set of tags recognized by the box constructor.
var whitelisted = map[string]bool{
	"h1": true, "h2": true, "h3": true,
	"p": true, "div": true, "span": true,
	"ul": true, "ol": true, "li": true,
	"table": true, "tr": true, "td": true, "th": true,
	"img": true,
}

// Node is either an element (Tag/Attrs/Children populated), a text run
// (Text populated), or an Unknown node kept opaque for the box constructor
// to discard.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    map[string]string
	Children []*Node
	Text     string
}

// Attr looks up an attribute by lowercase name, tolerating a missing map.
func (n *Node) Attr(name string) (string, bool) {
	if n.Attrs == nil {
		return "", false
	}
	v, ok := n.Attrs[name]
	return v, ok
}

// Document is the root of the parsed tree: an ordered list of top-level
// nodes, exactly as they appeared in the fragment.
type Document struct {
	Roots []*Node
}

// Parse consumes UTF-8 HTML bytes and produces a Document.
//
// The only failure mode is invalid UTF-8 — everything else that spec §4.1
// calls a malformation (unclosed tags, mismatched end tags, bogus
// attributes) is recovered by the underlying tree-construction algorithm.
func Parse(src []byte) (*Document, error) {
	if !utf8.Valid(src) {
		return nil, errInvalidUTF8
	}

	root, err := html.Parse(strings.NewReader(string(src)))
	if err != nil {
		// x/net/html only errors on I/O failure from the reader, which
		// strings.Reader never produces; kept for completeness.
		return nil, errInvalidUTF8
	}

	body := findBody(root)
	if body == nil {
		return &Document{}, nil
	}

	doc := &Document{}
	first := true
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if n := walk(c, &first); n != nil {
			doc.Roots = append(doc.Roots, n)
		}
	}
	return doc, nil
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == atom.Body {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}

// walk converts one x/net/html node (and its subtree) into a *Node.
// atFirstText tracks whether the very next text run is the first one seen
// since the most recently opened element (it is set again at every element
// start), so its leading whitespace can be dropped per the
// block-leading-whitespace rule.
func walk(n *html.Node, atFirstText *bool) *Node {
	switch n.Type {
	case html.TextNode:
		text := collapseWhitespace(n.Data)
		if *atFirstText {
			text = strings.TrimLeft(text, " ")
		}
		if text == "" {
			return nil
		}
		*atFirstText = false
		return &Node{Kind: KindText, Text: text}

	case html.CommentNode, html.DoctypeNode:
		return nil

	case html.ElementNode:
		tag := n.Data
		out := &Node{Tag: tag, Attrs: attrsOf(n)}
		if whitelisted[tag] {
			out.Kind = KindElement
		} else {
			out.Kind = KindUnknown
		}
		*atFirstText = true
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if child := walk(c, atFirstText); child != nil {
				out.Children = append(out.Children, child)
			}
		}
		return out

	default:
		return nil
	}
}

func attrsOf(n *html.Node) map[string]string {
	if len(n.Attr) == 0 {
		return nil
	}
	m := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		m[strings.ToLower(a.Key)] = a.Val
	}
	return m
}

// collapseWhitespace turns any run of ASCII whitespace into a single space,
// matching spec §4.1's collapsing rule (x/net/html hands back source
// whitespace verbatim; browsers apply this at render time via CSS, which
// this pipeline has no separate stage for).
func collapseWhitespace(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range s {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '\f' {
			if !inSpace {
				b.WriteByte(' ')
				inSpace = true
			}
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}
