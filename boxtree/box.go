// Package boxtree maps styled elements into the typed box tree the layout
// engine consumes: block, inline text runs, flex, lists, tables, and
// images. It owns eager image decoding and deduplication (spec §3's
// "palette of resolved images keyed by source data-URI hash").
package boxtree

import "github.com/tsawler/rpdf/style"

// Kind is the variant discriminator for Box, playing the role spec §3's
// tagged union (Block/Flex/List/Table/Image/Text) plays in the data model.
type Kind int

const (
	KindBlock Kind = iota
	KindFlex
	KindList
	KindListItem
	KindTable
	KindTableRow
	KindTableCell
	KindImage
	KindText
)

// Box is one node of the box tree. Which fields are meaningful depends on
// Kind: Children holds block/flex/list/list-item/table-cell contents, Rows
// holds a table's grid, Runs holds a text box's inline runs, and the
// Image* fields hold an image box's palette key and intrinsic size.
type Box struct {
	Kind  Kind
	Style style.Computed

	Children []*Box // Block, Flex, List, ListItem, TableCell
	Ordered  bool    // List only

	Rows [][]*Box // Table only: rows of TableCell boxes

	Runs []InlineRun // Text only

	ImageKey               string // Image only: key into Document.Images
	IntrinsicW, IntrinsicH float64
}

// InlineRun is a run of text sharing one ComputedStyle (spec §3).
type InlineRun struct {
	Style style.Computed
	Text  string
}

// Image is one entry in the document's image palette, holding the bytes
// ready for direct PDF embedding plus the dimensions box construction
// extracted from the source header. A JPEG's Data is its literal file
// bytes (exactly what /DCTDecode expects); a PNG's Data is decoded to raw
// RGB samples and re-deflated, since /FlateDecode on an Image XObject
// expects decompressed pixel data, not a PNG container.
type Image struct {
	Format ImageFormat
	Data   []byte
	Width  int
	Height int
}

// ImageFormat names the two embeddable raster formats.
type ImageFormat int

const (
	ImageFormatPNG ImageFormat = iota
	ImageFormatJPEG
)

// Document is the root of the box tree plus the deduplicated image
// palette every Image box's ImageKey refers into.
type Document struct {
	Roots  []*Box
	Images map[string]*Image
}
