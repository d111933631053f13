package pdfwrite

import (
	"sort"
	"strconv"

	"github.com/tsawler/rpdf/font"
	"github.com/tsawler/rpdf/internal/filters"
	"github.com/tsawler/rpdf/model"
)

// flateThreshold is the minimum content-stream length spec §4.5 compresses at.
const flateThreshold = 128

// Primitive is one placed drawing operation within a page, in PDF-point
// coordinates with the origin at the page's bottom-left.
type Primitive interface{ isPrimitive() }

// FillRect paints a solid rectangle (re f).
type FillRect struct {
	X, Y, W, H float64
	Color      model.Color
}

// StrokeRect outlines a rectangle (re S).
type StrokeRect struct {
	X, Y, W, H float64
	Color      model.Color
	LineWidth  float64
}

// TextLine draws one baseline-positioned run of text (BT Tf Td Tj ET).
type TextLine struct {
	Font  font.Key
	Size  float64
	Color model.Color
	X, Y  float64
	Text  string
}

// DrawImage paints a previously registered image XObject scaled into the
// given rectangle (cm Do).
type DrawImage struct {
	ImageKey   string
	X, Y, W, H float64
}

func (FillRect) isPrimitive()   {}
func (StrokeRect) isPrimitive() {}
func (TextLine) isPrimitive()   {}
func (DrawImage) isPrimitive()  {}

// Page is one output page: its media size and its flat list of placed
// primitives, exactly the shape spec §3's PageFragment describes.
type Page struct {
	WidthPt, HeightPt float64
	Primitives        []Primitive
}

// ImageResource is a decoded-header, still-encoded image ready to embed
// as an XObject.
type ImageResource struct {
	IsJPEG bool // false means PNG
	Data   []byte
	Width  int
	Height int
}

// Document is the input to Build: the finished pages plus the image
// palette they reference by key.
type Document struct {
	Title  string
	Pages  []Page
	Images map[string]*ImageResource
}

// Build assembles a complete PDF 1.7 byte stream from laid-out pages.
// Objects are numbered in this order: Catalog, Pages, Font resources,
// Image XObjects, then for each page its Content Stream followed by its
// Page dictionary, and finally the Info dictionary. Every Page therefore
// comes after the fonts and images, not directly after Pages.
func Build(doc Document) []byte {
	w := New()

	catalogRef := w.Reserve()
	pagesRef := w.Reserve()

	fontRefs, fontNames := buildFontResources(w, doc.Pages)
	imageRefs, imageNames := buildImageResources(w, doc.Images)

	pageRefs := make([]Ref, len(doc.Pages))
	for i, page := range doc.Pages {
		pageRefs[i] = buildPage(w, page, pagesRef, fontRefs, fontNames, imageRefs, imageNames)
	}

	kids := make(Array, len(pageRefs))
	for i, r := range pageRefs {
		kids[i] = r
	}
	pagesDict := NewDict().
		Set("Type", Name("Pages")).
		Set("Kids", kids).
		Set("Count", Int(len(pageRefs)))
	w.Set(pagesRef, pagesDict)

	catalog := NewDict().
		Set("Type", Name("Catalog")).
		Set("Pages", pagesRef)
	w.Set(catalogRef, catalog)

	title := doc.Title
	if title == "" {
		title = "rpdf output"
	}
	infoRef := w.Add(NewDict().
		Set("Title", Str(title)).
		Set("Producer", Str("rpdf")))

	return w.Bytes(catalogRef, infoRef)
}

// buildFontResources allocates one Font dictionary per base-14 font
// actually referenced by any TextLine, in a stable (sorted by name)
// order so object numbering never depends on map iteration order.
func buildFontResources(w *Writer, pages []Page) (map[font.Key]Ref, map[font.Key]string) {
	used := map[font.Key]bool{}
	for _, p := range pages {
		for _, prim := range p.Primitives {
			if t, ok := prim.(TextLine); ok {
				used[t.Font] = true
			}
		}
	}
	keys := make([]string, 0, len(used))
	for k := range used {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)

	refs := make(map[font.Key]Ref, len(keys))
	names := make(map[font.Key]string, len(keys))
	for i, k := range keys {
		fk := font.Key(k)
		name := "F" + strconv.Itoa(i+1)
		names[fk] = name
		refs[fk] = w.Add(NewDict().
			Set("Type", Name("Font")).
			Set("Subtype", Name("Type1")).
			Set("BaseFont", Name(k)).
			Set("Encoding", Name("WinAnsiEncoding")))
	}
	return refs, names
}

func buildImageResources(w *Writer, images map[string]*ImageResource) (map[string]Ref, map[string]string) {
	keys := make([]string, 0, len(images))
	for k := range images {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	refs := make(map[string]Ref, len(keys))
	names := make(map[string]string, len(keys))
	for i, k := range keys {
		img := images[k]
		name := "Im" + strconv.Itoa(i+1)
		names[k] = name

		dict := NewDict().
			Set("Type", Name("XObject")).
			Set("Subtype", Name("Image")).
			Set("Width", Int(img.Width)).
			Set("Height", Int(img.Height)).
			Set("ColorSpace", Name("DeviceRGB")).
			Set("BitsPerComponent", Int(8))
		if img.IsJPEG {
			dict.Set("Filter", Name("DCTDecode"))
		} else {
			dict.Set("Filter", Name("FlateDecode"))
		}
		refs[k] = w.Add(&Stream{Dict: dict, Data: img.Data})
	}
	return refs, names
}

func buildPage(w *Writer, page Page, parent Ref, fontRefs map[font.Key]Ref, fontNames map[font.Key]string, imageRefs map[string]Ref, imageNames map[string]string) Ref {
	cb := NewContentBuilder()
	emitPrimitives(cb, page.Primitives, fontNames, imageNames)

	streamData := cb.Bytes()
	streamDict := NewDict()
	if len(streamData) >= flateThreshold {
		if compressed, err := filters.FlateEncode(streamData); err == nil {
			streamDict.Set("Filter", Name("FlateDecode"))
			streamData = compressed
		}
	}
	contentRef := w.Add(&Stream{Dict: streamDict, Data: streamData})

	// Dict insertion order becomes byte order in the output, so resource
	// keys are always visited sorted rather than in map iteration order.
	fontDict := NewDict()
	fontKeys := make([]string, 0, len(fontRefs))
	for k := range fontRefs {
		fontKeys = append(fontKeys, string(k))
	}
	sort.Strings(fontKeys)
	for _, k := range fontKeys {
		fk := font.Key(k)
		fontDict.Set(fontNames[fk], fontRefs[fk])
	}
	resources := NewDict().Set("Font", fontDict)

	if usesAnyImage(page.Primitives) {
		imgKeys := make([]string, 0, len(imageRefs))
		for k := range imageRefs {
			if imagePrimitiveUses(page.Primitives, k) {
				imgKeys = append(imgKeys, k)
			}
		}
		sort.Strings(imgKeys)
		xobjDict := NewDict()
		for _, k := range imgKeys {
			xobjDict.Set(imageNames[k], imageRefs[k])
		}
		resources.Set("XObject", xobjDict)
	}

	pageDict := NewDict().
		Set("Type", Name("Page")).
		Set("Parent", parent).
		Set("MediaBox", Array{Int(0), Int(0), Real(page.WidthPt), Real(page.HeightPt)}).
		Set("Resources", resources).
		Set("Contents", contentRef)

	return w.Add(pageDict)
}

func usesAnyImage(prims []Primitive) bool {
	for _, p := range prims {
		if _, ok := p.(DrawImage); ok {
			return true
		}
	}
	return false
}

func imagePrimitiveUses(prims []Primitive, key string) bool {
	for _, p := range prims {
		if img, ok := p.(DrawImage); ok && img.ImageKey == key {
			return true
		}
	}
	return false
}

// emitPrimitives translates the flat primitive list into content-stream
// operators, in the grammar spec §4.5 names.
func emitPrimitives(cb *ContentBuilder, prims []Primitive, fontNames map[font.Key]string, imageNames map[string]string) {
	for _, p := range prims {
		switch v := p.(type) {
		case FillRect:
			cb.SetFillColorRGB(v.Color.R, v.Color.G, v.Color.B)
			cb.Rect(v.X, v.Y, v.W, v.H)
			cb.Fill()
		case StrokeRect:
			cb.SetStrokeColorRGB(v.Color.R, v.Color.G, v.Color.B)
			cb.SetLineWidth(v.LineWidth)
			cb.Rect(v.X, v.Y, v.W, v.H)
			cb.Stroke()
		case TextLine:
			cb.SetFillColorRGB(v.Color.R, v.Color.G, v.Color.B)
			cb.BeginText()
			cb.SetFont(fontNames[v.Font], v.Size)
			cb.MoveText(v.X, v.Y)
			cb.ShowString(v.Text)
			cb.EndText()
		case DrawImage:
			cb.Save()
			cb.transformRect(v.X, v.Y, v.W, v.H)
			cb.Do(imageNames[v.ImageKey])
			cb.Restore()
		}
	}
}
