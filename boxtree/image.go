package boxtree

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image/png"
	"strings"

	"github.com/tsawler/rpdf/internal/filters"
	"github.com/tsawler/rpdf/internal/imgscan"
)

var dataURIPrefixes = []struct {
	prefix string
	format ImageFormat
}{
	{"data:image/png;base64,", ImageFormatPNG},
	{"data:image/jpeg;base64,", ImageFormatJPEG},
}

// decodeImageSrc validates and decodes an <img src="..."> value, adding
// the result to the document's image palette (deduped by content hash)
// and returning the palette key plus intrinsic pixel size.
func (b *builder) decodeImageSrc(src string) (key string, w, h int, err error) {
	var declaredFormat ImageFormat
	var b64 string
	matched := false
	for _, p := range dataURIPrefixes {
		if strings.HasPrefix(src, p.prefix) {
			declaredFormat = p.format
			b64 = strings.TrimPrefix(src, p.prefix)
			matched = true
			break
		}
	}
	if !matched {
		return "", 0, 0, fmt.Errorf("%w: src must be a data:image/(png|jpeg);base64, URI, got %.40q", ErrImage, src)
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: malformed base64: %v", ErrImage, err)
	}

	format, width, height, err := imgscan.Sniff(data)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: %v", ErrImage, err)
	}
	if (format == imgscan.FormatPNG) != (declaredFormat == ImageFormatPNG) {
		return "", 0, 0, fmt.Errorf("%w: declared format does not match image header", ErrImage)
	}

	sum := sha256.Sum256(data)
	key = hex.EncodeToString(sum[:])

	if _, exists := b.doc.Images[key]; !exists {
		embedData := data
		if declaredFormat == ImageFormatPNG {
			embedData, err = rawPNGSamples(data)
			if err != nil {
				return "", 0, 0, fmt.Errorf("%w: malformed PNG pixel data: %v", ErrImage, err)
			}
		}
		b.doc.Images[key] = &Image{
			Format: declaredFormat,
			Data:   embedData,
			Width:  width,
			Height: height,
		}
	}
	return key, width, height, nil
}

// rawPNGSamples decodes a PNG to 8-bit RGB samples in row-major order and
// deflates them, the form a PDF Image XObject's /FlateDecode filter
// actually expects — a PNG file's own IDAT stream is chunk-framed and
// filtered per scanline, not a plain zlib stream of raw pixels.
func rawPNGSamples(data []byte) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	b := img.Bounds()
	raw := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			raw = append(raw, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}
	return filters.FlateEncode(raw)
}
