// Package imgscan validates embedded image payloads and reads their
// intrinsic pixel dimensions from the file header alone, without decoding
// pixels. Box construction uses the result for format validation and the
// box's intrinsic size; any pixel decoding (PNG) happens separately in
// boxtree.
package imgscan

import (
	"encoding/binary"
	"errors"
)

// Format is one of the two embeddable raster formats.
type Format int

const (
	FormatUnknown Format = iota
	FormatPNG
	FormatJPEG
)

var errUnsupportedFormat = errors.New("imgscan: unsupported or corrupt image header")

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// Sniff detects the format and reads width/height in pixels, verifying the
// magic bytes spec §4.3 names (PNG `89 50 4E 47`, JPEG `FF D8 FF`).
func Sniff(data []byte) (format Format, width, height int, err error) {
	switch {
	case len(data) >= 8 && string(data[:8]) == string(pngSignature):
		return sniffPNG(data)
	case len(data) >= 3 && data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return sniffJPEG(data)
	default:
		return FormatUnknown, 0, 0, errUnsupportedFormat
	}
}

// sniffPNG reads width/height from the IHDR chunk, which always
// immediately follows the 8-byte signature: 4-byte length, 4-byte type
// "IHDR", 4-byte width, 4-byte height, all big-endian.
func sniffPNG(data []byte) (Format, int, int, error) {
	if len(data) < 24 || string(data[12:16]) != "IHDR" {
		return FormatUnknown, 0, 0, errUnsupportedFormat
	}
	width := binary.BigEndian.Uint32(data[16:20])
	height := binary.BigEndian.Uint32(data[20:24])
	if width == 0 || height == 0 {
		return FormatUnknown, 0, 0, errUnsupportedFormat
	}
	return FormatPNG, int(width), int(height), nil
}

// sniffJPEG scans markers for a start-of-frame (SOF0 baseline or SOF2
// progressive), each of which encodes big-endian uint16 height then width
// three bytes into the marker's segment.
func sniffJPEG(data []byte) (Format, int, int, error) {
	i := 2 // skip SOI (FF D8)
	for i+4 <= len(data) {
		if data[i] != 0xFF {
			i++
			continue
		}
		marker := data[i+1]
		if marker == 0xD8 || marker == 0x01 || (marker >= 0xD0 && marker <= 0xD7) {
			i += 2
			continue
		}
		if i+4 > len(data) {
			break
		}
		segLen := int(binary.BigEndian.Uint16(data[i+2 : i+4]))
		if marker == 0xC0 || marker == 0xC2 {
			if i+9 > len(data) {
				return FormatUnknown, 0, 0, errUnsupportedFormat
			}
			height := binary.BigEndian.Uint16(data[i+5 : i+7])
			width := binary.BigEndian.Uint16(data[i+7 : i+9])
			if width == 0 || height == 0 {
				return FormatUnknown, 0, 0, errUnsupportedFormat
			}
			return FormatJPEG, int(width), int(height), nil
		}
		if marker == 0xD9 || segLen < 2 {
			break
		}
		i += 2 + segLen
	}
	return FormatUnknown, 0, 0, errUnsupportedFormat
}
