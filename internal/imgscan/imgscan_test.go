package imgscan

import (
	"encoding/binary"
	"testing"
)

func fakePNG(w, h uint32) []byte {
	buf := make([]byte, 24)
	copy(buf[:8], pngSignature)
	copy(buf[12:16], "IHDR")
	binary.BigEndian.PutUint32(buf[16:20], w)
	binary.BigEndian.PutUint32(buf[20:24], h)
	return buf
}

func TestSniffPNG(t *testing.T) {
	format, w, h, err := Sniff(fakePNG(100, 50))
	if err != nil {
		t.Fatalf("Sniff() error = %v", err)
	}
	if format != FormatPNG || w != 100 || h != 50 {
		t.Errorf("got (%v, %d, %d), want (PNG, 100, 50)", format, w, h)
	}
}

func TestSniffJPEG(t *testing.T) {
	data := []byte{
		0xFF, 0xD8, // SOI
		0xFF, 0xC0, 0x00, 0x11, // SOF0, length 17
		0x08,       // precision
		0x00, 0x28, // height = 40
		0x00, 0x32, // width = 50
		0x03, // components
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0xFF, 0xD9,
	}
	format, w, h, err := Sniff(data)
	if err != nil {
		t.Fatalf("Sniff() error = %v", err)
	}
	if format != FormatJPEG || w != 50 || h != 40 {
		t.Errorf("got (%v, %d, %d), want (JPEG, 50, 40)", format, w, h)
	}
}

func TestSniffRejectsGarbage(t *testing.T) {
	if _, _, _, err := Sniff([]byte("not an image")); err == nil {
		t.Fatal("expected error for non-image data")
	}
}

func TestSniffRejectsTruncatedPNG(t *testing.T) {
	if _, _, _, err := Sniff(pngSignature); err == nil {
		t.Fatal("expected error for truncated PNG")
	}
}
