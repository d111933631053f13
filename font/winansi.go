package font

import (
	"golang.org/x/text/encoding/charmap"
)

// EncodeWinAnsi transliterates a UTF-8 string to single-byte WinAnsi
// bytes. WinAnsiEncoding is, for every code point this pipeline's inline
// CSS palette and Latin text can produce, identical to Windows-1252, so
// charmap.Windows1252 does the actual per-rune mapping; runes it cannot
// represent become '?', matching spec §4.5.
func EncodeWinAnsi(s string) []byte {
	out := make([]byte, 0, len(s))
	for _, r := range s {
		b, ok := charmap.Windows1252.EncodeRune(r)
		if !ok {
			b = '?'
		}
		out = append(out, b)
	}
	return out
}

// EscapeForContentStream backslash-escapes '(', ')', and '\\' for a PDF
// literal string, per spec §4.5.
func EscapeForContentStream(winAnsi []byte) []byte {
	out := make([]byte, 0, len(winAnsi))
	for _, b := range winAnsi {
		if b == '(' || b == ')' || b == '\\' {
			out = append(out, '\\')
		}
		out = append(out, b)
	}
	return out
}
