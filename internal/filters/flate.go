package filters

import (
	"bytes"
	"compress/zlib"
	"fmt"
)

// FlateEncode compresses data with zlib, the compression format PDF names
// FlateDecode. The writer applies this to any content stream at or above
// the 128-byte threshold spec §4.5 sets.
func FlateEncode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("flate encode: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("flate encode: %w", err)
	}
	return buf.Bytes(), nil
}
