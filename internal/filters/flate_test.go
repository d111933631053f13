package filters

import (
	"bytes"
	"compress/zlib"
	"io"
	"testing"
)

func TestFlateEncodeRoundTrips(t *testing.T) {
	input := []byte("BT /F1 12 Tf 40 700 Td (Hello, world) Tj ET")

	encoded, err := FlateEncode(input)
	if err != nil {
		t.Fatalf("FlateEncode() error = %v", err)
	}

	r, err := zlib.NewReader(bytes.NewReader(encoded))
	if err != nil {
		t.Fatalf("zlib.NewReader() error = %v", err)
	}
	defer r.Close()

	got, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != string(input) {
		t.Errorf("round trip = %q, want %q", got, input)
	}
}

func TestFlateEncodeDeterministic(t *testing.T) {
	input := []byte("repeated content stream bytes repeated content stream bytes")
	a, err := FlateEncode(input)
	if err != nil {
		t.Fatalf("FlateEncode() error = %v", err)
	}
	b, err := FlateEncode(input)
	if err != nil {
		t.Fatalf("FlateEncode() error = %v", err)
	}
	if !bytes.Equal(a, b) {
		t.Error("FlateEncode is not deterministic across calls")
	}
}
