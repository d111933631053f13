package pdfwrite

import "strconv"

// trimFloat formats a coordinate/size for a content stream operand:
// fixed-point, no exponent, no unnecessary trailing zeros or decimal
// point — keeps output compact and, more importantly, stable across runs
// (Go's -1 precision mode is deterministic for a given float64 input).
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
