// Package filters implements PDF stream compression filters.
//
// Only the encode direction of FlateDecode is needed: the writer produces
// content streams, it never reads them back.
package filters
