// Package model provides the shared geometric and color value types used
// throughout the render pipeline: style resolution, box layout, and the PDF
// content-stream writer all operate in terms of [Point], [BBox], [Matrix],
// and [Color].
//
// Coordinates follow the PDF convention: Y grows upward, origin at the
// bottom-left of the page.
package model
