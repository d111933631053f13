package model

// Color is an RGB color with each channel in [0, 1], the range the PDF
// `rg`/`RG` operators expect directly.
type Color struct {
	R, G, B float64
}

// Black is the default text and border color.
var Black = Color{0, 0, 0}

// White is the default page background.
var White = Color{1, 1, 1}
