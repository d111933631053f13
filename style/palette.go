package style

import "github.com/tsawler/rpdf/model"

// namedColors is the fixed palette recognized by text-<name> / bg-<name>
// class tokens, per the templating guide.
var namedColors = map[string]model.Color{
	"gray-100": {R: 0.949, G: 0.953, B: 0.961},
	"gray-200": {R: 0.898, G: 0.906, B: 0.922},
	"gray-300": {R: 0.820, G: 0.835, B: 0.859},
	"gray-400": {R: 0.612, G: 0.639, B: 0.686},
	"gray-500": {R: 0.420, G: 0.447, B: 0.502},
	"gray-600": {R: 0.294, G: 0.333, B: 0.388},
	"red-500":   {R: 0.937, G: 0.267, B: 0.267},
	"green-500": {R: 0.133, G: 0.773, B: 0.369},
	"blue-500":  {R: 0.231, G: 0.510, B: 0.965},
	"yellow-500": {R: 0.918, G: 0.702, B: 0.031},
	"white": model.White,
	"black": model.Black,
}
