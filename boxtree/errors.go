package boxtree

import "errors"

// ErrImage is returned (wrapped with more detail) for every image-related
// failure spec §4.3 assigns the ImageError kind to: a non-data-URI src, an
// unsupported/corrupt format, or malformed base64.
var ErrImage = errors.New("boxtree: invalid image source")
