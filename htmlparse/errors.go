package htmlparse

import "errors"

// errInvalidUTF8 is the only failure this package produces; the caller
// classifies it into the pipeline's ParseError kind.
var errInvalidUTF8 = errors.New("htmlparse: input is not valid UTF-8")
