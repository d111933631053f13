package style

import (
	"strconv"
	"strings"

	"github.com/tsawler/rpdf/model"
)

func parseHexColor(hex string) (model.Color, bool) {
	expand := func(c byte) (byte, byte) { return c, c }
	var r, g, b byte
	switch len(hex) {
	case 3:
		r1, r2 := expand(hex[0])
		g1, g2 := expand(hex[1])
		b1, b2 := expand(hex[2])
		rv, err1 := strconv.ParseUint(string([]byte{r1, r2}), 16, 8)
		gv, err2 := strconv.ParseUint(string([]byte{g1, g2}), 16, 8)
		bv, err3 := strconv.ParseUint(string([]byte{b1, b2}), 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return model.Color{}, false
		}
		r, g, b = byte(rv), byte(gv), byte(bv)
	case 6:
		rv, err1 := strconv.ParseUint(hex[0:2], 16, 8)
		gv, err2 := strconv.ParseUint(hex[2:4], 16, 8)
		bv, err3 := strconv.ParseUint(hex[4:6], 16, 8)
		if err1 != nil || err2 != nil || err3 != nil {
			return model.Color{}, false
		}
		r, g, b = byte(rv), byte(gv), byte(bv)
	default:
		return model.Color{}, false
	}
	return model.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}, true
}

func parseRGBFunc(inner string) (model.Color, bool) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return model.Color{}, false
	}
	var vals [3]float64
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return model.Color{}, false
		}
		vals[i] = float64(n) / 255
	}
	return model.Color{R: vals[0], G: vals[1], B: vals[2]}, true
}
