package font

// timesASCII holds the published Adobe Core 14 advance widths for
// Times-Roman, code points 32 through 126, in 1/1000 em.
var timesASCII = [95]int{
	250, 333, 408, 500, 500, 833, 778, 180, 333, 333, 500, 564, 250, 333, 250, 278,
	500, 500, 500, 500, 500, 500, 500, 500, 500, 500, 278, 278, 564, 564, 564, 444,
	921, 722, 667, 667, 722, 611, 556, 722, 722, 333, 389, 722, 611, 889, 722, 722,
	556, 722, 667, 556, 611, 722, 722, 944, 722, 722, 611, 333, 278, 333, 469, 500,
	333, 444, 500, 444, 500, 444, 333, 500, 500, 278, 278, 500, 278, 778, 500, 500,
	500, 500, 333, 389, 278, 500, 500, 722, 500, 500, 444, 480, 200, 480, 541,
}

func timesWidths() *widthTable {
	var t widthTable
	for i := range t {
		t[i] = 500
	}
	for i, w := range timesASCII {
		t[32+i] = w
	}
	return &t
}
