package screen

// layer is one of the two compositing planes: a width*height grid of color
// indices, row-major.
type layer struct {
	width, height uint16
	pixels        []ColorIndex
}

func newLayer(width, height uint16) *layer {
	return &layer{
		width:  width,
		height: height,
		pixels: make([]ColorIndex, int(width)*int(height)),
	}
}

// setPixel paints (x, y) with color, reporting whether the layer's visible
// contents changed. Out-of-bounds coordinates are clipped silently.
func (l *layer) setPixel(x, y uint16, color ColorIndex) bool {
	if x >= l.width || y >= l.height {
		return false
	}
	idx := int(y)*int(l.width) + int(x)
	if l.pixels[idx] == color {
		return false
	}
	l.pixels[idx] = color
	return true
}

func (l *layer) at(x, y uint16) ColorIndex {
	return l.pixels[int(y)*int(l.width)+int(x)]
}
