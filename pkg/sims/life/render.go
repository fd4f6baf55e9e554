package life

import (
	"image/color"
	"strings"

	"torus-life/pkg/core"
)

// RenderText returns one line per row with the configured glyph for live
// cells and a space for dead ones. Every line ends in a newline.
func (l *Life) RenderText() string {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	var b strings.Builder
	b.Grow(h * (w + 1))
	for y := 0; y < h; y++ {
		for _, c := range cells[y*w : (y+1)*w] {
			if c == core.Live {
				b.WriteRune(l.cfg.Glyph)
				continue
			}
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// RenderPixels returns a new buffer of width*height*4 bytes holding the
// palette color of each cell in row-major order.
func (l *Life) RenderPixels() []byte {
	return l.AppendPixels(make([]byte, 0, 4*len(l.cur.Cells())))
}

// AppendPixels appends the pixel projection to dst and returns the extended buffer.
func (l *Life) AppendPixels(dst []byte) []byte {
	live := encodePixel(l.cfg.Palette.Live, l.cfg.Order)
	dead := encodePixel(l.cfg.Palette.Dead, l.cfg.Order)
	for _, c := range l.cur.Cells() {
		if c == core.Live {
			dst = append(dst, live[:]...)
			continue
		}
		dst = append(dst, dead[:]...)
	}
	return dst
}

func encodePixel(c color.RGBA, order ByteOrder) [4]byte {
	switch order {
	case OrderBGRA:
		return [4]byte{c.B, c.G, c.R, c.A}
	case OrderARGB:
		return [4]byte{c.A, c.R, c.G, c.B}
	case OrderABGR:
		return [4]byte{c.A, c.B, c.G, c.R}
	default:
		return [4]byte{c.R, c.G, c.B, c.A}
	}
}
