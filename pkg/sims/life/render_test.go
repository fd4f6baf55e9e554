package life

import (
	"bytes"
	"image/color"
	"testing"

	"torus-life/pkg/core"
)

func TestRenderTextGlyphs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 3, 2
	cfg.Glyph = '█'
	l, err := NewWithConfig(cfg)
	if err != nil {
		t.Fatalf("NewWithConfig: %v", err)
	}
	l.Set(core.Coord{Row: 0, Col: 0}, core.Live)
	l.Set(core.Coord{Row: 1, Col: 2}, core.Live)

	want := "█  \n  █\n"
	if got := l.RenderText(); got != want {
		t.Fatalf("RenderText()=%q, expected %q", got, want)
	}
}

func TestRenderPixelsLength(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {7, 3}, {64, 48}} {
		l := mustNew(t, dims[0], dims[1])
		if got := len(l.RenderPixels()); got != dims[0]*dims[1]*4 {
			t.Fatalf("%dx%d fresh pixels len=%d", dims[0], dims[1], got)
		}
		l.Randomize(3)
		l.Step()
		if got := len(l.RenderPixels()); got != dims[0]*dims[1]*4 {
			t.Fatalf("%dx%d stepped pixels len=%d", dims[0], dims[1], got)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	l := mustNew(t, 20, 12)
	l.Randomize(11)
	l.Step()

	if a, b := l.RenderText(), l.RenderText(); a != b {
		t.Fatal("RenderText differs between consecutive calls")
	}
	if a, b := l.RenderPixels(), l.RenderPixels(); !bytes.Equal(a, b) {
		t.Fatal("RenderPixels differs between consecutive calls")
	}
	if l.Generation() != 1 {
		t.Fatalf("render changed generation to %d", l.Generation())
	}
}

func TestRenderPixelsByteOrder(t *testing.T) {
	live := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	dead := color.RGBA{R: 10, G: 20, B: 30, A: 40}
	cases := []struct {
		order ByteOrder
		live  []byte
		dead  []byte
	}{
		{OrderRGBA, []byte{1, 2, 3, 4}, []byte{10, 20, 30, 40}},
		{OrderBGRA, []byte{3, 2, 1, 4}, []byte{30, 20, 10, 40}},
		{OrderARGB, []byte{4, 1, 2, 3}, []byte{40, 10, 20, 30}},
		{OrderABGR, []byte{4, 3, 2, 1}, []byte{40, 30, 20, 10}},
	}
	for _, tc := range cases {
		cfg := DefaultConfig()
		cfg.Width, cfg.Height = 2, 1
		cfg.Palette = Palette{Live: live, Dead: dead}
		cfg.Order = tc.order
		l, err := NewWithConfig(cfg)
		if err != nil {
			t.Fatalf("%s: %v", tc.order, err)
		}
		l.Set(core.Coord{Row: 0, Col: 1}, core.Live)

		want := append(append([]byte{}, tc.dead...), tc.live...)
		if got := l.RenderPixels(); !bytes.Equal(got, want) {
			t.Fatalf("%s: pixels=%v, expected %v", tc.order, got, want)
		}
	}
}

func TestAppendPixelsReusesBuffer(t *testing.T) {
	l := mustNew(t, 4, 4)
	buf := make([]byte, 0, 64)
	out := l.AppendPixels(buf)
	if len(out) != 64 || &out[0] != &buf[:1][0] {
		t.Fatal("AppendPixels did not fill the provided buffer in place")
	}
}
