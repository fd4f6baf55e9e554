package life

import (
	"errors"
	"image/color"
	"testing"
)

func TestFromMapOverrides(t *testing.T) {
	c := FromMap(map[string]string{
		"w":     "40",
		"h":     "30",
		"seed":  "18446744073709551615",
		"glyph": "#",
		"live":  "#00ff00",
		"dead":  "10203040",
		"order": "BGRA",
	})
	if c.Width != 40 || c.Height != 30 {
		t.Fatalf("size=%dx%d, expected 40x30", c.Width, c.Height)
	}
	if c.Seed != 18446744073709551615 {
		t.Fatalf("seed=%d", c.Seed)
	}
	if c.Glyph != '#' {
		t.Fatalf("glyph=%q", c.Glyph)
	}
	if c.Palette.Live != (color.RGBA{G: 255, A: 255}) {
		t.Fatalf("live=%v", c.Palette.Live)
	}
	if c.Palette.Dead != (color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}) {
		t.Fatalf("dead=%v", c.Palette.Dead)
	}
	if c.Order != OrderBGRA {
		t.Fatalf("order=%s", c.Order)
	}
}

func TestFromMapKeepsDefaultsOnBadInput(t *testing.T) {
	def := DefaultConfig()
	c := FromMap(map[string]string{
		"w":     "0",
		"h":     "-4",
		"seed":  "-1",
		"glyph": "ab",
		"live":  "#12",
		"order": "cmyk",
	})
	if c != def {
		t.Fatalf("config=%+v, expected defaults %+v", c, def)
	}
	if FromMap(nil) != def {
		t.Fatal("FromMap(nil) did not return defaults")
	}
}

func TestNewWithConfigRejectsUnknownOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Order = ByteOrder(9)
	if _, err := NewWithConfig(cfg); !errors.Is(err, ErrInvalidOrder) {
		t.Fatalf("err=%v, expected ErrInvalidOrder", err)
	}
}

func TestParseColor(t *testing.T) {
	if _, err := ParseColor("zzzzzz"); !errors.Is(err, ErrInvalidColor) {
		t.Fatalf("err=%v, expected ErrInvalidColor", err)
	}
	got, err := ParseColor("#FF8000")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if got != (color.RGBA{R: 255, G: 128, A: 255}) {
		t.Fatalf("color=%v", got)
	}
}
