package life

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrInvalidOrder is returned for an unknown pixel byte order.
	ErrInvalidOrder = errors.New("unknown pixel byte order")
	// ErrInvalidColor is returned when a palette color cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
)

// ByteOrder selects how a palette color is laid out in the four bytes of a pixel.
type ByteOrder uint8

const (
	OrderRGBA ByteOrder = iota
	OrderBGRA
	OrderARGB
	OrderABGR
)

var orderNames = [...]string{"rgba", "bgra", "argb", "abgr"}

func (o ByteOrder) String() string {
	if int(o) < len(orderNames) {
		return orderNames[o]
	}
	return "ByteOrder(" + strconv.Itoa(int(o)) + ")"
}

// ParseByteOrder maps a channel-order name such as "bgra" to a ByteOrder.
func ParseByteOrder(s string) (ByteOrder, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range orderNames {
		if name == s {
			return ByteOrder(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrder, s)
}

// Palette holds the two colors used by the pixel projection.
type Palette struct {
	Dead color.RGBA
	Live color.RGBA
}

// Config controls the Life engine dimensions and render projections.
type Config struct {
	Width  int
	Height int

	Seed uint64

	Glyph   rune
	Palette Palette
	Order   ByteOrder
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  128,
		Height: 96,
		Seed:   42,
		Glyph:  '+',
		Palette: Palette{
			Dead: color.RGBA{A: 255},
			Live: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		},
		Order: OrderRGBA,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Values that fail to parse leave the default in place.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseUint(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["glyph"]; ok {
		if r, size := utf8.DecodeRuneInString(v); r != utf8.RuneError && size == len(v) && r != '\n' {
			c.Glyph = r
		}
	}
	if v, ok := cfg["live"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.Palette.Live = parsed
		}
	}
	if v, ok := cfg["dead"]; ok {
		if parsed, err := ParseColor(v); err == nil {
			c.Palette.Dead = parsed
		}
	}
	if v, ok := cfg["order"]; ok {
		if parsed, err := ParseByteOrder(v); err == nil {
			c.Order = parsed
		}
	}
	return c
}

// ParseColor parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional
// and a missing alpha channel means opaque.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

func (c Config) validate() error {
	if int(c.Order) >= len(orderNames) {
		return fmt.Errorf("%w: %d", ErrInvalidOrder, c.Order)
	}
	if c.Glyph == '\n' || !utf8.ValidRune(c.Glyph) {
		return fmt.Errorf("life: invalid glyph %q", c.Glyph)
	}
	return nil
}
