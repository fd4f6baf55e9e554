package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters shared by the hosts.
type Config struct {
	Width  int
	Height int
	Seed   uint64
	Scale  int
	TPS    int
	Steps  int
	Glyph  string
	Order  string
	Live   string
	Dead   string
	Quiet  bool
	HUD    int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Width:  128,
		Height: 96,
		Seed:   42,
		Scale:  6,
		TPS:    10,
		Steps:  100,
		Glyph:  "+",
		Order:  "rgba",
		Live:   "#ffffff",
		Dead:   "#000000",
		HUD:    180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Uint64Var(&c.Seed, "seed", c.Seed, "seed for the initial random fill")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Steps, "steps", c.Steps, "generations to run before exiting (text host, 0 runs forever)")
	fs.StringVar(&c.Glyph, "glyph", c.Glyph, "character drawn for live cells")
	fs.StringVar(&c.Order, "order", c.Order, "pixel byte order: rgba, bgra, argb or abgr")
	fs.StringVar(&c.Live, "live", c.Live, "live cell color as #rrggbb[aa]")
	fs.StringVar(&c.Dead, "dead", c.Dead, "dead cell color as #rrggbb[aa]")
	fs.BoolVar(&c.Quiet, "quiet", c.Quiet, "suppress per-generation log lines")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
}

// SimConfig renders the simulation-related settings in the key/value form
// accepted by life.FromMap.
func (c *Config) SimConfig() map[string]string {
	return map[string]string{
		"w":     strconv.Itoa(c.Width),
		"h":     strconv.Itoa(c.Height),
		"seed":  strconv.FormatUint(c.Seed, 10),
		"glyph": c.Glyph,
		"order": c.Order,
		"live":  c.Live,
		"dead":  c.Dead,
	}
}
