package life

import (
	"errors"
	"fmt"
	"strconv"

	"torus-life/pkg/core"
)

// ErrShortBitSource is returned when a bit buffer holds fewer bits than the grid has cells.
var ErrShortBitSource = errors.New("bit source shorter than grid")

// Life implements Conway's Game of Life with toroidal wrapping.
type Life struct {
	cfg Config
	cur *core.Grid
	nxt *core.Grid

	generation int
	seed       uint64
	observer   Observer
}

// New returns a Life simulation with the provided dimensions and default
// render settings.
func New(w, h int) (*Life, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-dead Life simulation described by cfg.
func NewWithConfig(cfg Config) (*Life, error) {
	if cfg.Glyph == 0 {
		cfg.Glyph = DefaultConfig().Glyph
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cur, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, fmt.Errorf("life: %w", err)
	}
	nxt, _ := core.NewGrid(cfg.Width, cfg.Height)
	return &Life{cfg: cfg, cur: cur, nxt: nxt, seed: cfg.Seed}, nil
}

// SetObserver installs fn to be notified after every state change. A nil fn
// disables notifications.
func (l *Life) SetObserver(fn Observer) { l.observer = fn }

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Config returns the configuration the simulation was built with.
func (l *Life) Config() Config { return l.cfg }

// Generation returns the number of steps since the last randomize or clear.
func (l *Life) Generation() int { return l.generation }

// Seed returns the seed of the most recent Randomize call.
func (l *Life) Seed() uint64 { return l.seed }

// Live returns the current number of live cells.
func (l *Life) Live() int { return l.cur.CountLive() }

// Get returns the cell at c, wrapping out-of-range coordinates.
func (l *Life) Get(c core.Coord) core.Cell { return l.cur.Get(c) }

// Set stores v at c, wrapping out-of-range coordinates.
func (l *Life) Set(c core.Coord, v core.Cell) { l.cur.Set(c, v) }

// Cells exposes the current generation in row-major order.
func (l *Life) Cells() []core.Cell { return l.cur.Cells() }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed uint64) { l.Randomize(seed) }

// Randomize fills the grid with one pseudo-random bit per cell drawn from a
// source seeded by seed and returns the resulting live count.
func (l *Life) Randomize(seed uint64) int {
	bits := core.NewRNG(seed).Bits(len(l.cur.Cells()))
	l.seed = seed
	l.fill(bits)
	return l.notify(EventRandomized)
}

// RandomizeFrom fills the grid from a caller-supplied bit buffer; cell i takes
// bit i%8 of bits[i/8]. The grid is unchanged when bits is too short.
func (l *Life) RandomizeFrom(bits []byte) (int, error) {
	cells := len(l.cur.Cells())
	if len(bits)*8 < cells {
		return 0, fmt.Errorf("%w: %d bits for %d cells", ErrShortBitSource, len(bits)*8, cells)
	}
	l.fill(bits)
	return l.notify(EventRandomized), nil
}

func (l *Life) fill(bits []byte) {
	cells := l.cur.Cells()
	for i := range cells {
		if core.Bit(bits, i) {
			cells[i] = core.Live
			continue
		}
		cells[i] = core.Dead
	}
	l.generation = 0
}

// Clear kills every cell and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.generation = 0
	l.notify(EventCleared)
}

// Step advances the simulation by one generation and returns the new live
// count. The next generation is computed entirely from the current one
// before it replaces it.
func (l *Life) Step() int {
	w, h := l.cur.W, l.cur.H
	next := l.nxt.Cells()
	cur := l.cur.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			neighbors := l.cur.LiveNeighbors(core.Coord{Row: y, Col: x})
			next[idx] = rule(cur[idx], neighbors)
		}
	}
	l.cur, l.nxt = l.nxt, l.cur
	l.generation++
	return l.notify(EventStepped)
}

func rule(c core.Cell, neighbors int) core.Cell {
	switch {
	case c == core.Live && neighbors < 2:
		return core.Dead
	case c == core.Live && neighbors > 3:
		return core.Dead
	case c == core.Dead && neighbors == 3:
		return core.Live
	default:
		return c
	}
}

func (l *Life) notify(kind EventKind) int {
	live := l.cur.CountLive()
	if l.observer != nil {
		l.observer(Event{Kind: kind, Generation: l.generation, Live: live})
	}
	return live
}

// Parameters reports the simulation's current stats for display.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{
		Groups: []core.ParameterGroup{
			{
				Name: "Grid",
				Params: []core.Parameter{
					{Key: "width", Label: "Width", Value: strconv.Itoa(size.W)},
					{Key: "height", Label: "Height", Value: strconv.Itoa(size.H)},
					{Key: "seed", Label: "Seed", Value: strconv.FormatUint(l.seed, 10)},
				},
			},
			{
				Name: "State",
				Params: []core.Parameter{
					{Key: "generation", Label: "Generation", Value: strconv.Itoa(l.generation)},
					{Key: "live", Label: "Live cells", Value: strconv.Itoa(l.Live())},
				},
			},
		},
	}
}
