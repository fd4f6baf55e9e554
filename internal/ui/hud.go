//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"torus-life/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 10
	lineHeight   = 16
)

var keyHelp = []string{
	"space  pause/resume",
	"n      single step",
	"r      reseed (same)",
	"s      reseed (clock)",
	"c      clear",
	"q/esc  quit",
}

// HUD renders the stats panel to the right of the simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	paused     bool
	title      string
}

// NewHUD constructs a HUD for the provided simulation and panel width. A
// non-positive width yields nil, which every method accepts.
func NewHUD(sim core.Sim, width int) *HUD {
	if width <= 0 || sim == nil {
		return nil
	}
	return &HUD{sim: sim, width: width, title: buildTitle(sim)}
}

// Width returns the horizontal space the panel occupies.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the cached parameter snapshot from the simulation.
func (h *HUD) Update(paused bool) {
	if h == nil {
		return
	}
	h.paused = paused
	h.snapshot = h.sim.Parameters()
}

// Draw paints the HUD panel at offsetX with the given height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX, height int) {
	if h == nil || height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawStats()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawStats() {
	face := basicfont.Face7x13
	y := panelPadding + lineHeight
	title := h.title
	if h.paused {
		title += " (paused)"
	}
	text.Draw(h.panel, title, face, panelPadding, y, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	for _, group := range h.snapshot.Groups {
		y += lineHeight + 4
		text.Draw(h.panel, group.Name, face, panelPadding, y, color.RGBA{R: 140, G: 170, B: 220, A: 255})
		for _, p := range group.Params {
			y += lineHeight
			line := fmt.Sprintf("%-11s %s", p.Label, p.Value)
			text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 220, G: 220, B: 230, A: 255})
		}
	}

	y += lineHeight + 4
	for _, line := range keyHelp {
		y += lineHeight
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
	}
}

func buildTitle(sim core.Sim) string {
	name := sim.Name()
	if name == "" {
		return "Stats"
	}
	return strings.ToUpper(name[:1]) + name[1:]
}
