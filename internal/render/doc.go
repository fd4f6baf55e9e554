// Package render draws automaton pixel buffers onto ebiten images. It is only
// populated in builds with the ebiten tag.
package render
