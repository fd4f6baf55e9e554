package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is the contract a host needs to drive and display an automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed uint64)
	Clear()
	Step() int
	Generation() int
	RenderPixels() []byte
	Parameters() ParameterSnapshot
}
