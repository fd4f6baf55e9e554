package app

import (
	"fmt"
	"log"

	"torus-life/pkg/sims/life"
)

// LogObserver returns an observer that writes each event's live count to
// logger. It returns nil when quiet is set so the engine skips notifications.
func LogObserver(logger *log.Logger, quiet bool) life.Observer {
	if quiet || logger == nil {
		return nil
	}
	return func(e life.Event) {
		switch e.Kind {
		case life.EventRandomized:
			logger.Printf("randomized, resulting in %d live cells", e.Live)
		case life.EventStepped:
			logger.Printf("generation %d: %d live cells", e.Generation, e.Live)
		default:
			logger.Printf("%s: %d live cells", e.Kind, e.Live)
		}
	}
}

// NewSim builds a Life engine from cfg, wires the observer and applies the
// initial seed. Malformed flag values are reported rather than replaced by
// defaults.
func NewSim(cfg *Config, observer life.Observer) (*life.Life, error) {
	if _, err := life.ParseByteOrder(cfg.Order); err != nil {
		return nil, fmt.Errorf("-order: %w", err)
	}
	if _, err := life.ParseColor(cfg.Live); err != nil {
		return nil, fmt.Errorf("-live: %w", err)
	}
	if _, err := life.ParseColor(cfg.Dead); err != nil {
		return nil, fmt.Errorf("-dead: %w", err)
	}
	simCfg := life.FromMap(cfg.SimConfig())
	simCfg.Width, simCfg.Height = cfg.Width, cfg.Height
	sim, err := life.NewWithConfig(simCfg)
	if err != nil {
		return nil, err
	}
	sim.SetObserver(observer)
	sim.Randomize(simCfg.Seed)
	return sim, nil
}
