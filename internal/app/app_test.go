package app

import (
	"bytes"
	"errors"
	"flag"
	"log"
	"strings"
	"testing"

	"torus-life/pkg/core"
	"torus-life/pkg/sims/life"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-w", "12", "-h", "8", "-seed", "7", "-order", "bgra", "-quiet"}); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 12 || cfg.Height != 8 || cfg.Seed != 7 || cfg.Order != "bgra" || !cfg.Quiet {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestNewSimAppliesConfig(t *testing.T) {
	cfg := NewConfig()
	cfg.Width, cfg.Height, cfg.Seed = 16, 9, 3
	cfg.Order = "abgr"

	sim, err := NewSim(cfg, nil)
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	if sim.Size() != (core.Size{W: 16, H: 9}) {
		t.Fatalf("size=%+v", sim.Size())
	}
	if sim.Config().Order != life.OrderABGR {
		t.Fatalf("order=%s", sim.Config().Order)
	}

	ref, _ := life.New(16, 9)
	ref.Randomize(3)
	if sim.Live() != ref.Live() || sim.Seed() != 3 {
		t.Fatalf("NewSim did not seed with 3: live=%d, expected %d", sim.Live(), ref.Live())
	}
}

func TestNewSimRejectsBadInput(t *testing.T) {
	cfg := NewConfig()
	cfg.Width = 0
	if _, err := NewSim(cfg, nil); !errors.Is(err, core.ErrInvalidSize) {
		t.Fatalf("err=%v, expected ErrInvalidSize", err)
	}

	cfg = NewConfig()
	cfg.Order = "rgb"
	if _, err := NewSim(cfg, nil); !errors.Is(err, life.ErrInvalidOrder) {
		t.Fatalf("err=%v, expected ErrInvalidOrder", err)
	}

	cfg = NewConfig()
	cfg.Live = "green"
	if _, err := NewSim(cfg, nil); !errors.Is(err, life.ErrInvalidColor) {
		t.Fatalf("err=%v, expected ErrInvalidColor", err)
	}
}

func TestLogObserver(t *testing.T) {
	if LogObserver(log.Default(), true) != nil {
		t.Fatal("quiet observer should be nil")
	}

	var buf bytes.Buffer
	logger := log.New(&buf, "", 0)
	cfg := NewConfig()
	cfg.Width, cfg.Height = 8, 8
	sim, err := NewSim(cfg, LogObserver(logger, false))
	if err != nil {
		t.Fatalf("NewSim: %v", err)
	}
	sim.Step()

	out := buf.String()
	if !strings.Contains(out, "randomized, resulting in") {
		t.Fatalf("missing randomize line in %q", out)
	}
	if !strings.Contains(out, "generation 1:") {
		t.Fatalf("missing step line in %q", out)
	}
}
