package main

import (
	"bufio"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/pkg/core"
)

const clearScreen = "\x1b[H\x1b[2J"

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 64, 24
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := log.New(os.Stderr, "lifetext: ", log.LstdFlags)
	sim, err := app.NewSim(cfg, app.LogObserver(logger, cfg.Quiet))
	if err != nil {
		logger.Fatal(err)
	}

	out := bufio.NewWriter(os.Stdout)
	timer := core.NewFixedStep(cfg.TPS)
	for gen := 0; cfg.Steps <= 0 || gen <= cfg.Steps; gen++ {
		if gen > 0 {
			timer.Wait()
			sim.Step()
		}
		out.WriteString(clearScreen)
		out.WriteString(sim.RenderText())
		if err := out.Flush(); err != nil {
			logger.Fatal(err)
		}
	}
}
