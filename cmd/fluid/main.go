package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/kay-kewl/fluid/internal/app"
	"github.com/kay-kewl/fluid/internal/sim"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	lines, err := readLines(cfg.File)
	if err != nil {
		return fmt.Errorf("reading field: %w", err)
	}

	engine, err := sim.NewEngine(cfg.PType, cfg.VType, cfg.VFlowType, lines, sim.Options{
		Seed:   cfg.Seed,
		Static: cfg.Static,
		Logger: log.Default(),
	})
	if err != nil {
		return err
	}

	start := time.Now()
	if cfg.View {
		err = runViewer(engine, cfg)
	} else {
		err = sim.Run(engine, cfg.Steps, cfg.Checkpoint, func(step uint) error {
			return writeCheckpoint(engine, cfg, step)
		})
	}
	if err != nil {
		return err
	}
	log.Printf("simulation took %s", time.Since(start))
	return nil
}

func writeCheckpoint(engine sim.Engine, cfg *app.Config, step uint) error {
	log.Printf("tick %d:", step)
	for _, row := range engine.FieldLines() {
		log.Print(row)
	}

	path := fmt.Sprintf("%s_%d.txt", cfg.CheckpointPrefix, step)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("writing checkpoint: %w", err)
	}
	if err := engine.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("writing checkpoint %s: %w", path, err)
	}
	return f.Close()
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
