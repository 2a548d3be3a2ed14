//go:build viewer

package main

import (
	"time"

	"github.com/nsf/termbox-go"

	"github.com/kay-kewl/fluid/internal/app"
	"github.com/kay-kewl/fluid/internal/sim"
)

// runViewer renders one frame per tick until the configured steps run out
// or the user hits Esc. Display only: the simulation takes no input from it.
func runViewer(engine sim.Engine, cfg *app.Config) error {
	if err := termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	quit := make(chan struct{})
	go func() {
		for {
			if ev := termbox.PollEvent(); ev.Type == termbox.EventKey && ev.Key == termbox.KeyEsc {
				close(quit)
				return
			}
		}
	}()

	pacer := app.NewFixedStep(cfg.TPS)
	draw(engine)
	for step := uint(0); step < cfg.Steps; {
		select {
		case <-quit:
			return nil
		default:
		}
		if !pacer.ShouldStep() {
			time.Sleep(time.Millisecond)
			continue
		}
		engine.Step()
		step++
		draw(engine)
	}
	return nil
}

func draw(engine sim.Engine) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	for x, row := range engine.FieldLines() {
		for y, ch := range row {
			fg := termbox.ColorDefault
			switch ch {
			case '#':
				fg = termbox.ColorWhite
			case '.', ' ':
			default:
				fg = termbox.ColorBlue
			}
			termbox.SetCell(y, x, ch, fg, termbox.ColorDefault)
		}
	}
	termbox.Flush()
}
