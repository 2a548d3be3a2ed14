//go:build !viewer

package main

import (
	"errors"

	"github.com/kay-kewl/fluid/internal/app"
	"github.com/kay-kewl/fluid/internal/sim"
)

func runViewer(sim.Engine, *app.Config) error {
	return errors.New("the live view requires the viewer build tag; rebuild with `-tags viewer`")
}
