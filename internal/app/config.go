// Package app holds the command-line configuration and run pacing shared by
// the fluid binary's entry points.
package app

import (
	"flag"

	"github.com/kay-kewl/fluid/pkg/core"
)

// Config represents the command-line parameters for the simulator.
type Config struct {
	File             string
	PType            string
	VType            string
	VFlowType        string
	Steps            uint
	Checkpoint       uint
	CheckpointPrefix string
	Seed             int64
	Static           bool
	View             bool
	TPS              int
}

// NewConfig returns a Config populated with the stock defaults.
func NewConfig() *Config {
	return &Config{
		File:             "data/default.txt",
		PType:            "FIXED(32,16)",
		VType:            "FIXED(32,16)",
		VFlowType:        "FIXED(32,16)",
		Steps:            10000,
		Checkpoint:       1,
		CheckpointPrefix: "checkpoint",
		Seed:             core.DefaultSeed,
		TPS:              60,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.File, "file", c.File, "field description file")
	fs.StringVar(&c.PType, "p-type", c.PType, "pressure numeric type tag")
	fs.StringVar(&c.VType, "v-type", c.VType, "velocity numeric type tag")
	fs.StringVar(&c.VFlowType, "v-flow-type", c.VFlowType, "velocity-flow numeric type tag")
	fs.UintVar(&c.Steps, "steps", c.Steps, "number of ticks to simulate")
	fs.UintVar(&c.Checkpoint, "checkpoint", c.Checkpoint, "ticks between checkpoints (0 disables)")
	fs.StringVar(&c.CheckpointPrefix, "checkpoint-prefix", c.CheckpointPrefix, "checkpoint file name prefix")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the stochastic kernels")
	fs.BoolVar(&c.Static, "static", c.Static, "use static-capacity storage")
	fs.BoolVar(&c.View, "view", c.View, "render the field live in the terminal (viewer build)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "viewer ticks per second")
}
