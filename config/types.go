package config

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidConfig is matched by every decoding or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// DefaultSpeed is the playback speed used when none is configured.
const DefaultSpeed = 50

// Config is a decoded configuration file.
type Config struct {
	Grid     *GridBlock     `hcl:"grid,block"`
	Playback *PlaybackBlock `hcl:"playback,block"`
}

// GridBlock describes the board. Zero values mean "use the default".
type GridBlock struct {
	Rows      int     `hcl:"rows,optional"`
	Cols      int     `hcl:"cols,optional"`
	Source    []int   `hcl:"source,optional"`
	Target    []int   `hcl:"target,optional"`
	Obstacles [][]int `hcl:"obstacles,optional"`
	Layout    string  `hcl:"layout,optional"`
}

// PlaybackBlock selects the engine and the replay cadence.
type PlaybackBlock struct {
	Algorithm string `hcl:"algorithm,optional"`
	Speed     int    `hcl:"speed,optional"`
}

// Default returns the configuration an empty file decodes to.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

func (c *Config) applyDefaults() {
	if c.Grid == nil {
		c.Grid = &GridBlock{}
	}
	if c.Playback == nil {
		c.Playback = &PlaybackBlock{}
	}
	g := c.Grid
	if g.Layout == "" {
		if g.Rows == 0 {
			g.Rows = grid.DefaultRows
		}
		if g.Cols == 0 {
			g.Cols = grid.DefaultCols
		}
		if g.Source == nil {
			g.Source = []int{grid.DefaultSource.Row, grid.DefaultSource.Col}
		}
		if g.Target == nil {
			g.Target = []int{grid.DefaultTarget.Row, grid.DefaultTarget.Col}
		}
	}
	if c.Playback.Algorithm == "" {
		c.Playback.Algorithm = search.Dijkstra.String()
	}
	if c.Playback.Speed == 0 {
		c.Playback.Speed = DefaultSpeed
	}
}
