package config

import (
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/pkg/errors"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
	"github.com/katalvlaran/gridpath/trace"
)

// evalContext predeclares the algorithm names as variables.
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(search.Algorithms))
	for _, a := range search.Algorithms {
		vars[a.String()] = cty.StringVal(a.String())
	}

	return &hcl.EvalContext{Variables: vars}
}

// Load decodes and validates the HCL file at path.
func Load(path string) (*Config, error) {
	var c Config
	if err := hclsimple.DecodeFile(path, evalContext(), &c); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "decode %s: %v", path, err)
	}

	return c.finish()
}

// Parse decodes src as if read from filename. The filename suffix selects
// the syntax: ".hcl" for native HCL, ".json" for HCL JSON.
func Parse(filename string, src []byte) (*Config, error) {
	var c Config
	if err := hclsimple.Decode(filename, src, evalContext(), &c); err != nil {
		return nil, errors.Wrapf(ErrInvalidConfig, "decode %s: %v", filename, err)
	}

	return c.finish()
}

func (c *Config) finish() (*Config, error) {
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks everything that does not need a built grid.
func (c *Config) Validate() error {
	if _, err := c.Algorithm(); err != nil {
		return err
	}
	if s := c.Playback.Speed; s < trace.MinSpeed || s > trace.MaxSpeed {
		return errors.Wrapf(ErrInvalidConfig, "playback.speed %d outside %d..%d", s, trace.MinSpeed, trace.MaxSpeed)
	}
	g := c.Grid
	if g.Layout != "" {
		return nil
	}
	if g.Rows < 1 || g.Cols < 1 {
		return errors.Wrapf(ErrInvalidConfig, "grid size %dx%d", g.Rows, g.Cols)
	}

	return nil
}

// Algorithm resolves playback.algorithm.
func (c *Config) Algorithm() (search.Algorithm, error) {
	a, err := search.ParseAlgorithm(c.Playback.Algorithm)
	if err != nil {
		return 0, errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return a, nil
}

// Interval is the delay between playback steps for the configured speed.
func (c *Config) Interval() time.Duration {
	return trace.IntervalForSpeed(c.Playback.Speed)
}

// Build constructs the configured grid.
func (c *Config) Build() (*grid.Grid, error) {
	var (
		g   *grid.Grid
		err error
	)
	gb := c.Grid
	if gb.Layout != "" {
		g, err = grid.Parse(gb.Layout)
		if err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
	} else {
		var src, dst grid.Position
		if src, err = position("grid.source", gb.Source); err != nil {
			return nil, err
		}
		if dst, err = position("grid.target", gb.Target); err != nil {
			return nil, err
		}
		if g, err = grid.New(gb.Rows, gb.Cols, src, dst); err != nil {
			return nil, errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}

	for i, raw := range gb.Obstacles {
		p, err := position("grid.obstacles", raw)
		if err != nil {
			return nil, errors.WithMessagef(err, "entry %d", i)
		}
		switch g.Role(p) {
		case grid.Source, grid.Target:
			return nil, errors.Wrapf(ErrInvalidConfig, "grid.obstacles entry %d: %v is the %s", i, p, g.Role(p))
		}
		if err = g.PlaceObstacle(p); err != nil {
			return nil, errors.Wrapf(ErrInvalidConfig, "grid.obstacles entry %d: %v", i, err)
		}
	}

	return g, nil
}

// position converts a [row, col] pair.
func position(field string, v []int) (grid.Position, error) {
	if len(v) != 2 {
		return grid.Position{}, errors.Wrapf(ErrInvalidConfig, "%s wants [row, col], got %v", field, v)
	}

	return grid.Position{Row: v[0], Col: v[1]}, nil
}
