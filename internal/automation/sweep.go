package automation

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/san-kum/atomsim/internal/config"
)

// Sweep runs one scene across evenly spaced values of a single parameter.
type Sweep struct {
	Param    string
	Min, Max float64
	Steps    int
}

type SweepResult struct {
	Value    float64
	Contacts int
	Metrics  map[string]float64
}

// SweepParams lists the parameters a sweep can vary.
var SweepParams = []string{"scale", "nucleon_radius", "wall_margin", "speed"}

// ApplyParam sets a sweep parameter on cfg. speed multiplies every atom's
// velocity by v.
func ApplyParam(cfg *config.Config, name string, v float64) error {
	switch name {
	case "scale":
		cfg.Scale = v
	case "nucleon_radius":
		cfg.NucleonRadius = v
	case "wall_margin":
		cfg.WallMargin = v
	case "speed":
		for i := range cfg.Atoms {
			cfg.Atoms[i].VX *= v
			cfg.Atoms[i].VY *= v
		}
	default:
		return fmt.Errorf("unknown sweep parameter %q (available: %v)", name, SweepParams)
	}
	return nil
}

// RunSweep rebuilds a copy of base for every value. A single step runs at Min.
func RunSweep(ctx context.Context, base *config.Config, sw Sweep, logger *slog.Logger) ([]SweepResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if sw.Steps <= 0 {
		return nil, fmt.Errorf("sweep steps must be positive, got %d", sw.Steps)
	}

	step := 0.0
	if sw.Steps > 1 {
		step = (sw.Max - sw.Min) / float64(sw.Steps-1)
	}

	results := make([]SweepResult, 0, sw.Steps)
	for i := 0; i < sw.Steps; i++ {
		v := sw.Min + float64(i)*step

		cfg := *base
		cfg.Atoms = append([]config.AtomConfig(nil), base.Atoms...)
		if err := ApplyParam(&cfg, sw.Param, v); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return results, fmt.Errorf("%s=%.4f: %w", sw.Param, v, err)
		}

		res, err := runScene(ctx, &cfg, logger, false)
		if err != nil {
			return results, fmt.Errorf("%s=%.4f: %w", sw.Param, v, err)
		}
		results = append(results, SweepResult{Value: v, Contacts: res.Contacts, Metrics: res.Metrics})
		logger.Debug("sweep point", "param", sw.Param, "value", v, "contacts", res.Contacts)
	}
	return results, nil
}
