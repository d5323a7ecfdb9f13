package automation

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/metrics"
	"github.com/san-kum/atomsim/internal/sim"
	"github.com/san-kum/atomsim/internal/storage"
)

// Batch is a scripted sequence of headless runs.
type Batch struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Steps       []Step `yaml:"steps"`
}

// Step names a scene by preset or config file. Zero fields keep the
// scene's own values.
type Step struct {
	Preset         string `yaml:"preset"`
	Config         string `yaml:"config"`
	Seed           int64  `yaml:"seed"`
	Frames         int    `yaml:"frames"`
	GateSeparating bool   `yaml:"gate_separating"`
	Save           bool   `yaml:"save"`
}

type StepResult struct {
	Step   Step
	RunID  string
	Result *sim.Result
}

// LoadBatch reads a batch file. Relative config paths in its steps are
// resolved against the batch file's directory.
func LoadBatch(path string) (*Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var b Batch
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(b.Steps) == 0 {
		return nil, fmt.Errorf("batch %s has no steps", path)
	}

	dir := filepath.Dir(path)
	for i := range b.Steps {
		if c := b.Steps[i].Config; c != "" && !filepath.IsAbs(c) {
			b.Steps[i].Config = filepath.Join(dir, c)
		}
	}
	return &b, nil
}

// Scene resolves the step to a validated config.
func (s Step) Scene() (*config.Config, error) {
	var cfg *config.Config
	switch {
	case s.Config != "":
		c, err := config.Load(s.Config)
		if err != nil {
			return nil, err
		}
		cfg = c
	case s.Preset != "":
		cfg = config.GetPreset(s.Preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", s.Preset)
		}
	default:
		cfg = config.DefaultConfig()
	}

	if s.Seed != 0 {
		cfg.Seed = s.Seed
	}
	if s.Frames > 0 {
		cfg.Frames = s.Frames
	}
	if s.GateSeparating {
		cfg.GateSeparating = true
	}
	return cfg, cfg.Validate()
}

// RunBatch executes the steps in order. Steps marked save are written to st
// when it is non-nil. On error the results of completed steps are returned.
func RunBatch(ctx context.Context, b *Batch, st *storage.Store, logger *slog.Logger) ([]StepResult, error) {
	if logger == nil {
		logger = slog.Default()
	}
	results := make([]StepResult, 0, len(b.Steps))

	for i, step := range b.Steps {
		cfg, err := step.Scene()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		logger.Info("batch step", "batch", b.Name, "step", i+1, "of", len(b.Steps), "scenario", cfg.Scenario)

		result, err := runScene(ctx, cfg, logger, true)
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}

		sr := StepResult{Step: step, Result: result}
		if step.Save && st != nil {
			id, err := st.Save(cfg.Scenario, cfg.Seed, result)
			if err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			sr.RunID = id
		}
		results = append(results, sr)
	}

	return results, nil
}

func runScene(ctx context.Context, cfg *config.Config, logger *slog.Logger, keep bool) (*sim.Result, error) {
	w, err := sim.Build(cfg)
	if err != nil {
		return nil, err
	}
	s := sim.New(w)
	s.SetLogger(logger)
	for _, m := range metrics.Default(cfg.Arena.HalfWidth, cfg.Arena.HalfHeight) {
		s.AddMetric(m)
	}
	return s.Run(ctx, sim.Config{Frames: cfg.Frames, KeepFrames: keep})
}
