package sim

import (
	"context"
	"fmt"
	"log/slog"
)

type Simulator struct {
	world     *World
	metrics   []Metric
	observers []Observer
	logger    *slog.Logger
}

func New(world *World) *Simulator {
	return &Simulator{
		world:     world,
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
		logger:    slog.Default(),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetLogger(l *slog.Logger) {
	if l != nil {
		s.logger = l
	}
}

func (s *Simulator) World() *World { return s.world }

// Run advances the world cfg.Frames ticks. A tick always completes; the
// context is only checked between ticks.
func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validate(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Metrics: make(map[string]float64),
	}
	if cfg.KeepFrames {
		result.Frames = make([]Frame, 0, cfg.Frames)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; i < cfg.Frames; i++ {
		select {
		case <-ctx.Done():
			s.logger.Info("simulation canceled", "frame", s.world.FrameIndex())
			s.collect(result)
			return result, ctx.Err()
		default:
		}

		f := s.world.Step()
		if !s.world.Valid() {
			s.collect(result)
			return result, &SimError{Frame: f.Index, Message: "invalid body state", Wrapped: ErrInvalidState}
		}

		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, o := range s.observers {
			o.OnFrame(f)
		}

		result.Contacts += f.Contacts
		result.FramesRun++
		result.Final = f
		if cfg.KeepFrames {
			result.Frames = append(result.Frames, f)
		}
	}

	s.collect(result)
	s.logger.Debug("simulation finished", "frames", result.FramesRun, "contacts", result.Contacts)
	return result, nil
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

func (s *Simulator) validate(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, cfg.Frames)
	}
	if len(s.world.Bodies) == 0 {
		return ErrNoBodies
	}
	return nil
}

// RunWithCallback steps until the callback returns false or the context is
// done. It suits runs that stop on a condition rather than a frame count.
func (s *Simulator) RunWithCallback(ctx context.Context, callback func(Frame) bool) error {
	if len(s.world.Bodies) == 0 {
		return ErrNoBodies
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		f := s.world.Step()
		if !s.world.Valid() {
			return &SimError{Frame: f.Index, Message: "invalid body state", Wrapped: ErrInvalidState}
		}
		if !callback(f) {
			return nil
		}
	}
}

// RunUntil steps until stop reports true or maxFrames ticks have run, and
// returns the last frame.
func (s *Simulator) RunUntil(ctx context.Context, maxFrames int, stop func(Frame) bool) (Frame, error) {
	if maxFrames <= 0 {
		return Frame{}, fmt.Errorf("%w: frames must be positive, got %d", ErrInvalidConfig, maxFrames)
	}

	var last Frame
	err := s.RunWithCallback(ctx, func(f Frame) bool {
		last = f
		return f.Index < maxFrames && !stop(f)
	})
	return last, err
}
