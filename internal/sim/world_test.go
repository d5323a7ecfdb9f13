package sim_test

import (
	"context"
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/sim"
)

type countingMetric struct {
	frames int
}

func (c *countingMetric) Name() string        { return "frames" }
func (c *countingMetric) Observe(f sim.Frame) { c.frames++ }
func (c *countingMetric) Value() float64      { return float64(c.frames) }
func (c *countingMetric) Reset()              { c.frames = 0 }

type recorder struct {
	indices []int
}

func (r *recorder) OnFrame(f sim.Frame) { r.indices = append(r.indices, f.Index) }

var _ = Describe("World", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.GetPreset("collide")
		cfg.Seed = 42
	})

	It("builds one body per configured atom", func() {
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Bodies).To(HaveLen(2))
		Expect(w.Bodies[0].Name).To(Equal("Helium-A"))
		Expect(w.Bodies[0].Layout()).To(HaveLen(4))
		Expect(w.Arena.Margin).To(Equal(config.DefaultWallMargin))
	})

	It("offsets every atom by the configured center", func() {
		cfg.Center = config.Point{X: 10, Y: -5}
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(w.Bodies[0].Pos.X).To(Equal(-190.0))
		Expect(w.Bodies[0].Pos.Y).To(Equal(-5.0))
	})

	It("rejects an invalid config", func() {
		cfg.Frames = 0
		_, err := sim.Build(cfg)
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})

	It("packs identical layouts for identical seeds", func() {
		a, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		b, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(a.Bodies[1].Layout()).To(Equal(b.Bodies[1].Layout()))
	})

	It("moves bodies, then resolves, then orbits electrons", func() {
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())

		f := w.Step()
		Expect(f.Index).To(Equal(1))
		Expect(w.FrameIndex()).To(Equal(1))
		Expect(f.Atoms[0].Pos.X).To(Equal(-197.0))

		// electrons are placed around the post-move center
		for _, e := range f.Atoms[0].Electrons {
			d := math.Hypot(e.X-f.Atoms[0].Pos.X, e.Y-f.Atoms[0].Pos.Y)
			Expect(d).To(BeNumerically("~", config.DefaultOrbitRadius, 1e-9))
		}
	})

	It("bounces the helium pair off each other", func() {
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())

		contacts := 0
		for i := 0; i < 80; i++ {
			contacts += w.Step().Contacts
		}
		Expect(contacts).To(BeNumerically(">", 0))
		Expect(w.Bodies[0].Vel.X).To(BeNumerically("<", 0))
		Expect(w.Bodies[1].Vel.X).To(BeNumerically(">", 0))
	})

	It("keeps bodies within the arena bounds", func() {
		cfg = config.GetPreset("gas")
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())

		xLim := w.Arena.HalfWidth - w.Arena.Margin
		yLim := w.Arena.HalfHeight - w.Arena.Margin
		for i := 0; i < 500; i++ {
			w.Step()
			Expect(w.Valid()).To(BeTrue())
		}
		for _, b := range w.Bodies {
			// de-penetration may push past a wall until the next update
			Expect(math.Abs(b.Pos.X)).To(BeNumerically("<=", xLim+2*b.Radius()))
			Expect(math.Abs(b.Pos.Y)).To(BeNumerically("<=", yLim+2*b.Radius()))
		}
	})

	It("handles atoms stacked on the same point", func() {
		cfg.Atoms[1].X = cfg.Atoms[0].X
		cfg.Atoms[1].VX = cfg.Atoms[0].VX
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())

		f := w.Step()
		Expect(f.Contacts).To(Equal(1))
		Expect(w.Valid()).To(BeTrue())
	})

	It("tracks arena resizes", func() {
		w, err := sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
		w.Resize(100, 80)
		Expect(w.Arena.HalfWidth).To(Equal(100.0))
		Expect(w.Arena.HalfHeight).To(Equal(80.0))
	})
})

var _ = Describe("Simulator", func() {
	var (
		w   *sim.World
		err error
	)

	BeforeEach(func() {
		cfg := config.GetPreset("collide")
		w, err = sim.Build(cfg)
		Expect(err).NotTo(HaveOccurred())
	})

	It("runs the requested number of frames", func() {
		s := sim.New(w)
		m := &countingMetric{}
		r := &recorder{}
		s.AddMetric(m)
		s.AddObserver(r)

		res, err := s.Run(context.Background(), sim.Config{Frames: 50, KeepFrames: true})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.FramesRun).To(Equal(50))
		Expect(res.Frames).To(HaveLen(50))
		Expect(res.Final.Index).To(Equal(50))
		Expect(res.Metrics).To(HaveKeyWithValue("frames", 50.0))
		Expect(r.indices).To(HaveLen(50))
		Expect(r.indices[0]).To(Equal(1))
	})

	It("drops snapshots when not keeping frames", func() {
		res, err := sim.New(w).Run(context.Background(), sim.Config{Frames: 10})
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Frames).To(BeEmpty())
		Expect(res.FramesRun).To(Equal(10))
	})

	DescribeTable("rejects invalid run configs",
		func(frames int) {
			_, err := sim.New(w).Run(context.Background(), sim.Config{Frames: frames})
			Expect(err).To(MatchError(sim.ErrInvalidConfig))
		},
		Entry("zero frames", 0),
		Entry("negative frames", -5),
	)

	It("refuses an empty world", func() {
		empty := sim.NewWorld(nil, w.Arena, w.Resolver)
		_, err := sim.New(empty).Run(context.Background(), sim.DefaultConfig())
		Expect(err).To(MatchError(sim.ErrNoBodies))
	})

	It("stops between ticks when the context is canceled", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		res, err := sim.New(w).Run(ctx, sim.Config{Frames: 100})
		Expect(err).To(MatchError(context.Canceled))
		Expect(res.FramesRun).To(Equal(0))
	})

	It("reports invalid state with the frame number", func() {
		w.Bodies[0].Vel.X = math.NaN()
		_, err := sim.New(w).Run(context.Background(), sim.Config{Frames: 10})
		Expect(err).To(MatchError(sim.ErrInvalidState))

		var simErr *sim.SimError
		Expect(err).To(BeAssignableToTypeOf(simErr))
		Expect(err.Error()).To(Equal("frame 1: invalid body state"))
	})

	It("steps until the callback declines", func() {
		n := 0
		err := sim.New(w).RunWithCallback(context.Background(), func(f sim.Frame) bool {
			n++
			return n < 7
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(n).To(Equal(7))
		Expect(w.FrameIndex()).To(Equal(7))
	})

	It("runs until the first contact", func() {
		f, err := sim.New(w).RunUntil(context.Background(), 300, func(f sim.Frame) bool { return f.Contacts > 0 })
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Contacts).To(BeNumerically(">", 0))
		Expect(f.Index).To(BeNumerically("<", 300))
		Expect(w.FrameIndex()).To(Equal(f.Index))
	})

	It("stops at the frame limit when the condition never holds", func() {
		f, err := sim.New(w).RunUntil(context.Background(), 5, func(sim.Frame) bool { return false })
		Expect(err).NotTo(HaveOccurred())
		Expect(f.Index).To(Equal(5))

		_, err = sim.New(w).RunUntil(context.Background(), 0, func(sim.Frame) bool { return true })
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})
})

var _ = Describe("Ensemble", func() {
	It("runs independent seeded worlds", func() {
		cfg := config.GetPreset("gas")
		metrics := func() []sim.Metric { return []sim.Metric{&countingMetric{}} }

		e := sim.NewEnsemble(sim.Factory(cfg), metrics, 4, 100)
		results, err := e.Run(context.Background(), sim.Config{Frames: 30})
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		for _, r := range results {
			Expect(r.FramesRun).To(Equal(30))
			Expect(r.Metrics["frames"]).To(Equal(30.0))
		}
	})

	It("propagates factory errors", func() {
		cfg := config.GetPreset("gas")
		cfg.Frames = 0
		_, err := sim.NewEnsemble(sim.Factory(cfg), nil, 2, 1).Run(context.Background(), sim.Config{Frames: 5})
		Expect(err).To(MatchError(sim.ErrInvalidConfig))
	})
})
