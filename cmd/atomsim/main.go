package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/atomsim/internal/analysis"
	"github.com/san-kum/atomsim/internal/atom"
	"github.com/san-kum/atomsim/internal/automation"
	"github.com/san-kum/atomsim/internal/config"
	"github.com/san-kum/atomsim/internal/metrics"
	"github.com/san-kum/atomsim/internal/render"
	"github.com/san-kum/atomsim/internal/sim"
	"github.com/san-kum/atomsim/internal/storage"
	"github.com/san-kum/atomsim/internal/viz"
)

var (
	dataDir        string
	configFile     string
	logLevel       string
	seed           int64
	frames         int
	center         string
	gateSeparating bool
	outFile        string
	sceneOut       string
	untilContact   bool
	fitArena       bool
	themeName      string
	protons        int
	neutrons       int
	scale          float64
	numRuns        int
	sweepParam     string
	sweepMin       float64
	sweepMax       float64
	sweepSteps     int
	logger         *slog.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "atomsim",
		Short: "schematic atom kinetics in the terminal",
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = newLogger(logLevel)
			return err
		},
		RunE: runLive,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".atomsim", "data directory")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "run the scene with a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	themeHelp := "theme (" + strings.Join(viz.ThemeNames(), ", ") + ")"
	rootCmd.Flags().StringVar(&themeName, "theme", "nebula", themeHelp)
	liveCmd.Flags().StringVar(&themeName, "theme", "nebula", themeHelp)
	rootCmd.Flags().BoolVar(&fitArena, "fit", false, "stretch the arena width to the terminal")
	liveCmd.Flags().BoolVar(&fitArena, "fit", false, "stretch the arena width to the terminal")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run headless and save the run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runHeadless,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [preset]",
		Short: "render the scene after --frames ticks to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  renderSVG,
	}
	svgCmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	svgCmd.Flags().BoolVar(&untilContact, "until-contact", false, "stop at the first frame with a contact")

	benchCmd := &cobra.Command{
		Use:   "bench [preset]",
		Short: "run seeded worlds concurrently and report throughput",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchScene,
	}
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of seeded runs")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [preset]",
		Short: "report orbit periods and trajectories",
		Args:  cobra.MaximumNArgs(1),
		RunE:  analyzeScene,
	}

	sweepCmd := &cobra.Command{
		Use:   "sweep [preset]",
		Short: "vary one parameter across runs",
		Args:  cobra.MaximumNArgs(1),
		RunE:  sweepScene,
	}
	sweepCmd.Flags().StringVar(&sweepParam, "param", "speed", "parameter ("+strings.Join(automation.SweepParams, ", ")+")")
	sweepCmd.Flags().Float64Var(&sweepMin, "min", 0.5, "first value")
	sweepCmd.Flags().Float64Var(&sweepMax, "max", 2.0, "last value")
	sweepCmd.Flags().IntVar(&sweepSteps, "steps", 4, "number of values")

	sceneCmd := &cobra.Command{
		Use:   "scene [preset]",
		Short: "write the resolved scene as a yaml config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadScene(cmd, args)
			if err != nil {
				return err
			}
			if err := config.Save(sceneOut, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", sceneOut)
			return nil
		},
	}
	sceneCmd.Flags().StringVarP(&sceneOut, "out", "o", "scene.yaml", "output file")

	for _, c := range []*cobra.Command{rootCmd, liveCmd, runCmd, svgCmd, benchCmd, analyzeCmd, sweepCmd, sceneCmd} {
		addSceneFlags(c)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot per-atom speed and position of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write the frames of a saved run as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a saved run as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	layoutCmd := &cobra.Command{
		Use:   "layout",
		Short: "pack a nucleus and print nucleon positions",
		RunE:  printLayout,
	}
	layoutCmd.Flags().IntVar(&protons, "protons", 2, "proton count")
	layoutCmd.Flags().IntVar(&neutrons, "neutrons", 2, "neutron count")
	layoutCmd.Flags().Float64Var(&scale, "scale", config.DefaultScale, "nucleus scale")
	layoutCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")

	batchCmd := &cobra.Command{
		Use:   "batch [file]",
		Short: "run the steps of a batch file",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list scene presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-10s %d atoms, %d frames\n", name, len(p.Atoms), p.Frames)
			}
		},
	}

	rootCmd.AddCommand(liveCmd, runCmd, svgCmd, benchCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, layoutCmd, presetsCmd, analyzeCmd, sweepCmd, batchCmd, sceneCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func addSceneFlags(c *cobra.Command) {
	c.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	c.Flags().Int64Var(&seed, "seed", 0, "random seed")
	c.Flags().IntVar(&frames, "frames", config.DefaultFrames, "frames to simulate")
	c.Flags().StringVar(&center, "center", "", "scene center offset as x,y")
	c.Flags().BoolVar(&gateSeparating, "gate-separating", false, "skip the impulse for separating pairs")
}

func newLogger(level string) (*slog.Logger, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

// loadScene resolves the config file or preset, then applies any flags the
// user set explicitly.
func loadScene(cmd *cobra.Command, args []string) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		c, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = c
	case len(args) > 0:
		cfg = config.GetPreset(args[0])
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %s)", args[0], strings.Join(config.ListPresets(), ", "))
		}
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("gate-separating") {
		cfg.GateSeparating = gateSeparating
	}
	if flags.Changed("center") {
		p, ok := config.ParseCenter(center)
		if !ok {
			logger.Warn("invalid center, using origin", "center", center)
		}
		cfg.Center = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("scene loaded", "scenario", cfg.Scenario, "atoms", len(cfg.Atoms), "seed", cfg.Seed)
	return cfg, nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	m, err := viz.NewModel(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m.WithTheme(themeName).WithFitArena(fitArena), tea.WithAltScreen())
	_, err = p.Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	st.SetLogger(logger)
	if err := st.Init(); err != nil {
		return err
	}

	w, err := sim.Build(cfg)
	if err != nil {
		return err
	}
	s := sim.New(w)
	s.SetLogger(logger)
	for _, m := range metrics.Default(cfg.Arena.HalfWidth, cfg.Arena.HalfHeight) {
		s.AddMetric(m)
	}

	fmt.Printf("running %s for %d frames...\n", cfg.Scenario, cfg.Frames)
	start := time.Now()

	result, err := s.Run(cmd.Context(), sim.Config{Frames: cfg.Frames, KeepFrames: true})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	runID, err := st.Save(cfg.Scenario, cfg.Seed, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.FramesRun)
	fmt.Printf("contacts: %d\n", result.Contacts)
	fmt.Println("\nmetrics:")
	names := make([]string, 0, len(result.Metrics))
	for name := range result.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, name := range names {
		fmt.Fprintf(tw, "  %s\t%.6f\n", name, result.Metrics[name])
	}
	return tw.Flush()
}

func renderSVG(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	w, err := sim.Build(cfg)
	if err != nil {
		return err
	}
	s := sim.New(w)
	s.SetLogger(logger)
	if untilContact {
		f, err := s.RunUntil(cmd.Context(), cfg.Frames, func(f sim.Frame) bool { return f.Contacts > 0 })
		if err != nil {
			return err
		}
		if f.Contacts == 0 {
			logger.Warn("no contact before frame limit", "frames", cfg.Frames)
		}
	} else if _, err := s.Run(cmd.Context(), sim.Config{Frames: cfg.Frames}); err != nil {
		return err
	}

	sink := render.NewSVGSink(cfg.Arena.HalfWidth, cfg.Arena.HalfHeight)
	render.DrawBodies(sink, w.Bodies)

	if outFile == "" {
		_, err := fmt.Print(sink.String())
		return err
	}
	if err := os.WriteFile(outFile, []byte(sink.String()), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s (frame %d)\n", outFile, w.FrameIndex())
	return nil
}

func benchScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}
	if numRuns <= 0 {
		return fmt.Errorf("runs must be positive, got %d", numRuns)
	}

	halfW, halfH := cfg.Arena.HalfWidth, cfg.Arena.HalfHeight
	ens := sim.NewEnsemble(sim.Factory(cfg), func() []sim.Metric {
		return metrics.Default(halfW, halfH)
	}, numRuns, cfg.Seed)

	fmt.Printf("benchmarking %s: %d runs x %d frames\n\n", cfg.Scenario, numRuns, cfg.Frames)
	start := time.Now()
	results, err := ens.Run(cmd.Context(), sim.Config{Frames: cfg.Frames})
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEED\tFRAMES\tCONTACTS\tKE\tCONTAINMENT")
	total := 0
	for i, r := range results {
		total += r.FramesRun
		fmt.Fprintf(w, "%d\t%d\t%d\t%.3f\t%.3f\n",
			cfg.Seed+int64(i), r.FramesRun, r.Contacts,
			r.Metrics["kinetic_energy"], r.Metrics["containment"])
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\n%d frames in %v (%.0f frames/sec)\n", total, elapsed, float64(total)/elapsed.Seconds())
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	st.SetLogger(logger)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENARIO\tTIME\tSEED\tFRAMES\tATOMS\tCONTACTS")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\t%d\n",
			run.ID,
			run.Scenario,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Seed,
			run.Frames,
			len(run.Atoms),
			run.Contacts,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}
	rows, err := st.LoadRows(runID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("scenario: %s\n", meta.Scenario)
	fmt.Printf("frames: %d\n\n", meta.Frames)

	speeds := make(map[string][]float64)
	xs := make(map[string][]float64)
	for _, r := range rows {
		speeds[r.Atom] = append(speeds[r.Atom], r.Speed)
		xs[r.Atom] = append(xs[r.Atom], r.X)
	}

	for _, name := range meta.Atoms {
		if len(speeds[name]) == 0 {
			continue
		}
		graph := asciigraph.PlotMany([][]float64{speeds[name], xs[name]},
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.SeriesColors(asciigraph.Red, asciigraph.Blue),
			asciigraph.SeriesLegends("speed", "x"),
			asciigraph.Caption(name),
		)
		fmt.Println(graph)
		fmt.Println()
	}
	return nil
}

func loadRun(runID string) (*storage.RunMetadata, *sim.Result, error) {
	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rows, err := st.LoadRows(runID)
	if err != nil {
		return nil, nil, err
	}

	result := &sim.Result{
		Metrics:   meta.Metrics,
		Contacts:  meta.Contacts,
		FramesRun: meta.Frames,
	}
	for _, r := range rows {
		n := len(result.Frames)
		if n == 0 || result.Frames[n-1].Index != r.Frame {
			result.Frames = append(result.Frames, sim.Frame{Index: r.Frame, Contacts: r.Contacts})
			n++
		}
		result.Frames[n-1].Atoms = append(result.Frames[n-1].Atoms, sim.AtomState{
			Name: r.Atom,
			Pos:  r2.Vec{X: r.X, Y: r.Y},
			Vel:  r2.Vec{X: r.VX, Y: r.VY},
		})
	}
	return meta, result, nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, result.Frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	meta, result, err := loadRun(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta.Scenario, meta.Seed, result)
}

func printLayout(cmd *cobra.Command, args []string) error {
	if protons < 0 || neutrons < 0 {
		return fmt.Errorf("nucleon counts must not be negative")
	}

	n := atom.NewNucleus(protons, neutrons, scale)
	layout := n.Layout(atom.NewPacker(newRand(seed)))

	fmt.Printf("nucleus: %d protons, %d neutrons, radius %.2f, mass %.0f\n",
		n.Protons, n.Neutrons, n.Radius(), n.Mass())
	if f := layout.Fallbacks(); f > 0 {
		fmt.Printf("fallbacks: %d\n", f)
	}
	fmt.Println()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tKIND\tX\tY\tFALLBACK")
	for i, s := range layout {
		fmt.Fprintf(w, "%d\t%s\t%.2f\t%.2f\t%v\n", i, s.Kind, s.Pos.X, s.Pos.Y, s.Fallback)
	}
	return w.Flush()
}

func analyzeScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	w, err := sim.Build(cfg)
	if err != nil {
		return err
	}
	s := sim.New(w)
	s.SetLogger(logger)
	result, err := s.Run(cmd.Context(), sim.Config{Frames: cfg.Frames, KeepFrames: true})
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", cfg.Scenario)
	fmt.Printf("frames: %d\n\n", result.FramesRun)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ATOM\tELECTRON\tSPEED\tEXPECTED\tMEASURED")
	for i, a := range cfg.Atoms {
		for j, e := range a.Electrons {
			expected := "-"
			if e.Speed != 0 {
				expected = fmt.Sprintf("%.1f", 360/math.Abs(e.Speed))
			}
			sig := analysis.OrbitSignal(result.Frames, i, j)
			period := analysis.CrossingPeriod(sig)
			if period == 0 {
				period = analysis.DominantPeriod(sig)
			}
			fmt.Fprintf(tw, "%s\t%d\t%.2f\t%s\t%.1f\n", a.Name, j, e.Speed, expected, period)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	for i, a := range cfg.Atoms {
		fmt.Printf("\n%s path (o start, x end)\n", a.Name)
		fmt.Print(analysis.PathToASCII(analysis.TrackPath(result.Frames, i), 60, 15))
	}
	return nil
}

func sweepScene(cmd *cobra.Command, args []string) error {
	cfg, err := loadScene(cmd, args)
	if err != nil {
		return err
	}

	sw := automation.Sweep{Param: sweepParam, Min: sweepMin, Max: sweepMax, Steps: sweepSteps}
	results, err := automation.RunSweep(cmd.Context(), cfg, sw, logger)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\tCONTACTS\tKE\tSPEED\tCONTAINMENT\n", strings.ToUpper(sweepParam))
	for _, r := range results {
		fmt.Fprintf(tw, "%.4f\t%d\t%.3f\t%.3f\t%.3f\n",
			r.Value, r.Contacts,
			r.Metrics["kinetic_energy"], r.Metrics["mean_speed"], r.Metrics["containment"])
	}
	return tw.Flush()
}

func runBatch(cmd *cobra.Command, args []string) error {
	b, err := automation.LoadBatch(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	st.SetLogger(logger)
	if err := st.Init(); err != nil {
		return err
	}

	results, err := automation.RunBatch(cmd.Context(), b, st, logger)
	for i, r := range results {
		id := r.RunID
		if id == "" {
			id = "(not saved)"
		}
		fmt.Printf("step %d: %d frames, %d contacts, %s\n", i+1, r.Result.FramesRun, r.Result.Contacts, id)
	}
	return err
}

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
