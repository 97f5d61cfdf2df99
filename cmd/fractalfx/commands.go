package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/fractalfx/internal/config"
	"github.com/san-kum/fractalfx/internal/export"
	"github.com/san-kum/fractalfx/internal/gui"
	"github.com/san-kum/fractalfx/internal/metrics"
	"github.com/san-kum/fractalfx/internal/scene"
	"github.com/san-kum/fractalfx/internal/storage"
	"github.com/san-kum/fractalfx/internal/surface"
	"github.com/san-kum/fractalfx/internal/viz"
	"github.com/spf13/cobra"
)

const (
	benchFrames = 300
	reportsDir  = "runs"
)

// loopConfig runs file output unpaced.
func loopConfig(cfg *config.Config) scene.Config {
	return scene.Config{Frames: cfg.Frames}
}

// newLoop builds the configured scene on s with the default metrics attached.
func newLoop(reg *scene.Registry, cfg *config.Config, s surface.Surface) (*scene.Loop, error) {
	w, h := s.Size()
	layers, err := reg.Build(cfg.Scene, w, h, cfg.Seed)
	if err != nil {
		return nil, err
	}
	loop := scene.New(s, layers...)
	loop.SetLogger(logger)
	for _, m := range metrics.Defaults(cfg.FPS) {
		loop.AddMetric(m)
	}
	return loop, nil
}

func interruptContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: render needs a positive frame count", config.ErrInvalid)
	}
	ctx, cancel := interruptContext()
	defer cancel()

	reg := scene.NewRegistry()
	path := output(cfg, "frame.png")

	if variants > 1 {
		e := scene.NewEnsemble(reg, cfg.Scene, variants, cfg.Seed)
		results, err := e.Run(ctx, loopConfig(cfg), func() surface.Surface {
			return surface.NewRaster(cfg.Width, cfg.Height)
		})
		if err != nil {
			return err
		}
		ext := filepath.Ext(path)
		base := strings.TrimSuffix(path, ext)
		for _, v := range results {
			name := fmt.Sprintf("%s-%d%s", base, v.Seed, ext)
			if err := v.Surface.(*surface.Raster).SavePNG(name); err != nil {
				return err
			}
			fmt.Printf("wrote %s (%d frames)\n", name, v.Result.Frames)
		}
		return nil
	}

	r := surface.NewRaster(cfg.Width, cfg.Height)
	loop, err := newLoop(reg, cfg, r)
	if err != nil {
		return err
	}
	result, err := loop.Run(ctx, loopConfig(cfg))
	if err != nil {
		return err
	}
	logger.Debug("run metrics", "metrics", result.Metrics)
	for _, e := range result.Errors {
		logger.Warn("frame error", "error", e)
	}
	if err := r.SavePNG(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d frames in %v)\n", path, result.Frames, result.Duration.Round(time.Millisecond))
	return nil
}

func runRecord(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: record needs a positive frame count", config.ErrInvalid)
	}
	ctx, cancel := interruptContext()
	defer cancel()

	r := surface.NewRaster(cfg.Width, cfg.Height)
	loop, err := newLoop(scene.NewRegistry(), cfg, r)
	if err != nil {
		return err
	}

	rec := export.NewGIFRecorder(cfg.FPS)
	rec.Every = max(every, 1)
	rec.Scale = gifScale
	rec.Dither = dither
	loop.AddObserver(rec)

	result, err := loop.Run(ctx, loopConfig(cfg))
	if err != nil {
		return err
	}
	path := output(cfg, "fractalfx.gif")
	if err := rec.Save(path); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d of %d frames)\n", path, rec.Frames(), result.Frames)
	return nil
}

func runSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Frames <= 0 {
		return fmt.Errorf("%w: svg needs a positive frame count", config.ErrInvalid)
	}

	doc := export.NewSVG(cfg.Width, cfg.Height)
	loop, err := newLoop(scene.NewRegistry(), cfg, doc)
	if err != nil {
		return err
	}
	if _, err := loop.Run(context.Background(), loopConfig(cfg)); err != nil {
		return err
	}

	path := output(cfg, "frame.svg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := doc.WriteTo(f); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d elements)\n", path, doc.Elements())
	return nil
}

func liveOptions(cfg *config.Config) viz.Options {
	fg := string(viz.GetTheme(cfg.Theme).Canvas)
	return viz.Options{
		Scene:   cfg.Scene,
		Seed:    cfg.Seed,
		FPS:     cfg.FPS,
		Scale:   cfg.Scale,
		Theme:   cfg.Theme,
		GIFPath: "fractalfx-live.gif",
		Logger:  logger,
		Snapshot: func(c *viz.Canvas) (string, error) {
			path := fmt.Sprintf("snapshot-%d.svg", time.Now().Unix())
			return path, os.WriteFile(path, []byte(export.CanvasToSVG(c, 4, fg)), 0o644)
		},
	}
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.RunLive(scene.NewRegistry(), liveOptions(cfg))
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(scene.NewRegistry(), gui.Options{
		Scene:       cfg.Scene,
		Seed:        cfg.Seed,
		Width:       cfg.Width,
		Height:      cfg.Height,
		FPS:         cfg.FPS,
		Interactive: !cmd.Flags().Changed("scene") && preset == "" && configFile == "",
		Logger:      logger,
	})
}

// runBench steps each scene unpaced on a raster, sweeping the pointer across
// the surface so ripple-bearing scenes carry a realistic load.
func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	reg := scene.NewRegistry()
	names := args
	if len(names) == 0 {
		names = reg.List()
	}
	n := cfg.Frames
	if n <= 0 {
		n = benchFrames
	}

	var st *storage.Store
	if reportDir != "" {
		st = storage.New(reportDir)
		if err := st.Init(); err != nil {
			return err
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SCENE\tFRAMES\tMEAN OPS\tMAX OPS\tMEAN MS\tIN BUDGET\tPEAK RIPPLES")

	var plots [][]float64
	for _, name := range names {
		r := surface.NewRaster(cfg.Width, cfg.Height)
		layers, err := reg.Build(name, cfg.Width, cfg.Height, cfg.Seed)
		if err != nil {
			return err
		}
		loop := scene.New(r, layers...)
		loop.SetLogger(logger)
		ops := metrics.NewDrawOps()
		ft := metrics.NewFrameTime(n)
		budget := metrics.NewBudget(cfg.FPS)
		live := metrics.NewLiveRipples()
		all := []scene.Metric{ops, ft, budget, live}
		for _, m := range all {
			loop.AddMetric(m)
		}
		trace := &storage.Trace{}
		loop.AddObserver(trace)

		start := time.Now()
		for i := 0; i < n; i++ {
			x := float64(i%cfg.Width) + 0.5
			y := float64(cfg.Height) / 2
			loop.PointerMove(x, y)
			loop.Step()
		}
		elapsed := time.Since(start)

		if st != nil {
			values := make(map[string]float64, len(all))
			for _, m := range all {
				values[m.Name()] = m.Value()
			}
			id, err := st.Save(storage.RunMetadata{
				Scene:    name,
				Seed:     cfg.Seed,
				Width:    cfg.Width,
				Height:   cfg.Height,
				Duration: float64(elapsed) / float64(time.Millisecond),
				Metrics:  values,
			}, trace.Frames)
			if err != nil {
				return err
			}
			logger.Info("report saved", "scene", name, "id", id)
		}

		fmt.Fprintf(w, "%s\t%d\t%.1f\t%d\t%.3f\t%.0f%%\t%.0f\n",
			name, n, ops.Value(), ops.Max(), ft.Value(), budget.Value()*100, live.Value())
		plots = append(plots, ft.Recent())
	}
	w.Flush()

	if plot {
		fmt.Println()
		fmt.Println(asciigraph.PlotMany(plots,
			asciigraph.Height(12),
			asciigraph.Width(72),
			asciigraph.Caption("frame time (ms) per scene: "+strings.Join(names, ", "))))
	}
	return nil
}

func runRuns(cmd *cobra.Command, args []string) error {
	dir := reportsDir
	if len(args) > 0 {
		dir = args[0]
	}
	runs, err := storage.New(dir).List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Printf("no reports in %s\n", dir)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSCENE\tSIZE\tFRAMES\tMEAN OPS\tMEAN MS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%.1f\t%.3f\n",
			r.ID, r.Scene, r.Width, r.Height, r.Frames, r.Metrics["draw_ops"], r.Metrics["frame_ms"])
	}
	return w.Flush()
}
