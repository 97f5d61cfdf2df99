package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/gg"
	"github.com/san-kum/fractalfx/internal/config"
	"github.com/san-kum/fractalfx/internal/scene"
	"github.com/san-kum/fractalfx/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	sceneName  string
	width      int
	height     int
	frames     int
	frameRate  int
	seed       int64
	scale      float64
	outPath    string
	logLevel   string
	theme      string
	// render
	variants int
	// record
	every    int
	gifScale float64
	dither   bool
	// bench
	plot      bool
	reportDir string
)

var logger = slog.Default()

// main registers commands and flags and runs the root command. With no
// subcommand the terminal scene picker is shown.
func main() {
	rootCmd := &cobra.Command{
		Use:   "fractalfx",
		Short: "decorative fractal scenes for terminal, window and file output",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogger(logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.RunInteractive(scene.NewRegistry(), liveOptions(cfg))
		},
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&sceneName, "scene", config.DefaultScene, "scene name")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWidth, "surface width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultHeight, "surface height in pixels")
	rootCmd.PersistentFlags().IntVar(&frames, "frames", config.DefaultFrames, "frames to render (0 runs until stopped)")
	rootCmd.PersistentFlags().IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed for speckles and particles")
	rootCmd.PersistentFlags().Float64Var(&scale, "scale", config.DefaultScale, "braille dots per surface pixel (terminal)")
	rootCmd.PersistentFlags().StringVar(&theme, "theme", "violet", "terminal theme")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render the last frame of a run to PNG",
		RunE:  runRender,
	}
	renderCmd.Flags().StringVarP(&outPath, "out", "o", "frame.png", "output file")
	renderCmd.Flags().IntVar(&variants, "variants", 1, "render this many seeds in parallel")

	recordCmd := &cobra.Command{
		Use:   "record",
		Short: "record a run as an animated GIF",
		RunE:  runRecord,
	}
	recordCmd.Flags().StringVarP(&outPath, "out", "o", "fractalfx.gif", "output file")
	recordCmd.Flags().IntVar(&every, "every", 1, "capture one frame in every N")
	recordCmd.Flags().Float64Var(&gifScale, "gif-scale", 1.0, "output size relative to the surface")
	recordCmd.Flags().BoolVar(&dither, "dither", false, "Floyd-Steinberg dithering")

	svgCmd := &cobra.Command{
		Use:   "svg",
		Short: "render the last frame of a run to SVG",
		RunE:  runSVG,
	}
	svgCmd.Flags().StringVarP(&outPath, "out", "o", "frame.svg", "output file")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run a scene in the terminal",
		RunE:  runLive,
	}

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "run a scene in a window",
		RunE:  runGUI,
	}

	benchCmd := &cobra.Command{
		Use:   "bench [scene...]",
		Short: "measure draw ops and frame time per scene",
		RunE:  runBench,
	}
	benchCmd.Flags().BoolVar(&plot, "plot", false, "plot frame times")
	benchCmd.Flags().StringVar(&reportDir, "report", "", "save per-frame reports under this directory")

	runsCmd := &cobra.Command{
		Use:   "runs [dir]",
		Short: "list saved bench reports",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runRuns,
	}

	scenesCmd := &cobra.Command{
		Use:   "scenes",
		Short: "list available scenes",
		Run: func(cmd *cobra.Command, args []string) {
			reg := scene.NewRegistry()
			for _, name := range reg.List() {
				fmt.Printf("  %-12s %s\n", name, reg.Describe(name))
			}
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Printf("  %-10s scene=%s %dx%d frames=%d fps=%d\n", name, p.Scene, p.Width, p.Height, p.Frames, p.FPS)
			}
		},
	}

	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a yaml file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "fractalfx.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}

	rootCmd.AddCommand(renderCmd, recordCmd, svgCmd, liveCmd, guiCmd, benchCmd, runsCmd, scenesCmd, presetsCmd, initCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogger(level string) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	return nil
}

// resolveConfig layers defaults, preset, config file and explicit flags,
// later sources winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p, err := config.GetPreset(preset)
		if err != nil {
			return nil, fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("scene") || (preset == "" && configFile == "") {
		cfg.Scene = sceneName
	}
	if flags.Changed("width") {
		cfg.Width = width
	}
	if flags.Changed("height") {
		cfg.Height = height
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("scale") {
		cfg.Scale = scale
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("out") {
		cfg.Output = outPath
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	} else if cfg.LogLevel != "" && cfg.LogLevel != logLevel {
		if err := setupLogger(cfg.LogLevel); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger.Debug("config resolved", "scene", cfg.Scene, "width", cfg.Width, "height", cfg.Height, "frames", cfg.Frames, "seed", cfg.Seed)
	return cfg, nil
}

// output returns the configured output path or the command's default. The
// --out flags share one variable, so the default is passed explicitly.
func output(cfg *config.Config, def string) string {
	if cfg.Output != "" {
		return cfg.Output
	}
	return def
}
