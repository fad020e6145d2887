package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"MandelbrotExplorer/explorer"
	"MandelbrotExplorer/misc"
	"MandelbrotExplorer/surface"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type Config struct {
	Debug    bool
	Frames   int
	LogFile  string
	Settings string
	Verbose  bool
}

func main() {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "mandelbrot-explorer [flags]",
		Short: "Interactive Mandelbrot set explorer",
		Long: `Renders the Mandelbrot set in a true-color terminal. Drag with the left
mouse button to pan, use the wheel (or + and -) to zoom at the pointer,
press space to print the current view and q or Escape to quit.`,
		Example: `  # Explore with the default view
  mandelbrot-explorer

  # Start from a saved view and log everything to a file
  mandelbrot-explorer --config view.toml --debug --log-file explorer.log`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return explore(cmd.Context(), cfg)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&cfg.Settings, "config", "c", "", "TOML settings file")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "Log informational messages")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Debug, "debug", "d", false, "Log everything")
	rootCmd.PersistentFlags().StringVar(&cfg.LogFile, "log-file", "", "Also write log messages to this file")

	rootCmd.AddCommand(benchCmd(&cfg))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		stop()
		os.Exit(1)
	}
}

func benchCmd(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Render frames off-screen while zooming into the configured view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return bench(cmd.Context(), *cfg)
		},
	}
	cmd.Flags().IntVarP(&cfg.Frames, "frames", "n", 50, "Number of frames to render")
	return cmd
}

// setupLogging picks the verbosity for this run. quiet is the level used when
// neither --verbose nor --debug is given.
func setupLogging(cfg Config, quiet string) (logger bslogger.Logger, closeFile func(), err error) {
	level := quiet
	if cfg.Verbose {
		level = "normal"
	}
	if cfg.Debug {
		level = "all"
	}

	var file *os.File
	closeFile = func() {}
	if cfg.LogFile != "" {
		file, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return logger, closeFile, errors.Wrapf(err, "opening log file %s", cfg.LogFile)
		}
		closeFile = func() { file.Close() }
	}

	if err = misc.ConfigureLogging(level, file); err != nil {
		closeFile()
		return logger, func() {}, err
	}
	return misc.NewLogger("Main"), closeFile, nil
}

func explore(ctx context.Context, cfg Config) error {
	// Log lines on stdout would tear up the screen
	logger, closeLog, err := setupLogging(cfg, "minimal")
	if err != nil {
		return err
	}
	defer closeLog()

	settings, err := explorer.LoadSettings(cfg.Settings)
	misc.CheckError(err, logger, misc.Fatal)

	terminal, err := surface.NewTerminal()
	if err != nil {
		return err
	}

	// Reports show up on the status line now and on stdout once the screen is gone
	var reports bytes.Buffer
	e, err := explorer.NewExplorer(settings, terminal, io.MultiWriter(terminal, &reports))
	if err != nil {
		terminal.Close()
		return err
	}

	err = e.Run(ctx)
	terminal.Close()
	fmt.Print(reports.String())
	return err
}

func bench(ctx context.Context, cfg Config) error {
	logger, closeLog, err := setupLogging(cfg, "normal")
	if err != nil {
		return err
	}
	defer closeLog()

	if cfg.Frames <= 0 {
		return errors.Errorf("frames must be positive, got %d", cfg.Frames)
	}

	settings, err := explorer.LoadSettings(cfg.Settings)
	misc.CheckError(err, logger, misc.Fatal)

	canvas := surface.NewCanvas()
	e, err := explorer.NewExplorer(settings, canvas, os.Stdout)
	if err != nil {
		return err
	}

	zoomIn := surface.Event{Kind: surface.Wheel, Position: surface.Position{X: 0.5, Y: 0.5}, WheelDelta: 1}
	startTime := time.Now()
	for frame := 0; frame < cfg.Frames; frame++ {
		if ctx.Err() != nil {
			break
		}
		if _, err := e.Step(); err != nil {
			return err
		}
		canvas.Push(zoomIn)
	}
	elapsed := time.Since(startTime)

	logger.Infof("Rendered %d frames in %s (%s per frame), ended at %s",
		e.Frames(), elapsed, elapsed/time.Duration(max(e.Frames(), 1)), e.Viewport())
	return nil
}
