package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"colorgrow/internal/app"
	"colorgrow/internal/core"
	"colorgrow/internal/render"
	_ "colorgrow/internal/sims/colorgrow"
)

func main() {
	cfg := app.NewConfig()
	cfg.Delay = 0
	cfg.Bind(flag.CommandLine)
	svgPath := flag.String("svg", "", "write the final grid as SVG to this path")
	videoPath := flag.String("video", "", "record every generation to this MJPEG AVI file")
	chartPath := flag.String("chart", "", "write a PNG chart of the status distance per generation")
	fps := flag.Int("fps", 10, "frame rate of the recorded video")
	quiet := flag.Bool("quiet", false, "do not log the status line of every generation")
	flag.Parse()

	if err := run(cfg, *svgPath, *videoPath, *chartPath, *fps, *quiet); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config, svgPath, videoPath, chartPath string, fps int, quiet bool) error {
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	sim, ok := factory(cfg.SimConfig()).(app.Sim)
	if !ok {
		return fmt.Errorf("sim %q has no color grid", cfg.Sim)
	}

	logger := log.Default()
	opts := []app.Option{app.WithLogger(logger)}
	if !quiet {
		opts = append(opts, app.WithObserver(app.StatusLogger{Logger: logger}))
	}
	var rec *render.Recorder
	if videoPath != "" {
		rec = render.NewRecorder(videoPath, cfg.Scale, fps)
		opts = append(opts, app.WithObserver(rec))
	}
	var distances *render.DistanceChart
	if chartPath != "" {
		distances = render.NewDistanceChart()
		opts = append(opts, app.WithObserver(distances))
	}

	ctrl := app.NewController(sim, opts...)
	if err := ctrl.Reset(cfg.Seed); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	res, runErr := ctrl.Run(ctx, cfg.Delay)
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	logger.Printf("stopped after %d generations: %s", sim.Generation(), res)

	if rec != nil {
		if err := rec.Close(); err != nil {
			return err
		}
		logger.Printf("wrote %d frames to %s", rec.Frames(), videoPath)
	}
	if svgPath != "" {
		if err := writeFile(svgPath, func(f *os.File) error { return render.WriteSVG(f, sim, cfg.Scale) }); err != nil {
			return err
		}
	}
	if distances != nil {
		err := writeFile(chartPath, func(f *os.File) error { return distances.Render(f) })
		if errors.Is(err, render.ErrNotEnoughData) {
			logger.Printf("skipping chart: %v", err)
		} else if err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, fill func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := fill(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}
