package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/imageio"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
	"github.com/df07/go-sphere-pathtracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	sceneType string
	width     int
	samples   int
	depth     int
	workers   int
	seed      int64
	output    string
	pngOutput string
	showHelp  bool
}

func main() {
	defaults := renderer.DefaultConfig()

	opts := options{}
	flag.StringVar(&opts.sceneType, "scene", "final", "Scene type: 'final', 'three-spheres' or 'bouncing'")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.samples, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	flag.IntVar(&opts.depth, "depth", defaults.MaxDepth, "Maximum ray bounce depth")
	flag.IntVar(&opts.workers, "workers", defaults.NumWorkers, "Number of parallel workers (0 = use CPU count)")
	flag.Int64Var(&opts.seed, "seed", 0, "Random seed for scene and sampling (0 = time based)")
	flag.StringVar(&opts.output, "output", "Image.ppm", "Output PPM file")
	flag.StringVar(&opts.pngOutput, "png", "", "Also write a PNG copy to this file")
	flag.BoolVar(&opts.showHelp, "help", false, "Show help information")
	flag.Parse()

	if opts.showHelp {
		printHelp()
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Sphere Path Tracer")
	fmt.Println("Usage: pathtracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s - %s\n", info.Name, info.Description)
	}
}

// createScene builds the requested scene with the command line overrides applied
func createScene(opts options) (*scene.Scene, error) {
	return scene.CreateScene(opts.sceneType, opts.seed, renderer.CameraConfig{ImageWidth: opts.width})
}

// buildConfig combines the scene camera with the sampling flags
func buildConfig(opts options, s *scene.Scene) (renderer.Config, error) {
	config := renderer.DefaultConfig()
	config.Camera = s.CameraConfig
	config.SamplesPerPixel = opts.samples
	config.MaxDepth = opts.depth
	config.NumWorkers = opts.workers
	config.Seed = opts.seed

	if err := config.Validate(); err != nil {
		return renderer.Config{}, fmt.Errorf("invalid render settings: %w", err)
	}
	return config, nil
}

// run renders the selected scene and writes the image files
func run(opts options, logger core.Logger) error {
	startTime := time.Now()

	if opts.seed == 0 {
		opts.seed = startTime.UnixNano()
	}

	selectedScene, err := createScene(opts)
	if err != nil {
		return err
	}
	logger.Printf("Scene %s: %d spheres\n", selectedScene.Name, selectedScene.GetPrimitiveCount())

	config, err := buildConfig(opts, selectedScene)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene.World, selectedScene.Camera, config, logger)
	film, stats := raytracer.Render()

	logger.Printf("\nOutputting images.\n")
	if err := imageio.SavePPM(opts.output, film); err != nil {
		return fmt.Errorf("error writing %s: %w", opts.output, err)
	}
	if opts.pngOutput != "" {
		if err := imageio.SavePNG(opts.pngOutput, film); err != nil {
			return fmt.Errorf("error writing %s: %w", opts.pngOutput, err)
		}
	}
	logger.Printf("Output finished.\n")

	logger.Printf("Rendered %d pixels with %d workers (%.0f samples/s)\n",
		stats.TotalPixels, stats.NumWorkers, stats.SamplesPerSecond())
	logger.Printf("Total time spent: %dms\n", time.Since(startTime).Milliseconds())
	return nil
}
