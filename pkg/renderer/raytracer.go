package renderer

import (
	"math/rand"
	"time"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/imageio"
	"github.com/df07/go-sphere-pathtracer/pkg/integrator"
)

// Raytracer renders a world through a camera into a film
type Raytracer struct {
	world            core.Shape
	camera           *Camera
	config           Config
	integrator       integrator.Integrator
	logger           core.Logger
	progressInterval time.Duration
}

// NewRaytracer creates a raytracer that estimates radiance with a path
// tracing integrator limited to config.MaxDepth bounces
func NewRaytracer(world core.Shape, camera *Camera, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewDefaultLogger()
	}
	return &Raytracer{
		world:            world,
		camera:           camera,
		config:           config,
		integrator:       integrator.NewPathTracingIntegrator(config.MaxDepth),
		logger:           logger,
		progressInterval: progressInterval,
	}
}

// SetIntegrator replaces the radiance estimator
func (rt *Raytracer) SetIntegrator(in integrator.Integrator) {
	rt.integrator = in
}

// shuffleSeed derives the pixel shuffle seed from the base seed. The base seed
// itself drives scene generation and workers use seed+n+1.
func shuffleSeed(seed int64) int64 {
	return seed - 1
}

// renderPixel returns the sum of SamplesPerPixel radiance estimates for pixel (i, j)
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler) core.Vec3 {
	colorAccum := core.Vec3{}
	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		ray := rt.camera.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(rt.integrator.RayColor(ray, rt.world, sampler))
	}
	return colorAccum
}

// Render traces every pixel of the image in parallel and returns the film
// holding the summed samples
func (rt *Raytracer) Render() (*imageio.Film, RenderStats) {
	width, height := rt.camera.ImageWidth(), rt.camera.ImageHeight()
	film := imageio.NewFilm(width, height, rt.config.SamplesPerPixel)

	seed := rt.config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	queue := NewShuffledPixelQueue(width, height, rand.New(rand.NewSource(shuffleSeed(seed))))
	pool := NewWorkerPool(rt, queue, film, rt.config.NumWorkers, seed)

	rt.logger.Printf("Start rendering.\n")
	startTime := time.Now()

	progressDone := make(chan struct{})
	reporter := &progressReporter{
		logger:    rt.logger,
		total:     width * height,
		completed: pool.Completed,
		start:     startTime,
		interval:  rt.progressInterval,
	}
	go reporter.run(progressDone)

	pool.Start()
	pool.Wait()
	<-progressDone

	stats := RenderStats{
		TotalPixels:     width * height,
		TotalSamples:    width * height * rt.config.SamplesPerPixel,
		SamplesPerPixel: rt.config.SamplesPerPixel,
		NumWorkers:      pool.GetNumWorkers(),
		Elapsed:         time.Since(startTime),
	}
	return film, stats
}
