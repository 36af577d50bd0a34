package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/imageio"
)

// WorkerPool manages parallel pixel rendering. Workers pull pixels from a
// shared queue until it is empty and write finished pixels into the film.
type WorkerPool struct {
	workers    []*Worker
	numWorkers int
	wg         sync.WaitGroup

	queue     *PixelQueue
	film      *imageio.Film
	filmMu    sync.Mutex // guards film writes
	completed atomic.Int64
}

// Worker renders pixels with its own random source
type Worker struct {
	ID        int
	raytracer *Raytracer
	sampler   core.Sampler
	pool      *WorkerPool // Reference to parent pool for the queue and film
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// Worker n samples from a source seeded with seed+n+1.
func NewWorkerPool(raytracer *Raytracer, queue *PixelQueue, film *imageio.Film, numWorkers int, seed int64) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	wp := &WorkerPool{
		numWorkers: numWorkers,
		queue:      queue,
		film:       film,
	}

	for i := 0; i < numWorkers; i++ {
		worker := &Worker{
			ID:        i,
			raytracer: raytracer,
			sampler:   core.NewRandomSampler(rand.New(rand.NewSource(seed + int64(i) + 1))),
			pool:      wp,
		}
		wp.workers = append(wp.workers, worker)
	}

	return wp
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for _, worker := range wp.workers {
		wp.wg.Add(1)
		go worker.run(&wp.wg)
	}
}

// Wait blocks until the queue is drained and every worker has returned
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

// Completed returns the number of pixels written so far
func (wp *WorkerPool) Completed() int {
	return int(wp.completed.Load())
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// store writes a finished pixel and counts it
func (wp *WorkerPool) store(p Pixel, sum core.Vec3) {
	wp.filmMu.Lock()
	wp.film.Set(p.I, p.J, sum)
	wp.filmMu.Unlock()

	wp.completed.Add(1)
}

// run is the main worker loop
func (w *Worker) run(wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		pixel, ok := w.pool.queue.Pop()
		if !ok {
			return
		}
		sum := w.raytracer.renderPixel(pixel.I, pixel.J, w.sampler)
		w.pool.store(pixel, sum)
	}
}
