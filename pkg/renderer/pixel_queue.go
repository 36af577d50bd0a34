package renderer

import (
	"math/rand"
	"sync"
)

// Pixel identifies an image pixel; J grows downward from the top row
type Pixel struct {
	I, J int
}

// PixelQueue is a mutex-protected stack of pixels still to be rendered.
// Every pixel pushed is handed out by Pop exactly once.
type PixelQueue struct {
	mu     sync.Mutex
	pixels []Pixel
}

// NewPixelQueue creates a queue holding every pixel of a width x height image
// in row-major order
func NewPixelQueue(width, height int) *PixelQueue {
	pixels := make([]Pixel, 0, width*height)
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			pixels = append(pixels, Pixel{I: i, J: j})
		}
	}
	return &PixelQueue{pixels: pixels}
}

// NewShuffledPixelQueue creates a queue of every pixel in uniformly random
// order, so expensive regions of the image are spread over the whole render
func NewShuffledPixelQueue(width, height int, random *rand.Rand) *PixelQueue {
	q := NewPixelQueue(width, height)
	random.Shuffle(len(q.pixels), func(a, b int) {
		q.pixels[a], q.pixels[b] = q.pixels[b], q.pixels[a]
	})
	return q
}

// Pop removes and returns the last pixel. It returns false once the queue is empty.
func (q *PixelQueue) Pop() (Pixel, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	n := len(q.pixels)
	if n == 0 {
		return Pixel{}, false
	}
	p := q.pixels[n-1]
	q.pixels = q.pixels[:n-1]
	return p, true
}

// Len returns the number of pixels left
func (q *PixelQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pixels)
}
