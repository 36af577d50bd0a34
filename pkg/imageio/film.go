package imageio

import (
	"fmt"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Film is a dense row-major buffer of summed radiance samples.
// Pixel (i, j) lives at index j*Width + i, with j growing downward.
type Film struct {
	Width           int
	Height          int
	SamplesPerPixel int         // number of samples summed into each pixel
	Pixels          []core.Vec3 // summed, not averaged
}

// NewFilm creates a black film
func NewFilm(width, height, samplesPerPixel int) *Film {
	return &Film{
		Width:           width,
		Height:          height,
		SamplesPerPixel: samplesPerPixel,
		Pixels:          make([]core.Vec3, width*height),
	}
}

// Index returns the buffer index of pixel (i, j)
func (f *Film) Index(i, j int) int {
	if i < 0 || i >= f.Width || j < 0 || j >= f.Height {
		panic(fmt.Sprintf("imageio: pixel (%d,%d) outside %dx%d film", i, j, f.Width, f.Height))
	}
	return j*f.Width + i
}

// Set stores the summed color of pixel (i, j)
func (f *Film) Set(i, j int, sum core.Vec3) {
	f.Pixels[f.Index(i, j)] = sum
}

// Sum returns the summed color of pixel (i, j)
func (f *Film) Sum(i, j int) core.Vec3 {
	return f.Pixels[f.Index(i, j)]
}

// Color returns the averaged linear color of pixel (i, j)
func (f *Film) Color(i, j int) core.Vec3 {
	return f.Sum(i, j).Multiply(1.0 / float64(f.SamplesPerPixel))
}
