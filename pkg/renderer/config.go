package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Config contains every tunable of a render
type Config struct {
	Camera          CameraConfig
	SamplesPerPixel int   // Number of rays per pixel
	MaxDepth        int   // Maximum ray bounce depth
	NumWorkers      int   // Number of parallel workers (0 = use CPU count)
	Seed            int64 // Base seed for shuffling and sampling (0 = time based)
}

// DefaultConfig returns the reference render settings
func DefaultConfig() Config {
	return Config{
		Camera: CameraConfig{
			LookFrom:    core.NewVec3(13, 2, 3),
			LookAt:      core.NewVec3(0, 0, 0),
			VUp:         core.NewVec3(0, 1, 0),
			VFov:        20,
			ImageWidth:  1200,
			AspectRatio: 16.0 / 9.0,
		},
		SamplesPerPixel: 500,
		MaxDepth:        50,
		NumWorkers:      7,
	}
}

// Validate reports the first setting that cannot produce an image
func (c Config) Validate() error {
	cam := c.Camera
	if cam.ImageWidth <= 0 {
		return fmt.Errorf("image width must be positive, got %d", cam.ImageWidth)
	}
	if cam.AspectRatio <= 0 || math.IsInf(cam.AspectRatio, 0) || math.IsNaN(cam.AspectRatio) {
		return fmt.Errorf("aspect ratio must be a positive finite number, got %v", cam.AspectRatio)
	}
	if cam.VFov <= 0 || cam.VFov >= 180 {
		return fmt.Errorf("vertical field of view must be in (0, 180) degrees, got %v", cam.VFov)
	}
	if cam.LookFrom.Equals(cam.LookAt) {
		return fmt.Errorf("look-from and look-at must differ, both are %v", cam.LookFrom)
	}
	if cam.VUp.Cross(cam.LookFrom.Subtract(cam.LookAt)).NearZero() {
		return fmt.Errorf("up vector %v is parallel to the view direction", cam.VUp)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d", c.NumWorkers)
	}
	return nil
}
