package renderer

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// CameraConfig contains the parameters that position the camera and size the image
type CameraConfig struct {
	LookFrom    core.Vec3 // Camera position
	LookAt      core.Vec3 // Point the camera looks at
	VUp         core.Vec3 // Up direction
	VFov        float64   // Vertical field of view in degrees
	ImageWidth  int       // Image width in pixels
	AspectRatio float64   // Width / height ratio
	MotionBlur  bool      // Draw a random shutter time in [0,1) for every ray
}

// Camera generates primary rays. It is immutable after NewCamera and safe
// to share between workers.
type Camera struct {
	config      CameraConfig
	imageHeight int
	center      core.Vec3
	pixel00Loc  core.Vec3 // center of pixel (0,0)
	pixelDeltaU core.Vec3 // offset to the pixel on the right
	pixelDeltaV core.Vec3 // offset to the pixel below
	u, v, w     core.Vec3 // camera frame basis vectors
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	center := config.LookFrom

	// Viewport dimensions
	focalLength := config.LookFrom.Subtract(config.LookAt).Length()
	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * focalLength
	viewportWidth := viewportHeight * (float64(config.ImageWidth) / float64(imageHeight))

	// Orthonormal basis; w points away from the scene
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Image x runs along u, image y runs down the viewport
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Divide(float64(config.ImageWidth))
	pixelDeltaV := viewportV.Divide(float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(focalLength)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00Loc := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	return &Camera{
		config:      config,
		imageHeight: imageHeight,
		center:      center,
		pixel00Loc:  pixel00Loc,
		pixelDeltaU: pixelDeltaU,
		pixelDeltaV: pixelDeltaV,
		u:           u,
		v:           v,
		w:           w,
	}
}

// GetRay returns a ray through a random point inside pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offset.Y - 0.5))

	time := 0.0
	if c.config.MotionBlur {
		time = sampler.Get1D()
	}

	return core.NewRayAtTime(c.center, pixelSample.Subtract(c.center), time)
}

// ImageWidth returns the image width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the image height in pixels
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// Basis returns the camera frame vectors (right, up, backward)
func (c *Camera) Basis() (u, v, w core.Vec3) {
	return c.u, c.v, c.w
}

// Pixel00 returns the world position of the center of the top-left pixel
func (c *Camera) Pixel00() core.Vec3 {
	return c.pixel00Loc
}

// PixelDeltas returns the world offsets between horizontally and vertically adjacent pixels
func (c *Camera) PixelDeltas() (du, dv core.Vec3) {
	return c.pixelDeltaU, c.pixelDeltaV
}

// MergeCameraConfig overlays the non-zero fields of override onto base.
// LookFrom and LookAt are treated as a pair so a partial override cannot
// produce an inconsistent view.
func MergeCameraConfig(base, override CameraConfig) CameraConfig {
	result := base

	zero := core.Vec3{}
	if override.LookFrom != zero || override.LookAt != zero {
		result.LookFrom = override.LookFrom
		result.LookAt = override.LookAt
	}
	if override.VUp != zero {
		result.VUp = override.VUp
	}
	if override.VFov != 0 {
		result.VFov = override.VFov
	}
	if override.ImageWidth != 0 {
		result.ImageWidth = override.ImageWidth
	}
	if override.AspectRatio != 0 {
		result.AspectRatio = override.AspectRatio
	}
	if override.MotionBlur {
		result.MotionBlur = true
	}

	return result
}
