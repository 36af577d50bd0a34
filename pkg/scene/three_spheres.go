package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// NewThreeSpheresScene creates a small scene with a diffuse sphere between a
// hollow glass sphere and a fuzzy gold sphere
func NewThreeSpheresScene(cameraOverrides ...renderer.CameraConfig) *Scene {
	defaultCameraConfig := renderer.CameraConfig{
		LookFrom:    core.NewVec3(-2, 2, 1),
		LookAt:      core.NewVec3(0, 0, -1),
		VUp:         core.NewVec3(0, 1, 0),
		VFov:        20,
		ImageWidth:  400,
		AspectRatio: 16.0 / 9.0,
	}
	s := newScene("three-spheres", defaultCameraConfig, cameraOverrides)

	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	s.AddSphere(core.NewVec3(0, -100.5, -1), 100, ground)
	s.AddSphere(core.NewVec3(0, 0, -1), 0.5, center)
	s.AddSphere(core.NewVec3(-1, 0, -1), 0.5, glass)
	// Negative radius turns the inner surface into a bubble
	s.AddSphere(core.NewVec3(-1, 0, -1), -0.4, glass)
	s.AddSphere(core.NewVec3(1, 0, -1), 0.5, gold)

	return s
}
