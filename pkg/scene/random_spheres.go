package scene

import (
	"math/rand"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// keepOutCenter marks where the large metal sphere sits; small spheres are
// not placed within keepOutRadius of it
var (
	keepOutCenter = core.NewVec3(4, 0.2, 0)
	keepOutRadius = 0.9
)

// NewFinalScene creates the reference scene: a large ground sphere covered in
// a 22x22 grid of small random spheres around three large glass, diffuse and
// metal spheres
func NewFinalScene(random *rand.Rand, cameraOverrides ...renderer.CameraConfig) *Scene {
	s := newScene("final", renderer.DefaultConfig().Camera, cameraOverrides)
	addRandomSpheres(s, core.NewRandomSampler(random), false)
	return s
}

// NewBouncingScene is the final scene with the small diffuse spheres moving
// upward during the shutter interval, rendered with motion blur
func NewBouncingScene(random *rand.Rand, cameraOverrides ...renderer.CameraConfig) *Scene {
	cameraConfig := renderer.DefaultConfig().Camera
	cameraConfig.MotionBlur = true

	s := newScene("bouncing", cameraConfig, cameraOverrides)
	addRandomSpheres(s, core.NewRandomSampler(random), true)
	return s
}

func addRandomSpheres(s *Scene, sampler core.Sampler, bouncing bool) {
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.AddSphere(core.NewVec3(0, -1000, 0), 1000, ground)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			offset := sampler.Get2D()
			center := core.NewVec3(float64(a)+0.9*offset.X, 0.2, float64(b)+0.9*offset.Y)

			if center.Subtract(keepOutCenter).Length() <= keepOutRadius {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomColor(sampler, 0, 1).MultiplyVec(core.RandomColor(sampler, 0, 1))
				mat := material.NewLambertian(albedo)
				if bouncing {
					center1 := center.Add(core.NewVec3(0, core.RandomInRange(sampler.Get1D(), 0, 0.5), 0))
					s.AddMovingSphere(center, center1, 0.2, mat)
				} else {
					s.AddSphere(center, 0.2, mat)
				}
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomColor(sampler, 0.5, 1)
				fuzz := core.RandomInRange(sampler.Get1D(), 0, 0.5)
				s.AddSphere(center, 0.2, material.NewMetal(albedo, fuzz))
			default:
				// glass
				s.AddSphere(center, 0.2, material.NewDielectric(1.5))
			}
		}
	}

	s.AddSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5))
	s.AddSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.AddSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0))
}
