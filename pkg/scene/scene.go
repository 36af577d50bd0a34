package scene

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name         string
	World        *geometry.HittableList // Objects in the scene
	Camera       *renderer.Camera
	CameraConfig renderer.CameraConfig
}

// newScene builds the camera from the scene defaults merged with an optional override
func newScene(name string, defaultCameraConfig renderer.CameraConfig, cameraOverrides []renderer.CameraConfig) *Scene {
	cameraConfig := defaultCameraConfig
	if len(cameraOverrides) > 0 {
		cameraConfig = renderer.MergeCameraConfig(defaultCameraConfig, cameraOverrides[0])
	}

	return &Scene{
		Name:         name,
		World:        geometry.NewHittableList(),
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
	}
}

// AddSphere adds a stationary sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, material core.Material) {
	s.World.Add(geometry.NewSphere(center, radius, material))
}

// AddMovingSphere adds a sphere moving from center0 to center1 over the shutter interval
func (s *Scene) AddMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) {
	s.World.Add(geometry.NewMovingSphere(center0, center1, radius, material))
}

// GetPrimitiveCount returns the number of spheres in the scene
func (s *Scene) GetPrimitiveCount() int {
	return s.World.Len()
}
