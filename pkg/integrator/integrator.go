package integrator

import (
	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray from the given world
	RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3
}
