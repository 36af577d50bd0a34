package integrator

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// ShadowAcneEpsilon is the lower t bound for world queries. Scattered rays
// start on a surface and must not re-hit it because of rounding.
const ShadowAcneEpsilon = 0.001

var (
	skyTopColor    = core.NewVec3(0.5, 0.7, 1.0)
	skyBottomColor = core.NewVec3(1.0, 1.0, 1.0)
)

// PathTracingIntegrator implements unidirectional path tracing
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a new path tracing integrator that follows
// at most maxDepth bounces per path
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the bounce limit
func (pt *PathTracingIntegrator) MaxDepth() int {
	return pt.maxDepth
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world core.Shape, sampler core.Sampler) core.Vec3 {
	return pt.rayColorRecursive(ray, world, sampler, pt.maxDepth)
}

// rayColorRecursive returns the color for a given ray with material support
func (pt *PathTracingIntegrator) rayColorRecursive(ray core.Ray, world core.Shape, sampler core.Sampler, depth int) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(ShadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return BackgroundGradient(ray)
	}

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return core.Vec3{X: 0, Y: 0, Z: 0} // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(
		pt.rayColorRecursive(scatter.Scattered, world, sampler, depth-1))
}

// BackgroundGradient returns the sky color seen along the ray: white at the
// bottom blending to light blue at the top
func BackgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Normalize()

	// Map y from [-1,1] to [0,1]
	a := 0.5 * (unitDirection.Y + 1.0)

	return skyBottomColor.Multiply(1.0 - a).Add(skyTopColor.Multiply(a))
}
