package geometry

import (
	"math"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

// Sphere represents a sphere shape. A negative radius keeps the same surface
// but turns its normals inward, which models the inside of a glass bubble.
type Sphere struct {
	Center    core.Vec3
	Radius    float64
	Material  core.Material
	IsMoving  bool
	CenterVec core.Vec3 // displacement of the center between time 0 and time 1
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:   center,
		Radius:   radius,
		Material: material,
	}
}

// NewMovingSphere creates a sphere whose center moves linearly from center0
// at time 0 to center1 at time 1
func NewMovingSphere(center0, center1 core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{
		Center:    center0,
		Radius:    radius,
		Material:  material,
		IsMoving:  true,
		CenterVec: center1.Subtract(center0),
	}
}

// CenterAt returns the center of the sphere at the given ray time
func (s *Sphere) CenterAt(time float64) core.Vec3 {
	if !s.IsMoving {
		return s.Center
	}
	return s.Center.Add(s.CenterVec.Multiply(time))
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(center)

	// Quadratic equation coefficients: at² + 2*halfB*t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	hitRecord := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	// Dividing by the signed radius flips the normal for hollow spheres
	outwardNormal := hitRecord.Point.Subtract(center).Divide(s.Radius)
	hitRecord.SetFaceNormal(ray, outwardNormal)

	return hitRecord, true
}
