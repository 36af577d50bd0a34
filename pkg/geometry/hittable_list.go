package geometry

import "github.com/df07/go-sphere-pathtracer/pkg/core"

// HittableList is an ordered collection of shapes tested linearly
type HittableList struct {
	Shapes []core.Shape
}

// NewHittableList creates a list holding the given shapes
func NewHittableList(shapes ...core.Shape) *HittableList {
	return &HittableList{Shapes: shapes}
}

// Add appends a shape to the list
func (l *HittableList) Add(shape core.Shape) {
	l.Shapes = append(l.Shapes, shape)
}

// Clear removes every shape
func (l *HittableList) Clear() {
	l.Shapes = nil
}

// Len returns the number of shapes
func (l *HittableList) Len() int {
	return len(l.Shapes)
}

// Hit returns the closest intersection among all shapes
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
