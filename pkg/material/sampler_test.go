package material

import "github.com/df07/go-sphere-pathtracer/pkg/core"

// fixedSampler returns the same draws every time so tests can force a branch
type fixedSampler struct {
	value1D float64
	value2D core.Vec2
	value3D core.Vec3
}

func (f *fixedSampler) Get1D() float64 { return f.value1D }

func (f *fixedSampler) Get2D() core.Vec2 { return f.value2D }

func (f *fixedSampler) Get3D() core.Vec3 { return f.value3D }

// southPole makes core.RandomUnitVector return (0,0,-1)
var southPole = core.NewVec2(1, 0)
