package material

import (
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestNewMetal_FuzznessClamp(t *testing.T) {
	tests := []struct {
		name             string
		inputFuzzness    float64
		expectedFuzzness float64
	}{
		{"Valid fuzzness 0.0", 0.0, 0.0},
		{"Valid fuzzness 0.5", 0.5, 0.5},
		{"Valid fuzzness 1.0", 1.0, 1.0},
		{"Clamp above 1.0", 1.5, 1.0},
		{"Negative uses magnitude", -0.5, 0.5},
		{"Clamp large positive", 10.0, 1.0},
		{"Clamp large negative", -10.0, 1.0},
	}

	albedo := core.NewVec3(0.8, 0.8, 0.8)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			metal := NewMetal(albedo, tt.inputFuzzness)
			if metal.Fuzzness != tt.expectedFuzzness {
				t.Errorf("Expected fuzzness %f, got %f", tt.expectedFuzzness, metal.Fuzzness)
			}
		})
	}
}

func TestMetal_PerfectReflection(t *testing.T) {
	albedo := core.NewVec3(0.9, 0.9, 0.9)
	metal := NewMetal(albedo, 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Ray hitting surface at 45 degrees
	rayIn := core.NewRay(core.NewVec3(0, 1, 1), core.NewVec3(0, -1, -1).Multiply(3))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
	if !didScatter {
		t.Fatal("Metal should scatter")
	}

	expected := core.NewVec3(0, -1, 1).Normalize()
	if scatter.Scattered.Direction.Subtract(expected).Length() > 1e-10 {
		t.Errorf("Perfect reflection failed: expected %v, got %v", expected, scatter.Scattered.Direction)
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Attenuation should equal albedo: expected %v, got %v", albedo, scatter.Attenuation)
	}
	if !scatter.Scattered.Origin.Equals(hit.Point) {
		t.Errorf("Scattered ray should start at the hit point, got %v", scatter.Scattered.Origin)
	}
}

func TestMetal_AbsorptionDependsOnNormalSide(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(1)))
	rayIn := core.NewRay(core.NewVec3(-1, 0, 0), core.NewVec3(1, 0, 0))

	tests := []struct {
		name        string
		normal      core.Vec3
		expectScat  bool
		expectedDir core.Vec3
	}{
		{"reflection away from surface", core.NewVec3(-1, 0, 0), true, core.NewVec3(-1, 0, 0)},
		{"reflection into surface", core.NewVec3(1, 0, 0), false, core.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit := core.HitRecord{Point: core.NewVec3(0, 0, 0), Normal: tt.normal}
			scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
			if didScatter != tt.expectScat {
				t.Fatalf("Expected scatter=%t, got %t", tt.expectScat, didScatter)
			}
			if didScatter && !scatter.Scattered.Direction.Equals(tt.expectedDir) {
				t.Errorf("Expected direction %v, got %v", tt.expectedDir, scatter.Scattered.Direction)
			}
		})
	}
}

func TestMetal_FuzzyReflection(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 0.5)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	rayIn := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	directions := make([]core.Vec3, 10)
	for i := range directions {
		scatter, didScatter := metal.Scatter(rayIn, hit, sampler)
		if !didScatter {
			t.Fatalf("Metal should scatter on iteration %d", i)
		}
		directions[i] = scatter.Scattered.Direction

		// Fuzz sphere of radius 0.5 around (0,0,1) stays above the surface
		if directions[i].Dot(hit.Normal) <= 0 {
			t.Errorf("Scattered ray %d should be above surface", i)
		}
		if d := directions[i].Subtract(core.NewVec3(0, 0, 1)).Length(); d > 0.5+1e-9 {
			t.Errorf("Perturbation %f exceeds fuzz radius", d)
		}
	}

	allSame := true
	for i := 1; i < len(directions); i++ {
		if directions[i].Subtract(directions[0]).Length() > 1e-10 {
			allSame = false
			break
		}
	}
	if allSame {
		t.Error("Fuzzy metal should produce varying reflection directions")
	}
}

func TestMetal_ScatterAbsorptionAtGrazingAngle(t *testing.T) {
	metal := NewMetal(core.NewVec3(0.8, 0.8, 0.8), 1.0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(123)))

	rayIn := core.NewRay(core.NewVec3(-1, 0, 0.01), core.NewVec3(1, 0, -0.01))
	hit := core.HitRecord{
		Point:  core.NewVec3(0, 0, 0),
		Normal: core.NewVec3(0, 0, 1),
	}

	absorptionCount := 0
	scatterCount := 0
	for i := 0; i < 1000; i++ {
		if _, didScatter := metal.Scatter(rayIn, hit, sampler); didScatter {
			scatterCount++
		} else {
			absorptionCount++
		}
	}

	if absorptionCount == 0 {
		t.Error("Expected some rays to be absorbed with high fuzziness at grazing angle")
	}
	if scatterCount == 0 {
		t.Error("Expected some rays to be scattered")
	}
}
