package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
	"github.com/df07/go-sphere-pathtracer/pkg/geometry"
	"github.com/df07/go-sphere-pathtracer/pkg/material"
	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

func spheres(t *testing.T, s *Scene) []*geometry.Sphere {
	t.Helper()
	var result []*geometry.Sphere
	for _, shape := range s.World.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			t.Fatalf("Expected only spheres, got %T", shape)
		}
		result = append(result, sphere)
	}
	return result
}

func TestNewFinalScene(t *testing.T) {
	s := NewFinalScene(rand.New(rand.NewSource(42)))

	if s.CameraConfig != renderer.DefaultConfig().Camera {
		t.Errorf("Expected reference camera, got %+v", s.CameraConfig)
	}

	all := spheres(t, s)
	// ground + up to 22x22 small spheres + 3 large spheres
	if len(all) < 4 || len(all) > 1+22*22+3 {
		t.Fatalf("Unexpected sphere count %d", len(all))
	}

	ground := all[0]
	if ground.Radius != 1000 || !ground.Center.Equals(core.NewVec3(0, -1000, 0)) {
		t.Errorf("Unexpected ground sphere %+v", ground)
	}

	for _, sphere := range all[1 : len(all)-3] {
		if sphere.Radius != 0.2 || sphere.Center.Y != 0.2 {
			t.Errorf("Small sphere has unexpected placement %+v", sphere)
		}
		if sphere.IsMoving {
			t.Error("Final scene spheres should be stationary")
		}
		if sphere.Center.Subtract(keepOutCenter).Length() <= keepOutRadius {
			t.Errorf("Small sphere at %v overlaps the large metal sphere", sphere.Center)
		}
	}

	large := all[len(all)-3:]
	if _, ok := large[0].Material.(*material.Dielectric); !ok {
		t.Errorf("Expected glass center sphere, got %T", large[0].Material)
	}
	if _, ok := large[1].Material.(*material.Lambertian); !ok {
		t.Errorf("Expected diffuse left sphere, got %T", large[1].Material)
	}
	if _, ok := large[2].Material.(*material.Metal); !ok {
		t.Errorf("Expected metal right sphere, got %T", large[2].Material)
	}
}

func TestNewFinalScene_SeedIsReproducible(t *testing.T) {
	a := spheres(t, NewFinalScene(rand.New(rand.NewSource(7))))
	b := spheres(t, NewFinalScene(rand.New(rand.NewSource(7))))

	if len(a) != len(b) {
		t.Fatalf("Same seed produced %d and %d spheres", len(a), len(b))
	}
	for i := range a {
		if !a[i].Center.Equals(b[i].Center) {
			t.Fatalf("Sphere %d differs: %v vs %v", i, a[i].Center, b[i].Center)
		}
	}
}

func TestNewBouncingScene(t *testing.T) {
	s := NewBouncingScene(rand.New(rand.NewSource(42)))

	if !s.CameraConfig.MotionBlur {
		t.Error("Expected motion blur on the bouncing scene camera")
	}

	moving := 0
	for _, sphere := range spheres(t, s) {
		if !sphere.IsMoving {
			continue
		}
		moving++
		if _, ok := sphere.Material.(*material.Lambertian); !ok {
			t.Errorf("Only diffuse spheres should move, got %T", sphere.Material)
		}
		if sphere.CenterVec.X != 0 || sphere.CenterVec.Z != 0 || sphere.CenterVec.Y < 0 || sphere.CenterVec.Y >= 0.5 {
			t.Errorf("Unexpected bounce %v", sphere.CenterVec)
		}
	}
	if moving == 0 {
		t.Error("Expected some moving spheres")
	}
}

func TestNewThreeSpheresScene(t *testing.T) {
	s := NewThreeSpheresScene()
	all := spheres(t, s)

	if len(all) != 5 || s.GetPrimitiveCount() != 5 {
		t.Fatalf("Expected 5 spheres, got %d (count %d)", len(all), s.GetPrimitiveCount())
	}
	if s.Camera.ImageWidth() != 400 || s.Camera.ImageHeight() != 225 {
		t.Errorf("Expected 400x225 image, got %dx%d", s.Camera.ImageWidth(), s.Camera.ImageHeight())
	}

	bubble := all[3]
	if bubble.Radius >= 0 {
		t.Errorf("Expected negative radius for the inner bubble, got %f", bubble.Radius)
	}

	// A ray through the glass sphere meets the outer surface first
	ray := core.NewRay(core.NewVec3(-1, 0, 1), core.NewVec3(0, 0, -1))
	hit, isHit := s.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !isHit {
		t.Fatal("Expected to hit the glass sphere")
	}
	if math.Abs(hit.T-1.5) > 1e-9 || !hit.FrontFace {
		t.Errorf("Expected front-face hit at t=1.5, got t=%f front=%t", hit.T, hit.FrontFace)
	}
}

func TestCreateScene_Overrides(t *testing.T) {
	s, err := CreateScene("three-spheres", 1, renderer.CameraConfig{ImageWidth: 200})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.CameraConfig.ImageWidth != 200 || s.Camera.ImageWidth() != 200 {
		t.Errorf("Expected width override 200, got config %d camera %d", s.CameraConfig.ImageWidth, s.Camera.ImageWidth())
	}
	if s.CameraConfig.VFov != 20 {
		t.Errorf("Override should keep scene vfov, got %f", s.CameraConfig.VFov)
	}
}

func TestListScenes(t *testing.T) {
	scenes := ListScenes()
	expected := []string{"bouncing", "final", "three-spheres"}

	if len(scenes) != len(expected) {
		t.Fatalf("Expected %d scenes, got %d", len(expected), len(scenes))
	}
	for i, name := range expected {
		if scenes[i].Name != name {
			t.Errorf("Scene %d: expected %s, got %s", i, name, scenes[i].Name)
		}
		if _, err := CreateScene(name, 42); err != nil {
			t.Errorf("Listed scene %s failed to build: %v", name, err)
		}
	}
}
