package scene

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/df07/go-sphere-pathtracer/pkg/renderer"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	Name        string // Identifier used on the command line
	Description string
	build       func(random *rand.Rand, cameraOverrides ...renderer.CameraConfig) *Scene
}

var builtinScenes = map[string]SceneInfo{
	"final": {
		Name:        "final",
		Description: "Random small spheres around three large glass, diffuse and metal spheres",
		build:       NewFinalScene,
	},
	"bouncing": {
		Name:        "bouncing",
		Description: "Final scene with bouncing diffuse spheres and motion blur",
		build:       NewBouncingScene,
	},
	"three-spheres": {
		Name:        "three-spheres",
		Description: "Diffuse sphere between a hollow glass sphere and a fuzzy gold sphere",
		build: func(_ *rand.Rand, cameraOverrides ...renderer.CameraConfig) *Scene {
			return NewThreeSpheresScene(cameraOverrides...)
		},
	},
}

// ListScenes returns every built-in scene sorted by name
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, info := range builtinScenes {
		scenes = append(scenes, info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})
	return scenes
}

// CreateScene builds the named scene. Random scene content is drawn from a
// source seeded with seed.
func CreateScene(name string, seed int64, cameraOverrides ...renderer.CameraConfig) (*Scene, error) {
	info, ok := builtinScenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene type: %s", name)
	}
	return info.build(rand.New(rand.NewSource(seed)), cameraOverrides...), nil
}
