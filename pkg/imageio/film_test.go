package imageio

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/df07/go-sphere-pathtracer/pkg/core"
)

func TestFilm_RowMajorIndexing(t *testing.T) {
	film := NewFilm(4, 3, 2)
	if len(film.Pixels) != 12 {
		t.Fatalf("Expected 12 pixels, got %d", len(film.Pixels))
	}

	if idx := film.Index(3, 2); idx != 11 {
		t.Errorf("Expected index 11 for bottom-right pixel, got %d", idx)
	}
	if idx := film.Index(1, 1); idx != 5 {
		t.Errorf("Expected index 5 for (1,1), got %d", idx)
	}

	film.Set(2, 1, core.NewVec3(1, 2, 3))
	if got := film.Color(2, 1); !got.Equals(core.NewVec3(0.5, 1, 1.5)) {
		t.Errorf("Expected averaged color (0.5,1,1.5), got %v", got)
	}
}

func TestFilm_IndexOutOfRangePanics(t *testing.T) {
	film := NewFilm(2, 2, 1)
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range pixel")
		}
	}()
	film.Index(2, 0)
}

func TestSavePNG_MatchesPPMQuantization(t *testing.T) {
	film := NewFilm(2, 1, 1)
	film.Set(0, 0, core.NewVec3(0.25, 1, 0))
	film.Set(1, 0, core.NewVec3(0.01, 0.5, 2))

	path := filepath.Join(t.TempDir(), "render.png")
	if err := SavePNG(path, film); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open PNG: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}

	for i := 0; i < 2; i++ {
		r, g, b, _ := img.At(i, 0).RGBA()
		er, eg, eb := QuantizeColor(film.Sum(i, 0), 1)
		if int(r>>8) != er || int(g>>8) != eg || int(b>>8) != eb {
			t.Errorf("Pixel %d: expected (%d,%d,%d), got (%d,%d,%d)", i, er, eg, eb, r>>8, g>>8, b>>8)
		}
	}
}
