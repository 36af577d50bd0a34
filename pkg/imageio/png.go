package imageio

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
)

// ToRGBA converts the film to an RGBA image using the same tone mapping as the PPM output
func ToRGBA(film *Film) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, film.Width, film.Height))
	for j := 0; j < film.Height; j++ {
		for i := 0; i < film.Width; i++ {
			r, g, b := QuantizeColor(film.Sum(i, j), film.SamplesPerPixel)
			img.SetRGBA(i, j, color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 255})
		}
	}
	return img
}

// SavePNG writes the film as a PNG file
func SavePNG(filename string, film *Film) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := png.Encode(file, ToRGBA(film)); err != nil {
		file.Close()
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}
