package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// WritePPM serializes the film as a plain (P3) PPM, one pixel per line,
// top-left pixel first
func WritePPM(w io.Writer, film *Film) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", film.Width, film.Height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, sum := range film.Pixels {
		r, g, b := QuantizeColor(sum, film.SamplesPerPixel)
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM output: %w", err)
	}
	return nil
}

// SavePPM writes the film to the named file
func SavePPM(filename string, film *Film) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create image file: %w", err)
	}

	if err := WritePPM(file, film); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close image file: %w", err)
	}
	return nil
}

// maxPPMPixels bounds the pixel count ReadPPM accepts from a header
const maxPPMPixels = 1 << 28

// PPMImage is a decoded plain PPM with 8-bit channels in row-major order
type PPMImage struct {
	Width  int
	Height int
	MaxVal int
	Pixels [][3]int
}

// ReadPPM parses a plain (P3) PPM
func ReadPPM(r io.Reader) (*PPMImage, error) {
	scanner := bufio.NewScanner(r)
	var tokens []string

	// next returns the following whitespace-separated token, skipping # comments
	next := func() (string, error) {
		for len(tokens) == 0 {
			if !scanner.Scan() {
				if err := scanner.Err(); err != nil {
					return "", err
				}
				return "", io.ErrUnexpectedEOF
			}
			line := scanner.Text()
			if idx := strings.IndexByte(line, '#'); idx >= 0 {
				line = line[:idx]
			}
			tokens = strings.Fields(line)
		}
		token := tokens[0]
		tokens = tokens[1:]
		return token, nil
	}
	nextInt := func(what string) (int, error) {
		token, err := next()
		if err != nil {
			return 0, fmt.Errorf("failed to read PPM %s: %w", what, err)
		}
		v, err := strconv.Atoi(token)
		if err != nil {
			return 0, fmt.Errorf("invalid PPM %s %q: %w", what, token, err)
		}
		return v, nil
	}

	magic, err := next()
	if err != nil {
		return nil, fmt.Errorf("failed to read PPM magic: %w", err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("unsupported PPM format %q", magic)
	}

	img := &PPMImage{}
	if img.Width, err = nextInt("width"); err != nil {
		return nil, err
	}
	if img.Height, err = nextInt("height"); err != nil {
		return nil, err
	}
	if img.MaxVal, err = nextInt("max value"); err != nil {
		return nil, err
	}
	if img.Width <= 0 || img.Height <= 0 {
		return nil, fmt.Errorf("invalid PPM size %dx%d", img.Width, img.Height)
	}

	if img.Width > maxPPMPixels/img.Height {
		return nil, fmt.Errorf("PPM size %dx%d too large", img.Width, img.Height)
	}

	// Pixels are appended as they are read; the header only bounds the count
	total := img.Width * img.Height
	for p := 0; p < total; p++ {
		var pixel [3]int
		for c := 0; c < 3; c++ {
			v, err := nextInt("pixel")
			if err != nil {
				return nil, err
			}
			if v < 0 || v > img.MaxVal {
				return nil, fmt.Errorf("PPM channel %d outside [0,%d]", v, img.MaxVal)
			}
			pixel[c] = v
		}
		img.Pixels = append(img.Pixels, pixel)
	}

	return img, nil
}

// LoadPPM reads a plain PPM from the named file
func LoadPPM(filename string) (*PPMImage, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	return ReadPPM(file)
}
